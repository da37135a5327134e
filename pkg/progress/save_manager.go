package progress

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// 存储路径常量
const (
	saveObject       = "save"
	progressProperty = "progress"
	secretProperty   = "secret"
)

// 有效的进度范围，超出范围的存档视为从世界 1 开始
const (
	minSavedWorld = 2
	maxSavedWorld = 5
)

// SaveManager 存档管理器
//
// 存档只有两项：
//   - progress: 当前所在世界（"<n>\n"），决定从哪个房间开始
//   - secret:   隐藏 Boss 是否已被击败（"1\n"）
type SaveManager struct {
	store Store
}

// NewSaveManager 创建存档管理器，store 为 nil 时使用内存存储
func NewSaveManager(store Store) *SaveManager {
	if store == nil {
		log.Printf("[SaveManager] Warning: no store given, progress kept in memory")
		store = NewMemoryStore()
	}
	return &SaveManager{store: store}
}

// LoadProgress 读取当前世界
//
// 没有存档、读取失败或数值不在 2..5 之间时返回 1
func (sm *SaveManager) LoadProgress() int {
	text, ok := sm.read(progressProperty)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		log.Printf("[SaveManager] Warning: corrupt progress %q, starting from world 1", text)
		return 1
	}
	if n < minSavedWorld || n > maxSavedWorld {
		return 1
	}
	return n
}

// SaveProgress 写入当前世界
func (sm *SaveManager) SaveProgress(world int) error {
	if err := sm.store.SaveObjectProp(saveObject, progressProperty, []byte(fmt.Sprintf("%d\n", world))); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	log.Printf("[SaveManager] Progress saved: world %d", world)
	return nil
}

// SecretUnlocked 隐藏 Boss 是否已被击败
func (sm *SaveManager) SecretUnlocked() bool {
	text, ok := sm.read(secretProperty)
	return ok && text == "1"
}

// UnlockSecret 记录隐藏 Boss 已被击败
func (sm *SaveManager) UnlockSecret() error {
	if err := sm.store.SaveObjectProp(saveObject, secretProperty, []byte("1\n")); err != nil {
		return fmt.Errorf("failed to save secret flag: %w", err)
	}
	log.Printf("[SaveManager] Secret room unlocked")
	return nil
}

func (sm *SaveManager) read(property string) (string, bool) {
	if !sm.store.ObjectPropExists(saveObject, property) {
		return "", false
	}
	data, err := sm.store.LoadObjectProp(saveObject, property)
	if err != nil {
		log.Printf("[SaveManager] Warning: failed to load %s: %v", property, err)
		return "", false
	}
	return strings.TrimSpace(string(data)), true
}
