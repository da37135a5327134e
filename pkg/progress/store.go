package progress

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
)

// Store 按对象/属性存取字节数据的持久化接口
// *gdata.Manager 直接满足此接口
type Store interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// OpenStore 打开以 appName 命名的 gdata 存储
// 打开失败时退化为内存存储（进度不会跨进程保留）
func OpenStore(appName string) Store {
	if err := prepareStorage(); err != nil {
		log.Printf("[Store] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil || manager == nil {
		log.Printf("[Store] Warning: gdata unavailable (%v), progress kept in memory", err)
		return NewMemoryStore()
	}
	log.Printf("[Store] gdata storage opened: %s", appName)
	return manager
}

// MemoryStore 内存中的 Store 实现
type MemoryStore struct {
	props map[string][]byte
}

// NewMemoryStore 创建空的内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{props: make(map[string][]byte)}
}

func memoryKey(objectKey, propKey string) string {
	return objectKey + "/" + propKey
}

func (s *MemoryStore) ObjectPropExists(objectKey, propKey string) bool {
	_, ok := s.props[memoryKey(objectKey, propKey)]
	return ok
}

func (s *MemoryStore) LoadObjectProp(objectKey, propKey string) ([]byte, error) {
	data, ok := s.props[memoryKey(objectKey, propKey)]
	if !ok {
		return nil, fmt.Errorf("property %s/%s not found", objectKey, propKey)
	}
	return append([]byte(nil), data...), nil
}

func (s *MemoryStore) SaveObjectProp(objectKey, propKey string, data []byte) error {
	s.props[memoryKey(objectKey, propKey)] = append([]byte(nil), data...)
	return nil
}
