package progress

import (
	"fmt"
	"log"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/types"
)

// WorldCount 世界数量
const WorldCount = 5

// SaveFailedMessage 存档失败时展示给玩家的提示
const SaveFailedMessage = "Não foi possível salvar o progresso."

// Destination 推进后的去向
type Destination struct {
	// Screen 非空时切换到该屏幕，否则进入 Layout 房间
	Screen types.Screen
	Layout config.RoomLayout
	// Notice 非空时需要提示玩家（存档失败等），不影响继续游戏
	Notice string
}

// Progression 房间之间的推进规则
//
//	普通房间 i  -> 房间 i+1；每个世界的第 5 个房间之后是该世界的 Boss
//	Boss 1..4  -> 进度 +1 并存档，进入下一个世界的第一个房间
//	Boss 5     -> 最终 Boss 6；击败 Boss 6 进入胜利画面
//	Boss 0     -> 记录隐藏房间已解锁，进入隐藏房间
type Progression struct {
	layouts *config.RoomLayouts
	saves   *SaveManager
	current config.RoomLayout
}

// NewProgression 创建推进规则
func NewProgression(layouts *config.RoomLayouts, saves *SaveManager) *Progression {
	return &Progression{layouts: layouts, saves: saves}
}

// Current 当前房间
func (p *Progression) Current() config.RoomLayout {
	return p.current
}

// Saves 存档管理器
func (p *Progression) Saves() *SaveManager {
	return p.saves
}

// Start 从存档所在世界的第一个房间开始
func (p *Progression) Start() (Destination, error) {
	return p.StartAt(p.saves.LoadProgress())
}

// StartAt 从世界 world 的第一个房间开始（不修改存档）
func (p *Progression) StartAt(world int) (Destination, error) {
	if world < 1 || world > WorldCount {
		return Destination{}, fmt.Errorf("world %d out of range [1, %d]", world, WorldCount)
	}
	return p.room((world - 1) * config.RoomsPerWorld)
}

// StartBoss 直接进入指定 Boss 房间
func (p *Progression) StartBoss(boss types.BossKind) (Destination, error) {
	layout, err := p.layouts.BossRoom(boss)
	if err != nil {
		return Destination{}, fmt.Errorf("failed to load boss room: %w", err)
	}
	p.current = layout
	return Destination{Layout: layout}, nil
}

// Next 当前房间的门被穿过后的去向
func (p *Progression) Next() (Destination, error) {
	cur := p.current
	if !cur.IsBoss {
		if (cur.Room+1)%config.RoomsPerWorld == 0 {
			return p.StartBoss(types.BossKind(cur.Room/config.RoomsPerWorld + 1))
		}
		return p.room(cur.Room + 1)
	}

	switch {
	case cur.Boss == types.BossCappuccino:
		dest := Destination{Screen: types.ScreenSecretRoom}
		if err := p.saves.UnlockSecret(); err != nil {
			log.Printf("[Progression] Warning: %v", err)
			dest.Notice = SaveFailedMessage
		}
		return dest, nil
	case cur.Boss == types.BossNaveMaeranha:
		return Destination{Screen: types.ScreenVictory}, nil
	case cur.Boss == types.BossLarry:
		return p.StartBoss(types.BossNaveMaeranha)
	}

	// Boss 1..4：进入下一个世界
	world := int(cur.Boss) + 1
	notice := p.save(world)
	dest, err := p.StartAt(world)
	dest.Notice = notice
	return dest, err
}

// EnterSecret 菜单中输入隐藏指令：未击败隐藏 Boss 时挑战它，否则直接进入隐藏房间
func (p *Progression) EnterSecret() (Destination, error) {
	if p.saves.SecretUnlocked() {
		return Destination{Screen: types.ScreenSecretRoom}, nil
	}
	return p.StartBoss(types.BossCappuccino)
}

// ChooseWorld 隐藏房间中选择世界：存档后从该世界开始
func (p *Progression) ChooseWorld(world int) (Destination, error) {
	if world < 1 || world > WorldCount {
		return Destination{}, fmt.Errorf("world %d out of range [1, %d]", world, WorldCount)
	}
	notice := p.save(world)
	dest, err := p.StartAt(world)
	dest.Notice = notice
	return dest, err
}

// Finish 通关后进度重置为世界 1
func (p *Progression) Finish() string {
	return p.save(1)
}

func (p *Progression) save(world int) string {
	if err := p.saves.SaveProgress(world); err != nil {
		log.Printf("[Progression] Warning: %v", err)
		return SaveFailedMessage
	}
	return ""
}

func (p *Progression) room(index int) (Destination, error) {
	layout, err := p.layouts.Room(index)
	if err != nil {
		return Destination{}, fmt.Errorf("failed to load room: %w", err)
	}
	p.current = layout
	return Destination{Layout: layout}, nil
}

// MusicKey 房间的背景音乐键
func MusicKey(layout config.RoomLayout) string {
	if !layout.IsBoss {
		return config.WorldMusicKey(layout.Room/config.RoomsPerWorld + 1)
	}
	switch layout.Boss {
	case types.BossCappuccino:
		return "boss_cappuccino"
	case types.BossNaveMaeranha:
		return "boss_final"
	}
	return "boss"
}
