package progress

import (
	"fmt"
	"log"

	"github.com/decker502/batata/pkg/types"
)

// NoBoss Launch.Boss 的默认值，表示不指定 Boss
const NoBoss = -1

// Launch 命令行指定的起点
type Launch struct {
	// World 从该世界的第一个房间开始（1-5），0 表示显示菜单
	World int
	// Boss 直接进入该 Boss 房间（0-6），NoBoss 表示不指定
	Boss int
}

// Validate 检查起点参数
func (l Launch) Validate() error {
	if l.World < 0 || l.World > WorldCount {
		return fmt.Errorf("world must be in [1, %d], got %d", WorldCount, l.World)
	}
	if l.Boss != NoBoss && !types.BossKind(l.Boss).Valid() {
		return fmt.Errorf("boss must be in [0, %d], got %d", types.BossCount-1, l.Boss)
	}
	if l.World != 0 && l.Boss != NoBoss {
		return fmt.Errorf("--world and --boss are mutually exclusive")
	}
	return nil
}

// Begin 进入起点指定的房间，不修改存档；没有指定起点时 ok 为 false，应显示菜单
func (p *Progression) Begin(l Launch) (dest Destination, ok bool, err error) {
	switch {
	case l.Boss != NoBoss:
		dest, err = p.StartBoss(types.BossKind(l.Boss))
	case l.World != 0:
		dest, err = p.StartAt(l.World)
	default:
		return Destination{}, false, nil
	}
	if err != nil {
		return Destination{}, false, fmt.Errorf("failed to start: %w", err)
	}
	log.Printf("[Progression] 直接进入房间 (boss=%v, room=%d)", dest.Layout.IsBoss, dest.Layout.Room)
	return dest, true, nil
}
