package world

import (
	"sort"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
)

// ViewKind 实体在快照中的类别，同时决定绘制顺序
type ViewKind int

const (
	ViewWall ViewKind = iota
	ViewDoor
	ViewProjectile
	ViewEnemy
	ViewBoss
	ViewPlayer
	ViewPof
	ViewAlert
)

func (k ViewKind) String() string {
	switch k {
	case ViewWall:
		return "wall"
	case ViewDoor:
		return "door"
	case ViewProjectile:
		return "projectile"
	case ViewEnemy:
		return "enemy"
	case ViewBoss:
		return "boss"
	case ViewPlayer:
		return "player"
	case ViewPof:
		return "pof"
	case ViewAlert:
		return "alert"
	default:
		return "unknown"
	}
}

// EntityView 一个可绘制实体
type EntityView struct {
	ID      ecs.EntityID
	Kind    ViewKind
	Sprite  string
	Rect    types.Rect
	Visible bool // 闪烁中的玩家和提示框在部分帧不绘制
}

// HUD 抬头显示的数据
type HUD struct {
	PlayerHealth    int
	PlayerMaxHealth int

	HasBoss       bool
	BossName      string
	BossHealth    int
	BossMaxHealth int

	EnemiesRemaining int
	DoorOpen         bool

	// Room 普通房间下标，Boss 房间为 -1
	Room  int
	World int
}

// Snapshot 一个 tick 结束时的完整画面，发布后不再修改
type Snapshot struct {
	Tick     uint64
	Time     time.Duration
	Entities []EntityView // 按绘制顺序
	HUD      HUD
	Outcome  systems.RoomOutcome
	Paused   bool
}

// WorldOf 房间所属的世界（1-5），最终 Boss 为 6，隐藏 Boss 为 0
func WorldOf(layout config.RoomLayout) int {
	if layout.IsBoss {
		return int(layout.Boss)
	}
	return layout.Room/config.RoomsPerWorld + 1
}

func (w *World) buildSnapshot() Snapshot {
	now := w.clock.Now()
	snap := Snapshot{
		Tick:    w.ticks,
		Time:    now,
		Outcome: w.outcome,
		Paused:  w.paused,
		HUD: HUD{
			Room:             w.layout.Room,
			World:            WorldOf(w.layout),
			EnemiesRemaining: systems.CountLivingEnemies(w.em),
			DoorOpen:         w.roomState != nil && w.roomState.DoorOpen(),
		},
	}

	if health, ok := ecs.GetComponent[*components.HealthComponent](w.em, w.player); ok {
		snap.HUD.PlayerHealth = max(health.Current, 0)
		snap.HUD.PlayerMaxHealth = health.Max
	}
	if boss, ok := ecs.GetComponent[*components.BossComponent](w.em, w.boss); ok {
		health, _ := ecs.GetComponent[*components.HealthComponent](w.em, w.boss)
		snap.HUD.HasBoss = true
		snap.HUD.BossName = boss.Name
		snap.HUD.BossHealth = max(health.Current, 0)
		snap.HUD.BossMaxHealth = health.Max
	}

	for _, id := range ecs.GetEntitiesWith3[*components.PositionComponent, *components.CollisionComponent, *components.SpriteComponent](w.em) {
		kind, ok := w.viewKind(id)
		if !ok {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, id)
		snap.Entities = append(snap.Entities, EntityView{
			ID:      id,
			Kind:    kind,
			Sprite:  sprite.Key,
			Rect:    types.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height},
			Visible: w.visible(id, now),
		})
	}
	sort.SliceStable(snap.Entities, func(i, j int) bool {
		return snap.Entities[i].Kind < snap.Entities[j].Kind
	})
	return snap
}

// viewKind 实体的绘制类别，已失活或已死亡的实体不绘制
func (w *World) viewKind(id ecs.EntityID) (ViewKind, bool) {
	if w.em.IsMarkedForDestruction(id) {
		return 0, false
	}
	switch {
	case ecs.HasComponent[*components.PlayerComponent](w.em, id):
		return ViewPlayer, true
	case ecs.HasComponent[*components.BossComponent](w.em, id):
		return ViewBoss, true
	case ecs.HasComponent[*components.EnemyComponent](w.em, id):
		return ViewEnemy, true
	case ecs.HasComponent[*components.ProjectileComponent](w.em, id):
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](w.em, id)
		return ViewProjectile, proj.Active
	case ecs.HasComponent[*components.WallComponent](w.em, id):
		return ViewWall, true
	case ecs.HasComponent[*components.DoorComponent](w.em, id):
		return ViewDoor, true
	case ecs.HasComponent[*components.AlertComponent](w.em, id):
		alert, _ := ecs.GetComponent[*components.AlertComponent](w.em, id)
		return ViewAlert, alert.Active
	case ecs.HasComponent[*components.PofComponent](w.em, id):
		return ViewPof, true
	}
	return 0, false
}

func (w *World) visible(id ecs.EntityID, now time.Duration) bool {
	if inv, ok := ecs.GetComponent[*components.InvulnerabilityComponent](w.em, id); ok {
		return inv.Visible
	}
	if alert, ok := ecs.GetComponent[*components.AlertComponent](w.em, id); ok {
		return alert.Visible(now)
	}
	return true
}
