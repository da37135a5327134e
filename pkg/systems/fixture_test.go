package systems

import (
	"testing"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// countingAudio 记录每个键的播放次数
type countingAudio struct {
	plays   map[string]int
	playing bool
}

func newCountingAudio() *countingAudio { return &countingAudio{plays: map[string]int{}} }

func (a *countingAudio) Play(key string, loop bool) {
	a.plays[key]++
	if loop {
		a.playing = true
	}
}
func (a *countingAudio) Stop()           { a.playing = false }
func (a *countingAudio) IsPlaying() bool { return a.playing }

// fixture 一个最小的房间：只有被测需要的系统
type fixture struct {
	em          *ecs.EntityManager
	clock       *utils.SimClock
	cw          *CollisionWorld
	projectiles *ProjectileSystem
	alerts      *AlertSystem
	particles   *ParticleSystem
	combat      *CombatResolver
	audio       *countingAudio
}

func newFixture() *fixture {
	f := &fixture{
		em:    ecs.NewEntityManager(),
		clock: utils.NewSimClock(),
		audio: newCountingAudio(),
	}
	f.cw = NewCollisionWorld(f.em)
	f.projectiles = NewProjectileSystem(f.em)
	f.alerts = NewAlertSystem(f.em, f.clock)
	f.particles = NewParticleSystem(f.em, f.clock)
	f.combat = NewCombatResolver(f.em, f.cw, f.clock, f.audio, f.projectiles, f.alerts, f.particles)
	return f
}

func (f *fixture) advance(d time.Duration) { f.clock.Advance(d) }

func (f *fixture) player(x, y float64) ecs.EntityID {
	return entities.NewPlayerEntity(f.em, x, y)
}

func (f *fixture) enemy(t *testing.T, kind types.EnemyKind, x, y float64, hp int) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemyEntity(f.em,
		config.EnemySpawn{Kind: kind, X: x, Y: y, Direction: types.DirRight},
		config.EnemyStats{Health: hp, Width: 50, Height: 50, Contact: true},
		f.clock.Now())
	if err != nil {
		t.Fatalf("创建敌人失败: %v", err)
	}
	return id
}

func (f *fixture) boss(t *testing.T, kind types.BossKind, hp int) ecs.EntityID {
	t.Helper()
	id, err := entities.NewBossEntity(f.em, config.BossStats{
		ID: kind, Name: "boss", Health: hp,
		X: config.BossX, Y: config.BossY, Width: config.BossWidth, Height: config.BossHeight,
	}, f.clock.Now())
	if err != nil {
		t.Fatalf("创建 Boss 失败: %v", err)
	}
	return id
}

func (f *fixture) wall(x, y, w, h float64) ecs.EntityID {
	return entities.NewWallEntity(f.em, config.WallSpec{X: x, Y: y, W: w, H: h}, false)
}

// shot 在 (x, y) 放置一颗静止的玩家子弹
func (f *fixture) shot(x, y float64) ecs.EntityID {
	return f.projectiles.Spawn(entities.ProjectileSpec{
		Kind: components.ProjectileCarrot, X: x, Y: y, W: 10, H: 10,
		OwnerLayer: types.LayerPlayer,
	})
}

func (f *fixture) hostile(spec entities.ProjectileSpec) ecs.EntityID {
	if spec.OwnerLayer == types.LayerNone {
		spec.OwnerLayer = types.LayerEnemy
	}
	if spec.Kind == "" {
		spec.Kind = components.ProjectileKnife
	}
	return f.projectiles.Spawn(spec)
}

func (f *fixture) health(t *testing.T, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](f.em, id)
	if !ok {
		t.Fatalf("实体 %d 没有生命值组件", id)
	}
	return h
}

func (f *fixture) projectile(id ecs.EntityID) *components.ProjectileComponent {
	p, _ := ecs.GetComponent[*components.ProjectileComponent](f.em, id)
	return p
}

func (f *fixture) pos(id ecs.EntityID) *components.PositionComponent {
	p, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
	return p
}
