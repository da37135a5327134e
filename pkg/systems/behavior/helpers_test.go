package behavior

import (
	"testing"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// recordingAudio 记录播放过的音效键
type recordingAudio struct {
	played []string
}

func (a *recordingAudio) Play(key string, loop bool) { a.played = append(a.played, key) }
func (a *recordingAudio) Stop()                      {}
func (a *recordingAudio) IsPlaying() bool            { return false }

func (a *recordingAudio) count(key string) int {
	n := 0
	for _, k := range a.played {
		if k == key {
			n++
		}
	}
	return n
}

// testEnv 行为测试用的完整系统组合
type testEnv struct {
	em          *ecs.EntityManager
	clock       *utils.SimClock
	cw          *systems.CollisionWorld
	combat      *systems.CombatResolver
	projectiles *systems.ProjectileSystem
	alerts      *systems.AlertSystem
	particles   *systems.ParticleSystem
	audio       *recordingAudio
	bs          *BehaviorSystem
}

// newTestEnv 创建测试环境，values 为随机源依次返回的值
func newTestEnv(values ...int) *testEnv {
	env := &testEnv{
		em:    ecs.NewEntityManager(),
		clock: utils.NewSimClock(),
		audio: &recordingAudio{},
	}
	env.cw = systems.NewCollisionWorld(env.em)
	env.projectiles = systems.NewProjectileSystem(env.em)
	env.alerts = systems.NewAlertSystem(env.em, env.clock)
	env.particles = systems.NewParticleSystem(env.em, env.clock)
	env.combat = systems.NewCombatResolver(env.em, env.cw, env.clock, env.audio, env.projectiles, env.alerts, env.particles)
	rng := &utils.SequenceRandom{Values: values}
	env.bs = NewBehaviorSystem(env.em, env.clock, env.cw, env.combat, env.projectiles, env.alerts, env.particles, env.audio, rng)
	return env
}

// update 推进时钟 d 后执行一次行为更新（不移动投射物）
func (env *testEnv) update(d time.Duration) {
	env.clock.Advance(d)
	env.bs.Update()
}

// tick 按固定顺序执行一个完整的模拟 tick
func (env *testEnv) tick() {
	env.clock.Advance(config.SimTickInterval)
	env.projectiles.Advance()
	env.combat.ResolveProjectiles()
	env.bs.Update()
	env.particles.Update()
	env.em.RemoveMarkedEntities()
}

func (env *testEnv) addPlayer(x, y float64) ecs.EntityID {
	return entities.NewPlayerEntity(env.em, x, y)
}

func (env *testEnv) addEnemy(t *testing.T, kind types.EnemyKind, x, y float64, dir types.Direction, rng float64) ecs.EntityID {
	t.Helper()
	stats := config.EnemyStats{Health: 1, Width: config.BlockSize, Height: config.BlockSize, Contact: true}
	switch kind {
	case types.EnemySlime, types.EnemyFlyme:
		stats.Speed = 2
	case types.EnemyMorcerango, types.EnemyMalandranha:
		stats.Speed = 4
		stats.Flying = true
	case types.EnemyAlgodogDoce:
		stats.Speed = 3
	case types.EnemyChocochato:
		stats.Health = 3
	case types.EnemyAlho:
		stats.Health = 3
	}
	spawn := config.EnemySpawn{Kind: kind, X: x, Y: y, Direction: dir, Range: rng}
	id, err := entities.NewEnemyEntity(env.em, spawn, stats, env.clock.Now())
	if err != nil {
		t.Fatalf("创建敌人失败: %v", err)
	}
	return id
}

func (env *testEnv) addBoss(t *testing.T, kind types.BossKind, health int) ecs.EntityID {
	t.Helper()
	stats := config.BossStats{
		ID:     kind,
		Name:   "boss",
		Health: health,
		X:      config.BossX,
		Y:      config.BossY,
		Width:  config.BossWidth,
		Height: config.BossHeight,
	}
	if kind == types.BossNaveMaeranha {
		stats.X, stats.Y, stats.Width, stats.Height = 0, 0, config.ArenaWidth, config.NaveHeight
	}
	id, err := entities.NewBossEntity(env.em, stats, env.clock.Now())
	if err != nil {
		t.Fatalf("创建 Boss 失败: %v", err)
	}
	return id
}

// enemyPhase 敌人当前阶段
func (env *testEnv) enemyPhase(id ecs.EntityID) components.Phase {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](env.em, id)
	return enemy.Cycle.Phase
}

// boss Boss 专属状态
func (env *testEnv) boss(id ecs.EntityID) *components.BossComponent {
	boss, _ := ecs.GetComponent[*components.BossComponent](env.em, id)
	return boss
}

func (env *testEnv) health(id ecs.EntityID) *components.HealthComponent {
	health, _ := ecs.GetComponent[*components.HealthComponent](env.em, id)
	return health
}

func (env *testEnv) rect(t *testing.T, id ecs.EntityID) types.Rect {
	t.Helper()
	r, ok := env.cw.Rect(id)
	if !ok {
		t.Fatalf("实体 %d 没有包围盒", id)
	}
	return r
}

// parry 玩家子弹格挡指定的投射物
func (env *testEnv) parry(t *testing.T, target ecs.EntityID) {
	t.Helper()
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](env.em, target)
	if !ok || !proj.Active {
		t.Fatalf("投射物 %d 不存在或已失活", target)
	}
	r := env.rect(t, target)
	shot := env.projectiles.Spawn(entities.ProjectileSpec{
		Kind:       components.ProjectileCarrot,
		X:          r.X,
		Y:          r.Y,
		W:          config.CarrotLength,
		H:          config.CarrotWidth,
		OwnerLayer: types.LayerPlayer,
	})
	env.combat.ResolvePlayerShot(shot)
	if !proj.Parried {
		t.Fatalf("投射物 %d 没有被格挡", target)
	}
}
