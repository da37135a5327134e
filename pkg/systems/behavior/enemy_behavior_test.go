package behavior

import (
	"testing"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
)

func TestSightBox(t *testing.T) {
	pos := &components.PositionComponent{X: 500, Y: 300}
	col := components.NewCollisionComponent(50, 50, types.LayerEnemy)

	tests := []struct {
		name string
		dir  types.Direction
		want types.Rect
	}{
		{"向左", types.DirLeft, types.Rect{X: 350, Y: 300, W: 150, H: 50}},
		{"向右", types.DirRight, types.Rect{X: 550, Y: 300, W: 150, H: 50}},
		{"向上", types.DirUp, types.Rect{X: 500, Y: 150, W: 50, H: 150}},
		{"向下", types.DirDown, types.Rect{X: 500, Y: 350, W: 50, H: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sightBox(pos, col, tt.dir, 150); got != tt.want {
				t.Errorf("sightBox = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBeamBox(t *testing.T) {
	pos := &components.PositionComponent{X: 500, Y: 300}
	col := components.NewCollisionComponent(50, 50, types.LayerEnemy)

	tests := []struct {
		name      string
		dir       types.Direction
		thickness float64
		overlap   float64
		want      types.Rect
	}{
		{"拳臂向左", types.DirLeft, 25, 5, types.Rect{X: 355, Y: 312.5, W: 150, H: 25}},
		{"拳臂向右", types.DirRight, 25, 5, types.Rect{X: 545, Y: 312.5, W: 150, H: 25}},
		{"拳臂向上", types.DirUp, 25, 5, types.Rect{X: 512.5, Y: 155, W: 25, H: 150}},
		{"拳臂向下", types.DirDown, 25, 5, types.Rect{X: 512.5, Y: 345, W: 25, H: 150}},
		{"激光向右", types.DirRight, 25, 0, types.Rect{X: 550, Y: 312.5, W: 150, H: 25}},
		{"粗激光向下", types.DirDown, 50, 0, types.Rect{X: 500, Y: 350, W: 50, H: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := beamBox(pos, col, tt.dir, 150, tt.thickness, tt.overlap); got != tt.want {
				t.Errorf("beamBox = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatrolBouncesAtArenaEdge(t *testing.T) {
	env := newTestEnv()
	slime := env.addEnemy(t, types.EnemySlime, config.ArenaWidth-config.BlockSize, 300, types.DirRight, 0)

	env.update(config.SimTickInterval)

	pos, _, actor := env.bs.actorParts(slime)
	if pos.X != config.ArenaWidth-config.BlockSize {
		t.Errorf("越界后应退回原位, got x=%v", pos.X)
	}
	if actor.Direction != types.DirLeft {
		t.Errorf("越界后应掉头, got %v", actor.Direction)
	}

	env.update(config.SimTickInterval)
	if pos.X != config.ArenaWidth-config.BlockSize-2 {
		t.Errorf("掉头后应向左移动 2 像素, got x=%v", pos.X)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](env.em, slime)
	if sprite.Key != "slime_left" {
		t.Errorf("sprite = %q, want slime_left", sprite.Key)
	}
}

func TestPratoFiresImmediatelyThenEveryInterval(t *testing.T) {
	env := newTestEnv()
	prato := env.addEnemy(t, types.EnemyPrato, 500, 300, types.DirLeft, 0)

	env.update(0)
	knives := env.projectiles.OwnedBy(prato, components.ProjectileKnife)
	if len(knives) != 1 {
		t.Fatalf("第一把飞刀应立即掷出, got %d", len(knives))
	}
	knife, _ := ecs.GetComponent[*components.ProjectileComponent](env.em, knives[0])
	if !knife.Solid || knife.DirX != -config.KnifeDir {
		t.Errorf("飞刀属性错误: %+v", knife)
	}

	env.update(config.PratoFireInterval)
	if n := len(env.projectiles.OwnedBy(prato, components.ProjectileKnife)); n != 1 {
		t.Errorf("间隔恰好 %v 时不应发射, got %d", config.PratoFireInterval, n)
	}

	env.update(config.SimTickInterval)
	if n := len(env.projectiles.OwnedBy(prato, components.ProjectileKnife)); n != 2 {
		t.Errorf("超过间隔后应发射第二把, got %d", n)
	}
}

func TestArmandibulaWakesWhenStepped(t *testing.T) {
	env := newTestEnv()
	arm := env.addEnemy(t, types.EnemyArmandibula, 500, 300, types.DirRight, 0)
	player := env.addPlayer(0, 0)

	if got := env.combat.DamageActor(arm, 1); got != systems.HitRefused {
		t.Fatalf("沉睡中应拒绝伤害, got %v", got)
	}

	env.update(config.SimTickInterval)
	if env.enemyPhase(arm) != components.PhaseSleeping {
		t.Fatalf("玩家未接触时应保持沉睡")
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, player)
	pos.X, pos.Y = 510, 300
	env.update(config.SimTickInterval)
	if env.enemyPhase(arm) != components.PhaseWarning {
		t.Fatalf("玩家接触后应进入预警, got %v", env.enemyPhase(arm))
	}
	if env.audio.count("bite") != 1 || env.audio.count("warning") != 1 {
		t.Errorf("应播放 warning 和 bite, got %v", env.audio.played)
	}
	if env.health(player).Current != config.PlayerMaxHealth {
		t.Errorf("沉睡苏醒时不应造成接触伤害")
	}
	alerts := env.alerts.OwnedBy(arm)
	if len(alerts) != 1 {
		t.Fatalf("应生成 1 个提示框, got %d", len(alerts))
	}
	x := 500.0
	want := types.Rect{X: x + 25 - config.BlockSize/6, Y: 250, W: config.EnemyAlertSize, H: config.EnemyAlertSize}
	if got := env.rect(t, alerts[0]); got != want {
		t.Errorf("提示框位置 = %+v, want %+v", got, want)
	}

	env.update(config.ArmandibulaWakeDelay - config.SimTickInterval)
	if env.enemyPhase(arm) != components.PhaseWarning {
		t.Fatalf("未到苏醒时间时应保持预警")
	}
	env.update(config.SimTickInterval)
	if env.enemyPhase(arm) != components.PhaseActive {
		t.Fatalf("预警结束后应苏醒, got %v", env.enemyPhase(arm))
	}
	if len(env.alerts.OwnedBy(arm)) != 0 {
		t.Errorf("苏醒后提示框应被清除")
	}
	if got := env.combat.DamageActor(arm, 1); got != systems.HitApplied {
		t.Errorf("苏醒后应接受伤害, got %v", got)
	}
}

func TestMorcerangoWakesWhenCompanionDies(t *testing.T) {
	env := newTestEnv()
	slime := env.addEnemy(t, types.EnemySlime, 100, 100, types.DirRight, 0)
	bat := env.addEnemy(t, types.EnemyMorcerango, 600, 300, types.DirLeft, 0)

	env.update(config.SimTickInterval)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](env.em, bat)
	if !enemy.CountRecorded || enemy.InitialEnemies != 2 {
		t.Fatalf("应记录初始敌人数 2, got %+v", enemy)
	}

	env.update(config.SimTickInterval)
	if env.enemyPhase(bat) != components.PhaseSleeping {
		t.Fatalf("同伴存活时应保持沉睡")
	}

	env.combat.Kill(slime)
	env.update(config.SimTickInterval)
	if env.enemyPhase(bat) != components.PhaseWarning {
		t.Fatalf("同伴死亡后应进入预警, got %v", env.enemyPhase(bat))
	}

	env.update(config.MorcerangoWakeDelay)
	if env.enemyPhase(bat) != components.PhaseActive {
		t.Fatalf("预警结束后应苏醒")
	}
	pos, _, _ := env.bs.actorParts(bat)
	x := pos.X
	env.update(config.SimTickInterval)
	if pos.X != x-4 {
		t.Errorf("苏醒后应以速度 4 飞行, got dx=%v", pos.X-x)
	}
}

func TestQueijoBoxer(t *testing.T) {
	setup := func(t *testing.T) (*testEnv, ecs.EntityID, ecs.EntityID) {
		env := newTestEnv()
		boxer := env.addEnemy(t, types.EnemyQueijoBoxer, 500, 300, types.DirLeft, 150)
		player := env.addPlayer(400, 300)
		env.update(config.SimTickInterval)
		if env.enemyPhase(boxer) != components.PhaseWarning {
			t.Fatalf("玩家进入视线后应进入预警, got %v", env.enemyPhase(boxer))
		}
		env.update(config.QueijoBoxerPunchDelay)
		if env.enemyPhase(boxer) != components.PhaseActive {
			t.Fatalf("预警结束后应出拳")
		}
		return env, boxer, player
	}

	t.Run("拳臂覆盖视线范围", func(t *testing.T) {
		env, boxer, _ := setup(t)
		arms := env.projectiles.OwnedBy(boxer, components.ProjectileArm)
		if len(arms) != 1 {
			t.Fatalf("应有 1 条拳臂, got %d", len(arms))
		}
		want := types.Rect{X: 355, Y: 312.5, W: 150, H: 25}
		if got := env.rect(t, arms[0]); got != want {
			t.Errorf("拳臂 = %+v, want %+v", got, want)
		}
		if len(env.alerts.OwnedBy(boxer)) != 0 {
			t.Errorf("出拳后提示框应被清除")
		}
	})

	t.Run("拳臂击中玩家后收回", func(t *testing.T) {
		env, boxer, player := setup(t)
		env.combat.ResolveProjectiles()
		if env.health(player).Current != config.PlayerMaxHealth-1 {
			t.Fatalf("拳臂应对玩家造成伤害")
		}
		env.update(config.SimTickInterval)
		if env.enemyPhase(boxer) != components.PhaseIdle {
			t.Errorf("拳臂消失后应回到等待, got %v", env.enemyPhase(boxer))
		}
		if env.health(boxer).Dead {
			t.Errorf("拳臂击中玩家时本体不应死亡")
		}
	})

	t.Run("拳臂被格挡后被击倒", func(t *testing.T) {
		env, boxer, player := setup(t)
		pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, player)
		pos.X, pos.Y = 0, 0
		env.parry(t, env.projectiles.OwnedBy(boxer, components.ProjectileArm)[0])
		env.update(config.SimTickInterval)
		if !env.health(boxer).Dead {
			t.Errorf("拳臂被格挡后应被击倒")
		}
	})
}

func TestLaserBotCycle(t *testing.T) {
	tests := []struct {
		name      string
		kind      types.EnemyKind
		thickness float64
	}{
		{"SlimeBot", types.EnemySlimeBot, config.LaserThickness},
		{"GigaBot", types.EnemyGigaBot, config.BigLaserThickness},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			bot := env.addEnemy(t, tt.kind, 500, 300, types.DirRight, 200)

			env.update(config.SlimeBotIdle - config.SimTickInterval)
			if len(env.projectiles.OwnedBy(bot, components.ProjectileLaser)) != 0 {
				t.Fatalf("等待时间未到不应发射")
			}
			env.update(config.SimTickInterval)
			lasers := env.projectiles.OwnedBy(bot, components.ProjectileLaser)
			if len(lasers) != 1 {
				t.Fatalf("应发射激光")
			}
			r := env.rect(t, lasers[0])
			if r.X != 550 || r.W != 200 || r.H != tt.thickness {
				t.Errorf("激光 = %+v", r)
			}
			proj, _ := ecs.GetComponent[*components.ProjectileComponent](env.em, lasers[0])
			if proj.Collidable {
				t.Errorf("激光不可格挡")
			}

			env.update(config.SlimeBotLaser)
			if len(env.projectiles.OwnedBy(bot, components.ProjectileLaser)) != 0 {
				t.Errorf("激光持续时间结束后应关闭")
			}
			if env.enemyPhase(bot) != components.PhaseIdle {
				t.Errorf("应回到等待")
			}
			if env.audio.count("laser") != 2 {
				t.Errorf("开启和关闭都应播放 laser, got %d", env.audio.count("laser"))
			}
		})
	}
}

func TestAlgodogDoceRollsUntilBounce(t *testing.T) {
	// 随机源返回 0：不留下棉花糖
	env := newTestEnv(0)
	dog := env.addEnemy(t, types.EnemyAlgodogDoce, 1100, 300, types.DirRight, 200)
	player := env.addPlayer(1200, 300)

	env.update(config.SimTickInterval)
	if env.enemyPhase(dog) != components.PhaseWarning {
		t.Fatalf("应进入预警")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](env.em, player)
	pos.X, pos.Y = 0, 0

	env.update(config.AlgodogDoceRollDelay)
	if env.enemyPhase(dog) != components.PhaseActive {
		t.Fatalf("应开始翻滚")
	}
	if env.audio.count("bark") != 1 {
		t.Errorf("开始翻滚时应吠叫")
	}

	for i := 0; i < 100 && env.enemyPhase(dog) == components.PhaseActive; i++ {
		env.update(config.SimTickInterval)
	}
	if env.enemyPhase(dog) != components.PhaseIdle {
		t.Fatalf("碰到边缘后应停止翻滚")
	}
	_, _, actor := env.bs.actorParts(dog)
	if actor.Direction != types.DirLeft {
		t.Errorf("停止时应已掉头, got %v", actor.Direction)
	}
}

func TestMalandranhaChasesPlayer(t *testing.T) {
	env := newTestEnv()
	fish := env.addEnemy(t, types.EnemyMalandranha, 500, 300, types.DirRight, 0)
	env.addPlayer(300, 400)

	env.update(config.SimTickInterval)
	pos, _, _ := env.bs.actorParts(fish)
	if pos.X != 496 || pos.Y != 304 {
		t.Errorf("应在两个轴上各靠近 4 像素, got (%v, %v)", pos.X, pos.Y)
	}
}

func TestChocochatoSpriteRecovers(t *testing.T) {
	env := newTestEnv()
	cat := env.addEnemy(t, types.EnemyChocochato, 500, 300, types.DirRight, 0)

	env.combat.DamageActor(cat, 1)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](env.em, cat)
	if sprite.Key != "chocochato_damaged" {
		t.Fatalf("受击后应切换外观, got %q", sprite.Key)
	}
	env.update(config.ChocochatoDamagedSprite - time.Millisecond)
	if sprite.Key != "chocochato_damaged" {
		t.Errorf("受击外观应保持 %v", config.ChocochatoDamagedSprite)
	}
	env.update(time.Millisecond)
	if sprite.Key != "chocochato" {
		t.Errorf("受击外观到期后应恢复, got %q", sprite.Key)
	}
}

func TestAlhoStaysStillUntilPeeled(t *testing.T) {
	env := newTestEnv(1)
	alho := env.addEnemy(t, types.EnemyAlho, 500, 300, types.DirRight, 0)

	env.update(config.SimTickInterval)
	pos, _, _ := env.bs.actorParts(alho)
	if pos.X != 500 {
		t.Fatalf("完整的大蒜不应移动")
	}

	env.combat.DamageActor(alho, 1)
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](env.em)); n != 2 {
		t.Fatalf("受伤后应分裂出一个蒜瓣, got %d 个敌人", n)
	}
	env.update(config.SimTickInterval)
	if pos.X != 502 {
		t.Errorf("剥皮后应以速度 2 移动, got x=%v", pos.X)
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](env.em, alho)
	if sprite.Key != "alho_dentalho" {
		t.Errorf("sprite = %q, want alho_dentalho", sprite.Key)
	}
}
