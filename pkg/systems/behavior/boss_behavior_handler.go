package behavior

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/types"
)

// Cappuccino 的三个站位
const (
	cappuccinoSlots     = 3
	cappuccinoFirstX    = 225.0
	cappuccinoSlotWidth = 300.0
)

// bossOf 返回 Boss 的专属状态
func (s *BehaviorSystem) bossOf(entityID ecs.EntityID) *components.BossComponent {
	boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, entityID)
	return boss
}

// centerWarn 在场地中央显示预警
func (s *BehaviorSystem) centerWarn(entityID ecs.EntityID) {
	s.warn(entityID, config.WarningCenterX, config.WarningCenterY, config.AlertSize)
}

// dropHazard 在 Boss 下方随机一列落下一个 50×50 的投射物（蛛网、霉菌球）
func (s *BehaviorSystem) dropHazard(entityID ecs.EntityID, kind components.ProjectileKind, x, y float64) {
	s.hazard(entityID, entities.ProjectileSpec{
		Kind:               kind,
		X:                  x + float64(s.rng.Intn(5))*config.BlockSize,
		Y:                  y,
		W:                  config.BlockSize,
		H:                  config.BlockSize,
		DirY:               1,
		ConsumeOnPlayerHit: true,
	})
}

// handleCappuccinoBehavior Cappuccino（隐藏 Boss）
//
// 等待 CappuccinoIdle 后随机站到三个位置之一，另外两个位置出现分身，进入暴露阶段。
// 暴露阶段只要本体受伤就结束；时间耗尽、分身被格挡或分身碰到玩家时玩家受到伤害。
func (s *BehaviorSystem) handleCappuccinoBehavior(entityID ecs.EntityID) {
	boss := s.bossOf(entityID)
	now := s.now()
	pos, col, _ := s.actorParts(entityID)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, entityID)

	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if boss.Cycle.Elapsed(now) < config.CappuccinoIdle {
			return
		}
		boss.Slot = s.rng.Intn(cappuccinoSlots)
		pos.X = cappuccinoFirstX + float64(boss.Slot)*cappuccinoSlotWidth
		for i := 0; i < cappuccinoSlots; i++ {
			if i == boss.Slot {
				continue
			}
			s.hazard(entityID, entities.ProjectileSpec{
				Kind:       components.ProjectileClone,
				X:          cappuccinoFirstX + float64(i)*cappuccinoSlotWidth,
				Y:          pos.Y,
				W:          col.Width,
				H:          col.Height,
				Collidable: true,
			})
		}
		boss.HealthAtExpose = health.Current
		s.enter(entityID, &boss.Cycle, components.PhaseActive)
	case components.PhaseActive:
		if health.Current < boss.HealthAtExpose {
			s.cappuccinoIdle(entityID, boss)
			return
		}
		clones := s.projectiles.OwnedBy(entityID, components.ProjectileClone)
		touched := false
		for _, clone := range clones {
			if r, ok := s.collision.Rect(clone); ok && s.playerIn(r) {
				touched = true
				break
			}
		}
		if boss.Cycle.Elapsed(now) >= config.CappuccinoExposed || len(clones) < cappuccinoSlots-1 || touched {
			s.combat.DamagePlayer()
			s.cappuccinoIdle(entityID, boss)
		}
	}
}

func (s *BehaviorSystem) cappuccinoIdle(entityID ecs.EntityID, boss *components.BossComponent) {
	s.projectiles.RetireOwnedBy(entityID, components.ProjectileClone)
	s.enter(entityID, &boss.Cycle, components.PhaseIdle)
}

// handleGigaSlimeBehavior GigaSlime：预警后向下喷出火焰，持续 GigaSlimeFlame
func (s *BehaviorSystem) handleGigaSlimeBehavior(entityID ecs.EntityID) {
	boss := s.bossOf(entityID)
	now := s.now()

	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if boss.Cycle.Elapsed(now) >= config.GigaSlimeIdle {
			s.centerWarn(entityID)
			s.enter(entityID, &boss.Cycle, components.PhaseWarning)
		}
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) < config.GigaSlimeWarning {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		pos, col, _ := s.actorParts(entityID)
		boss.Hazard = s.hazard(entityID, entities.ProjectileSpec{
			Kind: components.ProjectileFlame,
			X:    pos.X,
			Y:    pos.Y + col.Height,
			W:    col.Width,
			H:    config.ArenaHeight - pos.Y - col.Height - 2*config.BlockSize,
		})
		s.audio.Play("giga_noise", false)
		s.enter(entityID, &boss.Cycle, components.PhaseActive)
	case components.PhaseActive:
		if boss.Cycle.Elapsed(now) >= config.GigaSlimeFlame {
			s.retire(boss.Hazard)
			boss.Hazard = 0
			s.enter(entityID, &boss.Cycle, components.PhaseIdle)
		}
	}
}

// handleSirPlatohBehavior SirPlatoh：交替掷出叉子和大刀
//
// 叉子垂直落下后弹回 Boss；大刀落地后向左滑行，撞墙后升起返回 Boss。
// 武器回到 Boss 身上时本轮攻击结束。
func (s *BehaviorSystem) handleSirPlatohBehavior(entityID ecs.EntityID) {
	boss := s.bossOf(entityID)
	now := s.now()
	pos, col, _ := s.actorParts(entityID)

	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if boss.Cycle.Elapsed(now) < config.SirPlatohIdle {
			return
		}
		x := pos.X + col.Width/2
		if boss.LastAttack == 1 {
			x = pos.X + col.Width/8
		}
		s.warn(entityID, x, config.WarningCenterY, config.AlertSize)
		s.enter(entityID, &boss.Cycle, components.PhaseWarning)
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) < config.SirPlatohWarning {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		if boss.LastAttack == 1 {
			boss.Hazard = s.hazard(entityID, entities.ProjectileSpec{
				Kind: components.ProjectileFork,
				X:    pos.X + col.Width/8,
				Y:    pos.Y + col.Height,
				W:    config.BlockSize,
				H:    col.Height,
				DirY: 4,
			})
			s.audio.Play("fork_throw", false)
		} else {
			boss.Hazard = s.hazard(entityID, entities.ProjectileSpec{
				Kind: components.ProjectileCleaver,
				X:    pos.X + col.Width*8/15,
				Y:    pos.Y + col.Height,
				W:    3 * config.BlockSize,
				H:    3 * config.BlockSize,
				DirY: 2,
			})
			s.audio.Play("knife_throw", false)
		}
		s.enter(entityID, &boss.Cycle, components.PhaseActive)
	case components.PhaseActive:
		if !s.hazardActive(boss.Hazard) {
			// 武器飞出场地，本轮同样算作结束
			s.platohCatch(entityID, boss, 1-boss.LastAttack)
			return
		}
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, boss.Hazard)
		weapon, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, boss.Hazard)
		back := proj.DirY < 0 && s.collision.OverlapsEntity(boss.Hazard, entityID)

		if proj.Kind == components.ProjectileFork {
			switch {
			case weapon.Y > 500:
				proj.DirY = -4
			case back:
				s.platohCatch(entityID, boss, 0)
			}
			return
		}
		switch {
		case weapon.Y > 550 && proj.DirY > 0:
			proj.DirX, proj.DirY = -2, 0
		case proj.DirX < 0 && s.collision.OverlapsLayer(boss.Hazard, types.LayerWall):
			weapon.X += 20
			proj.DirX, proj.DirY = 0, -2
		case back:
			s.platohCatch(entityID, boss, 1)
		}
	}
}

// platohCatch 武器回到 Boss 手中，next 为下一轮的攻击选择
func (s *BehaviorSystem) platohCatch(entityID ecs.EntityID, boss *components.BossComponent, next int) {
	s.retire(boss.Hazard)
	boss.Hazard = 0
	boss.LastAttack = next
	s.enter(entityID, &boss.Cycle, components.PhaseIdle)
}

// MofadaBombada 的攻击子阶段
const (
	mofadaBarrage = iota // 霉菌球弹幕
	mofadaPunchWarning   // 重拳预警，弹幕继续
	mofadaPunch          // 重拳落下，等待被格挡
)

// handleMofadaBombadaBehavior MofadaBombada：本体吸收所有子弹
//
// 弹幕持续 MofadaBarrage 后在 Side 一侧预警并落下重拳，
// 重拳被玩家子弹格挡后 Boss 受到 1 点伤害并换到另一侧。
func (s *BehaviorSystem) handleMofadaBombadaBehavior(entityID ecs.EntityID) {
	boss := s.bossOf(entityID)
	now := s.now()
	pos, col, _ := s.actorParts(entityID)

	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if boss.Cycle.Elapsed(now) >= config.MofadaIdle {
			s.centerWarn(entityID)
			s.enter(entityID, &boss.Cycle, components.PhaseWarning)
		}
		return
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) >= config.MofadaWarning {
			s.alerts.ClearOwnedBy(entityID)
			boss.Step = mofadaBarrage
			s.enter(entityID, &boss.Cycle, components.PhaseActive)
		}
		return
	}

	if boss.Step != mofadaPunch && now-boss.LastFire > config.HazardFireInterval {
		s.dropHazard(entityID, components.ProjectileMold, pos.X, pos.Y+col.Height)
		boss.LastFire = now
	}

	switch boss.Step {
	case mofadaBarrage:
		if boss.Cycle.Elapsed(now) < config.MofadaBarrage {
			return
		}
		x := pos.X + col.Width*3/4
		if boss.Side == types.DirRight {
			x = pos.X
		}
		s.warn(entityID, x, config.WarningCenterY, config.AlertSize)
		boss.Cycle.Restart(now)
		boss.Step = mofadaPunchWarning
	case mofadaPunchWarning:
		if boss.Cycle.Elapsed(now) < config.MofadaPunchWarning {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		x := pos.X + config.BlockSize/2
		if boss.Side == types.DirLeft {
			x += 3 * config.BlockSize
		}
		boss.Hazard = s.hazard(entityID, entities.ProjectileSpec{
			Kind:       components.ProjectilePunch,
			X:          x,
			Y:          pos.Y + col.Height,
			W:          config.BlockSize,
			H:          config.ArenaHeight - pos.Y - col.Height - 2*config.BlockSize,
			Collidable: true,
		})
		s.audio.Play("squish", false)
		boss.Step = mofadaPunch
	case mofadaPunch:
		if s.hazardActive(boss.Hazard) {
			return
		}
		boss.Hazard = 0
		boss.Side = boss.Side.Opposite()
		boss.Step = mofadaBarrage
		s.enter(entityID, &boss.Cycle, components.PhaseIdle)
		s.combat.ApplyDamage(entityID, 1)
	}
}
