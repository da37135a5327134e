package behavior

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
)

// CerberoNimbus 抖落棉花糖时的六个落点：左右两列各三个，Slot 选中的落点留空
const (
	cerberoShakeSlots = 6
	cerberoLeftX      = 450.0
	cerberoRightX     = 800.0
)

// cerberoShakeY 第 i 个落点所在列的基准 y
func cerberoShakeY(i int) float64 {
	row := i
	if i >= cerberoShakeSlots/2 {
		row = i - cerberoShakeSlots/2
	}
	return config.BlockSize * float64(row*3 + 6)
}

func cerberoShakeX(i int) float64 {
	if i < cerberoShakeSlots/2 {
		return cerberoLeftX
	}
	return cerberoRightX
}

// handleCerberoNimbusBehavior CerberoNimbus：接触伤害，交替使用抖落和冲锋
//
// LastAttack 为 1 时本轮是抖落，为 0 时本轮是冲锋；攻击结束时切换。
func (s *BehaviorSystem) handleCerberoNimbusBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	boss := s.bossOf(entityID)
	if boss.LastAttack == 1 {
		s.cerberoShake(entityID, boss)
	} else {
		s.cerberoCharge(entityID, boss)
	}
}

func (s *BehaviorSystem) cerberoShake(entityID ecs.EntityID, boss *components.BossComponent) {
	now := s.now()
	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if boss.Cycle.Elapsed(now) < config.CerberoShakeIdle {
			return
		}
		boss.Slot = s.rng.Intn(cerberoShakeSlots)
		s.audio.Play("warning", false)
		for i := 0; i < cerberoShakeSlots; i++ {
			if i == boss.Slot {
				continue
			}
			// 左列的提示框在落点上方，右列的在落点处
			y := cerberoShakeY(i) + config.BlockSize/2
			if i < cerberoShakeSlots/2 {
				y = cerberoShakeY(i) - config.BlockSize/2
			}
			s.alerts.Spawn(entityID, cerberoShakeX(i), y, config.AlertSize, config.AlertSize)
		}
		s.enter(entityID, &boss.Cycle, components.PhaseWarning)
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) < config.CerberoShakeWarning {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		for _, cotton := range s.projectiles.OwnedBy(entityID, components.ProjectileCotton) {
			if proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, cotton); ok && !proj.Collidable {
				s.retire(cotton)
			}
		}
		for i := 0; i < cerberoShakeSlots; i++ {
			if i == boss.Slot {
				continue
			}
			s.hazard(entityID, entities.ProjectileSpec{
				Kind: components.ProjectileCotton,
				X:    cerberoShakeX(i),
				Y:    cerberoShakeY(i) + config.BlockSize/2,
				W:    config.BlockSize,
				H:    config.BlockSize,
			})
		}
		s.audio.Play("big_dog_shaking", false)
		s.enter(entityID, &boss.Cycle, components.PhaseActive)
	case components.PhaseActive:
		if boss.Cycle.Elapsed(now) >= config.CerberoShakeActive {
			boss.LastAttack = 0
			s.enter(entityID, &boss.Cycle, components.PhaseIdle)
		}
	}
}

func (s *BehaviorSystem) cerberoCharge(entityID ecs.EntityID, boss *components.BossComponent) {
	now := s.now()
	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if boss.Cycle.Elapsed(now) >= config.CerberoChargeIdle {
			s.centerWarn(entityID)
			s.enter(entityID, &boss.Cycle, components.PhaseWarning)
		}
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) >= config.CerberoChargeAlert {
			s.alerts.ClearOwnedBy(entityID)
			s.audio.Play("big_dog_bark", false)
			boss.Heading = types.DirDown
			s.enter(entityID, &boss.Cycle, components.PhaseActive)
		}
	case components.PhaseActive:
		pos, col, _ := s.actorParts(entityID)
		if boss.Heading == types.DirDown {
			pos.Y += config.CerberoChargeSpeed
			if systems.OutOfBounds(types.Rect{X: pos.X, Y: pos.Y, W: col.Width, H: col.Height}) {
				pos.Y -= config.CerberoChargeSpeed
				boss.Heading = types.DirUp
			}
			return
		}

		pos.Y -= config.CerberoChargeSpeed
		if pos.Y <= config.CerberoTopY {
			pos.Y = config.CerberoTopY
			boss.Heading = types.DirDown
			boss.LastAttack = 1
			s.enter(entityID, &boss.Cycle, components.PhaseIdle)
			return
		}
		if onGrid(pos.Y) {
			s.cerberoDropPair(entityID, pos, col)
		}
	}
}

// cerberoDropPair 后退途中在身后的两个不同列留下可格挡的棉花糖，
// 与已有棉花糖重叠的位置跳过
func (s *BehaviorSystem) cerberoDropPair(entityID ecs.EntityID, pos *components.PositionComponent, col *components.CollisionComponent) {
	columns := int(col.Width / config.BlockSize)
	a := s.rng.Intn(columns)
	b := s.rng.Intn(columns)
	if b == a {
		if b < columns-1 {
			b++
		} else {
			b--
		}
	}

	existing := s.projectiles.OwnedBy(entityID, components.ProjectileCotton)
	for _, c := range []int{a, b} {
		r := types.Rect{
			X: pos.X + float64(c)*config.BlockSize,
			Y: pos.Y + 3*config.BlockSize,
			W: config.BlockSize,
			H: config.BlockSize,
		}
		blocked := false
		for _, other := range existing {
			if rc, ok := s.collision.Rect(other); ok && systems.Overlaps(r, rc) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		s.hazard(entityID, entities.ProjectileSpec{
			Kind:       components.ProjectileCotton,
			X:          r.X,
			Y:          r.Y,
			W:          r.W,
			H:          r.H,
			Collidable: true,
		})
	}
}

// Larry 的蛛丝子阶段
const (
	larryWebs    = iota // 只落蛛网
	larryStrings        // 第一对蛛丝已落下
	larryDespair        // 第二对蛛丝已落下，停止落蛛网
)

// handleLarryBehavior Larry：持续落下蛛网，生命值低于一半和低于 1/20 时各预警并落下一对永久蛛丝
// 被击败后播放 LarryDefeat 长度的逃跑动画
func (s *BehaviorSystem) handleLarryBehavior(entityID ecs.EntityID) {
	boss := s.bossOf(entityID)
	now := s.now()
	if boss.Cycle.Is(components.PhaseDying) {
		if boss.Cycle.Elapsed(now) >= config.LarryDefeat {
			s.combat.Defeat(entityID, "running")
		}
		return
	}

	pos, col, _ := s.actorParts(entityID)
	health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, entityID)

	if boss.Step < larryDespair && !boss.Cycle.Is(components.PhaseWarning) && now-boss.LastFire > config.HazardFireInterval {
		s.dropHazard(entityID, components.ProjectileWeb, pos.X, pos.Y+col.Height*3/4)
		boss.LastFire = now
	}

	// 两对蛛丝相对 Boss 左边缘的偏移
	first := [2]float64{0, col.Width * 9 / 10}
	second := [2]float64{config.BlockSize, col.Width * 7 / 10}

	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		if health.Current < health.Max/2 {
			s.larryWarn(entityID, pos.X, col.Width*4/5, 0)
		}
	case components.PhaseActive:
		if boss.Step == larryStrings && health.Current < health.Max/20 {
			s.larryWarn(entityID, pos.X, col.Width*2/5, config.BlockSize)
		}
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) < config.LarryStringWarning {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		offsets := first
		if boss.Step == larryStrings {
			offsets = second
		}
		for _, dx := range offsets {
			s.hazard(entityID, entities.ProjectileSpec{
				Kind: components.ProjectileString,
				X:    pos.X + dx,
				Y:    pos.Y + col.Height,
				W:    config.BlockSize / 2,
				H:    config.ArenaHeight - pos.Y - col.Height - 2*config.BlockSize,
			})
		}
		s.audio.Play("squish", false)
		boss.Step++
		s.enter(entityID, &boss.Cycle, components.PhaseActive)
	}
}

// larryWarn 在两条蛛丝落点上方显示预警，gap 为两个提示框的间距
func (s *BehaviorSystem) larryWarn(entityID ecs.EntityID, x, gap, inset float64) {
	boss := s.bossOf(entityID)
	s.audio.Play("warning", false)
	s.alerts.Spawn(entityID, x+inset, config.WarningCenterY, config.AlertSize, config.AlertSize)
	s.alerts.Spawn(entityID, x+inset+gap, config.WarningCenterY, config.AlertSize, config.AlertSize)
	s.enter(entityID, &boss.Cycle, components.PhaseWarning)
}

// NaveMaeranha 的蛛丝
const (
	naveRows       = 4
	naveFirstRowY  = 262.5
	naveRowSpacing = 150.0
	naveStringX    = 100.0
	naveStringW    = 1100.0
	naveWebColumns = 20
	naveWebFirst   = 3
)

// handleNaveMaeranhaBehavior NaveMaeranha（最终 Boss）
//
// 持续向场地随机列落下蛛网，同时在两条随机行上预警并横向拉起蛛丝。
// 被击败后随机位置不断出现烟雾，NaveDefeat 后结束。
func (s *BehaviorSystem) handleNaveMaeranhaBehavior(entityID ecs.EntityID) {
	boss := s.bossOf(entityID)
	now := s.now()

	if boss.Cycle.Is(components.PhaseDying) {
		if s.rng.Intn(10) == 0 {
			x := float64(s.rng.Intn(int(config.ArenaWidth - 2*config.BlockSize)))
			y := float64(s.rng.Intn(int(4 * config.BlockSize)))
			s.particles.SpawnPof(x, y, 2*config.BlockSize)
			s.audio.Play("kill", false)
		}
		if boss.Cycle.Elapsed(now) >= config.NaveDefeat {
			s.combat.Defeat(entityID, "")
		}
		return
	}

	if now-boss.LastFire > config.HazardFireInterval {
		for i := 0; i < config.NaveWebCount; i++ {
			s.hazard(entityID, entities.ProjectileSpec{
				Kind:               components.ProjectileWeb,
				X:                  float64(s.rng.Intn(naveWebColumns)+naveWebFirst) * config.BlockSize,
				Y:                  config.NaveHeight,
				W:                  config.BlockSize,
				H:                  config.BlockSize,
				DirY:               1,
				ConsumeOnPlayerHit: true,
			})
		}
		boss.LastFire = now
	}

	switch boss.Cycle.Phase {
	case components.PhaseIdle:
		boss.Rows = boss.Rows[:0]
		for i := 0; i < 2; i++ {
			boss.Rows = append(boss.Rows, float64(s.rng.Intn(naveRows))*naveRowSpacing+naveFirstRowY)
		}
		s.audio.Play("warning", false)
		for _, y := range boss.Rows {
			s.alerts.Spawn(entityID, config.WarningCenterX, y-config.BlockSize/2, config.AlertSize, config.AlertSize)
		}
		s.enter(entityID, &boss.Cycle, components.PhaseWarning)
	case components.PhaseWarning:
		if boss.Cycle.Elapsed(now) < config.NaveWarning {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		for _, y := range boss.Rows {
			s.hazard(entityID, entities.ProjectileSpec{
				Kind: components.ProjectileString,
				X:    naveStringX,
				Y:    y,
				W:    naveStringW,
				H:    config.BlockSize / 2,
			})
		}
		s.audio.Play("laser", false)
		s.enter(entityID, &boss.Cycle, components.PhaseActive)
	case components.PhaseActive:
		if boss.Cycle.Elapsed(now) >= config.NaveStrings {
			s.projectiles.RetireOwnedBy(entityID, components.ProjectileString)
			s.audio.Play("laser", false)
			s.enter(entityID, &boss.Cycle, components.PhaseIdle)
		}
	}
}
