package behavior

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
)

// sightBox 角色面前宽一格、长 reach 的矩形
func sightBox(pos *components.PositionComponent, col *components.CollisionComponent, dir types.Direction, reach float64) types.Rect {
	switch dir {
	case types.DirLeft:
		return types.Rect{X: pos.X - reach, Y: pos.Y, W: reach, H: config.BlockSize}
	case types.DirRight:
		return types.Rect{X: pos.X + col.Width, Y: pos.Y, W: reach, H: config.BlockSize}
	case types.DirUp:
		return types.Rect{X: pos.X, Y: pos.Y - reach, W: config.BlockSize, H: reach}
	default:
		return types.Rect{X: pos.X, Y: pos.Y + col.Height, W: config.BlockSize, H: reach}
	}
}

// beamBox 从角色一侧伸出的长条（拳臂、激光）
//
// thickness 为横向宽度并在角色边上居中，overlap 为长条伸入角色本体的长度。
func beamBox(pos *components.PositionComponent, col *components.CollisionComponent, dir types.Direction, reach, thickness, overlap float64) types.Rect {
	offset := (col.Width - thickness) / 2
	switch dir {
	case types.DirLeft:
		return types.Rect{X: pos.X - reach + overlap, Y: pos.Y + offset, W: reach, H: thickness}
	case types.DirRight:
		return types.Rect{X: pos.X + col.Width - overlap, Y: pos.Y + offset, W: reach, H: thickness}
	case types.DirUp:
		return types.Rect{X: pos.X + offset, Y: pos.Y - reach + overlap, W: thickness, H: reach}
	default:
		return types.Rect{X: pos.X + offset, Y: pos.Y + col.Height - overlap, W: thickness, H: reach}
	}
}

// enemyAlert 在敌人头顶生成提示框
func (s *BehaviorSystem) enemyAlert(entityID ecs.EntityID) {
	pos, col, _ := s.actorParts(entityID)
	x := pos.X + col.Width/2 - config.BlockSize/6
	s.warn(entityID, x, pos.Y-config.BlockSize, config.EnemyAlertSize)
}

// enemyOf 返回敌人的专属状态
func (s *BehaviorSystem) enemyOf(entityID ecs.EntityID) *components.EnemyComponent {
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, entityID)
	return enemy
}

// handlePatrolBehavior Slime / Flyme：接触伤害，沿当前方向移动，碰到竞技场边缘掉头
// 撞墙回退由 WallSystem 处理，飞行的 Flyme 不受墙体影响
func (s *BehaviorSystem) handlePatrolBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	pos, col, actor := s.actorParts(entityID)
	s.step(pos, col, actor, false)
	s.setSprite(entityID, string(s.enemyOf(entityID).Kind)+"_"+actor.Direction.String())
}

// handlePratoBehavior Prato：固定炮台，距离上次发射超过 PratoFireInterval 时朝面向方向掷出飞刀
// 第一把飞刀在出现后立即掷出
func (s *BehaviorSystem) handlePratoBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	enemy := s.enemyOf(entityID)
	now := s.now()
	if enemy.HasFired && now-enemy.LastFire <= config.PratoFireInterval {
		return
	}

	pos, _, actor := s.actorParts(entityID)
	rect, dx, dy := entities.ShotSpec(pos.X, pos.Y, actor.Direction, config.KnifeLength, config.KnifeWidth, config.KnifeDir)
	s.hazard(entityID, entities.ProjectileSpec{
		Kind:               components.ProjectileKnife,
		X:                  rect.X,
		Y:                  rect.Y,
		W:                  rect.W,
		H:                  rect.H,
		DirX:               dx,
		DirY:               dy,
		ConsumeOnPlayerHit: true,
		Solid:              true,
	})
	enemy.LastFire = now
	enemy.HasFired = true
}

// handleArmandibulaBehavior Armandibula：沉睡中免疫伤害且没有接触伤害
// 玩家踩到它时发出预警并咬合，ArmandibulaWakeDelay 后苏醒
func (s *BehaviorSystem) handleArmandibulaBehavior(entityID ecs.EntityID) {
	enemy := s.enemyOf(entityID)
	switch enemy.Cycle.Phase {
	case components.PhaseSleeping:
		player, ok := s.combat.Player()
		if ok && s.collision.OverlapsEntity(entityID, player) {
			s.enemyAlert(entityID)
			s.audio.Play("bite", false)
			s.enter(entityID, &enemy.Cycle, components.PhaseWarning)
		}
	case components.PhaseWarning:
		if enemy.Cycle.Elapsed(s.now()) >= config.ArmandibulaWakeDelay {
			s.alerts.ClearOwnedBy(entityID)
			if s.enter(entityID, &enemy.Cycle, components.PhaseActive) {
				s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseActive))
			}
		}
	default:
		s.combat.ResolveContact(entityID)
	}
}

// handleMorcerangoBehavior Morcerango：出现时记录房间内的敌人数量，
// 数量减少后发出预警，MorcerangoWakeDelay 后开始飞行巡逻
func (s *BehaviorSystem) handleMorcerangoBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	enemy := s.enemyOf(entityID)
	switch enemy.Cycle.Phase {
	case components.PhaseSleeping:
		living := systems.CountLivingEnemies(s.entityManager)
		if !enemy.CountRecorded {
			enemy.InitialEnemies = living
			enemy.CountRecorded = true
		} else if living < enemy.InitialEnemies {
			s.enemyAlert(entityID)
			s.enter(entityID, &enemy.Cycle, components.PhaseWarning)
		}
	case components.PhaseWarning:
		if enemy.Cycle.Elapsed(s.now()) >= config.MorcerangoWakeDelay {
			s.alerts.ClearOwnedBy(entityID)
			if s.enter(entityID, &enemy.Cycle, components.PhaseActive) {
				s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseActive))
			}
		}
	default:
		pos, col, actor := s.actorParts(entityID)
		s.step(pos, col, actor, false)
	}
}

// handleQueijoBoxerBehavior QueijoBoxer：玩家进入视线后预警，QueijoBoxerPunchDelay 后出拳
//
// 拳臂覆盖整个视线范围。拳臂被玩家子弹格挡时 QueijoBoxer 被击倒；
// 拳臂击中玩家后收回，重新等待玩家进入视线。
func (s *BehaviorSystem) handleQueijoBoxerBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	enemy := s.enemyOf(entityID)
	pos, col, actor := s.actorParts(entityID)

	switch enemy.Cycle.Phase {
	case components.PhaseIdle:
		if s.playerIn(sightBox(pos, col, actor.Direction, actor.Range)) {
			s.enemyAlert(entityID)
			s.enter(entityID, &enemy.Cycle, components.PhaseWarning)
		}
	case components.PhaseWarning:
		if enemy.Cycle.Elapsed(s.now()) < config.QueijoBoxerPunchDelay {
			return
		}
		s.alerts.ClearOwnedBy(entityID)
		arm := beamBox(pos, col, actor.Direction, actor.Range, config.BoxerArmThickness, config.BoxerArmOverlap)
		enemy.Hazard = s.hazard(entityID, entities.ProjectileSpec{
			Kind:               components.ProjectileArm,
			X:                  arm.X,
			Y:                  arm.Y,
			W:                  arm.W,
			H:                  arm.H,
			Collidable:         true,
			ConsumeOnPlayerHit: true,
		})
		s.audio.Play("squish", false)
		s.enter(entityID, &enemy.Cycle, components.PhaseActive)
		s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseActive))
	case components.PhaseActive:
		if s.hazardActive(enemy.Hazard) {
			return
		}
		proj, ok := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, enemy.Hazard)
		enemy.Hazard = 0
		if ok && proj.Parried {
			health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, entityID)
			s.combat.ApplyDamage(entityID, health.Current)
			return
		}
		s.enter(entityID, &enemy.Cycle, components.PhaseIdle)
		s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseIdle))
	}
}

// handleChocochatoBehavior Chocochato：静态阻挡，受击外观保持 ChocochatoDamagedSprite
func (s *BehaviorSystem) handleChocochatoBehavior(entityID ecs.EntityID) {
	enemy := s.enemyOf(entityID)
	if enemy.Damaged && s.now()-enemy.DamagedSince >= config.ChocochatoDamagedSprite {
		enemy.Damaged = false
		s.setSprite(entityID, string(enemy.Kind))
	}
}

// handleAlgodogDoceBehavior AlgodogDoce：玩家进入视线后预警，AlgodogDoceRollDelay 后吠叫并翻滚冲锋
//
// 翻滚时在网格点上随机留下可格挡的棉花糖，方向一旦改变（撞墙或碰到边缘）就停止翻滚。
func (s *BehaviorSystem) handleAlgodogDoceBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	enemy := s.enemyOf(entityID)
	pos, col, actor := s.actorParts(entityID)

	switch enemy.Cycle.Phase {
	case components.PhaseIdle:
		if s.playerIn(sightBox(pos, col, actor.Direction, actor.Range)) {
			s.enemyAlert(entityID)
			s.enter(entityID, &enemy.Cycle, components.PhaseWarning)
		}
	case components.PhaseWarning:
		if enemy.Cycle.Elapsed(s.now()) >= config.AlgodogDoceRollDelay {
			s.alerts.ClearOwnedBy(entityID)
			s.audio.Play("bark", false)
			enemy.RollDirection = actor.Direction
			s.enter(entityID, &enemy.Cycle, components.PhaseActive)
			s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseActive))
		}
	case components.PhaseActive:
		if actor.Direction != enemy.RollDirection {
			s.stopRolling(entityID, enemy)
			return
		}
		if onGrid(pos.X) && onGrid(pos.Y) && s.rng.Intn(2) == 1 {
			s.hazard(entityID, entities.ProjectileSpec{
				Kind:       components.ProjectileCotton,
				X:          pos.X,
				Y:          pos.Y,
				W:          config.BlockSize,
				H:          config.BlockSize,
				Collidable: true,
			})
		}
		if s.step(pos, col, actor, false) {
			s.stopRolling(entityID, enemy)
		}
	}
}

func (s *BehaviorSystem) stopRolling(entityID ecs.EntityID, enemy *components.EnemyComponent) {
	s.enter(entityID, &enemy.Cycle, components.PhaseIdle)
	s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseIdle))
}

// onGrid 坐标是否落在网格线上（允许 2 像素的偏差）
func onGrid(v float64) bool {
	return int(v)%int(config.BlockSize) < 2
}

// handleLaserBotBehavior SlimeBot / GigaBot：等待 SlimeBotIdle 后朝面向方向发射激光，
// 激光持续 SlimeBotLaser 后关闭，循环往复
func (s *BehaviorSystem) handleLaserBotBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	enemy := s.enemyOf(entityID)
	now := s.now()

	switch enemy.Cycle.Phase {
	case components.PhaseIdle:
		if enemy.Cycle.Elapsed(now) < config.SlimeBotIdle {
			return
		}
		pos, col, actor := s.actorParts(entityID)
		thickness := config.LaserThickness
		if enemy.Kind == types.EnemyGigaBot {
			thickness = config.BigLaserThickness
		}
		laser := beamBox(pos, col, actor.Direction, actor.Range, thickness, 0)
		enemy.Hazard = s.hazard(entityID, entities.ProjectileSpec{
			Kind: components.ProjectileLaser,
			X:    laser.X,
			Y:    laser.Y,
			W:    laser.W,
			H:    laser.H,
		})
		s.audio.Play("laser", false)
		s.enter(entityID, &enemy.Cycle, components.PhaseActive)
		s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseActive))
	case components.PhaseActive:
		if enemy.Cycle.Elapsed(now) < config.SlimeBotLaser {
			return
		}
		s.retire(enemy.Hazard)
		enemy.Hazard = 0
		s.audio.Play("laser", false)
		s.enter(entityID, &enemy.Cycle, components.PhaseIdle)
		s.setSprite(entityID, entities.EnemySpriteKey(enemy.Kind, components.PhaseIdle))
	}
}

// handleMalandranhaBehavior Malandranha：飞行追踪玩家，两个轴各自向玩家靠近
func (s *BehaviorSystem) handleMalandranhaBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	target, ok := s.playerRect()
	if !ok {
		return
	}
	pos, _, actor := s.actorParts(entityID)
	switch {
	case target.X < pos.X:
		pos.X -= actor.Speed
	case target.X > pos.X:
		pos.X += actor.Speed
	}
	switch {
	case target.Y < pos.Y:
		pos.Y -= actor.Speed
	case target.Y > pos.Y:
		pos.Y += actor.Speed
	}
}

// handleAlhoBehavior Alho：完整阶段静止，剥皮后移动，碰到竞技场边缘随机选择新方向
func (s *BehaviorSystem) handleAlhoBehavior(entityID ecs.EntityID) {
	s.combat.ResolveContact(entityID)
	enemy := s.enemyOf(entityID)
	pos, col, actor := s.actorParts(entityID)
	if enemy.Stage != components.AlhoWhole {
		s.step(pos, col, actor, true)
	}
	switch enemy.Stage {
	case components.AlhoDentalho:
		s.setSprite(entityID, "alho_dentalho")
	case components.AlhoDescascalho:
		s.setSprite(entityID, "alho_descascalho")
	}
}
