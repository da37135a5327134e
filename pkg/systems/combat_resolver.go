package systems

import (
	"log"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

// HitResult 子弹命中角色后的结果
type HitResult int

const (
	// HitRefused 角色拒绝伤害，子弹继续飞行
	HitRefused HitResult = iota
	// HitAbsorbed 子弹被吸收但没有造成伤害
	HitAbsorbed
	// HitApplied 造成了伤害
	HitApplied
)

// CombatResolver 处理伤害的判定和结算
//
// 同一个 tick 内一对实体最多结算一次伤害，
// 已失活的投射物在本 tick 剩余的检查中被跳过。
type CombatResolver struct {
	em          *ecs.EntityManager
	cw          *CollisionWorld
	clock       *utils.SimClock
	audio       AudioPlayer
	projectiles *ProjectileSystem
	alerts      *AlertSystem
	particles   *ParticleSystem

	hitSounds map[types.BossKind]string
}

// NewCombatResolver 创建战斗结算器
func NewCombatResolver(
	em *ecs.EntityManager,
	cw *CollisionWorld,
	clock *utils.SimClock,
	audio AudioPlayer,
	projectiles *ProjectileSystem,
	alerts *AlertSystem,
	particles *ParticleSystem,
) *CombatResolver {
	if audio == nil {
		audio = NopAudio{}
	}
	return &CombatResolver{
		em:          em,
		cw:          cw,
		clock:       clock,
		audio:       audio,
		projectiles: projectiles,
		alerts:      alerts,
		particles:   particles,
		hitSounds:   make(map[types.BossKind]string),
	}
}

// SetHitSound 设置 Boss 受击但未死亡时的音效
func (cr *CombatResolver) SetHitSound(kind types.BossKind, key string) {
	cr.hitSounds[kind] = key
}

// Player 返回玩家实体
func (cr *CombatResolver) Player() (ecs.EntityID, bool) {
	players := ecs.GetEntitiesWith1[*components.PlayerComponent](cr.em)
	if len(players) == 0 {
		return 0, false
	}
	return players[0], true
}

// ResolveProjectiles 对每个激活的投射物做一次碰撞结算，按创建顺序
func (cr *CombatResolver) ResolveProjectiles() {
	for _, id := range ecs.GetEntitiesWith1[*components.ProjectileComponent](cr.em) {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](cr.em, id)
		if !proj.Active {
			continue
		}
		if proj.FromPlayer() {
			cr.ResolvePlayerShot(id)
		} else {
			cr.ResolveHostileHit(id)
		}
	}
}

// ResolvePlayerShot 结算玩家子弹
//
// 按创建顺序检查重叠的敌人、投射物和墙体，遇到第一个消耗子弹的目标即停止：
//   - 敌人：接受或吸收伤害时消耗子弹，拒绝时子弹继续
//   - 可格挡的投射物：双方都失活；不可格挡的投射物让子弹穿过
//   - 墙体：消耗子弹
func (cr *CombatResolver) ResolvePlayerShot(shot ecs.EntityID) {
	r, ok := cr.cw.Rect(shot)
	if !ok || !cr.projectiles.IsActive(shot) {
		return
	}
	for _, target := range cr.cw.OverlappingAny(r, types.LayerEnemy, types.LayerProjectile, types.LayerWall) {
		if target == shot || !types.MayInteract(types.LayerProjectile, cr.cw.Layer(target)) {
			continue
		}
		consumed := false
		switch cr.cw.Layer(target) {
		case types.LayerEnemy:
			consumed = cr.DamageActor(target, 1) != HitRefused
		case types.LayerProjectile:
			consumed = cr.parry(target)
		case types.LayerWall:
			consumed = true
		}
		if consumed {
			cr.projectiles.Deactivate(shot)
			return
		}
	}
}

// parry 玩家子弹命中敌方投射物，返回子弹是否被消耗
func (cr *CombatResolver) parry(target ecs.EntityID) bool {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](cr.em, target)
	if !ok || proj.FromPlayer() || !proj.Collidable {
		return false
	}
	if proj.Kind == components.ProjectileCotton {
		if r, ok := cr.cw.Rect(target); ok {
			cr.audio.Play("kill", false)
			cr.particles.SpawnPof(r.X, r.Y, r.W*config.PofScale)
		}
	}
	proj.Parried = true
	cr.projectiles.Deactivate(target)
	return true
}

// ResolveHostileHit 结算敌方投射物
//
// 命中玩家时尝试造成伤害；ConsumeOnPlayerHit 的投射物在伤害生效后消失，
// Solid 的投射物接触玩家或墙体即消失。
func (cr *CombatResolver) ResolveHostileHit(id ecs.EntityID) {
	proj, ok := ecs.GetComponent[*components.ProjectileComponent](cr.em, id)
	if !ok || !proj.Active {
		return
	}
	if cr.cw.OverlapsLayer(id, types.LayerPlayer) {
		applied := cr.DamagePlayer()
		if proj.Solid || (proj.ConsumeOnPlayerHit && applied) {
			cr.projectiles.Deactivate(id)
			return
		}
	}
	if proj.Solid && cr.cw.OverlapsLayer(id, types.LayerWall) {
		cr.projectiles.Deactivate(id)
	}
}

// ResolveContact 接触伤害：角色与玩家重叠时对玩家造成 1 点伤害
func (cr *CombatResolver) ResolveContact(actor ecs.EntityID) bool {
	player, ok := cr.Player()
	if !ok || !cr.cw.OverlapsEntity(actor, player) {
		return false
	}
	return cr.DamagePlayer()
}

// DamagePlayer 对玩家造成 1 点伤害
//
// 返回:
//   - bool: 伤害是否生效（玩家处于无敌窗口或已死亡时为 false）
func (cr *CombatResolver) DamagePlayer() bool {
	player, ok := cr.Player()
	if !ok {
		return false
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](cr.em, player)
	if !ok || health.Dead {
		return false
	}
	now := cr.clock.Now()
	inv, hasInv := ecs.GetComponent[*components.InvulnerabilityComponent](cr.em, player)
	if hasInv && inv.Invulnerable(now) {
		return false
	}

	health.Current--
	if hasInv {
		inv.Start(now)
	}
	cr.audio.Play("hurt", false)
	if health.Current <= 0 {
		health.Dead = true
		log.Printf("[CombatResolver] 玩家死亡")
	}
	return true
}

// DamageActor 玩家子弹对敌人或 Boss 造成伤害
//
// 各原型的规则：
//   - 沉睡中的 Armandibula / Morcerango 拒绝伤害
//   - Cappuccino 只在暴露阶段接受伤害
//   - MofadaBombada 的本体吸收子弹，只有格挡重拳才会伤害它
//   - 击败动画中的 Boss 吸收子弹
//   - NaveMaeranha 在生命值不超过 1/3 后每次受到 3 点伤害
func (cr *CombatResolver) DamageActor(id ecs.EntityID, amount int) HitResult {
	health, ok := ecs.GetComponent[*components.HealthComponent](cr.em, id)
	if !ok || health.Dead {
		return HitRefused
	}

	if boss, ok := ecs.GetComponent[*components.BossComponent](cr.em, id); ok {
		switch {
		case boss.Cycle.Is(components.PhaseDying):
			return HitAbsorbed
		case boss.Kind == types.BossMofadaBombada:
			return HitAbsorbed
		case boss.Kind == types.BossCappuccino && !boss.Cycle.Is(components.PhaseActive):
			return HitRefused
		case boss.Kind == types.BossNaveMaeranha && health.Current <= health.Max/3:
			amount = 3
		}
		cr.ApplyDamage(id, amount)
		return HitApplied
	}

	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](cr.em, id); ok {
		switch enemy.Kind {
		case types.EnemyArmandibula, types.EnemyMorcerango:
			if enemy.Cycle.Is(components.PhaseSleeping) || enemy.Cycle.Is(components.PhaseWarning) {
				return HitRefused
			}
		case types.EnemyAlho:
			cr.damageAlho(id, enemy, health, amount)
			return HitApplied
		}
	}

	cr.ApplyDamage(id, amount)
	return HitApplied
}

// ApplyDamage 无条件扣除生命值，处理受击反馈和死亡
//
// 格挡重拳等规则触发的伤害直接调用它，绕过 DamageActor 的拒绝规则。
func (cr *CombatResolver) ApplyDamage(id ecs.EntityID, amount int) {
	health, ok := ecs.GetComponent[*components.HealthComponent](cr.em, id)
	if !ok || health.Dead {
		return
	}
	health.Current -= amount

	if boss, ok := ecs.GetComponent[*components.BossComponent](cr.em, id); ok {
		if health.Current > 0 {
			if key := cr.hitSounds[boss.Kind]; key != "" {
				cr.audio.Play(key, false)
			}
			return
		}
		switch boss.Kind {
		case types.BossLarry, types.BossNaveMaeranha:
			cr.startDefeat(id, boss)
		default:
			cr.Kill(id)
		}
		return
	}

	if health.Current <= 0 {
		cr.Kill(id)
		return
	}
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](cr.em, id); ok {
		switch enemy.Kind {
		case types.EnemyChocochato:
			cr.audio.Play("crunch", false)
			enemy.Damaged = true
			enemy.DamagedSince = cr.clock.Now()
			if sprite, ok := ecs.GetComponent[*components.SpriteComponent](cr.em, id); ok {
				sprite.Key = string(enemy.Kind) + "_damaged"
			}
		case types.EnemySlimeBot, types.EnemyGigaBot:
			cr.audio.Play("glitch", false)
		}
	}
}

// damageAlho 大蒜受伤：完整阶段受伤后分裂出一个反向移动的蒜瓣，每次受伤都有烟雾
func (cr *CombatResolver) damageAlho(id ecs.EntityID, enemy *components.EnemyComponent, health *components.HealthComponent, amount int) {
	health.Current -= amount
	pos, _ := ecs.GetComponent[*components.PositionComponent](cr.em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](cr.em, id)
	actor, _ := ecs.GetComponent[*components.ActorComponent](cr.em, id)

	if enemy.Stage == components.AlhoWhole && health.Current < config.AlhoFullHealth {
		spawn := config.EnemySpawn{
			Kind:      types.EnemyAlho,
			X:         pos.X,
			Y:         pos.Y,
			Direction: actor.Direction.Opposite(),
			Health:    2,
		}
		stats := config.EnemyStats{Health: 2, Width: col.Width, Height: col.Height, Contact: true}
		if _, err := entities.NewEnemyEntity(cr.em, spawn, stats, cr.clock.Now()); err != nil {
			log.Printf("[CombatResolver] ⚠️ 大蒜分裂失败: %v", err)
		}
	}
	enemy.Stage = entities.AlhoStageFor(health.Current)
	actor.Speed = entities.AlhoSpeed(enemy.Stage)

	cr.audio.Play("kill", false)
	cr.particles.SpawnPof(pos.X, pos.Y, col.Width*config.PofScale)
	if health.Current <= 0 {
		cr.finish(id)
	}
}

// startDefeat 进入击败动画：停止音乐、清除提示框，动画结束后由行为系统调用 Defeat
func (cr *CombatResolver) startDefeat(id ecs.EntityID, boss *components.BossComponent) {
	if err := boss.Cycle.Enter(components.PhaseDying, cr.clock.Now()); err != nil {
		return
	}
	if cr.audio.IsPlaying() {
		cr.audio.Stop()
	}
	cr.alerts.ClearOwnedBy(id)
	cr.projectiles.RetireOwnedBy(id, "")
	log.Printf("[CombatResolver] %s 进入击败动画", boss.Name)
}

// Kill 致命伤害：标记死亡、生成烟雾、播放击败音效、清除提示框并回收所有投射物
// 对同一个角色只会生效一次
func (cr *CombatResolver) Kill(id ecs.EntityID) {
	health, ok := ecs.GetComponent[*components.HealthComponent](cr.em, id)
	if !ok || health.Dead {
		return
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](cr.em, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](cr.em, id)
	x, y := pos.X, pos.Y
	if boss, ok := ecs.GetComponent[*components.BossComponent](cr.em, id); ok && boss.Kind != types.BossCerberoNimbus {
		x -= col.Width / 4
		y -= col.Width / 4
	}
	cr.particles.SpawnPof(x, y, col.Width*config.PofScale)
	cr.Defeat(id, "kill")
}

// Defeat 结束角色：标记死亡、播放 sound（为空时不播放）、清除提示框、回收投射物
func (cr *CombatResolver) Defeat(id ecs.EntityID, sound string) {
	health, ok := ecs.GetComponent[*components.HealthComponent](cr.em, id)
	if !ok || health.Dead {
		return
	}
	if sound != "" {
		cr.audio.Play(sound, false)
	}
	cr.finish(id)
}

func (cr *CombatResolver) finish(id ecs.EntityID) {
	health, _ := ecs.GetComponent[*components.HealthComponent](cr.em, id)
	health.Dead = true
	cr.alerts.ClearOwnedBy(id)
	retired := cr.projectiles.RetireOwnedBy(id, "")
	cr.em.DestroyEntity(id)
	if boss, ok := ecs.GetComponent[*components.BossComponent](cr.em, id); ok {
		log.Printf("[CombatResolver] Boss %s 被击败，回收 %d 个投射物", boss.Name, retired)
	}
}
