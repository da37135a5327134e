package components

import (
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
)

// ProjectileKind 投射物种类
type ProjectileKind string

const (
	ProjectileCarrot  ProjectileKind = "carrot"   // 玩家的胡萝卜
	ProjectileKnife   ProjectileKind = "knife"    // Prato 的飞刀
	ProjectileArm     ProjectileKind = "arm"      // QueijoBoxer 的拳臂
	ProjectileCotton  ProjectileKind = "cotton"   // 棉花糖
	ProjectileLaser   ProjectileKind = "laser"    // SlimeBot / GigaBot 的激光
	ProjectileClone   ProjectileKind = "clone"    // Cappuccino 的分身
	ProjectileFlame   ProjectileKind = "flame"    // GigaSlime 的火焰
	ProjectileFork    ProjectileKind = "fork"     // SirPlatoh 的叉子
	ProjectileCleaver ProjectileKind = "cleaver"  // SirPlatoh 的大刀
	ProjectileMold    ProjectileKind = "mold"     // MofadaBombada 的霉菌球
	ProjectilePunch   ProjectileKind = "punch"    // MofadaBombada 的重拳
	ProjectileWeb     ProjectileKind = "web"      // 蛛网
	ProjectileString  ProjectileKind = "string"   // 蛛丝
)

// ProjectileComponent 投射物与静态危险区域
//
// 激光、火焰、蛛丝等静态危险区域方向为 0，不会移动。
// Active 一旦为 false 就不会再变回 true。
type ProjectileComponent struct {
	Kind       ProjectileKind
	DirX, DirY float64 // 每 tick 的方向倍率
	Speed      float64
	// Collidable 是否能被玩家子弹格挡
	Collidable bool
	OwnerLayer types.Layer
	OwnerID    ecs.EntityID
	Active     bool
	// ConsumeOnPlayerHit 对玩家造成伤害后是否消失
	ConsumeOnPlayerHit bool
	// Solid 碰到墙体即消失，碰到玩家时无论是否造成伤害都会消失
	Solid bool
	// Parried 被玩家子弹格挡而失活
	Parried bool
}

// FromPlayer 是否为玩家发射
func (p *ProjectileComponent) FromPlayer() bool {
	return p.OwnerLayer == types.LayerPlayer
}
