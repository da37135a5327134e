package systems

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/utils"
)

// ParticleSystem 管理击败烟雾（pof）的生成和过期
type ParticleSystem struct {
	em    *ecs.EntityManager
	clock *utils.SimClock
}

// NewParticleSystem 创建烟雾系统
func NewParticleSystem(em *ecs.EntityManager, clock *utils.SimClock) *ParticleSystem {
	return &ParticleSystem{em: em, clock: clock}
}

// SpawnPof 在 (x, y) 生成边长为 size 的烟雾
func (ps *ParticleSystem) SpawnPof(x, y, size float64) ecs.EntityID {
	return entities.NewPofEntity(ps.em, x, y, size, ps.clock.Now())
}

// Update 移除存在超过 PofLifetime 的烟雾
func (ps *ParticleSystem) Update() {
	now := ps.clock.Now()
	for _, id := range ecs.GetEntitiesWith1[*components.PofComponent](ps.em) {
		pof, _ := ecs.GetComponent[*components.PofComponent](ps.em, id)
		if pof.Expired(now) {
			ps.em.DestroyEntity(id)
		}
	}
}
