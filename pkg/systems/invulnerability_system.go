package systems

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/utils"
)

// InvulnerabilitySystem 结束到期的无敌窗口，并在窗口内按间隔切换可见性
type InvulnerabilitySystem struct {
	em    *ecs.EntityManager
	clock *utils.SimClock
}

// NewInvulnerabilitySystem 创建无敌窗口系统
func NewInvulnerabilitySystem(em *ecs.EntityManager, clock *utils.SimClock) *InvulnerabilitySystem {
	return &InvulnerabilitySystem{em: em, clock: clock}
}

// Update 更新所有无敌组件
func (s *InvulnerabilitySystem) Update() {
	now := s.clock.Now()
	for _, id := range ecs.GetEntitiesWith1[*components.InvulnerabilityComponent](s.em) {
		inv, _ := ecs.GetComponent[*components.InvulnerabilityComponent](s.em, id)
		if !inv.Active {
			inv.Visible = true
			continue
		}
		elapsed := now - inv.Since
		if elapsed >= inv.Duration {
			inv.Active = false
			inv.Visible = true
			continue
		}
		if inv.FlickerEvery > 0 {
			inv.Visible = (elapsed/inv.FlickerEvery)%2 == 1
		}
	}
}
