package systems

import (
	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/entities"
	"github.com/decker502/batata/pkg/utils"
)

// AlertSystem 管理攻击预警提示框
//
// 提示框属于发出它的角色，角色进入攻击阶段或死亡时被清除。
type AlertSystem struct {
	em    *ecs.EntityManager
	clock *utils.SimClock
}

// NewAlertSystem 创建预警系统
func NewAlertSystem(em *ecs.EntityManager, clock *utils.SimClock) *AlertSystem {
	return &AlertSystem{em: em, clock: clock}
}

// Spawn 为 owner 生成一个 w×h 的提示框
func (as *AlertSystem) Spawn(owner ecs.EntityID, x, y, w, h float64) ecs.EntityID {
	return entities.NewAlertEntity(as.em, owner, x, y, w, h, as.clock.Now())
}

// Clear 清除单个提示框，已经清除的提示框为空操作
func (as *AlertSystem) Clear(id ecs.EntityID) {
	alert, ok := ecs.GetComponent[*components.AlertComponent](as.em, id)
	if !ok || !alert.Active {
		return
	}
	alert.Active = false
	as.em.DestroyEntity(id)
}

// OwnedBy 返回 owner 仍然激活的提示框
func (as *AlertSystem) OwnedBy(owner ecs.EntityID) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.AlertComponent](as.em) {
		alert, _ := ecs.GetComponent[*components.AlertComponent](as.em, id)
		if alert.Active && alert.OwnerID == owner {
			result = append(result, id)
		}
	}
	return result
}

// ClearOwnedBy 清除 owner 的全部提示框，可重复调用
func (as *AlertSystem) ClearOwnedBy(owner ecs.EntityID) {
	for _, id := range as.OwnedBy(owner) {
		as.Clear(id)
	}
}
