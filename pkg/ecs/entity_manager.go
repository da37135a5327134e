// Package ecs 提供实体-组件存储
//
// 查询结果按实体创建顺序返回，保证同一种子下的模拟可以完整复现。
package ecs

import "reflect"

// EntityID 是实体的唯一标识符，0 保留为无效 ID
type EntityID uint64

// store 同一类型的全部组件
type store map[EntityID]any

// EntityManager 管理房间内的全部实体
//
// 组件按类型分桶保存；销毁分两步：DestroyEntity 只做标记，
// 一个 tick 结束时 RemoveMarkedEntities 统一清理，
// 因此 tick 中途被击败的实体对同一 tick 的其余系统仍然可见。
type EntityManager struct {
	nextID EntityID
	alive  map[EntityID]struct{}
	order  []EntityID
	stores map[reflect.Type]store
	marked map[EntityID]struct{}
}

// NewEntityManager 创建空的实体管理器
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID: 1,
		alive:  make(map[EntityID]struct{}),
		stores: make(map[reflect.Type]store),
		marked: make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回递增的 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := em.nextID
	em.nextID++
	em.alive[id] = struct{}{}
	em.order = append(em.order, id)
	return id
}

// DestroyEntity 标记实体待删除，重复标记无副作用
func (em *EntityManager) DestroyEntity(id EntityID) {
	if em.Exists(id) {
		em.marked[id] = struct{}{}
	}
}

// IsMarkedForDestruction 实体是否已被标记删除
func (em *EntityManager) IsMarkedForDestruction(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// Exists 实体是否仍在管理器中（包括已标记但尚未清理的实体）
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.alive[id]
	return ok
}

// AddComponent 为实体添加组件，同类型组件会被替换
func (em *EntityManager) AddComponent(id EntityID, component any) {
	em.put(id, reflect.TypeOf(component), component)
}

func (em *EntityManager) put(id EntityID, t reflect.Type, component any) {
	if !em.Exists(id) {
		return
	}
	s, ok := em.stores[t]
	if !ok {
		s = make(store)
		em.stores[t] = s
	}
	s[id] = component
}

// RemoveComponent 移除实体的指定类型组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	delete(em.stores[componentType], id)
}

// GetComponent 获取实体的指定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	c, ok := em.stores[componentType][id]
	return c, ok
}

// HasComponent 实体是否拥有指定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.stores[componentType][id]
	return ok
}

// RemoveMarkedEntities 清理所有标记删除的实体及其组件
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.marked) == 0 {
		return
	}
	for id := range em.marked {
		delete(em.alive, id)
		for _, s := range em.stores {
			delete(s, id)
		}
	}
	kept := em.order[:0]
	for _, id := range em.order {
		if _, gone := em.marked[id]; !gone {
			kept = append(kept, id)
		}
	}
	em.order = kept
	clear(em.marked)
}

// EntityCount 当前实体数量（包括已标记但尚未清理的实体）
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// GetEntitiesWith 拥有全部指定组件类型的实体，按创建顺序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	stores := make([]store, 0, len(componentTypes))
	for _, t := range componentTypes {
		s := em.stores[t]
		if len(s) == 0 {
			return nil
		}
		stores = append(stores, s)
	}
	result := make([]EntityID, 0)
	for _, id := range em.order {
		if hasAll(stores, id) {
			result = append(result, id)
		}
	}
	return result
}

func hasAll(stores []store, id EntityID) bool {
	for _, s := range stores {
		if _, ok := s[id]; !ok {
			return false
		}
	}
	return true
}
