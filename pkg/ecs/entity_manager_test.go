package ecs

import (
	"reflect"
	"testing"
)

type testRectComponent struct {
	X, Y, W, H float64
}

type testTagComponent struct {
	Name string
}

func TestCreateEntityIDsStartAtOne(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Fatalf("实体ID应从1开始递增, got %d, %d", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testRectComponent{X: 100, Y: 200, W: 50, H: 50})

	rect, ok := GetComponent[*testRectComponent](em, id)
	if !ok {
		t.Fatal("组件应存在")
	}
	if rect.X != 100 || rect.Y != 200 {
		t.Errorf("组件数据不一致: %+v", rect)
	}

	// 泛型与反射 API 使用同一套类型键
	if !em.HasComponent(id, reflect.TypeOf(&testRectComponent{})) {
		t.Error("反射 API 应能查到泛型添加的组件")
	}
	if HasComponent[*testTagComponent](em, id) {
		t.Error("未添加的组件不应存在")
	}

	RemoveComponent[*testRectComponent](em, id)
	if _, ok := GetComponent[*testRectComponent](em, id); ok {
		t.Error("移除后组件不应存在")
	}
}

func TestQueriesFollowCreationOrder(t *testing.T) {
	em := NewEntityManager()
	var want []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testRectComponent{})
		if i%3 == 0 {
			AddComponent(em, id, &testTagComponent{})
			want = append(want, id)
		}
	}

	for round := 0; round < 5; round++ {
		got := GetEntitiesWith2[*testRectComponent, *testTagComponent](em)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("第 %d 次查询顺序不稳定: got %v, want %v", round, got, want)
		}
	}
}

func TestDestroyIsDeferredUntilPrune(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()
	for _, id := range []EntityID{id1, id2, id3} {
		AddComponent(em, id, &testRectComponent{})
	}

	em.DestroyEntity(id1)
	em.DestroyEntity(id1)
	em.DestroyEntity(id3)

	if !em.IsMarkedForDestruction(id1) || em.IsMarkedForDestruction(id2) {
		t.Fatal("标记状态不正确")
	}
	if got := GetEntitiesWith1[*testRectComponent](em); len(got) != 3 {
		t.Fatalf("清理前实体仍应可查询, got %d", len(got))
	}

	em.RemoveMarkedEntities()

	got := GetEntitiesWith1[*testRectComponent](em)
	if !reflect.DeepEqual(got, []EntityID{id2}) {
		t.Fatalf("清理后应只剩 id2, got %v", got)
	}
	if em.Exists(id1) || em.Exists(id3) {
		t.Error("被清理的实体不应存在")
	}
	if em.IsMarkedForDestruction(id1) {
		t.Error("清理后标记集合应清空")
	}

	// 对已清理的实体再次标记无副作用
	em.DestroyEntity(id1)
	em.RemoveMarkedEntities()
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", em.EntityCount())
	}
}

func TestGetEntitiesWith3(t *testing.T) {
	type third struct{ N int }
	em := NewEntityManager()
	a := em.CreateEntity()
	AddComponent(em, a, &testRectComponent{})
	AddComponent(em, a, &testTagComponent{})
	AddComponent(em, a, &third{})
	b := em.CreateEntity()
	AddComponent(em, b, &testRectComponent{})
	AddComponent(em, b, &testTagComponent{})

	got := GetEntitiesWith3[*testRectComponent, *testTagComponent, *third](em)
	if len(got) != 1 || got[0] != a {
		t.Errorf("GetEntitiesWith3 = %v, want [%d]", got, a)
	}
}
