package systems

import (
	"testing"

	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/types"
	"pgregory.net/rapid"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Rect
		want bool
	}{
		{"部分重叠", types.Rect{X: 0, Y: 0, W: 50, H: 50}, types.Rect{X: 25, Y: 25, W: 50, H: 50}, true},
		{"包含", types.Rect{X: 0, Y: 0, W: 100, H: 100}, types.Rect{X: 25, Y: 25, W: 10, H: 10}, true},
		{"右边缘接触", types.Rect{X: 0, Y: 0, W: 50, H: 50}, types.Rect{X: 50, Y: 0, W: 50, H: 50}, false},
		{"下边缘接触", types.Rect{X: 0, Y: 0, W: 50, H: 50}, types.Rect{X: 0, Y: 50, W: 50, H: 50}, false},
		{"角接触", types.Rect{X: 0, Y: 0, W: 50, H: 50}, types.Rect{X: 50, Y: 50, W: 50, H: 50}, false},
		{"分离", types.Rect{X: 0, Y: 0, W: 50, H: 50}, types.Rect{X: 200, Y: 200, W: 50, H: 50}, false},
		{"差一个像素", types.Rect{X: 0, Y: 0, W: 50, H: 50}, types.Rect{X: 49, Y: 49, W: 50, H: 50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func drawRect(t *rapid.T, label string) types.Rect {
	return types.Rect{
		X: float64(rapid.IntRange(-100, 1400).Draw(t, label+".x")),
		Y: float64(rapid.IntRange(-100, 850).Draw(t, label+".y")),
		W: float64(rapid.IntRange(1, 300).Draw(t, label+".w")),
		H: float64(rapid.IntRange(1, 300).Draw(t, label+".h")),
	}
}

func TestOverlapsProperties(t *testing.T) {
	t.Run("对称", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a, b := drawRect(t, "a"), drawRect(t, "b")
			if Overlaps(a, b) != Overlaps(b, a) {
				t.Fatalf("Overlaps 不对称: %v %v", a, b)
			}
		})
	})

	t.Run("与自身重叠", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := drawRect(t, "a")
			if !Overlaps(a, a) {
				t.Fatalf("%v 应与自身重叠", a)
			}
		})
	})

	t.Run("紧邻不重叠", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a := drawRect(t, "a")
			b := drawRect(t, "b")
			b.X = a.X + a.W
			if Overlaps(a, b) {
				t.Fatalf("紧邻的 %v 与 %v 不应重叠", a, b)
			}
		})
	})
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		name string
		r    types.Rect
		want bool
	}{
		{"左上角", types.Rect{X: 0, Y: 0, W: 50, H: 50}, false},
		{"右下角", types.Rect{X: 1250, Y: 700, W: 50, H: 50}, false},
		{"超出右边", types.Rect{X: 1251, Y: 0, W: 50, H: 50}, true},
		{"超出下边", types.Rect{X: 0, Y: 701, W: 50, H: 50}, true},
		{"超出左边", types.Rect{X: -1, Y: 0, W: 50, H: 50}, true},
		{"超出上边", types.Rect{X: 0, Y: -0.5, W: 50, H: 50}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutOfBounds(tt.r); got != tt.want {
				t.Errorf("OutOfBounds(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestOutOfBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := float64(rapid.IntRange(1, 300).Draw(t, "w"))
		h := float64(rapid.IntRange(1, 300).Draw(t, "h"))
		x := float64(rapid.IntRange(0, 1300-int(w)).Draw(t, "x"))
		y := float64(rapid.IntRange(0, 750-int(h)).Draw(t, "y"))
		if OutOfBounds(types.Rect{X: x, Y: y, W: w, H: h}) {
			t.Fatalf("完全位于场地内的矩形被判定越界: (%v,%v,%v,%v)", x, y, w, h)
		}
	})
}

func TestCollisionWorldActivity(t *testing.T) {
	f := newFixture()
	player := f.player(0, 0)
	wall := f.wall(0, 0, 100, 100)
	shot := f.shot(10, 10)
	enemy := f.enemy(t, "slime", 0, 0, 1)
	alert := f.alerts.Spawn(enemy, 0, 0, 50, 50)

	t.Run("按创建顺序返回", func(t *testing.T) {
		got := f.cw.OverlappingAny(types.Rect{X: 0, Y: 0, W: 20, H: 20},
			types.LayerWall, types.LayerEnemy, types.LayerProjectile, types.LayerPlayer)
		want := []ecs.EntityID{player, wall, shot, enemy}
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("第 %d 个 = %d, want %d", i, got[i], want[i])
			}
		}
	})

	t.Run("提示框不参与碰撞", func(t *testing.T) {
		if f.cw.IsActive(alert) {
			t.Error("提示框不应处于激活状态")
		}
	})

	t.Run("失活的投射物立即排除", func(t *testing.T) {
		f.projectiles.Deactivate(shot)
		if len(f.cw.Collidables(types.LayerProjectile)) != 0 {
			t.Error("失活的投射物仍然可以查询到")
		}
	})

	t.Run("死亡的角色立即排除", func(t *testing.T) {
		f.combat.Kill(enemy)
		if f.cw.OverlapsEntity(player, enemy) {
			t.Error("死亡的敌人仍然参与碰撞")
		}
		if len(f.cw.Collidables(types.LayerEnemy)) != 0 {
			t.Error("死亡的敌人仍然可以查询到")
		}
	})
}

func TestFirstOverlapRespectsMatrix(t *testing.T) {
	f := newFixture()
	player := f.player(100, 100)
	enemy := f.enemy(t, "slime", 120, 100, 1)
	wall := f.wall(140, 100, 50, 50)

	tests := []struct {
		name      string
		initiator ecs.EntityID
		layer     types.Layer
		want      ecs.EntityID
		wantOK    bool
	}{
		{"玩家检测敌人", player, types.LayerEnemy, enemy, true},
		{"玩家检测墙体", player, types.LayerWall, wall, true},
		{"敌人检测墙体", enemy, types.LayerWall, wall, true},
		{"敌人不主动检测玩家", enemy, types.LayerPlayer, 0, false},
		{"墙体不主动检测任何层", wall, types.LayerEnemy, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := f.cw.FirstOverlap(tt.initiator, tt.layer)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("FirstOverlap = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRectIgnoresActivity(t *testing.T) {
	f := newFixture()
	shot := f.shot(30, 40)
	f.projectiles.Deactivate(shot)
	r, ok := f.cw.Rect(shot)
	if !ok || r != (types.Rect{X: 30, Y: 40, W: 10, H: 10}) {
		t.Errorf("Rect = %v, %v", r, ok)
	}
	if f.projectiles.IsActive(shot) {
		t.Error("投射物应已失活")
	}
}
