package world

import (
	"os"
	"testing"
	"time"

	"github.com/decker502/batata/pkg/components"
	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/ecs"
	"github.com/decker502/batata/pkg/embedded"
	"github.com/decker502/batata/pkg/progress"
	"github.com/decker502/batata/pkg/systems"
	"github.com/decker502/batata/pkg/types"
	"github.com/decker502/batata/pkg/utils"
)

var testStats *config.ActorStatsConfig

func TestMain(m *testing.M) {
	embedded.Init(os.DirFS("../.."))
	stats, err := config.LoadActorStats("data/actor_stats.yaml")
	if err != nil {
		panic(err)
	}
	testStats = stats
	os.Exit(m.Run())
}

// recordingHost 记录屏幕切换
type recordingHost struct {
	screens []types.Screen
	modals  []string
}

func (h *recordingHost) TransitionTo(screen types.Screen) { h.screens = append(h.screens, screen) }
func (h *recordingHost) ShowModal(message string)         { h.modals = append(h.modals, message) }

// loopAudio 记录循环播放的音乐
type loopAudio struct {
	loops []string
}

func (a *loopAudio) Play(key string, loop bool) {
	if loop {
		a.loops = append(a.loops, key)
	}
}
func (a *loopAudio) Stop()           {}
func (a *loopAudio) IsPlaying() bool { return len(a.loops) > 0 }

func newWorld(t *testing.T, layout config.RoomLayout) (*World, *recordingHost) {
	t.Helper()
	host := &recordingHost{}
	w, err := New(layout, Deps{Stats: testStats, Host: host, Rand: &utils.SequenceRandom{Values: []int{1}}})
	if err != nil {
		t.Fatalf("创建房间失败: %v", err)
	}
	return w, host
}

func (w *World) playerPos(t *testing.T) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](w.em, w.player)
	if !ok {
		t.Fatal("玩家没有位置组件")
	}
	return pos
}

func emptyRoom() config.RoomLayout {
	return config.RoomLayout{Room: 0}
}

func TestNewWorld(t *testing.T) {
	t.Run("缺少角色属性", func(t *testing.T) {
		if _, err := New(emptyRoom(), Deps{}); err == nil {
			t.Error("缺少 Stats 时应返回错误")
		}
	})

	t.Run("未知敌人种类", func(t *testing.T) {
		layout := config.RoomLayout{Enemies: []config.EnemySpawn{{Kind: "tomate", X: 500, Y: 500}}}
		if _, err := New(layout, Deps{Stats: testStats}); err == nil {
			t.Error("未知敌人种类应返回错误")
		}
	})

	t.Run("普通房间的初始布局", func(t *testing.T) {
		layout := config.RoomLayout{
			Room:    7,
			Walls:   []config.WallSpec{{X: 0, Y: 0, W: 1300, H: 50}},
			Enemies: []config.EnemySpawn{{Kind: types.EnemySlime, X: 600, Y: 400, Direction: types.DirLeft}},
		}
		w, _ := newWorld(t, layout)
		snap := w.Snapshot()
		if snap.HUD.World != 2 || snap.HUD.Room != 7 {
			t.Errorf("HUD 世界/房间 = %d/%d, want 2/7", snap.HUD.World, snap.HUD.Room)
		}
		if snap.HUD.EnemiesRemaining != 1 || snap.HUD.DoorOpen {
			t.Errorf("HUD 敌人数=%d 门打开=%v", snap.HUD.EnemiesRemaining, snap.HUD.DoorOpen)
		}
		if snap.HUD.PlayerHealth != config.PlayerMaxHealth {
			t.Errorf("玩家生命值 = %d, want %d", snap.HUD.PlayerHealth, config.PlayerMaxHealth)
		}
		pos := w.playerPos(t)
		if pos.X != config.RoomPlayerStartX || pos.Y != config.RoomPlayerStartY {
			t.Errorf("玩家出生点 = (%v,%v)", pos.X, pos.Y)
		}
	})

	t.Run("Boss房间的初始布局", func(t *testing.T) {
		w, _ := newWorld(t, config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossGigaSlime})
		snap := w.Snapshot()
		if !snap.HUD.HasBoss || snap.HUD.BossName != "GIGA SLIME" || snap.HUD.BossHealth != 150 {
			t.Errorf("Boss HUD = %+v", snap.HUD)
		}
		if snap.HUD.World != 1 {
			t.Errorf("HUD 世界 = %d, want 1", snap.HUD.World)
		}
		pos := w.playerPos(t)
		if pos.X != config.BossPlayerStartX || pos.Y != config.BossPlayerStartY {
			t.Errorf("玩家出生点 = (%v,%v)", pos.X, pos.Y)
		}
	})
}

func TestSnapshotDrawOrder(t *testing.T) {
	layout := config.RoomLayout{
		Walls:   []config.WallSpec{{X: 0, Y: 0, W: 1300, H: 50}},
		Enemies: []config.EnemySpawn{{Kind: types.EnemyPrato, X: 600, Y: 375, Direction: types.DirLeft}},
	}
	w, _ := newWorld(t, layout)
	w.Tick()

	snap := w.Snapshot()
	seen := map[ViewKind]int{}
	for i, e := range snap.Entities {
		seen[e.Kind]++
		if i > 0 && snap.Entities[i-1].Kind > e.Kind {
			t.Fatalf("第 %d 个实体 %s 排在 %s 之后", i, e.Kind, snap.Entities[i-1].Kind)
		}
	}
	for _, kind := range []ViewKind{ViewWall, ViewDoor, ViewEnemy, ViewPlayer, ViewProjectile} {
		if seen[kind] != 1 {
			t.Errorf("%s 数量 = %d, want 1", kind, seen[kind])
		}
	}
	if snap.Tick != 1 || snap.Time != config.SimTickInterval {
		t.Errorf("快照 tick=%d time=%v", snap.Tick, snap.Time)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	w, _ := newWorld(t, emptyRoom())
	before := w.Snapshot()
	n := len(before.Entities)
	w.KeyDown(types.KeyShootRight)
	w.SampleInput()
	w.Tick()
	if len(before.Entities) != n {
		t.Error("已发布的快照被修改")
	}
	if len(w.Snapshot().Entities) != n+1 {
		t.Errorf("新快照实体数 = %d, want %d", len(w.Snapshot().Entities), n+1)
	}
}

func TestDoorPassage(t *testing.T) {
	w, host := newWorld(t, emptyRoom())

	w.Tick()
	if !w.Snapshot().HUD.DoorOpen {
		t.Fatal("没有敌人的房间应在第一个 tick 打开门")
	}

	w.playerPos(t).X = config.RoomDoorX - config.PlayerSize + 10
	w.Tick()
	if w.Outcome() != systems.OutcomeDoorPassed || !w.Finished() {
		t.Fatalf("结果 = %s, want door_passed", w.Outcome())
	}
	if len(host.screens) != 1 || host.screens[0] != types.ScreenNextRoom {
		t.Errorf("宿主切换 = %v", host.screens)
	}

	ticks := w.Snapshot().Tick
	w.Tick()
	w.Advance(time.Second)
	if w.Snapshot().Tick != ticks {
		t.Error("房间结束后不应继续推进")
	}
}

func TestGameOver(t *testing.T) {
	w, host := newWorld(t, emptyRoom())
	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, w.player)
	health.Current = 1

	w.combat.DamagePlayer()
	w.Tick()
	if w.Outcome() != systems.OutcomeGameOver {
		t.Fatalf("结果 = %s, want game_over", w.Outcome())
	}
	if len(host.screens) != 1 || host.screens[0] != types.ScreenGameOver {
		t.Errorf("宿主切换 = %v", host.screens)
	}
	if w.Snapshot().HUD.PlayerHealth != 0 {
		t.Errorf("HUD 生命值 = %d", w.Snapshot().HUD.PlayerHealth)
	}
}

func TestBossDefeat(t *testing.T) {
	t.Run("普通Boss被击败后开门", func(t *testing.T) {
		w, host := newWorld(t, config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossGigaSlime})
		w.combat.ApplyDamage(w.boss, 150)
		w.Tick()
		if w.Outcome() != systems.OutcomeBossDefeated {
			t.Fatalf("结果 = %s, want boss_defeated", w.Outcome())
		}
		if len(host.screens) != 0 {
			t.Errorf("普通 Boss 不应切换屏幕: %v", host.screens)
		}
		snap := w.Snapshot()
		if snap.HUD.HasBoss || !snap.HUD.DoorOpen {
			t.Errorf("HUD = %+v", snap.HUD)
		}
	})

	t.Run("Larry逃走后响起警报并显示通话", func(t *testing.T) {
		host := &recordingHost{}
		audio := &loopAudio{}
		w, err := New(config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossLarry},
			Deps{Stats: testStats, Audio: audio, Host: host, Rand: &utils.SequenceRandom{Values: []int{1}}})
		if err != nil {
			t.Fatalf("创建房间失败: %v", err)
		}
		health, _ := ecs.GetComponent[*components.HealthComponent](w.em, w.boss)
		w.combat.ApplyDamage(w.boss, health.Current)
		for i := 0; i <= int(config.LarryDefeat/config.SimTickInterval)+1 && w.Outcome() == systems.OutcomeNone; i++ {
			w.Tick()
		}
		if w.Outcome() != systems.OutcomeBossDefeated {
			t.Fatalf("结果 = %s, want boss_defeated", w.Outcome())
		}
		if len(host.modals) != 1 || host.modals[0] != progress.LarryEscapeMessage {
			t.Errorf("模态消息 = %q", host.modals)
		}
		if len(audio.loops) == 0 || audio.loops[len(audio.loops)-1] != SirenMusic {
			t.Errorf("循环音乐 = %v, want %s", audio.loops, SirenMusic)
		}
		if len(host.screens) != 0 {
			t.Errorf("Larry 不应切换屏幕: %v", host.screens)
		}
		if !w.Snapshot().HUD.DoorOpen {
			t.Error("通话时门应已打开")
		}
	})

	t.Run("最终Boss击败动画结束后胜利", func(t *testing.T) {
		w, host := newWorld(t, config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossNaveMaeranha})
		w.combat.ApplyDamage(w.boss, 450)
		w.Tick()
		if w.Outcome() != systems.OutcomeNone {
			t.Fatalf("击败动画期间结果 = %s", w.Outcome())
		}
		for i := 0; i < int(config.NaveDefeat/config.SimTickInterval)+1; i++ {
			w.Tick()
		}
		if w.Outcome() != systems.OutcomeBossDefeated {
			t.Fatalf("结果 = %s, want boss_defeated", w.Outcome())
		}
		if len(host.screens) != 1 || host.screens[0] != types.ScreenVictory {
			t.Errorf("宿主切换 = %v", host.screens)
		}
	})
}

// 冲锋中的 Boss 压过静止的玩家时，玩家不会被推出场地
func TestBossChargeKeepsPlayerInArena(t *testing.T) {
	w, _ := newWorld(t, config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossCerberoNimbus})
	pos := w.playerPos(t)
	pos.X, pos.Y = 650, 600
	pc, _ := ecs.GetComponent[*components.PlayerComponent](w.em, w.player)
	pc.LastMove = types.DirUp
	health, _ := ecs.GetComponent[*components.HealthComponent](w.em, w.player)
	health.Current = 1000

	for i := 0; i < 900; i++ {
		w.Tick()
		if pos.X < config.PlayerMinX || pos.X > config.PlayerMaxX || pos.Y < config.PlayerMinY || pos.Y > config.PlayerMaxY {
			t.Fatalf("tick %d: 玩家被推出场地 (%v,%v)", i, pos.X, pos.Y)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	w, _ := newWorld(t, emptyRoom())
	w.KeyDown(types.KeyRight)
	w.SetPaused(true)
	if !w.Paused() || !w.Snapshot().Paused {
		t.Fatal("应处于暂停状态")
	}

	w.Advance(time.Second)
	w.Tick()
	if w.Now() != 0 || w.Snapshot().Tick != 0 {
		t.Errorf("暂停期间时钟推进到 %v", w.Now())
	}

	w.SetPaused(false)
	w.Advance(20 * time.Millisecond)
	if x := w.playerPos(t).X; x != config.RoomPlayerStartX {
		t.Errorf("暂停时应松开所有按键，玩家移动到 x=%v", x)
	}
	if w.Now() != 20*time.Millisecond {
		t.Errorf("继续后时钟 = %v, want 20ms", w.Now())
	}
}

func TestAdvanceAccumulators(t *testing.T) {
	tests := []struct {
		name      string
		steps     []time.Duration
		wantTicks uint64
		wantX     float64
	}{
		{"不足一个tick", []time.Duration{9 * time.Millisecond}, 0, 0},
		{"一次推进多个tick", []time.Duration{35 * time.Millisecond}, 3, 2 * config.PlayerSpeed},
		{"余量跨调用累积", []time.Duration{6 * time.Millisecond, 6 * time.Millisecond, 6 * time.Millisecond}, 1, config.PlayerSpeed},
		{"负值被忽略", []time.Duration{-time.Second}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newWorld(t, emptyRoom())
			w.KeyDown(types.KeyRight)
			for _, d := range tt.steps {
				w.Advance(d)
			}
			if got := w.Snapshot().Tick; got != tt.wantTicks {
				t.Errorf("ticks = %d, want %d", got, tt.wantTicks)
			}
			if got := w.playerPos(t).X; got != tt.wantX {
				t.Errorf("玩家 x = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestKeyPriority(t *testing.T) {
	w, _ := newWorld(t, emptyRoom())
	w.KeyDown(types.KeyDown)
	w.KeyDown(types.KeyRight)
	w.SampleInput()
	pos := w.playerPos(t)
	if pos.X != config.PlayerSpeed || pos.Y != config.RoomPlayerStartY {
		t.Errorf("同时按住右和下应只向右移动，位置 = (%v,%v)", pos.X, pos.Y)
	}

	w.KeyUp(types.KeyRight)
	w.SampleInput()
	if pos.X != config.PlayerSpeed || pos.Y != config.RoomPlayerStartY+config.PlayerSpeed {
		t.Errorf("松开右后应向下移动，位置 = (%v,%v)", pos.X, pos.Y)
	}
}

func TestWorldOf(t *testing.T) {
	tests := []struct {
		name   string
		layout config.RoomLayout
		want   int
	}{
		{"第一个房间", config.RoomLayout{Room: 0}, 1},
		{"世界末尾", config.RoomLayout{Room: 4}, 1},
		{"第二个世界", config.RoomLayout{Room: 5}, 2},
		{"最后一个房间", config.RoomLayout{Room: 24}, 5},
		{"隐藏Boss", config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossCappuccino}, 0},
		{"最终Boss", config.RoomLayout{Room: -1, IsBoss: true, Boss: types.BossNaveMaeranha}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorldOf(tt.layout); got != tt.want {
				t.Errorf("WorldOf = %d, want %d", got, tt.want)
			}
		})
	}
}
