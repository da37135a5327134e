package config

import (
	"os"
	"strings"
	"testing"

	"github.com/decker502/batata/pkg/embedded"
	"github.com/decker502/batata/pkg/types"
)

func TestMain(m *testing.M) {
	// 测试从仓库根目录读取真实的数据文件
	embedded.Init(os.DirFS("../.."))
	os.Exit(m.Run())
}

func TestLoadRoomLayouts(t *testing.T) {
	layouts, err := LoadRoomLayouts("data/rooms.yaml")
	if err != nil {
		t.Fatalf("加载房间布局失败: %v", err)
	}

	t.Run("普通房间包含公共墙体", func(t *testing.T) {
		room, err := layouts.Room(0)
		if err != nil {
			t.Fatal(err)
		}
		if room.IsBoss || room.Room != 0 {
			t.Errorf("房间 0 元数据错误: %+v", room)
		}
		if len(room.Walls) < len(layouts.CommonWalls) {
			t.Errorf("墙体数 %d 少于公共墙体数 %d", len(room.Walls), len(layouts.CommonWalls))
		}
		if len(room.Enemies) == 0 {
			t.Error("房间 0 应有敌人")
		}
	})

	t.Run("迷宫房间叠加迷宫墙体", func(t *testing.T) {
		for i, spec := range layouts.Rooms {
			if !spec.Maze {
				continue
			}
			room, _ := layouts.Room(i)
			want := len(layouts.CommonWalls) + len(layouts.MazeWalls) + len(spec.Walls)
			if len(room.Walls) != want {
				t.Errorf("房间 %d 墙体数 = %d, want %d", i, len(room.Walls), want)
			}
		}
	})

	t.Run("每个Boss都有房间", func(t *testing.T) {
		for b := types.BossCappuccino; b <= types.BossNaveMaeranha; b++ {
			room, err := layouts.BossRoom(b)
			if err != nil {
				t.Fatalf("Boss %d: %v", b, err)
			}
			if !room.IsBoss || room.Boss != b {
				t.Errorf("Boss %d 房间元数据错误", b)
			}
		}
		final, _ := layouts.BossRoom(types.BossNaveMaeranha)
		if !final.HazardousWalls {
			t.Error("最终 Boss 房间的墙体应有伤害")
		}
	})

	t.Run("越界房间", func(t *testing.T) {
		if _, err := layouts.Room(RoomCount); err == nil {
			t.Error("越界下标应返回错误")
		}
	})
}

func TestParseRoomLayoutsInvalid(t *testing.T) {
	valid, err := os.ReadFile("../../data/rooms.yaml")
	if err != nil {
		t.Fatalf("读取数据文件失败: %v", err)
	}

	tests := []struct {
		name    string
		content string
	}{
		{"非法YAML", "arena: [unclosed"},
		{"缺少房间", "arena: {width: 1300, height: 750, blockSize: 50}\nrooms: []\n"},
		{"未知敌人", strings.Replace(string(valid), "kind: slime", "kind: dragon", 1)},
		{"未知方向", strings.Replace(string(valid), "dir: up", "dir: sideways", 1)},
		{"负尺寸墙体", strings.Replace(string(valid), "w: 300, h: 100", "w: -300, h: 100", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRoomLayouts([]byte(tt.content)); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}

func TestLoadActorStats(t *testing.T) {
	stats, err := LoadActorStats("data/actor_stats.yaml")
	if err != nil {
		t.Fatalf("加载角色属性失败: %v", err)
	}

	tests := []struct {
		name   string
		kind   types.EnemyKind
		health int
		speed  float64
		flying bool
	}{
		{"史莱姆", types.EnemySlime, 1, 2, false},
		{"飞行史莱姆", types.EnemyFlyme, 1, 2, true},
		{"巧克力猫", types.EnemyChocochato, 3, 0, false},
		{"蝙蝠", types.EnemyMorcerango, 1, 4, true},
		{"巨型机器人", types.EnemyGigaBot, 3, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := stats.Enemy(tt.kind)
			if !ok {
				t.Fatalf("缺少 %s", tt.kind)
			}
			if s.Health != tt.health || s.Speed != tt.speed || s.Flying != tt.flying {
				t.Errorf("%s = %+v", tt.kind, s)
			}
		})
	}

	t.Run("Boss默认位置", func(t *testing.T) {
		b, ok := stats.Boss(types.BossGigaSlime)
		if !ok {
			t.Fatal("缺少 GigaSlime")
		}
		if b.Health != 150 || b.X != BossX || b.Width != BossWidth {
			t.Errorf("GigaSlime = %+v", b)
		}
		nave, _ := stats.Boss(types.BossNaveMaeranha)
		if nave.Width != ArenaWidth || nave.Height != NaveHeight || nave.X != 0 {
			t.Errorf("NaveMaeranha 尺寸错误: %+v", nave)
		}
	})
}

func TestParseActorStatsInvalid(t *testing.T) {
	t.Run("缺少敌人", func(t *testing.T) {
		if _, err := ParseActorStats([]byte("enemies: {}\nbosses: []\n")); err == nil {
			t.Error("期望返回错误")
		}
	})

	t.Run("生命值为0", func(t *testing.T) {
		valid, err := os.ReadFile("../../data/actor_stats.yaml")
		if err != nil {
			t.Fatal(err)
		}
		broken := strings.Replace(string(valid), "slime:        {health: 1", "slime:        {health: 0", 1)
		if _, err := ParseActorStats([]byte(broken)); err == nil {
			t.Error("期望返回错误")
		}
	})
}

func TestLoadAudioConfig(t *testing.T) {
	audio, err := LoadAudioConfig("data/audio.yaml")
	if err != nil {
		t.Fatalf("加载音频配置失败: %v", err)
	}
	for world := 1; world <= 5; world++ {
		if _, ok := audio.Music[WorldMusicKey(world)]; !ok {
			t.Errorf("缺少世界 %d 的音乐", world)
		}
	}
	if p, ok := audio.Path("hurt"); !ok || !strings.HasSuffix(p, "Ouch.wav") {
		t.Errorf("hurt = %q, %v", p, ok)
	}
	if _, ok := audio.Path("missing"); ok {
		t.Error("不存在的键应返回 false")
	}

	if _, err := ParseAudioConfig([]byte("sounds:\n  hurt: sounds/ouch.txt\n")); err == nil {
		t.Error("不支持的格式应返回错误")
	}
}

func TestLoadGameData(t *testing.T) {
	data, err := LoadGameData()
	if err != nil {
		t.Fatalf("LoadGameData failed: %v", err)
	}
	if _, ok := data.Audio.Path("world1"); !ok {
		t.Error("音频表缺少 world1")
	}
	for w := 1; w <= 5; w++ {
		if _, err := data.Layouts.Room((w - 1) * RoomsPerWorld); err != nil {
			t.Errorf("世界 %d 的第一个房间: %v", w, err)
		}
	}
	if data.Stats == nil {
		t.Error("缺少角色属性")
	}
}
