package config

import (
	"fmt"

	"github.com/decker502/batata/pkg/embedded"
	"github.com/decker502/batata/pkg/types"
	"gopkg.in/yaml.v3"
)

// RoomCount 普通房间总数（5 个世界 × 5 个房间）
const RoomCount = 25

// RoomsPerWorld 每个世界的房间数
const RoomsPerWorld = 5

// WallSpec 墙体矩形
type WallSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// EnemySpawn 房间中的一个敌人
type EnemySpawn struct {
	Kind      types.EnemyKind `yaml:"kind"`
	X         float64         `yaml:"x"`
	Y         float64         `yaml:"y"`
	Direction types.Direction `yaml:"dir"`
	Range     float64         `yaml:"range"`  // 视线/激光射程
	Health    int             `yaml:"hp"`     // 覆盖默认生命值（大蒜的阶段）
}

// RoomSpec 普通房间
type RoomSpec struct {
	Index   int          `yaml:"index"`
	Maze    bool         `yaml:"maze"` // 是否叠加共享的迷宫墙体
	Walls   []WallSpec   `yaml:"walls"`
	Enemies []EnemySpawn `yaml:"enemies"`
}

// BossRoomSpec Boss 房间
type BossRoomSpec struct {
	Boss           types.BossKind `yaml:"boss"`
	SideWalls      bool           `yaml:"sideWalls"`
	HazardousWalls bool           `yaml:"hazardousWalls"` // 墙体接触伤害玩家
	Walls          []WallSpec     `yaml:"walls"`
}

// ArenaSpec 场地尺寸
type ArenaSpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	BlockSize float64 `yaml:"blockSize"`
}

// RoomLayouts 房间布局配置文件结构
type RoomLayouts struct {
	Arena         ArenaSpec      `yaml:"arena"`
	CommonWalls   []WallSpec     `yaml:"commonWalls"`
	MazeWalls     []WallSpec     `yaml:"mazeWalls"`
	BossSideWalls []WallSpec     `yaml:"bossSideWalls"`
	Rooms         []RoomSpec     `yaml:"rooms"`
	BossRooms     []BossRoomSpec `yaml:"bossRooms"`
}

// RoomLayout 一个房间在进入时的完整初始布局
type RoomLayout struct {
	// Room 普通房间下标，Boss 房间为 -1
	Room int
	// Boss 仅 IsBoss 为 true 时有效
	Boss           types.BossKind
	IsBoss         bool
	HazardousWalls bool
	Walls          []WallSpec
	Enemies        []EnemySpawn
}

// LoadRoomLayouts 从 YAML 文件加载房间布局
// 参数：
//
//	filepath - 配置文件路径（如 "data/rooms.yaml"）
//
// 返回：
//
//	*RoomLayouts - 解析后的布局
//	error - 如果文件读取、解析或校验失败，返回错误信息
func LoadRoomLayouts(filepath string) (*RoomLayouts, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read room layout file %s: %w", filepath, err)
	}
	layouts, err := ParseRoomLayouts(data)
	if err != nil {
		return nil, fmt.Errorf("invalid room layout in %s: %w", filepath, err)
	}
	return layouts, nil
}

// ParseRoomLayouts 解析并校验房间布局 YAML
func ParseRoomLayouts(data []byte) (*RoomLayouts, error) {
	var layouts RoomLayouts
	if err := yaml.Unmarshal(data, &layouts); err != nil {
		return nil, fmt.Errorf("failed to parse room layout YAML: %w", err)
	}
	if err := validateRoomLayouts(&layouts); err != nil {
		return nil, err
	}
	return &layouts, nil
}

// validateRoomLayouts 验证布局的完整性和合法性
func validateRoomLayouts(l *RoomLayouts) error {
	if l.Arena.Width <= 0 || l.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %vx%v", l.Arena.Width, l.Arena.Height)
	}
	if len(l.Rooms) != RoomCount {
		return fmt.Errorf("expected %d rooms, got %d", RoomCount, len(l.Rooms))
	}
	for i, room := range l.Rooms {
		if room.Index != i {
			return fmt.Errorf("room %d: index mismatch, got %d", i, room.Index)
		}
		if err := validateWalls(room.Walls); err != nil {
			return fmt.Errorf("room %d: %w", i, err)
		}
		for j, e := range room.Enemies {
			if !e.Kind.Valid() {
				return fmt.Errorf("room %d enemy %d: unknown kind %q", i, j, e.Kind)
			}
			if e.Range < 0 || e.Health < 0 {
				return fmt.Errorf("room %d enemy %d: range and hp cannot be negative", i, j)
			}
		}
	}

	seen := make(map[types.BossKind]bool)
	for _, br := range l.BossRooms {
		if !br.Boss.Valid() {
			return fmt.Errorf("unknown boss %d", br.Boss)
		}
		if seen[br.Boss] {
			return fmt.Errorf("boss %d: duplicate boss room", br.Boss)
		}
		seen[br.Boss] = true
		if err := validateWalls(br.Walls); err != nil {
			return fmt.Errorf("boss %d: %w", br.Boss, err)
		}
	}
	if len(seen) != types.BossCount {
		return fmt.Errorf("expected %d boss rooms, got %d", types.BossCount, len(seen))
	}

	for _, group := range [][]WallSpec{l.CommonWalls, l.MazeWalls, l.BossSideWalls} {
		if err := validateWalls(group); err != nil {
			return err
		}
	}
	return nil
}

func validateWalls(walls []WallSpec) error {
	for i, w := range walls {
		if w.W <= 0 || w.H <= 0 {
			return fmt.Errorf("wall %d: size must be positive, got %vx%v", i, w.W, w.H)
		}
	}
	return nil
}

// Room 返回普通房间 index 的初始布局（公共墙体 + 迷宫墙体 + 房间墙体）
func (l *RoomLayouts) Room(index int) (RoomLayout, error) {
	if index < 0 || index >= len(l.Rooms) {
		return RoomLayout{}, fmt.Errorf("room index %d out of range [0, %d)", index, len(l.Rooms))
	}
	spec := l.Rooms[index]

	walls := make([]WallSpec, 0, len(l.CommonWalls)+len(l.MazeWalls)+len(spec.Walls))
	walls = append(walls, l.CommonWalls...)
	if spec.Maze {
		walls = append(walls, l.MazeWalls...)
	}
	walls = append(walls, spec.Walls...)

	return RoomLayout{
		Room:    index,
		Walls:   walls,
		Enemies: append([]EnemySpawn(nil), spec.Enemies...),
	}, nil
}

// BossRoom 返回 Boss 房间的初始布局
func (l *RoomLayouts) BossRoom(boss types.BossKind) (RoomLayout, error) {
	for _, br := range l.BossRooms {
		if br.Boss != boss {
			continue
		}
		walls := make([]WallSpec, 0, len(l.BossSideWalls)+len(br.Walls))
		if br.SideWalls {
			walls = append(walls, l.BossSideWalls...)
		}
		walls = append(walls, br.Walls...)
		return RoomLayout{
			Room:           -1,
			Boss:           boss,
			IsBoss:         true,
			HazardousWalls: br.HazardousWalls,
			Walls:          walls,
		}, nil
	}
	return RoomLayout{}, fmt.Errorf("no boss room for boss %d", boss)
}
