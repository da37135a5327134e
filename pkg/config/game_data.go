package config

import (
	"fmt"
	"log"
)

// GameData 从嵌入数据加载的全部配置
type GameData struct {
	Stats   *ActorStatsConfig
	Layouts *RoomLayouts
	Audio   *AudioConfig
}

// LoadGameData 加载角色属性、房间布局和音频表
// 调用前必须先调用 embedded.Init()
func LoadGameData() (*GameData, error) {
	stats, err := LoadActorStats("data/actor_stats.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load actor stats: %w", err)
	}
	layouts, err := LoadRoomLayouts("data/rooms.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load room layouts: %w", err)
	}
	audioTable, err := LoadAudioConfig("data/audio.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to load audio config: %w", err)
	}
	log.Printf("[Config] 配置加载完成：%d 个普通房间，%d 个 Boss 房间", len(layouts.Rooms), len(layouts.BossRooms))
	return &GameData{Stats: stats, Layouts: layouts, Audio: audioTable}, nil
}
