package types

// Screen 屏幕/场景标识
type Screen string

const (
	ScreenMenu       Screen = "menu"
	ScreenGame       Screen = "game"        // 从存档所在世界的第一个房间开始
	ScreenRoom       Screen = "room"        // 进入推进规则中的当前房间
	ScreenNextRoom   Screen = "next_room"   // 当前房间的门已穿过
	ScreenSecretBoss Screen = "secret_boss" // 菜单中输入了隐藏指令
	ScreenGameOver   Screen = "game_over"
	ScreenVictory    Screen = "victory"
	ScreenSecretRoom Screen = "secret_room"
)
