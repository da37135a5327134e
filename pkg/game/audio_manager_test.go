package game

import (
	"testing"

	"github.com/decker502/batata/pkg/config"
	"github.com/decker502/batata/pkg/progress"
)

func newTestAudio(sm *SettingsManager) *AudioManager {
	table := &config.AudioConfig{
		Music:  map[string]string{"world1": "sounds/beep.wav", "boss": "sounds/missing.wav"},
		Sounds: map[string]string{"hurt": "sounds/beep.wav"},
	}
	return NewAudioManager(NewResourceManager(testAudioContext), sm, table)
}

func TestAudioManagerSounds(t *testing.T) {
	am := newTestAudio(nil)
	if !am.PlaySound("hurt") {
		t.Error("已配置的音效应能播放")
	}
	if am.PlaySound("bark") {
		t.Error("未配置的音效应被跳过")
	}

	sm := NewSettingsManager(progress.NewMemoryStore())
	sm.GetSettings().SoundEnabled = false
	if newTestAudio(sm).PlaySound("hurt") {
		t.Error("音效关闭时不应播放")
	}
}

func TestAudioManagerMusic(t *testing.T) {
	am := newTestAudio(nil)

	am.Play("world1", true)
	if am.CurrentMusic() != "world1" {
		t.Fatalf("当前音乐 = %q, want world1", am.CurrentMusic())
	}

	am.Play("boss", true)
	if am.CurrentMusic() != "" {
		t.Errorf("缺失的音乐不应成为当前音乐，got %q", am.CurrentMusic())
	}
	if !am.failed["boss"] {
		t.Error("失败的键应被记住")
	}

	am.Play("world1", true)
	am.Stop()
	if am.CurrentMusic() != "" || am.IsPlaying() {
		t.Error("Stop 后不应有背景音乐")
	}
}
