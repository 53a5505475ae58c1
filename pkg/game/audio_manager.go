package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	defaultMusicVolume = 0.7
	defaultSoundVolume = 0.8
)

// AudioManager 音频管理器
// 通过声音ID播放音效和背景音乐，音量和开关取自 SettingsManager。
// 资源缺失时静默失败，只记录一次日志。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager

	soundPlayers map[string]*audio.Player
	musicPlayers map[string]*audio.Player
	missing      map[string]bool // 加载失败过的ID，不再重试

	currentMusic   *audio.Player
	currentMusicID string
}

// NewAudioManager 创建音频管理器，sm 可为 nil（使用默认音量）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
	}
}

// PlaySound 从头播放一次音效，返回是否真正播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.player(soundID, am.soundPlayers, false)
	if player == nil {
		return false
	}

	player.SetVolume(am.GetSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐，同一时间只有一首
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.player(musicID, am.musicPlayers, true)
	if player == nil {
		return false
	}

	volume := am.GetMusicVolume()
	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
	}
	am.currentMusic = nil
	am.currentMusicID = ""
}

// CurrentMusic 返回正在播放的音乐ID
func (am *AudioManager) CurrentMusic() string {
	return am.currentMusicID
}

// SetMusicVolume 保存音乐音量并立即应用到当前音乐
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetMusicVolume(volume)
	}
	for _, player := range am.musicPlayers {
		player.SetVolume(am.GetMusicVolume())
	}
}

// SetSoundVolume 保存音效音量，影响之后的播放
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

func (am *AudioManager) GetMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return defaultMusicVolume
}

func (am *AudioManager) GetSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return defaultSoundVolume
}

// Preload 预先加载音效，避免第一次播放时卡顿
func (am *AudioManager) Preload(soundIDs ...string) {
	loaded := 0
	for _, id := range soundIDs {
		if am.player(id, am.soundPlayers, false) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}

// player 按ID查缓存，否则通过 ResourceManager 注册的路径加载
func (am *AudioManager) player(id string, cache map[string]*audio.Player, loop bool) *audio.Player {
	if player, ok := cache[id]; ok {
		return player
	}
	if am.missing[id] || am.resourceManager == nil {
		return nil
	}

	p, ok := am.resourceManager.AudioPath(id)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not registered: %s", id)
		am.missing[id] = true
		return nil
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = am.resourceManager.LoadAudio(p)
	} else {
		player, err = am.resourceManager.LoadSoundEffect(p)
	}
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", id, err)
		am.missing[id] = true
		return nil
	}

	cache[id] = player
	return player
}
