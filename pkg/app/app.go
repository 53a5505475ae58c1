// Package app 把资源、音频、设置和关卡场景组装成 ebiten.Game
package app

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"os"
	"path"

	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/game"
	"github.com/decker502/valley/pkg/input"
	"github.com/decker502/valley/pkg/scenes"
	"github.com/decker502/valley/pkg/systems"
	"github.com/decker502/valley/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 窗口与逻辑屏幕尺寸
const (
	ScreenWidth  = config.GameWindowWidth
	ScreenHeight = config.GameWindowHeight
	TPS          = config.GameTPS

	sampleRate = 48000
	appName    = "valley"
)

// Config 应用启动配置
type Config struct {
	// Verbose 启用日志输出
	Verbose bool
	// Game 数值配置
	Game *config.GameConfig
	// MapPath .tmx 地图路径；为空或文件不存在时使用内置地图
	MapPath string
}

// App 实现 ebiten.Game
type App struct {
	ctx          context.Context
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	verbose      bool
}

// NewApp 创建并初始化游戏
// ctx 结束时 Update 返回 ebiten.Termination，窗口随之关闭
func NewApp(ctx context.Context, cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}
	if cfg.Game == nil {
		cfg.Game = config.DefaultGameConfig()
	}

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	registerAudio(resourceManager, cfg.Game.AssetRoot)

	settings, err := game.NewSettingsManager(game.OpenStorage(appName))
	if err != nil {
		return nil, fmt.Errorf("failed to init settings: %w", err)
	}
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)

	audioManager := game.NewAudioManager(resourceManager, settings)
	audioManager.Preload(systems.SoundAxe, systems.SoundWater, systems.SoundSuccess)

	source, err := loadSource(cfg.MapPath, cfg.Game.TileSize, resourceManager)
	if err != nil {
		return nil, err
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		return scenes.NewLevelScene(ctx, scenes.LevelOptions{
			Config:   cfg.Game,
			Source:   source,
			Loader:   resourceManager,
			Input:    input.NewKeyboard(nil),
			Sound:    audioManager,
			Settings: settings,
			Screen:   image.Pt(ScreenWidth, ScreenHeight),
		})
	})
	if err := sceneManager.Reload(); err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}

	return &App{
		ctx:          ctx,
		sceneManager: sceneManager,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// registerAudio 声音ID与文件的对应关系
func registerAudio(rm *game.ResourceManager, root string) {
	a := func(name string) string { return path.Join(root, "audio", name) }
	rm.RegisterAudio(systems.SoundAxe, a("axe.mp3"))
	rm.RegisterAudio(systems.SoundWater, a("water.mp3"))
	rm.RegisterAudio(systems.SoundSuccess, a("success.wav"))
	rm.RegisterAudio(systems.MusicBackground, a("music.mp3"))
}

// loadSource 优先读取 TMX 地图，找不到文件时退回内置地图
func loadSource(mapPath string, tileSize int, loader world.ImageLoader) (world.Source, error) {
	if mapPath != "" {
		if _, err := os.Stat(mapPath); err == nil {
			m, err := world.LoadTMX(mapPath, loader)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
		log.Printf("[App] map %s not found, using the built-in farm", mapPath)
	}
	return world.BuiltinMap(tileSize), nil
}

// Update 每个 tick 调用一次
func (a *App) Update() error {
	select {
	case <-a.ctx.Done():
		log.Printf("[App] context done, shutting down")
		return ebiten.Termination
	default:
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.settings.ToggleHUD()
	}

	a.sceneManager.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// Layout 固定逻辑分辨率，窗口缩放由 Ebitengine 处理
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Close 关闭场景并保存设置，RunGame 返回后调用
func (a *App) Close() {
	a.sceneManager.Close()
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}
