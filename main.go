// Valley 俯视角农场模拟游戏
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/decker502/valley/pkg/app"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/telemetry"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

// 可在 .env 或环境中设置的默认参数
const (
	envConfig  = "VALLEY_CONFIG"
	envMap     = "VALLEY_MAP"
	envVerbose = "VALLEY_VERBOSE"

	defaultMapPath = "data/map.tmx"
)

func main() {
	envErr := godotenv.Load()

	configPath := flag.String("config", os.Getenv(envConfig), "数值配置文件（YAML），为空使用内置配置")
	mapPath := flag.String("map", envOr(envMap, defaultMapPath), "Tiled 地图文件（.tmx），不存在时使用内置地图")
	verbose := flag.Bool("verbose", envBool(envVerbose), "输出日志")
	flag.Parse()

	if envErr != nil && *verbose {
		log.Printf("Note: .env file not loaded: %v", envErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	gameConfig, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle(config.GameTitle)
	ebiten.SetTPS(app.TPS)

	a, err := app.NewApp(ctx, app.Config{
		Verbose: *verbose,
		Game:    gameConfig,
		MapPath: *mapPath,
	})
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}
	defer a.Close()

	if err := ebiten.RunGame(a); err != nil {
		log.Printf("Game error: %v", err)
	}
}

func loadConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		return config.LoadGameConfig(path)
	}
	return config.ParseGameConfig(defaultConfigYAML)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
