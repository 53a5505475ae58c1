package scenes

import (
	"context"
	"fmt"
	"image"
	"log"
	"math/rand/v2"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/game"
	"github.com/decker502/valley/pkg/input"
	"github.com/decker502/valley/pkg/systems"
	"github.com/decker502/valley/pkg/telemetry"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/decker502/valley/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// waterAnimationSpeed 水面动画速度（帧/秒）
const waterAnimationSpeed = 5

// MusicPlayer 背景音乐能力，由 game.AudioManager 实现
type MusicPlayer interface {
	PlayMusic(id string) bool
	StopMusic()
}

// LevelOptions 创建关卡所需的外部依赖
type LevelOptions struct {
	Config *config.GameConfig
	Source world.Source
	Loader entities.ResourceLoader
	Input  input.Source
	// Sound 可为 nil（静音）；若同时实现 MusicPlayer 则播放背景音乐
	Sound    systems.SoundPlayer
	Settings *game.SettingsManager // 可为 nil
	// Rand 为 nil 时使用随机种子
	Rand   *rand.Rand
	Screen image.Point
	// Tracer 为 nil 时使用全局 TracerProvider
	Tracer trace.Tracer
}

// LevelScene 农场关卡
//
// 持有实体管理器、帧时钟和全部系统，负责：
//   - 从 world.Source 构建地图（地面、房屋、栅栏、水、树、花、碰撞、交互区域、玩家）
//   - 每帧按固定顺序驱动各系统
//   - 睡觉转场全黑时执行每日重置
type LevelScene struct {
	ctx      context.Context
	config   *config.GameConfig
	tracer   trace.Tracer
	settings *game.SettingsManager
	sound    systems.SoundPlayer

	entityManager *ecs.EntityManager
	clock         *utils.FrameClock
	rng           *rand.Rand
	art           *entities.Art
	mapSize       image.Point
	screen        image.Point

	plantSystem      *systems.PlantSystem
	soilSystem       *systems.SoilSystem
	treeSystem       *systems.TreeSystem
	playerSystem     *systems.PlayerSystem
	shopSystem       *systems.ShopSystem
	lifetimeSystem   *systems.LifetimeSystem
	animationSystem  *systems.AnimationSystem
	motionSystem     *systems.MotionSystem
	weatherSystem    *systems.WeatherSystem
	skySystem        *systems.SkySystem
	transitionSystem *systems.TransitionSystem
	cameraSystem     *systems.CameraSystem
	renderSystem     *systems.RenderSystem

	day int
}

// NewLevelScene 构建关卡
//
// 返回:
//   - *LevelScene: 已完成地图构建、天气已掷骰的关卡
//   - error: 地图缺少 Start 对象或尺寸无效
func NewLevelScene(ctx context.Context, opts LevelOptions) (*LevelScene, error) {
	if opts.Config == nil || opts.Source == nil || opts.Loader == nil || opts.Input == nil {
		return nil, fmt.Errorf("level: config, source, loader and input are required")
	}

	w, h := opts.Source.Size()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("level: invalid map size %dx%d", w, h)
	}

	l := &LevelScene{
		ctx:           ctx,
		config:        opts.Config,
		tracer:        opts.Tracer,
		settings:      opts.Settings,
		sound:         opts.Sound,
		entityManager: ecs.NewEntityManager(),
		clock:         utils.NewFrameClock(),
		rng:           opts.Rand,
		mapSize:       image.Pt(w, h),
		screen:        opts.Screen,
		day:           1,
	}
	if l.tracer == nil {
		l.tracer = telemetry.Tracer("level")
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	_, span := l.tracer.Start(ctx, "world.load")
	defer span.End()

	l.art = entities.LoadArt(opts.Loader, opts.Config.AssetRoot)

	em, cfg := l.entityManager, l.config
	l.plantSystem = systems.NewPlantSystem(em, cfg)
	l.soilSystem = systems.NewSoilSystem(em, cfg, l.art, l.clock, l.rng, l.plantSystem, l.mapSize)
	l.treeSystem = systems.NewTreeSystem(em, cfg, l.art, l.clock, l.rng, l, l.sound)

	player, err := l.buildWorld(opts.Source, opts.Loader)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	l.playerSystem = systems.NewPlayerSystem(em, cfg, opts.Input, l.soilSystem, l.treeSystem, l.sound, l, player)
	l.shopSystem = systems.NewShopSystem(cfg, opts.Input, l.clock, l.playerSystem.Component)
	l.lifetimeSystem = systems.NewLifetimeSystem(em)
	l.animationSystem = systems.NewAnimationSystem(em)
	l.motionSystem = systems.NewMotionSystem(em)
	l.weatherSystem = systems.NewWeatherSystem(em, cfg, l.art, l.clock, l.rng, l.mapSize)
	l.skySystem = systems.NewSkySystem(cfg)
	l.transitionSystem = systems.NewTransitionSystem(cfg, l.clock, l.resetDay, l.playerSystem.Wake)
	l.cameraSystem = systems.NewCameraSystem(em, player, l.screen)
	l.renderSystem = systems.NewRenderSystem(em)

	l.rollWeather()
	l.cameraSystem.Update()

	if mp, ok := l.sound.(MusicPlayer); ok {
		mp.PlayMusic(systems.MusicBackground)
	}

	span.SetAttributes(
		attribute.Int("map.width", w),
		attribute.Int("map.height", h),
		attribute.Int("entities", em.EntityCount()),
		attribute.Bool("raining", l.weatherSystem.Raining()),
	)
	log.Printf("[Level] world built: %dx%d px, %d entities, raining=%v", w, h, em.EntityCount(), l.weatherSystem.Raining())
	return l, nil
}

// Update 推进一帧
// 商店打开时只更新商店菜单
func (l *LevelScene) Update(deltaTime float64) {
	l.clock.Advance(deltaTime)

	if l.shopSystem.IsOpen() {
		l.shopSystem.Update()
		return
	}

	l.playerSystem.Update(deltaTime)
	l.plantSystem.Update()
	l.treeSystem.Update()
	l.animationSystem.Update(deltaTime)
	l.lifetimeSystem.Update()
	l.motionSystem.Update(deltaTime)

	l.harvest()
	l.soilSystem.CheckPlants(l.playerSystem.Hitbox())

	l.weatherSystem.Update()
	l.skySystem.Update(deltaTime)
	if p := l.playerSystem.Component(); p != nil && p.Sleeping {
		l.transitionSystem.Update(deltaTime)
	}

	l.cameraSystem.Update()
	l.entityManager.RemoveMarkedEntities()
}

// Draw 绘制世界、天色、转场遮罩和 HUD
func (l *LevelScene) Draw(screen *ebiten.Image) {
	l.renderSystem.Draw(screen, l.cameraSystem.Offset())
	l.skySystem.Draw(screen)
	if p := l.playerSystem.Component(); p != nil && p.Sleeping {
		l.transitionSystem.Draw(screen)
	}

	if l.settings == nil || l.settings.GetSettings().ShowHUD {
		l.drawHUD(screen)
	}
	if l.shopSystem.IsOpen() {
		l.drawShop(screen)
	}
}

// Close 离开关卡时停止背景音乐
func (l *LevelScene) Close() {
	if mp, ok := l.sound.(MusicPlayer); ok {
		mp.StopMusic()
	}
}

// Credit 实现 systems.ResourceSink：树木掉落的资源记入玩家背包
func (l *LevelScene) Credit(resource types.Resource) {
	l.playerSystem.Credit(resource)
}

// OpenShop 实现 systems.ShopOpener
func (l *LevelScene) OpenShop() {
	l.shopSystem.Open()
}

// Day 当前是第几天（从 1 开始）
func (l *LevelScene) Day() int {
	return l.day
}

// harvest 玩家碰到成熟的作物即收获
func (l *LevelScene) harvest() {
	hitbox := l.playerSystem.Hitbox()
	ts := l.config.TileSize

	for _, id := range ecs.GetEntitiesWith1[*components.PlantComponent](l.entityManager) {
		plant, _ := ecs.GetComponent[*components.PlantComponent](l.entityManager, id)
		if !plant.Harvestable {
			continue
		}
		rect, ok := l.plantSystem.Rect(id)
		if !ok || !rect.Overlaps(hitbox) {
			continue
		}

		l.playerSystem.Credit(plant.Crop.Resource())
		l.soilSystem.RemovePlant(utils.Center(utils.TileRect(plant.Row, plant.Col, ts)))
		entities.NewParticleEffect(l.entityManager, l.clock, rect.Min, plant.CurrentFrame(), types.DepthMain,
			l.config.Timers.Particle)
		l.entityManager.DestroyEntity(id)
		if l.sound != nil {
			l.sound.PlaySound(systems.SoundSuccess)
		}
		log.Printf("[Level] harvested %s at (%d,%d)", plant.Crop, plant.Row, plant.Col)
	}
}

// resetDay 每日重置，在转场全黑时一次性执行
func (l *LevelScene) resetDay() {
	_, span := l.tracer.Start(l.ctx, "level.day_reset")
	defer span.End()

	l.playerSystem.Starve()
	l.treeSystem.RegrowApples()
	l.soilSystem.UpdatePlants()
	l.soilSystem.RemoveWater()
	raining := l.rollWeather()
	l.skySystem.Reset()
	l.day++

	health := 0
	if p := l.playerSystem.Component(); p != nil {
		health = p.Health
	}
	span.SetAttributes(
		attribute.Int("day", l.day),
		attribute.Bool("raining", raining),
		attribute.Int("player.health", health),
	)
	log.Printf("[Level] day %d begins, raining=%v, health=%d", l.day, raining, health)
}

// rollWeather 重新决定天气，下雨时所有已翻土的格子都被浇湿
func (l *LevelScene) rollWeather() bool {
	raining := l.weatherSystem.Roll()
	l.soilSystem.SetRaining(raining)
	if raining {
		l.soilSystem.WaterAll()
	}
	return raining
}
