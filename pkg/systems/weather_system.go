package systems

import (
	"image"
	"math/rand/v2"
	"time"

	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/utils"
)

// WeatherSystem 下雨天气
// 下雨时每帧在地图随机位置生成一个水洼和一滴下落的雨滴，两者都有随机的短暂寿命
type WeatherSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	art           *entities.Art
	clock         utils.Clock
	rng           *rand.Rand
	mapSize       image.Point

	raining bool
}

// NewWeatherSystem 创建天气系统
func NewWeatherSystem(em *ecs.EntityManager, cfg *config.GameConfig, art *entities.Art, clock utils.Clock,
	rng *rand.Rand, mapSize image.Point) *WeatherSystem {
	return &WeatherSystem{
		entityManager: em,
		config:        cfg,
		art:           art,
		clock:         clock,
		rng:           rng,
		mapSize:       mapSize,
	}
}

// Roll 按配置的概率重新决定今天是否下雨
func (s *WeatherSystem) Roll() bool {
	s.raining = s.rng.Float64() < s.config.Weather.RainChance
	return s.raining
}

// Raining 当前是否下雨
func (s *WeatherSystem) Raining() bool {
	return s.raining
}

// SetRaining 直接设置天气
func (s *WeatherSystem) SetRaining(raining bool) {
	s.raining = raining
}

// Update 下雨时生成本帧的水洼和雨滴
func (s *WeatherSystem) Update() {
	if !s.raining {
		return
	}

	w := s.config.Weather
	entities.NewRainDropEffect(s.entityManager, s.clock, s.randomPoint(),
		s.art.RainFloor[s.rng.IntN(len(s.art.RainFloor))], false, 0, s.dropLifetime())

	speed := w.DropSpeedMin + s.rng.Float64()*(w.DropSpeedMax-w.DropSpeedMin)
	entities.NewRainDropEffect(s.entityManager, s.clock, s.randomPoint(),
		s.art.RainDrops[s.rng.IntN(len(s.art.RainDrops))], true, speed, s.dropLifetime())
}

func (s *WeatherSystem) randomPoint() image.Point {
	return image.Pt(s.rng.IntN(s.mapSize.X+1), s.rng.IntN(s.mapSize.Y+1))
}

func (s *WeatherSystem) dropLifetime() time.Duration {
	lo, hi := s.config.Timers.RainDropMin, s.config.Timers.RainDropMax
	return lo + time.Duration(s.rng.Int64N(int64(hi-lo)+1))
}
