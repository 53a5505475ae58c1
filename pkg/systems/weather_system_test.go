package systems

import (
	"image"
	"testing"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/types"
)

func newTestWeather(t *testing.T, chance float64) (*farm, *WeatherSystem) {
	t.Helper()
	f := newFarm(t, 2, 2)
	f.cfg.Weather.RainChance = chance
	return f, NewWeatherSystem(f.em, f.cfg, f.art, f.clock, f.rng, image.Pt(640, 480))
}

// TestWeatherSystem_Roll 概率为 0 时从不下雨，为 1 时总是下雨
func TestWeatherSystem_Roll(t *testing.T) {
	_, dry := newTestWeather(t, 0)
	_, wet := newTestWeather(t, 1)
	for i := 0; i < 20; i++ {
		if dry.Roll() {
			t.Fatal("rain with zero chance")
		}
		if !wet.Roll() {
			t.Fatal("no rain with certain chance")
		}
	}
	if !wet.Raining() || dry.Raining() {
		t.Error("Raining should report the last roll")
	}
}

// TestWeatherSystem_Update 下雨时每帧生成一个水洼和一滴雨
func TestWeatherSystem_Update(t *testing.T) {
	f, w := newTestWeather(t, 0)

	w.Update()
	if got := len(ecs.GetEntitiesWith1[*components.LifetimeComponent](f.em)); got != 0 {
		t.Fatalf("effects without rain = %d, want 0", got)
	}

	w.SetRaining(true)
	w.Update()

	ids := ecs.GetEntitiesWith1[*components.LifetimeComponent](f.em)
	if len(ids) != 2 {
		t.Fatalf("effects = %d, want 2", len(ids))
	}

	var floors, drops int
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](f.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](f.em, id)
		if p := pos.Point(); p.X < 0 || p.X > 640 || p.Y < 0 || p.Y > 480 {
			t.Errorf("effect at %v outside the map", p)
		}
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](f.em, id)
		if d := lifetime.Timer.Duration(); d < f.cfg.Timers.RainDropMin || d > f.cfg.Timers.RainDropMax {
			t.Errorf("lifetime %v outside [%v,%v]", d, f.cfg.Timers.RainDropMin, f.cfg.Timers.RainDropMax)
		}

		switch sprite.Depth {
		case types.DepthRainFloor:
			floors++
			if ecs.HasComponent[*components.VelocityComponent](f.em, id) {
				t.Error("puddle should not move")
			}
		case types.DepthRainDrops:
			drops++
			vel, ok := ecs.GetComponent[*components.VelocityComponent](f.em, id)
			if !ok {
				t.Fatal("drop should move")
			}
			if vel.Speed < f.cfg.Weather.DropSpeedMin || vel.Speed > f.cfg.Weather.DropSpeedMax {
				t.Errorf("drop speed %v outside [%v,%v]", vel.Speed, f.cfg.Weather.DropSpeedMin, f.cfg.Weather.DropSpeedMax)
			}
		}
	}
	if floors != 1 || drops != 1 {
		t.Errorf("puddles/drops = %d/%d, want 1/1", floors, drops)
	}
}
