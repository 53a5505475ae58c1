package systems

import (
	"image"
	"testing"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TestLifetimeSystem_Expire 定时器到期的实体被删除
func TestLifetimeSystem_Expire(t *testing.T) {
	f := newFarm(t, 1, 1)
	ls := NewLifetimeSystem(f.em)
	img := utils.PlaceholderImage("p", image.Pt(8, 8))

	short := entities.NewParticleEffect(f.em, f.clock, image.Pt(0, 0), img, types.DepthFruit, f.cfg.Timers.Particle)
	long := entities.NewRainDropEffect(f.em, f.clock, image.Pt(0, 0), img, false, 0, f.cfg.Timers.RainDropMax)

	f.advance(0.1)
	ls.Update()
	f.em.RemoveMarkedEntities()
	if !f.em.IsAlive(short) || !f.em.IsAlive(long) {
		t.Fatal("effects should survive before their lifetime")
	}

	f.advance(0.15)
	ls.Update()
	f.em.RemoveMarkedEntities()
	if f.em.IsAlive(short) {
		t.Error("particle should expire after 200ms")
	}
	if !f.em.IsAlive(long) {
		t.Error("puddle should still be alive")
	}

	f.advance(0.3)
	ls.Update()
	f.em.RemoveMarkedEntities()
	if f.em.IsAlive(long) {
		t.Error("puddle should expire after 500ms")
	}
}

// TestMotionSystem_Update 雨滴按方向和速度移动
func TestMotionSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 100, Y: 100})
	ecs.AddComponent(em, id, &components.VelocityComponent{DirX: -2, DirY: 4, Speed: 10})

	NewMotionSystem(em).Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 90 || pos.Y != 120 {
		t.Errorf("position = (%v,%v), want (90,120)", pos.X, pos.Y)
	}
}

// TestAnimationSystem_Update 帧按速度推进，到末尾回到第一帧
func TestAnimationSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()
	frames := []*ebiten.Image{
		utils.PlaceholderImage("w0", image.Pt(4, 4)),
		utils.PlaceholderImage("w1", image.Pt(4, 4)),
		utils.PlaceholderImage("w2", image.Pt(4, 4)),
	}
	id := entities.NewWaterEntity(em, image.Pt(0, 0), frames, 5)
	as := NewAnimationSystem(em)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

	tests := []struct {
		dt        float64
		wantFrame int
	}{
		{0.1, 0},  // 0.5
		{0.1, 1},  // 1.0
		{0.2, 2},  // 2.0
		{0.25, 0}, // 3.25 越界回到 0
	}
	for i, tt := range tests {
		as.Update(tt.dt)
		if sprite.Image != frames[tt.wantFrame] {
			t.Errorf("step %d: image is not frame %d", i, tt.wantFrame)
		}
	}
}
