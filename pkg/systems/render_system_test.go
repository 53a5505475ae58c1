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

// TestRenderSystem_DrawOrder 先按层级排序，main 层内按图像中心 y 排序
func TestRenderSystem_DrawOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	img := func(w, h int) *ebiten.Image { return utils.PlaceholderImage("r", image.Pt(w, h)) }

	drops := entities.NewSpriteEntity(em, image.Pt(0, 0), img(4, 8), types.DepthRainDrops)
	ground := entities.NewSpriteEntity(em, image.Pt(0, 0), img(64, 64), types.DepthGround)
	// 高个子的中心 y = 100+60=160，矮个子的中心 y = 140+10=150
	tall := entities.NewSpriteEntity(em, image.Pt(0, 100), img(32, 120), types.DepthMain)
	short := entities.NewSpriteEntity(em, image.Pt(0, 140), img(32, 20), types.DepthMain)
	water := entities.NewSpriteEntity(em, image.Pt(0, 0), img(64, 64), types.DepthWater)
	hidden := entities.NewSpriteEntity(em, image.Pt(0, 0), img(4, 4), types.DepthMain)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, hidden)
	sprite.Hidden = true
	entities.NewCollisionEntity(em, image.Rect(0, 0, 64, 64)) // 没有精灵，不绘制

	got := NewRenderSystem(em).DrawOrder()
	want := []ecs.EntityID{water, ground, short, tall, drops}
	if len(got) != len(want) {
		t.Fatalf("DrawOrder() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DrawOrder()[%d] = %d, want %d (full order %v)", i, got[i], want[i], got)
		}
	}
}

// TestRenderSystem_Draw 绘制不会因粒子或空图像出错
func TestRenderSystem_Draw(t *testing.T) {
	em := ecs.NewEntityManager()
	clock := utils.NewFrameClock()
	img := utils.PlaceholderImage("r", image.Pt(16, 16))
	entities.NewSpriteEntity(em, image.Pt(10, 10), img, types.DepthMain)
	entities.NewParticleEffect(em, clock, image.Pt(20, 20), img, types.DepthFruit, 0)
	entities.NewSpriteEntity(em, image.Pt(0, 0), nil, types.DepthMain)

	screen := ebiten.NewImage(64, 64)
	NewRenderSystem(em).Draw(screen, image.Pt(5, 5))
}

// TestCameraSystem_Update 镜头以目标图像中心为屏幕中心
func TestCameraSystem_Update(t *testing.T) {
	em := ecs.NewEntityManager()
	target := entities.NewSpriteEntity(em, image.Pt(1000, 500), utils.PlaceholderImage("p", image.Pt(100, 50)), types.DepthMain)
	cs := NewCameraSystem(em, target, image.Pt(1280, 720))

	if cs.Offset() != (image.Point{}) {
		t.Errorf("offset before Update = %v, want zero", cs.Offset())
	}

	cs.Update()
	// 中心 (1050,525) - 屏幕一半 (640,360)
	if got, want := cs.Offset(), image.Pt(410, 165); got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, target)
	pos.X -= 2000
	cs.Update()
	if got, want := cs.Offset(), image.Pt(-1590, 165); got != want {
		t.Errorf("offset = %v, want %v (no clamping at the map edge)", got, want)
	}
}
