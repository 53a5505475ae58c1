package systems

import (
	"cmp"
	"image"
	"slices"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// RenderSystem 按层级绘制世界中的所有精灵
//
// 层级从低到高依次绘制；main 层内部再按图像中心的 y 排序，
// 使靠下（离镜头更近）的物体遮挡靠上的物体。
// 粒子实体只绘制图像轮廓，颜色为纯白。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	silhouette    colorm.ColorM
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	var cm colorm.ColorM
	// RGB 清零后加 1，只保留 alpha
	cm.Scale(0, 0, 0, 1)
	cm.Translate(1, 1, 1, 0)

	return &RenderSystem{
		entityManager: em,
		silhouette:    cm,
	}
}

type drawItem struct {
	id    ecs.EntityID
	depth types.Depth
	rect  image.Rectangle
	image *ebiten.Image
}

// DrawOrder 返回本帧的绘制顺序
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	items := s.collect()
	ids := make([]ecs.EntityID, len(items))
	for i, it := range items {
		ids[i] = it.id
	}
	return ids
}

// Draw 以 camera 为偏移绘制所有精灵
func (s *RenderSystem) Draw(screen *ebiten.Image, camera image.Point) {
	for _, it := range s.collect() {
		min := it.rect.Min.Sub(camera)

		if ecs.HasComponent[*components.ParticleComponent](s.entityManager, it.id) {
			op := &colorm.DrawImageOptions{}
			op.GeoM.Translate(float64(min.X), float64(min.Y))
			colorm.DrawImage(screen, it.image, s.silhouette, op)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(min.X), float64(min.Y))
		screen.DrawImage(it.image, op)
	}
}

func (s *RenderSystem) collect() []drawItem {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if sprite.Hidden || sprite.Image == nil {
			continue
		}
		items = append(items, drawItem{
			id:    id,
			depth: sprite.Depth,
			rect:  sprite.Rect(pos),
			image: sprite.Image,
		})
	}

	slices.SortStableFunc(items, func(a, b drawItem) int {
		if c := cmp.Compare(a.depth, b.depth); c != 0 {
			return c
		}
		if a.depth == types.DepthMain {
			ca := a.rect.Min.Y + a.rect.Dy()/2
			cb := b.rect.Min.Y + b.rect.Dy()/2
			return cmp.Compare(ca, cb)
		}
		return 0
	})
	return items
}
