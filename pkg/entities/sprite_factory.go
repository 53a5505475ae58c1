package entities

import (
	"image"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenericHitbox 地图物件的碰撞盒：横向收缩 20%，纵向只保留底部 25%
// 玩家可以走到物件“后面”，看起来像是站在物件上半部分的前方
func GenericHitbox(rect image.Rectangle) image.Rectangle {
	return utils.Inflate(rect, -rect.Dx()/5, -rect.Dy()*3/4)
}

// FlowerHitbox 花朵的碰撞盒：横向收缩 20 像素，纵向只保留底部 10%
func FlowerHitbox(rect image.Rectangle) image.Rectangle {
	return utils.Inflate(rect, -20, -rect.Dy()*9/10)
}

// NewSpriteEntity 创建静态精灵实体（地面、房屋、湿润贴图等）
//
// 参数:
//   - em: 实体管理器
//   - pos: 图像左上角的世界坐标
//   - img: 图像
//   - depth: 绘制层级
func NewSpriteEntity(em *ecs.EntityManager, pos image.Point, img *ebiten.Image, depth types.Depth) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: float64(pos.X), Y: float64(pos.Y)})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, Depth: depth})
	return id
}

// NewObstacleEntity 创建会阻挡玩家的物件（栅栏、树桩等），使用 GenericHitbox
func NewObstacleEntity(em *ecs.EntityManager, pos image.Point, img *ebiten.Image, depth types.Depth) ecs.EntityID {
	id := NewSpriteEntity(em, pos, img, depth)
	rect := image.Rectangle{Min: pos, Max: pos.Add(img.Bounds().Size())}
	ecs.AddComponent(em, id, &components.HitboxComponent{Rect: GenericHitbox(rect)})
	return id
}

// NewFlowerEntity 创建装饰花朵
func NewFlowerEntity(em *ecs.EntityManager, pos image.Point, img *ebiten.Image) ecs.EntityID {
	id := NewSpriteEntity(em, pos, img, types.DepthMain)
	rect := image.Rectangle{Min: pos, Max: pos.Add(img.Bounds().Size())}
	ecs.AddComponent(em, id, &components.HitboxComponent{Rect: FlowerHitbox(rect)})
	return id
}

// NewCollisionEntity 创建不可见的碰撞格，整个格子都阻挡移动
func NewCollisionEntity(em *ecs.EntityManager, rect image.Rectangle) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: float64(rect.Min.X), Y: float64(rect.Min.Y)})
	ecs.AddComponent(em, id, &components.HitboxComponent{Rect: rect})
	return id
}

// NewWaterEntity 创建带循环动画的水面格子，水面阻挡移动
func NewWaterEntity(em *ecs.EntityManager, pos image.Point, frames []*ebiten.Image, speed float64) ecs.EntityID {
	id := NewObstacleEntity(em, pos, frames[0], types.DepthWater)
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames: frames,
		Speed:  speed,
	})
	return id
}

// NewInteractionEntity 创建交互区域（床、商人）
func NewInteractionEntity(em *ecs.EntityManager, name string, rect image.Rectangle) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.InteractionComponent{Name: name, Rect: rect})
	return id
}
