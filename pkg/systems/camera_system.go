package systems

import (
	"image"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/utils"
)

// CameraSystem 让镜头始终以目标实体（玩家）为中心
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
	screen        image.Point
}

// NewCameraSystem 创建镜头系统
// 参数:
//   - target: 跟随的实体
//   - screen: 屏幕尺寸（像素）
func NewCameraSystem(em *ecs.EntityManager, target ecs.EntityID, screen image.Point) *CameraSystem {
	cs := &CameraSystem{
		entityManager: em,
		screen:        screen,
	}
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{Target: target})
	return cs
}

// Update 根据目标图像中心重新计算偏移
func (cs *CameraSystem) Update() {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](cs.entityManager, camera.Target)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](cs.entityManager, camera.Target)
	if !ok {
		return
	}
	camera.Offset = utils.Center(sprite.Rect(pos)).Sub(cs.screen.Div(2))
}

// Offset 返回屏幕左上角对应的世界坐标
func (cs *CameraSystem) Offset() image.Point {
	camera, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return image.Point{}
	}
	return camera.Offset
}
