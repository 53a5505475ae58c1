package components

import (
	"image"

	"github.com/decker502/valley/pkg/ecs"
)

// CameraComponent 跟随目标实体的镜头
// Offset 是屏幕左上角对应的世界坐标，绘制时所有精灵减去它
type CameraComponent struct {
	// Target 被跟随的实体（玩家）
	Target ecs.EntityID
	// Offset 当前镜头偏移
	Offset image.Point
}
