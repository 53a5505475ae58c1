package components

import (
	"image"

	"github.com/decker502/valley/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PositionComponent 实体左上角的世界坐标（像素）
// 使用浮点数保存亚像素移动，绘制和碰撞时再取整
type PositionComponent struct {
	X float64
	Y float64
}

// Point 返回取整后的坐标
func (p *PositionComponent) Point() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)和绘制层级
type SpriteComponent struct {
	Image *ebiten.Image
	Depth types.Depth
	// Hidden 为 true 时不绘制（仍参与碰撞，如不可见的碰撞格）
	Hidden bool
}

// Rect 返回精灵在世界中占据的矩形
func (s *SpriteComponent) Rect(pos *PositionComponent) image.Rectangle {
	min := pos.Point()
	if s.Image == nil {
		return image.Rectangle{Min: min, Max: min}
	}
	return image.Rectangle{Min: min, Max: min.Add(s.Image.Bounds().Size())}
}
