package components

import "image"

// HitboxComponent 碰撞盒（世界坐标）
// 拥有此组件的实体会阻挡玩家移动；玩家自身的碰撞盒也使用它
type HitboxComponent struct {
	Rect image.Rectangle
}
