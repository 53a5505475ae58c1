package components

import "image"

// 交互点名称（来自地图 Player 对象层）
const (
	InteractionBed    = "Bed"
	InteractionTrader = "Trader"
)

// InteractionComponent 不可见的交互区域（床、商人）
type InteractionComponent struct {
	Name string
	Rect image.Rectangle
}
