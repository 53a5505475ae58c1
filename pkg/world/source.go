// Package world 提供关卡地图数据的来源：TMX 文件或内存中生成的地图
package world

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// 关卡读取的图层名
const (
	LayerFarmable             = "Farmable"
	LayerTrees                = "Trees"
	LayerDecoration           = "Decoration"
	LayerCollision            = "Collision"
	LayerWater                = "Water"
	LayerFence                = "Fence"
	LayerPlayer               = "Player"
	LayerHouseFloor           = "HouseFloor"
	LayerHouseFurnitureBottom = "HouseFurnitureBottom"
	LayerHouseWalls           = "HouseWalls"
	LayerHouseFurnitureTop    = "HouseFurnitureTop"
)

// Player 层的对象名
const (
	ObjectStart  = "Start"
	ObjectBed    = "Bed"
	ObjectTrader = "Trader"
)

// TileCell 图块层中的一个格子
// X, Y 以格子为单位；Image 可能为 nil（如 Farmable 层只关心位置）
type TileCell struct {
	X     int
	Y     int
	Image *ebiten.Image
}

// Object 对象层中的一个对象
// X, Y 为左上角的像素坐标（图块对象已从 Tiled 的左下角换算为左上角）
type Object struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Image *ebiten.Image
	Name  string
}

// Source 地图数据来源
type Source interface {
	// Size 返回地图像素尺寸
	Size() (w, h int)
	// TileLayer 返回图块层的所有非空格子，图层不存在时返回 nil
	TileLayer(name string) []TileCell
	// ObjectLayer 返回对象层的所有对象，图层不存在时返回 nil
	ObjectLayer(name string) []Object
}

// GroundSource 自带地面底图的地图来源
type GroundSource interface {
	Ground() *ebiten.Image
}

// ImageLoader 加载图块集图片
type ImageLoader interface {
	LoadImage(path string) (*ebiten.Image, error)
}
