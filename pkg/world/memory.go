package world

import "github.com/hajimehoshi/ebiten/v2"

// MemoryMap 内存中的地图，用于测试和内置演示地图
type MemoryMap struct {
	width   int
	height  int
	ground  *ebiten.Image
	tiles   map[string][]TileCell
	objects map[string][]Object
}

// NewMemoryMap 创建指定像素尺寸的空地图
func NewMemoryMap(width, height int) *MemoryMap {
	return &MemoryMap{
		width:   width,
		height:  height,
		tiles:   make(map[string][]TileCell),
		objects: make(map[string][]Object),
	}
}

// SetGround 设置地面底图
func (m *MemoryMap) SetGround(img *ebiten.Image) {
	m.ground = img
}

// AddTile 向图块层添加格子
func (m *MemoryMap) AddTile(layer string, x, y int, img *ebiten.Image) {
	m.tiles[layer] = append(m.tiles[layer], TileCell{X: x, Y: y, Image: img})
}

// AddObject 向对象层添加对象
func (m *MemoryMap) AddObject(layer string, obj Object) {
	m.objects[layer] = append(m.objects[layer], obj)
}

// Size 实现 Source
func (m *MemoryMap) Size() (int, int) {
	return m.width, m.height
}

// TileLayer 实现 Source
func (m *MemoryMap) TileLayer(name string) []TileCell {
	return m.tiles[name]
}

// ObjectLayer 实现 Source
func (m *MemoryMap) ObjectLayer(name string) []Object {
	return m.objects[name]
}

// Ground 实现 GroundSource
func (m *MemoryMap) Ground() *ebiten.Image {
	return m.ground
}
