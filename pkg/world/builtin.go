package world

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// 内置地图尺寸（格子）
const (
	builtinCols = 40
	builtinRows = 30
)

var (
	grassColor  = color.RGBA{R: 96, G: 160, B: 72, A: 255}
	fenceColor  = color.RGBA{R: 120, G: 80, B: 40, A: 255}
	floorColor  = color.RGBA{R: 200, G: 170, B: 120, A: 255}
	wallColor   = color.RGBA{R: 110, G: 100, B: 100, A: 255}
	bedColor    = color.RGBA{R: 180, G: 60, B: 60, A: 255}
	traderColor = color.RGBA{R: 140, G: 80, B: 170, A: 255}
	trunkColor  = color.RGBA{R: 100, G: 70, B: 40, A: 255}
	leafColor   = color.RGBA{R: 40, G: 120, B: 50, A: 255}
	flowerColor = color.RGBA{R: 240, G: 220, B: 80, A: 255}
)

// BuiltinMap 生成一张小型演示农场：围栏、房屋（床）、商人、池塘、耕地、树和花
// 没有地图文件时使用，所有图像都是程序生成的纯色块
func BuiltinMap(tileSize int) *MemoryMap {
	ts := tileSize
	m := NewMemoryMap(builtinCols*ts, builtinRows*ts)
	m.SetGround(solid(builtinCols*ts, builtinRows*ts, grassColor))

	fence := band(ts, ts, ts*3/8, ts*3/4, fenceColor)
	for c := 0; c < builtinCols; c++ {
		m.AddTile(LayerFence, c, 0, fence)
		m.AddTile(LayerFence, c, builtinRows-1, fence)
	}
	for r := 1; r < builtinRows-1; r++ {
		m.AddTile(LayerFence, 0, r, fence)
		m.AddTile(LayerFence, builtinCols-1, r, fence)
		// 围栏在纵向只有底部一条碰撞盒，两侧补上整格碰撞
		m.AddTile(LayerCollision, 0, r, nil)
		m.AddTile(LayerCollision, builtinCols-1, r, nil)
	}

	addHouse(m, ts, image.Rect(4, 3, 11, 9))

	// 商人摊位
	stall := solid(ts, ts, traderColor)
	m.AddObject(LayerDecoration, Object{X: float64(30 * ts), Y: float64(4 * ts), W: float64(ts), H: float64(ts), Image: stall})
	m.AddObject(LayerPlayer, Object{X: float64(29 * ts), Y: float64(5 * ts), W: float64(3 * ts), H: float64(ts), Name: ObjectTrader})

	water := solid(ts, ts, color.RGBA{R: 60, G: 120, B: 200, A: 255})
	for r := 20; r < 25; r++ {
		for c := 28; c < 36; c++ {
			m.AddTile(LayerWater, c, r, water)
		}
	}

	for r := 12; r < 19; r++ {
		for c := 12; c < 25; c++ {
			m.AddTile(LayerFarmable, c, r, nil)
		}
	}

	small := tree(ts, ts*3/2)
	large := tree(ts*3/2, ts*2)
	trees := []struct {
		col, row int
		name     string
		img      *ebiten.Image
	}{
		{3, 14, "Small", small}, {6, 20, "Large", large}, {9, 24, "Small", small},
		{17, 4, "Large", large}, {22, 23, "Small", small}, {35, 12, "Large", large},
	}
	for _, t := range trees {
		size := t.img.Bounds().Size()
		m.AddObject(LayerTrees, Object{
			X: float64(t.col * ts), Y: float64(t.row * ts), W: float64(size.X), H: float64(size.Y),
			Image: t.img, Name: t.name,
		})
	}

	flower := solid(ts/2, ts/2, flowerColor)
	for _, p := range []image.Point{{14, 8}, {26, 10}, {8, 16}, {33, 18}, {19, 26}} {
		m.AddObject(LayerDecoration, Object{X: float64(p.X * ts), Y: float64(p.Y * ts), W: float64(ts / 2), H: float64(ts / 2), Image: flower})
	}

	m.AddObject(LayerPlayer, Object{X: float64(20 * ts), Y: float64(10 * ts), Name: ObjectStart})
	return m
}

// addHouse 房屋：地板、四周墙壁（底边中间留门）和一张床
func addHouse(m *MemoryMap, ts int, r image.Rectangle) {
	floor := solid(ts, ts, floorColor)
	wall := solid(ts, ts, wallColor)
	door := r.Min.X + r.Dx()/2

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			edge := x == r.Min.X || x == r.Max.X-1 || y == r.Min.Y || y == r.Max.Y-1
			if !edge {
				m.AddTile(LayerHouseFloor, x, y, floor)
				continue
			}
			if y == r.Max.Y-1 && x == door {
				m.AddTile(LayerHouseFloor, x, y, floor)
				continue
			}
			m.AddTile(LayerHouseWalls, x, y, wall)
			m.AddTile(LayerCollision, x, y, nil)
		}
	}

	bed := image.Pt(r.Min.X+1, r.Min.Y+1)
	m.AddTile(LayerHouseFurnitureBottom, bed.X, bed.Y, solid(ts, ts, bedColor))
	m.AddObject(LayerPlayer, Object{
		X: float64(bed.X * ts), Y: float64(bed.Y * ts), W: float64(ts), H: float64(ts), Name: ObjectBed,
	})
}

func solid(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// band 透明图像中间的一条横向色带
func band(w, h, y0, y1 int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.SubImage(image.Rect(0, y0, w, y1)).(*ebiten.Image).Fill(c)
	return img
}

// tree 树冠 + 树干
func tree(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.SubImage(image.Rect(0, 0, w, h*2/3)).(*ebiten.Image).Fill(leafColor)
	img.SubImage(image.Rect(w*2/5, h*2/3, w*3/5, h)).(*ebiten.Image).Fill(trunkColor)
	return img
}
