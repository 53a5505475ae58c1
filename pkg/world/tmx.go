package world

import (
	"fmt"
	"image"
	"log"

	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

// TMXMap 从 Tiled 编辑器导出的 .tmx 文件读取的地图
// 图层在加载时一次性解析为 TileCell / Object，之后不再访问 go-tiled 的数据结构
type TMXMap struct {
	width   int
	height  int
	tiles   map[string][]TileCell
	objects map[string][]Object
}

// LoadTMX 加载 .tmx 地图
//
// 参数:
//   - path: 地图文件路径
//   - loader: 图块集图片加载器，缺失的图片以占位图代替
//
// 返回:
//   - *TMXMap: 解析后的地图
//   - error: 文件读取或解析失败
func LoadTMX(path string, loader ImageLoader) (*TMXMap, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tmx map %s: %w", path, err)
	}

	r := &tmxReader{
		m:      m,
		loader: loader,
		sheets: make(map[string]*ebiten.Image),
	}

	out := &TMXMap{
		width:   m.Width * m.TileWidth,
		height:  m.Height * m.TileHeight,
		tiles:   make(map[string][]TileCell),
		objects: make(map[string][]Object),
	}

	r.addLayers(out, m.Layers, m.ObjectGroups, m.Groups)

	log.Printf("[World] loaded %s: %dx%d px, %d tile layers, %d object layers",
		path, out.width, out.height, len(out.tiles), len(out.objects))
	return out, nil
}

// Size 实现 Source
func (t *TMXMap) Size() (int, int) {
	return t.width, t.height
}

// TileLayer 实现 Source
func (t *TMXMap) TileLayer(name string) []TileCell {
	return t.tiles[name]
}

// ObjectLayer 实现 Source
func (t *TMXMap) ObjectLayer(name string) []Object {
	return t.objects[name]
}

// addLayers 读取图块层和对象层，编辑器中的分组图层按层名展开
func (r *tmxReader) addLayers(out *TMXMap, layers []*tiled.Layer, groups []*tiled.ObjectGroup, nested []*tiled.Group) {
	w := r.m.Width
	for _, layer := range layers {
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				continue
			}
			out.tiles[layer.Name] = append(out.tiles[layer.Name], TileCell{
				X:     i % w,
				Y:     i / w,
				Image: r.tileImage(tile),
			})
		}
	}

	for _, group := range groups {
		for _, obj := range group.Objects {
			o := Object{X: obj.X, Y: obj.Y, W: obj.Width, H: obj.Height, Name: obj.Name}
			if obj.GID != 0 {
				// 图块对象以左下角定位
				o.Y -= obj.Height
				if tile, err := r.m.TileGIDToTile(obj.GID); err == nil {
					o.Image = r.tileImage(tile)
				}
			}
			out.objects[group.Name] = append(out.objects[group.Name], o)
		}
	}

	for _, g := range nested {
		r.addLayers(out, g.Layers, g.ObjectGroups, g.Groups)
	}
}

type tmxReader struct {
	m      *tiled.Map
	loader ImageLoader
	sheets map[string]*ebiten.Image
}

// tileImage 返回图块的图像
// 图片集合类图块集每个图块一张图；普通图块集从整张图上裁剪
func (r *tmxReader) tileImage(tile *tiled.LayerTile) *ebiten.Image {
	ts := tile.Tileset
	if ts == nil {
		return nil
	}

	for _, t := range ts.Tiles {
		if t.ID == tile.ID && t.Image != nil {
			return r.load(ts.GetFileFullPath(t.Image.Source), ts.TileWidth, ts.TileHeight)
		}
	}

	if ts.Image == nil {
		return nil
	}
	sheet := r.load(ts.GetFileFullPath(ts.Image.Source), ts.Image.Width, ts.Image.Height)
	return utils.CropImage(sheet, ts.GetTileRect(tile.ID))
}

func (r *tmxReader) load(path string, w, h int) *ebiten.Image {
	if img, ok := r.sheets[path]; ok {
		return img
	}
	img, err := r.loader.LoadImage(path)
	if err != nil || img == nil {
		log.Printf("[World] missing tileset image %s, using placeholder: %v", path, err)
		img = utils.PlaceholderImage(path, image.Pt(w, h))
	}
	r.sheets[path] = img
	return img
}
