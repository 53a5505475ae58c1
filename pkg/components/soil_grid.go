package components

import (
	"image"

	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/utils"
)

// SoilTile 单个格子的耕作状态
//
// 不变式: Tilled ⇒ Farmable; Watered ⇒ Tilled; Planted ⇒ Tilled
type SoilTile struct {
	Farmable bool
	Tilled   bool
	Watered  bool
	Planted  bool

	// Plant 格子上的植物实体（Planted 为 true 时有效）
	Plant ecs.EntityID
	// Soil 翻土贴图实体
	Soil ecs.EntityID
	// Moisture 湿润贴图实体
	Moisture ecs.EntityID
}

// SoilGridComponent 覆盖整张地图的耕作网格
// Tiles[row][col]，行对应 y，列对应 x
type SoilGridComponent struct {
	Rows     int
	Cols     int
	TileSize int
	Tiles    [][]SoilTile
}

// NewSoilGridComponent 创建 rows×cols 的空网格
func NewSoilGridComponent(rows, cols, tileSize int) *SoilGridComponent {
	tiles := make([][]SoilTile, rows)
	for r := range tiles {
		tiles[r] = make([]SoilTile, cols)
	}
	return &SoilGridComponent{
		Rows:     rows,
		Cols:     cols,
		TileSize: tileSize,
		Tiles:    tiles,
	}
}

// InBounds 检查行列是否在网格内
func (g *SoilGridComponent) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Tile 返回指定格子，越界返回 nil
func (g *SoilGridComponent) Tile(row, col int) *SoilTile {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.Tiles[row][col]
}

// TileAt 返回像素坐标所在的格子及其行列，越界时 tile 为 nil
func (g *SoilGridComponent) TileAt(point image.Point) (tile *SoilTile, row, col int) {
	row, col = utils.PointToTile(point, g.TileSize)
	return g.Tile(row, col), row, col
}

// IsTilled 越界格子视为未翻土
func (g *SoilGridComponent) IsTilled(row, col int) bool {
	tile := g.Tile(row, col)
	return tile != nil && tile.Tilled
}
