package systems

import (
	"image"
	"log"
	"math/rand/v2"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
)

// SoilSystem 管理耕地网格：翻土、浇水、播种和作物的每日生长
//
// 网格数据保存在网格实体的 SoilGridComponent 上，
// 格子上的翻土贴图、湿润贴图和作物都是独立实体，由本系统负责创建和销毁。
type SoilSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	art           *entities.Art
	clock         utils.Clock
	rng           *rand.Rand
	plants        *PlantSystem

	gridEntity ecs.EntityID
	raining    bool
}

// NewSoilSystem 创建耕地系统
// 参数:
//   - em: EntityManager 实例
//   - cfg: 游戏配置（格子尺寸等）
//   - art: 贴图资源（翻土变体、湿润贴图、作物帧）
//   - clock: 作物踩踏冷却使用的时钟
//   - rng: 随机源（湿润贴图选择）
//   - plants: 作物系统
//   - mapSize: 地图像素尺寸，决定网格行列数
//
// 返回:
//   - *SoilSystem: 所有格子均不可耕作，需调用 MarkFarmable 标记
func NewSoilSystem(em *ecs.EntityManager, cfg *config.GameConfig, art *entities.Art, clock utils.Clock,
	rng *rand.Rand, plants *PlantSystem, mapSize image.Point) *SoilSystem {
	grid := components.NewSoilGridComponent(mapSize.Y/cfg.TileSize, mapSize.X/cfg.TileSize, cfg.TileSize)
	gridEntity := em.CreateEntity()
	ecs.AddComponent(em, gridEntity, grid)

	return &SoilSystem{
		entityManager: em,
		config:        cfg,
		art:           art,
		clock:         clock,
		rng:           rng,
		plants:        plants,
		gridEntity:    gridEntity,
	}
}

// Grid 返回网格组件
func (s *SoilSystem) Grid() *components.SoilGridComponent {
	grid, _ := ecs.GetComponent[*components.SoilGridComponent](s.entityManager, s.gridEntity)
	return grid
}

// MarkFarmable 把格子标记为可耕作（地图 Farmable 层），越界忽略
func (s *SoilSystem) MarkFarmable(row, col int) {
	if tile := s.Grid().Tile(row, col); tile != nil {
		tile.Farmable = true
	}
}

// SetRaining 设置天气，下雨期间新翻的土立即湿润
func (s *SoilSystem) SetRaining(raining bool) {
	s.raining = raining
}

// Raining 当前是否下雨
func (s *SoilSystem) Raining() bool {
	return s.raining
}

// HandleHit 锄头击中 point 所在格子
// 可耕作且未翻土的格子变为已翻土，返回是否发生了变化
func (s *SoilSystem) HandleHit(point image.Point) bool {
	grid := s.Grid()
	tile, row, col := grid.TileAt(point)
	if tile == nil || !tile.Farmable || tile.Tilled {
		return false
	}

	tile.Tilled = true
	tile.Soil = entities.NewSpriteEntity(s.entityManager, utils.TileToPoint(row, col, grid.TileSize),
		s.art.Soil[types.SoilIsolated], types.DepthSoil)
	s.refreshSoilImages()

	if s.raining {
		s.waterTile(tile, row, col)
	}
	log.Printf("[SoilSystem] tilled (%d,%d)", row, col)
	return true
}

// Water 给 point 所在的已翻土格子浇水，已湿润或未翻土时返回 false
func (s *SoilSystem) Water(point image.Point) bool {
	tile, row, col := s.Grid().TileAt(point)
	if tile == nil || !tile.Tilled || tile.Watered {
		return false
	}
	s.waterTile(tile, row, col)
	return true
}

// WaterAll 给所有未湿润的已翻土格子浇水
func (s *SoilSystem) WaterAll() {
	grid := s.Grid()
	for row := range grid.Tiles {
		for col := range grid.Tiles[row] {
			tile := &grid.Tiles[row][col]
			if tile.Tilled && !tile.Watered {
				s.waterTile(tile, row, col)
			}
		}
	}
}

// RemoveWater 清除所有格子的湿润状态和湿润贴图
func (s *SoilSystem) RemoveWater() {
	grid := s.Grid()
	for row := range grid.Tiles {
		for col := range grid.Tiles[row] {
			tile := &grid.Tiles[row][col]
			if !tile.Watered {
				continue
			}
			tile.Watered = false
			s.entityManager.DestroyEntity(tile.Moisture)
			tile.Moisture = 0
		}
	}
}

// Plant 在 point 所在的已翻土空格子上种下作物，返回是否成功
func (s *SoilSystem) Plant(crop types.Crop, point image.Point) bool {
	tile, row, col := s.Grid().TileAt(point)
	if tile == nil || !tile.Tilled || tile.Planted {
		return false
	}

	tile.Planted = true
	tile.Plant = entities.NewPlantEntity(s.entityManager, s.clock, s.config, crop, row, col, s.art.Plants[crop])
	log.Printf("[SoilSystem] planted %s at (%d,%d)", crop, row, col)
	return true
}

// UpdatePlants 所有作物生长一天（只有湿润格子上的作物会长）
func (s *SoilSystem) UpdatePlants() {
	grid := s.Grid()
	for row := range grid.Tiles {
		for col := range grid.Tiles[row] {
			tile := &grid.Tiles[row][col]
			if !tile.Planted || !s.entityManager.IsAlive(tile.Plant) {
				continue
			}
			s.plants.Grow(tile.Plant, tile.Watered)
		}
	}
}

// CheckPlants 检查玩家是否踩到幼苗，被踩坏的作物从格子上移除并销毁
func (s *SoilSystem) CheckPlants(playerHitbox image.Rectangle) {
	grid := s.Grid()
	for row := range grid.Tiles {
		for col := range grid.Tiles[row] {
			tile := &grid.Tiles[row][col]
			if !tile.Planted || !s.entityManager.IsAlive(tile.Plant) {
				continue
			}
			if s.plants.Trample(tile.Plant, playerHitbox) {
				s.entityManager.DestroyEntity(tile.Plant)
				tile.Planted = false
				tile.Plant = 0
				log.Printf("[SoilSystem] plant at (%d,%d) trampled", row, col)
			}
		}
	}
}

// RemovePlant 清除 point 所在格子的作物标记（作物实体由调用方销毁）
func (s *SoilSystem) RemovePlant(point image.Point) {
	tile, _, _ := s.Grid().TileAt(point)
	if tile == nil {
		return
	}
	tile.Planted = false
	tile.Plant = 0
}

// Variant 返回格子当前应使用的贴图变体
func (s *SoilSystem) Variant(row, col int) types.SoilVariant {
	grid := s.Grid()
	return AutotileVariant(NeighbourMask{
		Top:    grid.IsTilled(row-1, col),
		Right:  grid.IsTilled(row, col+1),
		Bottom: grid.IsTilled(row+1, col),
		Left:   grid.IsTilled(row, col-1),
	})
}

// refreshSoilImages 重新计算所有已翻土格子的贴图
func (s *SoilSystem) refreshSoilImages() {
	grid := s.Grid()
	for row := range grid.Tiles {
		for col := range grid.Tiles[row] {
			tile := &grid.Tiles[row][col]
			if !tile.Tilled {
				continue
			}
			sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, tile.Soil)
			if !ok {
				continue
			}
			sprite.Image = s.art.Soil[s.Variant(row, col)]
		}
	}
}

func (s *SoilSystem) waterTile(tile *components.SoilTile, row, col int) {
	tile.Watered = true
	img := s.art.Moisture[s.rng.IntN(len(s.art.Moisture))]
	tile.Moisture = entities.NewSpriteEntity(s.entityManager, utils.TileToPoint(row, col, s.Grid().TileSize),
		img, types.DepthSoilWater)
}
