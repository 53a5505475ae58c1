package systems

import (
	"image"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
)

// PlantSystem 作物生长与踩踏
// 作物与格子的关联由 SoilSystem 维护，这里只处理单株作物的状态
type PlantSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewPlantSystem 创建作物系统
func NewPlantSystem(em *ecs.EntityManager, cfg *config.GameConfig) *PlantSystem {
	return &PlantSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 推进所有作物的踩踏冷却
func (s *PlantSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.PlantComponent](s.entityManager) {
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		plant.TrampleTimer.Update()
	}
}

// Grow 作物生长一天
//
// 只有湿润且尚未成熟的作物会长。阶段超过 0 后作物移到 main 层并获得碰撞盒，
// 到达最大阶段时变为可收获。
func (s *PlantSystem) Grow(id ecs.EntityID, watered bool) {
	plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
	if !ok || !watered || plant.Harvestable {
		return
	}

	plant.Stage += plant.GrowthRate
	if plant.Stage >= float64(plant.MaxStage) {
		plant.Stage = float64(plant.MaxStage)
		plant.Harvestable = true
	}

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return
	}
	sprite.Image = plant.CurrentFrame()

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		p := entities.PlantPosition(plant, s.config.TileSize)
		pos.X, pos.Y = float64(p.X), float64(p.Y)

		if plant.Stage > 0 {
			sprite.Depth = types.DepthMain
			ecs.AddComponent(s.entityManager, id, &components.HitboxComponent{
				Rect: entities.PlantHitbox(sprite.Rect(pos)),
			})
		}
	}
}

// Trample 玩家碰撞盒与幼苗重叠时扣一点耐久
// 只对未成熟、阶段不超过 0 的作物生效，冷却期间不重复扣除
//
// 返回:
//   - bool: 作物耐久耗尽，需要被移除
func (s *PlantSystem) Trample(id ecs.EntityID, playerHitbox image.Rectangle) bool {
	plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
	if !ok || plant.Harvestable || plant.Stage > 0 || plant.TrampleTimer.Active() {
		return false
	}

	rect, ok := s.Rect(id)
	if !ok || !rect.Overlaps(playerHitbox) {
		return false
	}

	plant.Health--
	plant.TrampleTimer.Start()
	return plant.Health <= 0
}

// Rect 返回作物图像占据的世界矩形
func (s *PlantSystem) Rect(id ecs.EntityID) (image.Rectangle, bool) {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return image.Rectangle{}, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return image.Rectangle{}, false
	}
	return sprite.Rect(pos), true
}
