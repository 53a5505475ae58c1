package entities

import (
	"image"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewPlantEntity 在指定耕地格子上创建作物实体
//
// 作物以第 0 帧出现在 plant 层，底边对齐格子底边（加上作物自己的纵向偏移）。
// 刚种下的作物没有碰撞盒，长出第一阶段后由 PlantSystem 加上。
//
// 参数:
//   - em: 实体管理器
//   - clock: 踩踏冷却计时用的时钟
//   - cfg: 游戏配置（生长速度、偏移、耐久、踩踏冷却）
//   - crop: 作物种类
//   - row, col: 耕地格子
//   - frames: 各生长阶段的图像（至少一帧）
//
// 返回:
//   - ecs.EntityID: 创建的作物实体ID
func NewPlantEntity(em *ecs.EntityManager, clock utils.Clock, cfg *config.GameConfig, crop types.Crop,
	row, col int, frames []*ebiten.Image) ecs.EntityID {
	cc := cfg.CropConfig(crop)

	plant := &components.PlantComponent{
		Crop:         crop,
		Row:          row,
		Col:          col,
		MaxStage:     len(frames) - 1,
		GrowthRate:   cc.GrowthRate,
		Health:       cc.Health,
		TrampleTimer: utils.NewTimer(clock, cfg.Timers.PlantTrample, nil),
		Frames:       frames,
		OffsetY:      cc.OffsetY,
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, plant)
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: plant.CurrentFrame(), Depth: types.DepthPlant})
	pos := PlantPosition(plant, cfg.TileSize)
	ecs.AddComponent(em, id, &components.PositionComponent{X: float64(pos.X), Y: float64(pos.Y)})
	return id
}

// PlantPosition 计算作物当前帧的左上角坐标（底边中点对齐格子底边中点 + OffsetY）
func PlantPosition(plant *components.PlantComponent, tile int) image.Point {
	img := plant.CurrentFrame()
	anchor := utils.MidBottom(utils.TileRect(plant.Row, plant.Col, tile)).Add(image.Pt(0, plant.OffsetY))
	if img == nil {
		return anchor
	}
	size := img.Bounds().Size()
	return utils.RectFromMidBottom(anchor, size.X, size.Y).Min
}

// PlantHitbox 成长后作物的碰撞盒：横向收缩 26 像素，纵向收缩 40%
func PlantHitbox(rect image.Rectangle) image.Rectangle {
	return utils.Inflate(rect, -26, -rect.Dy()*2/5)
}
