package components

import (
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlantComponent 标识实体为作物
// 包含作物种类、所在格子和生长状态
//
// 作物每个浇过水的日子增长 GrowthRate 个阶段，阶段数决定当前帧。
// 到达最后一帧后变为可收获，且不会再退回。
type PlantComponent struct {
	// Crop 作物种类
	Crop types.Crop
	// Row, Col 所在耕地格子
	Row int
	Col int

	// Stage 生长阶段（可为小数，取整后作为帧索引）
	Stage float64
	// MaxStage 最大阶段 = 帧数 - 1
	MaxStage int
	// GrowthRate 每天增长的阶段数
	GrowthRate float64
	// Harvestable 是否可以收获
	Harvestable bool

	// Health 剩余可被踩踏的次数
	Health int
	// TrampleTimer 踩踏冷却，计时中不会再次扣血
	TrampleTimer *utils.Timer

	// Frames 各生长阶段的图像
	Frames []*ebiten.Image
	// OffsetY 图像底边相对格子底边的偏移
	OffsetY int
}

// FrameIndex 返回当前阶段对应的帧索引
func (p *PlantComponent) FrameIndex() int {
	idx := int(p.Stage)
	if idx < 0 {
		return 0
	}
	if idx >= len(p.Frames) {
		return len(p.Frames) - 1
	}
	return idx
}

// CurrentFrame 返回当前阶段的图像
func (p *PlantComponent) CurrentFrame() *ebiten.Image {
	if len(p.Frames) == 0 {
		return nil
	}
	return p.Frames[p.FrameIndex()]
}
