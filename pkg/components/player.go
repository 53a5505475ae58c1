package components

import (
	"image"

	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerComponent 玩家状态、背包和各类冷却
type PlayerComponent struct {
	// State 朝向 × 动作
	State types.PlayerState
	// Frame 当前动画帧（带小数）
	Frame float64
	// Animations 动画名 → 帧序列，动画名见 types.PlayerState.AnimationName
	Animations map[string][]*ebiten.Image

	// DirX, DirY 本帧的输入方向（未归一化，-1/0/1）
	DirX float64
	DirY float64

	// ToolIndex 当前工具在 types.AllTools 中的下标
	ToolIndex int
	// SeedIndex 当前种子在 types.AllCrops 中的下标
	SeedIndex int
	// Target 工具/种子作用点（世界坐标）
	Target image.Point

	Items     map[types.Resource]int
	Seeds     map[types.Crop]int
	Money     int
	Health    int
	MaxHealth int

	// Sleeping 躺在床上等待转场结束
	Sleeping bool

	ToolTimer       *utils.Timer
	SeedTimer       *utils.Timer
	SwitchToolTimer *utils.Timer
	SwitchSeedTimer *utils.Timer
	// InteractTimer 交互（吃东西、上床、开商店）的防抖
	InteractTimer *utils.Timer
}

// SelectedTool 返回当前工具
func (p *PlayerComponent) SelectedTool() types.Tool {
	return types.AllTools[p.ToolIndex]
}

// SelectedSeed 返回当前种子
func (p *PlayerComponent) SelectedSeed() types.Crop {
	return types.AllCrops[p.SeedIndex]
}

// CurrentFrame 返回当前状态和帧对应的图像，找不到动画时返回 nil
func (p *PlayerComponent) CurrentFrame() *ebiten.Image {
	frames := p.Animations[p.State.AnimationName()]
	if len(frames) == 0 {
		return nil
	}
	idx := int(p.Frame)
	if idx >= len(frames) {
		idx = 0
	}
	return frames[idx]
}
