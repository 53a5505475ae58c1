package components

import (
	"image"

	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 树木尺寸（地图对象名）
const (
	TreeSmall = "Small"
	TreeLarge = "Large"
)

// TreeComponent 可砍伐、会结果的树
type TreeComponent struct {
	// Size 树的尺寸，决定果位布局和树桩图像
	Size string
	// Health 剩余生命，降到 0 时倒下
	Health int
	// Alive 倒下后永久为 false
	Alive bool

	// FruitSlots 果位（相对树图像左上角）
	FruitSlots []image.Point
	// Fruits 当前挂在树上的果实实体
	Fruits []ecs.EntityID

	// Stump 倒下后替换成的树桩图像
	Stump *ebiten.Image
	// InvulnTimer 被斧头击中后的无敌时间
	InvulnTimer *utils.Timer
}
