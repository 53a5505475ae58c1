package types

// Tool 玩家工具
type Tool int

const (
	// ToolAxe 斧头：砍树
	ToolAxe Tool = iota
	// ToolHoe 锄头：翻土
	ToolHoe
	// ToolWater 水壶：浇水
	ToolWater
)

// AllTools 工具切换顺序
var AllTools = []Tool{ToolAxe, ToolHoe, ToolWater}

// String 返回工具名（同时是动画目录后缀）
func (t Tool) String() string {
	switch t {
	case ToolAxe:
		return "axe"
	case ToolHoe:
		return "hoe"
	case ToolWater:
		return "water"
	default:
		return "unknown"
	}
}

// Direction 玩家朝向
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionLeft
	DirectionRight
)

// AllDirections 全部朝向
var AllDirections = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "down"
	}
}

// Activity 玩家当前动作
type Activity int

const (
	// ActivityIdle 站立
	ActivityIdle Activity = iota
	// ActivityWalk 行走
	ActivityWalk
	// ActivityAxe 使用斧头
	ActivityAxe
	// ActivityHoe 使用锄头
	ActivityHoe
	// ActivityWater 使用水壶
	ActivityWater
)

// AllActivities 全部动作
var AllActivities = []Activity{ActivityIdle, ActivityWalk, ActivityAxe, ActivityHoe, ActivityWater}

// ToolActivity 返回使用指定工具时的动作
func ToolActivity(t Tool) Activity {
	switch t {
	case ToolHoe:
		return ActivityHoe
	case ToolWater:
		return ActivityWater
	default:
		return ActivityAxe
	}
}

// PlayerState 朝向与动作的组合，决定播放哪一组动画帧
type PlayerState struct {
	Facing   Direction
	Activity Activity
}

// AnimationName 返回动画目录名，如 "left", "up_idle", "down_hoe"
func (s PlayerState) AnimationName() string {
	switch s.Activity {
	case ActivityWalk:
		return s.Facing.String()
	case ActivityIdle:
		return s.Facing.String() + "_idle"
	case ActivityAxe:
		return s.Facing.String() + "_axe"
	case ActivityHoe:
		return s.Facing.String() + "_hoe"
	case ActivityWater:
		return s.Facing.String() + "_water"
	default:
		return s.Facing.String()
	}
}
