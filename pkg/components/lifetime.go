package components

import "github.com/decker502/valley/pkg/utils"

// LifetimeComponent 管理实体的生命周期
// 用于自动清理短暂存在的实体(如粒子、雨滴、水洼)，定时器停止即视为过期
type LifetimeComponent struct {
	Timer *utils.Timer
}
