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

// NewPlayerEntity 创建玩家实体
//
// 玩家以 "down_idle" 状态出现，图像中心位于 center。
// 工具/种子的执行定时器由 PlayerSystem 在构造时挂上回调，这里只创建冷却定时器。
//
// 参数:
//   - em: 实体管理器
//   - clock: 定时器使用的时钟
//   - cfg: 游戏配置（初始背包、生命、碰撞盒收缩量、各类冷却）
//   - center: 出生点（地图 Player 层的 Start 对象）
//   - animations: 动画名 → 帧序列
func NewPlayerEntity(em *ecs.EntityManager, clock utils.Clock, cfg *config.GameConfig, center image.Point,
	animations map[string][]*ebiten.Image) ecs.EntityID {
	player := &components.PlayerComponent{
		State:           types.PlayerState{Facing: types.DirectionDown, Activity: types.ActivityIdle},
		Animations:      animations,
		Items:           make(map[types.Resource]int),
		Seeds:           make(map[types.Crop]int),
		Money:           cfg.Player.StartMoney,
		Health:          cfg.Player.MaxHealth,
		MaxHealth:       cfg.Player.MaxHealth,
		ToolTimer:       utils.NewTimer(clock, cfg.Timers.ToolUse, nil),
		SeedTimer:       utils.NewTimer(clock, cfg.Timers.SeedUse, nil),
		SwitchToolTimer: utils.NewTimer(clock, cfg.Timers.SwitchTool, nil),
		SwitchSeedTimer: utils.NewTimer(clock, cfg.Timers.SwitchSeed, nil),
		InteractTimer:   utils.NewTimer(clock, cfg.Timers.MenuSelect, nil),
	}
	for _, r := range types.AllResources {
		player.Items[r] = 0
	}
	for _, crop := range types.AllCrops {
		player.Seeds[crop] = cfg.StartSeeds(crop)
	}

	img := player.CurrentFrame()
	size := image.Pt(1, 1)
	if img != nil {
		size = img.Bounds().Size()
	}
	rect := utils.RectFromCenter(center, size.X, size.Y)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, player)
	ecs.AddComponent(em, id, &components.PositionComponent{X: float64(rect.Min.X), Y: float64(rect.Min.Y)})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, Depth: types.DepthMain})
	ecs.AddComponent(em, id, &components.HitboxComponent{
		Rect: utils.Inflate(rect, -cfg.Player.HitboxShrinkX, -cfg.Player.HitboxShrinkY),
	})
	return id
}
