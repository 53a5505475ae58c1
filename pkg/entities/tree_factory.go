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

// NewTreeEntity 创建树木实体
// 果实由 TreeSystem.CreateApples 在创建后生成
//
// 参数:
//   - em: 实体管理器
//   - clock: 无敌时间计时用的时钟
//   - cfg: 游戏配置（生命、果位、无敌时间）
//   - pos: 树图像左上角的世界坐标
//   - img: 树图像
//   - size: 树的尺寸（components.TreeSmall / TreeLarge）
//   - stump: 倒下后的树桩图像
func NewTreeEntity(em *ecs.EntityManager, clock utils.Clock, cfg *config.GameConfig, pos image.Point,
	img *ebiten.Image, size string, stump *ebiten.Image) ecs.EntityID {
	id := NewObstacleEntity(em, pos, img, types.DepthMain)
	ecs.AddComponent(em, id, &components.TreeComponent{
		Size:        size,
		Health:      cfg.Tree.Health,
		Alive:       true,
		FruitSlots:  cfg.FruitSlots(size),
		Stump:       stump,
		InvulnTimer: utils.NewTimer(clock, cfg.Timers.TreeInvuln, nil),
	})
	return id
}
