package entities

import (
	"image"
	"time"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewParticleEffect 创建白色剪影粒子
// 用于树倒下、果实掉落、作物收获时在原位置闪一下
//
// 参数:
//   - em: 实体管理器
//   - clock: 生命周期计时用的时钟
//   - pos: 剪影左上角的世界坐标（与原图像位置相同）
//   - img: 原图像，渲染时只保留其轮廓
//   - depth: 绘制层级
//   - duration: 存在时间
func NewParticleEffect(em *ecs.EntityManager, clock utils.Clock, pos image.Point, img *ebiten.Image,
	depth types.Depth, duration time.Duration) ecs.EntityID {
	id := NewSpriteEntity(em, pos, img, depth)
	ecs.AddComponent(em, id, &components.ParticleComponent{})
	addLifetime(em, clock, id, duration)
	return id
}

// NewRainDropEffect 创建雨滴或水洼
// moving 为 true 时是下落的雨滴，否则是静止的水洼
func NewRainDropEffect(em *ecs.EntityManager, clock utils.Clock, pos image.Point, img *ebiten.Image,
	moving bool, speed float64, duration time.Duration) ecs.EntityID {
	depth := types.DepthRainFloor
	if moving {
		depth = types.DepthRainDrops
	}
	id := NewSpriteEntity(em, pos, img, depth)
	if moving {
		ecs.AddComponent(em, id, &components.VelocityComponent{DirX: -2, DirY: 4, Speed: speed})
	}
	addLifetime(em, clock, id, duration)
	return id
}

func addLifetime(em *ecs.EntityManager, clock utils.Clock, id ecs.EntityID, duration time.Duration) {
	timer := utils.NewTimer(clock, duration, nil)
	timer.Start()
	ecs.AddComponent(em, id, &components.LifetimeComponent{Timer: timer})
}
