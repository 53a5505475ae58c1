package systems

import (
	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
)

// AnimationSystem 管理循环帧动画（水面）
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有动画实体的帧，到末尾后回到第一帧
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if len(anim.Frames) == 0 {
			continue
		}

		anim.Frame += anim.Speed * deltaTime
		if int(anim.Frame) >= len(anim.Frames) {
			anim.Frame = 0
		}
		sprite.Image = anim.Frames[int(anim.Frame)]
	}
}
