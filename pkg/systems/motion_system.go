package systems

import (
	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
)

// MotionSystem 匀速运动（雨滴）
type MotionSystem struct {
	entityManager *ecs.EntityManager
}

// NewMotionSystem 创建运动系统
func NewMotionSystem(em *ecs.EntityManager) *MotionSystem {
	return &MotionSystem{entityManager: em}
}

// Update 位置 += 方向 × 速度 × dt
func (s *MotionSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.VelocityComponent, *components.PositionComponent](s.entityManager) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		pos.X += vel.DirX * vel.Speed * deltaTime
		pos.Y += vel.DirY * vel.Speed * deltaTime
	}
}
