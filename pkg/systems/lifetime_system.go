package systems

import (
	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 推进所有生命周期定时器，定时器停止的实体标记删除
func (s *LifetimeSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		lifetime.Timer.Update()

		if !lifetime.Timer.Active() {
			s.entityManager.DestroyEntity(id)
		}
	}
}
