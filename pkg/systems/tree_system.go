package systems

import (
	"image"
	"log"
	"math/rand/v2"
	"slices"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
)

// TreeSystem 树木的砍伐与结果
type TreeSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	art           *entities.Art
	clock         utils.Clock
	rng           *rand.Rand
	sink          ResourceSink
	sound         SoundPlayer
}

// NewTreeSystem 创建树木系统
// 参数:
//   - sink: 掉落的苹果和木材记入这里
//   - sound: 斧头音效，可为 nil
func NewTreeSystem(em *ecs.EntityManager, cfg *config.GameConfig, art *entities.Art, clock utils.Clock,
	rng *rand.Rand, sink ResourceSink, sound SoundPlayer) *TreeSystem {
	return &TreeSystem{
		entityManager: em,
		config:        cfg,
		art:           art,
		clock:         clock,
		rng:           rng,
		sink:          sink,
		sound:         orSilent(sound),
	}
}

// Update 推进所有树的无敌计时
func (s *TreeSystem) Update() {
	for _, id := range ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager) {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		tree.InvulnTimer.Update()
	}
}

// TreesAt 返回图像矩形包含 point 的所有树
func (s *TreeSystem) TreesAt(point image.Point) []ecs.EntityID {
	var hits []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith3[*components.TreeComponent, *components.SpriteComponent, *components.PositionComponent](s.entityManager) {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if point.In(sprite.Rect(pos)) {
			hits = append(hits, id)
		}
	}
	return hits
}

// TryHit 斧头击中树：无敌时间内忽略，否则播放音效、造成一次伤害并开始无敌计时
//
// 返回:
//   - bool: 是否造成了伤害
func (s *TreeSystem) TryHit(id ecs.EntityID) bool {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || tree.InvulnTimer.Active() {
		return false
	}

	s.sound.PlaySound(SoundAxe)
	s.HandleDamage(id)
	tree.InvulnTimer.Start()
	return true
}

// HandleDamage 树受到一次伤害
//
// 有果实时随机打落一个（记一个苹果），生命耗尽时倒下变成树桩（记一块木材）。
// 树桩仍会扣减生命，但不再掉落任何东西，也不会恢复。
func (s *TreeSystem) HandleDamage(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok {
		return
	}

	tree.Health--
	if !tree.Alive {
		return
	}

	if len(tree.Fruits) > 0 {
		idx := s.rng.IntN(len(tree.Fruits))
		fruit := tree.Fruits[idx]
		tree.Fruits = slices.Delete(tree.Fruits, idx, idx+1)
		s.dropFruit(fruit)
	}

	if tree.Health <= 0 {
		s.fell(id, tree)
	}
}

// CreateApples 为每个果位独立掷骰生成苹果（只对活着的树）
func (s *TreeSystem) CreateApples(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	for _, slot := range tree.FruitSlots {
		if s.rng.IntN(s.config.Tree.FruitDie) >= s.config.Tree.FruitChance {
			continue
		}
		apple := entities.NewSpriteEntity(s.entityManager, pos.Point().Add(slot), s.art.Apple, types.DepthFruit)
		tree.Fruits = append(tree.Fruits, apple)
	}
}

// DestroyApples 移除树上所有苹果（不记入背包）
func (s *TreeSystem) DestroyApples(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok {
		return
	}
	for _, fruit := range tree.Fruits {
		s.entityManager.DestroyEntity(fruit)
	}
	tree.Fruits = tree.Fruits[:0]
}

// RegrowApples 每日重置：活着的树先清空再重新结果
func (s *TreeSystem) RegrowApples() {
	for _, id := range ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager) {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		if !tree.Alive {
			continue
		}
		s.DestroyApples(id)
		s.CreateApples(id)
	}
}

func (s *TreeSystem) dropFruit(fruit ecs.EntityID) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, fruit); ok {
		entities.NewParticleEffect(s.entityManager, s.clock, pos.Point(), s.art.Apple, types.DepthFruit,
			s.config.Timers.Particle)
	}
	s.entityManager.DestroyEntity(fruit)
	s.sink.Credit(types.ResourceApple)
}

// fell 树倒下：闪一下原图像，换成树桩，记一块木材
func (s *TreeSystem) fell(id ecs.EntityID, tree *components.TreeComponent) {
	tree.Alive = false
	s.DestroyApples(id)

	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	pos, ok2 := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if ok && ok2 {
		rect := sprite.Rect(pos)
		entities.NewParticleEffect(s.entityManager, s.clock, rect.Min, sprite.Image, types.DepthFruit,
			s.config.Timers.Particle)

		if tree.Stump != nil {
			size := tree.Stump.Bounds().Size()
			stumpRect := utils.RectFromMidBottom(utils.MidBottom(rect), size.X, size.Y)
			sprite.Image = tree.Stump
			pos.X, pos.Y = float64(stumpRect.Min.X), float64(stumpRect.Min.Y)
			ecs.AddComponent(s.entityManager, id, &components.HitboxComponent{
				Rect: utils.Inflate(stumpRect, -10, -stumpRect.Dy()*3/5),
			})
		}
	}

	s.sink.Credit(types.ResourceWood)
	log.Printf("[TreeSystem] tree %d felled", id)
}
