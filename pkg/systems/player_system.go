package systems

import (
	"image"
	"log"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/input"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
)

// ShopOpener 打开商店菜单（由关卡实现）
type ShopOpener interface {
	OpenShop()
}

// PlayerSystem 玩家控制器：输入、移动与碰撞、工具/种子使用、进食和背包
//
// 每帧顺序：更新定时器 → 读取输入 → 移动 → 计算作用点 → 决定动作 → 推进动画。
// 工具和种子的效果在各自定时器到期时才结算，期间玩家站定并播放工具动画。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	input         input.Source
	soil          *SoilSystem
	trees         *TreeSystem
	sound         SoundPlayer
	shop          ShopOpener

	player ecs.EntityID
}

// NewPlayerSystem 创建玩家系统并绑定工具/种子定时器的回调
//
// 参数:
//   - player: 由 entities.NewPlayerEntity 创建的玩家实体
//   - shop: 与商人交互时调用，可为 nil
func NewPlayerSystem(em *ecs.EntityManager, cfg *config.GameConfig, in input.Source, soil *SoilSystem,
	trees *TreeSystem, sound SoundPlayer, shop ShopOpener, player ecs.EntityID) *PlayerSystem {
	s := &PlayerSystem{
		entityManager: em,
		config:        cfg,
		input:         in,
		soil:          soil,
		trees:         trees,
		sound:         orSilent(sound),
		shop:          shop,
		player:        player,
	}

	if p := s.Component(); p != nil {
		p.ToolTimer.SetCallback(s.useTool)
		p.SeedTimer.SetCallback(s.useSeed)
	}
	return s
}

// Player 返回玩家实体
func (s *PlayerSystem) Player() ecs.EntityID {
	return s.player
}

// Component 返回玩家组件，实体不存在时返回 nil
func (s *PlayerSystem) Component() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.player)
	return p
}

// Hitbox 返回玩家碰撞盒
func (s *PlayerSystem) Hitbox() image.Rectangle {
	hb, ok := ecs.GetComponent[*components.HitboxComponent](s.entityManager, s.player)
	if !ok {
		return image.Rectangle{}
	}
	return hb.Rect
}

// Rect 返回玩家图像矩形
func (s *PlayerSystem) Rect() image.Rectangle {
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.player)
	if !ok {
		return image.Rectangle{}
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	if !ok {
		return image.Rectangle{}
	}
	return sprite.Rect(pos)
}

// Update 更新玩家一帧
func (s *PlayerSystem) Update(dt float64) {
	p := s.Component()
	if p == nil {
		return
	}

	p.ToolTimer.Update()
	p.SeedTimer.Update()
	p.SwitchToolTimer.Update()
	p.SwitchSeedTimer.Update()
	p.InteractTimer.Update()

	if !p.ToolTimer.Active() && !p.Sleeping {
		s.handleInput(p)
	}

	s.move(p, dt)
	s.updateTarget(p)
	s.updateActivity(p)
	s.animate(p, dt)
}

// Credit 背包中的资源加一
func (s *PlayerSystem) Credit(resource types.Resource) {
	if p := s.Component(); p != nil {
		p.Items[resource]++
	}
}

// Eat 按优先级吃一份食物恢复一点生命
// 生命已满或没有足够的食物时什么都不做
//
// 返回:
//   - bool: 是否吃了东西
func (s *PlayerSystem) Eat() bool {
	p := s.Component()
	if p == nil || p.Health >= p.MaxHealth {
		return false
	}
	for _, meal := range s.config.Meals() {
		if p.Items[meal.Resource] < meal.Cost {
			continue
		}
		p.Items[meal.Resource] -= meal.Cost
		p.Health++
		log.Printf("[PlayerSystem] ate %d %s, health %d/%d", meal.Cost, meal.Resource, p.Health, p.MaxHealth)
		return true
	}
	return false
}

// Starve 过夜饥饿：生命减一，不低于 0
func (s *PlayerSystem) Starve() {
	if p := s.Component(); p != nil && p.Health > 0 {
		p.Health--
	}
}

// Wake 转场结束，玩家起床
func (s *PlayerSystem) Wake() {
	if p := s.Component(); p != nil {
		p.Sleeping = false
	}
}

// axis 把一对相反方向的按键合成 -1、0 或 1
func axis(negative, positive bool) float64 {
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

func (s *PlayerSystem) handleInput(p *components.PlayerComponent) {
	in := s.input

	// 相反方向同时按下时该轴归零；先横后纵，斜向移动时朝向取上下
	p.DirX = axis(in.Pressed(input.ActionLeft), in.Pressed(input.ActionRight))
	switch p.DirX {
	case -1:
		p.State.Facing = types.DirectionLeft
	case 1:
		p.State.Facing = types.DirectionRight
	}

	p.DirY = axis(in.Pressed(input.ActionUp), in.Pressed(input.ActionDown))
	switch p.DirY {
	case -1:
		p.State.Facing = types.DirectionUp
	case 1:
		p.State.Facing = types.DirectionDown
	}

	if in.Pressed(input.ActionUseSeed) {
		p.SeedTimer.Start()
		p.DirX, p.DirY = 0, 0
	}

	if in.Pressed(input.ActionUseTool) {
		p.ToolTimer.Start()
		p.DirX, p.DirY = 0, 0
		p.Frame = 0
	}

	n := len(types.AllTools)
	if in.Pressed(input.ActionNextTool) && !p.SwitchToolTimer.Active() {
		p.SwitchToolTimer.Start()
		p.ToolIndex = (p.ToolIndex + 1) % n
	}
	if in.Pressed(input.ActionPrevTool) && !p.SwitchToolTimer.Active() {
		p.SwitchToolTimer.Start()
		p.ToolIndex = (p.ToolIndex - 1 + n) % n
	}

	if in.Pressed(input.ActionNextSeed) && !p.SwitchSeedTimer.Active() {
		p.SwitchSeedTimer.Start()
		p.SeedIndex = (p.SeedIndex + 1) % len(types.AllCrops)
	}

	if in.Pressed(input.ActionInteract) && !p.InteractTimer.Active() {
		p.InteractTimer.Start()
		s.interact(p)
	}
}

// interact 商人处打开商店，床上睡觉，其他地方吃东西
func (s *PlayerSystem) interact(p *components.PlayerComponent) {
	hitbox := s.Hitbox()
	for _, id := range ecs.GetEntitiesWith1[*components.InteractionComponent](s.entityManager) {
		area, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		if !area.Rect.Overlaps(hitbox) {
			continue
		}
		switch area.Name {
		case components.InteractionTrader:
			if s.shop != nil {
				s.shop.OpenShop()
			}
			return
		case components.InteractionBed:
			p.Sleeping = true
			p.DirX, p.DirY = 0, 0
			p.State = types.PlayerState{Facing: types.DirectionLeft, Activity: types.ActivityIdle}
			log.Printf("[PlayerSystem] going to sleep")
			return
		}
	}
	s.Eat()
}

func (s *PlayerSystem) move(p *components.PlayerComponent, dt float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, s.player)
	if !ok {
		return
	}
	hb, ok := ecs.GetComponent[*components.HitboxComponent](s.entityManager, s.player)
	if !ok {
		return
	}

	dx, dy := utils.Normalize(p.DirX, p.DirY)
	speed := s.config.Player.Speed * dt

	if dx != 0 {
		pos.X += dx * speed
		hb.Rect = s.hitboxAt(pos)
		pos.X += float64(s.resolve(hb.Rect, dx, true))
		hb.Rect = s.hitboxAt(pos)
	}
	if dy != 0 {
		pos.Y += dy * speed
		hb.Rect = s.hitboxAt(pos)
		pos.Y += float64(s.resolve(hb.Rect, dy, false))
		hb.Rect = s.hitboxAt(pos)
	}
}

// hitboxAt 由图像左上角推出碰撞盒
func (s *PlayerSystem) hitboxAt(pos *components.PositionComponent) image.Rectangle {
	size := image.Pt(1, 1)
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.player); ok && sprite.Image != nil {
		size = sprite.Image.Bounds().Size()
	}
	min := image.Pt(utils.RoundHalfAwayFromZero(pos.X), utils.RoundHalfAwayFromZero(pos.Y))
	rect := image.Rectangle{Min: min, Max: min.Add(size)}
	return utils.Inflate(rect, -s.config.Player.HitboxShrinkX, -s.config.Player.HitboxShrinkY)
}

// resolve 返回把碰撞盒推到障碍物外侧所需的位移
// dir 为该轴的移动方向，horizontal 区分 x/y 轴
func (s *PlayerSystem) resolve(hitbox image.Rectangle, dir float64, horizontal bool) int {
	shift := 0
	for _, id := range ecs.GetEntitiesWith1[*components.HitboxComponent](s.entityManager) {
		if id == s.player {
			continue
		}
		other, _ := ecs.GetComponent[*components.HitboxComponent](s.entityManager, id)
		moved := hitbox.Add(axisPoint(shift, horizontal))
		if !moved.Overlaps(other.Rect) {
			continue
		}
		switch {
		case horizontal && dir > 0:
			shift += other.Rect.Min.X - moved.Max.X
		case horizontal && dir < 0:
			shift += other.Rect.Max.X - moved.Min.X
		case !horizontal && dir > 0:
			shift += other.Rect.Min.Y - moved.Max.Y
		case !horizontal && dir < 0:
			shift += other.Rect.Max.Y - moved.Min.Y
		}
	}
	return shift
}

func axisPoint(v int, horizontal bool) image.Point {
	if horizontal {
		return image.Pt(v, 0)
	}
	return image.Pt(0, v)
}

func (s *PlayerSystem) updateTarget(p *components.PlayerComponent) {
	p.Target = utils.Center(s.Rect()).Add(s.config.ToolOffset(p.State.Facing))
}

func (s *PlayerSystem) updateActivity(p *components.PlayerComponent) {
	switch {
	case p.ToolTimer.Active():
		p.State.Activity = types.ToolActivity(p.SelectedTool())
	case p.DirX == 0 && p.DirY == 0:
		p.State.Activity = types.ActivityIdle
	default:
		p.State.Activity = types.ActivityWalk
	}
}

func (s *PlayerSystem) animate(p *components.PlayerComponent, dt float64) {
	frames := p.Animations[p.State.AnimationName()]
	p.Frame += s.config.Player.AnimationSpeed * dt
	if len(frames) == 0 || int(p.Frame) >= len(frames) {
		p.Frame = 0
	}

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, s.player); ok {
		if img := p.CurrentFrame(); img != nil {
			sprite.Image = img
		}
	}
}

// useTool 工具定时器到期时结算工具效果
func (s *PlayerSystem) useTool() {
	p := s.Component()
	if p == nil {
		return
	}

	switch p.SelectedTool() {
	case types.ToolAxe:
		for _, tree := range s.trees.TreesAt(p.Target) {
			s.trees.TryHit(tree)
		}
	case types.ToolHoe:
		s.soil.HandleHit(p.Target)
	case types.ToolWater:
		s.soil.Water(p.Target)
		s.sound.PlaySound(SoundWater)
	}
}

// useSeed 种子定时器到期时尝试播种，成功才消耗种子
func (s *PlayerSystem) useSeed() {
	p := s.Component()
	if p == nil {
		return
	}

	crop := p.SelectedSeed()
	if p.Seeds[crop] < 1 {
		return
	}
	if s.soil.Plant(crop, p.Target) {
		p.Seeds[crop]--
	}
}
