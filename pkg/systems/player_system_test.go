package systems

import (
	"image"
	"math"
	"testing"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/input"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
)

// shopSpy 记录 OpenShop 调用次数
type shopSpy struct{ opened int }

func (s *shopSpy) OpenShop() { s.opened++ }

type playerFixture struct {
	*farm
	in     *input.Scripted
	inv    inventory
	sound  *soundLog
	shop   *shopSpy
	trees  *TreeSystem
	system *PlayerSystem
}

// 玩家图像中心；占位帧 192x192，碰撞盒 66x122
var playerCenter = image.Pt(400, 400)

func newPlayerFixture(t *testing.T) *playerFixture {
	t.Helper()
	f := newFarm(t, 10, 10)
	pf := &playerFixture{
		farm:  f,
		in:    input.NewScripted(),
		inv:   inventory{},
		sound: &soundLog{},
		shop:  &shopSpy{},
	}
	pf.trees = NewTreeSystem(f.em, f.cfg, f.art, f.clock, f.rng, pf.inv, pf.sound)
	player := entities.NewPlayerEntity(f.em, f.clock, f.cfg, playerCenter, f.art.Player)
	pf.system = NewPlayerSystem(f.em, f.cfg, pf.in, f.soil, pf.trees, pf.sound, pf.shop, player)
	return pf
}

// step 推进时钟并更新玩家一帧
func (pf *playerFixture) step(dt float64) {
	pf.advance(dt)
	pf.system.Update(dt)
}

// tap 按下动作维持一帧后松开
func (pf *playerFixture) tap(actions ...input.Action) {
	pf.in.Press(actions...)
	pf.step(frame)
	pf.in.ReleaseAll()
}

func (pf *playerFixture) pos() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](pf.em, pf.system.Player())
	return pos
}

// TestPlayerSystem_NewPlayer 初始背包、生命与碰撞盒
func TestPlayerSystem_NewPlayer(t *testing.T) {
	pf := newPlayerFixture(t)
	p := pf.system.Component()

	if p.Money != pf.cfg.Player.StartMoney || p.Health != pf.cfg.Player.MaxHealth {
		t.Errorf("money/health = %d/%d, want %d/%d", p.Money, p.Health, pf.cfg.Player.StartMoney, pf.cfg.Player.MaxHealth)
	}
	if p.Seeds[types.CropCorn] != 5 || p.Seeds[types.CropTomato] != 4 {
		t.Errorf("seeds = %v, want corn 5 tomato 4", p.Seeds)
	}
	for _, r := range types.AllResources {
		if n, ok := p.Items[r]; !ok || n != 0 {
			t.Errorf("item %s = %d (present %v), want 0", r, n, ok)
		}
	}

	if got := utils.Center(pf.system.Rect()); got != playerCenter {
		t.Errorf("image center = %v, want %v", got, playerCenter)
	}
	hb := pf.system.Hitbox()
	if hb.Dx() != 192-126 || hb.Dy() != 192-70 {
		t.Errorf("hitbox size = %dx%d, want 66x122", hb.Dx(), hb.Dy())
	}
	if utils.Center(hb) != playerCenter {
		t.Errorf("hitbox center = %v, want %v", utils.Center(hb), playerCenter)
	}
}

// TestPlayerSystem_Move 按速度移动，斜向移动归一化，斜向时朝向取上下
func TestPlayerSystem_Move(t *testing.T) {
	tests := []struct {
		name    string
		actions []input.Action
		dt      float64
		wantDX  float64
		wantDY  float64
		facing  types.Direction
	}{
		{"right", []input.Action{input.ActionRight}, 0.5, 100, 0, types.DirectionRight},
		{"up", []input.Action{input.ActionUp}, 0.25, 0, -50, types.DirectionUp},
		{"diagonal", []input.Action{input.ActionLeft, input.ActionDown}, 1, -200 / math.Sqrt2, 200 / math.Sqrt2, types.DirectionDown},
		{"diagonal up right", []input.Action{input.ActionRight, input.ActionUp}, 1, 200 / math.Sqrt2, -200 / math.Sqrt2, types.DirectionUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := newPlayerFixture(t)
			x0, y0 := pf.pos().X, pf.pos().Y

			pf.in.Press(tt.actions...)
			pf.step(tt.dt)

			if dx := pf.pos().X - x0; math.Abs(dx-tt.wantDX) > 1e-6 {
				t.Errorf("dx = %v, want %v", dx, tt.wantDX)
			}
			if dy := pf.pos().Y - y0; math.Abs(dy-tt.wantDY) > 1e-6 {
				t.Errorf("dy = %v, want %v", dy, tt.wantDY)
			}
			p := pf.system.Component()
			if p.State.Facing != tt.facing {
				t.Errorf("facing = %v, want %v", p.State.Facing, tt.facing)
			}
			if p.State.Activity != types.ActivityWalk {
				t.Errorf("activity = %v, want walk", p.State.Activity)
			}
		})
	}
}

// TestPlayerSystem_OpposingKeysCancel 同一轴上相反方向同时按下时该轴不移动
func TestPlayerSystem_OpposingKeysCancel(t *testing.T) {
	tests := []struct {
		name    string
		actions []input.Action
		wantDX  float64
		wantDY  float64
		facing  types.Direction
	}{
		{"left and right", []input.Action{input.ActionLeft, input.ActionRight}, 0, 0, types.DirectionDown},
		{"up and down", []input.Action{input.ActionUp, input.ActionDown}, 0, 0, types.DirectionDown},
		{"all four", []input.Action{input.ActionLeft, input.ActionRight, input.ActionUp, input.ActionDown}, 0, 0, types.DirectionDown},
		{"left and right with up", []input.Action{input.ActionLeft, input.ActionRight, input.ActionUp}, 0, -100, types.DirectionUp},
		{"up and down with left", []input.Action{input.ActionUp, input.ActionDown, input.ActionLeft}, -100, 0, types.DirectionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := newPlayerFixture(t)
			x0, y0 := pf.pos().X, pf.pos().Y

			pf.in.Press(tt.actions...)
			pf.step(0.5)

			if dx := pf.pos().X - x0; math.Abs(dx-tt.wantDX) > 1e-6 {
				t.Errorf("dx = %v, want %v", dx, tt.wantDX)
			}
			if dy := pf.pos().Y - y0; math.Abs(dy-tt.wantDY) > 1e-6 {
				t.Errorf("dy = %v, want %v", dy, tt.wantDY)
			}
			if got := pf.system.Component().State.Facing; got != tt.facing {
				t.Errorf("facing = %v, want %v", got, tt.facing)
			}
		})
	}
}

// TestPlayerSystem_Collision 碰撞盒被推到障碍物外侧
func TestPlayerSystem_Collision(t *testing.T) {
	pf := newPlayerFixture(t)
	// 碰撞盒右边缘在 x=433，障碍物从 x=440 开始
	entities.NewCollisionEntity(pf.em, image.Rect(440, 300, 504, 500))

	pf.in.Press(input.ActionRight)
	pf.step(0.5)

	if got := pf.system.Hitbox().Max.X; got != 440 {
		t.Errorf("hitbox right edge = %d, want 440 (flush with the wall)", got)
	}

	// 沿墙上下移动不受影响
	pf.in.ReleaseAll()
	pf.in.Press(input.ActionDown)
	y0 := pf.pos().Y
	pf.step(0.1)
	if dy := pf.pos().Y - y0; math.Abs(dy-20) > 1e-6 {
		t.Errorf("sliding along the wall dy = %v, want 20", dy)
	}
}

// TestPlayerSystem_SwitchTool 切换工具有冷却并循环
func TestPlayerSystem_SwitchTool(t *testing.T) {
	pf := newPlayerFixture(t)
	p := pf.system.Component()

	pf.in.Press(input.ActionNextTool)
	pf.step(frame)
	pf.step(frame) // 冷却中按住不再切换
	if p.ToolIndex != 1 {
		t.Fatalf("tool index = %d, want 1", p.ToolIndex)
	}
	pf.in.ReleaseAll()

	pf.advance(0.5)
	pf.tap(input.ActionPrevTool)
	pf.advance(0.5)
	pf.tap(input.ActionPrevTool)
	if p.SelectedTool() != types.ToolWater {
		t.Errorf("tool = %v, want water after wrapping backwards", p.SelectedTool())
	}

	pf.tap(input.ActionNextSeed)
	pf.advance(0.5)
	pf.tap(input.ActionNextSeed)
	if p.SelectedSeed() != types.CropCorn {
		t.Errorf("seed = %v, want corn after wrapping", p.SelectedSeed())
	}
}

// TestPlayerSystem_UseSeed 种子定时器到期时播种，成功才扣种子
func TestPlayerSystem_UseSeed(t *testing.T) {
	pf := newPlayerFixture(t)
	p := pf.system.Component()
	// 朝下时作用点 = 中心 + (0,50) = (400,450)，落在 (7,6)
	pf.soil.HandleHit(pf.at(7, 6))

	pf.tap(input.ActionUseSeed)
	if p.Seeds[types.CropCorn] != 5 {
		t.Fatal("seed should not be used before the timer expires")
	}
	pf.step(0.6)
	if !pf.soil.Grid().Tile(7, 6).Planted {
		t.Fatal("target tile should be planted")
	}
	if p.Seeds[types.CropCorn] != 4 {
		t.Errorf("corn seeds = %d, want 4", p.Seeds[types.CropCorn])
	}

	// 已有作物，播种失败不扣种子
	pf.tap(input.ActionUseSeed)
	pf.step(0.6)
	if p.Seeds[types.CropCorn] != 4 {
		t.Errorf("corn seeds after failed planting = %d, want 4", p.Seeds[types.CropCorn])
	}
}

// TestPlayerSystem_UseTool 工具在定时器到期时生效，期间播放工具动画且不能移动
func TestPlayerSystem_UseTool(t *testing.T) {
	t.Run("water", func(t *testing.T) {
		pf := newPlayerFixture(t)
		pf.soil.HandleHit(pf.at(7, 6))
		pf.system.Component().ToolIndex = 2

		pf.tap(input.ActionUseTool)
		p := pf.system.Component()
		if p.State.Activity != types.ActivityWater {
			t.Errorf("activity = %v, want water", p.State.Activity)
		}

		x0 := pf.pos().X
		pf.in.Press(input.ActionRight)
		pf.step(0.1)
		pf.in.ReleaseAll()
		if pf.pos().X != x0 {
			t.Error("player should not move while using a tool")
		}
		pf.step(0.5)

		if !pf.soil.Grid().Tile(7, 6).Watered {
			t.Error("target tile should be watered")
		}
		if len(*pf.sound) == 0 || (*pf.sound)[0] != SoundWater {
			t.Errorf("sounds = %v, want water", *pf.sound)
		}
	})

	t.Run("axe", func(t *testing.T) {
		pf := newPlayerFixture(t)
		// 树图像覆盖作用点 (400,450)
		img := utils.PlaceholderImage("tree", image.Pt(64, 96))
		tree := entities.NewTreeEntity(pf.em, pf.clock, pf.cfg, image.Pt(368, 400), img, components.TreeSmall, nil)

		pf.tap(input.ActionUseTool)
		pf.step(0.6)

		tc, _ := ecs.GetComponent[*components.TreeComponent](pf.em, tree)
		if tc.Health != pf.cfg.Tree.Health-1 {
			t.Errorf("tree health = %d, want %d", tc.Health, pf.cfg.Tree.Health-1)
		}
	})
}

// TestPlayerSystem_Eat 按优先级进食
func TestPlayerSystem_Eat(t *testing.T) {
	tests := []struct {
		name       string
		health     int
		apples     int
		tomatoes   int
		wantAte    bool
		wantApples int
		wantTomato int
	}{
		{"full health", 3, 5, 5, false, 5, 5},
		{"apples first", 1, 3, 1, true, 1, 1},
		{"not enough apples", 1, 1, 1, true, 1, 0},
		{"nothing to eat", 1, 1, 0, false, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := newPlayerFixture(t)
			p := pf.system.Component()
			p.Health = tt.health
			p.Items[types.ResourceApple] = tt.apples
			p.Items[types.ResourceTomato] = tt.tomatoes

			if got := pf.system.Eat(); got != tt.wantAte {
				t.Errorf("Eat() = %v, want %v", got, tt.wantAte)
			}
			if p.Items[types.ResourceApple] != tt.wantApples || p.Items[types.ResourceTomato] != tt.wantTomato {
				t.Errorf("apples/tomatoes = %d/%d, want %d/%d",
					p.Items[types.ResourceApple], p.Items[types.ResourceTomato], tt.wantApples, tt.wantTomato)
			}
			wantHealth := tt.health
			if tt.wantAte {
				wantHealth++
			}
			if p.Health != wantHealth {
				t.Errorf("health = %d, want %d", p.Health, wantHealth)
			}
		})
	}
}

// TestPlayerSystem_Starve 过夜扣血，不低于 0
func TestPlayerSystem_Starve(t *testing.T) {
	pf := newPlayerFixture(t)
	p := pf.system.Component()

	for i := 0; i < 5; i++ {
		pf.system.Starve()
	}
	if p.Health != 0 {
		t.Errorf("health = %d, want 0", p.Health)
	}
}

// TestPlayerSystem_Interact 商人处开商店，床上睡觉，其他地方吃东西
func TestPlayerSystem_Interact(t *testing.T) {
	t.Run("trader", func(t *testing.T) {
		pf := newPlayerFixture(t)
		entities.NewInteractionEntity(pf.em, components.InteractionTrader, image.Rect(380, 380, 420, 420))

		pf.tap(input.ActionInteract)
		pf.tap(input.ActionInteract) // 防抖

		if pf.shop.opened != 1 {
			t.Errorf("shop opened %d times, want 1", pf.shop.opened)
		}
	})

	t.Run("bed", func(t *testing.T) {
		pf := newPlayerFixture(t)
		entities.NewInteractionEntity(pf.em, components.InteractionBed, image.Rect(380, 380, 420, 420))

		pf.tap(input.ActionInteract)
		p := pf.system.Component()
		if !p.Sleeping {
			t.Fatal("player should be asleep")
		}
		if p.State.Facing != types.DirectionLeft {
			t.Errorf("sleeping facing = %v, want left", p.State.Facing)
		}

		x0 := pf.pos().X
		pf.in.Press(input.ActionRight)
		pf.step(0.5)
		pf.in.ReleaseAll()
		if pf.pos().X != x0 {
			t.Error("sleeping player should ignore movement")
		}

		pf.system.Wake()
		if p.Sleeping {
			t.Error("Wake should end sleep")
		}
	})

	t.Run("eat elsewhere", func(t *testing.T) {
		pf := newPlayerFixture(t)
		p := pf.system.Component()
		p.Health = 1
		p.Items[types.ResourceTomato] = 1

		pf.tap(input.ActionInteract)

		if p.Health != 2 || p.Items[types.ResourceTomato] != 0 {
			t.Errorf("health/tomatoes = %d/%d, want 2/0", p.Health, p.Items[types.ResourceTomato])
		}
	})
}

// TestPlayerSystem_Credit 资源入账
func TestPlayerSystem_Credit(t *testing.T) {
	pf := newPlayerFixture(t)
	pf.system.Credit(types.ResourceWood)
	pf.system.Credit(types.ResourceWood)

	if got := pf.system.Component().Items[types.ResourceWood]; got != 2 {
		t.Errorf("wood = %d, want 2", got)
	}
}
