package systems

import (
	"image"
	"testing"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
)

type treeFixture struct {
	*farm
	inv   inventory
	sound *soundLog
	trees *TreeSystem
}

// newTreeFixture 创建树木系统；fruitChance 等于骰子面数时每个果位都结果，为 0 时都不结果
func newTreeFixture(t *testing.T, fruitChance int) *treeFixture {
	t.Helper()
	f := newFarm(t, 4, 4)
	f.cfg.Tree.FruitChance = fruitChance
	tf := &treeFixture{farm: f, inv: inventory{}, sound: &soundLog{}}
	tf.trees = NewTreeSystem(f.em, f.cfg, f.art, f.clock, f.rng, tf.inv, tf.sound)
	return tf
}

func (tf *treeFixture) addTree(size string) ecs.EntityID {
	img := utils.PlaceholderImage("tree", image.Pt(64, 96))
	id := entities.NewTreeEntity(tf.em, tf.clock, tf.cfg, image.Pt(64, 64), img, size, tf.art.Stumps[size])
	tf.trees.CreateApples(id)
	return id
}

func (tf *treeFixture) tree(id ecs.EntityID) *components.TreeComponent {
	tree, _ := ecs.GetComponent[*components.TreeComponent](tf.em, id)
	return tree
}

// TestTreeSystem_CreateApples 每个果位独立掷骰
func TestTreeSystem_CreateApples(t *testing.T) {
	always := newTreeFixture(t, 12)
	id := always.addTree(components.TreeSmall)
	slots := always.cfg.FruitSlots(components.TreeSmall)
	tree := always.tree(id)
	if len(tree.Fruits) != len(slots) {
		t.Fatalf("fruits = %d, want %d", len(tree.Fruits), len(slots))
	}
	for i, fruit := range tree.Fruits {
		pos, _ := ecs.GetComponent[*components.PositionComponent](always.em, fruit)
		want := image.Pt(64, 64).Add(slots[i])
		if pos.Point() != want {
			t.Errorf("fruit %d at %v, want %v", i, pos.Point(), want)
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](always.em, fruit)
		if sprite.Depth != types.DepthFruit {
			t.Errorf("fruit %d depth = %v, want %v", i, sprite.Depth, types.DepthFruit)
		}
	}

	never := newTreeFixture(t, 0)
	if got := len(never.tree(never.addTree(components.TreeLarge)).Fruits); got != 0 {
		t.Errorf("fruits with zero chance = %d, want 0", got)
	}
}

// TestTreeSystem_HandleDamageDropsFruit 每次伤害打落一个苹果
func TestTreeSystem_HandleDamageDropsFruit(t *testing.T) {
	tf := newTreeFixture(t, 12)
	id := tf.addTree(components.TreeSmall)
	before := len(tf.tree(id).Fruits)

	tf.trees.HandleDamage(id)

	tree := tf.tree(id)
	if tree.Health != tf.cfg.Tree.Health-1 {
		t.Errorf("health = %d, want %d", tree.Health, tf.cfg.Tree.Health-1)
	}
	if len(tree.Fruits) != before-1 {
		t.Errorf("fruits = %d, want %d", len(tree.Fruits), before-1)
	}
	if tf.inv[types.ResourceApple] != 1 {
		t.Errorf("apples credited = %d, want 1", tf.inv[types.ResourceApple])
	}
	if got := len(ecs.GetEntitiesWith1[*components.ParticleComponent](tf.em)); got != 1 {
		t.Errorf("particles = %d, want 1 for the dropped apple", got)
	}
}

// TestTreeSystem_Fell 生命耗尽后变成树桩并记一块木材
func TestTreeSystem_Fell(t *testing.T) {
	tf := newTreeFixture(t, 0)
	id := tf.addTree(components.TreeSmall)

	for i := 0; i < tf.cfg.Tree.Health; i++ {
		tf.trees.HandleDamage(id)
	}

	tree := tf.tree(id)
	if tree.Alive {
		t.Fatal("tree should fall when health reaches zero")
	}
	if tf.inv[types.ResourceWood] != 1 {
		t.Errorf("wood credited = %d, want 1", tf.inv[types.ResourceWood])
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](tf.em, id)
	if sprite.Image != tf.art.Stumps[components.TreeSmall] {
		t.Error("fallen tree should show the stump image")
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](tf.em, id)
	if got := sprite.Rect(pos).Max.Y; got != 64+96 {
		t.Errorf("stump bottom = %d, want %d (same as the tree)", got, 64+96)
	}

	// 树桩继续扣减生命，但保持树桩状态，不再掉落也不会重新结果
	for i := 1; i <= 3; i++ {
		tf.trees.HandleDamage(id)
		if got, want := tree.Health, -i; got != want {
			t.Errorf("health after %d extra hits = %d, want %d", i, got, want)
		}
	}
	tf.trees.RegrowApples()
	if tree.Alive {
		t.Error("stump should stay dead")
	}
	if sprite.Image != tf.art.Stumps[components.TreeSmall] {
		t.Error("stump image should not change after extra hits")
	}
	if tf.inv[types.ResourceWood] != 1 {
		t.Errorf("wood credited = %d, want 1 (fallen tree gives no more wood)", tf.inv[types.ResourceWood])
	}
	if tf.inv[types.ResourceApple] != 0 {
		t.Errorf("apples credited = %d, want 0", tf.inv[types.ResourceApple])
	}
	if len(tf.tree(id).Fruits) != 0 {
		t.Error("fallen tree should not grow apples")
	}
}

// TestTreeSystem_FellDestroysApples 倒下时剩余苹果被移除且不计入背包
func TestTreeSystem_FellDestroysApples(t *testing.T) {
	tf := newTreeFixture(t, 12)
	tf.cfg.Tree.Health = 1
	id := tf.addTree(components.TreeLarge)
	fruits := append([]ecs.EntityID(nil), tf.tree(id).Fruits...)

	tf.trees.HandleDamage(id)
	tf.em.RemoveMarkedEntities()

	if tf.inv[types.ResourceApple] != 1 {
		t.Errorf("apples credited = %d, want 1 (only the one knocked down)", tf.inv[types.ResourceApple])
	}
	for _, fruit := range fruits {
		if tf.em.IsAlive(fruit) {
			t.Errorf("apple %d should be destroyed when the tree falls", fruit)
		}
	}
}

// TestTreeSystem_TryHitInvulnerability 击中后短时间内无敌
func TestTreeSystem_TryHitInvulnerability(t *testing.T) {
	tf := newTreeFixture(t, 0)
	id := tf.addTree(components.TreeSmall)

	if !tf.trees.TryHit(id) {
		t.Fatal("first hit should land")
	}
	if tf.trees.TryHit(id) {
		t.Error("second hit during invulnerability should be ignored")
	}

	tf.advance(0.25)
	tf.trees.Update()
	if !tf.trees.TryHit(id) {
		t.Error("hit after invulnerability should land")
	}

	if got := tf.tree(id).Health; got != tf.cfg.Tree.Health-2 {
		t.Errorf("health = %d, want %d", got, tf.cfg.Tree.Health-2)
	}
	if len(*tf.sound) != 2 || (*tf.sound)[0] != SoundAxe {
		t.Errorf("sounds = %v, want two axe sounds", *tf.sound)
	}
}

// TestTreeSystem_TreesAt 按图像矩形查找树
func TestTreeSystem_TreesAt(t *testing.T) {
	tf := newTreeFixture(t, 0)
	id := tf.addTree(components.TreeSmall)

	if got := tf.trees.TreesAt(image.Pt(80, 100)); len(got) != 1 || got[0] != id {
		t.Errorf("TreesAt inside = %v, want [%d]", got, id)
	}
	if got := tf.trees.TreesAt(image.Pt(10, 10)); len(got) != 0 {
		t.Errorf("TreesAt outside = %v, want none", got)
	}
}

// TestTreeSystem_RegrowApples 每日重置替换掉所有旧苹果
func TestTreeSystem_RegrowApples(t *testing.T) {
	tf := newTreeFixture(t, 12)
	id := tf.addTree(components.TreeSmall)
	old := append([]ecs.EntityID(nil), tf.tree(id).Fruits...)

	tf.trees.RegrowApples()
	tf.em.RemoveMarkedEntities()

	tree := tf.tree(id)
	if len(tree.Fruits) != len(old) {
		t.Errorf("fruits after regrow = %d, want %d", len(tree.Fruits), len(old))
	}
	for _, fruit := range old {
		if tf.em.IsAlive(fruit) {
			t.Errorf("old apple %d should be gone", fruit)
		}
	}
}
