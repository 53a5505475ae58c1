// Package input 把键盘状态映射为游戏动作
package input

import "github.com/hajimehoshi/ebiten/v2"

// Action 游戏动作
type Action int

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionUseTool
	ActionUseSeed
	ActionNextTool
	ActionPrevTool
	ActionNextSeed
	ActionInteract
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCancel
)

// Source 查询动作当前是否处于按下状态
// 系统每帧轮询，连发由各自的冷却定时器控制
type Source interface {
	Pressed(action Action) bool
}

// DefaultBindings 默认键位
var DefaultBindings = map[Action][]ebiten.Key{
	ActionUp:         {ebiten.KeyArrowUp, ebiten.KeyW},
	ActionDown:       {ebiten.KeyArrowDown, ebiten.KeyS},
	ActionLeft:       {ebiten.KeyArrowLeft, ebiten.KeyA},
	ActionRight:      {ebiten.KeyArrowRight, ebiten.KeyD},
	ActionUseTool:    {ebiten.KeySpace, ebiten.KeyK, ebiten.KeyX},
	ActionUseSeed:    {ebiten.KeyL, ebiten.KeyC, ebiten.KeyF},
	ActionNextTool:   {ebiten.KeyE},
	ActionPrevTool:   {ebiten.KeyQ},
	ActionNextSeed:   {ebiten.KeyControlLeft},
	ActionInteract:   {ebiten.KeyEnter},
	ActionMenuUp:     {ebiten.KeyArrowUp, ebiten.KeyW},
	ActionMenuDown:   {ebiten.KeyArrowDown, ebiten.KeyS},
	ActionMenuSelect: {ebiten.KeySpace},
	ActionCancel:     {ebiten.KeyEscape},
}

// Keyboard 基于 ebiten 键盘状态的 Source
type Keyboard struct {
	bindings map[Action][]ebiten.Key
}

// NewKeyboard 使用给定键位创建键盘输入源，nil 表示默认键位
func NewKeyboard(bindings map[Action][]ebiten.Key) *Keyboard {
	if bindings == nil {
		bindings = DefaultBindings
	}
	return &Keyboard{bindings: bindings}
}

// Pressed 任一绑定键按下即为 true
func (k *Keyboard) Pressed(action Action) bool {
	for _, key := range k.bindings[action] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

// Scripted 由测试或回放控制的输入源
type Scripted struct {
	pressed map[Action]bool
}

// NewScripted 创建所有动作都未按下的输入源
func NewScripted() *Scripted {
	return &Scripted{pressed: make(map[Action]bool)}
}

// Press 按下动作
func (s *Scripted) Press(actions ...Action) {
	for _, a := range actions {
		s.pressed[a] = true
	}
}

// Release 松开动作
func (s *Scripted) Release(actions ...Action) {
	for _, a := range actions {
		delete(s.pressed, a)
	}
}

// ReleaseAll 松开全部动作
func (s *Scripted) ReleaseAll() {
	clear(s.pressed)
}

// Pressed 实现 Source
func (s *Scripted) Pressed(action Action) bool {
	return s.pressed[action]
}
