package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. Only the active scene is updated and drawn.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64)

	// Draw renders the scene onto screen.
	Draw(screen *ebiten.Image)
}

// Closer 可选接口：场景被替换或程序退出时调用，用于停止音乐、保存设置等
type Closer interface {
	Close()
}
