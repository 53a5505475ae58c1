package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 创建一个全新的场景
type SceneFactory func() (Scene, error)

// SceneManager keeps track of the active scene and forwards the game loop to it.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager returns a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置 Reload 使用的工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo makes scene the active one, closing the previous scene if it
// implements Closer.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if sm.currentScene != nil && sm.currentScene != scene {
		closeScene(sm.currentScene)
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前场景，可能为 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 用工厂函数重建当前场景。失败时保留原场景。
func (sm *SceneManager) Reload() error {
	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}
	scene, err := sm.sceneFactory()
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}
	sm.SwitchTo(scene)
	log.Printf("[SceneManager] Scene reloaded")
	return nil
}

// Update forwards to the active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw forwards to the active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Close 关闭当前场景，程序退出前调用
func (sm *SceneManager) Close() {
	if sm.currentScene != nil {
		closeScene(sm.currentScene)
		sm.currentScene = nil
	}
}

func closeScene(scene Scene) {
	if c, ok := scene.(Closer); ok {
		c.Close()
	}
}
