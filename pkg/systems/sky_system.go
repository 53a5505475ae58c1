package systems

import (
	"image/color"

	"github.com/decker502/valley/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// nightColor 天色最终停留的颜色
var nightColor = [3]float64{40, 100, 190}

// SkySystem 白天逐渐变暗的天色，以正片叠底覆盖整个画面
type SkySystem struct {
	config  *config.GameConfig
	color   [3]float64
	overlay multiplyOverlay
}

// NewSkySystem 创建天色系统，初始为白色（不改变画面）
func NewSkySystem(cfg *config.GameConfig) *SkySystem {
	s := &SkySystem{config: cfg}
	s.Reset()
	return s
}

// Reset 新的一天，恢复白色
func (s *SkySystem) Reset() {
	s.color = [3]float64{255, 255, 255}
}

// Update 每个通道以固定速度向夜色靠近
func (s *SkySystem) Update(deltaTime float64) {
	step := s.config.Weather.SkyFadeSpeed * deltaTime
	for i := range s.color {
		if s.color[i] > nightColor[i] {
			s.color[i] = max(s.color[i]-step, nightColor[i])
		}
	}
}

// Color 当前天色
func (s *SkySystem) Color() color.RGBA {
	return color.RGBA{R: clampChannel(s.color[0]), G: clampChannel(s.color[1]), B: clampChannel(s.color[2]), A: 255}
}

// Draw 覆盖天色
func (s *SkySystem) Draw(screen *ebiten.Image) {
	s.overlay.draw(screen, s.Color())
}
