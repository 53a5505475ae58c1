package systems

import (
	"image/color"
	"log"

	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// TransitionSystem 睡觉转场
//
// 玩家睡下后画面逐渐变黑；全黑时执行每日重置并停顿片刻，
// 随后画面恢复，完全恢复时叫醒玩家。
type TransitionSystem struct {
	config    *config.GameConfig
	level     float64
	direction float64
	hold      *utils.Timer
	overlay   multiplyOverlay

	onReset func()
	onWake  func()
}

// NewTransitionSystem 创建转场系统
// 参数:
//   - onReset: 画面全黑时调用（每日重置）
//   - onWake: 画面完全恢复时调用
func NewTransitionSystem(cfg *config.GameConfig, clock utils.Clock, onReset, onWake func()) *TransitionSystem {
	return &TransitionSystem{
		config:    cfg,
		level:     255,
		direction: -1,
		hold:      utils.NewTimer(clock, cfg.Timers.TransitionHold, nil),
		onReset:   onReset,
		onWake:    onWake,
	}
}

// Level 当前亮度（255 为正常，0 为全黑）
func (s *TransitionSystem) Level() float64 {
	return s.level
}

// Update 推进转场，只在玩家睡觉时调用
func (s *TransitionSystem) Update(deltaTime float64) {
	if s.hold.Active() {
		s.hold.Update()
		return
	}

	s.level += s.direction * s.config.Weather.TransitionSpeed * deltaTime

	if s.level <= 0 {
		s.level = 0
		s.direction = 1
		log.Printf("[TransitionSystem] night falls, resetting day")
		if s.onReset != nil {
			s.onReset()
		}
		s.hold.Start()
		return
	}

	if s.level >= 255 {
		s.level = 255
		s.direction = -1
		if s.onWake != nil {
			s.onWake()
		}
	}
}

// Draw 覆盖转场遮罩（亮度为 255 时不绘制）
func (s *TransitionSystem) Draw(screen *ebiten.Image) {
	if s.level >= 255 {
		return
	}
	v := clampChannel(s.level)
	s.overlay.draw(screen, color.RGBA{R: v, G: v, B: v, A: 255})
}
