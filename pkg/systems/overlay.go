package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// multiplyBlend 正片叠底：结果 = 源颜色 × 目标颜色，目标 alpha 不变
var multiplyBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// multiplyOverlay 以正片叠底方式覆盖整个屏幕的纯色层
type multiplyOverlay struct {
	white *ebiten.Image
}

func (o *multiplyOverlay) draw(screen *ebiten.Image, c color.Color) {
	size := screen.Bounds().Size()
	if o.white == nil || o.white.Bounds().Size() != size {
		o.white = ebiten.NewImage(size.X, size.Y)
		o.white.Fill(color.White)
	}
	op := &ebiten.DrawImageOptions{Blend: multiplyBlend}
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.white, op)
}

func clampChannel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}
