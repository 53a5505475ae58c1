package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 管理循环帧动画（水面）
type AnimationComponent struct {
	Frames []*ebiten.Image // 动画的所有帧图片
	Speed  float64         // 播放速度（帧/秒）
	Frame  float64         // 当前帧（带小数，取整后作为索引）
}
