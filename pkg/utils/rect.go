package utils

import (
	"image"
	"math"
)

// Inflate 以中心为基准扩大或缩小矩形，dw/dh 为总的宽高变化量（负值收缩）
// 收缩量超过尺寸时得到以原中心为中心的空矩形
func Inflate(r image.Rectangle, dw, dh int) image.Rectangle {
	w := r.Dx() + dw
	h := r.Dy() + dh
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return RectFromCenter(Center(r), w, h)
}

// Center 返回矩形中心点
func Center(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
}

// RectFromCenter 以中心点和尺寸构造矩形
func RectFromCenter(center image.Point, w, h int) image.Rectangle {
	min := image.Pt(center.X-w/2, center.Y-h/2)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}

// RectFromMidBottom 以底边中点和尺寸构造矩形（植物、树桩按底边对齐）
func RectFromMidBottom(midBottom image.Point, w, h int) image.Rectangle {
	min := image.Pt(midBottom.X-w/2, midBottom.Y-h)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}

// MidBottom 返回矩形底边中点
func MidBottom(r image.Rectangle) image.Point {
	return image.Pt(r.Min.X+r.Dx()/2, r.Max.Y)
}

// WithCenterX 水平移动矩形使其中心 x 为给定值
func WithCenterX(r image.Rectangle, x int) image.Rectangle {
	return r.Add(image.Pt(x-Center(r).X, 0))
}

// WithCenterY 垂直移动矩形使其中心 y 为给定值
func WithCenterY(r image.Rectangle, y int) image.Rectangle {
	return r.Add(image.Pt(0, y-Center(r).Y))
}

// RoundHalfAwayFromZero 四舍五入到整数像素
func RoundHalfAwayFromZero(v float64) int {
	return int(math.Round(v))
}

// Normalize 归一化二维向量，零向量原样返回
func Normalize(x, y float64) (float64, float64) {
	length := math.Hypot(x, y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}
