package utils

import (
	"image"
	"testing"
)

func TestCenterAndRectFromCenter(t *testing.T) {
	r := RectFromCenter(image.Pt(100, 50), 20, 10)
	if r != image.Rect(90, 45, 110, 55) {
		t.Errorf("RectFromCenter = %v", r)
	}
	if c := Center(r); c != image.Pt(100, 50) {
		t.Errorf("Center = %v, want (100,50)", c)
	}
	if mb := MidBottom(r); mb != image.Pt(100, 55) {
		t.Errorf("MidBottom = %v, want (100,55)", mb)
	}
}

func TestWithCenter(t *testing.T) {
	r := image.Rect(0, 0, 10, 20)
	if got := WithCenterX(r, 50); got != image.Rect(45, 0, 55, 20) {
		t.Errorf("WithCenterX = %v", got)
	}
	if got := WithCenterY(r, 50); got != image.Rect(0, 40, 10, 60) {
		t.Errorf("WithCenterY = %v", got)
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.4, 0}, {0.5, 1}, {1.5, 2}, {2.5, 3}, {-0.5, -1}, {-1.4, -1},
	}
	for _, tt := range tests {
		if got := RoundHalfAwayFromZero(tt.in); got != tt.want {
			t.Errorf("RoundHalfAwayFromZero(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

// TestPlaceholderImage 占位图尺寸与请求一致，非法尺寸退化为 1x1
func TestPlaceholderImage(t *testing.T) {
	tests := []struct {
		size image.Point
		want image.Point
	}{
		{image.Pt(64, 64), image.Pt(64, 64)},
		{image.Pt(192, 192), image.Pt(192, 192)},
		{image.Pt(0, 10), image.Pt(1, 1)},
	}
	for _, tt := range tests {
		img := PlaceholderImage("k", tt.size)
		if got := img.Bounds().Size(); got != tt.want {
			t.Errorf("PlaceholderImage(%v) size = %v, want %v", tt.size, got, tt.want)
		}
	}
}

// TestCropImage 裁剪区域被限制在原图范围内
func TestCropImage(t *testing.T) {
	sheet := PlaceholderImage("sheet", image.Pt(128, 128))

	tile := CropImage(sheet, image.Rect(64, 0, 128, 64))
	if got := tile.Bounds(); got != image.Rect(64, 0, 128, 64) {
		t.Errorf("tile bounds = %v", got)
	}
	edge := CropImage(sheet, image.Rect(100, 100, 200, 200))
	if got := edge.Bounds(); got != image.Rect(100, 100, 128, 128) {
		t.Errorf("clamped bounds = %v", got)
	}
	if CropImage(nil, image.Rect(0, 0, 1, 1)) != nil {
		t.Error("nil source should give nil")
	}
}
