package utils

import (
	"hash/fnv"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// FilledImage 创建纯色图像
func FilledImage(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}

// PlaceholderImage 为缺失的美术资源生成占位图
//
// 颜色由 key 的哈希决定，同一路径每次得到同样的颜色，便于肉眼区分。
// 尺寸大于一个格子的图像（角色、树）只填充下方居中的一块，
// 保留透明边缘，使碰撞盒收缩后的视觉效果接近真实素材。
func PlaceholderImage(key string, size image.Point) *ebiten.Image {
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(1, 1)
	}
	img := ebiten.NewImage(size.X, size.Y)

	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	sum := h.Sum32()
	c := color.RGBA{
		R: uint8(64 + sum%160),
		G: uint8(64 + (sum>>8)%160),
		B: uint8(64 + (sum>>16)%160),
		A: 0xff,
	}

	const tile = 64
	if size.X <= tile && size.Y <= tile {
		img.Fill(c)
		return img
	}

	body := image.Rect(0, 0, min(size.X, tile), min(size.Y, tile*2))
	body = body.Add(image.Pt((size.X-body.Dx())/2, size.Y-body.Dy()))
	img.SubImage(body).(*ebiten.Image).Fill(c)
	return img
}

// CompositeImages 把 overlay 叠加到 base 上，返回新图像
// 任意一方为 nil 时直接返回另一方
func CompositeImages(baseImage, overlayImage *ebiten.Image) *ebiten.Image {
	if baseImage == nil {
		return overlayImage
	}
	if overlayImage == nil {
		return baseImage
	}

	bounds := baseImage.Bounds()
	composited := ebiten.NewImage(bounds.Dx(), bounds.Dy())
	composited.DrawImage(baseImage, &ebiten.DrawImageOptions{})
	composited.DrawImage(overlayImage, &ebiten.DrawImageOptions{})
	return composited
}

// CropImage creates a sub-image from the source image.
// This is a convenience wrapper around SubImage, used to cut single tiles out of a tileset.
//
// Parameters:
//   - src: The source image to crop
//   - rect: The rectangle region to extract (clamped to the source bounds)
func CropImage(src *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	if src == nil {
		return nil
	}
	rect = rect.Intersect(src.Bounds())
	return src.SubImage(rect).(*ebiten.Image)
}
