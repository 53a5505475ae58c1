package entities

import (
	"image"
	"log"
	"path"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceLoader 工厂需要的资源加载能力
// 由 game.ResourceManager 实现，测试中用内存实现替代
type ResourceLoader interface {
	// LoadImage 加载单张图片
	LoadImage(path string) (*ebiten.Image, error)
	// LoadFolder 加载目录下所有图片，按文件名排序
	LoadFolder(path string) ([]*ebiten.Image, error)
}

// 缺失素材时占位图的尺寸
var (
	tileSize        = image.Pt(64, 64)
	plantFrameSize  = image.Pt(48, 64)
	fruitSize       = image.Pt(16, 16)
	playerFrameSize = image.Pt(192, 192)
	iconSize        = image.Pt(48, 48)
	dropSize        = image.Pt(8, 16)
)

// placeholderFrameCount 缺失帧目录时生成的占位帧数
const placeholderFrameCount = 4

// Art 关卡用到的全部美术资源
// 启动时加载一次，缺失的文件以占位图代替，所以字段永远非空
type Art struct {
	Soil      map[types.SoilVariant]*ebiten.Image
	Moisture  []*ebiten.Image
	Plants    map[types.Crop][]*ebiten.Image
	Apple     *ebiten.Image
	Stumps    map[string]*ebiten.Image
	Water     []*ebiten.Image
	RainDrops []*ebiten.Image
	RainFloor []*ebiten.Image
	Player    map[string][]*ebiten.Image
	ToolIcons map[types.Tool]*ebiten.Image
	SeedIcons map[types.Crop]*ebiten.Image
}

// LoadArt 从资源加载器读取全部美术资源
// 参数 root 是 graphics 目录所在的根路径（如 "assets"）
func LoadArt(rl ResourceLoader, root string) *Art {
	g := func(p string) string { return path.Join(root, "graphics", p) }

	art := &Art{
		Soil:      make(map[types.SoilVariant]*ebiten.Image),
		Moisture:  loadFrames(rl, g("soil_water"), tileSize),
		Plants:    make(map[types.Crop][]*ebiten.Image),
		Apple:     loadImage(rl, g("fruit/apple.png"), fruitSize),
		Stumps:    make(map[string]*ebiten.Image),
		Water:     loadFrames(rl, g("water"), tileSize),
		RainDrops: loadFrames(rl, g("rain/drops"), dropSize),
		RainFloor: loadFrames(rl, g("rain/floor"), tileSize),
		Player:    make(map[string][]*ebiten.Image),
		ToolIcons: make(map[types.Tool]*ebiten.Image),
		SeedIcons: make(map[types.Crop]*ebiten.Image),
	}

	for _, v := range types.AllSoilVariants {
		art.Soil[v] = loadImage(rl, g("soil/"+v.ImageKey()+".png"), tileSize)
	}
	for _, crop := range types.AllCrops {
		art.Plants[crop] = loadFrames(rl, g("fruit/"+crop.String()), plantFrameSize)
		art.SeedIcons[crop] = loadImage(rl, g("overlay/"+crop.String()+".png"), iconSize)
	}
	for _, tool := range types.AllTools {
		art.ToolIcons[tool] = loadImage(rl, g("overlay/"+tool.String()+".png"), iconSize)
	}
	art.Stumps[components.TreeSmall] = loadImage(rl, g("stumps/small.png"), tileSize)
	art.Stumps[components.TreeLarge] = loadImage(rl, g("stumps/large.png"), image.Pt(96, 96))

	for _, dir := range types.AllDirections {
		for _, act := range types.AllActivities {
			name := types.PlayerState{Facing: dir, Activity: act}.AnimationName()
			art.Player[name] = loadFrames(rl, g("character/"+name), playerFrameSize)
		}
	}

	return art
}

func loadImage(rl ResourceLoader, p string, fallback image.Point) *ebiten.Image {
	img, err := rl.LoadImage(p)
	if err != nil || img == nil {
		log.Printf("[Art] missing image %s, using placeholder: %v", p, err)
		return utils.PlaceholderImage(p, fallback)
	}
	return img
}

func loadFrames(rl ResourceLoader, p string, fallback image.Point) []*ebiten.Image {
	frames, err := rl.LoadFolder(p)
	if err == nil && len(frames) > 0 {
		return frames
	}
	log.Printf("[Art] missing folder %s, using placeholders: %v", p, err)
	frames = make([]*ebiten.Image, placeholderFrameCount)
	for i := range frames {
		frames[i] = utils.PlaceholderImage(p, fallback)
	}
	return frames
}
