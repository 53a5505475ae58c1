package scenes

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/ecs"
	"github.com/decker502/valley/pkg/entities"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
	"github.com/decker502/valley/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// groundColor 没有地面底图时的填充色
var groundColor = color.RGBA{R: 96, G: 160, B: 72, A: 255}

// buildWorld 根据地图数据创建所有实体，返回玩家实体
func (l *LevelScene) buildWorld(src world.Source, loader entities.ResourceLoader) (ecs.EntityID, error) {
	em := l.entityManager
	ts := l.config.TileSize

	entities.NewSpriteEntity(em, image.Point{}, l.ground(src, loader), types.DepthGround)

	// 房屋
	for _, layer := range []string{world.LayerHouseFloor, world.LayerHouseFurnitureBottom} {
		l.tileSprites(src, layer, types.DepthHouseBottom)
	}
	for _, layer := range []string{world.LayerHouseWalls, world.LayerHouseFurnitureTop} {
		l.tileSprites(src, layer, types.DepthMain)
	}

	for _, cell := range src.TileLayer(world.LayerFence) {
		entities.NewObstacleEntity(em, utils.TileToPoint(cell.Y, cell.X, ts), l.cellImage(cell, world.LayerFence), types.DepthMain)
	}

	for _, cell := range src.TileLayer(world.LayerWater) {
		entities.NewWaterEntity(em, utils.TileToPoint(cell.Y, cell.X, ts), l.art.Water, waterAnimationSpeed)
	}

	for _, obj := range src.ObjectLayer(world.LayerTrees) {
		l.addTree(obj)
	}

	for _, obj := range src.ObjectLayer(world.LayerDecoration) {
		entities.NewFlowerEntity(em, objectPos(obj), objectImage(obj, world.LayerDecoration))
	}

	for _, cell := range src.TileLayer(world.LayerCollision) {
		entities.NewCollisionEntity(em, utils.TileRect(cell.Y, cell.X, ts))
	}

	for _, cell := range src.TileLayer(world.LayerFarmable) {
		l.soilSystem.MarkFarmable(cell.Y, cell.X)
	}

	var (
		start    image.Point
		hasStart bool
	)
	for _, obj := range src.ObjectLayer(world.LayerPlayer) {
		rect := objectRect(obj)
		switch obj.Name {
		case world.ObjectStart:
			start, hasStart = utils.Center(rect), true
		case world.ObjectBed:
			entities.NewInteractionEntity(em, components.InteractionBed, rect)
		case world.ObjectTrader:
			entities.NewInteractionEntity(em, components.InteractionTrader, rect)
		}
	}
	if !hasStart {
		return 0, fmt.Errorf("level: map has no %q object in layer %q", world.ObjectStart, world.LayerPlayer)
	}

	return entities.NewPlayerEntity(em, l.clock, l.config, start, l.art.Player), nil
}

// ground 地面底图：地图自带 > 资源目录 graphics/world/ground.png > 纯色
func (l *LevelScene) ground(src world.Source, loader entities.ResourceLoader) *ebiten.Image {
	if gs, ok := src.(world.GroundSource); ok {
		if img := gs.Ground(); img != nil {
			return img
		}
	}
	p := path.Join(l.config.AssetRoot, "graphics", "world", "ground.png")
	if img, err := loader.LoadImage(p); err == nil && img != nil {
		return img
	}
	log.Printf("[Level] no ground image at %s, using a flat fill", p)
	return utils.FilledImage(l.mapSize.X, l.mapSize.Y, groundColor)
}

func (l *LevelScene) tileSprites(src world.Source, layer string, depth types.Depth) {
	for _, cell := range src.TileLayer(layer) {
		entities.NewSpriteEntity(l.entityManager, utils.TileToPoint(cell.Y, cell.X, l.config.TileSize),
			l.cellImage(cell, layer), depth)
	}
}

func (l *LevelScene) cellImage(cell world.TileCell, layer string) *ebiten.Image {
	if cell.Image != nil {
		return cell.Image
	}
	return utils.PlaceholderImage(layer, image.Pt(l.config.TileSize, l.config.TileSize))
}

// addTree 创建一棵树并让它结果
func (l *LevelScene) addTree(obj world.Object) {
	size := obj.Name
	if size != components.TreeLarge {
		size = components.TreeSmall
	}
	id := entities.NewTreeEntity(l.entityManager, l.clock, l.config, objectPos(obj),
		objectImage(obj, world.LayerTrees+"/"+size), size, l.art.Stumps[size])
	l.treeSystem.CreateApples(id)
}

func objectPos(obj world.Object) image.Point {
	return image.Pt(utils.RoundHalfAwayFromZero(obj.X), utils.RoundHalfAwayFromZero(obj.Y))
}

func objectRect(obj world.Object) image.Rectangle {
	min := objectPos(obj)
	size := image.Pt(utils.RoundHalfAwayFromZero(obj.W), utils.RoundHalfAwayFromZero(obj.H))
	return image.Rectangle{Min: min, Max: min.Add(size)}
}

// objectImage 对象自带的图像，缺失时按对象尺寸生成占位图
func objectImage(obj world.Object, key string) *ebiten.Image {
	if obj.Image != nil {
		return obj.Image
	}
	size := objectRect(obj).Size()
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(32, 32)
	}
	return utils.PlaceholderImage(key, size)
}
