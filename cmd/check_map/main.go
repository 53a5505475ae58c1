// check_map 检查农场地图是否满足关卡的要求
//
// 用法:
//
//	go run ./cmd/check_map --map data/map.tmx
//	go run ./cmd/check_map            # 检查内置地图
//
// 存在问题时以状态码 1 退出。
package main

import (
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"sort"

	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/game"
	"github.com/decker502/valley/pkg/world"
)

var (
	mapPath    = flag.String("map", "", "TMX 地图路径，留空检查内置地图")
	configPath = flag.String("config", "", "游戏配置文件，留空使用默认配置")
	verbose    = flag.Bool("verbose", false, "显示加载日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	}

	var src world.Source = world.BuiltinMap(cfg.TileSize)
	name := "built-in map"
	if *mapPath != "" {
		m, err := world.LoadTMX(*mapPath, game.NewResourceManager(nil))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		src, name = m, *mapPath
	}

	w, h := src.Size()
	fmt.Printf("%s: %dx%d px (%dx%d tiles)\n", name, w, h, w/cfg.TileSize, h/cfg.TileSize)
	for _, line := range layerSummary(src) {
		fmt.Println("  " + line)
	}

	problems := checkMap(src, cfg.TileSize)
	if len(problems) == 0 {
		fmt.Println("OK")
		return
	}
	for _, p := range problems {
		fmt.Println("PROBLEM: " + p)
	}
	os.Exit(1)
}

var tileLayers = []string{
	world.LayerFarmable, world.LayerCollision, world.LayerWater, world.LayerFence,
	world.LayerHouseFloor, world.LayerHouseFurnitureBottom, world.LayerHouseWalls, world.LayerHouseFurnitureTop,
}

var objectLayers = []string{world.LayerTrees, world.LayerDecoration, world.LayerPlayer}

// layerSummary 每个图层的格子/对象数
func layerSummary(src world.Source) []string {
	var lines []string
	for _, layer := range tileLayers {
		lines = append(lines, fmt.Sprintf("%-22s %4d tiles", layer, len(src.TileLayer(layer))))
	}
	for _, layer := range objectLayers {
		lines = append(lines, fmt.Sprintf("%-22s %4d objects", layer, len(src.ObjectLayer(layer))))
	}
	return lines
}

// checkMap 返回地图中会导致关卡无法游玩或行为异常的问题
func checkMap(src world.Source, tileSize int) []string {
	w, h := src.Size()
	if w <= 0 || h <= 0 {
		return []string{fmt.Sprintf("map size %dx%d is empty", w, h)}
	}
	bounds := image.Rect(0, 0, w/tileSize, h/tileSize)

	var problems []string
	counts := make(map[string]int)
	for _, obj := range src.ObjectLayer(world.LayerPlayer) {
		counts[obj.Name]++
	}
	if counts[world.ObjectStart] != 1 {
		problems = append(problems, fmt.Sprintf("%d %q objects in layer %q, want exactly 1",
			counts[world.ObjectStart], world.ObjectStart, world.LayerPlayer))
	}
	for _, name := range []string{world.ObjectBed, world.ObjectTrader} {
		if counts[name] == 0 {
			problems = append(problems, fmt.Sprintf("no %q object in layer %q", name, world.LayerPlayer))
		}
	}

	blocked := make(map[image.Point]string)
	for _, layer := range []string{world.LayerCollision, world.LayerWater, world.LayerFence} {
		for _, c := range src.TileLayer(layer) {
			blocked[image.Pt(c.X, c.Y)] = layer
		}
	}

	var overlaps []string
	for _, c := range src.TileLayer(world.LayerFarmable) {
		p := image.Pt(c.X, c.Y)
		if !p.In(bounds) {
			problems = append(problems, fmt.Sprintf("farmable tile (%d,%d) is outside the map", c.X, c.Y))
			continue
		}
		if layer, ok := blocked[p]; ok {
			overlaps = append(overlaps, fmt.Sprintf("farmable tile (%d,%d) is covered by %s", c.X, c.Y, layer))
		}
	}
	sort.Strings(overlaps)
	problems = append(problems, overlaps...)

	for _, obj := range src.ObjectLayer(world.LayerTrees) {
		if obj.Name != "Small" && obj.Name != "Large" {
			problems = append(problems, fmt.Sprintf("tree at (%.0f,%.0f) named %q, want Small or Large", obj.X, obj.Y, obj.Name))
		}
	}
	return problems
}
