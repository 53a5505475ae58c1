package config

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/decker502/valley/pkg/types"
	"gopkg.in/yaml.v3"
)

// GameConfig 游戏数值配置
//
// 启动时构造一次，以指针形式传给需要的系统（不存在全局单例）。
// 默认值由 DefaultGameConfig 给出，YAML 文件只需覆盖需要修改的键。
//
// 配置文件位置: data/config.yaml
type GameConfig struct {
	// TileSize 单个格子的边长（像素）
	TileSize int `yaml:"tileSize"`

	Player  PlayerConfig          `yaml:"player"`
	Timers  TimerConfig           `yaml:"timers"`
	Crops   map[string]CropConfig `yaml:"crops"`
	Tree    TreeConfig            `yaml:"tree"`
	Weather WeatherConfig         `yaml:"weather"`
	Shop    ShopConfig            `yaml:"shop"`

	// Edibles 可食用资源，按优先级从高到低
	Edibles []EdibleConfig `yaml:"edibles"`

	// AssetRoot 美术/音频资源根目录
	AssetRoot string `yaml:"assetRoot"`
}

// PlayerConfig 玩家参数
type PlayerConfig struct {
	Speed          float64           `yaml:"speed"`          // 移动速度（像素/秒）
	AnimationSpeed float64           `yaml:"animationSpeed"` // 动画速度（帧/秒）
	MaxHealth      int               `yaml:"maxHealth"`      // 生命上限
	StartMoney     int               `yaml:"startMoney"`     // 初始金钱
	StartSeeds     map[string]int    `yaml:"startSeeds"`     // 初始种子数
	HitboxShrinkX  int               `yaml:"hitboxShrinkX"`  // 碰撞盒相对图片的横向收缩量
	HitboxShrinkY  int               `yaml:"hitboxShrinkY"`  // 碰撞盒相对图片的纵向收缩量
	ToolOffsets    map[string]Offset `yaml:"toolOffsets"`    // 工具作用点相对玩家中心的偏移（按朝向）
}

// Offset 二维整数偏移
type Offset struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Point 转换为 image.Point
func (o Offset) Point() image.Point {
	return image.Pt(o.X, o.Y)
}

// TimerConfig 各类定时器的持续时间
// YAML 中使用 "500ms" 这种字符串
type TimerConfig struct {
	ToolUse        time.Duration `yaml:"toolUse"`
	SeedUse        time.Duration `yaml:"seedUse"`
	SwitchTool     time.Duration `yaml:"switchTool"`
	SwitchSeed     time.Duration `yaml:"switchSeed"`
	MenuSelect     time.Duration `yaml:"menuSelect"`
	PlantTrample   time.Duration `yaml:"plantTrample"`
	TreeInvuln     time.Duration `yaml:"treeInvuln"`
	Particle       time.Duration `yaml:"particle"`
	RainDropMin    time.Duration `yaml:"rainDropMin"`
	RainDropMax    time.Duration `yaml:"rainDropMax"`
	TransitionHold time.Duration `yaml:"transitionHold"`
}

// CropConfig 作物参数
type CropConfig struct {
	GrowthRate float64 `yaml:"growthRate"` // 每个浇过水的日子增长的阶段数
	OffsetY    int     `yaml:"offsetY"`    // 相对格子底边的绘制偏移
	Health     int     `yaml:"health"`     // 被踩踏几次后毁坏
}

// TreeConfig 树木参数
type TreeConfig struct {
	Health int `yaml:"health"`
	// 每个果位独立掷骰：rand(FruitDie) < FruitChance 时结果
	FruitChance int `yaml:"fruitChance"`
	FruitDie    int `yaml:"fruitDie"`
	// FruitSlots 果位（相对树图片左上角），按树的尺寸分类
	FruitSlots map[string][]Offset `yaml:"fruitSlots"`
}

// WeatherConfig 天气与昼夜参数
type WeatherConfig struct {
	RainChance      float64 `yaml:"rainChance"`      // 每天下雨概率
	DropSpeedMin    float64 `yaml:"dropSpeedMin"`    // 雨滴最小速度（像素/秒）
	DropSpeedMax    float64 `yaml:"dropSpeedMax"`    // 雨滴最大速度（像素/秒）
	SkyFadeSpeed    float64 `yaml:"skyFadeSpeed"`    // 天色每秒变暗的色值
	TransitionSpeed float64 `yaml:"transitionSpeed"` // 睡觉转场每秒变化的色值
}

// ShopConfig 商店价格
type ShopConfig struct {
	SalePrices     map[string]int `yaml:"salePrices"`     // 出售资源获得的金钱
	PurchasePrices map[string]int `yaml:"purchasePrices"` // 购买种子花费的金钱
	MaxStack       int            `yaml:"maxStack"`       // 单种种子持有上限
}

// EdibleConfig 可食用资源：吃一次消耗 Cost 个，恢复 1 点生命
type EdibleConfig struct {
	Resource string `yaml:"resource"`
	Cost     int    `yaml:"cost"`
}

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		TileSize: 64,
		Player: PlayerConfig{
			Speed:          200,
			AnimationSpeed: 4,
			MaxHealth:      3,
			StartMoney:     10,
			StartSeeds:     map[string]int{"corn": 5, "tomato": 4},
			HitboxShrinkX:  126,
			HitboxShrinkY:  70,
			ToolOffsets: map[string]Offset{
				"left":  {X: -50, Y: 40},
				"right": {X: 50, Y: 40},
				"up":    {X: 0, Y: -10},
				"down":  {X: 0, Y: 50},
			},
		},
		Timers: TimerConfig{
			ToolUse:        500 * time.Millisecond,
			SeedUse:        500 * time.Millisecond,
			SwitchTool:     400 * time.Millisecond,
			SwitchSeed:     400 * time.Millisecond,
			MenuSelect:     200 * time.Millisecond,
			PlantTrample:   1000 * time.Millisecond,
			TreeInvuln:     200 * time.Millisecond,
			Particle:       200 * time.Millisecond,
			RainDropMin:    400 * time.Millisecond,
			RainDropMax:    500 * time.Millisecond,
			TransitionHold: 500 * time.Millisecond,
		},
		Crops: map[string]CropConfig{
			"corn":   {GrowthRate: 1, OffsetY: -16, Health: 2},
			"tomato": {GrowthRate: 0.7, OffsetY: -8, Health: 2},
		},
		Tree: TreeConfig{
			Health:      5,
			FruitChance: 2,
			FruitDie:    12,
			FruitSlots: map[string][]Offset{
				"Small": {{18, 17}, {30, 37}, {12, 50}, {30, 45}, {20, 30}, {30, 10}},
				"Large": {{30, 24}, {60, 65}, {50, 50}, {16, 40}, {45, 50}, {42, 70}},
			},
		},
		Weather: WeatherConfig{
			RainChance:      0.3,
			DropSpeedMin:    220,
			DropSpeedMax:    270,
			SkyFadeSpeed:    2,
			TransitionSpeed: 120,
		},
		Shop: ShopConfig{
			SalePrices:     map[string]int{"wood": 4, "apple": 2, "corn": 10, "tomato": 20},
			PurchasePrices: map[string]int{"corn": 4, "tomato": 5},
			MaxStack:       99,
		},
		Edibles: []EdibleConfig{
			{Resource: "apple", Cost: 2},
			{Resource: "tomato", Cost: 1},
		},
		AssetRoot: "assets",
	}
}

// LoadGameConfig 从 YAML 文件加载配置
//
// 参数:
//   - path: 配置文件路径（如 "data/config.yaml"）
//
// 返回:
//   - *GameConfig: 默认值被文件内容覆盖后的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 内容（用于嵌入的默认配置和测试）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %d", c.TileSize)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player.speed must be positive, got %.1f", c.Player.Speed)
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.maxHealth must be positive, got %d", c.Player.MaxHealth)
	}
	for _, dir := range types.AllDirections {
		if _, ok := c.Player.ToolOffsets[dir.String()]; !ok {
			return fmt.Errorf("player.toolOffsets missing direction %q", dir.String())
		}
	}
	for _, crop := range types.AllCrops {
		cc, ok := c.Crops[crop.String()]
		if !ok {
			return fmt.Errorf("crops missing %q", crop.String())
		}
		if cc.GrowthRate <= 0 {
			return fmt.Errorf("crops.%s.growthRate must be positive", crop.String())
		}
		if cc.Health <= 0 {
			return fmt.Errorf("crops.%s.health must be positive", crop.String())
		}
	}
	for name := range c.Crops {
		if _, err := types.ParseCrop(name); err != nil {
			return fmt.Errorf("crops: %w", err)
		}
	}
	if c.Tree.Health <= 0 {
		return fmt.Errorf("tree.health must be positive, got %d", c.Tree.Health)
	}
	if c.Tree.FruitDie <= 0 || c.Tree.FruitChance < 0 || c.Tree.FruitChance > c.Tree.FruitDie {
		return fmt.Errorf("tree fruit odds invalid: %d in %d", c.Tree.FruitChance, c.Tree.FruitDie)
	}
	if c.Weather.RainChance < 0 || c.Weather.RainChance > 1 {
		return fmt.Errorf("weather.rainChance must be within [0,1], got %.2f", c.Weather.RainChance)
	}
	if c.Weather.DropSpeedMin > c.Weather.DropSpeedMax {
		return fmt.Errorf("weather drop speed range invalid: min(%.1f) > max(%.1f)",
			c.Weather.DropSpeedMin, c.Weather.DropSpeedMax)
	}
	if c.Timers.RainDropMin > c.Timers.RainDropMax {
		return fmt.Errorf("timers rain drop range invalid: min(%v) > max(%v)", c.Timers.RainDropMin, c.Timers.RainDropMax)
	}
	for name := range c.Shop.SalePrices {
		if _, err := types.ParseResource(name); err != nil {
			return fmt.Errorf("shop.salePrices: %w", err)
		}
	}
	for name := range c.Shop.PurchasePrices {
		if _, err := types.ParseCrop(name); err != nil {
			return fmt.Errorf("shop.purchasePrices: %w", err)
		}
	}
	for _, e := range c.Edibles {
		if _, err := types.ParseResource(e.Resource); err != nil {
			return fmt.Errorf("edibles: %w", err)
		}
		if e.Cost <= 0 {
			return fmt.Errorf("edibles.%s.cost must be positive", e.Resource)
		}
	}
	return nil
}

// CropConfig 返回作物参数
func (c *GameConfig) CropConfig(crop types.Crop) CropConfig {
	return c.Crops[crop.String()]
}

// ToolOffset 返回指定朝向的工具作用点偏移
func (c *GameConfig) ToolOffset(dir types.Direction) image.Point {
	return c.Player.ToolOffsets[dir.String()].Point()
}

// StartSeeds 返回指定作物的初始种子数
func (c *GameConfig) StartSeeds(crop types.Crop) int {
	return c.Player.StartSeeds[crop.String()]
}

// SalePrice 返回出售单个资源的价格，未配置时为 0
func (c *GameConfig) SalePrice(r types.Resource) int {
	return c.Shop.SalePrices[r.String()]
}

// PurchasePrice 返回购买单颗种子的价格，未配置时不可购买
func (c *GameConfig) PurchasePrice(crop types.Crop) (int, bool) {
	price, ok := c.Shop.PurchasePrices[crop.String()]
	return price, ok
}

// FruitSlots 返回指定尺寸树木的果位
func (c *GameConfig) FruitSlots(size string) []image.Point {
	offsets := c.Tree.FruitSlots[size]
	points := make([]image.Point, 0, len(offsets))
	for _, o := range offsets {
		points = append(points, o.Point())
	}
	return points
}

// Meal 可执行的一餐：消耗的资源与数量
type Meal struct {
	Resource types.Resource
	Cost     int
}

// Meals 返回按优先级排序的可食用资源
// 非法条目已在 Validate 中拒绝，这里直接跳过
func (c *GameConfig) Meals() []Meal {
	meals := make([]Meal, 0, len(c.Edibles))
	for _, e := range c.Edibles {
		r, err := types.ParseResource(e.Resource)
		if err != nil {
			continue
		}
		meals = append(meals, Meal{Resource: r, Cost: e.Cost})
	}
	return meals
}
