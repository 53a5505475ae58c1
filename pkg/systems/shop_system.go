package systems

import (
	"fmt"
	"log"

	"github.com/decker502/valley/pkg/components"
	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/input"
	"github.com/decker502/valley/pkg/types"
	"github.com/decker502/valley/pkg/utils"
)

// ShopEntry 商店菜单的一行：出售资源或购买种子
type ShopEntry struct {
	Sell     bool
	Resource types.Resource
	Crop     types.Crop
}

// Label 菜单显示文本
func (e ShopEntry) Label(cfg *config.GameConfig) string {
	if e.Sell {
		return fmt.Sprintf("sell %-7s +%d", e.Resource, cfg.SalePrice(e.Resource))
	}
	price, _ := cfg.PurchasePrice(e.Crop)
	return fmt.Sprintf("buy  %-7s -%d", e.Crop.String()+" seed", price)
}

// ShopSystem 商人菜单：先列出可出售的资源，再列出可购买的种子
// 打开期间关卡只更新本系统
type ShopSystem struct {
	config  *config.GameConfig
	input   input.Source
	player  func() *components.PlayerComponent
	entries []ShopEntry
	index   int
	timer   *utils.Timer
	open    bool
}

// NewShopSystem 创建商店系统
// 参数:
//   - player: 返回当前玩家组件（交易对象）
func NewShopSystem(cfg *config.GameConfig, in input.Source, clock utils.Clock,
	player func() *components.PlayerComponent) *ShopSystem {
	entries := make([]ShopEntry, 0, len(types.AllResources)+len(types.AllCrops))
	for _, r := range types.AllResources {
		entries = append(entries, ShopEntry{Sell: true, Resource: r})
	}
	for _, c := range types.AllCrops {
		entries = append(entries, ShopEntry{Crop: c})
	}

	return &ShopSystem{
		config:  cfg,
		input:   in,
		player:  player,
		entries: entries,
		timer:   utils.NewTimer(clock, cfg.Timers.MenuSelect, nil),
	}
}

// Open 打开菜单，开始一次防抖避免打开时的按键立即触发选择
func (s *ShopSystem) Open() {
	s.open = true
	s.timer.Start()
	log.Printf("[ShopSystem] opened")
}

// Close 关闭菜单
func (s *ShopSystem) Close() {
	s.open = false
}

// IsOpen 菜单是否打开
func (s *ShopSystem) IsOpen() bool {
	return s.open
}

// Entries 菜单条目
func (s *ShopSystem) Entries() []ShopEntry {
	return s.entries
}

// Index 当前选中的条目下标
func (s *ShopSystem) Index() int {
	return s.index
}

// Update 处理菜单输入
func (s *ShopSystem) Update() {
	if !s.open {
		return
	}

	s.timer.Update()

	if s.input.Pressed(input.ActionCancel) {
		s.Close()
		return
	}
	if s.timer.Active() {
		return
	}

	n := len(s.entries)
	switch {
	case s.input.Pressed(input.ActionMenuUp):
		s.index = (s.index - 1 + n) % n
		s.timer.Start()
	case s.input.Pressed(input.ActionMenuDown):
		s.index = (s.index + 1) % n
		s.timer.Start()
	case s.input.Pressed(input.ActionMenuSelect):
		s.Perform(s.entries[s.index])
		s.timer.Start()
	}
}

// Perform 执行一笔交易，条件不满足时什么都不做
func (s *ShopSystem) Perform(entry ShopEntry) bool {
	p := s.player()
	if p == nil {
		return false
	}
	if entry.Sell {
		return Sell(s.config, p, entry.Resource)
	}
	return Buy(s.config, p, entry.Crop)
}

// Sell 卖出一个资源
func Sell(cfg *config.GameConfig, p *components.PlayerComponent, r types.Resource) bool {
	if p.Items[r] < 1 {
		return false
	}
	p.Items[r]--
	p.Money += cfg.SalePrice(r)
	return true
}

// Buy 买入一颗种子，钱不够或种子已达上限时失败
func Buy(cfg *config.GameConfig, p *components.PlayerComponent, crop types.Crop) bool {
	price, ok := cfg.PurchasePrice(crop)
	if !ok || p.Money < price || p.Seeds[crop] >= cfg.Shop.MaxStack {
		return false
	}
	p.Money -= price
	p.Seeds[crop]++
	return true
}
