package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/valley/pkg/config"
	"github.com/decker502/valley/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var shopBackground = color.RGBA{R: 20, G: 20, B: 30, A: 200}

// hudText 状态文字
func (l *LevelScene) hudText() string {
	p := l.playerSystem.Component()
	if p == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Day %d  Money %d  Health %d/%d\n", l.day, p.Money, p.Health, p.MaxHealth)
	for i, r := range types.AllResources {
		if i > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%s %d", r, p.Items[r])
	}
	b.WriteString("\nSeeds")
	for _, c := range types.AllCrops {
		fmt.Fprintf(&b, "  %s %d", c, p.Seeds[c])
	}
	fmt.Fprintf(&b, "\nTool %s  Seed %s", p.SelectedTool(), p.SelectedSeed())
	if l.weatherSystem.Raining() {
		b.WriteString("  (rain)")
	}
	return b.String()
}

func (l *LevelScene) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, l.hudText(), config.HUDMargin, config.HUDMargin)

	p := l.playerSystem.Component()
	if p == nil {
		return
	}
	h := screen.Bounds().Dy()
	drawMidBottom(screen, l.art.ToolIcons[p.SelectedTool()], config.ToolIconX, h-config.ToolIconBottom)
	drawMidBottom(screen, l.art.SeedIcons[p.SelectedSeed()], config.SeedIconX, h-config.SeedIconBottom)
}

// drawShop 商店菜单：屏幕中央的列表，当前条目前加 ">"
func (l *LevelScene) drawShop(screen *ebiten.Image) {
	p := l.playerSystem.Component()
	entries := l.shopSystem.Entries()

	bounds := screen.Bounds()
	height := (len(entries) + 2) * config.ShopRowHeight
	x := (bounds.Dx() - config.ShopPanelWidth) / 2
	y := (bounds.Dy() - height) / 2
	vector.DrawFilledRect(screen, float32(x), float32(y), config.ShopPanelWidth, float32(height), shopBackground, false)

	header := "Trader"
	if p != nil {
		header = fmt.Sprintf("Trader  (money %d)", p.Money)
	}
	ebitenutil.DebugPrintAt(screen, header, x+config.HUDMargin, y+config.HUDMargin/2)

	for i, entry := range entries {
		marker := "  "
		if i == l.shopSystem.Index() {
			marker = "> "
		}
		have := 0
		if p != nil {
			if entry.Sell {
				have = p.Items[entry.Resource]
			} else {
				have = p.Seeds[entry.Crop]
			}
		}
		line := fmt.Sprintf("%s%s  (%d)", marker, entry.Label(l.config), have)
		ebitenutil.DebugPrintAt(screen, line, x+config.HUDMargin, y+(i+1)*config.ShopRowHeight+config.HUDMargin/2)
	}
}

func drawMidBottom(screen, img *ebiten.Image, centerX, bottom int) {
	if img == nil {
		return
	}
	size := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(centerX-size.X/2), float64(bottom-size.Y))
	screen.DrawImage(img, op)
}
