package config

// 窗口与界面布局
// 逻辑分辨率固定，窗口缩放由 ebiten 的 Layout 处理
const (
	// GameWindowWidth 逻辑屏幕宽度（像素）
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑屏幕高度（像素）
	GameWindowHeight = 720

	// GameTPS 逻辑帧率
	GameTPS = 60

	// GameTitle 窗口标题
	GameTitle = "Valley"
)

// HUD 与商店面板
const (
	// HUDMargin HUD 文字距屏幕边缘的距离
	HUDMargin = 8

	// ToolIconX 工具图标中心 x，底边在屏幕下边缘上方 ToolIconBottom
	ToolIconX      = 40
	ToolIconBottom = 15

	// SeedIconX 种子图标中心 x，底边在屏幕下边缘上方 SeedIconBottom
	SeedIconX      = 70
	SeedIconBottom = 5

	// ShopPanelWidth 商店面板宽度，面板在屏幕中居中
	ShopPanelWidth = 320

	// ShopRowHeight 商店每行高度（ebitenutil 调试字体约 16px）
	ShopRowHeight = 20
)
