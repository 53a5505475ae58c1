package types

// SoilVariant 已翻土格子的贴图变体
// 由上下左右四个邻居的翻土状态推导，命名描述“与哪些邻居相连”
type SoilVariant int

const (
	// SoilIsolated 四周都没有翻土（默认）
	SoilIsolated SoilVariant = iota
	// SoilFull 四周都已翻土
	SoilFull

	// 只有一侧相连
	SoilEndLeft
	SoilEndRight
	SoilEndTop
	SoilEndBottom

	// 对侧两边相连
	SoilHorizontal
	SoilVertical

	// 相邻两边相连
	SoilCornerLeftBottom
	SoilCornerRightBottom
	SoilCornerLeftTop
	SoilCornerRightTop

	// 三边相连（缺一边）
	SoilJunctionNoLeft
	SoilJunctionNoRight
	SoilJunctionNoBottom
	SoilJunctionNoTop
)

// AllSoilVariants 全部变体，按贴图加载顺序
var AllSoilVariants = []SoilVariant{
	SoilIsolated, SoilFull,
	SoilEndLeft, SoilEndRight, SoilEndTop, SoilEndBottom,
	SoilHorizontal, SoilVertical,
	SoilCornerLeftBottom, SoilCornerRightBottom, SoilCornerLeftTop, SoilCornerRightTop,
	SoilJunctionNoLeft, SoilJunctionNoRight, SoilJunctionNoBottom, SoilJunctionNoTop,
}

// ImageKey 返回美术资源中的文件名（不含扩展名）
// 贴图按“开口方向”命名，所以只和左边相连的格子使用 "r"
func (v SoilVariant) ImageKey() string {
	switch v {
	case SoilFull:
		return "x"
	case SoilEndLeft:
		return "r"
	case SoilEndRight:
		return "l"
	case SoilEndTop:
		return "b"
	case SoilEndBottom:
		return "t"
	case SoilHorizontal:
		return "lr"
	case SoilVertical:
		return "tb"
	case SoilCornerLeftBottom:
		return "tr"
	case SoilCornerRightBottom:
		return "tl"
	case SoilCornerLeftTop:
		return "br"
	case SoilCornerRightTop:
		return "bl"
	case SoilJunctionNoLeft:
		return "tbr"
	case SoilJunctionNoRight:
		return "tbl"
	case SoilJunctionNoBottom:
		return "lrb"
	case SoilJunctionNoTop:
		return "lrt"
	default:
		return "o"
	}
}
