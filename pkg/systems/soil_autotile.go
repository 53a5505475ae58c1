package systems

import "github.com/decker502/valley/pkg/types"

// NeighbourMask 四邻居的翻土状态
type NeighbourMask struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// AutotileVariant 根据四邻居状态选出贴图变体
//
// 判定顺序固定：四边全连 → 单边 → 对边贯通 → 拐角 → 三边 → 孤立。
// 每个组合恰好命中一个分支。
func AutotileVariant(m NeighbourMask) types.SoilVariant {
	t, r, b, l := m.Top, m.Right, m.Bottom, m.Left

	switch {
	case t && r && b && l:
		return types.SoilFull

	case l && !t && !r && !b:
		return types.SoilEndLeft
	case r && !t && !l && !b:
		return types.SoilEndRight
	case t && !r && !l && !b:
		return types.SoilEndTop
	case b && !r && !l && !t:
		return types.SoilEndBottom

	case r && l && !t && !b:
		return types.SoilHorizontal
	case t && b && !r && !l:
		return types.SoilVertical

	case l && b && !t && !r:
		return types.SoilCornerLeftBottom
	case r && b && !t && !l:
		return types.SoilCornerRightBottom
	case l && t && !b && !r:
		return types.SoilCornerLeftTop
	case r && t && !b && !l:
		return types.SoilCornerRightTop

	case t && b && r && !l:
		return types.SoilJunctionNoLeft
	case t && b && l && !r:
		return types.SoilJunctionNoRight
	case l && r && t && !b:
		return types.SoilJunctionNoBottom
	case l && r && b && !t:
		return types.SoilJunctionNoTop
	}

	return types.SoilIsolated
}
