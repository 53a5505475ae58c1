package systems

import (
	"testing"

	"github.com/decker502/valley/pkg/types"
)

// TestAutotileVariant 16 种邻居组合各自对应唯一的变体
func TestAutotileVariant(t *testing.T) {
	tests := []struct {
		name string
		mask NeighbourMask
		want types.SoilVariant
	}{
		{"none", NeighbourMask{}, types.SoilIsolated},
		{"all", NeighbourMask{Top: true, Right: true, Bottom: true, Left: true}, types.SoilFull},

		{"left only", NeighbourMask{Left: true}, types.SoilEndLeft},
		{"right only", NeighbourMask{Right: true}, types.SoilEndRight},
		{"top only", NeighbourMask{Top: true}, types.SoilEndTop},
		{"bottom only", NeighbourMask{Bottom: true}, types.SoilEndBottom},

		{"left+right", NeighbourMask{Left: true, Right: true}, types.SoilHorizontal},
		{"top+bottom", NeighbourMask{Top: true, Bottom: true}, types.SoilVertical},

		{"left+bottom", NeighbourMask{Left: true, Bottom: true}, types.SoilCornerLeftBottom},
		{"right+bottom", NeighbourMask{Right: true, Bottom: true}, types.SoilCornerRightBottom},
		{"left+top", NeighbourMask{Left: true, Top: true}, types.SoilCornerLeftTop},
		{"right+top", NeighbourMask{Right: true, Top: true}, types.SoilCornerRightTop},

		{"no left", NeighbourMask{Top: true, Right: true, Bottom: true}, types.SoilJunctionNoLeft},
		{"no right", NeighbourMask{Top: true, Left: true, Bottom: true}, types.SoilJunctionNoRight},
		{"no bottom", NeighbourMask{Top: true, Left: true, Right: true}, types.SoilJunctionNoBottom},
		{"no top", NeighbourMask{Bottom: true, Left: true, Right: true}, types.SoilJunctionNoTop},
	}

	seen := make(map[types.SoilVariant]string)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AutotileVariant(tt.mask)
			if got != tt.want {
				t.Errorf("AutotileVariant(%+v) = %v, want %v", tt.mask, got, tt.want)
			}
		})
		if prev, dup := seen[tt.want]; dup {
			t.Errorf("variant %v expected for both %q and %q", tt.want, prev, tt.name)
		}
		seen[tt.want] = tt.name
	}

	if len(seen) != len(types.AllSoilVariants) {
		t.Errorf("covered %d variants, want %d", len(seen), len(types.AllSoilVariants))
	}
}

// TestSoilVariantImageKeysUnique 每个变体的贴图文件名互不相同
func TestSoilVariantImageKeysUnique(t *testing.T) {
	keys := make(map[string]types.SoilVariant)
	for _, v := range types.AllSoilVariants {
		key := v.ImageKey()
		if other, dup := keys[key]; dup {
			t.Errorf("image key %q shared by %v and %v", key, other, v)
		}
		keys[key] = v
	}
	if got := types.SoilEndLeft.ImageKey(); got != "r" {
		t.Errorf("SoilEndLeft.ImageKey() = %q, want \"r\"", got)
	}
}
