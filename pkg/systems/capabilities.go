package systems

import "github.com/decker502/valley/pkg/types"

// 音效 ID（与 AudioManager 注册的名称一致）
const (
	SoundAxe        = "axe"
	SoundWater      = "water"
	SoundSuccess    = "success"
	MusicBackground = "bg"
)

// ResourceSink 接收获得的资源（玩家背包）
type ResourceSink interface {
	Credit(resource types.Resource)
}

// SoundPlayer 播放音效，不关心结果
// 返回 false 表示音效不存在或音频不可用
type SoundPlayer interface {
	PlaySound(id string) bool
}

// silentPlayer 不播放任何声音（未提供 SoundPlayer 时使用）
type silentPlayer struct{}

func (silentPlayer) PlaySound(string) bool { return false }

// orSilent 保证 SoundPlayer 非空
func orSilent(p SoundPlayer) SoundPlayer {
	if p == nil {
		return silentPlayer{}
	}
	return p
}
