package components

// VelocityComponent 匀速直线运动（雨滴）
// 方向不要求归一化，每秒位移 = 方向 * Speed
type VelocityComponent struct {
	DirX  float64
	DirY  float64
	Speed float64
}
