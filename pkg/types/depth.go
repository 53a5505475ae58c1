package types

// Depth 绘制层级，仅用于排序，与世界坐标无关
// 数值越小越先绘制
type Depth int

const (
	DepthWater Depth = iota
	DepthGround
	DepthSoil
	DepthSoilWater
	DepthRainFloor
	DepthHouseBottom
	DepthPlant
	DepthMain
	DepthHouseTop
	DepthFruit
	DepthRainDrops
)

// String 返回层级名称（用于日志）
func (d Depth) String() string {
	names := [...]string{
		"water", "ground", "soil", "soil_water", "rain_floor", "house_bottom",
		"plant", "main", "house_top", "fruit", "rain_drops",
	}
	if int(d) < 0 || int(d) >= len(names) {
		return "unknown"
	}
	return names[d]
}
