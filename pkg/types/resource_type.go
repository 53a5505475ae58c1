// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Resource 玩家背包中的资源种类
type Resource int

const (
	// ResourceWood 木材（砍倒树木获得）
	ResourceWood Resource = iota
	// ResourceApple 苹果（击打结果的树木掉落）
	ResourceApple
	// ResourceCorn 玉米（收获作物）
	ResourceCorn
	// ResourceTomato 番茄（收获作物）
	ResourceTomato
)

// AllResources 按背包显示顺序列出全部资源
var AllResources = []Resource{ResourceWood, ResourceApple, ResourceCorn, ResourceTomato}

// String 返回资源的配置键名
func (r Resource) String() string {
	switch r {
	case ResourceWood:
		return "wood"
	case ResourceApple:
		return "apple"
	case ResourceCorn:
		return "corn"
	case ResourceTomato:
		return "tomato"
	default:
		return "unknown"
	}
}

// ParseResource 将配置键名解析为资源种类
func ParseResource(name string) (Resource, error) {
	for _, r := range AllResources {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// Crop 作物种类（同时也是种子种类）
type Crop int

const (
	// CropCorn 玉米
	CropCorn Crop = iota
	// CropTomato 番茄
	CropTomato
)

// AllCrops 种子切换顺序
var AllCrops = []Crop{CropCorn, CropTomato}

// String 返回作物的配置键名
func (c Crop) String() string {
	switch c {
	case CropCorn:
		return "corn"
	case CropTomato:
		return "tomato"
	default:
		return "unknown"
	}
}

// Resource 返回收获该作物得到的资源
func (c Crop) Resource() Resource {
	if c == CropTomato {
		return ResourceTomato
	}
	return ResourceCorn
}

// ParseCrop 将配置键名解析为作物种类
func ParseCrop(name string) (Crop, error) {
	for _, c := range AllCrops {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown crop %q", name)
}
