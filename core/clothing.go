package core

// LayerCategory 表示衣物所处的穿搭层级（贴身层 → 外层）。
// 层级决定保暖权重与搭配槽位：一套候选穿搭每个层级最多一件。
type LayerCategory string

const (
	LayerBaseTop    LayerCategory = "base_top"
	LayerBaseBottom LayerCategory = "base_bottom"
	LayerMidTop     LayerCategory = "mid_top"
	LayerOuterwear  LayerCategory = "outerwear"
	LayerFootwear   LayerCategory = "footwear"
	LayerHeadwear   LayerCategory = "headwear"
	LayerAccessory  LayerCategory = "accessory"
)

// AllLayers 按由内到外的顺序列出全部层级。
var AllLayers = []LayerCategory{
	LayerBaseTop,
	LayerBaseBottom,
	LayerMidTop,
	LayerOuterwear,
	LayerFootwear,
	LayerHeadwear,
	LayerAccessory,
}

// Style 表示穿搭风格。顺序固定：one-hot 编码依赖此顺序（见 feature 包）。
type Style string

const (
	StyleFormal   Style = "Formal"
	StyleCasual   Style = "Casual"
	StyleAthletic Style = "Athletic"
	StyleParty    Style = "Party"
	StyleBusiness Style = "Business"
	StyleOutdoor  Style = "Outdoor"
)

// AllStyles 是 one-hot 编码的固定顺序，不可调整。
var AllStyles = []Style{
	StyleFormal,
	StyleCasual,
	StyleAthletic,
	StyleParty,
	StyleBusiness,
	StyleOutdoor,
}

// ClothingItem 是衣柜中的一件衣物，请求期间视为不可变输入。
type ClothingItem struct {
	ID             string
	OwnerID        string
	LayerCategory  LayerCategory
	Style          Style
	Category       string // 细分品类，如 "hoodie" / "sneakers"
	Material       string
	ColorHex       string
	DominantColors []string // 主色列表；为空时回退到 ColorHex
	WarmthFactor   float64  // 固有保暖度（未加权）
	Waterproof     bool
	Filename       string // 图片文件名，经 ImageResolver 解析为 URL
}

// Colors 返回该衣物参与配色计算的颜色集合：优先 DominantColors，
// 否则回退到 ColorHex；两者皆空时返回 nil。
func (it *ClothingItem) Colors() []string {
	if len(it.DominantColors) > 0 {
		return it.DominantColors
	}
	if it.ColorHex != "" {
		return []string{it.ColorHex}
	}
	return nil
}
