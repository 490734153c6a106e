package core

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

// OutfitItem 是候选穿搭中的一件衣物及其装配期修饰。
//
// WarmthMultiplier 是不可变的逐候选修饰：雨天追加的轻薄防水外层
// ("soft shell") 在温暖天气下取 0.4，表示其几乎不提供保暖；
// 普通装配取 1.0。修饰挂在候选上而不回写 ClothingItem，
// 避免跨请求共享状态被污染。
type OutfitItem struct {
	Item             ClothingItem
	WarmthMultiplier float64
	SortOrder        int
}

// NewOutfitItem 以默认保暖系数 1.0 包装一件衣物。
func NewOutfitItem(item ClothingItem, sortOrder int) OutfitItem {
	return OutfitItem{Item: item, WarmthMultiplier: 1.0, SortOrder: sortOrder}
}

// Outfit 是一套完整的候选穿搭：每个占用层级恰好一件衣物。
type Outfit struct {
	Items        []OutfitItem
	OverallStyle Style
}

// WeightedWarmth 返回整套穿搭的加权保暖度：
// Σ 固有保暖度 × 层级权重 × 装配期系数。
// 层级权重由 warmth 包提供，此处通过回调注入以避免循环依赖。
func (o *Outfit) WeightedWarmth(layerWeight func(LayerCategory) float64) float64 {
	var sum float64
	for _, oi := range o.Items {
		sum += oi.Item.WarmthFactor * layerWeight(oi.Item.LayerCategory) * oi.WarmthMultiplier
	}
	return sum
}

// Waterproof 报告是否至少有一件防水衣物。
func (o *Outfit) Waterproof() bool {
	for _, oi := range o.Items {
		if oi.Item.Waterproof {
			return true
		}
	}
	return false
}

// Layers 返回已占用层级的集合。
func (o *Outfit) Layers() map[LayerCategory]bool {
	out := make(map[LayerCategory]bool, len(o.Items))
	for _, oi := range o.Items {
		out[oi.Item.LayerCategory] = true
	}
	return out
}

// HasLayer 报告某层级是否已被占用。
func (o *Outfit) HasLayer(layer LayerCategory) bool {
	for _, oi := range o.Items {
		if oi.Item.LayerCategory == layer {
			return true
		}
	}
	return false
}

// Key 返回按衣物 ID 排序拼接的去重键：同一组衣物只出现一次。
func (o *Outfit) Key() string {
	ids := make([]string, 0, len(o.Items))
	for _, oi := range o.Items {
		ids = append(ids, oi.Item.ID)
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}

// Colors 收集整套穿搭的配色（每件衣物的 Colors）。
func (o *Outfit) Colors() []string {
	var out []string
	for _, oi := range o.Items {
		out = append(out, oi.Item.Colors()...)
	}
	return out
}

// Candidate 是推荐链路中的统一承载结构：候选穿搭、特征、三路分数与标签。
// Labels 用于解释与策略驱动；FinalScore 用于最终排序决策。
type Candidate struct {
	Outfit     *Outfit
	Vector     []float64
	RuleScore  float64
	KnnScore   float64
	CfScore    float64
	FinalScore float64
	Labels     map[string]utils.Label
}

// NewCandidate 包装一套穿搭为候选。
func NewCandidate(outfit *Outfit) *Candidate {
	return &Candidate{
		Outfit: outfit,
		Labels: make(map[string]utils.Label),
	}
}

// PutLabel 写入 Label；若已存在同名 key，则按默认 Merge 规则累积。
func (c *Candidate) PutLabel(key string, lbl utils.Label) {
	if c.Labels == nil {
		c.Labels = make(map[string]utils.Label)
	}
	if old, ok := c.Labels[key]; ok {
		c.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	c.Labels[key] = lbl
}

// RatedOutfit 是一条历史穿搭评分记录（只读输入），来自本人或跨用户评分池。
type RatedOutfit struct {
	UserID       string
	Items        []ClothingItem
	Rating       *float64 // nil 表示尚未评分
	OverallStyle Style
	WarmthRating float64
	Waterproof   bool
	Weather      WeatherSummary
	CreatedAt    time.Time
}

// RatingPoint 是 (用户, 特征向量, 评分) 三元组，协同过滤的最小数据单元。
type RatingPoint struct {
	UserID string
	Vec    []float64
	Rating float64
}

// Preferences 是用户风格/配色偏好；preference store 缺失时使用零值
// 并由引擎补默认风格。
type Preferences struct {
	Style           Style
	PreferredColors []string
}

// Recommendation 是输出给调用方的一条推荐结果。
type Recommendation struct {
	Items        []RecommendedItem `json:"outfitItems"`
	OverallStyle Style             `json:"overallStyle"`
	Score        float64           `json:"score"`
	WarmthRating float64           `json:"warmthRating"`
	Waterproof   bool              `json:"waterproof"`
	Weather      WeatherSummary    `json:"weatherSummary"`
}

// RecommendedItem 是推荐结果中的单件衣物（含解析后的图片 URL）。
type RecommendedItem struct {
	ClosetItemID   string        `json:"closetItemId"`
	ImageURL       string        `json:"imageUrl"`
	LayerCategory  LayerCategory `json:"layerCategory"`
	Category       string        `json:"category"`
	Style          Style         `json:"style"`
	ColorHex       string        `json:"colorHex,omitempty"`
	DominantColors []string      `json:"dominantColors,omitempty"`
	WarmthFactor   float64       `json:"warmthFactor"`
	Waterproof     bool          `json:"waterproof"`
	SortOrder      int           `json:"sortOrder"`
}

// RoundWarmth 将加权保暖度收敛为展示用整数评级。
func RoundWarmth(weighted float64) float64 {
	return math.Round(weighted)
}
