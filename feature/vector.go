// Package feature 实现穿搭的定长数值特征编码与余弦相似度。
//
// 候选穿搭、本人历史穿搭、跨用户评分池三种来源都用同一套编码，
// 保证向量之间可以直接做余弦比较。
package feature

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/warmth"
)

// VectorDim 是特征向量长度：
// [avgTemp, minTemp, warmthRating, waterproof, colorHarmony] + style one-hot。
var VectorDim = 5 + len(core.AllStyles)

// ColorHarmony 计算一组 hex 颜色的平均两两色相距离（角度）。
// 颜色少于 2 个时返回 0；无法解析的 hex 按黑色处理。
func ColorHarmony(hexes []string) float64 {
	if len(hexes) < 2 {
		return 0
	}
	hues := make([]float64, len(hexes))
	for i, hex := range hexes {
		hues[i] = hueOf(hex)
	}
	var total float64
	var count int
	for i := 0; i < len(hues); i++ {
		for j := i + 1; j < len(hues); j++ {
			total += math.Abs(hues[i] - hues[j])
			count++
		}
	}
	return total / float64(count)
}

func hueOf(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	h, _, _ := c.Hsl()
	return h
}

// IsNearWhite 报告颜色是否接近白色（亮度 > 0.95 且饱和度 < 0.1）。
func IsNearWhite(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	_, s, l := c.Hsl()
	return l > 0.95 && s < 0.1
}

// OutfitVector 将候选穿搭编码为特征向量。
func OutfitVector(o *core.Outfit, w core.WeatherSummary) []float64 {
	waterproof := 0.0
	if o.Waterproof() {
		waterproof = 1.0
	}
	return buildVector(
		w.AvgTemp,
		w.MinTemp,
		core.RoundWarmth(warmth.OutfitWarmth(o)),
		waterproof,
		ColorHarmony(o.Colors()),
		o.OverallStyle,
	)
}

// RatedOutfitVector 将历史评分穿搭编码为特征向量。
// 保暖评级直接使用记录时的展示值，配色来自记录中的衣物快照。
func RatedOutfitVector(r core.RatedOutfit) []float64 {
	waterproof := 0.0
	if r.Waterproof {
		waterproof = 1.0
	}
	var hexes []string
	for i := range r.Items {
		hexes = append(hexes, r.Items[i].Colors()...)
	}
	return buildVector(
		r.Weather.AvgTemp,
		r.Weather.MinTemp,
		r.WarmthRating,
		waterproof,
		ColorHarmony(hexes),
		r.OverallStyle,
	)
}

func buildVector(avgTemp, minTemp, warmthRating, waterproof, harmony float64, style core.Style) []float64 {
	vec := make([]float64, 0, VectorDim)
	vec = append(vec, avgTemp, minTemp, warmthRating, waterproof, harmony)
	for _, s := range core.AllStyles {
		if s == style {
			vec = append(vec, 1)
		} else {
			vec = append(vec, 0)
		}
	}
	return vec
}

// CosineSimilarity 计算两个向量的余弦相似度。
// 任一向量为零向量时定义为 0；长度不一致时同样返回 0。
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
