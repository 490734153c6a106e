// Package warmth 实现加权保暖模型：层级权重、目标保暖度、容差与层级保暖门槛。
//
// 模型要点：
//   - 每个层级有固定的保暖贡献权重（外层最重、配饰最轻）
//   - 目标保暖度由参考温度在固定单调表上线性插值得到
//   - 容差随温度降低而收窄——低温穿搭的容错空间更小
package warmth

import (
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// 各层级的保暖贡献权重。
var layerWeights = map[core.LayerCategory]float64{
	core.LayerBaseTop:    1.0,
	core.LayerBaseBottom: 1.0,
	core.LayerMidTop:     1.2,
	core.LayerOuterwear:  1.6,
	core.LayerFootwear:   0.4,
	core.LayerHeadwear:   0.2,
	core.LayerAccessory:  0.1,
}

// SoftShellMultiplier 是"轻薄防水外层"的保暖衰减系数：
// 温暖雨天追加的外层主要提供防水，几乎不提供保暖。
const SoftShellMultiplier = 0.4

// tempWarmthPoints 是 (°C, 目标保暖度) 的固定单调插值表。
var tempWarmthPoints = [][2]float64{
	{30, 5},
	{25, 7},
	{20, 10},
	{15, 14},
	{10, 20},
	{5, 24},
	{0, 28},
	{-5, 32},
}

// LayerWeight 返回某层级的保暖贡献权重，未知层级按 1.0 处理。
func LayerWeight(layer core.LayerCategory) float64 {
	if w, ok := layerWeights[layer]; ok {
		return w
	}
	return 1.0
}

// ItemWarmth 返回单件装配衣物的加权保暖度：
// 固有保暖度 × 层级权重 × 装配期系数（soft shell 为 0.4）。
func ItemWarmth(oi core.OutfitItem) float64 {
	return oi.Item.WarmthFactor * LayerWeight(oi.Item.LayerCategory) * oi.WarmthMultiplier
}

// OutfitWarmth 返回整套穿搭的加权保暖度（逐件求和，严格线性）。
func OutfitWarmth(o *core.Outfit) float64 {
	return o.WeightedWarmth(LayerWeight)
}

// ReferenceTemp 计算参考温度：min(avgTemp, (avgTemp+minTemp)/2 + 2)。
// 夜间低温显著时向下拉参考温度，避免只按日均温穿薄。
func ReferenceTemp(w core.WeatherSummary) float64 {
	blended := (w.AvgTemp+w.MinTemp)/2 + 2
	if blended < w.AvgTemp {
		return blended
	}
	return w.AvgTemp
}

// TargetWarmth 返回给定天气下的目标加权保暖度：
// 参考温度在插值表上线性插值，超出定义域时取端点值。
func TargetWarmth(w core.WeatherSummary) float64 {
	return interpolate(ReferenceTemp(w))
}

func interpolate(temp float64) float64 {
	pts := tempWarmthPoints
	if temp >= pts[0][0] {
		return pts[0][1]
	}
	last := pts[len(pts)-1]
	if temp <= last[0] {
		return last[1]
	}
	for i := 0; i < len(pts)-1; i++ {
		t1, w1 := pts[i][0], pts[i][1]
		t2, w2 := pts[i+1][0], pts[i+1][1]
		if temp <= t1 && temp >= t2 {
			ratio := (temp - t1) / (t2 - t1)
			return w1 + ratio*(w2-w1)
		}
	}
	return last[1]
}

// Tolerance 返回保暖容差（关于参考温度的阶梯函数）：天越冷越不宽容。
func Tolerance(w core.WeatherSummary) float64 {
	t := ReferenceTemp(w)
	switch {
	case t >= 28:
		return 6
	case t >= 22:
		return 5
	case t >= 14:
		return 4.5
	case t >= 8:
		return 4
	case t >= 2:
		return 3.5
	default:
		return 3
	}
}

// 层级最低固有保暖度门槛（按 minTemp 分档）。
// 门槛比较的是衣物固有保暖度（未加权），低于门槛的衣物不参与该层级装配。
var (
	// 不变式：冷档门槛下的五层最低加权保暖度
	// (4+4+5·1.2+7·1.6+3·0.4 = 26.4) 不得超过冷凉分界天气
	// (avg 8 / min 6) 的宽松窗口上沿 26.6。
	coldLayerGates = map[core.LayerCategory]float64{
		core.LayerBaseTop:    4,
		core.LayerBaseBottom: 4,
		core.LayerMidTop:     5,
		core.LayerOuterwear:  7,
		core.LayerFootwear:   3,
		core.LayerHeadwear:   1,
		core.LayerAccessory:  1,
	}
	coolLayerGates = map[core.LayerCategory]float64{
		core.LayerBaseTop:    2,
		core.LayerBaseBottom: 2,
		core.LayerMidTop:     4,
		core.LayerOuterwear:  5,
		core.LayerFootwear:   2,
		core.LayerHeadwear:   1,
		core.LayerAccessory:  1,
	}
)

// MinLayerWarmth 返回某层级在给定天气下的最低固有保暖度门槛。
// minTemp ≥ 20 时所有门槛放宽为 1（等效关闭）。
func MinLayerWarmth(layer core.LayerCategory, w core.WeatherSummary) float64 {
	switch {
	case w.MinTemp < 10:
		if g, ok := coldLayerGates[layer]; ok {
			return g
		}
	case w.MinTemp < 20:
		if g, ok := coolLayerGates[layer]; ok {
			return g
		}
	}
	return 1
}
