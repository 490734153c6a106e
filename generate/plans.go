package generate

import (
	"sort"
	"strings"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// LayerPlan 是天气推导出的穿搭层级方案：候选穿搭必须恰好覆盖方案内的全部层级。
type LayerPlan struct {
	Layers []core.LayerCategory
}

// Key 返回按层级名排序拼接的去重键。
func (p LayerPlan) Key() string {
	names := make([]string, len(p.Layers))
	for i, l := range p.Layers {
		names[i] = string(l)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// 核心层级：任何天气下都必须覆盖。
var coreLayers = []core.LayerCategory{
	core.LayerBaseTop,
	core.LayerBaseBottom,
	core.LayerFootwear,
}

// BuildLayerPlans 根据天气推导层级方案集合：
//   - 始终包含核心方案 {base_top, base_bottom, footwear}
//   - 凉（avg<18 或 min<13）：追加 核心+mid_top
//   - 雨或冷（willRain 或 avg<12 或 min<10）：追加 核心+outerwear
//   - 冷（avg<12 或 min<10）：追加 核心+mid_top+outerwear
//
// 方案按排序后的层级集合去重。
func BuildLayerPlans(w core.WeatherSummary) []LayerPlan {
	cool := w.AvgTemp < 18 || w.MinTemp < 13
	cold := w.AvgTemp < 12 || w.MinTemp < 10

	plans := []LayerPlan{{Layers: coreLayers}}
	if cool {
		plans = append(plans, LayerPlan{Layers: withLayers(coreLayers, core.LayerMidTop)})
	}
	if w.WillRain || cold {
		plans = append(plans, LayerPlan{Layers: withLayers(coreLayers, core.LayerOuterwear)})
	}
	if cold {
		plans = append(plans, LayerPlan{Layers: withLayers(coreLayers, core.LayerMidTop, core.LayerOuterwear)})
	}

	seen := make(map[string]bool, len(plans))
	out := plans[:0]
	for _, p := range plans {
		k := p.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}

func withLayers(base []core.LayerCategory, extra ...core.LayerCategory) []core.LayerCategory {
	out := make([]core.LayerCategory, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}
