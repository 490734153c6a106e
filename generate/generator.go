// Package generate 实现候选穿搭生成：按层级切分衣柜，依据天气推导层级方案，
// 在采样上限内枚举组合，并用宽松保暖窗口做粗筛。
//
// 粗/细两级过滤是刻意设计：生成期用 0.75/1.25 的松弛窗口快速砍掉明显
// 不合适的组合，精细的保暖衰减留给规则打分阶段。松弛常数是可调参数，
// 不从原理推导。
package generate

import (
	"context"
	"fmt"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/warmth"
)

const (
	// DefaultLayerPoolCap 是每层参与组合的衣物上限（超出时随机采样）。
	DefaultLayerPoolCap = 5

	// DefaultPlanCandidateCap 是单个方案产出候选的上限（超出时随机采样）。
	DefaultPlanCandidateCap = 100

	// 生成期宽松保暖窗口的松弛系数：[target−tol×low, target+tol×high]。
	DefaultLooseLowSlack  = 0.75
	DefaultLooseHighSlack = 1.25

	// SoftShellTemp 是雨衣外层按 soft shell 衰减的温度阈值（avgTemp ≥ 此值）。
	SoftShellTemp = 20.0
)

// Generator 是生成阶段的 Node：从衣柜快照装配候选穿搭。
// 输入 candidates 被忽略（生成阶段是链路起点）。
type Generator struct {
	// Closet 是本次请求的衣柜快照。
	Closet []core.ClothingItem

	// LayerPoolCap / PlanCandidateCap ≤0 时使用默认值。
	LayerPoolCap     int
	PlanCandidateCap int

	// LooseLowSlack / LooseHighSlack ≤0 时使用默认松弛系数。
	LooseLowSlack  float64
	LooseHighSlack float64
}

func (g *Generator) Name() string        { return "generate.closet" }
func (g *Generator) Kind() pipeline.Kind { return pipeline.KindGenerate }

func (g *Generator) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	_ []*core.Candidate,
) ([]*core.Candidate, error) {
	if rctx == nil || len(g.Closet) == 0 {
		return nil, nil
	}

	partition := PartitionByLayer(g.Closet)
	plans := BuildLayerPlans(rctx.Weather)

	target := warmth.TargetWarmth(rctx.Weather)
	tol := warmth.Tolerance(rctx.Weather)
	low := target - tol*g.looseLowSlack()
	high := target + tol*g.looseHighSlack()

	seen := make(map[string]bool)
	var out []*core.Candidate

	for _, plan := range plans {
		outfits := g.assemble(rctx, partition, plan, low, high)
		for _, o := range outfits {
			key := o.Key()
			if seen[key] {
				continue
			}
			seen[key] = true

			cand := core.NewCandidate(o)
			cand.PutLabel("plan", utils.Label{Value: plan.Key(), Source: "generate"})
			out = append(out, cand)
		}
	}

	if rctx.Weather.WillRain {
		out = g.appendRainVariants(rctx, out, seen)
	}
	return out, nil
}

// PartitionByLayer 按层级切分衣柜。
func PartitionByLayer(items []core.ClothingItem) map[core.LayerCategory][]core.ClothingItem {
	partition := make(map[core.LayerCategory][]core.ClothingItem)
	for _, item := range items {
		partition[item.LayerCategory] = append(partition[item.LayerCategory], item)
	}
	return partition
}

// assemble 为单个方案装配候选：逐层过滤（风格 + 保暖门槛）、池上限采样、
// 回溯组合、宽松保暖窗口过滤、方案级上限采样。
func (g *Generator) assemble(
	rctx *core.RecommendContext,
	partition map[core.LayerCategory][]core.ClothingItem,
	plan LayerPlan,
	low, high float64,
) []*core.Outfit {
	pools := make([][]core.ClothingItem, len(plan.Layers))
	for i, layer := range plan.Layers {
		gate := warmth.MinLayerWarmth(layer, rctx.Weather)
		var pool []core.ClothingItem
		for _, item := range partition[layer] {
			if item.Style != rctx.Style {
				continue
			}
			if item.WarmthFactor < gate {
				continue
			}
			pool = append(pool, item)
		}
		// 任一层无可选衣物则该方案不产出候选
		if len(pool) == 0 {
			return nil
		}
		pools[i] = core.Sample(rctx, pool, g.layerPoolCap())
	}

	var outfits []*core.Outfit
	combine(pools, plan.Layers, nil, func(picked []core.ClothingItem) {
		o := &core.Outfit{OverallStyle: rctx.Style}
		for i, item := range picked {
			o.Items = append(o.Items, core.NewOutfitItem(item, i+1))
		}
		ww := warmth.OutfitWarmth(o)
		if ww < low || ww > high {
			return
		}
		outfits = append(outfits, o)
	})

	return core.Sample(rctx, outfits, g.planCandidateCap())
}

// combine 对各层池做笛卡尔积枚举（递归回溯），同一衣物 ID 不跨层复用。
// 枚举有界且全同步，无需协程式的生成器。
func combine(
	pools [][]core.ClothingItem,
	layers []core.LayerCategory,
	current []core.ClothingItem,
	emit func([]core.ClothingItem),
) {
	if len(current) == len(pools) {
		picked := make([]core.ClothingItem, len(current))
		copy(picked, current)
		emit(picked)
		return
	}
	for _, item := range pools[len(current)] {
		dup := false
		for _, chosen := range current {
			if chosen.ID == item.ID {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		combine(pools, layers, append(current, item), emit)
	}
}

// appendRainVariants 为缺少外层的候选追加"最轻防水外层"变体：
// 不修改原候选，按衣物+装配期系数生成新的不可变候选。
// avgTemp ≥ SoftShellTemp 时外层按 soft shell 衰减保暖贡献。
func (g *Generator) appendRainVariants(
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
	seen map[string]bool,
) []*core.Candidate {
	shell, ok := lightestWaterproofOuterwear(g.Closet)
	if !ok {
		return candidates
	}

	soft := rctx.Weather.AvgTemp >= SoftShellTemp
	out := candidates
	for _, cand := range candidates {
		if cand.Outfit.HasLayer(core.LayerOuterwear) {
			continue
		}

		variant := &core.Outfit{OverallStyle: cand.Outfit.OverallStyle}
		variant.Items = append(variant.Items, cand.Outfit.Items...)

		oi := core.NewOutfitItem(shell, len(variant.Items)+1)
		if soft {
			oi.WarmthMultiplier = warmth.SoftShellMultiplier
		}
		variant.Items = append(variant.Items, oi)

		key := variant.Key()
		if seen[key] {
			continue
		}
		seen[key] = true

		vc := core.NewCandidate(variant)
		for k, lbl := range cand.Labels {
			vc.PutLabel(k, lbl)
		}
		vc.PutLabel("rain_shell", utils.Label{
			Value:  fmt.Sprintf("soft=%t", soft),
			Source: "generate",
		})
		out = append(out, vc)
	}
	return out
}

func lightestWaterproofOuterwear(closet []core.ClothingItem) (core.ClothingItem, bool) {
	var best core.ClothingItem
	found := false
	for _, item := range closet {
		if item.LayerCategory != core.LayerOuterwear || !item.Waterproof {
			continue
		}
		if !found || item.WarmthFactor < best.WarmthFactor {
			best = item
			found = true
		}
	}
	return best, found
}

func (g *Generator) layerPoolCap() int {
	if g.LayerPoolCap > 0 {
		return g.LayerPoolCap
	}
	return DefaultLayerPoolCap
}

func (g *Generator) planCandidateCap() int {
	if g.PlanCandidateCap > 0 {
		return g.PlanCandidateCap
	}
	return DefaultPlanCandidateCap
}

func (g *Generator) looseLowSlack() float64 {
	if g.LooseLowSlack > 0 {
		return g.LooseLowSlack
	}
	return DefaultLooseLowSlack
}

func (g *Generator) looseHighSlack() float64 {
	if g.LooseHighSlack > 0 {
		return g.LooseHighSlack
	}
	return DefaultLooseHighSlack
}
