// Package rank 实现三路打分信号（规则 / Item-KNN / 协同过滤）及其融合。
package rank

import (
	"context"
	"math"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/feature"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/warmth"
)

// 规则分各项权重。
const (
	harmonyWeight   = 1.0
	prefColorWeight = 2.0
	warmthWeight    = 3.0
	rainBonus       = 2.0
	whitePenalty    = 2.0

	// warmthDecayDivisor 控制超出容差后的平滑衰减速度：exp(−excess²/50)。
	warmthDecayDivisor = 50.0

	// inToleranceBoost 是加权保暖度落在容差内的奖励值。
	inToleranceBoost = 1.25
)

// RuleNode 是规则打分 Node：配色和谐度、偏好配色命中、保暖匹配、
// 雨天防水奖励与近白惩罚。写入 RuleScore 并顺带填充特征向量。
type RuleNode struct{}

func (n *RuleNode) Name() string        { return "score.rule" }
func (n *RuleNode) Kind() pipeline.Kind { return pipeline.KindScore }

func (n *RuleNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if rctx == nil || len(candidates) == 0 {
		return candidates, nil
	}

	target := warmth.TargetWarmth(rctx.Weather)
	tol := warmth.Tolerance(rctx.Weather)

	for _, cand := range candidates {
		if cand == nil || cand.Outfit == nil {
			continue
		}
		// 特征向量在此一次性构建，后续 KNN/CF/聚类直接复用
		if cand.Vector == nil {
			cand.Vector = feature.OutfitVector(cand.Outfit, rctx.Weather)
		}
		cand.RuleScore = scoreOutfit(cand.Outfit, rctx, target, tol)
		cand.PutLabel("rule_scored", utils.Label{Value: "true", Source: "score"})
	}
	return candidates, nil
}

func scoreOutfit(o *core.Outfit, rctx *core.RecommendContext, target, tol float64) float64 {
	colors := o.Colors()

	score := harmonyWeight * feature.ColorHarmony(colors)
	score += prefColorWeight * float64(preferredHits(colors, rctx.PreferredColors))
	score += warmthWeight * warmthTerm(warmth.OutfitWarmth(o), target, tol)

	if rctx.Weather.WillRain && o.Waterproof() {
		score += rainBonus
	}
	for _, hex := range colors {
		if feature.IsNearWhite(hex) {
			score -= whitePenalty
			break
		}
	}
	return score
}

// warmthTerm 是保暖匹配项：容差内取固定奖励，否则按超出量平滑衰减，
// 永不为负、渐近于 0。
func warmthTerm(weighted, target, tol float64) float64 {
	delta := math.Abs(weighted - target)
	if delta <= tol {
		return inToleranceBoost
	}
	excess := delta - tol
	return math.Exp(-(excess * excess) / warmthDecayDivisor)
}

func preferredHits(colors, preferred []string) int {
	if len(preferred) == 0 {
		return 0
	}
	prefSet := make(map[string]bool, len(preferred))
	for _, p := range preferred {
		prefSet[p] = true
	}
	hits := 0
	for _, c := range colors {
		if prefSet[c] {
			hits++
		}
	}
	return hits
}
