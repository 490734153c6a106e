package rank

import (
	"context"
	"fmt"
	"math"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

// BlendWeights 是三路打分的融合权重。
type BlendWeights struct {
	Rule float64 `json:"rule" yaml:"rule"`
	Knn  float64 `json:"knn" yaml:"knn"`
	Cf   float64 `json:"cf" yaml:"cf"`
}

// DefaultBlendWeights 返回默认融合权重。
func DefaultBlendWeights() BlendWeights {
	return BlendWeights{Rule: 0.40, Knn: 0.25, Cf: 0.35}
}

// fallbackBlendWeights 在配置权重不可用时启用。
func fallbackBlendWeights() BlendWeights {
	return BlendWeights{Rule: 0.25, Knn: 0.35, Cf: 0.40}
}

// Normalize 将权重归一化到和为 1；权重和非正或非有限时退回兜底权重。
func (w BlendWeights) Normalize() BlendWeights {
	sum := w.Rule + w.Knn + w.Cf
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fallbackBlendWeights()
	}
	return BlendWeights{Rule: w.Rule / sum, Knn: w.Knn / sum, Cf: w.Cf / sum}
}

// BlendNode 把规则分、KNN 分、协同过滤分按归一化权重融合为 FinalScore。
type BlendNode struct {
	Weights BlendWeights
}

func (n *BlendNode) Name() string        { return "score.blend" }
func (n *BlendNode) Kind() pipeline.Kind { return pipeline.KindScore }

func (n *BlendNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	w := n.Weights.Normalize()
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		cand.FinalScore = w.Rule*cand.RuleScore + w.Knn*cand.KnnScore + w.Cf*cand.CfScore
		cand.PutLabel("blend", utils.Label{
			Value:  fmt.Sprintf("rule=%.2f knn=%.2f cf=%.2f", w.Rule, w.Knn, w.Cf),
			Source: "score",
		})
	}
	return candidates, nil
}
