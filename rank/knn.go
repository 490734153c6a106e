package rank

import (
	"context"
	"math"
	"sort"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/feature"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

const (
	// DefaultKnnK 是 Item-KNN 的近邻数。
	DefaultKnnK = 5

	// GlobalFallbackRating 是完全无历史时的全局兜底评分。
	GlobalFallbackRating = 3.0
)

// KnnNode 是 Item-KNN 打分 Node：仅使用本人已评分穿搭做预测。
//
// 预测公式（基线修正加权平均）：
//
//	pred = mean + Σ sim·(rating−mean) / Σ|sim|
//
// 无历史 → 全局兜底 3.0；Σ|sim|=0 → 历史均值。
type KnnNode struct {
	// History 是本人历史评分点快照（请求前取齐）。
	History []core.RatingPoint

	// K ≤0 时使用默认近邻数。
	K int
}

func (n *KnnNode) Name() string        { return "score.knn" }
func (n *KnnNode) Kind() pipeline.Kind { return pipeline.KindScore }

func (n *KnnNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		if cand.Vector == nil && cand.Outfit != nil && rctx != nil {
			cand.Vector = feature.OutfitVector(cand.Outfit, rctx.Weather)
		}
		cand.KnnScore = PredictKnn(cand.Vector, n.History, n.k())
		cand.PutLabel("knn", utils.Label{Value: "item-knn", Source: "score"})
	}
	return candidates, nil
}

func (n *KnnNode) k() int {
	if n.K > 0 {
		return n.K
	}
	return DefaultKnnK
}

// PredictKnn 对单个查询向量做 Item-KNN 评分预测。
func PredictKnn(queryVec []float64, history []core.RatingPoint, k int) float64 {
	if len(history) == 0 {
		return GlobalFallbackRating
	}

	var mean float64
	for _, p := range history {
		mean += p.Rating
	}
	mean /= float64(len(history))

	type neighbor struct {
		sim    float64
		rating float64
	}
	neighbors := make([]neighbor, 0, len(history))
	for _, p := range history {
		neighbors = append(neighbors, neighbor{
			sim:    feature.CosineSimilarity(queryVec, p.Vec),
			rating: p.Rating,
		})
	}
	sort.SliceStable(neighbors, func(i, j int) bool { return neighbors[i].sim > neighbors[j].sim })
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}

	var num, den float64
	for _, nb := range neighbors {
		num += nb.sim * (nb.rating - mean)
		den += math.Abs(nb.sim)
	}
	if den == 0 {
		return mean
	}
	return mean + num/den
}
