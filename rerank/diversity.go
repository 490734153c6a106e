package rerank

import (
	"context"
	"strconv"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

const (
	// DefaultMaxResults 是最终返回的候选数上限。
	DefaultMaxResults = 5

	// DefaultClusterCap 是聚类数上限。
	DefaultClusterCap = 10

	// DefaultKMeansIterations 是 k-means 的固定迭代轮次。
	DefaultKMeansIterations = 10
)

// DiversityNode 是多样性选取 ReRank 节点：
// 对候选特征向量做 k-means 聚类，按簇序各取簇内 FinalScore 最高者，
// 取满上限为止，不做全局重排。
//
// 下雨时若存在整套防水的候选，则先收缩到防水候选再聚类。
type DiversityNode struct {
	// MaxResults ≤0 时使用默认上限。
	MaxResults int

	// ClusterCap ≤0 时使用默认聚类数上限。
	ClusterCap int
}

func (n *DiversityNode) Name() string {
	return "rerank.diversity"
}

func (n *DiversityNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *DiversityNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	pool := candidates
	if rctx != nil && rctx.Weather.WillRain {
		if wp := waterproofOnly(candidates); len(wp) > 0 {
			pool = wp
		}
	}

	max := n.MaxResults
	if max <= 0 {
		max = DefaultMaxResults
	}
	clusterCap := n.ClusterCap
	if clusterCap <= 0 {
		clusterCap = DefaultClusterCap
	}

	if len(pool) <= max {
		return pool, nil
	}

	vectors := make([][]float64, len(pool))
	for i, cand := range pool {
		vectors[i] = cand.Vector
	}

	k := clusterCap
	if k > len(pool) {
		k = len(pool)
	}
	assign := kMeans(vectors, k, DefaultKMeansIterations)

	// 每簇取 FinalScore 最高的候选
	bestByCluster := make([]int, k)
	for c := range bestByCluster {
		bestByCluster[c] = -1
	}
	for i, c := range assign {
		if bestByCluster[c] < 0 || pool[i].FinalScore > pool[bestByCluster[c]].FinalScore {
			bestByCluster[c] = i
		}
	}

	out := make([]*core.Candidate, 0, max)
	for c := 0; c < k && len(out) < max; c++ {
		idx := bestByCluster[c]
		if idx < 0 {
			continue
		}
		cand := pool[idx]
		cand.PutLabel("cluster", utils.Label{Value: strconv.Itoa(c), Source: "rerank"})
		out = append(out, cand)
	}
	return out, nil
}

func waterproofOnly(candidates []*core.Candidate) []*core.Candidate {
	out := make([]*core.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		if cand != nil && cand.Outfit != nil && cand.Outfit.Waterproof() {
			out = append(out, cand)
		}
	}
	return out
}

