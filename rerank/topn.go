package rerank

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
)

// TopNNode 是一个 Top-N 截断节点，用于在打分后截取前 N 个候选。
// 通常在打分（Score）节点之后、聚类选取之前使用，控制候选规模。
type TopNNode struct {
	// N 要保留的候选数量（Top N）
	// 如果 N <= 0，则返回所有候选（不截断）
	N int
}

func (n *TopNNode) Name() string {
	return "rerank.topn"
}

func (n *TopNNode) Kind() pipeline.Kind {
	return pipeline.KindReRank
}

func (n *TopNNode) Process(
	_ context.Context,
	_ *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if n.N <= 0 {
		return candidates, nil
	}
	if len(candidates) <= n.N {
		return candidates, nil
	}
	return candidates[:n.N], nil
}
