package pipeline

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// Pipeline 是推荐核心的顶层抽象：把推荐逻辑拆成可组合的 Node 链
// （Generate → Filter → Score → ReRank → PostProcess）。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	cur := candidates
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
