package filter

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

// FilterNode 是过滤 Node，可以组合多个过滤器。
// 如果任何一个过滤器返回 true，该候选就会被剔除。
type FilterNode struct {
	Filters []Filter
}

func (n *FilterNode) Name() string {
	return "filter.node"
}

func (n *FilterNode) Kind() pipeline.Kind {
	return pipeline.KindFilter
}

func (n *FilterNode) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	if len(n.Filters) == 0 || len(candidates) == 0 {
		return candidates, nil
	}

	out := make([]*core.Candidate, 0, len(candidates))

	for _, cand := range candidates {
		if cand == nil {
			continue
		}

		shouldFilter := false
		filterReason := ""

		// 依次检查每个过滤器
		for _, f := range n.Filters {
			ok, err := f.ShouldFilter(ctx, rctx, cand)
			if err != nil {
				// 过滤器错误时记录但不中断流程
				continue
			}
			if ok {
				shouldFilter = true
				filterReason = f.Name()
				break
			}
		}

		if shouldFilter {
			cand.PutLabel("filtered", utils.Label{
				Value:  "true",
				Source: filterReason,
			})
			continue
		}

		out = append(out, cand)
	}

	return out, nil
}
