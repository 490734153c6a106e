package filter

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/dsl"
)

// ExprFilter 基于 CEL 表达式剔除候选：任一表达式命中即过滤。
// 表达式语法见 pkg/dsl。典型用法是在配置中声明排除规则，例如
// `weather.will_rain && !outfit.waterproof`。
type ExprFilter struct {
	Exprs []string
}

func (f *ExprFilter) Name() string {
	return "filter.expr"
}

func (f *ExprFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if len(f.Exprs) == 0 || cand == nil {
		return false, nil
	}
	eval := dsl.NewEval(cand, rctx)
	for _, expr := range f.Exprs {
		if expr == "" {
			continue
		}
		hit, err := eval.Evaluate(expr)
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}
