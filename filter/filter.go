package filter

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// Filter 是候选过滤器的抽象接口，用于判断一个候选穿搭是否应该被剔除。
// 返回 true 表示应该过滤（移除），false 表示保留。
type Filter interface {
	// Name 返回过滤器名称
	Name() string

	// ShouldFilter 判断候选是否应该被过滤
	ShouldFilter(ctx context.Context, rctx *core.RecommendContext, cand *core.Candidate) (bool, error)
}
