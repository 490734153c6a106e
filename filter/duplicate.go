package filter

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// DuplicateFilter 按物品组合键剔除重复候选。
// 生成阶段本身会去重；该过滤器用于多路生成合并后的兜底。
type DuplicateFilter struct {
	seen map[string]struct{}
}

func NewDuplicateFilter() *DuplicateFilter {
	return &DuplicateFilter{seen: make(map[string]struct{})}
}

func (f *DuplicateFilter) Name() string {
	return "filter.duplicate"
}

func (f *DuplicateFilter) ShouldFilter(
	_ context.Context,
	_ *core.RecommendContext,
	cand *core.Candidate,
) (bool, error) {
	if cand == nil || cand.Outfit == nil {
		return false, nil
	}
	key := cand.Outfit.Key()
	if _, ok := f.seen[key]; ok {
		return true, nil
	}
	f.seen[key] = struct{}{}
	return false, nil
}
