package core

import (
	"math/rand"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

// RecommendContext 承载用户/天气/偏好信息，贯穿整个 Pipeline 透传。
//
// 并发模型：一次请求一个 Context，所有外部快照在生成前取齐并视为不可变；
// 链路内不共享可变状态，因此无需加锁。
type RecommendContext struct {
	UserID string

	// Weather 是本次请求的天气聚合，由调用方提供。
	Weather WeatherSummary

	// Style 是解析后的目标风格（请求参数 → 用户偏好 → Casual）。
	Style Style

	// PreferredColors 是用户偏好配色；偏好缺失时为空。
	PreferredColors []string

	// Rand 驱动生成阶段的随机采样。为 nil 时各节点退化为确定性行为
	// （不采样、保留前 N），便于测试复现。
	Rand *rand.Rand

	// Labels 是请求级标签，可驱动整个 Pipeline 行为
	// （例如：无历史用户、降级来源标记）。
	Labels map[string]utils.Label

	// Params 请求级上下文参数（eventId、调试开关等）。
	Params map[string]any
}

// PutLabel 写入请求级 Label。
func (rctx *RecommendContext) PutLabel(key string, lbl utils.Label) {
	if rctx.Labels == nil {
		rctx.Labels = make(map[string]utils.Label)
	}
	if old, ok := rctx.Labels[key]; ok {
		rctx.Labels[key] = utils.MergeLabel(old, lbl)
		return
	}
	rctx.Labels[key] = lbl
}

// GetLabel 获取请求级 Label。
func (rctx *RecommendContext) GetLabel(key string) (utils.Label, bool) {
	if rctx.Labels == nil {
		return utils.Label{}, false
	}
	lbl, ok := rctx.Labels[key]
	return lbl, ok
}

// Shuffle 打乱副本并返回；Rand 为 nil 时原样返回（确定性模式）。
func Shuffle[T any](rctx *RecommendContext, in []T) []T {
	if rctx == nil || rctx.Rand == nil {
		return in
	}
	out := make([]T, len(in))
	copy(out, in)
	rctx.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample 随机抽取至多 n 个元素；Rand 为 nil 时保留前 n 个。
func Sample[T any](rctx *RecommendContext, in []T, n int) []T {
	if len(in) <= n {
		return in
	}
	return Shuffle(rctx, in)[:n]
}
