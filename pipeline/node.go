package pipeline

import (
	"context"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// Kind 用于标记 Node 类型，方便观测/治理/编排（例如按阶段打点）。
type Kind string

const (
	KindGenerate    Kind = "generate"    // 生成阶段：装配候选穿搭
	KindFilter      Kind = "filter"      // 过滤阶段：剔除不符合约束的候选
	KindScore       Kind = "score"       // 打分阶段：规则分 / KNN / CF / 融合
	KindReRank      Kind = "rerank"      // 重排阶段：聚类多样性 / 截断
	KindPostProcess Kind = "postprocess" // 后处理阶段：图片 URL 等结果修饰
)

// Node 是 Pipeline 的最小可扩展单元。
// 统一采用"输入 candidates -> 输出 candidates"的形态，方便生成阶段产出、
// 过滤阶段截断、重排阶段挑选代表等操作。
type Node interface {
	Name() string
	Kind() Kind

	Process(
		ctx context.Context,
		rctx *core.RecommendContext,
		candidates []*core.Candidate,
	) ([]*core.Candidate, error)
}
