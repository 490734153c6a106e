// Package engine 是推荐引擎的编排层：
// 并发取齐输入快照，装配 Pipeline，产出最终推荐结果。
package engine

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/config"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/feature"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/filter"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/generate"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/rank"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/rerank"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/warmth"
)

// Engine 持有存储依赖与配置，对外提供 Recommend。
// 一个 Engine 可被并发复用：请求间不共享可变状态。
type Engine struct {
	Closet  core.ClosetStore
	Prefs   core.PreferenceStore
	Ratings core.RatingStore

	// Images 可选：非 nil 时将衣物文件名解析为图片 URL。
	Images core.ImageResolver

	// Cache 可选：非 nil 且配置启用时缓存推荐结果。
	Cache core.Store

	// Config 为 nil 时使用默认配置。
	Config *config.EngineConfig
}

// Request 是一次推荐请求。
type Request struct {
	UserID  string
	Weather core.WeatherSummary

	// Style 可选：为空时回退到用户偏好，再回退到 Casual。
	Style core.Style

	// Rand 可选：驱动生成阶段采样。为 nil 时 Recommend
	// 自动以当前时间播种；注入固定种子可复现同样输出。
	Rand *rand.Rand
}

func New(closet core.ClosetStore, prefs core.PreferenceStore, ratings core.RatingStore) *Engine {
	return &Engine{Closet: closet, Prefs: prefs, Ratings: ratings}
}

// snapshot 是一次请求取齐的全部外部输入。
// 任一来源不可用都降级为空值，绝不中断请求。
type snapshot struct {
	closet  []core.ClothingItem
	prefs   *core.Preferences
	history []core.RatedOutfit
	pool    []core.RatedOutfit
}

// Recommend 产出至多 MaxResults 套推荐穿搭，按多样性簇序排列。
// 空结果是合法输出（衣柜为空或约束过紧时）。
func (e *Engine) Recommend(ctx context.Context, req Request) ([]core.Recommendation, error) {
	if req.UserID == "" {
		return nil, core.NewDomainError(core.ModuleEngine, core.ErrorCodeInvalidInput, "engine: empty user id")
	}
	cfg := e.config()

	snap := e.fetch(ctx, req, cfg)

	style := resolveStyle(req.Style, snap.prefs)
	var preferredColors []string
	if snap.prefs != nil {
		preferredColors = snap.prefs.PreferredColors
	}

	rng := req.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rctx := &core.RecommendContext{
		UserID:          req.UserID,
		Weather:         req.Weather,
		Style:           style,
		PreferredColors: preferredColors,
		Rand:            rng,
	}
	if snap.prefs == nil {
		rctx.PutLabel("prefs", utils.Label{Value: "default", Source: "engine"})
	}

	if cached, ok := e.cacheGet(ctx, cfg, rctx); ok {
		return cached, nil
	}

	history := ratingPoints(snap.history)
	pool := ratingPoints(snap.pool)
	cfModel := rank.BuildCfModel(req.UserID, pool, rank.CfParams{
		Neighbors:         cfg.Cf.Neighbors,
		PointK:            cfg.Cf.PointK,
		MinNeighborPoints: cfg.Cf.MinNeighborPoints,
	})

	p := &pipeline.Pipeline{
		Nodes: []pipeline.Node{
			&generate.Generator{
				Closet:           snap.closet,
				LayerPoolCap:     cfg.Generate.LayerPoolCap,
				PlanCandidateCap: cfg.Generate.PlanCandidateCap,
				LooseLowSlack:    cfg.Generate.LooseLowSlack,
				LooseHighSlack:   cfg.Generate.LooseHighSlack,
			},
			&filter.FilterNode{
				Filters: []filter.Filter{
					filter.NewDuplicateFilter(),
					&filter.ExprFilter{Exprs: cfg.ExcludeExprs},
				},
			},
			&rank.RuleNode{},
			&rank.KnnNode{History: history, K: cfg.Knn.K},
			&rank.CfNode{Model: cfModel},
			&rank.BlendNode{Weights: rank.BlendWeights{
				Rule: cfg.Blend.Rule,
				Knn:  cfg.Blend.Knn,
				Cf:   cfg.Blend.Cf,
			}},
			&rerank.DiversityNode{
				MaxResults: cfg.Select.MaxResults,
				ClusterCap: cfg.Select.ClusterCap,
			},
		},
	}

	selected, err := p.Run(ctx, rctx, nil)
	if err != nil {
		return nil, core.NewDomainErrorWithCause(core.ModuleEngine, core.ErrorCodeInternalError, "engine: pipeline failed", err)
	}

	out := e.decorate(selected, req.Weather)
	e.cacheSet(ctx, cfg, rctx, out)
	return out, nil
}

// fetch 并发取齐四路输入快照。单路失败只降级该路，不影响其余。
func (e *Engine) fetch(ctx context.Context, req Request, cfg *config.EngineConfig) *snapshot {
	snap := &snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := e.Closet.ListItemsOwnedBy(gctx, req.UserID)
		if err == nil {
			snap.closet = items
		}
		return nil
	})
	g.Go(func() error {
		prefs, err := e.Prefs.GetPreferences(gctx, req.UserID)
		if err == nil {
			snap.prefs = prefs
		}
		return nil
	})
	g.Go(func() error {
		history, err := e.Ratings.ListRatedOutfits(gctx, req.UserID)
		if err == nil {
			snap.history = history
		}
		return nil
	})
	g.Go(func() error {
		pool, err := e.Ratings.ListAllRatedOutfits(gctx, cfg.Cf.PoolSize)
		if err == nil {
			snap.pool = pool
		}
		return nil
	})

	// 所有 goroutine 只返回 nil，Wait 仅用作汇合点
	_ = g.Wait()
	return snap
}

// decorate 将选出的候选转换为输出结构，并解析图片 URL。
func (e *Engine) decorate(selected []*core.Candidate, weather core.WeatherSummary) []core.Recommendation {
	out := make([]core.Recommendation, 0, len(selected))
	for _, cand := range selected {
		if cand == nil || cand.Outfit == nil {
			continue
		}
		o := cand.Outfit

		items := make([]core.RecommendedItem, 0, len(o.Items))
		for _, oi := range o.Items {
			url := oi.Item.Filename
			if e.Images != nil {
				url = e.Images.ResolveURL(oi.Item.Filename)
			}
			items = append(items, core.RecommendedItem{
				ClosetItemID:   oi.Item.ID,
				ImageURL:       url,
				LayerCategory:  oi.Item.LayerCategory,
				Category:       oi.Item.Category,
				Style:          oi.Item.Style,
				ColorHex:       oi.Item.ColorHex,
				DominantColors: oi.Item.DominantColors,
				WarmthFactor:   oi.Item.WarmthFactor,
				Waterproof:     oi.Item.Waterproof,
				SortOrder:      oi.SortOrder,
			})
		}

		out = append(out, core.Recommendation{
			Items:        items,
			OverallStyle: o.OverallStyle,
			Score:        cand.FinalScore,
			WarmthRating: core.RoundWarmth(warmth.OutfitWarmth(o)),
			Waterproof:   o.Waterproof(),
			Weather:      weather,
		})
	}
	return out
}

func (e *Engine) config() *config.EngineConfig {
	if e.Config != nil {
		return e.Config
	}
	return config.Default()
}

// resolveStyle 按 请求参数 → 用户偏好 → Casual 的优先级解析目标风格。
func resolveStyle(requested core.Style, prefs *core.Preferences) core.Style {
	if isKnownStyle(requested) {
		return requested
	}
	if prefs != nil && isKnownStyle(prefs.Style) {
		return prefs.Style
	}
	return core.StyleCasual
}

func isKnownStyle(s core.Style) bool {
	for _, known := range core.AllStyles {
		if s == known {
			return true
		}
	}
	return false
}

// ratingPoints 把历史穿搭记录转换为 (用户, 向量, 评分) 三元组，
// 跳过未评分记录，保持输入顺序。
func ratingPoints(rated []core.RatedOutfit) []core.RatingPoint {
	out := make([]core.RatingPoint, 0, len(rated))
	for _, r := range rated {
		if r.Rating == nil {
			continue
		}
		out = append(out, core.RatingPoint{
			UserID: r.UserID,
			Vec:    feature.RatedOutfitVector(r),
			Rating: *r.Rating,
		})
	}
	return out
}
