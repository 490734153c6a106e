package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/config"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// 结果缓存是旁路优化：读写失败都静默忽略，推荐链路照常执行。

func cacheKey(rctx *core.RecommendContext) string {
	w := rctx.Weather
	return fmt.Sprintf("rec:%s:%s:%.1f:%.1f:%t", rctx.UserID, rctx.Style, w.AvgTemp, w.MinTemp, w.WillRain)
}

func (e *Engine) cacheEnabled(cfg *config.EngineConfig) bool {
	return e.Cache != nil && cfg.Cache.Enabled
}

func (e *Engine) cacheGet(ctx context.Context, cfg *config.EngineConfig, rctx *core.RecommendContext) ([]core.Recommendation, bool) {
	if !e.cacheEnabled(cfg) {
		return nil, false
	}
	raw, err := e.Cache.Get(ctx, cacheKey(rctx))
	if err != nil {
		return nil, false
	}
	var out []core.Recommendation
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

func (e *Engine) cacheSet(ctx context.Context, cfg *config.EngineConfig, rctx *core.RecommendContext, recs []core.Recommendation) {
	if !e.cacheEnabled(cfg) {
		return
	}
	raw, err := json.Marshal(recs)
	if err != nil {
		return
	}
	ttl := cfg.Cache.TTLSeconds
	if ttl <= 0 {
		ttl = 3600
	}
	_ = e.Cache.Set(ctx, cacheKey(rctx), raw, ttl)
}
