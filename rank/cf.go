package rank

import (
	"context"
	"math"
	"sort"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/feature"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"
	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/pkg/utils"
)

const (
	// DefaultCfPoolSize 是协同过滤取用的全局评分池上限（按时间倒序截断）。
	DefaultCfPoolSize = 3000

	// DefaultCfNeighbors 是相似用户（质心）的选取上限。
	DefaultCfNeighbors = 20

	// DefaultCfPointK 是预测时参与加权的邻居评分点上限。
	DefaultCfPointK = 50

	// DefaultCfMinNeighborPoints 是邻居用户质心参选所需的最少高分样本数。
	DefaultCfMinNeighborPoints = 2

	// CfTasteThreshold 以上的评分才参与用户口味质心。
	CfTasteThreshold = 4.0
)

// userCentroid 是单个用户高分穿搭向量的口味质心。
type userCentroid struct {
	userID string
	vec    []float64
	count  int
}

// CfModel 是一次请求内构建的协同过滤模型：
// 口味质心 + 相似用户的评分点。构建后只读。
type CfModel struct {
	globalMean    float64
	hasOwnTaste   bool
	neighborSims  map[string]float64
	neighborPoint []core.RatingPoint
	pointK        int
}

// CfNode 是 user-user 协同过滤打分 Node。
type CfNode struct {
	Model *CfModel
}

func (n *CfNode) Name() string        { return "score.cf" }
func (n *CfNode) Kind() pipeline.Kind { return pipeline.KindScore }

func (n *CfNode) Process(
	_ context.Context,
	rctx *core.RecommendContext,
	candidates []*core.Candidate,
) ([]*core.Candidate, error) {
	for _, cand := range candidates {
		if cand == nil {
			continue
		}
		if cand.Vector == nil && cand.Outfit != nil && rctx != nil {
			cand.Vector = feature.OutfitVector(cand.Outfit, rctx.Weather)
		}
		cand.CfScore = n.Model.Predict(cand.Vector)
		cand.PutLabel("cf", utils.Label{Value: "user-cf", Source: "score"})
	}
	return candidates, nil
}

// CfParams 控制协同过滤模型的构建。零值字段取默认。
type CfParams struct {
	Neighbors         int
	PointK            int
	MinNeighborPoints int
}

func (p CfParams) neighbors() int {
	if p.Neighbors > 0 {
		return p.Neighbors
	}
	return DefaultCfNeighbors
}

func (p CfParams) pointK() int {
	if p.PointK > 0 {
		return p.PointK
	}
	return DefaultCfPointK
}

func (p CfParams) minNeighborPoints() int {
	if p.MinNeighborPoints > 0 {
		return p.MinNeighborPoints
	}
	return DefaultCfMinNeighborPoints
}

// BuildCfModel 从全局评分池构建当前用户的协同过滤模型。
// pool 应按时间倒序、且已截断到池上限。
func BuildCfModel(userID string, pool []core.RatingPoint, params CfParams) *CfModel {
	model := &CfModel{pointK: params.pointK()}
	if len(pool) == 0 {
		model.globalMean = GlobalFallbackRating
		return model
	}

	var sum float64
	for _, p := range pool {
		sum += p.Rating
	}
	model.globalMean = sum / float64(len(pool))

	// 逐用户累加高分向量，得到口味质心。
	centroidByUser := map[string]*userCentroid{}
	order := make([]string, 0)
	for _, p := range pool {
		if p.Rating < CfTasteThreshold || len(p.Vec) == 0 {
			continue
		}
		c, ok := centroidByUser[p.UserID]
		if !ok {
			c = &userCentroid{userID: p.UserID, vec: make([]float64, len(p.Vec))}
			centroidByUser[p.UserID] = c
			order = append(order, p.UserID)
		}
		for i := range c.vec {
			if i < len(p.Vec) {
				c.vec[i] += p.Vec[i]
			}
		}
		c.count++
	}
	for _, c := range centroidByUser {
		for i := range c.vec {
			c.vec[i] /= float64(c.count)
		}
	}

	own, ok := centroidByUser[userID]
	if !ok {
		return model
	}
	model.hasOwnTaste = true

	type scored struct {
		c   *userCentroid
		sim float64
	}
	minPoints := params.minNeighborPoints()
	cands := make([]scored, 0, len(order))
	for _, uid := range order {
		c := centroidByUser[uid]
		if c.userID == userID || c.count < minPoints {
			continue
		}
		cands = append(cands, scored{c: c, sim: feature.CosineSimilarity(own.vec, c.vec)})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].sim > cands[j].sim })
	if len(cands) > params.neighbors() {
		cands = cands[:params.neighbors()]
	}

	model.neighborSims = make(map[string]float64, len(cands))
	for _, s := range cands {
		model.neighborSims[s.c.userID] = s.sim
	}
	for _, p := range pool {
		if _, ok := model.neighborSims[p.UserID]; ok {
			model.neighborPoint = append(model.neighborPoint, p)
		}
	}
	return model
}

// Predict 返回候选穿搭在相似用户群中的预测评分。
// 无本人口味质心或无邻居样本时退回全局均值。
func (m *CfModel) Predict(queryVec []float64) float64 {
	if m == nil {
		return GlobalFallbackRating
	}
	if !m.hasOwnTaste || len(m.neighborPoint) == 0 {
		return m.globalMean
	}

	type neighbor struct {
		sim    float64
		rating float64
	}
	sims := make([]neighbor, 0, len(m.neighborPoint))
	for _, p := range m.neighborPoint {
		s := feature.CosineSimilarity(queryVec, p.Vec)
		if s > 0 {
			sims = append(sims, neighbor{sim: s, rating: p.Rating})
		}
	}
	if len(sims) == 0 {
		return m.globalMean
	}
	sort.SliceStable(sims, func(i, j int) bool { return sims[i].sim > sims[j].sim })
	if len(sims) > m.pointK {
		sims = sims[:m.pointK]
	}

	var mean float64
	for _, s := range sims {
		mean += s.rating
	}
	mean /= float64(len(sims))

	var num, den float64
	for _, s := range sims {
		num += s.sim * (s.rating - mean)
		den += math.Abs(s.sim)
	}
	if den == 0 {
		return mean
	}
	pred := mean + num/den
	if math.IsNaN(pred) || math.IsInf(pred, 0) {
		return m.globalMean
	}
	return pred
}
