package rank

import (
	"context"
	"math"
	"testing"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

func TestPredictKnn(t *testing.T) {
	tests := []struct {
		name    string
		query   []float64
		history []core.RatingPoint
		k       int
		want    float64
	}{
		{
			name:  "no history falls back to global default",
			query: []float64{1, 0},
			want:  3.0,
		},
		{
			name:  "aligned neighbor dominates",
			query: []float64{1, 0},
			history: []core.RatingPoint{
				{Vec: []float64{1, 0}, Rating: 5},
				{Vec: []float64{0, 1}, Rating: 1},
			},
			k:    2,
			want: 5, // mean 3 + (1*(5-3) + 0*(1-3)) / 1
		},
		{
			name:  "all zero similarity falls back to history mean",
			query: []float64{1, 0},
			history: []core.RatingPoint{
				{Vec: []float64{0, 0}, Rating: 4},
				{Vec: []float64{0, 0}, Rating: 2},
			},
			k:    2,
			want: 3,
		},
		{
			name:  "k truncates to nearest neighbors",
			query: []float64{1, 0},
			history: []core.RatingPoint{
				{Vec: []float64{1, 0}, Rating: 5},
				{Vec: []float64{1, 0.01}, Rating: 5},
				{Vec: []float64{0, 1}, Rating: 1},
			},
			k:    1,
			want: 11.0 / 3.0 + (5 - 11.0/3.0), // mean + full correction of the single neighbor
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictKnn(tt.query, tt.history, tt.k)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("PredictKnn() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKnnNodeProcess(t *testing.T) {
	node := &KnnNode{
		History: []core.RatingPoint{
			{Vec: []float64{1, 0}, Rating: 5},
			{Vec: []float64{0, 1}, Rating: 1},
		},
		K: 2,
	}

	cand := core.NewCandidate(&core.Outfit{})
	cand.Vector = []float64{1, 0}

	out, err := node.Process(context.Background(), &core.RecommendContext{}, []*core.Candidate{cand})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(out[0].KnnScore-5) > 1e-9 {
		t.Errorf("KnnScore = %v, want 5", out[0].KnnScore)
	}
}

func TestKnnNodeDefaultK(t *testing.T) {
	n := &KnnNode{}
	if n.k() != DefaultKnnK {
		t.Errorf("k() = %d, want %d", n.k(), DefaultKnnK)
	}
}
