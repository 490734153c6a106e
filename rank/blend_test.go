package rank

import (
	"context"
	"math"
	"testing"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

func TestBlendWeightsNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   BlendWeights
		want BlendWeights
	}{
		{
			name: "already normalized",
			in:   BlendWeights{Rule: 0.40, Knn: 0.25, Cf: 0.35},
			want: BlendWeights{Rule: 0.40, Knn: 0.25, Cf: 0.35},
		},
		{
			name: "scaled down to unit sum",
			in:   BlendWeights{Rule: 2, Knn: 1, Cf: 1},
			want: BlendWeights{Rule: 0.5, Knn: 0.25, Cf: 0.25},
		},
		{
			name: "zero sum falls back",
			in:   BlendWeights{},
			want: BlendWeights{Rule: 0.25, Knn: 0.35, Cf: 0.40},
		},
		{
			name: "negative sum falls back",
			in:   BlendWeights{Rule: -1, Knn: 0.5, Cf: 0.2},
			want: BlendWeights{Rule: 0.25, Knn: 0.35, Cf: 0.40},
		},
		{
			name: "nan falls back",
			in:   BlendWeights{Rule: math.NaN(), Knn: 0.5, Cf: 0.5},
			want: BlendWeights{Rule: 0.25, Knn: 0.35, Cf: 0.40},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if math.Abs(got.Rule-tt.want.Rule) > 1e-9 ||
				math.Abs(got.Knn-tt.want.Knn) > 1e-9 ||
				math.Abs(got.Cf-tt.want.Cf) > 1e-9 {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
			sum := got.Rule + got.Knn + got.Cf
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("normalized sum = %v, want 1", sum)
			}
		})
	}
}

func TestBlendNodeProcess(t *testing.T) {
	cand := core.NewCandidate(&core.Outfit{})
	cand.RuleScore = 1
	cand.KnnScore = 2
	cand.CfScore = 4

	node := &BlendNode{Weights: BlendWeights{Rule: 0.5, Knn: 0.25, Cf: 0.25}}
	out, err := node.Process(context.Background(), nil, []*core.Candidate{cand})
	if err != nil {
		t.Fatal(err)
	}

	want := 0.5*1 + 0.25*2 + 0.25*4
	if math.Abs(out[0].FinalScore-want) > 1e-9 {
		t.Errorf("FinalScore = %v, want %v", out[0].FinalScore, want)
	}
}
