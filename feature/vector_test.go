package feature

import (
	"math"
	"testing"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical vectors", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"parallel vectors", []float64{1, 0}, []float64{2, 0}, 1},
		{"orthogonal vectors", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite vectors", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"both empty", nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorHarmony(t *testing.T) {
	tests := []struct {
		name  string
		hexes []string
		want  float64
	}{
		{"no colors", nil, 0},
		{"single color", []string{"#ff0000"}, 0},
		{"same hue twice", []string{"#ff0000", "#ff0000"}, 0},
		{"red and green", []string{"#ff0000", "#00ff00"}, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorHarmony(tt.hexes)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("ColorHarmony() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNearWhite(t *testing.T) {
	tests := []struct {
		hex  string
		want bool
	}{
		{"#ffffff", true},
		{"#fefefe", true},
		{"#000000", false},
		{"#ff0000", false},
		{"not-a-color", false},
	}
	for _, tt := range tests {
		if got := IsNearWhite(tt.hex); got != tt.want {
			t.Errorf("IsNearWhite(%q) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestOutfitVector(t *testing.T) {
	o := &core.Outfit{
		OverallStyle: core.StyleCasual,
		Items: []core.OutfitItem{
			core.NewOutfitItem(core.ClothingItem{ID: "a", LayerCategory: core.LayerBaseTop, WarmthFactor: 2, ColorHex: "#ff0000", Waterproof: true}, 1),
		},
	}
	w := core.WeatherSummary{AvgTemp: 20, MinTemp: 15}

	vec := OutfitVector(o, w)
	if len(vec) != VectorDim {
		t.Fatalf("vector length = %d, want %d", len(vec), VectorDim)
	}
	if vec[0] != 20 || vec[1] != 15 {
		t.Errorf("temperature dims = [%v %v], want [20 15]", vec[0], vec[1])
	}
	if vec[3] != 1 {
		t.Errorf("waterproof dim = %v, want 1", vec[3])
	}

	// one-hot: Casual is the second style in the fixed order
	for i, s := range core.AllStyles {
		want := 0.0
		if s == core.StyleCasual {
			want = 1.0
		}
		if vec[5+i] != want {
			t.Errorf("style dim %s = %v, want %v", s, vec[5+i], want)
		}
	}
}

func TestRatedOutfitVectorMatchesOutfitVector(t *testing.T) {
	item := core.ClothingItem{ID: "a", LayerCategory: core.LayerBaseTop, WarmthFactor: 2, ColorHex: "#2244aa"}
	w := core.WeatherSummary{AvgTemp: 18, MinTemp: 12}

	o := &core.Outfit{OverallStyle: core.StyleFormal, Items: []core.OutfitItem{core.NewOutfitItem(item, 1)}}
	live := OutfitVector(o, w)

	rated := RatedOutfitVector(core.RatedOutfit{
		Items:        []core.ClothingItem{item},
		OverallStyle: core.StyleFormal,
		WarmthRating: live[2],
		Weather:      w,
	})

	if len(live) != len(rated) {
		t.Fatalf("length mismatch: %d vs %d", len(live), len(rated))
	}
	for i := range live {
		if math.Abs(live[i]-rated[i]) > 1e-9 {
			t.Errorf("dim %d: live=%v rated=%v", i, live[i], rated[i])
		}
	}
}
