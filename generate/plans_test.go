package generate

import (
	"testing"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

func planKeys(plans []LayerPlan) map[string]bool {
	out := make(map[string]bool, len(plans))
	for _, p := range plans {
		out[p.Key()] = true
	}
	return out
}

func TestBuildLayerPlans(t *testing.T) {
	tests := []struct {
		name      string
		w         core.WeatherSummary
		wantCount int
		wantKeys  []string
	}{
		{
			name:      "warm dry day only core",
			w:         core.WeatherSummary{AvgTemp: 25, MinTemp: 20},
			wantCount: 1,
			wantKeys:  []string{"base_bottom|base_top|footwear"},
		},
		{
			name:      "cool day adds mid layer",
			w:         core.WeatherSummary{AvgTemp: 16, MinTemp: 14},
			wantCount: 2,
			wantKeys:  []string{"base_bottom|base_top|footwear|mid_top"},
		},
		{
			name:      "warm rain adds outerwear plan",
			w:         core.WeatherSummary{AvgTemp: 25, MinTemp: 20, WillRain: true},
			wantCount: 2,
			wantKeys:  []string{"base_bottom|base_top|footwear|outerwear"},
		},
		{
			name:      "cold day has all four plans",
			w:         core.WeatherSummary{AvgTemp: 5, MinTemp: 2},
			wantCount: 4,
			wantKeys: []string{
				"base_bottom|base_top|footwear",
				"base_bottom|base_top|footwear|mid_top",
				"base_bottom|base_top|footwear|outerwear",
				"base_bottom|base_top|footwear|mid_top|outerwear",
			},
		},
		{
			name:      "cold rain does not duplicate outerwear plan",
			w:         core.WeatherSummary{AvgTemp: 5, MinTemp: 2, WillRain: true},
			wantCount: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plans := BuildLayerPlans(tt.w)
			if len(plans) != tt.wantCount {
				t.Fatalf("got %d plans, want %d", len(plans), tt.wantCount)
			}
			keys := planKeys(plans)
			for _, k := range tt.wantKeys {
				if !keys[k] {
					t.Errorf("missing plan %q", k)
				}
			}
		})
	}
}

func TestLayerPlanKeyOrderIndependent(t *testing.T) {
	a := LayerPlan{Layers: []core.LayerCategory{core.LayerBaseTop, core.LayerFootwear}}
	b := LayerPlan{Layers: []core.LayerCategory{core.LayerFootwear, core.LayerBaseTop}}
	if a.Key() != b.Key() {
		t.Errorf("keys differ: %q vs %q", a.Key(), b.Key())
	}
}
