package warmth

import (
	"math"
	"testing"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

func TestReferenceTemp(t *testing.T) {
	tests := []struct {
		name string
		w    core.WeatherSummary
		want float64
	}{
		{
			name: "mild night keeps avg",
			w:    core.WeatherSummary{AvgTemp: 20, MinTemp: 18},
			want: 20,
		},
		{
			name: "cold night pulls reference down",
			w:    core.WeatherSummary{AvgTemp: 20, MinTemp: 10},
			want: 17,
		},
		{
			name: "flat day",
			w:    core.WeatherSummary{AvgTemp: 15, MinTemp: 15},
			want: 15,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReferenceTemp(tt.w)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ReferenceTemp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTargetWarmth(t *testing.T) {
	tests := []struct {
		name string
		w    core.WeatherSummary
		want float64
	}{
		{
			name: "exact table point",
			w:    core.WeatherSummary{AvgTemp: 20, MinTemp: 20},
			want: 10,
		},
		{
			name: "interpolated between 25 and 20",
			w:    core.WeatherSummary{AvgTemp: 22.5, MinTemp: 22.5},
			want: 8.5,
		},
		{
			name: "clamped above table",
			w:    core.WeatherSummary{AvgTemp: 40, MinTemp: 40},
			want: 5,
		},
		{
			name: "clamped below table",
			w:    core.WeatherSummary{AvgTemp: -20, MinTemp: -20},
			want: 32,
		},
		{
			name: "cold night pulls target up",
			w:    core.WeatherSummary{AvgTemp: 20, MinTemp: 10}, // ref = 17
			want: 12.4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TargetWarmth(tt.w)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("TargetWarmth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTolerance(t *testing.T) {
	tests := []struct {
		ref  float64
		want float64
	}{
		{30, 6},
		{28, 6},
		{22, 5},
		{14, 4.5},
		{8, 4},
		{2, 3.5},
		{0, 3},
		{-10, 3},
	}
	for _, tt := range tests {
		// avg == min keeps the reference at avg
		w := core.WeatherSummary{AvgTemp: tt.ref, MinTemp: tt.ref}
		if got := Tolerance(w); got != tt.want {
			t.Errorf("Tolerance(ref=%v) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}

func TestOutfitWarmth(t *testing.T) {
	o := &core.Outfit{Items: []core.OutfitItem{
		core.NewOutfitItem(core.ClothingItem{ID: "a", LayerCategory: core.LayerBaseTop, WarmthFactor: 4}, 1),
		core.NewOutfitItem(core.ClothingItem{ID: "b", LayerCategory: core.LayerOuterwear, WarmthFactor: 5}, 2),
		core.NewOutfitItem(core.ClothingItem{ID: "c", LayerCategory: core.LayerFootwear, WarmthFactor: 2}, 3),
	}}

	want := 4*1.0 + 5*1.6 + 2*0.4
	if got := OutfitWarmth(o); math.Abs(got-want) > 1e-9 {
		t.Errorf("OutfitWarmth() = %v, want %v", got, want)
	}
}

func TestOutfitWarmthSoftShell(t *testing.T) {
	shell := core.NewOutfitItem(core.ClothingItem{ID: "b", LayerCategory: core.LayerOuterwear, WarmthFactor: 5}, 2)
	shell.WarmthMultiplier = SoftShellMultiplier

	o := &core.Outfit{Items: []core.OutfitItem{
		core.NewOutfitItem(core.ClothingItem{ID: "a", LayerCategory: core.LayerBaseTop, WarmthFactor: 4}, 1),
		shell,
	}}

	want := 4*1.0 + 5*1.6*0.4
	if got := OutfitWarmth(o); math.Abs(got-want) > 1e-9 {
		t.Errorf("OutfitWarmth() with soft shell = %v, want %v", got, want)
	}
}

func TestMinLayerWarmth(t *testing.T) {
	cold := core.WeatherSummary{AvgTemp: 8, MinTemp: 5}
	cool := core.WeatherSummary{AvgTemp: 18, MinTemp: 14}
	warm := core.WeatherSummary{AvgTemp: 26, MinTemp: 21}

	tests := []struct {
		name  string
		layer core.LayerCategory
		w     core.WeatherSummary
		want  float64
	}{
		{"cold outerwear", core.LayerOuterwear, cold, 7},
		{"cold mid top", core.LayerMidTop, cold, 5},
		{"cold base", core.LayerBaseTop, cold, 4},
		{"cool outerwear", core.LayerOuterwear, cool, 5},
		{"cool base", core.LayerBaseBottom, cool, 2},
		{"warm disables gates", core.LayerOuterwear, warm, 1},
		{"accessory always open", core.LayerAccessory, cold, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinLayerWarmth(tt.layer, tt.w); got != tt.want {
				t.Errorf("MinLayerWarmth(%s) = %v, want %v", tt.layer, got, tt.want)
			}
		})
	}
}

func TestLayerWeightUnknownLayer(t *testing.T) {
	if got := LayerWeight(core.LayerCategory("unknown")); got != 1.0 {
		t.Errorf("LayerWeight(unknown) = %v, want 1.0", got)
	}
}
