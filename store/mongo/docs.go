package mongo

import (
	"time"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

// 文档结构与领域结构分离：bson 标签只出现在这里，
// core 包不感知存储格式。

type clothingItemDoc struct {
	ID             string   `bson:"_id"`
	OwnerID        string   `bson:"ownerId"`
	LayerCategory  string   `bson:"layerCategory"`
	Style          string   `bson:"style"`
	Category       string   `bson:"category"`
	Material       string   `bson:"material,omitempty"`
	ColorHex       string   `bson:"colorHex,omitempty"`
	DominantColors []string `bson:"dominantColors,omitempty"`
	WarmthFactor   float64  `bson:"warmthFactor"`
	Waterproof     bool     `bson:"waterproof"`
	Filename       string   `bson:"filename,omitempty"`
}

func (d clothingItemDoc) toDomain() core.ClothingItem {
	return core.ClothingItem{
		ID:             d.ID,
		OwnerID:        d.OwnerID,
		LayerCategory:  core.LayerCategory(d.LayerCategory),
		Style:          core.Style(d.Style),
		Category:       d.Category,
		Material:       d.Material,
		ColorHex:       d.ColorHex,
		DominantColors: d.DominantColors,
		WarmthFactor:   d.WarmthFactor,
		Waterproof:     d.Waterproof,
		Filename:       d.Filename,
	}
}

type preferenceDoc struct {
	UserID          string   `bson:"userId"`
	Style           string   `bson:"style,omitempty"`
	PreferredColors []string `bson:"preferredColors,omitempty"`
}

func (d preferenceDoc) toDomain() *core.Preferences {
	return &core.Preferences{
		Style:           core.Style(d.Style),
		PreferredColors: d.PreferredColors,
	}
}

type ratedOutfitDoc struct {
	UserID       string            `bson:"userId"`
	Items        []clothingItemDoc `bson:"items"`
	UserRating   *float64          `bson:"userRating"`
	OverallStyle string            `bson:"overallStyle"`
	WarmthRating float64           `bson:"warmthRating"`
	Waterproof   bool              `bson:"waterproof"`
	Weather      weatherDoc        `bson:"weather"`
	CreatedAt    time.Time         `bson:"createdAt"`
}

type weatherDoc struct {
	AvgTemp  float64 `bson:"avgTemp"`
	MinTemp  float64 `bson:"minTemp"`
	MaxTemp  float64 `bson:"maxTemp"`
	WillRain bool    `bson:"willRain"`
}

func (d ratedOutfitDoc) toDomain() core.RatedOutfit {
	items := make([]core.ClothingItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, it.toDomain())
	}
	return core.RatedOutfit{
		UserID:       d.UserID,
		Items:        items,
		Rating:       d.UserRating,
		OverallStyle: core.Style(d.OverallStyle),
		WarmthRating: d.WarmthRating,
		Waterproof:   d.Waterproof,
		Weather: core.WeatherSummary{
			AvgTemp:  d.Weather.AvgTemp,
			MinTemp:  d.Weather.MinTemp,
			MaxTemp:  d.Weather.MaxTemp,
			WillRain: d.Weather.WillRain,
		},
		CreatedAt: d.CreatedAt,
	}
}
