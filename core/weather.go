package core

// WeatherSummary 是调用方随请求提供的天气聚合，仅在单次请求内有效。
type WeatherSummary struct {
	AvgTemp  float64 `json:"avgTemp" yaml:"avg_temp"`
	MinTemp  float64 `json:"minTemp" yaml:"min_temp"`
	MaxTemp  float64 `json:"maxTemp" yaml:"max_temp"`
	WillRain bool    `json:"willRain" yaml:"will_rain"`
}
