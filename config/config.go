// Package config 提供推荐引擎的 YAML 配置加载。
//
// 所有字段都有合理默认值：零值配置即可运行，
// 配置文件只需覆盖想调整的部分。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EngineConfig 是推荐引擎的完整配置。
type EngineConfig struct {
	// Blend 是三路打分的融合权重（加载后会归一化）。
	Blend BlendConfig `yaml:"blend"`

	// Knn 是 Item-KNN 打分参数。
	Knn KnnConfig `yaml:"knn"`

	// Cf 是协同过滤参数。
	Cf CfConfig `yaml:"cf"`

	// Generate 是候选生成参数。
	Generate GenerateConfig `yaml:"generate"`

	// Select 是多样性选取参数。
	Select SelectConfig `yaml:"select"`

	// ExcludeExprs 是 CEL 排除表达式，命中的候选会被剔除。
	ExcludeExprs []string `yaml:"exclude_exprs"`

	// Cache 是推荐结果缓存配置。
	Cache CacheConfig `yaml:"cache"`
}

type BlendConfig struct {
	Rule float64 `yaml:"rule"`
	Knn  float64 `yaml:"knn"`
	Cf   float64 `yaml:"cf"`
}

type KnnConfig struct {
	K int `yaml:"k"`
}

type CfConfig struct {
	PoolSize          int `yaml:"pool_size"`
	Neighbors         int `yaml:"neighbors"`
	PointK            int `yaml:"point_k"`
	MinNeighborPoints int `yaml:"min_neighbor_points"`
}

type GenerateConfig struct {
	LayerPoolCap     int     `yaml:"layer_pool_cap"`
	PlanCandidateCap int     `yaml:"plan_candidate_cap"`
	LooseLowSlack    float64 `yaml:"loose_low_slack"`
	LooseHighSlack   float64 `yaml:"loose_high_slack"`
}

type SelectConfig struct {
	MaxResults int `yaml:"max_results"`
	ClusterCap int `yaml:"cluster_cap"`
}

type CacheConfig struct {
	// Enabled 为 true 时启用结果缓存。
	Enabled bool `yaml:"enabled"`

	// TTLSeconds 是缓存过期时间，≤0 时取默认 3600。
	TTLSeconds int `yaml:"ttl_seconds"`

	// RedisAddr 非空时使用 Redis 后端，否则使用内存后端。
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
}

// Default 返回全部字段取默认值的配置。
func Default() *EngineConfig {
	return &EngineConfig{
		Blend: BlendConfig{Rule: 0.40, Knn: 0.25, Cf: 0.35},
		Knn:   KnnConfig{K: 5},
		Cf: CfConfig{
			PoolSize:          3000,
			Neighbors:         20,
			PointK:            50,
			MinNeighborPoints: 2,
		},
		Generate: GenerateConfig{
			LayerPoolCap:     5,
			PlanCandidateCap: 100,
			LooseLowSlack:    0.75,
			LooseHighSlack:   1.25,
		},
		Select: SelectConfig{MaxResults: 5, ClusterCap: 10},
		Cache:  CacheConfig{TTLSeconds: 3600},
	}
}

// Load 从 YAML 文件加载配置，未出现的字段保持默认值。
func Load(path string) (*EngineConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse 从 YAML 字节解析配置，未出现的字段保持默认值。
func Parse(raw []byte) (*EngineConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}
