// Package outfitrec 是一个穿搭推荐引擎（Outfit Recommender）。
//
// 设计要点：
// - Pipeline-first: 推荐逻辑通过 Node 串联（Generate → Filter → Score → ReRank）
// - Labels-first: labels 全链路透传与标准化 merge，支持 explain / 观测 / 策略驱动
// - Node 可扩展: 自定义 Node 即可插拔扩展（生成、打分与重排均可替换）
package outfitrec

import "github.com/COS301-SE-2025/Weather-to-Wear-sub001/pipeline"

// 轻量 facade：便于用户直接 import 根包使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind

const (
	KindGenerate    = pipeline.KindGenerate
	KindFilter      = pipeline.KindFilter
	KindScore       = pipeline.KindScore
	KindReRank      = pipeline.KindReRank
	KindPostProcess = pipeline.KindPostProcess
)
