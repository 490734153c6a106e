package dsl

import (
	"fmt"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/COS301-SE-2025/Weather-to-Wear-sub001/core"
)

var (
	// celEnv 是全局的 CEL 环境，线程安全，可复用
	celEnv     *cel.Env
	celEnvOnce sync.Once
)

// initCELEnv 初始化 CEL 环境，定义变量和函数
func initCELEnv() (*cel.Env, error) {
	env, err := cel.NewEnv(
		cel.Variable("outfit", cel.DynType),
		cel.Variable("label", cel.DynType),
		cel.Variable("weather", cel.DynType),
		cel.Variable("rctx", cel.DynType),
	)
	return env, err
}

// getCELEnv 获取或创建 CEL 环境
func getCELEnv() (*cel.Env, error) {
	var err error
	celEnvOnce.Do(func() {
		celEnv, err = initCELEnv()
	})
	return celEnv, err
}

// Eval 是候选过滤 DSL 解释器，使用 CEL (Common Expression Language) 实现。
//
// 表达式语法（CEL 标准语法）：
//   - 基础：outfit.style == "Athletic" / outfit.waterproof == false
//   - 数值：outfit.warmth > 20.0 / weather.avg_temp < 5.0
//   - 逻辑：weather.will_rain && !outfit.waterproof
//   - 存在性：label.rain_addon != null
//
// 示例：
//   - `outfit.layers.size() > 4` → 层数超过 4 的候选
//   - `weather.will_rain && !outfit.waterproof` → 下雨且整套不防水
type Eval struct {
	cand *core.Candidate
	rctx *core.RecommendContext
	env  *cel.Env
}

// NewEval 创建一个新的 DSL 解释器。
func NewEval(cand *core.Candidate, rctx *core.RecommendContext) *Eval {
	env, _ := getCELEnv()
	return &Eval{
		cand: cand,
		rctx: rctx,
		env:  env,
	}
}

// Evaluate 解析并执行 DSL 表达式，返回布尔结果。
// 空表达式视为恒真。
func (e *Eval) Evaluate(expr string) (bool, error) {
	if expr == "" {
		return true, nil
	}

	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return false, fmt.Errorf("compile error: %v", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return false, fmt.Errorf("program error: %v", err)
	}

	out, _, err := prg.Eval(e.buildInput())
	if err != nil {
		// 访问不存在的 key 时 CEL 会报错；
		// 表达式应当用 label.key != null 检查存在性。
		return false, fmt.Errorf("eval error: %v", err)
	}

	result, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression must return boolean, got %T", out.Value())
	}

	return result, nil
}

// buildInput 构建 CEL 表达式的输入数据
func (e *Eval) buildInput() map[string]interface{} {
	labels := make(map[string]interface{})
	labelAccessor := make(map[string]interface{})
	for k, v := range e.cand.Labels {
		labels[k] = map[string]interface{}{
			"value":  v.Value,
			"source": v.Source,
		}
		labelAccessor[k] = v.Value
	}

	layers := make([]string, 0)
	var style string
	var waterproof bool
	if e.cand.Outfit != nil {
		for l := range e.cand.Outfit.Layers() {
			layers = append(layers, string(l))
		}
		style = string(e.cand.Outfit.OverallStyle)
		waterproof = e.cand.Outfit.Waterproof()
	}

	outfit := map[string]interface{}{
		"style":       style,
		"waterproof":  waterproof,
		"layers":      layers,
		"rule_score":  e.cand.RuleScore,
		"final_score": e.cand.FinalScore,
		"labels":      labels,
	}

	weather := map[string]interface{}{}
	rctx := map[string]interface{}{}
	if e.rctx != nil {
		weather = map[string]interface{}{
			"avg_temp":  e.rctx.Weather.AvgTemp,
			"min_temp":  e.rctx.Weather.MinTemp,
			"max_temp":  e.rctx.Weather.MaxTemp,
			"will_rain": e.rctx.Weather.WillRain,
		}
		rctx = map[string]interface{}{
			"user_id": e.rctx.UserID,
			"style":   string(e.rctx.Style),
			"params":  e.rctx.Params,
		}
	}

	return map[string]interface{}{
		"outfit":  outfit,
		"label":   labelAccessor,
		"weather": weather,
		"rctx":    rctx,
	}
}
