package metrics

import (
	"go.uber.org/fx"

	"github.com/devprodest/go-eventbus/config"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// Config 统计模块配置
type Config struct {
	// Enabled 是否启用统计收集
	Enabled bool

	// EventCount 事件数量（决定事件级计数器规模）
	EventCount int

	// EventNames 事件命名表
	EventNames types.EventNames

	// Namespace Prometheus 命名空间
	Namespace string

	// Subsystem Prometheus 子系统
	Subsystem string
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		EventCount: 8,
		Namespace:  "eventbus",
		Subsystem:  "bus",
	}
}

// ConfigFromUnified 从统一配置创建统计配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		Enabled:    cfg.Metrics.Enabled,
		EventCount: cfg.Bus.EventCount,
		EventNames: types.EventNames(cfg.Bus.EventNames),
		Namespace:  cfg.Metrics.Namespace,
		Subsystem:  cfg.Metrics.Subsystem,
	}
}

// Params 统计模块依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
}

// Result 统计模块输出结果
type Result struct {
	fx.Out

	// Counter 统计禁用时为 nil，仅供采集器装配使用
	Counter  *BusCounter
	Recorder Recorder
	Reporter pkgif.StatsReporter
}

// Module 是 metrics 的 Fx 模块
var Module = fx.Module("metrics",
	fx.Provide(NewFromParams),
)

// NewFromParams 从参数创建统计组件
//
// 统计禁用时输出 Nop，记录路径上的调用方无需判空。
func NewFromParams(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	if !cfg.Enabled {
		return Result{
			Counter:  nil,
			Recorder: Nop{},
			Reporter: Nop{},
		}
	}
	counter := NewBusCounter(cfg.EventCount, cfg.EventNames)
	return Result{
		Counter:  counter,
		Recorder: counter,
		Reporter: counter,
	}
}
