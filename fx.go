package eventbus

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/devprodest/go-eventbus/config"
	"github.com/devprodest/go-eventbus/pkg/lib/log"

	// Core Layer
	"github.com/devprodest/go-eventbus/internal/core/metrics"
	"github.com/devprodest/go-eventbus/internal/core/notify"
	"github.com/devprodest/go-eventbus/internal/core/registry"
	"github.com/devprodest/go-eventbus/internal/core/unit"

	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
)

// buildFxApp 构建 Fx 应用
//
// 组装所有内部模块，采用条件加载策略：
//   - 核心模块：必须加载（Metrics, Notify, Unit, Registry）
//   - 条件模块：根据配置加载（Prometheus 采集器）
//   - 扩展模块：用户自定义 Fx 选项
//
// 加载顺序（按依赖）：
//  1. Metrics → Notify → Unit → Registry
//  2. Prometheus 采集器（统计启用时）
//  3. 用户扩展 → Bus 组件注入

var fxLogger = log.Logger("eventbus/fx")

func buildFxApp(o *options, bus *Bus) (*fx.App, error) {
	// ════════════════════════════════════════════════════════════════════════
	// 1. 配置验证（前置）
	// ════════════════════════════════════════════════════════════════════════
	if err := o.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 2. 核心模块（必须加载）
	// ════════════════════════════════════════════════════════════════════════
	modules := []fx.Option{
		// 配置注入
		fx.Supply(o.cfg),

		// 基础组件（必须）
		metrics.Module,  // 统计计数
		notify.Module,   // 挂起原语
		unit.Module,     // 执行单元运行时
		registry.Module, // 事件登记表
	}

	// ════════════════════════════════════════════════════════════════════════
	// 3. Prometheus 采集器（条件加载）
	// ════════════════════════════════════════════════════════════════════════
	if o.cfg.Metrics.Enabled {
		modules = append(modules, fx.Provide(provideCollector(o.cfg)))
	}

	// ════════════════════════════════════════════════════════════════════════
	// 4. 用户扩展（Fx Options）
	// ════════════════════════════════════════════════════════════════════════
	if len(o.userFxOptions) > 0 {
		modules = append(modules, o.userFxOptions...)
	}

	// ════════════════════════════════════════════════════════════════════════
	// 5. Bus 组件注入
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules, fx.Invoke(injectBusComponents(bus)))

	// ════════════════════════════════════════════════════════════════════════
	// 6. Fx 配置
	// ════════════════════════════════════════════════════════════════════════
	modules = append(modules,
		// 禁用 Fx 日志输出（避免干扰用户日志）
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: zap.NewNop()}
		}),
		fx.NopLogger,
	)

	// 组件在 fx.New 阶段即完成装配（Invoke 在构造期执行），
	// 因此 New 之后、Start 之前登记表操作已可用。
	app := fx.New(modules...)
	if err := app.Err(); err != nil {
		return nil, fmt.Errorf("assemble components: %w", err)
	}
	return app, nil
}

// ════════════════════════════════════════════════════════════════════════════
// 组件注入辅助函数
// ════════════════════════════════════════════════════════════════════════════

// busInjectParams Bus 组件注入参数
type busInjectParams struct {
	fx.In

	// 核心组件（必需）
	Registry pkgif.Registry      // 事件登记表
	Runtime  pkgif.UnitRegistry  // 执行单元运行时
	Reporter pkgif.StatsReporter // 统计报告

	// 可选组件
	Collector *metrics.Collector `optional:"true"` // Prometheus 采集器
}

// injectBusComponents 创建 Bus 组件注入函数
//
// 使用统一的注入结构，所有可选组件通过 optional:"true" 标签处理
func injectBusComponents(bus *Bus) interface{} {
	return func(params busInjectParams) {
		// 核心组件
		bus.registry = params.Registry
		bus.runtime = params.Runtime
		bus.reporter = params.Reporter

		// 可选组件
		bus.collector = params.Collector

		fxLogger.Debug("总线组件已注入",
			"hasCollector", params.Collector != nil)
	}
}

// ════════════════════════════════════════════════════════════════════════════
// 采集器装配
// ════════════════════════════════════════════════════════════════════════════

// provideCollector 提供 Prometheus 采集器
//
// 仅当统计启用时注册；计数器为 nil（统计被运行期关闭）时返回 nil，
// 注入端按可选组件处理。
func provideCollector(cfg *config.Config) func(counter *metrics.BusCounter) *metrics.Collector {
	return func(counter *metrics.BusCounter) *metrics.Collector {
		if counter == nil {
			return nil
		}
		return metrics.NewCollector(counter, cfg.Metrics.Namespace, cfg.Metrics.Subsystem)
	}
}
