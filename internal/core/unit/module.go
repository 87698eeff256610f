package unit

import (
	"context"
	"time"

	"go.uber.org/fx"

	"github.com/devprodest/go-eventbus/config"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
)

// Config 执行单元运行时配置
type Config struct {
	// ShutdownTimeout 关闭时等待单元退出的上限
	ShutdownTimeout time.Duration
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		ShutdownTimeout: 10 * time.Second,
	}
}

// ConfigFromUnified 从统一配置创建运行时配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		ShutdownTimeout: cfg.Scheduler.ShutdownTimeout.Duration(),
	}
}

// Params 运行时依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Notifier   pkgif.Notifier
}

// Result 运行时输出结果
type Result struct {
	fx.Out

	Runtime  pkgif.UnitRegistry
	Resolver pkgif.IdentityResolver
}

// Module 是 unit 的 Fx 模块
var Module = fx.Module("unit",
	fx.Provide(NewFromParams),
	fx.Invoke(registerLifecycle),
)

// NewFromParams 从参数创建执行单元运行时
func NewFromParams(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	rt := NewRuntime(p.Notifier, cfg.ShutdownTimeout)
	return Result{
		Runtime:  rt,
		Resolver: rt,
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC      fx.Lifecycle
	Runtime pkgif.UnitRegistry
}

// registerLifecycle 注册生命周期
//
// 运行时在应用停止时关闭，聚合的单元退出错误向上冒泡。
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return input.Runtime.Close()
		},
	})
}
