package notify

import (
	"go.uber.org/fx"

	"github.com/devprodest/go-eventbus/config"
	"github.com/devprodest/go-eventbus/internal/core/metrics"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
)

// Config 挂起原语配置
type Config struct {
	// Slots 每单元的通知槽数量
	Slots int
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Slots: 8,
	}
}

// ConfigFromUnified 从统一配置创建挂起原语配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		Slots: cfg.Scheduler.NotifySlots,
	}
}

// Params 挂起原语依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Recorder   metrics.Recorder
}

// Result 挂起原语输出结果
type Result struct {
	fx.Out

	Notifier pkgif.Notifier
}

// Module 是 notify 的 Fx 模块
var Module = fx.Module("notify",
	fx.Provide(NewFromParams),
)

// NewFromParams 从参数创建通知槽行表
func NewFromParams(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	return Result{
		Notifier: NewSignalTable(cfg.Slots, nil, p.Recorder),
	}
}
