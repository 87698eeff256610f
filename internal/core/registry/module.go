package registry

import (
	"go.uber.org/fx"

	"github.com/devprodest/go-eventbus/config"
	"github.com/devprodest/go-eventbus/internal/core/metrics"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Config 登记表配置
type Config struct {
	// EventCount 事件数量
	EventCount int

	// SlotDepth 每事件的订阅槽数量
	SlotDepth int

	// EventNames 事件命名表
	EventNames types.EventNames
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		EventCount: 8,
		SlotDepth:  5,
	}
}

// ConfigFromUnified 从统一配置创建登记表配置
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return Config{
		EventCount: cfg.Bus.EventCount,
		SlotDepth:  cfg.Bus.SlotDepth,
		EventNames: types.EventNames(cfg.Bus.EventNames),
	}
}

// Params 登记表依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
	Notifier   pkgif.Notifier
	Resolver   pkgif.IdentityResolver
	Recorder   metrics.Recorder
}

// Result 登记表输出结果
type Result struct {
	fx.Out

	Registry pkgif.Registry
}

// Module 是 registry 的 Fx 模块
var Module = fx.Module("registry",
	fx.Provide(NewFromParams),
)

// NewFromParams 从参数创建事件登记表
func NewFromParams(p Params) Result {
	cfg := ConfigFromUnified(p.UnifiedCfg)
	return Result{
		Registry: NewRegistry(
			cfg.EventCount, cfg.SlotDepth, cfg.EventNames,
			p.Notifier, p.Resolver, p.Recorder,
		),
	}
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "registry"
	// Description 模块描述
	Description = "事件登记表模块，提供固定容量的订阅槽与推送/等待会合"
)
