package eventbus

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/fx"

	"github.com/devprodest/go-eventbus/config"
)

// Option 用户配置选项函数
//
// 选项按传入顺序应用：后面的选项可以覆盖前面选项设置的字段。
// 惯用顺序是先 WithPreset / WithConfig / WithConfigFile 打底，
// 再用细粒度选项覆盖。
type Option func(*options) error

// options 内部选项结构
type options struct {
	// cfg 统一配置
	cfg *config.Config

	// logSet 用户是否显式设置了日志选项
	logSet bool

	// userFxOptions 用户自定义 Fx 选项
	userFxOptions []fx.Option
}

// newOptions 创建默认选项
func newOptions() *options {
	return &options{
		cfg: config.NewConfig(),
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              事件表选项
// ════════════════════════════════════════════════════════════════════════════

// WithEventCount 设置事件数量
//
// 同时确保 Scheduler.NotifySlots 不低于事件数量：每个事件索引
// 对应执行单元的一个通知槽，槽数不足会在 New 时验证失败。
func WithEventCount(count int) Option {
	return func(o *options) error {
		if count < 1 {
			return fmt.Errorf("event count must be positive, got %d", count)
		}
		o.cfg.Bus.EventCount = count
		if o.cfg.Scheduler.NotifySlots < count {
			o.cfg.Scheduler.NotifySlots = count
		}
		return nil
	}
}

// WithSlotDepth 设置每事件的订阅槽深
//
// 槽深决定同一事件最多允许的并存订阅者数。
func WithSlotDepth(depth int) Option {
	return func(o *options) error {
		if depth < 1 {
			return fmt.Errorf("slot depth must be positive, got %d", depth)
		}
		o.cfg.Bus.SlotDepth = depth
		return nil
	}
}

// WithEventNames 设置事件命名表
//
// 名称按事件编号顺序对应（第 i 个名称对应事件 i），用于日志与
// 指标标签。名称数量不得超过事件数量。
func WithEventNames(names ...string) Option {
	return func(o *options) error {
		o.cfg.Bus.EventNames = names
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              调度选项
// ════════════════════════════════════════════════════════════════════════════

// WithNotifySlots 设置每单元的通知槽数量
//
// 必须不小于事件数量（每个事件索引占用一个槽）。
func WithNotifySlots(slots int) Option {
	return func(o *options) error {
		if slots < 1 {
			return fmt.Errorf("notify slots must be positive, got %d", slots)
		}
		o.cfg.Scheduler.NotifySlots = slots
		return nil
	}
}

// WithShutdownTimeout 设置停止时等待单元退出的上限
//
// 零值表示无限等待。
func WithShutdownTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		if timeout < 0 {
			return fmt.Errorf("shutdown timeout must not be negative, got %v", timeout)
		}
		o.cfg.Scheduler.ShutdownTimeout = config.Duration(timeout)
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              统计选项
// ════════════════════════════════════════════════════════════════════════════

// WithMetrics 设置是否启用统计
//
// 禁用后总线不维护计数器，Stats 返回零值快照，
// MetricsCollector 返回 nil。
func WithMetrics(enabled bool) Option {
	return func(o *options) error {
		o.cfg.Metrics.Enabled = enabled
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              日志选项
// ════════════════════════════════════════════════════════════════════════════

// WithLogLevel 设置日志级别
//
// 可选值: "debug" / "info" / "warn" / "error"。
// 设置后 New 会重建全局 logger；未设置时保持进程现有日志配置。
func WithLogLevel(level string) Option {
	return func(o *options) error {
		o.cfg.Log.Level = level
		o.logSet = true
		return nil
	}
}

// WithLogFormat 设置日志输出格式
//
// 可选值: "text" / "json"。
func WithLogFormat(format string) Option {
	return func(o *options) error {
		o.cfg.Log.Format = format
		o.logSet = true
		return nil
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              配置加载选项
// ════════════════════════════════════════════════════════════════════════════

// WithConfig 使用完整配置
//
// 替换当前配置（传入的配置会被克隆）。通常与细粒度选项配合：
// 先 WithConfig 打底，再按需覆盖个别字段。
func WithConfig(cfg *config.Config) Option {
	return func(o *options) error {
		if cfg == nil {
			return errors.New("config must not be nil")
		}
		o.cfg = config.CloneConfig(cfg)
		return nil
	}
}

// WithConfigFile 从配置文件加载
//
// 根据扩展名识别格式（.json / .yaml / .yml）。
func WithConfigFile(path string) Option {
	return func(o *options) error {
		cfg, err := config.FromFile(path)
		if err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
		o.cfg = cfg
		return nil
	}
}

// WithPreset 应用预设配置
//
// 支持的预设名称见 presets.go。
func WithPreset(name string) Option {
	return func(o *options) error {
		return config.ApplyPreset(o.cfg, name)
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              扩展选项
// ════════════════════════════════════════════════════════════════════════════

// WithFxOption 注入用户自定义 Fx 选项
//
// 逃生舱口：向总线的 Fx 应用追加额外的 Provide/Invoke/Decorate。
// 用于测试替身注入或在总线依赖图上挂接自定义组件。
func WithFxOption(opts ...fx.Option) Option {
	return func(o *options) error {
		o.userFxOptions = append(o.userFxOptions, opts...)
		return nil
	}
}
