package config

import (
	"errors"
	"fmt"
)

// ValidateAll 验证整个配置的有效性
//
// 这是 Config.Validate() 的别名，提供更明确的语义。
// 它会递归验证所有子配置以及子配置之间的容量约束。
func ValidateAll(c *Config) error {
	if c == nil {
		return errors.New("config is nil")
	}
	return c.Validate()
}

// ValidateAndFix 验证配置并尝试自动修复常见问题
//
// 该函数会：
//  1. 检查配置有效性
//  2. 对于某些可修复的问题，自动应用修复
//  3. 返回修复后的配置或错误
//
// 可修复的问题示例：
//   - 事件数量或槽深度非正 -> 使用默认值
//   - 通知槽数量小于事件数量 -> 提升到事件数量
//   - 事件名称多于事件数量 -> 截断
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return NewConfig(), nil
	}

	// 事件表：修复非正的尺寸
	if c.Bus.EventCount < 1 {
		c.Bus.EventCount = DefaultBusConfig().EventCount
	}
	if c.Bus.SlotDepth < 1 {
		c.Bus.SlotDepth = DefaultBusConfig().SlotDepth
	}

	// 事件表：名称列表不得长于事件数量
	if len(c.Bus.EventNames) > c.Bus.EventCount {
		c.Bus.EventNames = c.Bus.EventNames[:c.Bus.EventCount]
	}

	// 调度：通知槽必须覆盖所有事件索引
	if c.Scheduler.NotifySlots < c.Bus.EventCount {
		c.Scheduler.NotifySlots = c.Bus.EventCount
	}

	// 调度：负的关闭超时回退到默认值
	if c.Scheduler.ShutdownTimeout < 0 {
		c.Scheduler.ShutdownTimeout = DefaultSchedulerConfig().ShutdownTimeout
	}

	// 统计：启用时命名空间不得为空
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsConfig().Namespace
	}

	// 日志：无效的级别或格式回退到默认值
	switch c.Log.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		c.Log.Level = DefaultLogConfig().Level
	}
	switch c.Log.Format {
	case LogFormatText, LogFormatJSON:
	default:
		c.Log.Format = DefaultLogConfig().Format
	}

	// 验证修复后的配置
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed after fixes: %w", err)
	}

	return c, nil
}

// ValidateSubConfig 验证特定子配置
//
// 用于单独验证某个子配置而不验证整个配置树。
type ValidateSubConfig interface {
	Validate() error
}

// MustValidate 验证配置，如果失败则 panic
//
// 仅用于初始化阶段或测试代码。
// 生产代码应使用 Validate() 并处理错误。
func MustValidate(c *Config) {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("config validation failed: %v", err))
	}
}
