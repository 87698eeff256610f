// Package config 提供统一的配置管理
package config

import "fmt"

// 事件表容量的硬性上限
//
// 事件表在构建时一次性分配（EventCount × SlotDepth 个槽位），
// 上限用于拦截明显错误的配置值。
const (
	// MaxEventCount 事件数量上限
	MaxEventCount = 65536

	// MaxSlotDepth 单事件订阅槽深度上限
	MaxSlotDepth = 64
)

// BusConfig 事件表配置
//
// 事件表是一张静态表：每个事件标识对应一组固定容量的订阅槽。
// 表的尺寸在构建时确定，运行期不再变化。
type BusConfig struct {
	// EventCount 事件数量
	// 合法的事件标识范围为 [0, EventCount)
	// 默认值: 8
	EventCount int `json:"event_count" yaml:"event_count"`

	// SlotDepth 每个事件的订阅槽数量
	// 即单个事件允许的最大并发订阅者数
	// 默认值: 5
	SlotDepth int `json:"slot_depth" yaml:"slot_depth"`

	// EventNames 事件的可读名称（可选）
	// 按事件标识顺序排列，用于日志和统计标签。
	// 未命名的事件使用 "evt-<n>" 形式。
	// 默认值: nil
	EventNames []string `json:"event_names,omitempty" yaml:"event_names,omitempty"`
}

// DefaultBusConfig 返回默认的事件表配置
func DefaultBusConfig() BusConfig {
	return BusConfig{
		EventCount: 8,
		SlotDepth:  5,
		EventNames: nil,
	}
}

// Validate 验证事件表配置的有效性
func (c *BusConfig) Validate() error {
	if c.EventCount < 1 || c.EventCount > MaxEventCount {
		return fmt.Errorf("event count must be in [1, %d], got %d", MaxEventCount, c.EventCount)
	}
	if c.SlotDepth < 1 || c.SlotDepth > MaxSlotDepth {
		return fmt.Errorf("slot depth must be in [1, %d], got %d", MaxSlotDepth, c.SlotDepth)
	}
	if len(c.EventNames) > c.EventCount {
		return fmt.Errorf("event names (%d) exceed event count (%d)", len(c.EventNames), c.EventCount)
	}
	return nil
}

// WithEventCount 设置事件数量
func (c BusConfig) WithEventCount(n int) BusConfig {
	c.EventCount = n
	return c
}

// WithSlotDepth 设置订阅槽深度
func (c BusConfig) WithSlotDepth(n int) BusConfig {
	c.SlotDepth = n
	return c
}

// WithEventNames 设置事件名称列表
func (c BusConfig) WithEventNames(names []string) BusConfig {
	c.EventNames = names
	return c
}
