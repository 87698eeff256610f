// Package config 提供统一的配置管理
package config

import (
	"fmt"
	"time"
)

// SchedulerConfig 执行单元宿主配置
//
// 执行单元宿主负责单元的创建、身份分配和挂起原语（等待/唤醒）。
type SchedulerConfig struct {
	// NotifySlots 每个执行单元的通知槽数量
	// 每个事件索引占用一个通知槽，因此必须不小于 Bus.EventCount。
	// 默认值: 8
	NotifySlots int `json:"notify_slots" yaml:"notify_slots"`

	// ShutdownTimeout 关闭时等待单元退出的最长时间
	// 超时后 Close 返回错误，但不再阻塞。
	// 默认值: 10s
	ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// DefaultSchedulerConfig 返回默认的执行单元宿主配置
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		NotifySlots:     8,
		ShutdownTimeout: Duration(10 * time.Second),
	}
}

// Validate 验证执行单元宿主配置的有效性
func (c *SchedulerConfig) Validate() error {
	if c.NotifySlots < 1 || c.NotifySlots > MaxEventCount {
		return fmt.Errorf("notify slots must be in [1, %d], got %d", MaxEventCount, c.NotifySlots)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("shutdown timeout must not be negative, got %s", c.ShutdownTimeout)
	}
	return nil
}

// WithNotifySlots 设置通知槽数量
func (c SchedulerConfig) WithNotifySlots(n int) SchedulerConfig {
	c.NotifySlots = n
	return c
}
