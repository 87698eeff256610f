// Package config 提供统一的配置管理
package config

import "errors"

// MetricsConfig 统计配置
//
// 配置总线统计功能，支持按事件分类统计推送和等待结果。
type MetricsConfig struct {
	// Enabled 是否启用统计
	// 禁用后总线不维护任何计数器，Stats 返回零值快照。
	// 默认值: true
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Namespace Prometheus 指标的命名空间前缀
	// 默认值: "eventbus"
	Namespace string `json:"namespace" yaml:"namespace"`

	// Subsystem Prometheus 指标的子系统前缀
	// 默认值: "bus"
	Subsystem string `json:"subsystem" yaml:"subsystem"`
}

// DefaultMetricsConfig 返回默认的统计配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled:   true,
		Namespace: "eventbus",
		Subsystem: "bus",
	}
}

// Validate 验证统计配置的有效性
func (c *MetricsConfig) Validate() error {
	if c.Enabled && c.Namespace == "" {
		return errors.New("metrics namespace must not be empty when metrics are enabled")
	}
	return nil
}

// WithEnabled 设置是否启用统计
func (c MetricsConfig) WithEnabled(enabled bool) MetricsConfig {
	c.Enabled = enabled
	return c
}

// WithNamespace 设置指标命名空间
func (c MetricsConfig) WithNamespace(ns string) MetricsConfig {
	c.Namespace = ns
	return c
}
