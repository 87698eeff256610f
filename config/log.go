// Package config 提供统一的配置管理
package config

import (
	"fmt"
	"log/slog"
)

// 日志级别常量
const (
	// LogLevelDebug 调试级别
	LogLevelDebug = "debug"

	// LogLevelInfo 信息级别
	LogLevelInfo = "info"

	// LogLevelWarn 警告级别
	LogLevelWarn = "warn"

	// LogLevelError 错误级别
	LogLevelError = "error"
)

// 日志格式常量
const (
	// LogFormatText 文本格式（人类可读）
	LogFormatText = "text"

	// LogFormatJSON JSON 格式（日志采集友好）
	LogFormatJSON = "json"
)

// LogConfig 日志配置
//
// 配置总线内部日志的级别与输出格式。
// 输出目标的重定向由应用层通过 pkg/lib/log 处理。
type LogConfig struct {
	// Level 日志级别
	// 可选值: "debug" / "info" / "warn" / "error"
	// 默认值: "info"
	Level string `json:"level" yaml:"level"`

	// Format 日志输出格式
	// 可选值: "text" / "json"
	// 默认值: "text"
	Format string `json:"format" yaml:"format"`
}

// DefaultLogConfig 返回默认的日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  LogLevelInfo,
		Format: LogFormatText,
	}
}

// Validate 验证日志配置的有效性
func (c *LogConfig) Validate() error {
	switch c.Level {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("invalid log level: %q", c.Level)
	}

	switch c.Format {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format: %q", c.Format)
	}

	return nil
}

// SlogLevel 返回级别对应的 slog.Level
//
// 未知级别按 Info 处理（Validate 已保证不会出现）。
func (c LogConfig) SlogLevel() slog.Level {
	switch c.Level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithLevel 设置日志级别
func (c LogConfig) WithLevel(level string) LogConfig {
	c.Level = level
	return c
}

// WithFormat 设置日志格式
func (c LogConfig) WithFormat(format string) LogConfig {
	c.Format = format
	return c
}
