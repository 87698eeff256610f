// Package config 提供统一的配置管理
//
// 本包采用混合配置模式：
//   - 主 Config 结构体嵌入所有子配置
//   - 每个子配置在独立文件中定义
//   - 支持从 JSON / YAML 加载配置
//   - 支持预设配置（small/default/large）
//
// 使用示例：
//
//	// 创建默认配置
//	cfg := config.NewConfig()
//	cfg.Bus.EventCount = 16
//	cfg.Metrics.Enabled = false
//
//	// 应用预设到现有配置
//	config.ApplyPreset(cfg, "large")
//
//	// 从 JSON 加载
//	cfg, err := config.FromJSON(data)
package config

import "fmt"

// Config 是事件总线的完整配置结构
//
// 该结构体嵌入了所有组件的子配置，提供统一的配置接口。
// 配置按照功能模块组织：
//   - Bus: 事件表（事件数量、槽位深度、事件名称）
//   - Scheduler: 执行单元宿主（通知槽数量、关闭超时）
//   - Metrics: 总线统计与 Prometheus 导出
//   - Log: 日志级别与格式
type Config struct {
	// Bus 事件表配置
	Bus BusConfig `json:"bus" yaml:"bus"`

	// Scheduler 执行单元宿主配置
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`

	// Metrics 统计配置
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	// Log 日志配置
	Log LogConfig `json:"log" yaml:"log"`
}

// NewConfig 创建默认配置
//
// 返回的配置使用所有组件的默认值，适用于大多数场景。
// 可以通过修改字段或使用 Option 函数来定制配置。
func NewConfig() *Config {
	return &Config{
		Bus:       DefaultBusConfig(),
		Scheduler: DefaultSchedulerConfig(),
		Metrics:   DefaultMetricsConfig(),
		Log:       DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
//
// 检查所有子配置是否有效，并校验子配置之间的容量约束。
// 总线启动前必须通过该验证。
func (c *Config) Validate() error {
	if err := c.Bus.Validate(); err != nil {
		return err
	}
	if err := c.Scheduler.Validate(); err != nil {
		return err
	}
	if err := c.Metrics.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}

	// 容量约束：每个事件索引对应执行单元的一个通知槽，
	// 事件数量不得超过单元的通知槽数量。
	// 该约束只在构建前检查一次，运行期不再检查。
	if c.Bus.EventCount > c.Scheduler.NotifySlots {
		return fmt.Errorf("event count (%d) exceeds per-unit notify slots (%d)",
			c.Bus.EventCount, c.Scheduler.NotifySlots)
	}

	return nil
}
