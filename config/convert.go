package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FromJSON 从 JSON 数据创建配置
//
// 支持从 JSON 文件或字符串加载配置。
// JSON 格式与 Config 结构体一一对应。
//
// 示例 JSON:
//
//	{
//	  "bus": {"event_count": 16, "slot_depth": 5},
//	  "scheduler": {"notify_slots": 16},
//	  "metrics": {"enabled": true}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// FromYAML 从 YAML 数据创建配置
//
// YAML 格式与 Config 结构体一一对应。
//
// 示例 YAML:
//
//	bus:
//	  event_count: 16
//	  slot_depth: 5
//	scheduler:
//	  notify_slots: 16
func FromYAML(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

// FromFile 从配置文件创建配置
//
// 根据文件扩展名选择解析器：
//   - ".json": JSON 格式
//   - ".yaml" / ".yml": YAML 格式
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".json":
		return FromJSON(data)
	case ".yaml", ".yml":
		return FromYAML(data)
	default:
		return nil, fmt.Errorf("unsupported config file extension: %s", filepath.Ext(path))
	}
}

// ToJSON 将配置序列化为 JSON
//
// 输出带缩进的 JSON，便于写入配置文件。
func ToJSON(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// ApplyPreset 应用预设配置
//
// Preset 提供了针对不同规模优化的配置组合。
// 该函数将预设应用到配置上。
//
// 支持的预设：
//   - "small": 小型应用（少量事件，低订阅压力）
//   - "default": 默认规模
//   - "large": 大型应用（事件多、订阅者多）
func ApplyPreset(cfg *Config, presetName string) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	switch presetName {
	case "small":
		return applySmallPreset(cfg)
	case "default":
		return applyDefaultPreset(cfg)
	case "large":
		return applyLargePreset(cfg)
	case "":
		// 空预设，不做任何操作
		return nil
	default:
		return fmt.Errorf("unknown preset: %s", presetName)
	}
}

// applySmallPreset 应用小型预设
//
// 小型配置优化：
//   - 少量事件（4 个）
//   - 浅订阅槽（每事件 3 个订阅者）
//   - 禁用统计，降低常驻开销
func applySmallPreset(cfg *Config) error {
	cfg.Bus.EventCount = 4
	cfg.Bus.SlotDepth = 3

	cfg.Scheduler.NotifySlots = 4

	cfg.Metrics.Enabled = false

	return nil
}

// applyDefaultPreset 应用默认预设
func applyDefaultPreset(_ *Config) error {
	// 使用默认配置（已经针对常见规模优化）
	return nil
}

// applyLargePreset 应用大型预设
//
// 大型配置优化：
//   - 更多事件（32 个）
//   - 更深的订阅槽（每事件 8 个订阅者）
//   - 启用统计
func applyLargePreset(cfg *Config) error {
	cfg.Bus.EventCount = 32
	cfg.Bus.SlotDepth = 8

	cfg.Scheduler.NotifySlots = 32

	cfg.Metrics.Enabled = true

	return nil
}

// MergeConfigs 合并多个配置
//
// 将多个配置合并为一个，后面的配置会完全覆盖前面的配置。
// 用于实现配置的分层覆盖（默认配置 -> 预设配置 -> 用户配置）。
//
// 合并策略：后者完全覆盖前者
//   - 如果需要逐字段合并，请在调用前手动处理
//   - nil 配置会被跳过
func MergeConfigs(configs ...*Config) (*Config, error) {
	if len(configs) == 0 {
		return NewConfig(), nil
	}

	// 从第一个非 nil 配置开始
	var result *Config
	for _, cfg := range configs {
		if cfg != nil {
			// 后者完全覆盖前者
			result = cfg
		}
	}

	if result == nil {
		return NewConfig(), nil
	}

	return result, nil
}

// CloneConfig 克隆配置
//
// 创建配置的深拷贝，用于安全地修改配置而不影响原始配置。
func CloneConfig(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}

	cloned := &Config{
		Bus:       cfg.Bus,
		Scheduler: cfg.Scheduler,
		Metrics:   cfg.Metrics,
		Log:       cfg.Log,
	}

	// 切片字段需要单独拷贝
	if cfg.Bus.EventNames != nil {
		cloned.Bus.EventNames = make([]string, len(cfg.Bus.EventNames))
		copy(cloned.Bus.EventNames, cfg.Bus.EventNames)
	}

	return cloned
}

// ConvertForComponent 为特定组件转换配置
//
// 各个组件可能需要特定格式的配置，该函数提供转换功能。
func ConvertForComponent(cfg *Config, component string) (interface{}, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	switch component {
	case "bus":
		return cfg.Bus, nil
	case "scheduler":
		return cfg.Scheduler, nil
	case "metrics":
		return cfg.Metrics, nil
	case "log":
		return cfg.Log, nil
	default:
		return nil, fmt.Errorf("unknown component: %s", component)
	}
}
