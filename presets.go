package eventbus

import (
	"github.com/devprodest/go-eventbus/config"
)

// ════════════════════════════════════════════════════════════════════════════
//                              预设配置常量
// ════════════════════════════════════════════════════════════════════════════

// 预设名称常量
const (
	// PresetNameSmall 小型预设名称
	PresetNameSmall = "small"

	// PresetNameDefault 默认预设名称
	PresetNameDefault = "default"

	// PresetNameLarge 大型预设名称
	PresetNameLarge = "large"
)

// ════════════════════════════════════════════════════════════════════════════
//                              预设配置获取
// ════════════════════════════════════════════════════════════════════════════

// GetSmallConfig 获取小型配置
//
// 适用场景：测试环境、少量事件的小型状态机
// 特点：
//   - 4 个事件，每事件 3 个订阅槽
//   - 关闭统计
//
// 示例：
//
//	cfg := eventbus.GetSmallConfig()
func GetSmallConfig() *config.Config {
	cfg := config.NewConfig()
	_ = config.ApplyPreset(cfg, PresetNameSmall)
	return cfg
}

// GetDefaultConfig 获取默认配置
//
// 适用场景：常规服务内部的事件通知
// 特点：
//   - 8 个事件，每事件 5 个订阅槽
//   - 启用统计
//
// 示例：
//
//	cfg := eventbus.GetDefaultConfig()
func GetDefaultConfig() *config.Config {
	return config.NewConfig()
}

// GetLargeConfig 获取大型配置
//
// 适用场景：事件种类多、订阅者密集的大型应用
// 特点：
//   - 32 个事件，每事件 8 个订阅槽
//   - 启用统计
//
// 示例：
//
//	cfg := eventbus.GetLargeConfig()
func GetLargeConfig() *config.Config {
	cfg := config.NewConfig()
	_ = config.ApplyPreset(cfg, PresetNameLarge)
	return cfg
}

// GetConfigByPreset 根据预设名称获取配置
//
// 支持的预设名称：
//   - "small"   - 小型配置
//   - "default" - 默认配置
//   - "large"   - 大型配置
//
// 如果名称未知，返回默认配置。
//
// 示例：
//
//	cfg := eventbus.GetConfigByPreset("large")
func GetConfigByPreset(name string) *config.Config {
	switch name {
	case PresetNameSmall:
		return GetSmallConfig()
	case PresetNameDefault:
		return GetDefaultConfig()
	case PresetNameLarge:
		return GetLargeConfig()
	default:
		// 默认返回常规配置
		return GetDefaultConfig()
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              预设应用
// ════════════════════════════════════════════════════════════════════════════

// ApplyPresetToConfig 将预设应用到现有配置
//
// 这会修改传入的配置，而不是创建新配置。
// 用于在已有配置基础上应用预设。
//
// 示例：
//
//	cfg := config.NewConfig()
//	eventbus.ApplyPresetToConfig(cfg, "large")
func ApplyPresetToConfig(cfg *config.Config, presetName string) error {
	return config.ApplyPreset(cfg, presetName)
}

// ════════════════════════════════════════════════════════════════════════════
//                              预设列表
// ════════════════════════════════════════════════════════════════════════════

// PresetInfo 预设信息
type PresetInfo struct {
	// Name 预设名称
	Name string

	// Description 预设描述
	Description string

	// UseCase 适用场景
	UseCase string
}

// AvailablePresets 返回所有可用预设的信息
//
// 示例：
//
//	for _, preset := range eventbus.AvailablePresets() {
//	    fmt.Printf("%s: %s\n", preset.Name, preset.Description)
//	}
func AvailablePresets() []PresetInfo {
	return []PresetInfo{
		{
			Name:        PresetNameSmall,
			Description: "小型配置，4 事件 3 槽深，关闭统计",
			UseCase:     "测试环境、开发调试、小型状态机",
		},
		{
			Name:        PresetNameDefault,
			Description: "默认配置，8 事件 5 槽深，启用统计",
			UseCase:     "常规服务内部的事件通知",
		},
		{
			Name:        PresetNameLarge,
			Description: "大型配置，32 事件 8 槽深，启用统计",
			UseCase:     "事件种类多、订阅者密集的大型应用",
		},
	}
}

// IsValidPreset 检查预设名称是否有效
//
// 示例：
//
//	if eventbus.IsValidPreset("large") {
//	    cfg := eventbus.GetConfigByPreset("large")
//	}
func IsValidPreset(name string) bool {
	switch name {
	case PresetNameSmall, PresetNameDefault, PresetNameLarge:
		return true
	default:
		return false
	}
}
