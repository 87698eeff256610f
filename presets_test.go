package eventbus

import (
	"testing"

	"github.com/devprodest/go-eventbus/config"
)

// TestGetSmallConfig 测试小型预设
func TestGetSmallConfig(t *testing.T) {
	cfg := GetSmallConfig()

	if cfg.Bus.EventCount != 4 {
		t.Errorf("EventCount = %d, want 4", cfg.Bus.EventCount)
	}
	if cfg.Bus.SlotDepth != 3 {
		t.Errorf("SlotDepth = %d, want 3", cfg.Bus.SlotDepth)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("small preset should validate: %v", err)
	}
}

// TestGetDefaultConfig 测试默认预设
func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg.Bus.EventCount != 8 {
		t.Errorf("EventCount = %d, want 8", cfg.Bus.EventCount)
	}
	if cfg.Bus.SlotDepth != 5 {
		t.Errorf("SlotDepth = %d, want 5", cfg.Bus.SlotDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default preset should validate: %v", err)
	}
}

// TestGetLargeConfig 测试大型预设
func TestGetLargeConfig(t *testing.T) {
	cfg := GetLargeConfig()

	if cfg.Bus.EventCount != 32 {
		t.Errorf("EventCount = %d, want 32", cfg.Bus.EventCount)
	}
	if cfg.Bus.SlotDepth != 8 {
		t.Errorf("SlotDepth = %d, want 8", cfg.Bus.SlotDepth)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("large preset should validate: %v", err)
	}
}

// TestGetConfigByPreset 测试按名称获取预设
func TestGetConfigByPreset(t *testing.T) {
	tests := []struct {
		name           string
		wantEventCount int
	}{
		{PresetNameSmall, 4},
		{PresetNameDefault, 8},
		{PresetNameLarge, 32},
		{"unknown", 8}, // 未知名称回退到默认
		{"", 8},
	}

	for _, tt := range tests {
		cfg := GetConfigByPreset(tt.name)
		if cfg.Bus.EventCount != tt.wantEventCount {
			t.Errorf("GetConfigByPreset(%q).Bus.EventCount = %d, want %d",
				tt.name, cfg.Bus.EventCount, tt.wantEventCount)
		}
	}
}

// TestApplyPresetToConfig 测试预设叠加
func TestApplyPresetToConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Bus.EventNames = []string{"boot", "ready"}

	if err := ApplyPresetToConfig(cfg, PresetNameSmall); err != nil {
		t.Fatalf("ApplyPresetToConfig() error: %v", err)
	}

	if cfg.Bus.EventCount != 4 {
		t.Errorf("EventCount = %d, want 4", cfg.Bus.EventCount)
	}
	// 预设只覆盖规模字段，命名表保留
	if len(cfg.Bus.EventNames) != 2 {
		t.Errorf("EventNames count = %d, want 2", len(cfg.Bus.EventNames))
	}

	if err := ApplyPresetToConfig(cfg, "galactic"); err == nil {
		t.Error("ApplyPresetToConfig(unknown) should fail")
	}
}

// TestAvailablePresets 测试预设清单
func TestAvailablePresets(t *testing.T) {
	presets := AvailablePresets()
	if len(presets) != 3 {
		t.Fatalf("AvailablePresets() count = %d, want 3", len(presets))
	}

	for _, p := range presets {
		if p.Name == "" || p.Description == "" || p.UseCase == "" {
			t.Errorf("preset %+v has empty field", p)
		}
		if !IsValidPreset(p.Name) {
			t.Errorf("listed preset %q should be valid", p.Name)
		}
	}
}

// TestIsValidPreset 测试预设名称校验
func TestIsValidPreset(t *testing.T) {
	for _, name := range []string{PresetNameSmall, PresetNameDefault, PresetNameLarge} {
		if !IsValidPreset(name) {
			t.Errorf("IsValidPreset(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"", "galactic", "SMALL"} {
		if IsValidPreset(name) {
			t.Errorf("IsValidPreset(%q) = true, want false", name)
		}
	}
}

// TestPresetRoundTrip 测试预设配置可直接用于总线构造
func TestPresetRoundTrip(t *testing.T) {
	bus, err := New(WithConfig(GetSmallConfig()))
	if err != nil {
		t.Fatalf("New(WithConfig(small)) error: %v", err)
	}
	defer bus.Close()

	if got := bus.EventCount(); got != 4 {
		t.Errorf("EventCount() = %d, want 4", got)
	}
	if got := bus.SlotDepth(); got != 3 {
		t.Errorf("SlotDepth() = %d, want 3", got)
	}
}
