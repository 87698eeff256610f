package metrics

import (
	"testing"

	"github.com/devprodest/go-eventbus/config"
)

// TestConfigFromUnified 测试统一配置桥接
func TestConfigFromUnified(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		cfg := ConfigFromUnified(nil)
		if !cfg.Enabled {
			t.Error("nil unified config should fall back to enabled default")
		}
		if cfg.EventCount != 8 {
			t.Errorf("EventCount = %d, want 8", cfg.EventCount)
		}
	})

	t.Run("Unified", func(t *testing.T) {
		ucfg := config.NewConfig()
		ucfg.Bus.EventCount = 16
		ucfg.Bus.EventNames = []string{"boot"}
		ucfg.Metrics.Enabled = false
		ucfg.Metrics.Namespace = "demo"

		cfg := ConfigFromUnified(ucfg)
		if cfg.Enabled {
			t.Error("Enabled should follow unified config")
		}
		if cfg.EventCount != 16 {
			t.Errorf("EventCount = %d, want 16", cfg.EventCount)
		}
		if cfg.Namespace != "demo" {
			t.Errorf("Namespace = %q, want %q", cfg.Namespace, "demo")
		}
	})
}

// TestNewFromParams 测试模块构建
func TestNewFromParams(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		res := NewFromParams(Params{UnifiedCfg: config.NewConfig()})
		if res.Counter == nil {
			t.Fatal("Counter should not be nil when metrics are enabled")
		}
		if _, ok := res.Recorder.(*BusCounter); !ok {
			t.Errorf("Recorder type = %T, want *BusCounter", res.Recorder)
		}
	})

	t.Run("Disabled", func(t *testing.T) {
		ucfg := config.NewConfig()
		ucfg.Metrics.Enabled = false

		res := NewFromParams(Params{UnifiedCfg: ucfg})
		if res.Counter != nil {
			t.Error("Counter should be nil when metrics are disabled")
		}
		if _, ok := res.Recorder.(Nop); !ok {
			t.Errorf("Recorder type = %T, want Nop", res.Recorder)
		}

		// Nop 记录后快照仍为零
		res.Recorder.RecordPush(0)
		if stats := res.Reporter.Stats(); stats.Pushes != 0 {
			t.Errorf("Nop reporter Pushes = %d, want 0", stats.Pushes)
		}
	})
}
