package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"go.uber.org/fx"

	"github.com/devprodest/go-eventbus/config"
	"github.com/devprodest/go-eventbus/internal/core/metrics"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/lib/log"
)

var logger = log.Logger("eventbus")

// ════════════════════════════════════════════════════════════════════════════
//                              总线状态
// ════════════════════════════════════════════════════════════════════════════

// BusState 总线状态
//
// 表示总线在生命周期中的当前阶段。
type BusState int

const (
	// StateIdle 空闲状态（已创建，未启动）
	StateIdle BusState = iota

	// StateInitializing 初始化中（Fx App 启动中）
	StateInitializing

	// StateRunning 运行中（正常工作状态）
	StateRunning

	// StateStopping 停止中（正在关闭组件）
	StateStopping

	// StateStopped 已停止（终态）
	StateStopped
)

// String 返回状态的字符串表示
func (s BusState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// ════════════════════════════════════════════════════════════════════════════
//                              Bus 门面
// ════════════════════════════════════════════════════════════════════════════

// Bus 事件通知总线
//
// Bus 是用户与事件总线交互的主入口。
// 它是一个门面（Facade），聚合了所有内部组件：
//
//   - Registry: 订阅登记表（事件 → 订阅槽序列）
//   - Notify: 锁存信号表（单元 × 事件的二值信号）
//   - Unit: 执行单元运行时（身份分配、goroutine 生命周期）
//   - Metrics: 总线统计（可选 Prometheus 导出）
//
// 订阅/推送/等待操作在 New 之后即可使用，这支持「先布线后启动」
// 的初始化流程；Spawn/Register 需要总线处于运行状态。
//
// 使用示例：
//
//	bus, err := eventbus.New(
//	    eventbus.WithEventCount(4),
//	    eventbus.WithEventNames("boot", "frame"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := bus.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
type Bus struct {
	// ────────────────────────────────────────────────────────────────────────
	// 配置和状态
	// ────────────────────────────────────────────────────────────────────────

	// config 总线配置
	config *options

	// app Fx 应用
	app *fx.App

	// ────────────────────────────────────────────────────────────────────────
	// 核心组件（由 Fx 注入）
	// ────────────────────────────────────────────────────────────────────────

	// registry 订阅登记表
	registry pkgif.Registry

	// runtime 执行单元运行时
	runtime pkgif.UnitRegistry

	// reporter 统计上报（统计禁用时为空实现）
	reporter pkgif.StatsReporter

	// collector Prometheus 采集器（统计禁用时为 nil）
	collector *metrics.Collector

	// ────────────────────────────────────────────────────────────────────────
	// 生命周期状态
	// ────────────────────────────────────────────────────────────────────────

	mu      sync.RWMutex
	state   BusState
	started bool
	closed  bool
}

// ════════════════════════════════════════════════════════════════════════════
//                              构造函数
// ════════════════════════════════════════════════════════════════════════════

// New 创建新总线
//
// 创建总线但不启动，需要调用 Start() 启动。
// 通过 Option 函数配置总线；选项按传入顺序应用。
//
// 示例：
//
//	bus, err := eventbus.New(
//	    eventbus.WithPreset(eventbus.PresetNameSmall),
//	    eventbus.WithMetrics(false),
//	)
func New(opts ...Option) (*Bus, error) {
	// 创建配置
	o := newOptions()

	// 应用选项
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	// 应用日志配置（仅当用户显式设置时）
	if o.logSet {
		applyLogConfig(o.cfg.Log)
	}

	// 创建 Bus 实例
	bus := &Bus{
		config: o,
		state:  StateIdle,
	}

	// 构建 Fx 应用（组件在此处完成装配与注入）
	var err error
	bus.app, err = buildFxApp(o, bus)
	if err != nil {
		return nil, fmt.Errorf("build fx app: %w", err)
	}

	return bus, nil
}

// Run 快捷启动函数
//
// 创建总线并立即启动。
// 等价于 New() + Start()。
//
// 示例：
//
//	bus, err := eventbus.Run(ctx,
//	    eventbus.WithEventCount(16),
//	)
func Run(ctx context.Context, opts ...Option) (*Bus, error) {
	bus, err := New(opts...)
	if err != nil {
		return nil, err
	}

	if err := bus.Start(ctx); err != nil {
		return nil, fmt.Errorf("start bus: %w", err)
	}

	return bus, nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              基本信息
// ════════════════════════════════════════════════════════════════════════════

// Config 返回总线配置的副本
//
// 返回副本以防调用方意外修改运行中的配置。
func (b *Bus) Config() *config.Config {
	if b.config == nil {
		return nil
	}
	return config.CloneConfig(b.config.cfg)
}

// EventCount 返回配置的事件数量
func (b *Bus) EventCount() int {
	if b.registry == nil {
		return 0
	}
	return b.registry.EventCount()
}

// SlotDepth 返回每事件的订阅槽深
func (b *Bus) SlotDepth() int {
	if b.registry == nil {
		return 0
	}
	return b.registry.SlotDepth()
}

// ════════════════════════════════════════════════════════════════════════════
//                              日志配置
// ════════════════════════════════════════════════════════════════════════════

// applyLogConfig 将日志配置应用到全局 logger
func applyLogConfig(cfg config.LogConfig) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == config.LogFormatJSON {
		log.SetDefault(log.NewJSON(os.Stderr, opts))
		return
	}
	log.SetDefault(log.New(os.Stderr, opts))
}
