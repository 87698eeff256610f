package eventbus

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/fx"

	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
)

// TestNew_Defaults 测试默认构造
func TestNew_Defaults(t *testing.T) {
	bus, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	if got := bus.State(); got != StateIdle {
		t.Errorf("State() = %v, want %v", got, StateIdle)
	}
	if got := bus.EventCount(); got != 8 {
		t.Errorf("EventCount() = %d, want 8", got)
	}
	if got := bus.SlotDepth(); got != 5 {
		t.Errorf("SlotDepth() = %d, want 5", got)
	}
}

// TestNew_OptionError 测试选项错误传播
func TestNew_OptionError(t *testing.T) {
	if _, err := New(WithEventCount(0)); err == nil {
		t.Error("New(WithEventCount(0)) should fail")
	}
	if _, err := New(WithConfig(nil)); err == nil {
		t.Error("New(WithConfig(nil)) should fail")
	}
}

// TestNew_ConfigCrossCheck 测试事件数与通知槽数的交叉校验
//
// 每个事件索引占用执行单元的一个通知槽，槽数不足必须在构造期失败。
func TestNew_ConfigCrossCheck(t *testing.T) {
	_, err := New(WithEventCount(8), WithNotifySlots(4))
	if err == nil {
		t.Fatal("New() should fail when notify slots < event count")
	}
	if !strings.Contains(err.Error(), "config validation failed") {
		t.Errorf("error = %v, want config validation failure", err)
	}
}

// TestNew_ConfigClone 测试配置快照隔离
func TestNew_ConfigClone(t *testing.T) {
	bus, err := New(WithEventCount(4))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	cfg := bus.Config()
	if cfg == nil {
		t.Fatal("Config() returned nil")
	}
	if cfg.Bus.EventCount != 4 {
		t.Errorf("EventCount = %d, want 4", cfg.Bus.EventCount)
	}

	// 修改快照不得影响总线
	cfg.Bus.EventCount = 99
	if got := bus.EventCount(); got != 4 {
		t.Errorf("EventCount() after snapshot mutation = %d, want 4", got)
	}
}

// TestBusState_String 测试状态字符串
func TestBusState_String(t *testing.T) {
	tests := []struct {
		state BusState
		want  string
	}{
		{StateIdle, "idle"},
		{StateInitializing, "initializing"},
		{StateRunning, "running"},
		{StateStopping, "stopping"},
		{StateStopped, "stopped"},
		{BusState(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("BusState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

// TestBus_Lifecycle 测试生命周期状态机
//
// 一次性生命周期：Start → Stop 之后不可重新启动。
func TestBus_Lifecycle(t *testing.T) {
	ctx := context.Background()

	bus, err := New(WithEventCount(2))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if err := bus.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if got := bus.State(); got != StateRunning {
		t.Errorf("State() after Start = %v, want %v", got, StateRunning)
	}

	// 重复启动应拒绝
	if err := bus.Start(ctx); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start() error = %v, want %v", err, ErrAlreadyStarted)
	}

	if err := bus.Stop(ctx); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
	if got := bus.State(); got != StateStopped {
		t.Errorf("State() after Stop = %v, want %v", got, StateStopped)
	}

	// 停止后不可再操作
	if err := bus.Stop(ctx); !errors.Is(err, ErrBusClosed) {
		t.Errorf("second Stop() error = %v, want %v", err, ErrBusClosed)
	}
	if err := bus.Start(ctx); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Start() after Stop error = %v, want %v", err, ErrBusClosed)
	}
}

// TestBus_StopBeforeStart 测试未启动即停止
func TestBus_StopBeforeStart(t *testing.T) {
	bus, err := New(WithEventCount(2))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	if err := bus.Stop(context.Background()); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Stop() before Start error = %v, want %v", err, ErrNotStarted)
	}
}

// TestBus_CloseIdempotent 测试 Close 幂等
func TestBus_CloseIdempotent(t *testing.T) {
	bus, err := Run(context.Background(), WithEventCount(2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if err := bus.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
	if got := bus.State(); got != StateStopped {
		t.Errorf("State() after Close = %v, want %v", got, StateStopped)
	}
}

// TestRun 测试一步启动
func TestRun(t *testing.T) {
	bus, err := Run(context.Background(), WithEventCount(2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	defer bus.Close()

	if got := bus.State(); got != StateRunning {
		t.Errorf("State() = %v, want %v", got, StateRunning)
	}
}

// TestBus_SubscribeBeforeStart 测试启动前布线
//
// 订阅拓扑可以在 New 之后、Start 之前静态登记；启动后领取的
// 单元身份按分配顺序对应（首个单元为 1）。
func TestBus_SubscribeBeforeStart(t *testing.T) {
	const evtReady = EventID(0)

	bus, err := New(WithEventCount(2))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	first := UnitID(1)
	if err := bus.Subscribe(evtReady, first); err != nil {
		t.Fatalf("Subscribe() before Start error: %v", err)
	}
	if subs := bus.Subscribers(evtReady); len(subs) != 1 || subs[0] != first {
		t.Fatalf("Subscribers() = %v, want [%v]", subs, first)
	}

	if err := bus.Start(context.Background()); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	// 首个登记的单元领取 ID 1，接住启动前布好的订阅
	h, err := bus.Register("worker")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	defer h.Release()

	if h.ID() != first {
		t.Fatalf("Register() ID = %v, want %v", h.ID(), first)
	}

	if n := bus.Push(evtReady); n != 1 {
		t.Errorf("Push() = %d, want 1", n)
	}
	if !bus.Wait(h.Context(), evtReady, time.Second) {
		t.Error("Wait() should observe pre-wired subscription")
	}
}

// TestBus_SpawnRequiresRunning 测试单元派生的启动门槛
func TestBus_SpawnRequiresRunning(t *testing.T) {
	bus, err := New(WithEventCount(2))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	if _, err := bus.Spawn("early", func(ctx context.Context) error { return nil }); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Spawn() before Start error = %v, want %v", err, ErrNotStarted)
	}
	if _, err := bus.Register("early"); !errors.Is(err, ErrNotStarted) {
		t.Errorf("Register() before Start error = %v, want %v", err, ErrNotStarted)
	}
}

// TestBus_OpsAfterClose 测试关闭后的操作降级
func TestBus_OpsAfterClose(t *testing.T) {
	bus, err := Run(context.Background(), WithEventCount(2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	if err := bus.Subscribe(0, 1); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Subscribe() after Close error = %v, want %v", err, ErrBusClosed)
	}
	if n := bus.Push(0); n != 0 {
		t.Errorf("Push() after Close = %d, want 0", n)
	}
	if bus.Wait(context.Background(), 0, 0) {
		t.Error("Wait() after Close should return false")
	}
	if _, err := bus.Spawn("late", func(ctx context.Context) error { return nil }); !errors.Is(err, ErrBusClosed) {
		t.Errorf("Spawn() after Close error = %v, want %v", err, ErrBusClosed)
	}
}

// TestBus_ProducerConsumer 测试端到端推送/等待会合
func TestBus_ProducerConsumer(t *testing.T) {
	const evtReady = EventID(1)

	bus, err := Run(context.Background(), WithEventCount(4))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	defer bus.Close()

	subscribed := make(chan struct{})
	got := make(chan bool, 1)

	h, err := bus.Spawn("consumer", func(ctx context.Context) error {
		if err := bus.SubscribeSelf(ctx, evtReady); err != nil {
			return err
		}
		defer bus.UnsubscribeSelf(ctx, evtReady)
		close(subscribed)

		got <- bus.Wait(ctx, evtReady, 2*time.Second)
		return nil
	})
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}

	<-subscribed
	if n := bus.Push(evtReady); n != 1 {
		t.Errorf("Push() = %d, want 1", n)
	}

	select {
	case ok := <-got:
		if !ok {
			t.Error("consumer Wait() = false, want true")
		}
	case <-time.After(3 * time.Second):
		t.Fatal("consumer did not observe push")
	}

	<-h.Done()
	if err := h.Err(); err != nil {
		t.Errorf("consumer exit error: %v", err)
	}
}

// TestBus_RegisterAdopted 测试领养单元的锁存会合
//
// 领养形式下推送先于等待到达也不丢失：信号锁存在单元的
// 通知槽里，等待方随后消费。
func TestBus_RegisterAdopted(t *testing.T) {
	const evtDone = EventID(0)

	bus, err := Run(context.Background(), WithEventCount(2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	defer bus.Close()

	h, err := bus.Register("adopted")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}

	if err := bus.SubscribeSelf(h.Context(), evtDone); err != nil {
		t.Fatalf("SubscribeSelf() error: %v", err)
	}

	// 推送在等待之前发生
	if n := bus.Push(evtDone); n != 1 {
		t.Errorf("Push() = %d, want 1", n)
	}
	if !bus.Wait(h.Context(), evtDone, time.Second) {
		t.Error("Wait() should consume latched signal")
	}
	// 信号只锁存一份
	if bus.Wait(h.Context(), evtDone, 0) {
		t.Error("second Wait() should find no pending signal")
	}

	if err := h.Release(); err != nil {
		t.Errorf("Release() error: %v", err)
	}
	if err := h.Release(); err != nil {
		t.Errorf("second Release() error: %v", err)
	}

	// 订阅不随单元退出自动清理；推送降级为空投
	if n := bus.Push(evtDone); n != 0 {
		t.Errorf("Push() after Release = %d, want 0", n)
	}
	if subs := bus.Subscribers(evtDone); len(subs) != 1 {
		t.Errorf("Subscribers() after Release = %v, want stale entry", subs)
	}
	if !bus.Unsubscribe(evtDone, h.ID()) {
		t.Error("Unsubscribe() stale entry should return true")
	}
}

// TestBus_MustSubscribePanics 测试 MustSubscribe 失败即 panic
func TestBus_MustSubscribePanics(t *testing.T) {
	bus, err := New(WithEventCount(2))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	defer func() {
		if recover() == nil {
			t.Error("MustSubscribe() with invalid event should panic")
		}
	}()
	bus.MustSubscribe(EventID(99), UnitID(1))
}

// TestBus_ResolveAndUnits 测试身份解析与单元清单
func TestBus_ResolveAndUnits(t *testing.T) {
	bus, err := Run(context.Background(), WithEventCount(2))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	defer bus.Close()

	// 总线外的 ctx 不携带身份
	if id, ok := bus.Resolve(context.Background()); ok || id != UnitNone {
		t.Errorf("Resolve(background) = (%v, %v), want (%v, false)", id, ok, UnitNone)
	}

	resolved := make(chan UnitID, 1)
	h, err := bus.Spawn("probe", func(ctx context.Context) error {
		id, ok := bus.Resolve(ctx)
		if !ok {
			t.Error("Resolve() inside unit should succeed")
		}
		resolved <- id
		return nil
	})
	if err != nil {
		t.Fatalf("Spawn() error: %v", err)
	}

	id := <-resolved
	if id != h.ID() {
		t.Errorf("Resolve() inside unit = %v, want %v", id, h.ID())
	}

	info, ok := bus.UnitInfo(h.ID())
	if !ok {
		t.Fatalf("UnitInfo(%v) not found", h.ID())
	}
	if info.Name != "probe" {
		t.Errorf("UnitInfo.Name = %q, want %q", info.Name, "probe")
	}

	<-h.Done()
}

// TestBus_Stats 测试统计快照与采集器
func TestBus_Stats(t *testing.T) {
	const evtReady = EventID(0)

	bus, err := Run(context.Background(),
		WithEventCount(2),
		WithMetrics(true),
	)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	defer bus.Close()

	h, err := bus.Register("worker")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	defer h.Release()

	if err := bus.SubscribeSelf(h.Context(), evtReady); err != nil {
		t.Fatalf("SubscribeSelf() error: %v", err)
	}
	bus.Push(evtReady)
	bus.Wait(h.Context(), evtReady, time.Second)

	stats := bus.Stats()
	if stats.Pushes != 1 {
		t.Errorf("Stats().Pushes = %d, want 1", stats.Pushes)
	}
	if stats.Signaled != 1 {
		t.Errorf("Stats().Signaled = %d, want 1", stats.Signaled)
	}
	if stats.Subscribes != 1 {
		t.Errorf("Stats().Subscribes = %d, want 1", stats.Subscribes)
	}
	if stats.WaitOK != 1 {
		t.Errorf("Stats().WaitOK = %d, want 1", stats.WaitOK)
	}

	ev, ok := bus.EventStats(evtReady)
	if !ok {
		t.Fatal("EventStats() not found")
	}
	if ev.Pushes != 1 {
		t.Errorf("EventStats().Pushes = %d, want 1", ev.Pushes)
	}
	if ev.Subscribers != 1 {
		t.Errorf("EventStats().Subscribers = %d, want 1", ev.Subscribers)
	}

	// Prometheus 采集器应产出指标
	c := bus.MetricsCollector()
	if c == nil {
		t.Fatal("MetricsCollector() = nil with metrics enabled")
	}
	if n := testutil.CollectAndCount(c); n == 0 {
		t.Error("collector produced no metrics")
	}

	// 重置后计数归零，订阅者水位保留
	bus.ResetStats()
	stats = bus.Stats()
	if stats.Pushes != 0 {
		t.Errorf("Stats().Pushes after Reset = %d, want 0", stats.Pushes)
	}
	ev, _ = bus.EventStats(evtReady)
	if ev.Subscribers != 1 {
		t.Errorf("EventStats().Subscribers after Reset = %d, want 1", ev.Subscribers)
	}
}

// TestBus_MetricsDisabled 测试统计禁用时的降级
func TestBus_MetricsDisabled(t *testing.T) {
	bus, err := Run(context.Background(),
		WithEventCount(2),
		WithMetrics(false),
	)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	defer bus.Close()

	if c := bus.MetricsCollector(); c != nil {
		t.Errorf("MetricsCollector() = %v, want nil with metrics disabled", c)
	}

	// 统计禁用不影响会合路径
	if err := bus.Subscribe(0, 1); err != nil {
		t.Errorf("Subscribe() error: %v", err)
	}
	stats := bus.Stats()
	if stats.Pushes != 0 || stats.Subscribes != 0 {
		t.Errorf("Stats() = %+v, want zero snapshot", stats)
	}
}

// TestBus_WithFxOption 测试用户 Fx 扩展
func TestBus_WithFxOption(t *testing.T) {
	var captured pkgif.Registry

	bus, err := New(
		WithEventCount(2),
		WithFxOption(fx.Invoke(func(r pkgif.Registry) {
			captured = r
		})),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer bus.Close()

	if captured == nil {
		t.Fatal("user fx.Invoke did not run at construction")
	}
	if captured.EventCount() != 2 {
		t.Errorf("captured registry EventCount() = %d, want 2", captured.EventCount())
	}
}

// TestBus_ImplementsRegistry 测试门面满足登记表接口
func TestBus_ImplementsRegistry(t *testing.T) {
	var _ pkgif.Registry = (*Bus)(nil)
}

// TestVersionInfo 测试版本信息
func TestVersionInfo(t *testing.T) {
	info := VersionInfo()
	if !strings.Contains(info, Version) {
		t.Errorf("VersionInfo() = %q, want containing %q", info, Version)
	}
}
