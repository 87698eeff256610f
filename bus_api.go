package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              状态守卫
// ════════════════════════════════════════════════════════════════════════════

// usable 检查总线是否可以执行登记表操作
//
// 登记表操作在 New 之后、Close 之前均可用（不要求已启动）。
func (b *Bus) usable() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}
	if b.registry == nil {
		return ErrNotStarted
	}
	return nil
}

// running 检查总线是否处于运行状态
//
// Spawn/Register 要求总线已启动：单元的回收依赖 Stop 时的排空流程。
func (b *Bus) running() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBusClosed
	}
	if !b.started {
		return ErrNotStarted
	}
	return nil
}

// ════════════════════════════════════════════════════════════════════════════
//                              订阅操作
// ════════════════════════════════════════════════════════════════════════════

// Subscribe 将单元登记到指定事件的首个空槽
//
// 显式身份形式，可代管任意单元。失败情形见 errors.go 的哨兵错误。
func (b *Bus) Subscribe(event EventID, unit UnitID) error {
	if err := b.usable(); err != nil {
		return err
	}
	return b.registry.Subscribe(event, unit)
}

// MustSubscribe 订阅失败时 panic
//
// 订阅失败（槽耗尽、事件越界）属于静态配置缺陷，
// 用于初始化路径上「配置错误应当立即暴露」的场景。
func (b *Bus) MustSubscribe(event EventID, unit UnitID) {
	if err := b.Subscribe(event, unit); err != nil {
		panic(fmt.Sprintf("eventbus subscribe: %v", err))
	}
}

// Unsubscribe 清除指定事件中首个等于 unit 的槽
//
// 返回是否清除了槽位。身份不存在或总线已关闭时为安全空操作。
func (b *Bus) Unsubscribe(event EventID, unit UnitID) bool {
	if err := b.usable(); err != nil {
		return false
	}
	return b.registry.Unsubscribe(event, unit)
}

// SubscribeSelf 以调用方单元身份订阅
//
// 身份从 ctx 解析；必须在受管单元内调用（Spawn 的 fn 或
// Register 句柄的 Context）。
func (b *Bus) SubscribeSelf(ctx context.Context, event EventID) error {
	if err := b.usable(); err != nil {
		return err
	}
	return b.registry.SubscribeSelf(ctx, event)
}

// UnsubscribeSelf 以调用方单元身份退订
func (b *Bus) UnsubscribeSelf(ctx context.Context, event EventID) bool {
	if err := b.usable(); err != nil {
		return false
	}
	return b.registry.UnsubscribeSelf(ctx, event)
}

// ════════════════════════════════════════════════════════════════════════════
//                              推送与等待
// ════════════════════════════════════════════════════════════════════════════

// Push 广播一次事件发生
//
// 对该事件每个被占用的订阅槽触发一次锁存通知，返回实际通知的
// 单元数。无订阅者或总线已关闭时为空操作（返回 0）。
//
// 事件不携带数据；推送表达的是「某事已发生」这一事实。
func (b *Bus) Push(event EventID) int {
	if err := b.usable(); err != nil {
		return 0
	}
	return b.registry.Push(event)
}

// Wait 阻塞等待事件发生
//
// 必须由已订阅的单元在自身内调用。返回 true 表示事件已发生
// （消费一次挂起信号）；false 表示超时或 ctx 取消。
// 超时是常规结果，不是错误。
//
// timeout 语义：正值限时等待，零值轮询，负值无限等待。
func (b *Bus) Wait(ctx context.Context, event EventID, timeout time.Duration) bool {
	if err := b.usable(); err != nil {
		return false
	}
	return b.registry.Wait(ctx, event, timeout)
}

// ════════════════════════════════════════════════════════════════════════════
//                              执行单元管理
// ════════════════════════════════════════════════════════════════════════════

// Spawn 派生一个受管执行单元
//
// 在新 goroutine 中运行 fn；fn 的 ctx 携带单元身份并在总线
// 停止时取消。单元退出后其通知槽行自动回收。
//
// 示例：
//
//	handle, err := bus.Spawn("consumer", func(ctx context.Context) error {
//	    if err := bus.SubscribeSelf(ctx, FrameEvent); err != nil {
//	        return err
//	    }
//	    for bus.Wait(ctx, FrameEvent, time.Second) {
//	        process()
//	    }
//	    return ctx.Err()
//	})
func (b *Bus) Spawn(name string, fn UnitFunc) (UnitHandle, error) {
	if err := b.running(); err != nil {
		return nil, err
	}
	return b.runtime.Spawn(name, fn)
}

// Register 领养调用方自管的 goroutine 为执行单元
//
// 只分配身份与通知槽行，不派生 goroutine。调用方通过句柄的
// Context() 获得携带身份的 ctx，用毕调用 Release()。
func (b *Bus) Register(name string) (UnitHandle, error) {
	if err := b.running(); err != nil {
		return nil, err
	}
	return b.runtime.Register(name)
}

// Resolve 从 ctx 解析调用方单元身份
//
// 返回 false 表示 ctx 未携带身份（不在受管单元内调用）。
func (b *Bus) Resolve(ctx context.Context) (UnitID, bool) {
	if b.runtime == nil {
		return types.UnitNone, false
	}
	return b.runtime.Resolve(ctx)
}

// Units 返回当前在册单元（快照）
func (b *Bus) Units() []UnitInfo {
	if b.runtime == nil {
		return nil
	}
	return b.runtime.Units()
}

// UnitInfo 查询单元信息
func (b *Bus) UnitInfo(unit UnitID) (UnitInfo, bool) {
	if b.runtime == nil {
		return types.UnitInfo{}, false
	}
	return b.runtime.Info(unit)
}

// ════════════════════════════════════════════════════════════════════════════
//                              查询与统计
// ════════════════════════════════════════════════════════════════════════════

// Subscribers 返回指定事件当前占用槽位的单元（按槽序）
func (b *Bus) Subscribers(event EventID) []UnitID {
	if err := b.usable(); err != nil {
		return nil
	}
	return b.registry.Subscribers(event)
}

// Stats 返回总线整体统计快照
//
// 统计禁用时返回零值快照。
func (b *Bus) Stats() BusStats {
	if b.reporter == nil {
		return types.BusStats{}
	}
	return b.reporter.Stats()
}

// EventStats 返回单个事件的统计快照
func (b *Bus) EventStats(event EventID) (EventStats, bool) {
	if b.reporter == nil {
		return types.EventStats{}, false
	}
	return b.reporter.EventStats(event)
}

// ResetStats 重置所有统计计数
//
// 订阅者水位不受影响（反映的是当前事件表状态）。
func (b *Bus) ResetStats() {
	if b.reporter == nil {
		return
	}
	b.reporter.Reset()
}

// MetricsCollector 返回总线的 Prometheus 采集器
//
// 注册到调用方的 prometheus.Registry 即可导出指标：
//
//	prometheus.MustRegister(bus.MetricsCollector())
//
// 统计禁用时返回 nil。
func (b *Bus) MetricsCollector() prometheus.Collector {
	if b.collector == nil {
		return nil
	}
	return b.collector
}

// 接口断言：Bus 自身即是一个 Registry 实现
var _ pkgif.Registry = (*Bus)(nil)
