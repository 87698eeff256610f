package registry

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/devprodest/go-eventbus/internal/core/metrics"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/lib/log"
	"github.com/devprodest/go-eventbus/pkg/types"
)

var logger = log.Logger("core/registry")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrInvalidEvent 事件标识越界
	ErrInvalidEvent = errors.New("event out of range")

	// ErrInvalidUnit 单元标识为空哨兵
	ErrInvalidUnit = errors.New("invalid unit identity")

	// ErrCapacityExhausted 事件的订阅槽已满
	//
	// 槽容量是静态配置，满槽意味着容量规划缺陷而非运行时波动。
	ErrCapacityExhausted = errors.New("subscriber slots exhausted")

	// ErrDuplicateSubscription 单元已订阅该事件
	ErrDuplicateSubscription = errors.New("unit already subscribed to event")

	// ErrNoIdentity ctx 未携带单元身份
	ErrNoIdentity = errors.New("no unit identity in context")
)

// ============================================================================
// Registry 实现
// ============================================================================

// Registry 事件登记表实现
type Registry struct {
	eventCount int
	names      types.EventNames

	tbl      *table
	notifier pkgif.Notifier
	resolver pkgif.IdentityResolver
	rec      metrics.Recorder
}

// NewRegistry 创建事件登记表
//
// eventCount 与 slotDepth 决定静态表尺寸；names 为可选命名表。
// resolver 供 Self 形式与 Wait 解析调用方身份；rec 为 nil 时不记录统计。
func NewRegistry(
	eventCount, slotDepth int,
	names types.EventNames,
	notifier pkgif.Notifier,
	resolver pkgif.IdentityResolver,
	rec metrics.Recorder,
) *Registry {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &Registry{
		eventCount: eventCount,
		names:      names,
		tbl:        newTable(eventCount, slotDepth),
		notifier:   notifier,
		resolver:   resolver,
		rec:        rec,
	}
}

// ============================================================================
// Registry 接口实现
// ============================================================================

// Subscribe 订阅事件
//
// 从左到右占用第一个空槽。重复订阅被拒绝（静默的双槽会导致
// 双重唤醒，幂等接受则掩盖真实缺陷）。无空槽是静态容量规划
// 缺陷，在 Error 级别记录。
func (r *Registry) Subscribe(event types.EventID, unit types.UnitID) error {
	if !event.InRange(r.eventCount) {
		logger.Warn("subscribe to invalid event", "event", event, "count", r.eventCount)
		return fmt.Errorf("%w: %s (event count %d)", ErrInvalidEvent, event, r.eventCount)
	}
	if unit.IsNone() {
		return fmt.Errorf("%w: subscribe %s", ErrInvalidUnit, r.names.Name(event))
	}

	switch r.tbl.claim(event, unit) {
	case claimDuplicate:
		r.rec.RecordDuplicateReject(event)
		logger.Warn("duplicate subscription rejected",
			"event", r.names.Name(event), "unit", unit)
		return fmt.Errorf("%w: %s on %s", ErrDuplicateSubscription, unit, r.names.Name(event))

	case claimFull:
		r.rec.RecordCapacityFailure(event)
		logger.Error("subscriber slots exhausted",
			"event", r.names.Name(event), "unit", unit, "depth", r.tbl.slotDepth)
		return fmt.Errorf("%w: %s (depth %d)", ErrCapacityExhausted, r.names.Name(event), r.tbl.slotDepth)
	}

	r.rec.RecordSubscribe(event)
	logger.Debug("subscribed", "event", r.names.Name(event), "unit", unit)
	return nil
}

// MustSubscribe 订阅事件，失败则 panic
//
// 订阅失败只能源于静态缺陷（越界、重复、容量规划不足），
// 初始化路径上通常希望立刻暴露而非带错运行。
func (r *Registry) MustSubscribe(event types.EventID, unit types.UnitID) {
	if err := r.Subscribe(event, unit); err != nil {
		panic(fmt.Sprintf("eventbus subscribe: %v", err))
	}
}

// Unsubscribe 退订事件
//
// 清除第一个匹配槽位并返回 true；单元未订阅时是安全的空操作，
// 返回 false。
func (r *Registry) Unsubscribe(event types.EventID, unit types.UnitID) bool {
	if !event.InRange(r.eventCount) {
		logger.Warn("unsubscribe from invalid event", "event", event, "count", r.eventCount)
		return false
	}
	if unit.IsNone() {
		return false
	}

	if !r.tbl.release(event, unit) {
		return false
	}

	r.rec.RecordUnsubscribe(event)
	logger.Debug("unsubscribed", "event", r.names.Name(event), "unit", unit)
	return true
}

// SubscribeSelf 以调用方单元身份订阅
func (r *Registry) SubscribeSelf(ctx context.Context, event types.EventID) error {
	unit, ok := r.resolver.Resolve(ctx)
	if !ok {
		logger.Warn("subscribe-self without unit identity", "event", event)
		return fmt.Errorf("%w: subscribe %s", ErrNoIdentity, r.names.Name(event))
	}
	return r.Subscribe(event, unit)
}

// UnsubscribeSelf 以调用方单元身份退订
func (r *Registry) UnsubscribeSelf(ctx context.Context, event types.EventID) bool {
	unit, ok := r.resolver.Resolve(ctx)
	if !ok {
		logger.Warn("unsubscribe-self without unit identity", "event", event)
		return false
	}
	return r.Unsubscribe(event, unit)
}

// Push 广播一次事件发生
//
// 读锁下拷贝槽行，在锁外按槽序对每个被占用槽位触发一次锁存
// 通知，随后让出处理器。返回实际通知的单元数；无订阅者时为
// 空操作，返回 0。
func (r *Registry) Push(event types.EventID) int {
	if !event.InRange(r.eventCount) {
		logger.Warn("push to invalid event", "event", event, "count", r.eventCount)
		return 0
	}
	r.rec.RecordPush(event)

	row := r.tbl.snapshot(event)

	signaled := 0
	occupied := 0
	for _, unit := range row {
		if unit.IsNone() {
			continue
		}
		occupied++
		if r.notifier.Signal(unit, event) {
			signaled++
		}
	}

	if occupied == 0 {
		return 0
	}

	logger.Debug("event pushed",
		"event", r.names.Name(event), "signaled", signaled, "occupied", occupied)

	// 通知完成后让出处理器，给新就绪的订阅单元一次调度机会
	runtime.Gosched()
	return signaled
}

// Wait 阻塞等待事件发生
//
// 以调用方身份（从 ctx 解析）阻塞在自己的通知槽上。
// 返回 true 表示事件已发生；超时或取消返回 false，均为常规结果。
func (r *Registry) Wait(ctx context.Context, event types.EventID, timeout time.Duration) bool {
	if !event.InRange(r.eventCount) {
		logger.Warn("wait on invalid event", "event", event, "count", r.eventCount)
		return false
	}
	unit, ok := r.resolver.Resolve(ctx)
	if !ok {
		logger.Warn("wait without unit identity", "event", r.names.Name(event))
		return false
	}
	return r.notifier.Await(ctx, unit, event, timeout)
}

// Subscribers 返回事件当前占用槽位的单元（按槽序）
func (r *Registry) Subscribers(event types.EventID) []types.UnitID {
	if !event.InRange(r.eventCount) {
		return nil
	}

	row := r.tbl.snapshot(event)
	subs := make([]types.UnitID, 0, len(row))
	for _, unit := range row {
		if !unit.IsNone() {
			subs = append(subs, unit)
		}
	}
	return subs
}

// EventCount 返回事件数量
func (r *Registry) EventCount() int {
	return r.eventCount
}

// SlotDepth 返回每事件的订阅槽数量
func (r *Registry) SlotDepth() int {
	return r.tbl.slotDepth
}

// 确保 Registry 实现接口
var _ pkgif.Registry = (*Registry)(nil)
