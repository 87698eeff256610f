package metrics

import (
	"sync/atomic"

	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// eventCounters 单事件计数器组
type eventCounters struct {
	subscribers atomic.Int64 // 当前订阅者水位
	pushes      atomic.Uint64
	delivered   atomic.Uint64
	coalesced   atomic.Uint64
	waitOK      atomic.Uint64
	waitTimeout atomic.Uint64
}

// BusCounter 事件总线计数器
//
// BusCounter 跟踪总线的推送、通知、订阅与等待活动。
// 使用原子操作实现并发安全的计数器；事件级计数器在构建时
// 定长分配，记录路径上没有映射查找。
type BusCounter struct {
	// 全局计数器（使用 atomic）
	pushes    atomic.Uint64
	delivered atomic.Uint64
	coalesced atomic.Uint64
	dropped   atomic.Uint64

	subscribes       atomic.Uint64
	unsubscribes     atomic.Uint64
	capacityFailures atomic.Uint64
	duplicateRejects atomic.Uint64

	waitOK       atomic.Uint64
	waitTimeout  atomic.Uint64
	waitCanceled atomic.Uint64

	// 事件级计数器
	perEvent []eventCounters
	names    types.EventNames
}

// NewBusCounter 创建新的 BusCounter
//
// eventCount 决定事件级计数器的数量；names 为可选的事件命名表，
// 缺失的条目使用 "evt-<n>" 默认格式。
func NewBusCounter(eventCount int, names types.EventNames) *BusCounter {
	if eventCount < 0 {
		eventCount = 0
	}
	return &BusCounter{
		perEvent: make([]eventCounters, eventCount),
		names:    names.Filled(eventCount),
	}
}

// at 返回事件的计数器组，越界返回 nil
func (c *BusCounter) at(event types.EventID) *eventCounters {
	if !event.InRange(len(c.perEvent)) {
		return nil
	}
	return &c.perEvent[event.Index()]
}

// RecordPush 记录一次事件推送
func (c *BusCounter) RecordPush(event types.EventID) {
	c.pushes.Add(1)
	if ec := c.at(event); ec != nil {
		ec.pushes.Add(1)
	}
}

// RecordSignalDelivered 记录一次送达的通知
func (c *BusCounter) RecordSignalDelivered(event types.EventID) {
	c.delivered.Add(1)
	if ec := c.at(event); ec != nil {
		ec.delivered.Add(1)
	}
}

// RecordSignalCoalesced 记录一次被锁存合并的通知
func (c *BusCounter) RecordSignalCoalesced(event types.EventID) {
	c.coalesced.Add(1)
	if ec := c.at(event); ec != nil {
		ec.coalesced.Add(1)
	}
}

// RecordSignalDropped 记录一次丢弃的通知
func (c *BusCounter) RecordSignalDropped(event types.EventID) {
	c.dropped.Add(1)
}

// RecordSubscribe 记录一次订阅成功
func (c *BusCounter) RecordSubscribe(event types.EventID) {
	c.subscribes.Add(1)
	if ec := c.at(event); ec != nil {
		ec.subscribers.Add(1)
	}
}

// RecordUnsubscribe 记录一次退订成功
func (c *BusCounter) RecordUnsubscribe(event types.EventID) {
	c.unsubscribes.Add(1)
	if ec := c.at(event); ec != nil {
		ec.subscribers.Add(-1)
	}
}

// RecordCapacityFailure 记录一次容量耗尽失败
func (c *BusCounter) RecordCapacityFailure(event types.EventID) {
	c.capacityFailures.Add(1)
}

// RecordDuplicateReject 记录一次重复订阅拒绝
func (c *BusCounter) RecordDuplicateReject(event types.EventID) {
	c.duplicateRejects.Add(1)
}

// RecordWaitOK 记录一次等待命中
func (c *BusCounter) RecordWaitOK(event types.EventID) {
	c.waitOK.Add(1)
	if ec := c.at(event); ec != nil {
		ec.waitOK.Add(1)
	}
}

// RecordWaitTimeout 记录一次等待超时
func (c *BusCounter) RecordWaitTimeout(event types.EventID) {
	c.waitTimeout.Add(1)
	if ec := c.at(event); ec != nil {
		ec.waitTimeout.Add(1)
	}
}

// RecordWaitCanceled 记录一次等待被取消
func (c *BusCounter) RecordWaitCanceled(event types.EventID) {
	c.waitCanceled.Add(1)
}

// Stats 返回总线统计快照
//
// 快照为逐计数器的原子读取：整体不保证严格一致，
// 但每个计数都单调不回退。
func (c *BusCounter) Stats() types.BusStats {
	stats := types.BusStats{
		Pushes:           c.pushes.Load(),
		Signaled:         c.delivered.Load(),
		Coalesced:        c.coalesced.Load(),
		Dropped:          c.dropped.Load(),
		Subscribes:       c.subscribes.Load(),
		Unsubscribes:     c.unsubscribes.Load(),
		CapacityFailures: c.capacityFailures.Load(),
		DuplicateRejects: c.duplicateRejects.Load(),
		WaitOK:           c.waitOK.Load(),
		WaitTimeout:      c.waitTimeout.Load(),
		WaitCanceled:     c.waitCanceled.Load(),
		Events:           make([]types.EventStats, len(c.perEvent)),
	}
	for i := range c.perEvent {
		stats.Events[i] = c.eventSnapshot(types.EventID(i))
	}
	return stats
}

// EventStats 返回单个事件的统计快照
func (c *BusCounter) EventStats(event types.EventID) (types.EventStats, bool) {
	if !event.InRange(len(c.perEvent)) {
		return types.EventStats{}, false
	}
	return c.eventSnapshot(event), true
}

// eventSnapshot 读取单事件计数器组
func (c *BusCounter) eventSnapshot(event types.EventID) types.EventStats {
	ec := &c.perEvent[event.Index()]
	return types.EventStats{
		Event:       event,
		Name:        c.names.Name(event),
		Subscribers: int(ec.subscribers.Load()),
		Pushes:      ec.pushes.Load(),
		Signaled:    ec.delivered.Load(),
		Coalesced:   ec.coalesced.Load(),
		WaitOK:      ec.waitOK.Load(),
		WaitTimeout: ec.waitTimeout.Load(),
	}
}

// Reset 重置累计计数器
//
// 订阅者水位反映当前事件表状态，不随 Reset 清零。
func (c *BusCounter) Reset() {
	c.pushes.Store(0)
	c.delivered.Store(0)
	c.coalesced.Store(0)
	c.dropped.Store(0)
	c.subscribes.Store(0)
	c.unsubscribes.Store(0)
	c.capacityFailures.Store(0)
	c.duplicateRejects.Store(0)
	c.waitOK.Store(0)
	c.waitTimeout.Store(0)
	c.waitCanceled.Store(0)
	for i := range c.perEvent {
		ec := &c.perEvent[i]
		ec.pushes.Store(0)
		ec.delivered.Store(0)
		ec.coalesced.Store(0)
		ec.waitOK.Store(0)
		ec.waitTimeout.Store(0)
	}
}

// 确保 BusCounter 实现只读报告接口
var _ pkgif.StatsReporter = (*BusCounter)(nil)
