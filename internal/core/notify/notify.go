package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/devprodest/go-eventbus/internal/core/metrics"
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/lib/log"
	"github.com/devprodest/go-eventbus/pkg/types"
)

var logger = log.Logger("core/notify")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNoUnit 单元标识为空
	ErrNoUnit = errors.New("unit has no identity")

	// ErrAlreadyAttached 单元已挂接通知槽行
	ErrAlreadyAttached = errors.New("unit already attached")
)

// ============================================================================
// SignalTable - 通知槽行表
// ============================================================================

// row 单元的通知槽行
//
// signals 在挂接时一次性分配，此后只读；
// done 在 Detach 时关闭，唤醒滞留的 Await。
type row struct {
	signals []chan struct{}
	done    chan struct{}
}

// SignalTable 实现挂起原语
//
// 每个挂接的执行单元持有一行 slots 条锁存信号通道，
// 事件下标直接索引行内通道。
type SignalTable struct {
	slots int
	clock clock.Clock
	rec   metrics.Recorder

	mu   sync.RWMutex
	rows map[types.UnitID]*row
}

// NewSignalTable 创建通知槽行表
//
// slots 为每单元的通知槽数量（可用事件下标数上限）。
// clk 为 nil 时使用系统时钟；rec 为 nil 时不记录统计。
func NewSignalTable(slots int, clk clock.Clock, rec metrics.Recorder) *SignalTable {
	if clk == nil {
		clk = clock.New()
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &SignalTable{
		slots: slots,
		clock: clk,
		rec:   rec,
		rows:  make(map[types.UnitID]*row),
	}
}

// Attach 为单元分配通知槽行
func (s *SignalTable) Attach(unit types.UnitID) error {
	if unit.IsNone() {
		return ErrNoUnit
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[unit]; ok {
		return ErrAlreadyAttached
	}

	signals := make([]chan struct{}, s.slots)
	for i := range signals {
		signals[i] = make(chan struct{}, 1)
	}
	s.rows[unit] = &row{
		signals: signals,
		done:    make(chan struct{}),
	}

	logger.Debug("attached notify row", "unit", unit, "slots", s.slots)
	return nil
}

// Detach 释放单元的通知槽行
//
// 滞留在该单元 Await 中的调用会被立即唤醒并返回 false。
func (s *SignalTable) Detach(unit types.UnitID) bool {
	s.mu.Lock()
	r, ok := s.rows[unit]
	if ok {
		delete(s.rows, unit)
	}
	s.mu.Unlock()

	if !ok {
		return false
	}

	close(r.done)
	logger.Debug("detached notify row", "unit", unit)
	return true
}

// Signal 置位单元在指定事件下标上的锁存信号
//
// 非阻塞。信号已挂起时合并，不叠加。
// 返回 false 表示单元没有通知槽行，通知被丢弃。
func (s *SignalTable) Signal(unit types.UnitID, event types.EventID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[unit]
	if !ok || !event.InRange(s.slots) {
		s.rec.RecordSignalDropped(event)
		return false
	}

	select {
	case r.signals[event.Index()] <- struct{}{}:
		s.rec.RecordSignalDelivered(event)
	default:
		// 锁存已挂起，合并
		s.rec.RecordSignalCoalesced(event)
	}
	return true
}

// Await 阻塞消费一次挂起信号
//
// 已锁存的信号立即消费，不消耗超时预算。
// timeout 语义：正值限时等待，零值轮询，负值无限等待。
func (s *SignalTable) Await(ctx context.Context, unit types.UnitID, event types.EventID, timeout time.Duration) bool {
	s.mu.RLock()
	r, ok := s.rows[unit]
	s.mu.RUnlock()

	if !ok || !event.InRange(s.slots) {
		logger.Debug("await without notify row", "unit", unit, "event", event)
		return false
	}
	ch := r.signals[event.Index()]

	// 快路径：已锁存的信号立即消费
	select {
	case <-ch:
		s.rec.RecordWaitOK(event)
		return true
	default:
	}

	// 轮询语义：无挂起信号即超时
	if timeout == 0 {
		s.rec.RecordWaitTimeout(event)
		return false
	}

	if timeout < 0 {
		// 无限等待
		select {
		case <-ch:
			s.rec.RecordWaitOK(event)
			return true
		case <-ctx.Done():
			s.rec.RecordWaitCanceled(event)
			return false
		case <-r.done:
			s.rec.RecordWaitCanceled(event)
			return false
		}
	}

	timer := s.clock.Timer(timeout)
	defer timer.Stop()

	select {
	case <-ch:
		s.rec.RecordWaitOK(event)
		return true
	case <-timer.C:
		s.rec.RecordWaitTimeout(event)
		return false
	case <-ctx.Done():
		s.rec.RecordWaitCanceled(event)
		return false
	case <-r.done:
		s.rec.RecordWaitCanceled(event)
		return false
	}
}

// Pending 检查单元在指定事件下标上是否有挂起信号
func (s *SignalTable) Pending(unit types.UnitID, event types.EventID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[unit]
	if !ok || !event.InRange(s.slots) {
		return false
	}
	return len(r.signals[event.Index()]) > 0
}

// Slots 返回每单元的通知槽容量
func (s *SignalTable) Slots() int {
	return s.slots
}

// Attached 返回当前挂接的单元数
//
// 诊断用途。
func (s *SignalTable) Attached() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// 确保 SignalTable 实现 Notifier 接口
var _ pkgif.Notifier = (*SignalTable)(nil)
