// Package types 定义 go-eventbus 的基础类型
//
// 本文件定义统计快照类型。
package types

// ============================================================================
//                              EventStats - 单事件统计
// ============================================================================

// EventStats 单个事件的统计快照
type EventStats struct {
	// Event 事件标识
	Event EventID

	// Name 事件可读名称
	Name string

	// Subscribers 当前订阅者数
	Subscribers int

	// Pushes 累计 push 次数
	Pushes uint64

	// Signaled 累计送达的通知数
	Signaled uint64

	// Coalesced 累计被锁存合并的通知数（信号已挂起、再次 push 不叠加）
	Coalesced uint64

	// WaitOK 累计等待命中次数
	WaitOK uint64

	// WaitTimeout 累计等待超时次数
	WaitTimeout uint64
}

// ============================================================================
//                              BusStats - 总线统计
// ============================================================================

// BusStats 事件总线的整体统计快照
//
// 所有计数自总线创建起累计，快照为一致性拷贝。
type BusStats struct {
	// Pushes 累计 push 次数
	Pushes uint64

	// Signaled 累计送达的通知数
	Signaled uint64

	// Coalesced 累计被锁存合并的通知数
	Coalesced uint64

	// Dropped 累计丢弃的通知数（目标单元没有通知槽）
	Dropped uint64

	// Subscribes 累计订阅成功次数
	Subscribes uint64

	// Unsubscribes 累计退订成功次数
	Unsubscribes uint64

	// CapacityFailures 累计容量耗尽失败次数
	CapacityFailures uint64

	// DuplicateRejects 累计重复订阅拒绝次数
	DuplicateRejects uint64

	// WaitOK 累计等待命中次数
	WaitOK uint64

	// WaitTimeout 累计等待超时次数
	WaitTimeout uint64

	// WaitCanceled 累计等待被上下文取消的次数
	WaitCanceled uint64

	// Events 按事件细分的统计
	Events []EventStats
}

// TotalWaits 返回累计等待总数
func (s BusStats) TotalWaits() uint64 {
	return s.WaitOK + s.WaitTimeout + s.WaitCanceled
}
