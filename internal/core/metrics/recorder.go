package metrics

import (
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// Recorder 提供统计记录方法（写入侧）
//
// registry 在订阅 / 推送路径上记录，notify 在信号 / 等待路径上记录。
// 统计禁用时注入 Nop，调用方无需判空。
type Recorder interface {
	// RecordPush 记录一次事件推送
	RecordPush(event types.EventID)

	// RecordSignalDelivered 记录一次送达的通知（信号由空置位）
	RecordSignalDelivered(event types.EventID)

	// RecordSignalCoalesced 记录一次被锁存合并的通知（信号已挂起）
	RecordSignalCoalesced(event types.EventID)

	// RecordSignalDropped 记录一次丢弃的通知（目标单元没有通知槽行）
	RecordSignalDropped(event types.EventID)

	// RecordSubscribe 记录一次订阅成功
	RecordSubscribe(event types.EventID)

	// RecordUnsubscribe 记录一次退订成功
	RecordUnsubscribe(event types.EventID)

	// RecordCapacityFailure 记录一次容量耗尽失败
	RecordCapacityFailure(event types.EventID)

	// RecordDuplicateReject 记录一次重复订阅拒绝
	RecordDuplicateReject(event types.EventID)

	// RecordWaitOK 记录一次等待命中
	RecordWaitOK(event types.EventID)

	// RecordWaitTimeout 记录一次等待超时
	RecordWaitTimeout(event types.EventID)

	// RecordWaitCanceled 记录一次等待被取消
	RecordWaitCanceled(event types.EventID)
}

// 确保 BusCounter 实现 Recorder 接口
var _ Recorder = (*BusCounter)(nil)

// Nop 空统计记录器
//
// 统计禁用时注入，所有记录为空操作，快照返回零值。
type Nop struct{}

// RecordPush 空操作
func (Nop) RecordPush(types.EventID) {}

// RecordSignalDelivered 空操作
func (Nop) RecordSignalDelivered(types.EventID) {}

// RecordSignalCoalesced 空操作
func (Nop) RecordSignalCoalesced(types.EventID) {}

// RecordSignalDropped 空操作
func (Nop) RecordSignalDropped(types.EventID) {}

// RecordSubscribe 空操作
func (Nop) RecordSubscribe(types.EventID) {}

// RecordUnsubscribe 空操作
func (Nop) RecordUnsubscribe(types.EventID) {}

// RecordCapacityFailure 空操作
func (Nop) RecordCapacityFailure(types.EventID) {}

// RecordDuplicateReject 空操作
func (Nop) RecordDuplicateReject(types.EventID) {}

// RecordWaitOK 空操作
func (Nop) RecordWaitOK(types.EventID) {}

// RecordWaitTimeout 空操作
func (Nop) RecordWaitTimeout(types.EventID) {}

// RecordWaitCanceled 空操作
func (Nop) RecordWaitCanceled(types.EventID) {}

// Stats 返回零值快照
func (Nop) Stats() types.BusStats { return types.BusStats{} }

// EventStats 总是返回未命中
func (Nop) EventStats(types.EventID) (types.EventStats, bool) {
	return types.EventStats{}, false
}

// Reset 空操作
func (Nop) Reset() {}

// 确保 Nop 同时充当 Recorder 与只读报告器
var (
	_ Recorder           = Nop{}
	_ pkgif.StatsReporter = Nop{}
)
