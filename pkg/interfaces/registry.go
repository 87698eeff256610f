// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 Registry 接口，提供事件订阅登记与推送/等待会合。
package interfaces

import (
	"context"
	"time"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// Registry 定义事件登记表接口
//
// Registry 维护「事件 → 定容订阅槽序列」的静态表，并在其上实现
// push/wait 会合协议。表的尺寸（事件数、每事件槽深）在构造期固定。
//
// 身份两层约定：显式身份形式（Subscribe/Unsubscribe）可代管任意单元；
// Self 形式从 ctx 解析当前单元身份，必须在被订阅的单元内调用。
type Registry interface {
	// Subscribe 将单元登记到指定事件的首个空槽
	//
	// 失败情形：
	//   - ErrInvalidEvent: 事件越界
	//   - ErrDuplicateSubscription: 单元已在该事件的槽序列中
	//   - ErrCapacityExhausted: 无空槽（静态配置缺陷，fail-fast）
	Subscribe(event types.EventID, unit types.UnitID) error

	// Unsubscribe 清除指定事件中首个等于 unit 的槽
	//
	// 返回是否清除了槽位。身份不存在时为安全空操作（返回 false），
	// 以支持关闭路径上的尽力清理语义。
	Unsubscribe(event types.EventID, unit types.UnitID) bool

	// SubscribeSelf 以调用方单元身份订阅
	//
	// 身份从 ctx 解析（由单元运行时在派生时注入）。
	// 必须在订阅单元自身内调用；代管其他单元请用 Subscribe。
	SubscribeSelf(ctx context.Context, event types.EventID) error

	// UnsubscribeSelf 以调用方单元身份退订
	UnsubscribeSelf(ctx context.Context, event types.EventID) bool

	// Push 广播一次事件发生
	//
	// 按槽序扫描该事件的全部槽位，对每个被占用槽位触发一次锁存
	// 通知；随后让出处理器以便新就绪单元获得调度。无订阅者时为
	// 空操作。返回实际通知的单元数。
	Push(event types.EventID) int

	// Wait 阻塞等待事件发生
	//
	// 必须由已订阅的单元在自身内调用（身份从 ctx 解析）。
	// 返回 true 表示事件已发生（消费一次挂起信号）；false 表示
	// 超时或 ctx 取消。超时是常规结果，不是错误。
	//
	// timeout 语义与 Notifier.Await 一致：正值限时等待，
	// 零值轮询，负值无限等待。
	Wait(ctx context.Context, event types.EventID, timeout time.Duration) bool

	// Subscribers 返回指定事件当前占用槽位的单元（按槽序）
	Subscribers(event types.EventID) []types.UnitID

	// EventCount 返回配置的事件数
	EventCount() int

	// SlotDepth 返回每事件的订阅槽深
	SlotDepth() int
}
