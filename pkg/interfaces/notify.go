// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 Notifier 接口，即宿主调度器提供的挂起原语。
package interfaces

import (
	"context"
	"time"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// Notifier 定义挂起原语接口
//
// 对每个（单元, 事件下标）对提供一条独立寻址的二值锁存信号通道：
// Signal 置位，Await 带超时消费。信号饱和于一次挂起（二值信号量
// 语义），绝不累计成计数器。
//
// 容量契约：可用事件下标数不得超过 Slots()；该约束在配置校验期
// 一次性检查（参见 config.Validate），不属于运行时接口。
type Notifier interface {
	// Attach 为单元分配通知槽行
	//
	// 由单元运行时在派生/领养时调用。重复 Attach 同一单元是错误。
	Attach(unit types.UnitID) error

	// Detach 释放单元的通知槽行
	//
	// 返回该单元是否存在。单元退出路径上的尽力清理，不报错。
	Detach(unit types.UnitID) bool

	// Signal 置位单元在指定事件下标上的锁存信号
	//
	// 非阻塞。信号已挂起时饱和（合并，不叠加）。
	// 返回 false 表示单元没有通知槽行（通知被丢弃）。
	Signal(unit types.UnitID, event types.EventID) bool

	// Await 阻塞消费一次挂起信号
	//
	// 返回 true 表示消费到信号（含调用前已锁存的信号——立即返回，
	// 不消耗超时预算）；false 表示超时或 ctx 取消。
	//
	// timeout 语义：
	//   - timeout > 0: 最多阻塞 timeout
	//   - timeout == 0: 轮询，只消费已锁存的信号
	//   - timeout < 0: 无限等待（仅受 ctx 约束）
	Await(ctx context.Context, unit types.UnitID, event types.EventID, timeout time.Duration) bool

	// Pending 检查单元在指定事件下标上是否有挂起信号
	//
	// 诊断用途；不消费信号。
	Pending(unit types.UnitID, event types.EventID) bool

	// Slots 返回每单元的通知槽容量（可用事件下标数上限）
	Slots() int
}
