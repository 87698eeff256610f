// Package notify 实现挂起原语
//
// 为每个执行单元维护一行定长的锁存二值信号（通知槽行）：
// 每个事件下标对应一条容量为 1 的信号通道。Signal 置位，
// Await 带超时消费。信号饱和于一次挂起——重复置位合并，
// 绝不累计成计数器。
//
// # 快速开始
//
//	table := notify.NewSignalTable(8, clock.New(), metrics.Nop{})
//
//	_ = table.Attach(unit)
//	defer table.Detach(unit)
//
//	// 生产者侧
//	table.Signal(unit, event)
//
//	// 消费者侧
//	if table.Await(ctx, unit, event, time.Second) {
//	    // 事件已发生
//	}
//
// # 超时语义
//
//   - timeout > 0: 最多阻塞 timeout
//   - timeout == 0: 轮询，只消费已锁存的信号
//   - timeout < 0: 无限等待（仅受 ctx 约束）
//
// 定时器来自注入的 clock.Clock，测试中以 clock.NewMock 驱动时间。
//
// # 架构定位
//
// Tier: Core Layer Level 1
//
// 依赖关系：
//   - 依赖：pkg/types, pkg/interfaces, internal/core/metrics
//   - 被依赖：registry, unit
//
// # 并发安全
//
// 槽行表由 sync.RWMutex 保护；单条信号通道天然并发安全。
// Detach 关闭行的 done 通道，滞留在 Await 中的调用立即以
// false 返回，不会泄漏 goroutine。
package notify
