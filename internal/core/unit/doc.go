// Package unit 实现执行单元运行时
//
// 负责执行单元的身份分配与生命周期管理：
//   - Spawn: 派生受管 goroutine，自动挂接通知槽行
//   - Register: 领养调用方自管的 goroutine，只分配身份
//   - 身份经 context 注入，Resolve 从 ctx 解析
//   - Close: 取消全部受管单元，限时等待并聚合退出错误
//
// # 快速开始
//
//	rt := unit.NewRuntime(notifier, 10*time.Second)
//	defer rt.Close()
//
//	handle, _ := rt.Spawn("consumer", func(ctx context.Context) error {
//	    id, _ := unit.FromContext(ctx) // 单元自己的身份
//	    _ = id
//	    <-ctx.Done()
//	    return nil
//	})
//	_ = handle
//
//	// 领养已有 goroutine
//	h, _ := rt.Register("main-loop")
//	defer h.Release()
//	ctx := h.Context() // 携带身份的 ctx
//
// # 身份传播
//
// 单元身份沿 ctx 传播：Spawn 传给 fn 的 ctx、Register 句柄的
// Context() 均已携带身份。registry 的 Self 形式（SubscribeSelf 等）
// 依赖该身份解析出调用方单元。
//
// # 架构定位
//
// Tier: Core Layer Level 2
//
// 依赖关系：
//   - 依赖：pkg/types, pkg/interfaces, internal/core/notify
//   - 被依赖：根门面
//
// # 并发安全
//
// 单元表由 sync.RWMutex 保护，标识分配使用 atomic 递增；
// 句柄的 Release 幂等（sync.Once）。
package unit
