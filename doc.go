// Package eventbus 提供进程内的事件通知总线
//
// go-eventbus 是一个面向「多执行单元协作」场景的轻量事件总线：
// 生产者推送事件编号，订阅了该事件的执行单元经由锁存信号被唤醒。
// 事件不携带载荷，只表达「某事已发生」——载荷语义由上层协议自行约定。
//
// # 核心概念
//
// 总线围绕三个核心概念构建：
//
//   - Bus: 总线门面，用户交互的主入口
//   - Event: 事件编号（EventID），订阅/推送/等待的寻址键
//   - Unit: 执行单元，由总线派生或由调用方注册的 goroutine 身份
//
// # 快速开始
//
//	import "github.com/devprodest/go-eventbus"
//
//	// 1. 创建并启动总线
//	bus, err := eventbus.Run(ctx,
//	    eventbus.WithEventNames("boot", "frame", "shutdown"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bus.Close()
//
//	// 2. 派生消费者单元
//	bus.Spawn("consumer", func(ctx context.Context) error {
//	    if err := bus.SubscribeSelf(ctx, FrameEvent); err != nil {
//	        return err
//	    }
//	    for bus.Wait(ctx, FrameEvent, time.Second) {
//	        handleFrame()
//	    }
//	    return nil
//	})
//
//	// 3. 推送事件
//	bus.Push(FrameEvent)
//
// # API 层次结构
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│  入口层                                                          │
//	│  ┌─────────┐                                                     │
//	│  │   Bus   │  eventbus.New() / eventbus.Run()                   │
//	│  └─────────┘                                                     │
//	├─────────────────────────────────────────────────────────────────┤
//	│  核心层                                                          │
//	│  ┌──────────┐ ┌────────┐ ┌──────┐ ┌─────────┐                   │
//	│  │ Registry │ │ Notify │ │ Unit │ │ Metrics │                   │
//	│  └──────────┘ └────────┘ └──────┘ └─────────┘                   │
//	│  订阅登记表 / 锁存信号 / 单元运行时 / 统计                        │
//	└─────────────────────────────────────────────────────────────────┘
//
// # 文件组织
//
// 本包按功能领域组织代码：
//
//	eventbus/
//	├── eventbus.go           # 版本信息、类型别名
//	│
//	# ════════════════════════════════════════════════════════════════
//	#                          入口层（Bus）
//	# ════════════════════════════════════════════════════════════════
//	├── bus.go                # Bus 结构定义、New()、Run()
//	├── bus_lifecycle.go      # Start、Stop、Close、BusState
//	├── bus_api.go            # Subscribe、Push、Wait、Spawn 等委托方法
//	│
//	# ════════════════════════════════════════════════════════════════
//	#                          支撑层
//	# ════════════════════════════════════════════════════════════════
//	├── options.go            # WithXxx 配置选项
//	├── presets.go            # 预设配置（Small、Default、Large）
//	├── errors.go             # 错误定义
//	└── fx.go                 # Fx 应用组装
//
// # 预设配置
//
// go-eventbus 提供三种预设配置：
//
//	eventbus.PresetNameSmall    小型配置，4 事件 × 3 槽
//	eventbus.PresetNameDefault  默认配置，8 事件 × 5 槽（推荐）
//	eventbus.PresetNameLarge    大型配置，32 事件 × 8 槽
//
// # 会合语义
//
// 推送与等待之间是锁存的二值信号，不是队列：
//
//   - Push 对每个被占用的订阅槽触发一次通知；信号已挂起时再次
//     Push 不会叠加（至多一个挂起）。
//   - Wait 消费一次挂起信号即返回 true；超时或取消返回 false。
//   - 事件不携带数据；需要数据的场景应当配合共享状态或通道使用。
//
// # 更多资源
//
//   - 使用示例: examples/
//   - 设计记录: DESIGN.md
//
// # 版本
//
// 当前版本: v1.0.0
//
// 更多信息请访问: https://github.com/devprodest/go-eventbus
package eventbus
