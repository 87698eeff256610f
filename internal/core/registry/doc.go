// Package registry 实现事件登记表
//
// 登记表是事件总线的核心：一张静态表把每个事件标识映射到一组
// 固定容量的订阅槽，槽位存放订阅单元的标识。表的尺寸
// （EventCount × SlotDepth）在构建时确定，运行期不增不减。
//
// 操作语义：
//   - Subscribe: 从左到右找第一个空槽写入；重复订阅被拒绝；
//     无空槽是致命的静态配置缺陷（容量应按设计预留）
//   - Unsubscribe: 清除第一个匹配槽位；不存在是安全的空操作
//   - Push: 按槽序扫描一遍，对每个被占用槽位触发一次锁存通知，
//     然后让出处理器；无订阅者时为空操作
//   - Wait: 由已订阅单元阻塞在自己的通知槽上，直到 Push 或超时；
//     超时是常规结果，不是错误
//
// # 快速开始
//
//	reg := registry.NewRegistry(8, 5, nil, notifier, resolver, nil)
//
//	// 订阅方（在受管单元内）
//	_ = reg.SubscribeSelf(ctx, EventFrameDone)
//	for reg.Wait(ctx, EventFrameDone, time.Second) {
//	    // 事件已发生
//	}
//
//	// 生产者侧
//	reg.Push(EventFrameDone)
//
// # 广播与锁存
//
// 一次 Push 对每个当前订阅者恰好触发一次锁存通知，无论其是否
// 正在等待。通知饱和于一次挂起：连续多次 Push 之间若订阅者
// 未消费，只会观察到一次事件发生（二值信号量语义，绝非计数器）。
//
// # 架构定位
//
// Tier: Core Layer Level 2
//
// 依赖关系：
//   - 依赖：pkg/types, pkg/interfaces, internal/core/metrics
//   - 被依赖：根门面
//
// # 并发安全
//
// 订阅表由 sync.RWMutex 保护：写者（Subscribe/Unsubscribe）持写锁
// 完成 O(SlotDepth) 扫描改写；Push 只持读锁拷贝槽行，通知在锁外
// 触发——生产者绝不会被等待中的消费者阻塞，通知路径也绝不在表锁
// 内执行。
package registry
