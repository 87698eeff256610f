// Package metrics 实现事件总线统计
//
// 提供总线级与事件级的累计计数器，支持：
//   - 推送 / 通知送达 / 锁存合并 / 丢弃计数
//   - 订阅 / 退订 / 容量失败 / 重复拒绝计数
//   - 等待结果（命中 / 超时 / 取消）计数
//   - 按事件细分的统计与订阅者水位
//   - Prometheus Collector 导出
//
// # 快速开始
//
//	counter := metrics.NewBusCounter(8, nil)
//	counter.RecordPush(0)
//	counter.RecordSignalDelivered(0)
//
//	snap := counter.Stats()
//	fmt.Println(snap.Pushes, snap.Signaled)
//
// # Prometheus 导出
//
//	collector := metrics.NewCollector(counter, "eventbus", "bus")
//	prometheus.MustRegister(collector)
//
// # 架构定位
//
// Tier: Core Layer Level 1（无内部依赖）
//
// 依赖关系：
//   - 依赖：pkg/types, pkg/interfaces
//   - 被依赖：registry, notify, 根门面
//
// # 并发安全
//
// 全部计数器使用 atomic 操作，记录路径无锁；
// Stats 快照为逐计数器的原子读取，整体非严格一致但单调不回退。
package metrics
