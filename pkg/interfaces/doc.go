// Package interfaces 定义 go-eventbus 的公共接口
//
// 本包采用扁平命名，一个接口文件对应一个实现目录：
//
//   - registry.go - Registry 事件登记表（internal/core/registry）
//   - notify.go   - Notifier 挂起原语（internal/core/notify）
//   - unit.go     - UnitRegistry 执行单元运行时（internal/core/unit）
//   - stats.go    - StatsReporter 统计上报（internal/core/metrics）
//
// # 依赖方向
//
// pkg/interfaces 只依赖 pkg/types，不依赖任何 internal 包。
// internal 实现依赖本包并通过 Fx 模块装配（参见各实现目录的 module.go）。
//
// # 协作契约
//
// Registry 是核心组件；Notifier 与 UnitRegistry 是宿主调度器侧的
// 协作者。捆绑实现可通过接口替换：嵌入方若自带调度器，只需实现
// Notifier + IdentityResolver 并以 Fx 选项注入。
package interfaces
