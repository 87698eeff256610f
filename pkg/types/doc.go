// Package types 定义 go-eventbus 的公共数据结构
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
// 基础类型:
//   - event.go - EventID 事件标识、EventNames 事件命名表
//   - unit.go  - UnitID 执行单元标识、UnitInfo 单元信息
//   - stats.go - BusStats / EventStats 统计快照
//
// # 类型约定
//
// EventID 是编译/配置期确定的小范围枚举索引，有效范围 [0, EventCount)。
// UnitID 是调度器分配的致密句柄，UnitNone(0) 保留为空槽哨兵值，
// 真实单元从 1 开始编号。
package types
