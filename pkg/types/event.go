// Package types 定义 go-eventbus 的基础类型
//
// 本文件定义事件标识相关类型。
package types

import "fmt"

// ============================================================================
//                              EventID - 事件标识
// ============================================================================

// EventID 事件唯一标识符
//
// 事件集合在配置期固定，有效范围为 [0, EventCount)。
// Go 的类型系统无法表达区间整数，因此范围合法性由 API 边界
// 统一校验（参见 registry 包），越界返回 ErrInvalidEvent。
//
// 应用侧通常以常量枚举方式定义自己的事件表：
//
//	const (
//	    EventFrameBegin types.EventID = iota
//	    EventFrameEnd
//	    EventEncodeDone
//	)
type EventID uint32

// Index 返回 EventID 的数组下标形式
func (e EventID) Index() int {
	return int(e)
}

// InRange 检查 EventID 是否落在 [0, count) 内
func (e EventID) InRange(count int) bool {
	return int(e) < count
}

// String 返回 EventID 的字符串表示
//
// 格式为 "evt-<n>"，仅用于日志；带名称的表示见 EventNames.Name。
func (e EventID) String() string {
	return fmt.Sprintf("evt-%d", uint32(e))
}

// ============================================================================
//                              EventNames - 事件命名表
// ============================================================================

// EventNames 事件命名表
//
// 按 EventID 下标索引的可读名称，用于日志和指标标签。
// 命名表为空或下标越界时回退到 EventID.String() 的默认格式。
type EventNames []string

// Name 返回指定事件的可读名称
func (n EventNames) Name(e EventID) string {
	if i := e.Index(); i < len(n) && n[i] != "" {
		return n[i]
	}
	return e.String()
}

// Filled 返回长度补齐到 count 的命名表
//
// 缺失的条目以默认格式填充。用于指标模块等需要
// 固定长度标签表的场景。
func (n EventNames) Filled(count int) EventNames {
	out := make(EventNames, count)
	for i := 0; i < count; i++ {
		out[i] = n.Name(EventID(i))
	}
	return out
}
