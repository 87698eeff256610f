// Package types 定义 go-eventbus 的基础类型
//
// 本文件定义执行单元标识相关类型。
package types

import "fmt"

// ============================================================================
//                              UnitID - 执行单元标识
// ============================================================================

// UnitID 执行单元唯一标识符
//
// 由单元运行时（internal/core/unit）在注册时分配，进程内致密递增。
// 订阅表的槽位直接存储 UnitID，因此保留 UnitNone(0) 作为空槽哨兵，
// 真实单元从 1 开始编号。
type UnitID uint64

// UnitNone 空槽哨兵值
//
// 订阅表中值为 UnitNone 的槽位表示空闲，可被新订阅占用。
const UnitNone UnitID = 0

// IsNone 检查是否为空哨兵
func (u UnitID) IsNone() bool {
	return u == UnitNone
}

// String 返回 UnitID 的字符串表示
func (u UnitID) String() string {
	if u == UnitNone {
		return "unit-none"
	}
	return fmt.Sprintf("unit-%d", uint64(u))
}

// ============================================================================
//                              UnitInfo - 执行单元信息
// ============================================================================

// UnitInfo 执行单元的描述信息
//
// 由单元运行时维护，用于诊断接口和日志输出。
type UnitInfo struct {
	// ID 单元标识
	ID UnitID

	// Name 单元名称（创建时指定，不要求唯一）
	Name string

	// Token 跟踪令牌（UUID，用于日志关联）
	Token string

	// Spawned 是否由运行时派生（false 表示外部 goroutine 领养注册）
	Spawned bool
}

// String 返回单元信息的简短表示
func (i UnitInfo) String() string {
	if i.Name == "" {
		return i.ID.String()
	}
	return fmt.Sprintf("%s(%s)", i.Name, i.ID)
}
