// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 UnitRegistry 接口，提供执行单元身份与生命周期管理。
package interfaces

import (
	"context"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// UnitFunc 执行单元主体函数
//
// ctx 携带单元身份（可经 IdentityResolver.Resolve 解析），
// 并在运行时关闭时取消。返回的错误由 Runtime.Close 聚合上报。
type UnitFunc func(ctx context.Context) error

// IdentityResolver 定义执行单元身份解析接口
//
// Registry 的 Self 形式依赖本接口将调用方 ctx 解析为 UnitID。
// 这是「当前执行单元身份」服务的最小面；UnitRegistry 内嵌之。
type IdentityResolver interface {
	// Resolve 从 ctx 解析调用方单元身份
	//
	// 返回 false 表示 ctx 未携带身份（不在受管单元内调用）。
	Resolve(ctx context.Context) (types.UnitID, bool)
}

// UnitRegistry 定义执行单元运行时接口
//
// 负责 UnitID 分配、身份注入（ctx）、通知槽行的挂接与回收，
// 以及受管 goroutine 的生命周期跟踪。
type UnitRegistry interface {
	IdentityResolver

	// Spawn 派生一个受管执行单元
	//
	// 分配 UnitID、挂接通知槽行，在新 goroutine 中运行 fn；
	// fn 的 ctx 携带单元身份。单元退出后槽行自动回收。
	Spawn(name string, fn UnitFunc) (UnitHandle, error)

	// Register 领养调用方自管的 goroutine 为执行单元
	//
	// 只分配身份与通知槽行，不派生 goroutine；调用方通过
	// UnitHandle.Context() 获得携带身份的 ctx，用毕 Release。
	Register(name string) (UnitHandle, error)

	// Info 查询单元信息
	Info(unit types.UnitID) (types.UnitInfo, bool)

	// Units 返回当前在册单元（快照）
	Units() []types.UnitInfo

	// Close 关闭运行时
	//
	// 取消全部受管单元并等待退出，聚合各单元的退出错误。
	Close() error
}

// UnitHandle 定义执行单元句柄接口
type UnitHandle interface {
	// ID 返回单元标识
	ID() types.UnitID

	// Info 返回单元信息
	Info() types.UnitInfo

	// Context 返回携带单元身份的 ctx
	//
	// 派生单元的 ctx 即传入 fn 的那个；领养单元的 ctx 由句柄持有。
	Context() context.Context

	// Done 返回单元退出通知通道
	//
	// 派生单元在 fn 返回后关闭；领养单元在 Release 后关闭。
	Done() <-chan struct{}

	// Err 返回单元的退出错误（Done 关闭前为 nil）
	Err() error

	// Release 释放单元
	//
	// 派生单元：取消其 ctx 并等待 fn 返回；领养单元：仅注销身份
	// 并回收通知槽行。幂等。
	Release() error
}
