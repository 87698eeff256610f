package eventbus

import (
	"errors"

	"github.com/devprodest/go-eventbus/internal/core/registry"
	"github.com/devprodest/go-eventbus/internal/core/unit"
)

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 总线生命周期错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotStarted 总线未启动
	ErrNotStarted = errors.New("bus not started")

	// ErrAlreadyStarted 总线已启动
	ErrAlreadyStarted = errors.New("bus already started")

	// ErrBusClosed 总线已关闭
	ErrBusClosed = errors.New("bus closed")

	// ────────────────────────────────────────────────────────────────────────
	// 登记表错误（内部哨兵的再导出，便于调用方 errors.Is 判定）
	// ────────────────────────────────────────────────────────────────────────

	// ErrInvalidEvent 事件编号越界
	ErrInvalidEvent = registry.ErrInvalidEvent

	// ErrInvalidUnit 无效的单元身份
	ErrInvalidUnit = registry.ErrInvalidUnit

	// ErrCapacityExhausted 订阅槽耗尽
	//
	// 槽深是静态配置的一部分，耗尽意味着配置与实际订阅压力不符，
	// 应当调大 SlotDepth 而不是在运行期重试。
	ErrCapacityExhausted = registry.ErrCapacityExhausted

	// ErrDuplicateSubscription 重复订阅
	ErrDuplicateSubscription = registry.ErrDuplicateSubscription

	// ErrNoIdentity ctx 未携带单元身份
	ErrNoIdentity = registry.ErrNoIdentity

	// ────────────────────────────────────────────────────────────────────────
	// 单元运行时错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrRuntimeClosed 单元运行时已关闭
	ErrRuntimeClosed = unit.ErrRuntimeClosed

	// ErrShutdownTimeout 关闭时等待单元退出超时
	ErrShutdownTimeout = unit.ErrShutdownTimeout
)
