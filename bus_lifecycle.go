package eventbus

import (
	"context"
	"fmt"
	"time"
)

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期常量
// ════════════════════════════════════════════════════════════════════════════

const (
	// initializeTimeout 初始化超时（Fx App Start）
	initializeTimeout = 30 * time.Second

	// closeTimeout Close 的默认停止超时
	closeTimeout = 30 * time.Second
)

// ════════════════════════════════════════════════════════════════════════════
//                              生命周期管理
// ════════════════════════════════════════════════════════════════════════════

// Start 启动总线
//
// 启动 Fx 应用，进入运行状态。启动后 Spawn/Register 可用。
//
// 总线的生命周期是一次性的：Start → Stop 之后不可重新启动，
// 需要新总线请重新 New。这与单元运行时的排空语义一致——
// Stop 会等待全部受管单元退出并释放其通知槽行。
func (b *Bus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	if b.started {
		return ErrAlreadyStarted
	}

	// ════════════════════════════════════════════════════════════════════════
	// Phase 1: Initialize - 启动 Fx App
	// ════════════════════════════════════════════════════════════════════════
	b.state = StateInitializing
	logger.Debug("正在初始化总线")

	initCtx, initCancel := context.WithTimeout(ctx, initializeTimeout)
	defer initCancel()

	if err := b.app.Start(initCtx); err != nil {
		b.state = StateIdle
		logger.Error("总线初始化失败", "error", err)
		return fmt.Errorf("initialize failed: %w", err)
	}

	// ════════════════════════════════════════════════════════════════════════
	// Phase 2: Running - 进入运行状态
	// ════════════════════════════════════════════════════════════════════════
	b.state = StateRunning
	b.started = true
	logger.Info("总线启动成功",
		"events", b.registry.EventCount(),
		"slotDepth", b.registry.SlotDepth(),
	)

	return nil
}

// Stop 停止总线
//
// 停止 Fx 应用：取消全部受管单元、等待退出并释放通知槽行。
// 停止是终态操作，之后总线不可再启动。
func (b *Bus) Stop(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	if !b.started {
		return ErrNotStarted
	}

	return b.stopLocked(ctx)
}

// stopLocked 执行停止流程，调用方必须持有 b.mu
func (b *Bus) stopLocked(ctx context.Context) error {
	b.state = StateStopping
	logger.Debug("正在停止总线")

	// 停止 Fx 应用（OnStop 钩子关闭单元运行时）
	err := b.app.Stop(ctx)

	b.state = StateStopped
	b.started = false
	b.closed = true

	if err != nil {
		logger.Error("停止总线失败", "error", err)
		return fmt.Errorf("stop fx app: %w", err)
	}

	logger.Info("总线已停止")
	return nil
}

// Close 关闭总线并释放所有资源
//
// 与 Stop 的区别仅在调用约束：Close 幂等且不需要总线已启动，
// 适合放在 defer 中无条件调用。
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil // 已经关闭
	}

	if !b.started {
		// 未曾启动：只标记终态，无需停止 Fx 应用
		b.state = StateStopped
		b.closed = true
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	return b.stopLocked(ctx)
}

// State 返回总线当前状态
func (b *Bus) State() BusState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}
