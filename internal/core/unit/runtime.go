package unit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/lib/log"
	"github.com/devprodest/go-eventbus/pkg/types"
)

var logger = log.Logger("core/unit")

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrRuntimeClosed 运行时已关闭
	ErrRuntimeClosed = errors.New("unit runtime closed")

	// ErrShutdownTimeout 关闭时等待单元退出超时
	ErrShutdownTimeout = errors.New("unit shutdown timed out")
)

// ============================================================================
// Runtime - 执行单元运行时
// ============================================================================

// Runtime 执行单元运行时实现
//
// 分配 UnitID、注入身份 ctx、挂接 / 回收通知槽行，
// 并跟踪受管 goroutine 的生命周期。
type Runtime struct {
	notifier        pkgif.Notifier
	shutdownTimeout time.Duration

	rootCtx    context.Context
	rootCancel context.CancelFunc

	// group 跟踪全部派生单元
	group errgroup.Group

	nextID atomic.Uint64

	mu       sync.RWMutex
	units    map[types.UnitID]*Handle
	exitErrs []error
	closed   bool
}

// NewRuntime 创建执行单元运行时
//
// shutdownTimeout 为 Close 等待派生单元退出的上限，
// 零值表示无限等待。
func NewRuntime(notifier pkgif.Notifier, shutdownTimeout time.Duration) *Runtime {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runtime{
		notifier:        notifier,
		shutdownTimeout: shutdownTimeout,
		rootCtx:         ctx,
		rootCancel:      cancel,
		units:           make(map[types.UnitID]*Handle),
	}
}

// allocate 分配身份、挂接通知槽行并登记句柄
func (r *Runtime) allocate(name string, spawned bool) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrRuntimeClosed
	}

	id := types.UnitID(r.nextID.Add(1))
	if err := r.notifier.Attach(id); err != nil {
		return nil, fmt.Errorf("attach notify row: %w", err)
	}

	ctx, cancel := context.WithCancel(r.rootCtx)
	handle := &Handle{
		info: types.UnitInfo{
			ID:      id,
			Name:    name,
			Token:   uuid.NewString(),
			Spawned: spawned,
		},
		ctx:    WithUnit(ctx, id),
		cancel: cancel,
		done:   make(chan struct{}),
		rt:     r,
	}
	r.units[id] = handle
	return handle, nil
}

// remove 注销单元并回收通知槽行
func (r *Runtime) remove(id types.UnitID) {
	r.mu.Lock()
	_, ok := r.units[id]
	if ok {
		delete(r.units, id)
	}
	r.mu.Unlock()

	if ok {
		r.notifier.Detach(id)
	}
}

// Spawn 派生一个受管执行单元
//
// fn 在新 goroutine 中运行，其 ctx 携带单元身份并在运行时
// 关闭时取消。单元退出后身份注销、通知槽行自动回收。
func (r *Runtime) Spawn(name string, fn pkgif.UnitFunc) (pkgif.UnitHandle, error) {
	if fn == nil {
		return nil, errors.New("unit fn is nil")
	}

	handle, err := r.allocate(name, true)
	if err != nil {
		return nil, err
	}

	logger.Info("unit spawned",
		"unit", handle.info.ID, "name", name, "token", handle.info.Token)

	r.group.Go(func() error {
		var exitErr error
		// 先回收槽行再公告退出，Done 的观察者看到的是已回收状态
		defer func() {
			r.remove(handle.info.ID)
			handle.finish(exitErr)
		}()

		if err := fn(handle.ctx); err != nil {
			logger.Warn("unit exited with error",
				"unit", handle.info.ID, "name", name, "err", err)
			exitErr = fmt.Errorf("unit %s: %w", handle.info, err)
			r.recordExitErr(exitErr)
		} else {
			logger.Debug("unit exited", "unit", handle.info.ID, "name", name)
		}
		return exitErr
	})

	return handle, nil
}

// Register 领养调用方自管的 goroutine 为执行单元
//
// 只分配身份与通知槽行，不派生 goroutine。调用方通过
// Handle.Context() 获得携带身份的 ctx，用毕 Release。
func (r *Runtime) Register(name string) (pkgif.UnitHandle, error) {
	handle, err := r.allocate(name, false)
	if err != nil {
		return nil, err
	}

	logger.Debug("unit registered",
		"unit", handle.info.ID, "name", name, "token", handle.info.Token)
	return handle, nil
}

// Resolve 从 ctx 解析调用方单元身份
func (r *Runtime) Resolve(ctx context.Context) (types.UnitID, bool) {
	return FromContext(ctx)
}

// Info 查询单元信息
func (r *Runtime) Info(unit types.UnitID) (types.UnitInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handle, ok := r.units[unit]
	if !ok {
		return types.UnitInfo{}, false
	}
	return handle.info, true
}

// Units 返回当前在册单元的快照
func (r *Runtime) Units() []types.UnitInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]types.UnitInfo, 0, len(r.units))
	for _, handle := range r.units {
		infos = append(infos, handle.info)
	}
	return infos
}

// Close 关闭运行时
//
// 取消全部受管单元并等待派生单元退出（受 shutdownTimeout 约束），
// 聚合各单元的退出错误。领养单元只被取消与注销，不等待。
func (r *Runtime) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrRuntimeClosed
	}
	r.closed = true

	// 领养单元不受 group 跟踪，先收集再注销
	var adopted []*Handle
	for _, handle := range r.units {
		if !handle.info.Spawned {
			adopted = append(adopted, handle)
		}
	}
	r.mu.Unlock()

	// 取消全部单元
	r.rootCancel()

	// 等待派生单元退出
	waitDone := make(chan struct{})
	go func() {
		_ = r.group.Wait()
		close(waitDone)
	}()

	var errs []error
	if r.shutdownTimeout > 0 {
		select {
		case <-waitDone:
		case <-time.After(r.shutdownTimeout):
			logger.Error("shutdown timed out waiting for units")
			errs = append(errs, ErrShutdownTimeout)
		}
	} else {
		<-waitDone
	}

	// 注销领养单元
	for _, handle := range adopted {
		_ = handle.Release()
	}

	// 聚合派生单元的退出错误
	r.mu.RLock()
	remaining := len(r.units)
	errs = append(errs, r.exitErrs...)
	r.mu.RUnlock()
	if remaining > 0 {
		logger.Warn("units still registered after close", "count", remaining)
	}

	logger.Info("unit runtime closed", "errors", len(errs))
	return multierr.Combine(errs...)
}

// recordExitErr 记录派生单元的非空退出错误
func (r *Runtime) recordExitErr(err error) {
	r.mu.Lock()
	r.exitErrs = append(r.exitErrs, err)
	r.mu.Unlock()
}

// 确保 Runtime 实现 UnitRegistry 接口
var _ pkgif.UnitRegistry = (*Runtime)(nil)
