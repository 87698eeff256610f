package unit

import (
	"context"
	"sync"

	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// Handle 执行单元句柄
//
// 派生单元：句柄跟踪 fn 的运行，Done 在 fn 返回后关闭。
// 领养单元：句柄只承载身份，Done 在 Release 后关闭。
type Handle struct {
	info   types.UnitInfo
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	// err 在 close(done) 之前写入，此后只读
	err error

	releaseOnce sync.Once
	rt          *Runtime
}

// ID 返回单元标识
func (h *Handle) ID() types.UnitID {
	return h.info.ID
}

// Info 返回单元信息
func (h *Handle) Info() types.UnitInfo {
	return h.info
}

// Context 返回携带单元身份的 ctx
func (h *Handle) Context() context.Context {
	return h.ctx
}

// Done 返回单元退出通知通道
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err 返回单元的退出错误
//
// Done 关闭前总是返回 nil。
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Release 释放单元
//
// 派生单元：取消其 ctx 并等待 fn 返回，返回 fn 的错误。
// 领养单元：注销身份、回收通知槽行并关闭 Done。幂等。
func (h *Handle) Release() error {
	h.releaseOnce.Do(func() {
		if h.info.Spawned {
			h.cancel()
			<-h.done
			return
		}
		// 领养单元由调用方管理 goroutine，这里只回收身份
		h.rt.remove(h.info.ID)
		h.cancel()
		close(h.done)
	})

	if h.info.Spawned {
		<-h.done
	}
	return h.err
}

// finish 记录派生单元的退出结果
//
// 只能由运行单元的 goroutine 调用一次。
func (h *Handle) finish(err error) {
	h.err = err
	close(h.done)
}

// 确保 Handle 实现 UnitHandle 接口
var _ pkgif.UnitHandle = (*Handle)(nil)
