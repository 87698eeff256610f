package unit

import (
	"context"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// ctxKey 单元身份的 ctx 键类型
//
// 非导出类型，身份只能经本包的 WithUnit 注入。
type ctxKey struct{}

// WithUnit 将单元身份注入 ctx
//
// 运行时在派生 / 领养单元时调用；应用代码通常不需要直接使用，
// 除非要把身份桥接到自建的 ctx 链上。
func WithUnit(ctx context.Context, unit types.UnitID) context.Context {
	return context.WithValue(ctx, ctxKey{}, unit)
}

// FromContext 从 ctx 解析单元身份
//
// 返回 false 表示 ctx 未携带身份（调用方不在受管单元内）。
func FromContext(ctx context.Context) (types.UnitID, bool) {
	if ctx == nil {
		return types.UnitNone, false
	}
	unit, ok := ctx.Value(ctxKey{}).(types.UnitID)
	if !ok || unit.IsNone() {
		return types.UnitNone, false
	}
	return unit, true
}
