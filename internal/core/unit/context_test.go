package unit

import (
	"context"
	"testing"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// TestFromContext 测试身份的注入与解析
func TestFromContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		ctx := WithUnit(context.Background(), types.UnitID(7))

		unit, ok := FromContext(ctx)
		if !ok {
			t.Fatal("FromContext() ok = false, want true")
		}
		if unit != 7 {
			t.Errorf("FromContext() = %v, want unit-7", unit)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, ok := FromContext(context.Background()); ok {
			t.Error("FromContext() ok = true for bare ctx, want false")
		}
	})

	t.Run("NilContext", func(t *testing.T) {
		if _, ok := FromContext(nil); ok {
			t.Error("FromContext(nil) ok = true, want false")
		}
	})

	t.Run("NoneIdentity", func(t *testing.T) {
		// 注入空哨兵等同于未携带身份
		ctx := WithUnit(context.Background(), types.UnitNone)
		if _, ok := FromContext(ctx); ok {
			t.Error("FromContext() ok = true for UnitNone, want false")
		}
	})

	t.Run("Nested", func(t *testing.T) {
		// 内层注入覆盖外层
		ctx := WithUnit(context.Background(), types.UnitID(1))
		ctx = WithUnit(ctx, types.UnitID(2))

		unit, ok := FromContext(ctx)
		if !ok || unit != 2 {
			t.Errorf("FromContext() = %v, %v, want unit-2, true", unit, ok)
		}
	})
}
