package eventbus

import (
	pkgif "github.com/devprodest/go-eventbus/pkg/interfaces"
	"github.com/devprodest/go-eventbus/pkg/types"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
// 更新此版本号时，请同步更新 version.json
const Version = "v1.0.0"

// BuildInfo 构建信息（通过 ldflags 注入）
var (
	// GitCommit Git 提交哈希
	GitCommit string

	// BuildDate 构建日期
	BuildDate string

	// GoVersion Go 版本
	GoVersion string
)

// VersionInfo 返回完整版本信息字符串
func VersionInfo() string {
	info := "go-eventbus " + Version
	if GitCommit != "" {
		info += " (" + GitCommit[:min(8, len(GitCommit))] + ")"
	}
	if BuildDate != "" {
		info += " built " + BuildDate
	}
	return info
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

// EventID 事件编号，详见 pkg/types
//
// 别名导出使调用方只需导入根包即可完成常见操作。
type EventID = types.EventID

// UnitID 执行单元标识，详见 pkg/types
type UnitID = types.UnitID

// UnitInfo 执行单元信息，详见 pkg/types
type UnitInfo = types.UnitInfo

// BusStats 总线统计快照，详见 pkg/types
type BusStats = types.BusStats

// EventStats 单事件统计快照，详见 pkg/types
type EventStats = types.EventStats

// UnitFunc 执行单元主体函数，详见 pkg/interfaces
type UnitFunc = pkgif.UnitFunc

// UnitHandle 执行单元句柄，详见 pkg/interfaces
type UnitHandle = pkgif.UnitHandle

// UnitNone 空槽哨兵值
const UnitNone = types.UnitNone
