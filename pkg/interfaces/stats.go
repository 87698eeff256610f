// Package interfaces 定义 go-eventbus 公共接口
//
// 本文件定义 StatsReporter 接口，提供总线统计上报。
package interfaces

import (
	"github.com/devprodest/go-eventbus/pkg/types"
)

// StatsReporter 定义统计上报接口
type StatsReporter interface {
	// Stats 返回总线整体统计快照
	Stats() types.BusStats

	// EventStats 返回单个事件的统计快照
	EventStats(event types.EventID) (types.EventStats, bool)

	// Reset 重置所有计数
	Reset()
}
