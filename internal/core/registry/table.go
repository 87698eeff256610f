package registry

import (
	"sync"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// claimResult 订阅槽申领结果
type claimResult int

const (
	claimOK        claimResult = iota // 申领成功
	claimDuplicate                    // 单元已占用该事件的槽位
	claimFull                         // 无空槽
)

// table 订阅表
//
// rows[event][slot] 存放订阅单元标识，types.UnitNone 表示空槽。
// 整张表在构建时一次性铺底分配，生命周期内不增不减。
//
// 写者（claim/release）持写锁完成 O(SlotDepth) 扫描改写；
// 读者（snapshot）持读锁拷贝单行。通知触发在锁外进行。
type table struct {
	mu        sync.RWMutex
	slotDepth int
	rows      [][]types.UnitID
}

// newTable 创建订阅表
func newTable(eventCount, slotDepth int) *table {
	backing := make([]types.UnitID, eventCount*slotDepth)
	rows := make([][]types.UnitID, eventCount)
	for i := range rows {
		rows[i] = backing[i*slotDepth : (i+1)*slotDepth]
	}
	return &table{
		slotDepth: slotDepth,
		rows:      rows,
	}
}

// claim 为单元申领事件的第一个空槽
//
// 单遍扫描：先检出重复占用，同时记住首个空槽下标。
// 重复占用优先于容量判定上报。
func (t *table) claim(event types.EventID, unit types.UnitID) claimResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := t.rows[event.Index()]
	firstEmpty := -1
	for i, slot := range row {
		if slot == unit {
			return claimDuplicate
		}
		if slot.IsNone() && firstEmpty < 0 {
			firstEmpty = i
		}
	}
	if firstEmpty < 0 {
		return claimFull
	}

	row[firstEmpty] = unit
	return claimOK
}

// release 清除事件槽位中第一个匹配的单元
//
// 返回是否清除了槽位；单元不在槽位中是安全的空操作。
func (t *table) release(event types.EventID, unit types.UnitID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	row := t.rows[event.Index()]
	for i, slot := range row {
		if slot == unit {
			row[i] = types.UnitNone
			return true
		}
	}
	return false
}

// snapshot 拷贝事件的整行槽位（含空槽，保持槽序）
func (t *table) snapshot(event types.EventID) []types.UnitID {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row := t.rows[event.Index()]
	out := make([]types.UnitID, len(row))
	copy(out, row)
	return out
}

// occupied 返回事件当前被占用的槽位数
func (t *table) occupied(event types.EventID) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, slot := range t.rows[event.Index()] {
		if !slot.IsNone() {
			n++
		}
	}
	return n
}
