package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/devprodest/go-eventbus/pkg/types"
)

// Collector 将 BusCounter 导出为 Prometheus 指标
//
// 采集时读取计数器快照并转换为 ConstMetric，自身无状态。
// 指标命名遵循 <namespace>_<subsystem>_<name> 约定。
type Collector struct {
	counter *BusCounter

	pushesDesc       *prometheus.Desc
	signalsDesc      *prometheus.Desc
	subscribesDesc   *prometheus.Desc
	unsubscribesDesc *prometheus.Desc
	failuresDesc     *prometheus.Desc
	waitsDesc        *prometheus.Desc

	eventPushesDesc *prometheus.Desc
	subscribersDesc *prometheus.Desc
}

// NewCollector 创建 Prometheus 采集器
func NewCollector(counter *BusCounter, namespace, subsystem string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, subsystem, n)
	}
	return &Collector{
		counter: counter,
		pushesDesc: prometheus.NewDesc(
			name("pushes_total"),
			"Total number of event pushes.",
			nil, nil,
		),
		signalsDesc: prometheus.NewDesc(
			name("signals_total"),
			"Total number of subscriber notifications by result.",
			[]string{"result"}, nil,
		),
		subscribesDesc: prometheus.NewDesc(
			name("subscribes_total"),
			"Total number of successful subscriptions.",
			nil, nil,
		),
		unsubscribesDesc: prometheus.NewDesc(
			name("unsubscribes_total"),
			"Total number of successful unsubscriptions.",
			nil, nil,
		),
		failuresDesc: prometheus.NewDesc(
			name("subscribe_failures_total"),
			"Total number of rejected subscriptions by reason.",
			[]string{"reason"}, nil,
		),
		waitsDesc: prometheus.NewDesc(
			name("waits_total"),
			"Total number of completed waits by result.",
			[]string{"result"}, nil,
		),
		eventPushesDesc: prometheus.NewDesc(
			name("event_pushes_total"),
			"Total number of pushes per event.",
			[]string{"event"}, nil,
		),
		subscribersDesc: prometheus.NewDesc(
			name("subscribers"),
			"Current number of subscribers per event.",
			[]string{"event"}, nil,
		),
	}
}

// Describe 实现 prometheus.Collector 接口
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pushesDesc
	ch <- c.signalsDesc
	ch <- c.subscribesDesc
	ch <- c.unsubscribesDesc
	ch <- c.failuresDesc
	ch <- c.waitsDesc
	ch <- c.eventPushesDesc
	ch <- c.subscribersDesc
}

// Collect 实现 prometheus.Collector 接口
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.counter.Stats()

	ch <- prometheus.MustNewConstMetric(
		c.pushesDesc, prometheus.CounterValue, float64(snap.Pushes))

	ch <- prometheus.MustNewConstMetric(
		c.signalsDesc, prometheus.CounterValue, float64(snap.Signaled), "delivered")
	ch <- prometheus.MustNewConstMetric(
		c.signalsDesc, prometheus.CounterValue, float64(snap.Coalesced), "coalesced")
	ch <- prometheus.MustNewConstMetric(
		c.signalsDesc, prometheus.CounterValue, float64(snap.Dropped), "dropped")

	ch <- prometheus.MustNewConstMetric(
		c.subscribesDesc, prometheus.CounterValue, float64(snap.Subscribes))
	ch <- prometheus.MustNewConstMetric(
		c.unsubscribesDesc, prometheus.CounterValue, float64(snap.Unsubscribes))

	ch <- prometheus.MustNewConstMetric(
		c.failuresDesc, prometheus.CounterValue, float64(snap.CapacityFailures), "capacity")
	ch <- prometheus.MustNewConstMetric(
		c.failuresDesc, prometheus.CounterValue, float64(snap.DuplicateRejects), "duplicate")

	ch <- prometheus.MustNewConstMetric(
		c.waitsDesc, prometheus.CounterValue, float64(snap.WaitOK), "ok")
	ch <- prometheus.MustNewConstMetric(
		c.waitsDesc, prometheus.CounterValue, float64(snap.WaitTimeout), "timeout")
	ch <- prometheus.MustNewConstMetric(
		c.waitsDesc, prometheus.CounterValue, float64(snap.WaitCanceled), "canceled")

	for _, ev := range snap.Events {
		ch <- prometheus.MustNewConstMetric(
			c.eventPushesDesc, prometheus.CounterValue, float64(ev.Pushes), ev.Name)
		ch <- prometheus.MustNewConstMetric(
			c.subscribersDesc, prometheus.GaugeValue, float64(ev.Subscribers), ev.Name)
	}
}

// EventName 返回命名表中某事件的标签值
//
// 测试与诊断用途；与 Collect 使用同一命名表。
func (c *Collector) EventName(event types.EventID) string {
	return c.counter.names.Name(event)
}

// 确保 Collector 实现 prometheus.Collector 接口
var _ prometheus.Collector = (*Collector)(nil)
