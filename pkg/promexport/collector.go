// Package promexport exposes a timer tree's statistics as Prometheus
// metrics.
//
// The collector is read-only: scraping never mutates the timers. The timer
// tree itself is not synchronized, so the caller must not drive the timers
// while a scrape is in progress.
package promexport

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/effortless-go/effortless/pkg/timing"
)

// Collector walks a timer tree pre-order and emits one set of gauges per
// node with at least one sample, labeled by the slash-joined node path.
type Collector struct {
	root *timing.Timer

	total *prometheus.Desc
	calls *prometheus.Desc
	mean  *prometheus.Desc
	min   *prometheus.Desc
	max   *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector over the tree rooted at root.
func NewCollector(namespace string, root *timing.Timer) *Collector {
	labels := []string{"region"}

	return &Collector{
		root: root,
		total: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "seconds"),
			"Total accumulated region time in seconds.",
			labels, nil),
		calls: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "calls"),
			"Number of recorded region samples.",
			labels, nil),
		mean: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "mean_seconds"),
			"Mean region time in seconds.",
			labels, nil),
		min: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "min_seconds"),
			"Shortest recorded region time in seconds.",
			labels, nil),
		max: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "max_seconds"),
			"Longest recorded region time in seconds.",
			labels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.total
	ch <- c.calls
	ch <- c.mean
	ch <- c.min
	ch <- c.max
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.collect(ch, c.root, "")
}

func (c *Collector) collect(ch chan<- prometheus.Metric, t *timing.Timer, parentPath string) {
	path := t.Name()
	if parentPath != "" {
		path = parentPath + "/" + t.Name()
	}

	if t.Count() > 0 {
		ch <- prometheus.MustNewConstMetric(c.total, prometheus.GaugeValue, t.Total(), path)
		ch <- prometheus.MustNewConstMetric(c.calls, prometheus.GaugeValue, float64(t.Count()), path)
		ch <- prometheus.MustNewConstMetric(c.mean, prometheus.GaugeValue, t.Mean(), path)
		ch <- prometheus.MustNewConstMetric(c.min, prometheus.GaugeValue, t.Min(), path)
		ch <- prometheus.MustNewConstMetric(c.max, prometheus.GaugeValue, t.Max(), path)
	}

	for _, child := range t.Children() {
		c.collect(ch, child, path)
	}
}
