/*
 *     Copyright 2022 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

//go:generate mockgen -destination mocks/stats_mock.go -source metrics.go -package mocks

package scoredset

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Stats is the view of a set read by its collector.
type Stats interface {
	Len() int
	ScoreCount() int
	AddCount() uint64
	RemoveCount() uint64
	MoveCount() uint64
}

type collector struct {
	stats   Stats
	items   *prometheus.Desc
	scores  *prometheus.Desc
	adds    *prometheus.Desc
	removes *prometheus.Desc
	moves   *prometheus.Desc
}

// NewCollector returns a prometheus collector exporting stats,
// every metric carries the constant label name.
func NewCollector(cfg MetricsConfig, name string, stats Stats) prometheus.Collector {
	labels := prometheus.Labels{"name": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(cfg.Namespace, cfg.Subsystem, metric), help, nil, labels)
	}

	return &collector{
		stats:   stats,
		items:   desc("items", "Gauge of the number of stored items."),
		scores:  desc("scores", "Gauge of the number of distinct scores."),
		adds:    desc("add_total", "Counter of the number of added items."),
		removes: desc("remove_total", "Counter of the number of removed items."),
		moves:   desc("move_total", "Counter of the number of items moved to another score."),
	}
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.items
	ch <- c.scores
	ch <- c.adds
	ch <- c.removes
	ch <- c.moves
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.items, prometheus.GaugeValue, float64(c.stats.Len()))
	ch <- prometheus.MustNewConstMetric(c.scores, prometheus.GaugeValue, float64(c.stats.ScoreCount()))
	ch <- prometheus.MustNewConstMetric(c.adds, prometheus.CounterValue, float64(c.stats.AddCount()))
	ch <- prometheus.MustNewConstMetric(c.removes, prometheus.CounterValue, float64(c.stats.RemoveCount()))
	ch <- prometheus.MustNewConstMetric(c.moves, prometheus.CounterValue, float64(c.stats.MoveCount()))
}
