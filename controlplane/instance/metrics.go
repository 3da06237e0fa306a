/*
 Fleet, an orchestrator for ephemeral multiplayer game servers.
 Copyright (C) 2024 Yannic Rieger <oss@76k.io>

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package instance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "fleet"

type Metrics struct {
	allocations        *prometheus.CounterVec
	allocationDuration prometheus.Histogram
	heartbeats         *prometheus.CounterVec
	terminationFlags   *prometheus.CounterVec
	reaped             prometheus.Counter
	tracked            prometheus.Gauge
}

// NewMetrics creates all collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		allocations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "allocations_total",
			Help:      "Number of game server allocation requests by result code.",
		}, []string{"result"}),
		allocationDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "allocation_duration_seconds",
			Help:      "Time spent allocating a game server, including waiting for the allocation lock.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		heartbeats: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "heartbeats_total",
			Help:      "Number of answered heartbeats by operation.",
		}, []string{"operation"}),
		terminationFlags: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "termination_flags_total",
			Help:      "Number of instances flagged for graceful termination by reason.",
		}, []string{"reason"}),
		reaped: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "reaped_instances_total",
			Help:      "Number of instances terminated because their heartbeat went silent.",
		}),
		tracked: f.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "tracked_instances",
			Help:      "Number of instances whose last heartbeat is tracked.",
		}),
	}
}
