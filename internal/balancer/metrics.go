/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package balancer

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

var (
	poolRebuildTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hrtlb_pool_rebuild_total",
			Help: "Total number of times the Pool Grouper rebuilt its grouping (cache expired).",
		},
	)

	poolSizeGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "hrtlb_pool_size",
			Help: "Number of servers currently assigned to each pool.",
		},
		[]string{"pool"},
	)

	oobMigrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hrtlb_oob_migrations_total",
			Help: "Total number of out-of-bounds migrations proposed.",
		},
	)

	oobRPCDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hrtlb_oob_rpc_duration_seconds",
			Help:    "Duration of per-server tablet-statistics RPCs made during an OOB scan.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
	)

	balanceDelayHint = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hrtlb_balance_delay_hint_seconds",
			Help: "Next-tick delay hint last returned by balance.",
		},
	)

	balanceBackpressureTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hrtlb_balance_backpressure_total",
			Help: "Total number of balance calls that returned the floor delay because migrations were already in flight.",
		},
	)
)

func init() {
	metrics.Registry.MustRegister(
		poolRebuildTotal,
		poolSizeGauge,
		oobMigrationsTotal,
		oobRPCDuration,
		balanceDelayHint,
		balanceBackpressureTotal,
	)
}

// histogramRecorder is the function shape of observeOOBRPCDuration.
// Other files in the package call the observe*/record* helpers below,
// so a file like oob.go never reaches for the global prometheus vars
// directly.
type histogramRecorder func(seconds float64)

func observeOOBRPCDuration(seconds float64) {
	oobRPCDuration.Observe(seconds)
}

func recordPoolRebuild(pools map[PoolName]*ServerView) {
	poolRebuildTotal.Inc()
	for name, view := range pools {
		poolSizeGauge.WithLabelValues(string(name)).Set(float64(view.Len()))
	}
}

func recordOOBMigrations(n int) {
	if n > 0 {
		oobMigrationsTotal.Add(float64(n))
	}
}

func recordBalanceDelay(d float64) {
	balanceDelayHint.Set(d)
}

func recordBackpressure() {
	balanceBackpressureTotal.Inc()
}
