// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package session

import (
	metricsutil "github.com/ebay/rdfs/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type sessionMetrics struct {
	sessionsCreated   *prometheus.CounterVec
	asserted          prometheus.Counter
	derived           prometheus.Counter
	rebuilds          prometheus.Counter
	rebuildFailures   prometheus.Counter
	rebuildSeconds    prometheus.Histogram
	derivedStatements prometheus.Gauge
	schemaStatements  prometheus.Gauge
}

var metrics sessionMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = sessionMetrics{
		sessionsCreated: mr.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "created_total",
			Help:      `The number of sessions created, by schema mode.`,
		}, []string{"mode"}),
		asserted: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "asserted_total",
			Help:      `The number of statements asserted through sessions.`,
		}),
		derived: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "derived_total",
			Help:      `The number of new statements derived by the entailment engine, including during rebuilds.`,
		}),
		rebuilds: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "rebuilds_total",
			Help:      `The number of times a session recomputed its derived statements from scratch.`,
		}),
		rebuildFailures: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "rebuild_failures_total",
			Help:      `The number of rebuilds that returned an error and left the session dirty.`,
		}),
		rebuildSeconds: mr.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "rebuild_seconds",
			Help:      `How long each successful rebuild took.`,
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		derivedStatements: mr.NewGauge(prometheus.GaugeOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "derived_statements",
			Help:      `The size of the derived statement set after the most recent rebuild in any session.`,
		}),
		schemaStatements: mr.NewGauge(prometheus.GaugeOpts{
			Namespace: "rdfs",
			Subsystem: "session",
			Name:      "schema_statements",
			Help:      `The number of schema statements, including axioms, the most recent closure build used.`,
		}),
	}
}
