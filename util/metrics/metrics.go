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

// Package metrics wraps the Prometheus client with constructors that register
// each metric as it's created.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry creates metrics and registers them with R. It panics if a metric
// can't be registered, which happens when two metrics share a name; metrics
// are normally created from init functions, where that is a programming error.
type Registry struct {
	R prometheus.Registerer
}

// NewCounter creates and registers a Counter.
func (r Registry) NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	r.R.MustRegister(c)
	return c
}

// NewGauge creates and registers a Gauge.
func (r Registry) NewGauge(opts prometheus.GaugeOpts) prometheus.Gauge {
	g := prometheus.NewGauge(opts)
	r.R.MustRegister(g)
	return g
}

// NewHistogram creates and registers a Histogram.
func (r Registry) NewHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	h := prometheus.NewHistogram(opts)
	r.R.MustRegister(h)
	return h
}

// NewCounterVec creates and registers a CounterVec.
func (r Registry) NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labelNames)
	r.R.MustRegister(c)
	return c
}
