/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package validate

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records Prometheus observations for ValidateAndConstruct calls. A nil *Metrics is valid
// everywhere it's used; every method no-ops on a nil receiver, so attaching metrics is entirely
// optional and never changes validation semantics (distilled schema §5 keeps the core itself free
// of any such dependency).
type Metrics struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewMetrics registers a call-duration histogram (labeled by outcome) and an error counter
// (labeled by taxonomy Kind) against reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "isoschema",
			Subsystem: "validate",
			Name:      "duration_seconds",
			Help:      "Time spent in a single ValidateAndConstruct call.",
		}, []string{"outcome"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "isoschema",
			Subsystem: "validate",
			Name:      "errors_total",
			Help:      "Count of ValidateSchemaError occurrences, labeled by kind.",
		}, []string{"kind"}),
	}
	reg.MustRegister(m.duration, m.errors)
	return m
}

func (m *Metrics) observe(start time.Time, errs []LocatedError) {
	if m == nil {
		return
	}
	outcome := "ok"
	if len(errs) > 0 {
		outcome = "error"
	}
	m.duration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	for _, e := range errs {
		m.errors.WithLabelValues(e.Item.Kind.String()).Inc()
	}
}
