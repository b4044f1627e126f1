// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel provides a cyclesort.Observer that records OpenTelemetry
// metrics and spans.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/cyclesort"
	"golang.org/x/xerrors"
)

// Metric names.
const (
	SortsMetric       = "cyclesort.sorts"
	WritesMetric      = "cyclesort.writes"
	ComparisonsMetric = "cyclesort.comparisons"
	CycleLengthMetric = "cyclesort.cycle.length"
)

// SpanName is the name of the span started for each sort.
const SpanName = "cyclesort.Sort"

// Observer counts sorts, writes and comparisons, records the length of every
// cycle, and traces each sort as a span with one event per cycle.
//
// The span started by Start is ended by Done. If the less function panics,
// Done is never called and the span is left unended; callers recovering
// from such panics should end trace.SpanFromContext themselves.
type Observer struct {
	tracer trace.Tracer

	sorts       metric.Int64Counter
	writes      metric.Int64Counter
	comparisons metric.Int64Counter
	cycleLen    metric.Int64Histogram
}

var _ cyclesort.Observer = (*Observer)(nil)

// New returns an Observer recording metrics with meter and spans with
// tracer. Either may be nil to disable that half.
func New(meter metric.Meter, tracer trace.Tracer) (*Observer, error) {
	o := &Observer{tracer: tracer}
	if meter == nil {
		return o, nil
	}
	var err error
	if o.sorts, err = meter.Int64Counter(SortsMetric,
		metric.WithDescription("Number of slices sorted."),
		metric.WithUnit("{sort}")); err != nil {
		return nil, xerrors.Errorf("otel: %w", err)
	}
	if o.writes, err = meter.Int64Counter(WritesMetric,
		metric.WithDescription("Number of elements moved into place."),
		metric.WithUnit("{write}")); err != nil {
		return nil, xerrors.Errorf("otel: %w", err)
	}
	if o.comparisons, err = meter.Int64Counter(ComparisonsMetric,
		metric.WithDescription("Number of calls to the less function."),
		metric.WithUnit("{comparison}")); err != nil {
		return nil, xerrors.Errorf("otel: %w", err)
	}
	if o.cycleLen, err = meter.Int64Histogram(CycleLengthMetric,
		metric.WithDescription("Writes made by each closed cycle."),
		metric.WithUnit("{write}")); err != nil {
		return nil, xerrors.Errorf("otel: %w", err)
	}
	return o, nil
}

func (o *Observer) Start(ctx context.Context, n int) context.Context {
	if o.tracer == nil {
		return ctx
	}
	ctx, _ = o.tracer.Start(ctx, SpanName, trace.WithAttributes(attribute.Int("cyclesort.len", n)))
	return ctx
}

func (o *Observer) Cycle(ctx context.Context, c cyclesort.Cycle) {
	if o.cycleLen != nil {
		o.cycleLen.Record(ctx, int64(c.Writes))
	}
	if o.tracer != nil {
		trace.SpanFromContext(ctx).AddEvent("cycle closed", trace.WithAttributes(
			attribute.Int("cyclesort.start", c.Start),
			attribute.Int("cyclesort.writes", c.Writes)))
	}
}

func (o *Observer) Done(ctx context.Context, s cyclesort.Stats) {
	if o.sorts != nil {
		o.sorts.Add(ctx, 1)
		o.writes.Add(ctx, int64(s.Writes))
		o.comparisons.Add(ctx, int64(s.Comparisons))
	}
	if o.tracer != nil {
		span := trace.SpanFromContext(ctx)
		span.SetAttributes(
			attribute.Int("cyclesort.comparisons", s.Comparisons),
			attribute.Int("cyclesort.writes", s.Writes),
			attribute.Int("cyclesort.cycles", s.Cycles),
			attribute.Int("cyclesort.longest_cycle", s.LongestCycle))
		span.End()
	}
}
