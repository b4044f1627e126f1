// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/exp/cyclesort"
)

func less(a, b int) bool { return a < b }

func TestMetrics(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	o, err := New(mp.Meter("test"), nil)
	if err != nil {
		t.Fatal(err)
	}

	var writes, comparisons int
	for _, x := range [][]int{{2, 1}, {3, 1, 2}, {1, 2, 3}} {
		s := cyclesort.SortObserved(ctx, x, less, o)
		writes += s.Writes
		comparisons += s.Comparisons
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatal(err)
	}
	got := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch d := m.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range d.DataPoints {
					got[m.Name] += dp.Value
				}
			case metricdata.Histogram[int64]:
				for _, dp := range d.DataPoints {
					got[m.Name+".count"] += int64(dp.Count)
					got[m.Name+".sum"] += dp.Sum
				}
			}
		}
	}
	want := map[string]int64{
		SortsMetric:                  3,
		WritesMetric:                 int64(writes),
		ComparisonsMetric:            int64(comparisons),
		CycleLengthMetric + ".count": 2,
		CycleLengthMetric + ".sum":   int64(writes),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestTrace(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	o, err := New(nil, tp.Tracer("test"))
	if err != nil {
		t.Fatal(err)
	}
	cyclesort.SortObserved(context.Background(), []int{2, 1}, less, o)

	spans := sr.Ended()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	span := spans[0]
	if span.Name() != SpanName {
		t.Errorf("span name = %q, want %q", span.Name(), SpanName)
	}
	wantAttrs := map[attribute.Key]int64{
		"cyclesort.len":           2,
		"cyclesort.comparisons":   5,
		"cyclesort.writes":        2,
		"cyclesort.cycles":        1,
		"cyclesort.longest_cycle": 2,
	}
	if diff := cmp.Diff(wantAttrs, intAttrs(span.Attributes())); diff != "" {
		t.Errorf("span attributes mismatch (-want, +got):\n%s", diff)
	}
	events := span.Events()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	wantEvent := map[attribute.Key]int64{"cyclesort.start": 0, "cyclesort.writes": 2}
	if diff := cmp.Diff(wantEvent, intAttrs(events[0].Attributes)); diff != "" {
		t.Errorf("event attributes mismatch (-want, +got):\n%s", diff)
	}
}

func TestDisabled(t *testing.T) {
	o, err := New(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	x := []int{3, 2, 1}
	cyclesort.SortObserved(context.Background(), x, less, o)
	if !cyclesort.IsSorted(x) {
		t.Errorf("not sorted: %v", x)
	}
}

func TestPanicLeavesSpanOpen(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	o, err := New(nil, tp.Tracer("test"))
	if err != nil {
		t.Fatal(err)
	}
	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("recovered %v, want boom", r)
			}
		}()
		cyclesort.SortObserved(context.Background(), []int{2, 1}, func(a, b int) bool { panic("boom") }, o)
	}()
	if n := len(sr.Started()); n != 1 {
		t.Errorf("got %d started spans, want 1", n)
	}
	if n := len(sr.Ended()); n != 0 {
		t.Errorf("got %d ended spans, want 0", n)
	}
}

func intAttrs(kvs []attribute.KeyValue) map[attribute.Key]int64 {
	m := map[attribute.Key]int64{}
	for _, kv := range kvs {
		m[kv.Key] = kv.Value.AsInt64()
	}
	return m
}
