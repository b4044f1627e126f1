// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logrus

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"golang.org/x/exp/cyclesort"
)

type record struct {
	Level   logrus.Level
	Message string
	Data    logrus.Fields
}

func Test(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	cyclesort.SortObserved(context.Background(), []int{2, 1}, func(a, b int) bool { return a < b }, New(log))

	var got []record
	for _, e := range hook.AllEntries() {
		got = append(got, record{e.Level, e.Message, e.Data})
	}
	want := []record{
		{logrus.DebugLevel, "cycle closed", logrus.Fields{"start": 0, "writes": 2}},
		{logrus.InfoLevel, "sorted", logrus.Fields{"len": 2, "comparisons": 5, "writes": 2, "cycles": 1, "longest_cycle": 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestEntry(t *testing.T) {
	log, hook := test.NewNullLogger()
	o := New(log.WithField("component", "eeprom"))
	cyclesort.SortObserved(context.Background(), []int{1, 2, 3}, func(a, b int) bool { return a < b }, o)
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("nothing logged")
	}
	if got := e.Data["component"]; got != "eeprom" {
		t.Errorf("component = %v, want eeprom", got)
	}
	if got := e.Data["writes"]; got != 0 {
		t.Errorf("writes = %v, want 0", got)
	}
}
