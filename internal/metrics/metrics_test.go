package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/eof2030/eof1validate/eof"
)

func TestNewRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	if m.Gatherer == nil {
		t.Fatal("expected a non-nil gatherer")
	}

	mfs, err := m.Gatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	names := map[string]bool{}
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	for _, want := range []string{
		"eof1validate_validations_total",
		"eof1validate_validation_duration_seconds",
		"eof1validate_max_recursion_depth",
	} {
		if !names[want] {
			t.Fatalf("expected metric %q to be registered, got %v", want, names)
		}
	}
}

func TestObserveIncrementsCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(eof.Success, 0.001)
	m.Observe(eof.ErrInvalidPrefix, 0.002)
	m.Observe(eof.ErrInvalidPrefix, 0.003)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var found bool
	for _, mf := range mfs {
		if mf.GetName() != "eof1validate_validations_total" {
			continue
		}
		found = true
		total := 0.0
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
		if total != 3 {
			t.Fatalf("want 3 total observations, got %v", total)
		}
	}
	if !found {
		t.Fatal("validations_total metric family not found")
	}
}

func TestObserveRecursionDepthTracksMax(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRecursionDepth(3)
	m.ObserveRecursionDepth(7)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "eof1validate_max_recursion_depth" {
			continue
		}
		got := mf.GetMetric()[0].GetGauge().GetValue()
		if got != 7 {
			t.Fatalf("want 7, got %v", got)
		}
	}
}

func TestObserveRecursionDepthIgnoresLowerValues(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRecursionDepth(9)
	m.ObserveRecursionDepth(2)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "eof1validate_max_recursion_depth" {
			continue
		}
		got := mf.GetMetric()[0].GetGauge().GetValue()
		if got != 9 {
			t.Fatalf("a later, shallower observation must not overwrite the recorded max: want 9, got %v", got)
		}
	}
}
