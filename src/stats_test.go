package main

import (
	"testing"
)

func TestStatsRatesIdle(t *testing.T) {
	stats := &SwitchStats{}
	view := stats.view()

	// No frames yet: rates are 0, never NaN
	if view.ForwardingRate != 0 {
		t.Errorf("Idle forwarding rate: got %f, want 0", view.ForwardingRate)
	}
	if view.FloodingRate != 0 {
		t.Errorf("Idle flooding rate: got %f, want 0", view.FloodingRate)
	}
}

func TestStatsRates(t *testing.T) {
	stats := &SwitchStats{}

	for i := 0; i < 10; i++ {
		stats.record_frame()
	}
	for i := 0; i < 6; i++ {
		stats.record_forward()
	}
	for i := 0; i < 3; i++ {
		stats.record_flood()
	}

	view := stats.view()
	if view.ForwardingRate != 0.6 {
		t.Errorf("Forwarding rate: got %f, want 0.6", view.ForwardingRate)
	}
	if view.FloodingRate != 0.3 {
		t.Errorf("Flooding rate: got %f, want 0.3", view.FloodingRate)
	}
}

func TestStatsClear(t *testing.T) {
	stats := &SwitchStats{}
	stats.record_frame()
	stats.record_learn()
	stats.record_forward()
	stats.record_flood()

	stats.clear()

	view := stats.view()
	if view.FramesProcessed != 0 || view.LearningEvents != 0 ||
		view.ForwardingEvents != 0 || view.FloodingEvents != 0 {
		t.Errorf("Counters not zeroed after clear: %+v", view)
	}
	if view.ForwardingRate != 0 || view.FloodingRate != 0 {
		t.Errorf("Rates not zeroed after clear: %+v", view)
	}
}

func TestStatsViewIsCopy(t *testing.T) {
	stats := &SwitchStats{}
	stats.record_frame()

	view := stats.view()
	view.FramesProcessed = 99

	if stats.view().FramesProcessed != 1 {
		t.Error("Mutating a view changed the live counters")
	}
}
