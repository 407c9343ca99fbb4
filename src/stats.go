package main

// ====== Switch Statistics ======

// SwitchStats accumulates counters from forwarding outcomes.
// Counters only increase; reset happens only through clear().
type SwitchStats struct {
	frames_processed  int // One per process_frame call
	learning_events   int // New and moved addresses (same-port refreshes excluded)
	forwarding_events int // Known-unicast deliveries
	flooding_events   int // Broadcast and unknown-unicast floods
}

// StatsView is an immutable copy of the counters plus derived rates
type StatsView struct {
	FramesProcessed  int
	LearningEvents   int
	ForwardingEvents int
	FloodingEvents   int
	ForwardingRate   float64 // forwarding_events / frames_processed, 0 when idle
	FloodingRate     float64 // flooding_events / frames_processed, 0 when idle
}

func (stats *SwitchStats) record_frame() {
	stats.frames_processed++
}

func (stats *SwitchStats) record_learn() {
	stats.learning_events++
}

func (stats *SwitchStats) record_forward() {
	stats.forwarding_events++
}

func (stats *SwitchStats) record_flood() {
	stats.flooding_events++
}

// clear resets all counters to zero
func (stats *SwitchStats) clear() {
	stats.frames_processed = 0
	stats.learning_events = 0
	stats.forwarding_events = 0
	stats.flooding_events = 0
}

// view returns a copy with the derived rates computed.
// Rates are plain ratios in [0, 1] and 0 (never NaN) before any frame.
func (stats *SwitchStats) view() StatsView {
	view := StatsView{
		FramesProcessed:  stats.frames_processed,
		LearningEvents:   stats.learning_events,
		ForwardingEvents: stats.forwarding_events,
		FloodingEvents:   stats.flooding_events,
	}

	if stats.frames_processed > 0 {
		view.ForwardingRate = float64(stats.forwarding_events) / float64(stats.frames_processed)
		view.FloodingRate = float64(stats.flooding_events) / float64(stats.frames_processed)
	}

	return view
}
