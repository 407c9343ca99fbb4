package main

import (
	"errors"
	"fmt"
)

// ====== Layer 2 Forwarding Engine ======

// Error kinds surfaced to callers. Everything else (unknown
// destination, empty table, aging disabled) is a normal outcome.
var (
	ErrInvalidPort    = errors.New("invalid port")
	ErrInvalidAddress = errors.New("invalid MAC address")
)

// ActionKind classifies a forwarding decision
type ActionKind int

const (
	ACTION_DELIVER ActionKind = iota // Known unicast: forward out one port
	ACTION_FLOOD                     // Broadcast or unknown unicast: all ports except ingress
	ACTION_DROP                      // Destination on the arrival port: filtered
)

// Action is the forwarding decision for a single frame.
// For ACTION_DELIVER, port is the egress port.
// For ACTION_FLOOD, port is the excluded ingress port.
type Action struct {
	kind ActionKind
	port int
}

func deliver_action(out_port int) Action {
	return Action{kind: ACTION_DELIVER, port: out_port}
}

func flood_action(exclude_port int) Action {
	return Action{kind: ACTION_FLOOD, port: exclude_port}
}

func drop_action() Action {
	return Action{kind: ACTION_DROP}
}

// String renders the decision for traces and the shell
func (action Action) String() string {
	switch action.kind {
	case ACTION_DELIVER:
		return fmt.Sprintf("Deliver(port %d)", action.port)
	case ACTION_FLOOD:
		return fmt.Sprintf("Flood(exclude port %d)", action.port)
	default:
		return "Drop"
	}
}

// SwitchConfig holds the switch parameters. Immutable after construction.
type SwitchConfig struct {
	PortCount    int   // Number of physical ports (>= 1)
	AgingTimeout int64 // MAC aging timeout in seconds (0 disables aging)
}

// Default switch parameters: 8 ports, 300 second aging
// (typical for real switches)
const (
	DEFAULT_PORT_COUNT    = 8
	DEFAULT_AGING_TIMEOUT = 300
)

// Switch simulates a Layer 2 Ethernet learning switch: a MAC address
// table, the forwarding decision logic, and per-outcome statistics.
type Switch struct {
	config SwitchConfig
	table  *mac_table
	stats  *SwitchStats
}

// new_switch constructs a Switch with an empty MAC table
func new_switch(config SwitchConfig) (*Switch, error) {
	if config.PortCount < 1 {
		return nil, fmt.Errorf("%w: switch needs at least 1 port, got %d", ErrInvalidPort, config.PortCount)
	}

	LogInfo("Switch initialized with %d ports", config.PortCount)
	if config.AgingTimeout > 0 {
		LogInfo("MAC aging enabled: %d seconds", config.AgingTimeout)
	}

	return &Switch{
		config: config,
		table:  init_mac_table(),
		stats:  &SwitchStats{},
	}, nil
}

// port_valid checks a port number against the configured range [1, PortCount]
func (sw *Switch) port_valid(port int) bool {
	return port >= 1 && port <= sw.config.PortCount
}

// process_frame is the core switching logic, invoked once per frame:
//  1. Learning: associate the source MAC with the incoming port
//  2. Forwarding decision:
//     - Broadcast destination: flood all ports except ingress
//     - Known unicast on another port: deliver to that port
//     - Known unicast on the ingress port: drop (same-segment filter)
//     - Unknown unicast: flood all ports except ingress
//
// Learning happens before the destination lookup, so a device's own
// first frame is learnable in the same call.
// now is the caller-supplied timestamp in seconds.
// Returns ErrInvalidPort (table and counters untouched) if in_port is
// outside [1, PortCount].
func (sw *Switch) process_frame(frame *Frame, in_port int, now int64) (Action, error) {
	if !sw.port_valid(in_port) {
		return drop_action(), fmt.Errorf("%w: port %d outside [1, %d]", ErrInvalidPort, in_port, sw.config.PortCount)
	}

	sw.stats.record_frame()

	// Step 1: LEARNING PHASE
	// Every observed source is learned, one entry per distinct address
	outcome, old_port := sw.table.learn(frame.src_mac, in_port, now)
	switch outcome {
	case LEARN_NEW:
		sw.stats.record_learn()
		LogInfo("L2Switch: Learned MAC %s on port %d", frame.src_mac.String(), in_port)
	case LEARN_MOVED:
		sw.stats.record_learn()
		LogInfo("L2Switch: MAC %s moved from port %d to port %d", frame.src_mac.String(), old_port, in_port)
	case LEARN_REFRESHED:
		LogDebug("L2Switch: Refreshed MAC %s on port %d", frame.src_mac.String(), in_port)
	}

	// Step 2: FORWARDING DECISION

	// Broadcast destination - flood to all ports except ingress
	if is_mac_broadcast(frame.dst_mac) {
		sw.stats.record_flood()
		LogDebug("L2Switch: Flooding broadcast frame from port %d", in_port)
		return flood_action(in_port), nil
	}

	// Unicast destination - consult the MAC table
	out_port, known := sw.table.lookup(frame.dst_mac)
	if !known {
		// Unknown unicast - flood to all ports except ingress
		sw.stats.record_flood()
		LogDebug("L2Switch: Unknown destination MAC %s, flooding from port %d", frame.dst_mac.String(), in_port)
		return flood_action(in_port), nil
	}

	if out_port == in_port {
		// Destination already on the arrival segment - filter
		LogDebug("L2Switch: Dropping frame (destination on ingress port %d)", in_port)
		return drop_action(), nil
	}

	// Known unicast - forward out the learned port
	sw.stats.record_forward()
	LogDebug("L2Switch: Forwarding to %s via port %d", frame.dst_mac.String(), out_port)
	return deliver_action(out_port), nil
}

// flood_ports enumerates the ports a flood reaches: the full range
// [1, PortCount] excluding the ingress port, ascending. Display only -
// the decision logic carries just the excluded port.
func (sw *Switch) flood_ports(exclude_port int) []int {
	ports := make([]int, 0, sw.config.PortCount-1)
	for port := 1; port <= sw.config.PortCount; port++ {
		if port != exclude_port {
			ports = append(ports, port)
		}
	}
	return ports
}

// snapshot returns the MAC table as ordered (mac, port, age) rows
func (sw *Switch) snapshot(now int64) []mac_table_row {
	return sw.table.snapshot(now)
}

// is_learned reports whether a MAC address is currently in the table
func (sw *Switch) is_learned(mac MacAddr) bool {
	_, known := sw.table.lookup(mac)
	return known
}

// table_size returns the number of learned addresses
func (sw *Switch) table_size() int {
	return sw.table.size()
}

// clear_table removes all learned MAC addresses
func (sw *Switch) clear_table() {
	sw.table.clear()
	LogInfo("L2Switch: MAC table cleared")
}

// statistics returns a copy of the current counters and rates
func (sw *Switch) statistics() StatsView {
	return sw.stats.view()
}

// clear_statistics resets all counters to zero
func (sw *Switch) clear_statistics() {
	sw.stats.clear()
}
