package main

import (
	"fmt"
	"strings"
)

// ====== Scenario Replay Engine ======

// scenario event kinds
type event_kind int

const (
	EVENT_FRAME event_kind = iota
	EVENT_SWEEP
	EVENT_SHOW_TABLE
	EVENT_SHOW_STATS
	EVENT_CLEAR
)

// scenario_event is one timestamped step of a scenario
type scenario_event struct {
	at      int64 // Timestamp in seconds, fed to the switch as "now"
	note    string
	kind    event_kind
	frame   *Frame
	in_port int
}

// Scenario is a replayable traffic script: a switch configuration plus
// a timestamped event sequence. Replay is deterministic - time never
// comes from a clock.
type Scenario struct {
	name   string
	config SwitchConfig
	events []scenario_event
}

// run_scenario replays a scenario against a fresh switch, narrating
// every decision, and returns the switch for inspection
func run_scenario(scenario *Scenario) (*Switch, error) {
	fmt.Printf("\n=== SCENARIO: %s ===\n", scenario.name)
	fmt.Printf("%s\n\n", strings.Repeat("-", 50))

	sw, err := new_switch(scenario.config)
	if err != nil {
		return nil, err
	}

	for _, event := range scenario.events {
		if event.note != "" {
			fmt.Printf("Scenario: %s\n", event.note)
			fmt.Printf("%s\n", strings.Repeat("-", 50))
		}

		switch event.kind {
		case EVENT_FRAME:
			action, err := sw.process_frame(event.frame, event.in_port, event.at)
			if err != nil {
				LogError("Scenario %s: frame at t=%d rejected: %v", scenario.name, event.at, err)
				continue
			}
			dump_decision(sw, event.frame, event.in_port, action)

		case EVENT_SWEEP:
			fmt.Printf("Running aging sweep at t=%ds...\n", event.at)
			dump_evicted(sw.sweep_aging(event.at))

		case EVENT_SHOW_TABLE:
			dump_mac_table(sw, event.at)

		case EVENT_SHOW_STATS:
			dump_statistics(sw)

		case EVENT_CLEAR:
			sw.clear_table()
			fmt.Printf("MAC table cleared\n\n")
		}
	}

	return sw, nil
}

// ====== Built-in Demo Scenarios ======

// must_parse_mac converts a known-good MAC literal.
// Only for the fixed addresses used by the built-in demos.
func must_parse_mac(s string) MacAddr {
	mac, err := parse_mac_addr(s)
	if err != nil {
		panic(err)
	}
	return mac
}

// Virtual PC addresses used by the demos
var (
	DEMO_MAC_PC_A = must_parse_mac("AA:AA:AA:AA:AA:AA")
	DEMO_MAC_PC_B = must_parse_mac("BB:BB:BB:BB:BB:BB")
	DEMO_MAC_PC_C = must_parse_mac("CC:CC:CC:CC:CC:CC")
	DEMO_MAC_PC_D = must_parse_mac("DD:DD:DD:DD:DD:DD")
)

func demo_frame(src MacAddr, dst MacAddr) *Frame {
	return new_frame(src, dst, ETHERTYPE_IP, nil)
}

func frame_event(at int64, note string, src MacAddr, dst MacAddr, in_port int) scenario_event {
	return scenario_event{
		at:      at,
		note:    note,
		kind:    EVENT_FRAME,
		frame:   demo_frame(src, dst),
		in_port: in_port,
	}
}

// demo_startup_scenario simulates a fresh network where devices
// communicate for the first time:
//
//	PC-A (Port 1), PC-B (Port 2), PC-C (Port 3), PC-D (Port 4)
//
// Phase 1: initial discovery (broadcast + unknown unicast)
// Phase 2: known-unicast forwarding once addresses are learned
// Phase 3: a new device joins
// Phase 4: broadcast traffic
func demo_startup_scenario() *Scenario {
	return &Scenario{
		name: "Network Startup",
		config: SwitchConfig{
			PortCount:    DEFAULT_PORT_COUNT,
			AgingTimeout: DEFAULT_AGING_TIMEOUT,
		},
		events: []scenario_event{
			// Phase 1: initial discovery
			frame_event(0, "PC-A broadcasts ARP request 'Who has PC-B?'", DEMO_MAC_PC_A, BROADCAST_MAC, 1),
			frame_event(1, "PC-B responds to PC-A's ARP", DEMO_MAC_PC_B, DEMO_MAC_PC_A, 2),
			frame_event(2, "PC-A pings PC-C (destination unknown)", DEMO_MAC_PC_A, DEMO_MAC_PC_C, 1),
			frame_event(3, "PC-C responds to PC-A's ping", DEMO_MAC_PC_C, DEMO_MAC_PC_A, 3),
			{at: 3, kind: EVENT_SHOW_TABLE},

			// Phase 2: efficient forwarding
			frame_event(4, "PC-A sends data to PC-B (known destination)", DEMO_MAC_PC_A, DEMO_MAC_PC_B, 1),
			frame_event(5, "PC-B sends data to PC-C (known destination)", DEMO_MAC_PC_B, DEMO_MAC_PC_C, 2),
			frame_event(6, "PC-C sends data to PC-A (known destination)", DEMO_MAC_PC_C, DEMO_MAC_PC_A, 3),

			// Phase 3: new device joins
			frame_event(7, "PC-D (new device) broadcasts DHCP discovery", DEMO_MAC_PC_D, BROADCAST_MAC, 4),
			frame_event(8, "PC-A sends data to PC-D", DEMO_MAC_PC_A, DEMO_MAC_PC_D, 1),
			frame_event(9, "PC-D responds to PC-A", DEMO_MAC_PC_D, DEMO_MAC_PC_A, 4),
			frame_event(10, "PC-A sends more data to PC-D", DEMO_MAC_PC_A, DEMO_MAC_PC_D, 1),

			// Phase 4: broadcast traffic
			frame_event(11, "PC-B broadcasts network announcement", DEMO_MAC_PC_B, BROADCAST_MAC, 2),

			{at: 11, kind: EVENT_SHOW_TABLE},
			{at: 11, kind: EVENT_SHOW_STATS},
		},
	}
}

// demo_aging_scenario shows how old MAC entries age out and get
// re-learned when traffic resumes. Aging timeout is 5 seconds; the
// sweep runs at t=7, so both entries (ages 7 and 6) are evicted.
func demo_aging_scenario() *Scenario {
	return &Scenario{
		name: "MAC Table Aging",
		config: SwitchConfig{
			PortCount:    4,
			AgingTimeout: 5,
		},
		events: []scenario_event{
			frame_event(0, "PC-A sends to PC-B (learning)", DEMO_MAC_PC_A, DEMO_MAC_PC_B, 1),
			frame_event(1, "PC-B sends to PC-A (learning)", DEMO_MAC_PC_B, DEMO_MAC_PC_A, 2),
			{at: 1, kind: EVENT_SHOW_TABLE},
			{at: 7, kind: EVENT_SWEEP, note: "7 seconds pass - entries exceed the 5s timeout"},
			{at: 7, kind: EVENT_SHOW_TABLE},
			frame_event(7, "New frame arrives - MAC re-learned", DEMO_MAC_PC_A, DEMO_MAC_PC_B, 1),
			{at: 7, kind: EVENT_SHOW_TABLE},
		},
	}
}

// demo_mobility_scenario simulates a laptop that unplugs from Port 1
// and reconnects on Port 3. Aging is disabled so only the move updates
// the table.
func demo_mobility_scenario() *Scenario {
	laptop := must_parse_mac("AA:BB:CC:DD:EE:FF")
	server := must_parse_mac("11:22:33:44:55:66")

	return &Scenario{
		name: "Device Mobility",
		config: SwitchConfig{
			PortCount:    4,
			AgingTimeout: 0,
		},
		events: []scenario_event{
			frame_event(0, "Laptop connects to Port 1", laptop, server, 1),
			frame_event(1, "Server responds to laptop", server, laptop, 2),
			{at: 1, kind: EVENT_SHOW_TABLE},
			frame_event(2, "Laptop physically moved - sends frame from Port 3", laptop, server, 3),
			{at: 2, kind: EVENT_SHOW_TABLE},
			{at: 2, kind: EVENT_SHOW_STATS},
		},
	}
}

// demo_scenario_by_name looks up a built-in demo
func demo_scenario_by_name(name string) (*Scenario, bool) {
	switch name {
	case "startup":
		return demo_startup_scenario(), true
	case "aging":
		return demo_aging_scenario(), true
	case "mobility":
		return demo_mobility_scenario(), true
	}
	return nil, false
}
