package main

import (
	"fmt"
	"strings"
)

// ====== Console Presentation ======

// dump_mac_table prints the current MAC address table
func dump_mac_table(sw *Switch, now int64) {
	fmt.Printf("\n=== MAC Address Table ===\n")
	fmt.Printf("%-20s %-8s %s\n", "MAC Address", "Port", "Age (seconds)")
	fmt.Printf("%-20s %-8s %s\n", "-----------", "----", "-------------")

	rows := sw.snapshot(now)
	for _, row := range rows {
		fmt.Printf("%-20s %-8d %ds\n", row.mac.String(), row.port, row.age_seconds)
	}

	if len(rows) == 0 {
		fmt.Printf("(empty - no MAC addresses learned yet)\n")
	}
	fmt.Printf("Total entries: %d\n\n", len(rows))
}

// dump_statistics prints the switch counters and derived rates
func dump_statistics(sw *Switch) {
	stats := sw.statistics()

	fmt.Printf("\n=== Switch Statistics ===\n")
	fmt.Printf("Total Frames Processed:  %d\n", stats.FramesProcessed)
	fmt.Printf("Learning Events:         %d\n", stats.LearningEvents)
	fmt.Printf("Forwarding Events:       %d\n", stats.ForwardingEvents)
	fmt.Printf("Flooding Events:         %d\n", stats.FloodingEvents)
	fmt.Printf("MAC Table Size:          %d entries\n", sw.table_size())

	if stats.FramesProcessed > 0 {
		fmt.Printf("Forwarding Efficiency:   %.1f%% (higher is better)\n", stats.ForwardingRate*100)
		fmt.Printf("Flooding Rate:           %.1f%%\n", stats.FloodingRate*100)
	}
	fmt.Printf("\n")
}

// dump_decision prints one frame's forwarding decision, including the
// enumerated flood ports for flood actions
func dump_decision(sw *Switch, frame *Frame, in_port int, action Action) {
	stats := sw.statistics()
	fmt.Printf("Frame #%d received on Port %d\n", stats.FramesProcessed, in_port)
	fmt.Printf("  Source MAC: %s\n", frame.src_mac.String())
	fmt.Printf("  Dest MAC:   %s\n", frame.dst_mac.String())

	switch action.kind {
	case ACTION_DELIVER:
		fmt.Printf("  FORWARDING: Sending to Port %d (Known Unicast)\n", action.port)
	case ACTION_FLOOD:
		if is_mac_broadcast(frame.dst_mac) {
			fmt.Printf("  BROADCAST: Flooding to all ports except Port %d\n", action.port)
		} else {
			fmt.Printf("  UNKNOWN UNICAST: Destination %s not in MAC table\n", frame.dst_mac.String())
			fmt.Printf("    Flooding to all ports except Port %d\n", action.port)
		}
		fmt.Printf("    Flooding ports: %s\n", format_port_list(sw.flood_ports(action.port)))
	case ACTION_DROP:
		fmt.Printf("  FILTERING: Destination on same port (Port %d) - frame dropped\n", in_port)
	}
	fmt.Printf("\n")
}

func format_port_list(ports []int) string {
	parts := make([]string, len(ports))
	for i, port := range ports {
		parts[i] = fmt.Sprintf("%d", port)
	}
	return strings.Join(parts, " ")
}

// dump_evicted prints the result of an aging sweep
func dump_evicted(evicted []MacAddr) {
	if len(evicted) == 0 {
		fmt.Printf("No entries aged out\n\n")
		return
	}

	for _, mac := range evicted {
		fmt.Printf("AGING OUT: %s\n", mac.String())
	}
	fmt.Printf("Removed %d aged entries from MAC table\n\n", len(evicted))
}
