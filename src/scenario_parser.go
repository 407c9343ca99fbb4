package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// YAML scenario configuration structures
type ScenarioConfig struct {
	Scenario ScenarioInfo   `yaml:"scenario"`
	Switch   SwitchSettings `yaml:"switch"`
	Events   []EventConfig  `yaml:"events"`
}

type ScenarioInfo struct {
	Name string `yaml:"name"`
}

type SwitchSettings struct {
	Ports        int   `yaml:"ports"`
	AgingTimeout int64 `yaml:"aging_timeout"` // Seconds, 0 disables aging
}

type EventConfig struct {
	At        int64        `yaml:"at"`   // Timestamp in seconds
	Note      string       `yaml:"note"` // Narration printed before the event (optional)
	Frame     *FrameConfig `yaml:"frame"`
	Sweep     bool         `yaml:"sweep"`
	ShowTable bool         `yaml:"show_table"`
	ShowStats bool         `yaml:"show_stats"`
	Clear     bool         `yaml:"clear"`
}

type FrameConfig struct {
	Src       string `yaml:"src"`
	Dst       string `yaml:"dst"`
	EtherType string `yaml:"ethertype"` // "ipv4", "arp", "ipv6" or hex like "0x0800" (optional, defaults to ipv4)
	Payload   string `yaml:"payload"`
	Port      int    `yaml:"port"` // Ingress port
}

func load_scenario_from_yaml(filename string) (*Scenario, error) {
	// Read the YAML file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %v", filename, err)
	}

	// Parse the YAML config
	var config ScenarioConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML scenario: %v", err)
	}

	// Validate
	if err := validate_scenario_config(&config); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	// Build the runnable scenario
	scenario, err := build_scenario_from_config(&config)
	if err != nil {
		return nil, fmt.Errorf("failed to build scenario: %w", err)
	}

	return scenario, nil
}

// validate_scenario_config performs basic validation on the scenario configuration
func validate_scenario_config(config *ScenarioConfig) error {
	if config.Scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}

	if config.Switch.Ports < 1 {
		return fmt.Errorf("switch needs at least 1 port, got %d", config.Switch.Ports)
	}

	if config.Switch.AgingTimeout < 0 {
		return fmt.Errorf("aging_timeout must be non-negative, got %d", config.Switch.AgingTimeout)
	}

	if len(config.Events) == 0 {
		return fmt.Errorf("at least one event is required")
	}

	prev_at := int64(0)
	for i, event := range config.Events {
		// Each event must be exactly one kind
		kinds := 0
		if event.Frame != nil {
			kinds++
		}
		if event.Sweep {
			kinds++
		}
		if event.ShowTable {
			kinds++
		}
		if event.ShowStats {
			kinds++
		}
		if event.Clear {
			kinds++
		}
		if kinds != 1 {
			return fmt.Errorf("event %d: exactly one of frame/sweep/show_table/show_stats/clear is required", i)
		}

		if event.At < 0 {
			return fmt.Errorf("event %d: timestamp must be non-negative", i)
		}

		if i > 0 && event.At < prev_at {
			return fmt.Errorf("event %d: timestamps must be non-decreasing (%d after %d)", i, event.At, prev_at)
		}
		prev_at = event.At

		if event.Frame != nil {
			if event.Frame.Src == "" || event.Frame.Dst == "" {
				return fmt.Errorf("event %d: frame src and dst are required", i)
			}

			if event.Frame.Port < 1 || event.Frame.Port > config.Switch.Ports {
				return fmt.Errorf("event %d: port %d outside [1, %d]", i, event.Frame.Port, config.Switch.Ports)
			}
		}
	}

	return nil
}

func build_scenario_from_config(config *ScenarioConfig) (*Scenario, error) {
	scenario := &Scenario{
		name: config.Scenario.Name,
		config: SwitchConfig{
			PortCount:    config.Switch.Ports,
			AgingTimeout: config.Switch.AgingTimeout,
		},
	}

	for i, event_config := range config.Events {
		event := scenario_event{
			at:   event_config.At,
			note: event_config.Note,
		}

		switch {
		case event_config.Frame != nil:
			ethertype, err := parse_ethertype(event_config.Frame.EtherType)
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", i, err)
			}

			frame, err := new_frame_from_strings(
				event_config.Frame.Src,
				event_config.Frame.Dst,
				ethertype,
				[]byte(event_config.Frame.Payload))
			if err != nil {
				return nil, fmt.Errorf("event %d: %w", i, err)
			}

			event.kind = EVENT_FRAME
			event.frame = frame
			event.in_port = event_config.Frame.Port

		case event_config.Sweep:
			event.kind = EVENT_SWEEP
		case event_config.ShowTable:
			event.kind = EVENT_SHOW_TABLE
		case event_config.ShowStats:
			event.kind = EVENT_SHOW_STATS
		case event_config.Clear:
			event.kind = EVENT_CLEAR
		}

		scenario.events = append(scenario.events, event)
	}

	return scenario, nil
}

// parse_ethertype maps the textual ethertype field to its wire value.
// Accepts protocol names ("ipv4", "arp", "ipv6") or a hex value like
// "0x0800". Empty means IPv4.
func parse_ethertype(s string) (uint16, error) {
	switch strings.ToLower(s) {
	case "", "ipv4", "ip":
		return ETHERTYPE_IP, nil
	case "arp":
		return ETHERTYPE_ARP, nil
	case "ipv6":
		return ETHERTYPE_IPV6, nil
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		value, err := strconv.ParseUint(s[2:], 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid ethertype %q", s)
		}
		return uint16(value), nil
	}

	return 0, fmt.Errorf("invalid ethertype %q (use ipv4/arp/ipv6 or 0xNNNN)", s)
}
