package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

// Global switch under simulation
var currentSwitch *Switch

// Simulation clock in seconds. Advanced by frames and 'tick'; every
// core call gets an explicit timestamp so replays are reproducible.
var simClock int64

var rootCmd = &cobra.Command{
	Use:   "l2switch-sim",
	Short: "A Layer 2 Ethernet learning switch simulator in Go",
	Run: func(cmd *cobra.Command, args []string) {
		startInteractiveShell()
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show commands",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run scenarios",
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear commands",
}

var initCmd = &cobra.Command{
	Use:   "init [ports] [aging-timeout]",
	Short: "Initialize a switch (defaults: 8 ports, 300s aging)",
	Args:  cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		config := SwitchConfig{
			PortCount:    DEFAULT_PORT_COUNT,
			AgingTimeout: DEFAULT_AGING_TIMEOUT,
		}

		if len(args) > 0 {
			ports, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Error: invalid port count '%s'\n", args[0])
				return
			}
			config.PortCount = ports
		}

		if len(args) > 1 {
			timeout, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				fmt.Printf("Error: invalid aging timeout '%s'\n", args[1])
				return
			}
			config.AgingTimeout = timeout
		}

		sw, err := new_switch(config)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		currentSwitch = sw
		simClock = 0
		fmt.Printf("Switch ready: %d ports, aging timeout %ds\n", config.PortCount, config.AgingTimeout)
	},
}

var sendCmd = &cobra.Command{
	Use:   "send [src-mac] [dst-mac] [in-port]",
	Short: "Process one frame through the switch",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if !requireSwitch() {
			return
		}

		in_port, err := strconv.Atoi(args[2])
		if err != nil {
			fmt.Printf("Error: invalid port '%s'\n", args[2])
			return
		}

		frame, err := new_frame_from_strings(args[0], args[1], ETHERTYPE_IP, nil)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		action, err := currentSwitch.process_frame(frame, in_port, simClock)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		dump_decision(currentSwitch, frame, in_port, action)
		simClock++
	},
}

var tickCmd = &cobra.Command{
	Use:   "tick [seconds]",
	Short: "Advance the simulation clock (default 1 second)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		step := int64(1)
		if len(args) > 0 {
			parsed, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || parsed < 0 {
				fmt.Printf("Error: invalid tick '%s'\n", args[0])
				return
			}
			step = parsed
		}

		simClock += step
		fmt.Printf("Simulation clock: t=%ds\n", simClock)
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run an aging sweep at the current simulation time",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireSwitch() {
			return
		}

		fmt.Printf("Running aging sweep at t=%ds...\n", simClock)
		dump_evicted(currentSwitch.sweep_aging(simClock))
	},
}

var showMacCmd = &cobra.Command{
	Use:   "mac",
	Short: "Show the MAC address table",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireSwitch() {
			return
		}
		dump_mac_table(currentSwitch, simClock)
	},
}

var showStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show switch statistics",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireSwitch() {
			return
		}
		dump_statistics(currentSwitch)
	},
}

var runScenarioCmd = &cobra.Command{
	Use:   "scenario [filename]",
	Short: "Run a scenario from a YAML file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		LogInfo("Loading scenario: %s...", filename)
		scenario, err := load_scenario_from_yaml(filename)
		if err != nil {
			LogError("Error loading scenario: %v", err)
			fmt.Printf("Error loading scenario: %v\n", err)
			return
		}

		sw, err := run_scenario(scenario)
		if err != nil {
			fmt.Printf("Error running scenario: %v\n", err)
			return
		}

		// The replayed switch becomes the current one for inspection
		currentSwitch = sw
		simClock = scenario.events[len(scenario.events)-1].at
	},
}

var runDemoCmd = &cobra.Command{
	Use:   "demo [startup|aging|mobility]",
	Short: "Run a built-in demo scenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, ok := demo_scenario_by_name(args[0])
		if !ok {
			fmt.Printf("Error: unknown demo '%s' (available: startup, aging, mobility)\n", args[0])
			return
		}

		sw, err := run_scenario(scenario)
		if err != nil {
			fmt.Printf("Error running demo: %v\n", err)
			return
		}

		currentSwitch = sw
		simClock = scenario.events[len(scenario.events)-1].at
	},
}

var clearTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Clear all learned MAC addresses",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireSwitch() {
			return
		}
		currentSwitch.clear_table()
		fmt.Printf("MAC table cleared\n")
	},
}

var clearStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Reset all statistics counters",
	Run: func(cmd *cobra.Command, args []string) {
		if !requireSwitch() {
			return
		}
		currentSwitch.clear_statistics()
		fmt.Printf("Statistics cleared\n")
	},
}

func requireSwitch() bool {
	if currentSwitch == nil {
		fmt.Println("Error: No switch initialized. Use 'init [ports] [aging-timeout]' first.")
		return false
	}
	return true
}

func startInteractiveShell() {
	username := os.Getenv("USER")
	if username == "" {
		username = "user"
	}

	// Liner is used for command history and other interactive CLI features
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	// Load history from file
	historyFile := os.Getenv("HOME") + "/.l2switch-sim_history"
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Printf("Welcome to L2 Switch Simulator CLI\n")
	fmt.Printf("Type 'help' for available commands or 'exit' to quit.\n\n")

	for {
		prompt := fmt.Sprintf("%s@l2switch> ", username)
		input, err := line.Prompt(prompt)

		if err != nil {
			// Handle Ctrl+C or EOF
			if err == liner.ErrPromptAborted {
				fmt.Println("\nUse 'exit' to quit")
				continue
			}
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if input == "exit" || input == "quit" {
			fmt.Println("Goodbye!")
			break
		}

		executeCommand(input)
	}

	// Save command history to file
	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}

func executeCommand(input string) {
	args := strings.Fields(input)
	if len(args) == 0 {
		return
	}

	// Create a temporary root command for parsing this specific input
	cmd := &cobra.Command{}
	cmd.AddCommand(initCmd)
	cmd.AddCommand(sendCmd)
	cmd.AddCommand(tickCmd)
	cmd.AddCommand(sweepCmd)
	cmd.AddCommand(showCmd)
	cmd.AddCommand(runCmd)
	cmd.AddCommand(clearCmd)

	helpCmd := &cobra.Command{
		Use:   "help",
		Short: "Help about any command",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available commands:")
			fmt.Println("  init [ports] [aging-timeout]        - Initialize a switch (defaults: 8 ports, 300s aging)")
			fmt.Println("  send <src-mac> <dst-mac> <in-port>  - Process one frame (advances the clock by 1s)")
			fmt.Println("  tick [seconds]                      - Advance the simulation clock")
			fmt.Println("  sweep                               - Run an aging sweep at the current time")
			fmt.Println("  run scenario <file>                 - Run a scenario from a YAML file")
			fmt.Println("  run demo <startup|aging|mobility>   - Run a built-in demo scenario")
			fmt.Println("  show mac                            - Show the MAC address table")
			fmt.Println("  show stats                          - Show switch statistics")
			fmt.Println("  clear table                         - Clear all learned MAC addresses")
			fmt.Println("  clear stats                         - Reset all statistics counters")
			fmt.Println("  help                                - Show this help message")
			fmt.Println("  exit                                - Exit the shell")
		},
	}
	cmd.AddCommand(helpCmd)

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func init() {
	showCmd.AddCommand(showMacCmd)
	showCmd.AddCommand(showStatsCmd)
	runCmd.AddCommand(runScenarioCmd)
	runCmd.AddCommand(runDemoCmd)
	clearCmd.AddCommand(clearTableCmd)
	clearCmd.AddCommand(clearStatsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
