package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravswarm/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagSSHDBPath     string
	flagIdleTimeout   int
	flagServeScenario string
	flagServeStrategy string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the gravswarm SSH server",
	Long: `Start an SSH server that lets users connect and watch the swarm.

Each SSH connection gets its own world, seeded at connect time and sized to
the session terminal. Runs are recorded in the shared server database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gravswarm/host_key

Examples:
  gravswarm serve                           # Listen on :23235 with auto-generated key
  gravswarm serve --ssh :2222               # Listen on port 2222
  gravswarm serve --scenario dense          # Serve the dense scenario
  gravswarm serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHDBPath, "db", "~/.gravswarm/runs.db", "Path to runs database")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeScenario, "scenario", "orbit", "Scenario served to sessions")
	serveCmd.Flags().StringVar(&flagServeStrategy, "strategy", "parallel", "Execution strategy for sessions")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagSSHDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		ScenarioID:  flagServeScenario,
		StrategyID:  flagServeStrategy,
		Workers:     flagWorkers,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting gravswarm SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
