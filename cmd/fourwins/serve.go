package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/four-wins/internal/config"
	"github.com/vovakirdan/four-wins/internal/logging"
	"github.com/vovakirdan/four-wins/internal/platform/tui"
	"github.com/vovakirdan/four-wins/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host Four Wins over SSH",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the mode picker. Rounds are
played on the connecting terminal: hot-seat on one keyboard or against the
CPU. All sessions share the server's match history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fourwins/host_key

Examples:
  fourwins serve                           # Listen on :23234
  fourwins serve --ssh :2222               # Listen on port 2222
  fourwins serve --host-key ./my_host_key  # Use specific host key
  fourwins serve --db ./fourwins.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envDefault("FOURWINS_SSH_ADDR", ":23234"), "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
}

func runServe(cmd *cobra.Command, _ []string) error {
	// No alternate screen on the server side, so logs go to stderr.
	logger := logging.New(os.Stderr, "fourwins-ssh", flagLogLevel)

	cfg, err := config.Load(flagServeConfig)
	if err != nil {
		return err
	}
	opts := registry.DefaultOptions()
	opts.Config = cfg

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Options:     opts,
		TickRate:    tickRate(cmd, cfg),
	}, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting Four Wins SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
