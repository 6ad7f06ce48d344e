package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/api"
	"github.com/vovakirdan/tui-runner/internal/games/trex"
	"github.com/vovakirdan/tui-runner/internal/platform/tui"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout int
	flagVerbose     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the runner SSH server",
	Long: `Start an SSH server that lets users connect and play, plus a read-only
HTTP leaderboard.

Each SSH connection gets its own run; Tab opens the scoreboard between runs.
Runs are stored per-server (all users share the same leaderboard), under the
SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.runner/host_key

HTTP endpoints (disable with --http ""):
  GET /health
  GET /v1/games
  GET /v1/scores/{game}?limit=N
  GET /v1/runs/{game}?limit=N
  GET /v1/stats/{game}

Examples:
  runner serve                           # SSH on :23234, HTTP on :8080
  runner serve --ssh :2222 --http ""     # SSH only, on port 2222
  runner serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP leaderboard address, empty to disable")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log session events and HTTP requests")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner-ssh",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	trex.SetConfigPath(flagConfig)
	trex.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpErr := make(chan error, 1)
	if flagHTTPAddr != "" && store != nil {
		go func() {
			err := serveHTTP(ctx, flagHTTPAddr, store, logger)
			if err != nil {
				logger.Error("HTTP leaderboard failed", "error", err)
				stop()
			}
			httpErr <- err
		}()
	} else {
		close(httpErr)
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	sshErr := server.ListenAndServe(ctx)
	stop()
	if err := errors.Join(sshErr, <-httpErr); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// serveHTTP runs the leaderboard API until ctx is cancelled.
func serveHTTP(ctx context.Context, addr string, store *storage.Store, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(store, logger.WithPrefix("runner-http")),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("starting HTTP leaderboard", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down HTTP leaderboard")
	return srv.Shutdown(shutdownCtx)
}
