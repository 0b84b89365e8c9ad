package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/spindash/spindash/internal/config"
)

func main() {
	closeLog := setupLogging()
	defer closeLog()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	root := cobra.Command{
		Use:   "spindash",
		Short: "Spindash is a terminal dashboard for exploring your Spotify listening history.",
		Run: func(_ *cobra.Command, _ []string) {
			runDashboard(cfg)
		},
	}

	root.AddCommand(newStatsCommand(cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging routes zerolog to a debug file when SPINDASH_DEBUG names one,
// and discards output otherwise so log lines never tear the TUI.
func setupLogging() func() {
	path := os.Getenv("SPINDASH_DEBUG")
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(f).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return func() { _ = f.Close() }
}
