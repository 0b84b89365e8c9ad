package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/spindash/spindash/internal/config"
	"github.com/spindash/spindash/internal/core"
	"github.com/spindash/spindash/internal/store"
	"github.com/spindash/spindash/internal/tui"
)

func runDashboard(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(cfg.UI.TopN)

	var program *tea.Program
	interval := time.Duration(cfg.UI.RefreshIntervalSeconds) * time.Second

	source, err := store.Open(ctx, store.Config{
		URI:        cfg.Source.URI,
		Database:   cfg.Source.Database,
		Collection: cfg.Source.Collection,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening source: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = source.Close(context.Background()) }()

	fetch := func() {
		records, err := source.Plays(ctx)
		if program == nil {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("fetch failed")
			program.Send(tui.SourceErrorMsg{Err: err})
			return
		}
		plays := core.Normalize(records)
		log.Debug().Int("records", len(records)).Int("plays", len(plays)).Msg("dataset refreshed")
		program.Send(tui.PlaysMsg(plays))
	}

	model.SetOnRefresh(func() { go fetch() })

	program = tea.NewProgram(model, tea.WithAltScreen())

	go broadcastRefresh(ctx, program, fetch, interval)
	if fs, ok := source.(store.FileSource); ok {
		go watchArchive(ctx, fs.Path(), fetch)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}
}

// broadcastRefresh runs the initial fetch and then refetches on the
// configured interval until the context ends.
func broadcastRefresh(ctx context.Context, program *tea.Program, fetch func(), interval time.Duration) {
	program.Send(tui.RefreshStartedMsg{})
	fetch()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			program.Send(tui.RefreshStartedMsg{})
			fetch()
		}
	}
}

// watchArchive refetches when a file-backed source changes on disk. Watch
// failures are logged and the ticker keeps the data fresh regardless.
func watchArchive(ctx context.Context, path string, fetch func()) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn().Err(err).Msg("archive watch unavailable")
		return
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot watch archive")
		return
	}

	// SQLite rewrites can land as a burst of events; debounce them.
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				pending = time.After(500 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("archive watch error")
		case <-pending:
			pending = nil
			log.Debug().Str("path", path).Msg("archive changed")
			fetch()
		}
	}
}
