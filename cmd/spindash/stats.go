package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/spindash/spindash/internal/config"
	"github.com/spindash/spindash/internal/core"
	"github.com/spindash/spindash/internal/store"
)

// newStatsCommand prints a plain-text rollup of the listening history, for
// shells and scripts that don't want the full-screen dashboard.
func newStatsCommand(cfg config.Config) *cobra.Command {
	var (
		year  int
		month int
		topN  int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print a plain-text listening summary and exit.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			source, err := store.Open(ctx, store.Config{
				URI:        cfg.Source.URI,
				Database:   cfg.Source.Database,
				Collection: cfg.Source.Collection,
			})
			if err != nil {
				return fmt.Errorf("opening source: %w", err)
			}
			defer func() { _ = source.Close(context.Background()) }()

			records, err := source.Plays(ctx)
			if err != nil {
				return fmt.Errorf("fetching plays: %w", err)
			}

			plays := core.Normalize(records)
			if month != 0 && (month < 1 || month > 12) {
				return fmt.Errorf("invalid month %d", month)
			}
			printStats(cmd.OutOrStdout(), plays, year, time.Month(month), topN)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "limit to a calendar year (UTC)")
	cmd.Flags().IntVar(&month, "month", 0, "limit to a month 1-12 (requires --year)")
	cmd.Flags().IntVar(&topN, "top", cfg.UI.TopN, "number of top artists and songs to list")
	return cmd
}

func printStats(w io.Writer, plays []core.Play, year int, month time.Month, topN int) {
	mode := core.ViewAllTime
	switch {
	case year != 0 && month != 0:
		mode = core.ViewByMonth
	case year != 0:
		mode = core.ViewByYear
	}

	filtered := core.Filter(plays, mode, year, month)
	period := mode.PeriodLabel(year, month)

	if len(filtered) == 0 {
		fmt.Fprintf(w, "No data found for %s.\n", period)
		return
	}

	totals := core.Overview(filtered)
	fmt.Fprintf(w, "Listening summary for %s\n\n", period)
	fmt.Fprintf(w, "  Total listening time  %s\n", core.FormatSecondsHMS(totals.DurationSec))
	fmt.Fprintf(w, "  Total songs played    %s\n", core.FormatCount(totals.Plays))
	fmt.Fprintf(w, "  Total artists         %s\n", core.FormatCount(totals.UniqueArtists))

	artists := core.TopArtists(filtered, topN)
	if len(artists) > 0 {
		fmt.Fprintf(w, "\nTop %d artists\n", len(artists))
		for i, a := range artists {
			fmt.Fprintf(w, "  %2d. %-32s %6s plays  %s\n",
				i+1, a.Name, core.FormatCount(a.PlayCount),
				core.FormatSecondsHMS(int(a.TotalMinutes*60)))
		}
	}

	songs := core.TopSongs(filtered, topN)
	if len(songs) > 0 {
		fmt.Fprintf(w, "\nTop %d songs\n", len(songs))
		for i, s := range songs {
			fmt.Fprintf(w, "  %2d. %-32s %-24s %6s plays\n",
				i+1, s.TrackName, s.ArtistDisplay, core.FormatCount(s.PlayCount))
		}
	}
}
