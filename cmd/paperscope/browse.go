// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/fetch"
	"github.com/pdiddy/paperscope/internal/logging"
	"github.com/pdiddy/paperscope/internal/pipeline"
	"github.com/pdiddy/paperscope/internal/prefs"
	"github.com/pdiddy/paperscope/internal/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive paper browser",
	Long: `Browse opens a full-screen session with live search, sorting, and
paging. Typed queries fire automatically once input settles; results can be
re-sorted and paged without refetching.

The color theme toggles with "t" and is remembered across sessions.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().String("theme", "", `color theme: "dark" or "light" (overrides the stored preference)`)

	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)

	// The terminal belongs to the UI, so diagnostics go to a file.
	if cfg.Logging.File == "" {
		cfg.Logging.File = os.Getenv("PAPERSCOPE_LOG_FILE")
	}
	log, closeLog, err := logging.NewFile(cfg.Logging)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog.Close()

	fetcher, err := fetch.New(cfg.Search)
	if err != nil {
		return err
	}

	var store prefs.Store
	store, err = prefs.Open(cfg.UI.PrefsPath)
	if err != nil {
		// Preferences are a convenience; run the session without
		// persistence rather than failing startup.
		log.Warn().Err(err).Str("path", cfg.UI.PrefsPath).Msg("preference store unavailable")
		store = prefs.NewMemStore()
	}
	defer store.Close()

	if t, _ := cmd.Flags().GetString("theme"); t != "" {
		cfg.UI.Theme = t
		if err := store.Set(prefs.ThemeKey, t); err != nil {
			log.Warn().Err(err).Msg("could not persist theme preference")
		}
	}

	states := make(chan pipeline.State, 16)
	ctrl := pipeline.New(fetcher, pipeline.Options{
		PageSize: cfg.UI.PageSize,
		Limit:    cfg.Search.Limit,
		Logger:   &log,
		Notify: func(s pipeline.State) {
			states <- s
		},
		Context: cmd.Context(),
	})

	model := ui.New(ctrl, states, store, ui.Config{
		Theme:            ui.DetectTheme(store, cfg.UI.Theme),
		DebounceInterval: cfg.UI.DebounceInterval,
		Offline:          cfg.Search.Mock,
	}, log)

	log.Info().Str("backend", fetcher.Name()).Msg("starting browser")

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}
