// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperscope CLI, a client for a
// semantic paper recommendation service. The search subcommand runs a
// one-shot query; browse opens the interactive result browser.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperscope/internal/fetch"
	"github.com/pdiddy/paperscope/internal/httputil"
	"github.com/pdiddy/paperscope/internal/pipeline"
	"github.com/pdiddy/paperscope/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the paperscope CLI.
var rootCmd = &cobra.Command{
	Use:   "paperscope",
	Short: "Semantic search client for academic papers",
	Long: `paperscope queries a paper recommendation service with plain-language
research questions and presents scored, sorted, paginated results.

Use search for a one-shot query, or browse for an interactive session with
live search, sorting, and paging. Pass --mock to run against a built-in
dataset when no recommendation service is available.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperscope.yaml or ~/.config/paperscope/config.yaml)")
	rootCmd.PersistentFlags().String("endpoint", "", "recommendation service base URL")
	rootCmd.PersistentFlags().Bool("mock", false, "use the built-in dataset instead of the remote service")
}

func initConfig() {
	// A local .env can hold PAPERSCOPE_* overrides for development.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperscope")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperscope"))
		}
	}

	viper.SetEnvPrefix("PAPERSCOPE")
	viper.AutomaticEnv()

	viper.SetDefault("search.endpoint", fetch.DefaultEndpoint)
	viper.SetDefault("search.limit", fetch.DefaultLimit)
	viper.SetDefault("search.timeout", httputil.DefaultTimeout)
	viper.SetDefault("search.user_agent", "paperscope/"+version)
	viper.SetDefault("ui.page_size", pipeline.DefaultPageSize)
	viper.SetDefault("ui.debounce_interval", 300*time.Millisecond)
	viper.SetDefault("logging.level", "info")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the effective configuration from viper plus the
// persistent flags, which win over file and environment values.
func loadConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Search: types.SearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("search.timeout"),
				UserAgent: viper.GetString("search.user_agent"),
			},
			Endpoint: viper.GetString("search.endpoint"),
			Limit:    viper.GetInt("search.limit"),
			Mock:     viper.GetBool("search.mock"),
		},
		UI: types.UIConfig{
			PageSize:         viper.GetInt("ui.page_size"),
			DebounceInterval: viper.GetDuration("ui.debounce_interval"),
			Theme:            viper.GetString("ui.theme"),
			PrefsPath:        viper.GetString("ui.prefs_path"),
		},
		Logging: types.LoggingConfig{
			Level: viper.GetString("logging.level"),
			File:  viper.GetString("logging.file"),
		},
	}

	if ep, _ := cmd.Flags().GetString("endpoint"); ep != "" {
		cfg.Search.Endpoint = ep
	}
	if mock, _ := cmd.Flags().GetBool("mock"); mock {
		cfg.Search.Mock = true
	}
	if cfg.UI.PrefsPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.UI.PrefsPath = filepath.Join(home, ".config", "paperscope", "prefs.db")
		}
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
