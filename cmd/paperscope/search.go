// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperscope/internal/fetch"
	"github.com/pdiddy/paperscope/internal/logging"
	"github.com/pdiddy/paperscope/internal/results"
	"github.com/pdiddy/paperscope/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot semantic paper search",
	Long: `Search sends a plain-language query to the recommendation service and
prints the scored results. Queries must be at least 3 characters long.

Results are sorted by relevance unless --sort selects another order
(relevance, date_newest, date_oldest, title_az).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("limit", 0, "maximum number of results to request (1-50)")
	searchCmd.Flags().String("sort", "relevance", "result order: relevance, date_newest, date_oldest, title_az")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(cmd)
	log := logging.New(cfg.Logging)

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		cfg.Search.Limit = limit
	}

	query := strings.TrimSpace(strings.Join(args, " "))
	if err := fetch.ValidateQuery(query); err != nil {
		var ferr *fetch.Error
		if errors.As(err, &ferr) && ferr.Reason == "too_short" {
			return fmt.Errorf("query must be at least %d characters", fetch.MinQueryRunes)
		}
		return err
	}

	fetcher, err := fetch.New(cfg.Search)
	if err != nil {
		return err
	}
	log.Debug().Str("backend", fetcher.Name()).Str("query", query).Msg("searching")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Search.Timeout)
	defer cancel()

	papers, err := fetcher.Fetch(ctx, query, cfg.Search.Limit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	sortFlag, _ := cmd.Flags().GetString("sort")
	papers = results.Sort(papers, results.ParseKey(sortFlag))

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(papers, jsonOutput)
}

func formatSearchOutput(papers []types.Paper, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(papers)
	}

	if len(papers) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-54s  %-30s  %-6s  %s\n",
		"Score", "Title", "Authors", "Year", "ID")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, p := range papers {
		fmt.Fprintf(os.Stdout, "%4d%%  %-54s  %-30s  %-6d  %s\n",
			p.RelevanceScore, clip(p.Title, 54), clip(p.Authors, 30), p.Year, p.ID)
	}
	fmt.Fprintf(os.Stdout, "\n%d result(s)\n", len(papers))
	return nil
}

// clip shortens s to max runes with an ellipsis.
func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
