// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/paperscope/pkg/types"
)

//go:embed dataset.yaml
var datasetYAML []byte

// sentinelAll is a reserved query that returns the entire dataset. It exists
// to exercise pagination during development and testing and is not an
// end-user feature; the remote strategy never special-cases it.
const sentinelAll = "all"

// errorTrigger simulates a network failure when it appears anywhere in the
// query, mirroring the failure path of the remote strategy.
const errorTrigger = "error"

// MockFetcher serves a fixed built-in dataset, filtered by case-insensitive
// substring match against paper titles.
type MockFetcher struct {
	papers []types.Paper

	// Delay, when positive, is waited before responding so that loading
	// states are observable in the interactive browser.
	Delay time.Duration
}

// NewMockFetcher loads the embedded dataset.
func NewMockFetcher() (*MockFetcher, error) {
	var papers []types.Paper
	if err := yaml.Unmarshal(datasetYAML, &papers); err != nil {
		return nil, fmt.Errorf("parsing embedded dataset: %w", err)
	}
	return &MockFetcher{papers: papers}, nil
}

// Name returns the strategy identifier.
func (f *MockFetcher) Name() string { return "mock" }

// Fetch filters the dataset by title substring. The sentinel query "all"
// returns every entry; a query containing "error" fails with a network-kind
// error. Results are copies: callers may reorder them freely.
func (f *MockFetcher) Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if err := ValidateQuery(query); err != nil {
		return nil, err
	}

	if f.Delay > 0 {
		select {
		case <-ctx.Done():
			return nil, &Error{Kind: KindNetwork, Err: ctx.Err()}
		case <-time.After(f.Delay):
		}
	}

	needle := strings.ToLower(strings.TrimSpace(query))

	if strings.Contains(needle, errorTrigger) {
		return nil, &Error{Kind: KindNetwork, Err: fmt.Errorf("simulated failure")}
	}

	if needle == sentinelAll {
		out := make([]types.Paper, len(f.papers))
		copy(out, f.papers)
		return out, nil
	}

	if limit <= 0 {
		limit = DefaultLimit
	}

	var out []types.Paper
	for _, p := range f.papers {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
