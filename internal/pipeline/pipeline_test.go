// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdiddy/paperscope/internal/fetch"
	"github.com/pdiddy/paperscope/internal/results"
	"github.com/pdiddy/paperscope/pkg/types"
)

// fetcherFunc adapts a function to the fetch.Fetcher interface.
type fetcherFunc func(ctx context.Context, query string, limit int) ([]types.Paper, error)

func (f fetcherFunc) Name() string { return "fake" }

func (f fetcherFunc) Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	return f(ctx, query, limit)
}

func makePapers(n int) []types.Paper {
	out := make([]types.Paper, n)
	for i := range out {
		out[i] = types.Paper{
			ID:             fmt.Sprintf("p%d", i+1),
			Title:          fmt.Sprintf("Paper %d", i+1),
			RelevanceScore: 100 - i,
			Year:           2020 + i,
		}
	}
	return out
}

// newTestController wires a controller to a buffered state channel.
func newTestController(f fetch.Fetcher, opts Options) (*Controller, chan State) {
	ch := make(chan State, 64)
	opts.Notify = func(s State) { ch <- s }
	return New(f, opts), ch
}

func waitState(t *testing.T, ch <-chan State, pred func(State) bool) State {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-ch:
			if pred(s) {
				return s
			}
		case <-deadline:
			t.Fatal("timed out waiting for state")
		}
	}
}

func settled(s State) bool { return !s.Loading }

func TestSearchInvalidQueryIssuesNoFetch(t *testing.T) {
	var calls int32
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		atomic.AddInt32(&calls, 1)
		return makePapers(3), nil
	})
	c, ch := newTestController(f, Options{})

	for _, q := range []string{"", "  ", "ab"} {
		c.Search(q)
		s := waitState(t, ch, settled)
		if s.ErrorKind != "validation" {
			t.Errorf("Search(%q): ErrorKind = %q, want validation", q, s.ErrorKind)
		}
		if s.TotalResults != 0 || len(s.Items) != 0 {
			t.Errorf("Search(%q): result set not empty: %+v", q, s)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("fetcher called %d times, want 0", n)
	}
}

func TestSearchInvalidQueryClearsPreviousResults(t *testing.T) {
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		return makePapers(4), nil
	})
	c, ch := newTestController(f, Options{})

	c.Search("transformers")
	waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults == 4 })

	c.Search("ab")
	s := waitState(t, ch, settled)
	if s.TotalResults != 0 {
		t.Errorf("previous results survived an explicit invalid search: %+v", s)
	}
}

func TestSearchSetsLoadingThenSettles(t *testing.T) {
	release := make(chan struct{})
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		<-release
		return makePapers(2), nil
	})
	c, ch := newTestController(f, Options{})

	c.Search("transformers")
	s := waitState(t, ch, func(s State) bool { return s.Loading })
	if s.HasError() {
		t.Errorf("loading state carries an error: %+v", s)
	}

	close(release)
	s = waitState(t, ch, settled)
	if s.TotalResults != 2 || s.Page != 1 {
		t.Errorf("settled state = %+v", s)
	}
}

func TestNewSearchResetsPageToOne(t *testing.T) {
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		return makePapers(8), nil
	})
	c, ch := newTestController(f, Options{PageSize: 3})

	c.Search("first query")
	waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults == 8 })

	c.ChangePage(3)
	s := waitState(t, ch, func(s State) bool { return s.Page == 3 })
	if s.Page != 3 {
		t.Fatalf("Page = %d, want 3", s.Page)
	}

	c.Search("second query")
	s = waitState(t, ch, func(s State) bool { return settled(s) && s.Query == "second query" })
	if s.Page != 1 {
		t.Errorf("Page = %d after new search, want 1", s.Page)
	}
}

func TestChangePageClampsAndNeverRefetches(t *testing.T) {
	var calls int32
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		atomic.AddInt32(&calls, 1)
		return makePapers(8), nil
	})
	c, ch := newTestController(f, Options{PageSize: 6})

	c.Search("transformers")
	waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults == 8 })

	c.ChangePage(-5)
	s := waitState(t, ch, settled)
	if s.Page != 1 {
		t.Errorf("ChangePage(-5): Page = %d, want 1", s.Page)
	}

	c.ChangePage(9999)
	s = waitState(t, ch, settled)
	if s.Page != 2 {
		t.Errorf("ChangePage(9999): Page = %d, want totalPages 2", s.Page)
	}
	if len(s.Items) != 2 {
		t.Errorf("last page has %d items, want 2", len(s.Items))
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("fetcher called %d times, want 1 (page changes never refetch)", n)
	}
}

func TestChangeSortReordersAndResetsPage(t *testing.T) {
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		return makePapers(8), nil
	})
	c, ch := newTestController(f, Options{PageSize: 3})

	c.Search("transformers")
	waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults == 8 })
	c.ChangePage(2)
	waitState(t, ch, func(s State) bool { return s.Page == 2 })

	c.ChangeSort(results.DateNewest)
	s := waitState(t, ch, func(s State) bool { return s.Sort == results.DateNewest })
	if s.Page != 1 {
		t.Errorf("Page = %d after re-sort, want 1", s.Page)
	}
	if s.Items[0].Year != 2027 {
		t.Errorf("first item year = %d, want newest (2027)", s.Items[0].Year)
	}
}

func TestSortKeyCarriesAcrossSearches(t *testing.T) {
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		return makePapers(4), nil
	})
	c, ch := newTestController(f, Options{})

	c.Search("first")
	waitState(t, ch, settled)
	c.ChangeSort(results.DateOldest)
	waitState(t, ch, func(s State) bool { return s.Sort == results.DateOldest })

	c.Search("second")
	s := waitState(t, ch, func(s State) bool { return settled(s) && s.Query == "second" })
	if s.Sort != results.DateOldest {
		t.Errorf("Sort = %q after new search, want carried-over date_oldest", s.Sort)
	}
	if s.Items[0].Year != 2020 {
		t.Errorf("first item year = %d, want oldest (2020)", s.Items[0].Year)
	}
}

func TestStaleResponseDiscarded(t *testing.T) {
	firstRelease := make(chan struct{})
	var call int32
	f := fetcherFunc(func(_ context.Context, query string, _ int) ([]types.Paper, error) {
		if atomic.AddInt32(&call, 1) == 1 {
			<-firstRelease
			return []types.Paper{{ID: "stale", Title: "Stale Result"}}, nil
		}
		return []types.Paper{{ID: "fresh", Title: "Fresh Result"}}, nil
	})
	c, ch := newTestController(f, Options{})

	c.Search("first query")
	waitState(t, ch, func(s State) bool { return s.Loading })

	c.Search("second query")
	s := waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults > 0 })
	if s.Items[0].ID != "fresh" {
		t.Fatalf("second search settled with %q", s.Items[0].ID)
	}

	// Let the superseded first fetch resolve; its outcome must be a no-op.
	close(firstRelease)
	time.Sleep(50 * time.Millisecond)

	final := c.State()
	if final.TotalResults != 1 || final.Items[0].ID != "fresh" {
		t.Errorf("stale response overwrote fresh results: %+v", final)
	}

	select {
	case s := <-ch:
		t.Errorf("unexpected state emitted after stale discard: %+v", s)
	default:
	}
}

func TestNetworkErrorClearsResultsAndLoading(t *testing.T) {
	var fail atomic.Bool
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		if fail.Load() {
			return nil, &fetch.Error{Kind: fetch.KindNetwork, Err: fmt.Errorf("connection refused")}
		}
		return makePapers(5), nil
	})
	c, ch := newTestController(f, Options{})

	c.Search("good query")
	waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults == 5 })

	fail.Store(true)
	c.Search("failing query")
	s := waitState(t, ch, func(s State) bool { return settled(s) && s.Query == "failing query" })
	if s.ErrorKind != "network" {
		t.Errorf("ErrorKind = %q, want network", s.ErrorKind)
	}
	if s.TotalResults != 0 || len(s.Items) != 0 {
		t.Errorf("failed search left partial results: %+v", s)
	}
	if s.Loading {
		t.Error("Loading stuck true after a failed search")
	}
}

func TestEmptyResultSetIsNotAnError(t *testing.T) {
	f := fetcherFunc(func(context.Context, string, int) ([]types.Paper, error) {
		return nil, nil
	})
	c, ch := newTestController(f, Options{})

	c.Search("no matches here")
	s := waitState(t, ch, settled)
	if s.HasError() {
		t.Errorf("empty result set reported as error: %+v", s)
	}
	if s.TotalResults != 0 || s.TotalPages != 0 || s.Page != 1 {
		t.Errorf("empty-set state = %+v", s)
	}
}

// End-to-end over the real mock strategy: the "all" sentinel exposes the
// full dataset of 8 across two pages of 6.
func TestMockModeAllSentinelPagination(t *testing.T) {
	mock, err := fetch.NewMockFetcher()
	if err != nil {
		t.Fatalf("NewMockFetcher: %v", err)
	}
	c, ch := newTestController(mock, Options{PageSize: 6})

	c.Search("all")
	s := waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults > 0 })
	if s.TotalResults != 8 || s.TotalPages != 2 {
		t.Fatalf("TotalResults = %d, TotalPages = %d, want 8 and 2", s.TotalResults, s.TotalPages)
	}
	if len(s.Items) != 6 {
		t.Errorf("page 1 has %d items, want 6", len(s.Items))
	}

	c.ChangePage(2)
	s = waitState(t, ch, func(s State) bool { return s.Page == 2 })
	if len(s.Items) != 2 {
		t.Errorf("page 2 has %d items, want 2", len(s.Items))
	}
}

// The mock strategy's "error" trigger drives the full failure path.
func TestMockModeErrorQuery(t *testing.T) {
	mock, err := fetch.NewMockFetcher()
	if err != nil {
		t.Fatalf("NewMockFetcher: %v", err)
	}
	c, ch := newTestController(mock, Options{PageSize: 6})

	c.Search("all")
	waitState(t, ch, func(s State) bool { return settled(s) && s.TotalResults == 8 })

	c.Search("trigger an error now")
	s := waitState(t, ch, func(s State) bool { return settled(s) && s.Query != "all" })
	if s.ErrorKind != "network" {
		t.Errorf("ErrorKind = %q, want network", s.ErrorKind)
	}
	if s.TotalResults != 0 {
		t.Errorf("previous results not cleared: %+v", s)
	}
}
