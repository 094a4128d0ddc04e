// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates the search stages: validate, fetch, sort,
// paginate. It owns the single observable state bundle and replaces it
// atomically, so the presentation layer never sees a result set paired with
// mismatched pagination state.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscope/internal/fetch"
	"github.com/pdiddy/paperscope/internal/results"
	"github.com/pdiddy/paperscope/pkg/types"
)

// DefaultPageSize is the number of results per page when unconfigured.
const DefaultPageSize = 6

// State is a consistent snapshot of the pipeline, delivered to the notify
// listener after every change. Items holds the current page only.
type State struct {
	Loading      bool
	ErrorKind    string // "", "validation", or "network"
	ErrorReason  string // machine-readable detail for validation errors
	Query        string
	Items        []types.Paper
	TotalResults int
	Page         int
	TotalPages   int
	Sort         results.Key
}

// HasError reports whether the last operation failed.
func (s State) HasError() bool { return s.ErrorKind != "" }

// Options configures a Controller.
type Options struct {
	// PageSize is the fixed page size (default 6).
	PageSize int

	// Limit is the result limit passed to the fetcher (default 10).
	Limit int

	// Sort is the initial sort key (default Relevance).
	Sort results.Key

	// Logger receives pipeline diagnostics. Defaults to a no-op logger.
	Logger *zerolog.Logger

	// Notify is called with a state snapshot after every change, while the
	// controller's lock is held: listeners must hand the snapshot off
	// (e.g. onto a channel) rather than calling back into the controller.
	Notify func(State)

	// Context bounds all fetches started by Search. Defaults to
	// context.Background; per-fetch timeouts belong to the fetcher.
	Context context.Context
}

// Controller runs the pipeline. All exported methods are safe for
// concurrent use.
type Controller struct {
	fetcher  fetch.Fetcher
	pageSize int
	limit    int
	log      zerolog.Logger
	notify   func(State)
	ctx      context.Context

	mu        sync.Mutex
	seq       uint64 // token of the most recently issued search
	resultSet []types.Paper
	state     State
}

// New builds a Controller over the given fetch strategy.
func New(fetcher fetch.Fetcher, opts Options) *Controller {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.Limit <= 0 {
		opts.Limit = fetch.DefaultLimit
	}
	if opts.Sort == "" {
		opts.Sort = results.Relevance
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &Controller{
		fetcher:  fetcher,
		pageSize: opts.PageSize,
		limit:    opts.Limit,
		log:      log,
		notify:   opts.Notify,
		ctx:      opts.Context,
		state:    State{Page: 1, Sort: opts.Sort},
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Search starts a search for query and returns immediately; the outcome
// arrives through the notify listener. Each search carries a sequence
// token, and only the most recently issued search may update the visible
// state: a response for a superseded token is discarded, so an earlier slow
// fetch can never overwrite a later search's results.
func (c *Controller) Search(query string) {
	c.mu.Lock()

	c.seq++
	token := c.seq

	if err := fetch.ValidateQuery(query); err != nil {
		// The pipeline stops before any network call; searching again
		// with a bad query explicitly discards the previous result set.
		kind, reason := classify(err)
		c.resultSet = nil
		c.state = State{
			ErrorKind:   kind,
			ErrorReason: reason,
			Query:       query,
			Page:        1,
			Sort:        c.state.Sort,
		}
		c.emitLocked()
		c.mu.Unlock()
		return
	}

	c.state.Loading = true
	c.state.ErrorKind = ""
	c.state.ErrorReason = ""
	c.state.Query = query
	c.emitLocked()
	c.mu.Unlock()

	c.log.Debug().Uint64("token", token).Str("query", query).Str("fetcher", c.fetcher.Name()).Msg("search started")

	go func() {
		papers, err := c.fetcher.Fetch(c.ctx, query, c.limit)

		c.mu.Lock()
		defer c.mu.Unlock()

		if token != c.seq {
			c.log.Debug().Uint64("token", token).Uint64("current", c.seq).Msg("stale response discarded")
			return
		}

		if err != nil {
			kind, reason := classify(err)
			c.log.Warn().Err(err).Str("query", query).Msg("search failed")
			c.resultSet = nil
			c.state = State{
				ErrorKind:   kind,
				ErrorReason: reason,
				Query:       query,
				Page:        1,
				Sort:        c.state.Sort,
			}
			c.emitLocked()
			return
		}

		c.log.Debug().Uint64("token", token).Int("results", len(papers)).Msg("search completed")
		c.resultSet = results.Sort(papers, c.state.Sort)
		c.applyLocked(1)
		c.emitLocked()
	}()
}

// ChangeSort reorders the current result set and resets to page 1, so a
// re-sort never leaves the viewer on a now-out-of-range page. The key is
// carried forward to subsequent searches.
func (c *Controller) ChangeSort(key results.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key = results.ParseKey(string(key))
	c.state.Sort = key
	c.resultSet = results.Sort(c.resultSet, key)
	c.applyLocked(1)
	c.emitLocked()
}

// ChangePage moves to the requested page, clamped into the valid range.
// Changing the page never triggers a fetch.
func (c *Controller) ChangePage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.applyLocked(page)
	c.emitLocked()
}

// applyLocked re-derives the page slice and pagination counters from the
// result set. Caller holds c.mu.
func (c *Controller) applyLocked(page int) {
	items, totalPages := results.Paginate(c.resultSet, page, c.pageSize)
	c.state = State{
		Query:        c.state.Query,
		Sort:         c.state.Sort,
		Items:        items,
		TotalResults: len(c.resultSet),
		Page:         results.ClampPage(page, totalPages),
		TotalPages:   totalPages,
	}
}

// emitLocked delivers the current snapshot to the listener. Caller holds
// c.mu; holding it across the callback keeps snapshots ordered.
func (c *Controller) emitLocked() {
	if c.notify != nil {
		c.notify(c.state)
	}
}

// classify maps a fetch failure onto the error taxonomy. Anything that is
// not a classified fetch error counts as a network failure.
func classify(err error) (kind, reason string) {
	var fe *fetch.Error
	if errors.As(err, &fe) {
		return string(fe.Kind), fe.Reason
	}
	return string(fetch.KindNetwork), ""
}
