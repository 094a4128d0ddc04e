// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch obtains candidate papers for a query and normalizes them
// into the display shape. Two interchangeable strategies implement the
// Fetcher interface: a remote recommendation service and a fixed local
// dataset for running without a backend. The strategy is selected by
// configuration, never per call.
package fetch

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/paperscope/pkg/types"
)

// MinQueryRunes is the shortest query accepted for a search.
const MinQueryRunes = 3

// ErrorKind classifies fetch failures for the error taxonomy surfaced to
// the presentation layer.
type ErrorKind string

const (
	// KindValidation marks a user-correctable bad query.
	KindValidation ErrorKind = "validation"

	// KindNetwork marks a timeout, unreachable host, or non-2xx response.
	KindNetwork ErrorKind = "network"
)

// Error is a classified fetch failure.
type Error struct {
	Kind   ErrorKind
	Reason string // machine-readable detail, e.g. "empty", "too_short"
	Err    error  // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// ValidateQuery checks a raw query before any fetch is attempted. It trims
// surrounding whitespace and rejects empty or too-short queries with a
// validation-kind error. A nil return means the query may be sent.
func ValidateQuery(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &Error{Kind: KindValidation, Reason: "empty"}
	}
	if len([]rune(trimmed)) < MinQueryRunes {
		return &Error{Kind: KindValidation, Reason: "too_short"}
	}
	return nil
}

// Fetcher obtains papers for a query. Implementations validate the query
// themselves and return *Error for classified failures, so callers need
// not pre-validate.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, query string, limit int) ([]types.Paper, error)
}

// New returns the fetcher selected by configuration: the built-in dataset
// when cfg.Mock is set, otherwise the remote recommendation service.
func New(cfg types.SearchConfig) (Fetcher, error) {
	if cfg.Mock {
		return NewMockFetcher()
	}
	return NewRemoteFetcher(cfg), nil
}
