// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package results reorders and pages result sets. All operations are pure:
// inputs are never mutated, so a caller holding the previous ordering is
// unaffected by a re-sort.
package results

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/paperscope/pkg/types"
)

// Key selects the ordering of a result set.
type Key string

const (
	// Relevance orders by descending relevance score. Default.
	Relevance Key = "relevance"

	// DateNewest orders by descending publication year.
	DateNewest Key = "date_newest"

	// DateOldest orders by ascending publication year.
	DateOldest Key = "date_oldest"

	// TitleAZ orders by title using locale-aware collation.
	TitleAZ Key = "title_az"
)

// keyOrder is the cycling order used by the interactive browser.
var keyOrder = []Key{Relevance, DateNewest, DateOldest, TitleAZ}

// ParseKey maps a user-supplied sort name to a Key. Unknown names fall back
// to Relevance.
func ParseKey(s string) Key {
	switch Key(s) {
	case Relevance, DateNewest, DateOldest, TitleAZ:
		return Key(s)
	}
	return Relevance
}

// Next returns the key after k in display order, wrapping around.
func (k Key) Next() Key {
	for i, cur := range keyOrder {
		if cur == k {
			return keyOrder[(i+1)%len(keyOrder)]
		}
	}
	return Relevance
}

// Label returns the human-readable name of the key.
func (k Key) Label() string {
	switch k {
	case DateNewest:
		return "Date (Newest)"
	case DateOldest:
		return "Date (Oldest)"
	case TitleAZ:
		return "Title (A-Z)"
	default:
		return "Relevance"
	}
}

// Sort returns a new slice ordered by key. The sort is stable: papers with
// equal keys keep their relative input order. Unknown keys order by
// relevance.
func Sort(papers []types.Paper, key Key) []types.Paper {
	out := make([]types.Paper, len(papers))
	copy(out, papers)

	switch key {
	case DateNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year > out[j].Year })
	case DateOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	case TitleAZ:
		// Collation ranks "apple" before "Mango" before "Zebra"; a raw
		// byte comparison would put all capitals first.
		c := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RelevanceScore > out[j].RelevanceScore
		})
	}
	return out
}
