// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paperscope client.
package types

// HighlightSpan marks a rune-offset range [Start, End) of a paper abstract
// that the backend flagged as matching the query. Offsets are rune indices
// into Paper.Abstract after markup stripping; raw markup never leaves the
// fetch layer.
type HighlightSpan struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Paper is the normalized, display-ready representation of one search result.
// Instances are immutable once built: downstream stages copy slices of Paper
// rather than mutating elements in place.
type Paper struct {
	// ID is the stable identifier from the source (arXiv ID).
	ID string `json:"id" yaml:"id"`

	// Title is the paper title as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Authors is the display form of the author list, joined with ", ".
	Authors string `json:"authors" yaml:"authors"`

	// Year is the publication year. When the source timestamp is missing or
	// unparseable this falls back to the calendar year at fetch time.
	Year int `json:"year" yaml:"year"`

	// Abstract is the paper abstract with highlight markup stripped.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Highlights lists the abstract ranges the backend marked as matches.
	Highlights []HighlightSpan `json:"highlights,omitempty" yaml:"highlights,omitempty"`

	// RelevanceScore is an integer percentage in [0, 100], derived from the
	// backend's fractional score by scaling and rounding half up.
	RelevanceScore int `json:"relevance_score" yaml:"relevance_score"`

	// URL is the source link for the paper, when the backend supplied one.
	URL string `json:"url,omitempty" yaml:"url,omitempty"`

	// Categories lists the source category tags (e.g. "cs.LG").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Explanation is the backend's human-readable relevance explanation.
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}
