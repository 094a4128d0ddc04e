// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/paperscope/pkg/types"
)

// Recommendation service JSON structures.
type recommendResponse struct {
	Results []resultItem   `json:"results"`
	Meta    map[string]any `json:"meta"`
}

type resultItem struct {
	Paper       rawPaper `json:"paper"`
	Score       float64  `json:"score"`
	Explanation string   `json:"explanation"`
}

type rawPaper struct {
	ArxivID    string   `json:"arxiv_id"`
	Title      string   `json:"title"`
	Abstract   string   `json:"abstract"`
	Authors    []string `json:"authors"`
	Published  string   `json:"published"`
	URL        string   `json:"url"`
	Categories []string `json:"categories"`
}

// publishedFormats are tried in order when parsing the publication timestamp.
var publishedFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// normalizePaper maps one backend result into the display shape. The mapping
// is total: every field that cannot be derived falls back to a default
// (empty string for text, now's calendar year for the year, 0 for the score)
// instead of failing the whole result set.
func normalizePaper(item resultItem, now time.Time) types.Paper {
	abstract, highlights := stripHighlights(item.Paper.Abstract)
	return types.Paper{
		ID:             item.Paper.ArxivID,
		Title:          item.Paper.Title,
		Authors:        strings.Join(item.Paper.Authors, ", "),
		Year:           publicationYear(item.Paper.Published, now),
		Abstract:       abstract,
		Highlights:     highlights,
		RelevanceScore: scorePercent(item.Score),
		URL:            item.Paper.URL,
		Categories:     item.Paper.Categories,
		Explanation:    item.Explanation,
	}
}

// publicationYear derives the year from an ISO-8601 timestamp, falling back
// to now's calendar year when the timestamp is missing or unparseable.
func publicationYear(published string, now time.Time) int {
	for _, layout := range publishedFormats {
		if t, err := time.Parse(layout, published); err == nil {
			return t.Year()
		}
	}
	return now.Year()
}

// scorePercent scales a fractional score (0.0-1.0) to an integer percentage,
// rounding half up and clamping to [0, 100]. Out-of-range and NaN inputs
// clamp rather than propagate.
func scorePercent(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	pct := int(math.Floor(score*100 + 0.5))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// highlightRE matches the inline markup the backend may embed around query
// terms in abstracts.
var highlightRE = regexp.MustCompile(`(?s)<span class="highlight">(.*?)</span>`)

// stripHighlights removes highlight markup from text and returns the plain
// text together with rune-offset spans covering the previously marked
// ranges. Carrying offsets instead of markup keeps injected HTML out of the
// rendering path.
func stripHighlights(text string) (string, []types.HighlightSpan) {
	matches := highlightRE.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var b strings.Builder
	spans := make([]types.HighlightSpan, 0, len(matches))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		start := utf8.RuneCountInString(b.String())
		b.WriteString(text[m[2]:m[3]])
		spans = append(spans, types.HighlightSpan{
			Start: start,
			End:   utf8.RuneCountInString(b.String()),
		})
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), spans
}
