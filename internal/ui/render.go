// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ui

import (
	"fmt"
	"strings"

	"github.com/pdiddy/paperscope/pkg/types"
)

// abstractRunes caps how much of an abstract a card shows.
const abstractRunes = 220

// View renders the full screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewSearchBar())
	b.WriteString("\n\n")
	b.WriteString(m.viewBody())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render("/: search  enter: submit  n/p: page  s: sort  t: theme  q: quit"))

	return b.String()
}

func (m Model) viewHeader() string {
	header := m.theme.Header.Render("paperscope")
	if m.offline {
		header += "  " + m.theme.Badge.Render("offline")
	}
	return header
}

func (m Model) viewSearchBar() string {
	return m.theme.Prompt.Render("search") + " " + m.input.View()
}

func (m Model) viewBody() string {
	if m.state.Loading {
		return m.spin.View() + " " + m.theme.Meta.Render(fmt.Sprintf("searching for %q...", m.state.Query))
	}
	if m.state.HasError() {
		return m.theme.ErrorBar.Render(errorMessage(m.state.ErrorKind, m.state.ErrorReason))
	}
	if m.state.Query == "" && len(m.state.Items) == 0 {
		return m.viewWelcome()
	}
	if len(m.state.Items) == 0 {
		return m.theme.Meta.Render(fmt.Sprintf("No results found for %q.", m.state.Query))
	}

	cards := make([]string, 0, len(m.state.Items))
	for _, p := range m.state.Items {
		cards = append(cards, m.viewCard(p))
	}
	return strings.Join(cards, "\n\n")
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(m.theme.Meta.Render("Describe what you are looking for and press enter."))
	b.WriteString("\n\nFor example:\n")
	for _, q := range exampleQueries {
		b.WriteString("  " + m.theme.Abstract.Render(q) + "\n")
	}
	return b.String()
}

func (m Model) viewCard(p types.Paper) string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(m.theme.Score.Render(fmt.Sprintf("%d%%", p.RelevanceScore)))
	b.WriteString("\n")

	meta := p.Authors
	if p.Year > 0 {
		if meta != "" {
			meta += "  "
		}
		meta += fmt.Sprintf("(%d)", p.Year)
	}
	if len(p.Categories) > 0 {
		meta += "  " + strings.Join(p.Categories, ", ")
	}
	if meta != "" {
		b.WriteString(m.theme.Meta.Render(meta))
		b.WriteString("\n")
	}

	if p.Abstract != "" {
		b.WriteString(m.renderAbstract(p))
	}
	return b.String()
}

// renderAbstract truncates the abstract and re-applies highlight spans as
// styled ranges. Offsets are rune indexes, so truncation clips spans at
// rune granularity rather than byte.
func (m Model) renderAbstract(p types.Paper) string {
	text := []rune(p.Abstract)
	truncated := false
	if len(text) > abstractRunes {
		text = text[:abstractRunes]
		truncated = true
	}

	var b strings.Builder
	cursor := 0
	for _, span := range p.Highlights {
		start, end := span.Start, span.End
		if start >= len(text) || end <= start {
			continue
		}
		if end > len(text) {
			end = len(text)
		}
		if start < cursor {
			continue
		}
		b.WriteString(m.theme.Abstract.Render(string(text[cursor:start])))
		b.WriteString(m.theme.Highlight.Render(string(text[start:end])))
		cursor = end
	}
	if cursor < len(text) {
		b.WriteString(m.theme.Abstract.Render(string(text[cursor:])))
	}
	if truncated {
		b.WriteString(m.theme.Meta.Render("..."))
	}
	return b.String()
}

func (m Model) viewStatusBar() string {
	s := m.state
	if len(s.Items) == 0 && s.TotalResults == 0 {
		return m.theme.StatusBar.Render(fmt.Sprintf("Sort: %s", s.Sort.Label()))
	}
	return m.theme.StatusBar.Render(fmt.Sprintf(
		"%d results  Page %d/%d  Sort: %s",
		s.TotalResults, s.Page, s.TotalPages, s.Sort.Label(),
	))
}

// errorMessage maps pipeline error classes to user-facing text.
func errorMessage(kind, reason string) string {
	switch kind {
	case "validation":
		if reason == "empty" {
			return "Please enter a search query."
		}
		return "Please enter at least 3 characters."
	case "network":
		return "Failed to fetch results. Check that the recommendation service is running."
	default:
		return "Something went wrong."
	}
}
