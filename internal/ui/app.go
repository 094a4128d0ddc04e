// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ui renders the interactive paper browser. The model is a thin
// presentation layer: every search, sort, and page operation goes through
// the pipeline controller, and the model only redraws the snapshots the
// controller emits.
package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/pdiddy/paperscope/internal/debounce"
	"github.com/pdiddy/paperscope/internal/fetch"
	"github.com/pdiddy/paperscope/internal/pipeline"
	"github.com/pdiddy/paperscope/internal/prefs"
	"github.com/pdiddy/paperscope/internal/results"
)

// Controller is the pipeline surface the browser drives. *pipeline.Controller
// implements it; tests substitute a recorder.
type Controller interface {
	Search(query string)
	ChangeSort(key results.Key)
	ChangePage(page int)
	State() pipeline.State
}

// exampleQueries are shown in the empty state as starting points.
var exampleQueries = []string{
	"machine learning for healthcare",
	"climate change prediction models",
	"natural language processing in education",
	"quantum computing algorithms",
}

// stateMsg carries a pipeline snapshot into the update loop.
type stateMsg pipeline.State

// Config holds presentation settings resolved at startup.
type Config struct {
	// Theme is the resolved startup theme (see DetectTheme).
	Theme Theme

	// DebounceInterval is how long typed input must be stable before a
	// live search fires.
	DebounceInterval time.Duration

	// Offline marks mock mode; a badge makes it visible that results do
	// not come from a live service.
	Offline bool
}

// Model is the root Bubble Tea model.
type Model struct {
	ctrl   Controller
	states <-chan pipeline.State
	store  prefs.Store
	log    zerolog.Logger

	state pipeline.State
	theme Theme

	input textinput.Model
	spin  spinner.Model
	deb   *debounce.Debouncer[string]

	offline      bool
	searchActive bool
	width        int
	height       int
	ready        bool
}

// New builds the browser model. states delivers controller snapshots; the
// debouncer feeds settled input back into the controller so that typing
// does not fire a search per keystroke. Queries below the minimum length
// never fire on the live path, so previous results stay visible while the
// user types.
func New(ctrl Controller, states <-chan pipeline.State, store prefs.Store, cfg Config, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "search for papers in plain language..."
	ti.CharLimit = 300
	ti.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	deb := debounce.New(cfg.DebounceInterval, func(q string) {
		if fetch.ValidateQuery(q) == nil {
			ctrl.Search(q)
		}
	})

	return Model{
		ctrl:    ctrl,
		states:  states,
		store:   store,
		log:     log,
		state:   ctrl.State(),
		theme:   cfg.Theme,
		input:   ti,
		spin:    sp,
		deb:     deb,
		offline: cfg.Offline,
	}
}

// State returns the last rendered snapshot (for testing).
func (m Model) State() pipeline.State { return m.state }

// ThemeName returns the active theme name (for testing).
func (m Model) ThemeName() string { return m.theme.Name }

// Init starts listening for pipeline snapshots.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForState(m.states), textinput.Blink)
}

// waitForState blocks on the snapshot channel and re-arms after each
// message. A closed channel ends the subscription.
func waitForState(ch <-chan pipeline.State) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-ch
		if !ok {
			return nil
		}
		return stateMsg(s)
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case spinner.TickMsg:
		if m.state.Loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case stateMsg:
		m.state = pipeline.State(msg)
		cmds := []tea.Cmd{waitForState(m.states)}
		if m.state.Loading {
			cmds = append(cmds, m.spin.Tick)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchActive {
		return m.handleSearchKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyLeft:
		m.ctrl.ChangePage(m.state.Page - 1)
		return m, nil
	case tea.KeyRight:
		m.ctrl.ChangePage(m.state.Page + 1)
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "/":
		m.searchActive = true
		m.input.Focus()
		return m, textinput.Blink
	case "p":
		m.ctrl.ChangePage(m.state.Page - 1)
	case "n":
		m.ctrl.ChangePage(m.state.Page + 1)
	case "g":
		m.ctrl.ChangePage(1)
	case "G":
		m.ctrl.ChangePage(m.state.TotalPages)
	case "s":
		m.ctrl.ChangeSort(m.state.Sort.Next())
	case "t":
		m.toggleTheme()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m.quit()
	case tea.KeyEsc:
		m.searchActive = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.searchActive = false
		m.input.Blur()
		// An explicit submit goes straight through; validation errors
		// surface where the debounced path stays silent.
		m.ctrl.Search(m.input.Value())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.deb.Set(m.input.Value())
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.deb.Stop()
	return m, tea.Quit
}

// toggleTheme flips between dark and light and persists the choice.
func (m *Model) toggleTheme() {
	if m.theme.Name == prefs.ThemeDark {
		m.theme = LightTheme()
	} else {
		m.theme = DarkTheme()
	}
	if m.store != nil {
		if err := m.store.Set(prefs.ThemeKey, m.theme.Name); err != nil {
			m.log.Warn().Err(err).Msg("could not persist theme preference")
		}
	}
}
