// Package tui is the interactive picker: category tabs, a search box, the
// item list with the current selection, and a preview of the generated
// document that can be copied or saved.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"gitie/pkg/catalog"
	"gitie/pkg/engine"
	"gitie/pkg/export"
	"gitie/pkg/highlight"
)

// ErrAborted is returned by Run when the user leaves with ctrl+c.
var ErrAborted = errors.New("selection aborted")

// Options configures the picker.
type Options struct {
	Catalog   *catalog.Catalog
	Selection engine.Selection // preselected ids
	Generator engine.Generator
	Clipboard export.Clipboard // nil disables copy
	SavePath  string           // target of "s"; DefaultFileName when empty
	Overwrite bool
	Append    bool
	Theme     *highlight.Theme // nil uses highlight.DefaultTheme
	Logger    *zap.Logger
}

type focus int

const (
	focusList focus = iota
	focusSearch
	focusPreview
)

// statusMsg reports the outcome of a copy or save.
type statusMsg struct {
	text string
	err  error
}

// Model is the Bubble Tea model of the picker.
type Model struct {
	opts   Options
	logger *zap.Logger
	theme  highlight.Theme
	keys   keyMap

	categories []string
	active     int
	cursor     int
	sel        engine.Selection
	focus      focus

	search   textinput.Model
	preview  viewport.Model
	help     help.Model
	width    int
	height   int
	status   string
	failed   bool
	quitting bool
	aborted  bool
}

// New builds the picker model.
func New(opts Options) Model {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.SavePath == "" {
		opts.SavePath = export.DefaultFileName
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := highlight.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	search := textinput.New()
	search.Placeholder = "Search templates…"
	search.Prompt = "/ "
	search.CharLimit = 64
	search.Width = 40

	return Model{
		opts:       opts,
		logger:     logger,
		theme:      theme,
		keys:       newKeyMap(),
		categories: opts.Catalog.CategoryNames(),
		sel:        engine.Reduce(engine.Selection{}, engine.SelectAction{IDs: opts.Selection}),
		search:     search,
		preview:    viewport.New(80, 20),
		help:       help.New(),
		width:      80,
		height:     24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selection returns the ids selected so far, in selection order.
func (m Model) Selection() engine.Selection {
	return append(engine.Selection{}, m.sel...)
}

// Aborted reports whether the user left with ctrl+c.
func (m Model) Aborted() bool {
	return m.aborted
}

// Document is the generated text for the current selection.
func (m Model) Document() string {
	return m.opts.Generator.Generate(m.opts.Catalog, m.sel)
}

func (m Model) activeCategory() string {
	if len(m.categories) == 0 {
		return ""
	}
	return m.categories[m.active]
}

func (m Model) currentView() engine.View {
	return engine.ViewFor(m.opts.Catalog, m.search.Value(), m.activeCategory())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.preview.Width = msg.Width
		m.preview.Height = max(msg.Height-4, 3)
		return m, nil

	case statusMsg:
		if msg.err != nil {
			m.logger.Warn("Export failed", zap.Error(msg.err))
			m.status, m.failed = msg.err.Error(), true
		} else {
			m.status, m.failed = msg.text, false
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.abort) {
			m.aborted, m.quitting = true, true
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusPreview:
			return m.updatePreview(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := m.currentView()
	switch {
	case key.Matches(msg, m.keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.cursor < len(view.Items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.nextTab):
		m = m.switchCategory(1)
	case key.Matches(msg, m.keys.prevTab):
		m = m.switchCategory(-1)
	case key.Matches(msg, m.keys.search):
		m.focus = focusSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.clearSrch):
		m.search.SetValue("")
		m.cursor = 0
	case key.Matches(msg, m.keys.toggle):
		if m.cursor < len(view.Items) {
			id := view.Items[m.cursor].ID
			m.sel = engine.Reduce(m.sel, engine.ToggleAction{ID: id})
			m.logger.Debug("Toggled item", zap.String("id", id), zap.Int("selected", len(m.sel)))
		}
	case key.Matches(msg, m.keys.clear):
		m.sel = engine.Reduce(m.sel, engine.ClearAction{})
	case key.Matches(msg, m.keys.preview):
		m.focus = focusPreview
		m.status = ""
		m.preview.SetContent(highlight.Render(m.Document(), highlight.Options{Theme: m.theme, ShowLineNumbers: true}))
		m.preview.GotoTop()
	}
	return m, nil
}

// switchCategory moves the active tab by delta, wrapping around, and clears
// the search.
func (m Model) switchCategory(delta int) Model {
	if n := len(m.categories); n > 0 {
		m.active = (m.active + delta + n) % n
	}
	m.search.SetValue("")
	m.cursor = 0
	return m
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.clearSrch):
		m.search.SetValue("")
		m.search.Blur()
		m.focus = focusList
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.accept):
		m.search.Blur()
		m.focus = focusList
		return m, nil
	case key.Matches(msg, m.keys.nextTab):
		m.search.Blur()
		m.focus = focusList
		return m.switchCategory(1), nil
	case key.Matches(msg, m.keys.prevTab):
		m.search.Blur()
		m.focus = focusList
		return m.switchCategory(-1), nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	return m, cmd
}

func (m Model) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.focus = focusList
		return m, nil
	case key.Matches(msg, m.keys.copy):
		return m, copyCmd(m.opts.Clipboard, m.Document())
	case key.Matches(msg, m.keys.save):
		return m, saveCmd(m.opts.SavePath, m.Document(), export.SaveOptions{
			Overwrite: m.opts.Overwrite,
			Append:    m.opts.Append,
			Logger:    m.logger,
		})
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func copyCmd(cb export.Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		if cb == nil {
			return statusMsg{err: fmt.Errorf("no clipboard available")}
		}
		if err := cb.WriteAll(text); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: export.CopiedMessage}
	}
}

func saveCmd(path, text string, opts export.SaveOptions) tea.Cmd {
	return func() tea.Msg {
		if err := export.SaveFile(path, text, opts); err != nil {
			return statusMsg{err: err}
		}
		return statusMsg{text: export.SavedMessage(path)}
	}
}

// Run starts the picker on the terminal and returns the final selection.
func Run(ctx context.Context, opts Options, progOpts ...tea.ProgramOption) (engine.Selection, error) {
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	final, err := tea.NewProgram(New(opts), progOpts...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run picker: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Aborted() {
		return m.Selection(), ErrAborted
	}
	return m.Selection(), nil
}
