package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitie/pkg/catalog"
	"gitie/pkg/engine"
	"gitie/pkg/export"
	"gitie/pkg/highlight"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Category{
		{Name: "Languages", Items: []catalog.Item{
			{ID: "go", Label: "Go", Content: "*.exe\nvendor/"},
			{ID: "python", Label: "Python", Content: "__pycache__/"},
		}},
		{Name: "OS", Items: []catalog.Item{
			{ID: "macos", Label: "macOS", Content: ".DS_Store"},
		}},
	})
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Catalog == nil {
		opts.Catalog = testCatalog()
	}
	theme := highlight.PlainTheme()
	opts.Theme = &theme
	return New(opts)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m, cmd
}

func TestToggleAndClear(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, engine.Selection{"go"}, m.Selection())

	m, _ = press(t, m, runes("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, engine.Selection{"go", "python"}, m.Selection())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, engine.Selection{"go"}, m.Selection())

	m, _ = press(t, m, runes("c"))
	assert.Empty(t, m.Selection())
}

func TestPreselectionDropsDuplicates(t *testing.T) {
	m := newTestModel(t, Options{Selection: engine.Selection{"macos", "go", "macos"}})
	assert.Equal(t, engine.Selection{"macos", "go"}, m.Selection())
	assert.Contains(t, m.View(), "2 items selected")
}

func TestTabsWrapAndClearSearch(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "OS", m.activeCategory())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "Languages", m.activeCategory())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, "OS", m.activeCategory())

	m, _ = press(t, m, runes("/"), runes("py"))
	assert.Equal(t, "py", m.search.Value())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "", m.search.Value())
	assert.Equal(t, focusList, m.focus)
}

func TestSearch(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, runes("/"))
	require.Equal(t, focusSearch, m.focus)

	// Letters go into the box, so "c" does not clear the selection here.
	m, _ = press(t, m, runes("mac"))
	view := m.currentView()
	assert.Equal(t, engine.ModeSearch, view.Mode)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "macos", view.Items[0].ID)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, engine.Selection{"macos"}, m.Selection())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, engine.ModeBrowse, m.currentView().Mode)

	m, _ = press(t, m, runes("/"), runes("zzz"))
	assert.Contains(t, m.View(), "No matches found for your search")
}

func TestPreviewCopyAndSave(t *testing.T) {
	cb := &export.MemoryClipboard{}
	path := filepath.Join(t.TempDir(), ".gitignore")
	m := newTestModel(t, Options{
		Selection: engine.Selection{"python"},
		Clipboard: cb,
		SavePath:  path,
		Generator: engine.Generator{Product: "Test"},
	})

	m, _ = press(t, m, runes("g"))
	require.Equal(t, focusPreview, m.focus)
	assert.Contains(t, m.View(), "__pycache__/")

	m, cmd := press(t, m, runes("y"))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.Equal(t, m.Document(), cb.Text)
	assert.Equal(t, export.CopiedMessage, m.status)

	m, cmd = press(t, m, runes("s"))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.False(t, m.failed)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Generated .gitignore file\n# Created with Test\n\n# Python\n__pycache__/\n\n", string(data))

	// A second save refuses to overwrite.
	m, cmd = press(t, m, runes("s"))
	m, _ = press(t, m, cmd())
	assert.True(t, m.failed)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusList, m.focus)
}

func TestSaveAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("local/\n"), 0o644))
	m := newTestModel(t, Options{
		Selection: engine.Selection{"macos"},
		SavePath:  path,
		Append:    true,
	})

	m, _ = press(t, m, runes("g"))
	m, cmd := press(t, m, runes("s"))
	require.NotNil(t, cmd)
	m, _ = press(t, m, cmd())
	assert.False(t, m.failed, m.status)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "local/\n\n# Generated .gitignore file\n# Created with Gitie\n\n# macOS\n.DS_Store\n\n", string(data))
}

func TestCopyWithoutClipboard(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(t, m, runes("g"))
	m, cmd := press(t, m, runes("y"))
	m, _ = press(t, m, cmd())
	assert.True(t, m.failed)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{Selection: engine.Selection{"go"}})

	done, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, done.Aborted())
	assert.Equal(t, engine.Selection{"go"}, done.Selection())
	assert.Empty(t, done.View())

	aborted, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, aborted.Aborted())
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, m.preview.Width)
	assert.Equal(t, 26, m.preview.Height)
}
