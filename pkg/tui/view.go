package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitie/pkg/engine"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#10b981"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.AdaptiveColor{Light: "#52525b", Dark: "#a1a1aa"})
	activeTabStyle = tabStyle.Bold(true).Underline(true).Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34d399"})
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06b6d4"))
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#71717a", Dark: "#71717a"})
	chipStyle      = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.AdaptiveColor{Light: "#d1fae5", Dark: "#064e3b"})
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.focus == focusPreview {
		return m.previewView()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("gitie") + mutedStyle.Render("  pick templates for your .gitignore"))
	b.WriteString("\n\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(m.itemsView())
	b.WriteString("\n")
	if chips := m.chipsView(); chips != "" {
		b.WriteString(chips)
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(engine.Summary(len(m.sel))))
	b.WriteString("\n\n")
	if m.focus == focusSearch {
		b.WriteString(m.help.View(searchHelp(m.keys)))
	} else {
		b.WriteString(m.help.View(listHelp(m.keys)))
	}
	return b.String()
}

func (m Model) tabsView() string {
	tabs := make([]string, 0, len(m.categories))
	for i, name := range m.categories {
		if i == m.active && strings.TrimSpace(m.search.Value()) == "" {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) itemsView() string {
	view := m.currentView()
	if len(view.Items) == 0 {
		return mutedStyle.Render(view.EmptyMessage()) + "\n"
	}

	var b strings.Builder
	for i, it := range view.Items {
		pointer := "  "
		if i == m.cursor && m.focus == focusList {
			pointer = cursorStyle.Render("> ")
		}
		box := "[ ]"
		label := it.Label
		if engine.Contains(m.sel, it.ID) {
			box = checkedStyle.Render("[x]")
			label = checkedStyle.Render(label)
		}
		b.WriteString(pointer + box + " " + label)
		if view.Mode == engine.ModeSearch {
			if owner, ok := m.opts.Catalog.OwningCategory(it.ID); ok {
				b.WriteString(mutedStyle.Render("  " + owner))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) chipsView() string {
	labels := engine.Labels(m.opts.Catalog, m.sel)
	if len(labels) == 0 {
		return ""
	}
	chips := make([]string, len(labels))
	for i, l := range labels {
		chips[i] = chipStyle.Render(l)
	}
	return lipgloss.NewStyle().Width(max(m.width, 20)).Render(strings.Join(chips, " "))
}

func (m Model) previewView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Preview") + mutedStyle.Render("  "+m.opts.SavePath))
	b.WriteString("\n")
	b.WriteString(m.preview.View())
	b.WriteString("\n")
	if m.status != "" {
		if m.failed {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(checkedStyle.Render(m.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(previewHelp(m.keys)))
	return b.String()
}
