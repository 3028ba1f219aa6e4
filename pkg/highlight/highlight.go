// Package highlight renders ignore-file text for the terminal, one style per
// kind of line, with optional line numbers.
package highlight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Kind classifies one line of an ignore file.
type Kind int

const (
	Blank Kind = iota
	Comment
	Wildcard
	Directory
	Negation
	Plain
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Wildcard:
		return "wildcard"
	case Directory:
		return "directory"
	case Negation:
		return "negation"
	default:
		return "plain"
	}
}

// Classify decides how a line is styled. Rules are checked in order, so a
// negated wildcard such as "!*.keep" is a Wildcard.
func Classify(line string) Kind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return Blank
	case strings.HasPrefix(trimmed, "#"):
		return Comment
	case strings.ContainsAny(trimmed, "*?"):
		return Wildcard
	case strings.HasSuffix(trimmed, "/"):
		return Directory
	case strings.HasPrefix(trimmed, "!"):
		return Negation
	default:
		return Plain
	}
}

// Theme holds one style per part of a line.
type Theme struct {
	LineNumber lipgloss.Style
	Comment    lipgloss.Style
	Glob       lipgloss.Style
	Path       lipgloss.Style
	Directory  lipgloss.Style
	Bang       lipgloss.Style
	Plain      lipgloss.Style
}

// DefaultTheme adapts to light and dark terminals.
func DefaultTheme() Theme {
	return Theme{
		LineNumber: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#a1a1aa", Dark: "#52525b"}),
		Comment:    lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34d399"}),
		Glob:       lipgloss.NewStyle().Foreground(lipgloss.Color("#06b6d4")).Bold(true),
		Path:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563eb", Dark: "#60a5fa"}),
		Directory:  lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9333ea", Dark: "#c084fc"}),
		Bang:       lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#ef4444", Dark: "#f87171"}).Bold(true),
		Plain:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#3f3f46", Dark: "#d4d4d8"}),
	}
}

// PlainTheme renders text unchanged.
func PlainTheme() Theme {
	s := lipgloss.NewStyle()
	return Theme{LineNumber: s, Comment: s, Glob: s, Path: s, Directory: s, Bang: s, Plain: s}
}

// Options controls Render.
type Options struct {
	Theme           Theme
	ShowLineNumbers bool
}

var globRuns = regexp.MustCompile(`\*+|\?+`)

// Render styles every line of text. A trailing newline yields a final empty
// numbered line.
func Render(text string, opts Options) string {
	lines := strings.Split(text, "\n")
	width := len(fmt.Sprint(len(lines)))
	if width < 3 {
		width = 3
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		if opts.ShowLineNumbers {
			b.WriteString(opts.Theme.LineNumber.Render(fmt.Sprintf("%*d ", width, i+1)))
		}
		b.WriteString(RenderLine(line, opts.Theme))
	}
	return b.String()
}

// RenderLine styles a single line.
func RenderLine(line string, t Theme) string {
	switch Classify(line) {
	case Blank:
		return ""
	case Comment:
		return t.Comment.Render(line)
	case Wildcard:
		return renderGlob(line, t)
	case Directory:
		return t.Directory.Render(line)
	case Negation:
		idx := strings.Index(line, "!")
		return line[:idx] + t.Bang.Render("!") + t.Plain.Render(line[idx+1:])
	default:
		return t.Plain.Render(line)
	}
}

func renderGlob(line string, t Theme) string {
	var b strings.Builder
	last := 0
	for _, loc := range globRuns.FindAllStringIndex(line, -1) {
		if loc[0] > last {
			b.WriteString(t.Path.Render(line[last:loc[0]]))
		}
		b.WriteString(t.Glob.Render(line[loc[0]:loc[1]]))
		last = loc[1]
	}
	if last < len(line) {
		b.WriteString(t.Path.Render(line[last:]))
	}
	return b.String()
}
