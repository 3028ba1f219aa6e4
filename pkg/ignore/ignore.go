// Package ignore compiles .gitignore pattern lines and matches paths
// against them.
package ignore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern is one compiled ignore line and where it came from.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of the line.
	Negate bool           // Line started with '!'.
	Source string         // Label of the block the line belongs to.
	LineNo int            // Line number within its block (1-based).
	Line   string         // Original line.
}

// Matcher is an ordered list of patterns. The last matching pattern decides.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty matcher. A nil logger discards output.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Len reports how many patterns have been compiled.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Patterns returns the compiled patterns in evaluation order.
func (m *Matcher) Patterns() []*Pattern {
	out := make([]*Pattern, len(m.patterns))
	copy(out, m.patterns)
	return out
}

// CompileLines compiles lines attributed to source. Blank and comment lines
// are skipped. Lines that cannot be compiled are returned as an error after
// the rest have been added.
func (m *Matcher) CompileLines(source string, lines ...string) error {
	var bad []string
	for i, line := range lines {
		re, negate, err := parseLine(line)
		if err != nil {
			m.logger.Debug("Invalid ignore pattern",
				zap.String("source", source),
				zap.Int("lineNo", i+1),
				zap.String("pattern", line),
				zap.Error(err))
			bad = append(bad, fmt.Sprintf("%s:%d: %q: %v", source, i+1, line, err))
			continue
		}
		if re == nil {
			continue
		}
		m.patterns = append(m.patterns, &Pattern{
			Regexp: re,
			Negate: negate,
			Source: source,
			LineNo: i + 1,
			Line:   line,
		})
	}
	m.logger.Debug("Compiled ignore lines",
		zap.String("source", source),
		zap.Int("lineCount", len(lines)),
		zap.Int("totalPatterns", len(m.patterns)))
	if len(bad) > 0 {
		return fmt.Errorf("invalid ignore patterns: %s", strings.Join(bad, "; "))
	}
	return nil
}

// CompileText splits text into lines and compiles them.
func (m *Matcher) CompileText(source, text string) error {
	return m.CompileLines(source, strings.Split(text, "\n")...)
}

// CompileReader compiles every line read from r.
func (m *Matcher) CompileReader(source string, r io.Reader) error {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	return m.CompileLines(source, lines...)
}

// CompileFile compiles an ignore file. A missing file is not an error.
func (m *Matcher) CompileFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return err
	}
	defer f.Close()
	return m.CompileReader(path, f)
}

// Match reports whether path is ignored. A trailing slash marks path as a
// directory.
func (m *Matcher) Match(path string) bool {
	matched, _ := m.MatchWithPattern(path)
	return matched
}

// MatchWithPattern reports whether path is ignored and returns the pattern
// that decided it, or nil when nothing matched.
func (m *Matcher) MatchWithPattern(path string) (bool, *Pattern) {
	normalized := normalizePath(path)

	matched := false
	var decided *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			decided = p
		}
	}
	return matched, decided
}

// normalizePath converts separators to forward slashes and drops a leading
// "./".
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	return strings.TrimPrefix(path, "/")
}
