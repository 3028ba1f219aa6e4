package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"node_modules/", "node_modules/", true},
		{"node_modules/", "web/node_modules/react/index.js", true},
		{"node_modules/", "node_modules", false},
		{"*.log", "debug.log", true},
		{"*.log", "logs/app/debug.log", true},
		{"*.log", "debug.log.txt", false},
		{"/build", "build/out.o", true},
		{"/build", "src/build", false},
		{"**/*.rs.bk", "src/deep/main.rs.bk", true},
		{".idea/**/workspace.xml", ".idea/workspace.xml", true},
		{".idea/**/workspace.xml", ".idea/a/b/workspace.xml", true},
		{"*.py[cod]", "pkg/mod.pyc", true},
		{"*.py[cod]", "pkg/mod.pyx", false},
		{"[Dd]esktop.ini", "Desktop.ini", true},
		{"$RECYCLE.BIN/", "$RECYCLE.BIN/file", true},
		{"config/autoload/*.local.php", "config/autoload/db.local.php", true},
		{"config/autoload/*.local.php", "other/config/autoload/db.local.php", false},
		{"file?.txt", "file1.txt", true},
		{"file?.txt", "file/.txt", false},
		{`\#hash`, "#hash", true},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			m := New(nil)
			require.NoError(t, m.CompileLines("test", tt.pattern))
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}
}

func TestWhitespace(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"trailing spaces dropped", "build   ", "build", true},
		{"carriage return dropped", "build\r", "build", true},
		{"escaped trailing space kept", `foo\ `, "foo ", true},
		{"escaped trailing space required", `foo\ `, "foo", false},
		{"leading space kept", " lead", " lead", true},
		{"leading space not dropped", " lead", "lead", false},
		{"indented hash is a pattern", " #x", " #x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(nil)
			require.NoError(t, m.CompileLines("test", tt.pattern))
			assert.Equal(t, tt.want, m.Match(tt.path))
		})
	}

	m := New(nil)
	require.NoError(t, m.CompileLines("test", "   ", "\r"))
	assert.Equal(t, 0, m.Len())
}

func TestTrimTrailingSpaces(t *testing.T) {
	assert.Equal(t, "a", trimTrailingSpaces("a  "))
	assert.Equal(t, `a\ `, trimTrailingSpaces(`a\   `))
	assert.Equal(t, `a\\`, trimTrailingSpaces(`a\\ `))
	assert.Equal(t, "  a", trimTrailingSpaces("  a"))
}

func TestNegationLastMatchWins(t *testing.T) {
	m := New(nil)
	require.NoError(t, m.CompileText("VS Code", ".vscode/*\n!.vscode/settings.json"))

	assert.True(t, m.Match(".vscode/launch.json"))
	assert.False(t, m.Match(".vscode/settings.json"))

	matched, p := m.MatchWithPattern(".vscode/settings.json")
	assert.False(t, matched)
	require.NotNil(t, p)
	assert.True(t, p.Negate)
	assert.Equal(t, 2, p.LineNo)
	assert.Equal(t, "VS Code", p.Source)
}

func TestCompileSkipsCommentsAndBlanks(t *testing.T) {
	m := New(nil)
	require.NoError(t, m.CompileText("x", "# comment\n\n   \n*.tmp"))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 4, m.Patterns()[0].LineNo)
}

func TestCompileReportsInvalidLines(t *testing.T) {
	m := New(nil)
	err := m.CompileLines("bad", "*.ok", "[unterminated")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad:2")
	assert.Equal(t, 1, m.Len(), "valid lines are still compiled")
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "a/b", normalizePath("./a/b"))
	assert.Equal(t, "a/b", normalizePath("/a/b"))
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	require.NoError(t, os.WriteFile(path, []byte("dist/\n"), 0o644))

	m := New(nil)
	require.NoError(t, m.CompileFile(path))
	assert.True(t, m.Match("dist/app.js"))

	require.NoError(t, m.CompileFile(filepath.Join(dir, "missing")))
}
