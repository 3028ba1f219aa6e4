// Package detect suggests catalog items for an existing project by looking
// for well-known marker files.
package detect

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"gitie/pkg/catalog"
	"gitie/pkg/ignore"
)

// DefaultMaxDepth bounds how far below the root markers are looked for.
const DefaultMaxDepth = 3

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

// Options controls Detect.
type Options struct {
	MaxDepth int
	Logger   *zap.Logger
}

// Match records why an item was suggested.
type Match struct {
	ID     string
	Label  string
	Marker string // Relative path of the first file that matched.
}

// Detect walks root and returns the items whose markers match a file or
// directory name, in catalog order. Paths ignored by root/.gitignore are
// skipped.
func Detect(c *catalog.Catalog, root string, opts Options) ([]Match, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	gi := ignore.New(logger)
	if err := gi.CompileFile(filepath.Join(absRoot, ".gitignore")); err != nil {
		logger.Warn("Failed to load .gitignore, continuing without it", zap.Error(err))
	}

	found := make(map[string]string)
	markers := markerIndex(c)

	err = filepath.WalkDir(absRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during detection", zap.String("path", p), zap.Error(err))
			return nil
		}
		if p == absRoot {
			return nil
		}

		relPath, _ := filepath.Rel(absRoot, p)
		relPath = filepath.ToSlash(relPath)
		depth := strings.Count(relPath, "/") + 1

		matchPath := relPath
		if d.IsDir() {
			matchPath += "/"
		}
		ignored := gi.Match(matchPath)
		if ignored && !d.IsDir() {
			return nil
		}

		// Marker directories such as .idea or .vscode count even when the
		// project already ignores them; ignored files do not.
		for _, m := range markers {
			if _, ok := found[m.id]; ok {
				continue
			}
			if ok, _ := path.Match(m.glob, d.Name()); ok {
				found[m.id] = relPath
				logger.Debug("Marker matched", zap.String("id", m.id), zap.String("path", relPath))
			}
		}

		if d.IsDir() {
			if skipDirs[d.Name()] || ignored || depth >= maxDepth {
				return filepath.SkipDir
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Error during detection walk", zap.Error(err))
		return nil, err
	}

	var matches []Match
	for _, cat := range c.Categories() {
		for _, it := range cat.Items {
			if marker, ok := found[it.ID]; ok {
				matches = append(matches, Match{ID: it.ID, Label: it.Label, Marker: marker})
			}
		}
	}
	logger.Debug("Detection finished", zap.String("root", absRoot), zap.Int("matches", len(matches)))
	return matches, nil
}

// IDs returns the ids of matches in order.
func IDs(matches []Match) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	return ids
}

type marker struct {
	id   string
	glob string
}

func markerIndex(c *catalog.Catalog) []marker {
	var out []marker
	for _, cat := range c.Categories() {
		for _, it := range cat.Items {
			for _, g := range it.Markers {
				out = append(out, marker{id: it.ID, glob: g})
			}
		}
	}
	return out
}
