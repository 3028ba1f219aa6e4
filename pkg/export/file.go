package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

const (
	// DefaultFileName is the suggested name for a saved document.
	DefaultFileName = ".gitignore"
	// MimeType is the content type of a document.
	MimeType = "text/plain"
)

// ErrExists is returned when the target file exists and neither Overwrite
// nor Append was requested.
var ErrExists = errors.New("file already exists")

// SaveOptions controls SaveFile.
type SaveOptions struct {
	Overwrite bool
	Append    bool
	Logger    *zap.Logger
}

// SaveFile writes text to path. The file is written next to its final
// location and renamed into place so readers never see a partial document.
// With Append, text follows the existing content after one blank line.
func SaveFile(path, text string, opts SaveOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if path == "" {
		path = DefaultFileName
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if opts.Append {
			text = joinAppend(string(existing), text)
		} else if !opts.Overwrite {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		logger.Error("Failed to read existing file", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := writeAtomic(path, []byte(text)); err != nil {
		logger.Error("Failed to write file", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logger.Debug("Saved document", zap.String("path", path), zap.Int("bytes", len(text)))
	return nil
}

func joinAppend(existing, text string) string {
	if existing == "" {
		return text
	}
	existing = strings.TrimRight(existing, "\n")
	return existing + "\n\n" + text
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
