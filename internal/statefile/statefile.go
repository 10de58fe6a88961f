// Package statefile reads and writes the small JSON documents that hold werk's
// state. Writes replace the target in one rename so that a concurrent reader
// sees either the old or the new document, never a partial one.
package statefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/werk/internal/osutil"
)

// ErrCorrupt is returned by Read when a document exists but cannot be parsed.
var ErrCorrupt = errors.New("state file is corrupt")

// Write marshals v and atomically replaces the file at path.
func Write(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)

	if err = os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err = tmpFile.Write(b); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}

	if err = tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Read decodes the document at path into v. It reports false when the file
// does not exist. A document that fails to parse yields an error wrapping
// ErrCorrupt; the caller decides whether to delete it.
func Read(path string, v any) (bool, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	if err = json.Unmarshal(b, v); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	return true, nil
}

// Load is Read with self-healing: a corrupt document is deleted, logged and
// reported as absent.
func Load(path string, v any) (bool, error) {
	found, err := Read(path, v)
	if err == nil {
		return found, nil
	}

	if !errors.Is(err, ErrCorrupt) {
		return false, err
	}

	slog.Warn("purging corrupt state file", slog.String("path", path), slog.Any("error", err))

	return false, Remove(path)
}

// Remove deletes the file at path. A missing file is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// Exists reports whether a file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
