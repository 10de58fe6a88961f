// Package archive appends completed sessions to monthly JSON-lines files and
// reads them back for reconciliation and history reports.
package archive

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/werk/internal/models"
	"github.com/ayoisaiah/werk/internal/osutil"
)

const (
	fileExt     = ".jsonl"
	monthLayout = "2006-01"
)

// Archive is a directory of monthly session archives.
type Archive struct {
	dir string
}

// New returns an Archive rooted at dir.
func New(dir string) *Archive {
	return &Archive{dir: dir}
}

// Dir returns the archive directory.
func (a *Archive) Dir() string {
	return a.dir
}

// PathFor returns the archive file covering the month of t.
func (a *Archive) PathFor(t time.Time) string {
	return filepath.Join(a.dir, t.UTC().Format(monthLayout)+fileExt)
}

// Append writes rec as a single line to the archive of its end month,
// creating the file if needed.
func (a *Archive) Append(rec *models.ArchiveRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(a.dir, osutil.DirPermission); err != nil {
		return err
	}

	path := a.PathFor(rec.EndTime)

	f, err := os.OpenFile(
		path,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		osutil.FilePermission,
	)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	// one write per record keeps lines whole under O_APPEND
	_, err = f.Write(append(b, '\n'))
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("append to archive: %w", err)
	}

	return f.Close()
}

// Find looks up the record for a session. Sessions are archived in the
// month they ended, so the start month and the one after it are searched.
func (a *Archive) Find(sessionID string, start time.Time) (*models.ArchiveRecord, error) {
	first := start.UTC()
	next := time.Date(first.Year(), first.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	months := []time.Time{first, next}

	for _, m := range months {
		records, err := a.readFile(a.PathFor(m))
		if err != nil {
			return nil, err
		}

		for i := range records {
			r := records[i]
			if r.SessionID == sessionID && r.StartTime.Equal(start) {
				return &r, nil
			}
		}
	}

	return nil, nil
}

// List returns the records whose start time falls in [since, until], oldest
// first. A zero until means no upper bound.
func (a *Archive) List(since, until time.Time) ([]models.ArchiveRecord, error) {
	files, err := a.files()
	if err != nil {
		return nil, err
	}

	var result []models.ArchiveRecord

	for _, f := range files {
		month, err := time.Parse(monthLayout, strings.TrimSuffix(f, fileExt))
		if err != nil {
			continue
		}

		// skip months that end before since or begin after until
		if !since.IsZero() && month.AddDate(0, 1, 0).Before(since.UTC()) {
			continue
		}

		if !until.IsZero() && month.After(until.UTC()) {
			continue
		}

		records, err := a.readFile(filepath.Join(a.dir, f))
		if err != nil {
			return nil, err
		}

		for i := range records {
			r := records[i]

			if !since.IsZero() && r.StartTime.Before(since) {
				continue
			}

			if !until.IsZero() && r.StartTime.After(until) {
				continue
			}

			result = append(result, r)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})

	return result, nil
}

// files returns the archive file names in natural order.
func (a *Archive) files() ([]string, error) {
	entries, err := os.ReadDir(a.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var names []string

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}

		names = append(names, e.Name())
	}

	sort.Slice(names, func(i, j int) bool {
		return natural.Less(names[i], names[j])
	})

	return names, nil
}

// readFile decodes every line of an archive file. Lines that fail to parse
// (a torn append after a crash) are skipped.
func (a *Archive) readFile(path string) ([]models.ArchiveRecord, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var records []models.ArchiveRecord

	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0

	for scanner.Scan() {
		line++

		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 {
			continue
		}

		var r models.ArchiveRecord
		if err := json.Unmarshal(text, &r); err != nil {
			slog.Warn(
				"skipping unreadable archive line",
				slog.String("path", path),
				slog.Int("line", line),
				slog.Any("error", err),
			)

			continue
		}

		records = append(records, r)
	}

	return records, scanner.Err()
}
