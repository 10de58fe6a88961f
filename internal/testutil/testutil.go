// Package testutil compares command output with golden files kept under a
// package's testdata directory.
package testutil

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
)

const goldenExt = ".golden"

// Snapshot is the output of a command together with the name of the golden
// file it is checked against. A nil Output means the command must print
// nothing and no golden file may exist.
type Snapshot struct {
	Name   string
	Output []byte
}

// Fixtures is a directory of golden files.
type Fixtures struct {
	Dir string
}

// NewFixtures returns the golden files stored in testdata/sub.
func NewFixtures(sub string) Fixtures {
	return Fixtures{Dir: filepath.Join("testdata", sub)}
}

// Path returns the golden file for name.
func (f Fixtures) Path(name string) string {
	return filepath.Join(f.Dir, name+goldenExt)
}

// Assert compares s with its golden file. Line endings are normalised so
// that fixtures checked out with CRLF still match.
func (f Fixtures) Assert(t *testing.T, s Snapshot) {
	t.Helper()

	if s.Output == nil {
		path := f.Path(s.Name)
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected no output, but golden file exists: %s", path)
		}

		return
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir(f.Dir),
		goldie.WithNameSuffix(goldenExt),
	)

	want, err := os.ReadFile(f.Path(s.Name))
	if err == nil && bytes.Contains(want, []byte("\r\n")) {
		s.Output = bytes.ReplaceAll(s.Output, []byte("\n"), []byte("\r\n"))
	}

	g.Assert(t, s.Name, s.Output)
}
