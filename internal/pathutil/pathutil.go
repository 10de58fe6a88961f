// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/werk/internal/osutil"
)

// Paths holds all application path configurations.
type Paths struct {
	appDir              string
	configFileName      string
	dbFileName          string
	sessionFileName     string
	enforcementFileName string
	archiveDirName      string
	logFileName         string

	// Computed absolute paths
	configFilePath      string
	dataDir             string
	dbFilePath          string
	sessionFilePath     string
	enforcementFilePath string
	archiveDir          string
	logFilePath         string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths(os.Getenv("WERK_ENV"))
		initErr = paths.computePaths()
	})

	return initErr
}

func newPaths(env string) *Paths {
	p := &Paths{
		appDir:              "werk",
		configFileName:      "config.yml",
		dbFileName:          "werk.db",
		sessionFileName:     "session.json",
		enforcementFileName: "enforcement.json",
		archiveDirName:      "archive",
		logFileName:         "werk.log",
	}

	// Isolates development and test runs from the real data.
	env = strings.TrimSpace(env)
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("werk_%s.db", env)
		p.sessionFileName = fmt.Sprintf("session_%s.json", env)
		p.enforcementFileName = fmt.Sprintf("enforcement_%s.json", env)
		p.archiveDirName = fmt.Sprintf("archive_%s", env)
		p.logFileName = fmt.Sprintf("werk_%s.log", env)
	}

	return p
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DataDir() string {
	return Must().dataDir
}

func DBFilePath() string {
	return Must().dbFilePath
}

func SessionFilePath() string {
	return Must().sessionFilePath
}

func EnforcementFilePath() string {
	return Must().enforcementFilePath
}

func ArchiveDir() string {
	return Must().archiveDir
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) computePaths() error {
	var err error

	p.configFilePath, err = xdg.ConfigFile(
		filepath.Join(p.appDir, p.configFileName),
	)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	p.dataDir, err = xdg.DataFile(p.appDir)
	if err != nil {
		return fmt.Errorf("resolving data directory: %w", err)
	}

	if err = os.MkdirAll(p.dataDir, osutil.DirPermission); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	p.dbFilePath = filepath.Join(p.dataDir, p.dbFileName)
	p.sessionFilePath = filepath.Join(p.dataDir, p.sessionFileName)
	p.enforcementFilePath = filepath.Join(p.dataDir, p.enforcementFileName)
	p.archiveDir = filepath.Join(p.dataDir, p.archiveDirName)
	p.logFilePath = filepath.Join(p.dataDir, "log", p.logFileName)

	return nil
}
