package pathutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPathsEnvSuffix(t *testing.T) {
	testCases := []struct {
		env         string
		db          string
		session     string
		enforcement string
		archive     string
	}{
		{"", "werk.db", "session.json", "enforcement.json", "archive"},
		{" dev ", "werk_dev.db", "session_dev.json", "enforcement_dev.json", "archive_dev"},
	}

	for _, tc := range testCases {
		t.Run(tc.env, func(t *testing.T) {
			p := newPaths(tc.env)

			assert.Equal(t, tc.db, p.dbFileName)
			assert.Equal(t, tc.session, p.sessionFileName)
			assert.Equal(t, tc.enforcement, p.enforcementFileName)
			assert.Equal(t, tc.archive, p.archiveDirName)
		})
	}
}

func TestComputePaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	p := newPaths("")

	require.NoError(t, p.computePaths())

	assert.Equal(t, "werk", filepath.Base(p.dataDir))
	assert.DirExists(t, p.dataDir)
	assert.Equal(t, filepath.Join(p.dataDir, "session.json"), p.sessionFilePath)
	assert.Equal(t, filepath.Join(p.dataDir, "enforcement.json"), p.enforcementFilePath)
	assert.Equal(t, filepath.Join(p.dataDir, "archive"), p.archiveDir)
	assert.Equal(t, filepath.Join(p.dataDir, "log", "werk.log"), p.logFilePath)
	assert.Equal(t, "config.yml", filepath.Base(p.configFilePath))
}
