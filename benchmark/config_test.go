package benchmark

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cpu-bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("no file", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, 4, cfg.Instances)
		assert.Equal(t, 26, cfg.Loops)
	})

	t.Run("partial override", func(t *testing.T) {
		path := writeConfig(t, "instances: 8\nworkload: keccak\nhistory_db: /tmp/bench\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Instances)
		assert.Equal(t, 26, cfg.Loops)
		assert.Equal(t, "keccak", cfg.Workload)
		assert.Equal(t, "/tmp/bench", cfg.HistoryPath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed", func(t *testing.T) {
		path := writeConfig(t, "instances: [1, 2\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}
