package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	assert.Equal(t, logrus.InfoLevel, levelFromEnv(""))
	assert.Equal(t, logrus.DebugLevel, levelFromEnv("debug"))
	assert.Equal(t, logrus.InfoLevel, levelFromEnv("chatty"))
}

func TestNewUsesEnvLevel(t *testing.T) {
	t.Setenv(levelEnv, "warn")
	var out bytes.Buffer
	logger := New(&out)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}

func TestDryRunForced(t *testing.T) {
	t.Setenv("QSLEEPY_DRY_RUN", "yes")
	assert.True(t, DryRunForced())
	t.Setenv("QSLEEPY_DRY_RUN", "0")
	assert.False(t, DryRunForced())
}

func TestOpenFileAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	for _, line := range []string{"one\n", "two\n"} {
		file, err := OpenFile(dir, "app.log")
		require.NoError(t, err)
		_, err = file.WriteString(line)
		require.NoError(t, err)
		require.NoError(t, file.Close())
	}
	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(data))
}
