package logs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupFiltersBelowWarn(t *testing.T) {
	defer level.Set(slog.LevelWarn)
	assert := assert.New(t)

	var out strings.Builder
	closer, err := Setup(&out, "")
	assert.NoError(err)
	defer closer()

	slog.Debug("quiet debug")
	slog.Info("quiet info")
	slog.Warn("loud warn")

	assert.NotContains(out.String(), "quiet debug")
	assert.NotContains(out.String(), "quiet info")
	assert.Contains(out.String(), "loud warn")
}

func TestSetDebugEnablesTracing(t *testing.T) {
	defer level.Set(slog.LevelWarn)
	assert := assert.New(t)

	var out strings.Builder
	closer, err := Setup(&out, "")
	assert.NoError(err)
	defer closer()

	SetDebug()
	slog.Debug("trace record", "detail", 42)

	assert.Contains(out.String(), "trace record")
	assert.Contains(out.String(), "detail=42")
}

func TestSetupFansOutToLogFile(t *testing.T) {
	defer level.Set(slog.LevelWarn)
	assert := assert.New(t)

	logFile := filepath.Join(t.TempDir(), "golox.log")
	var out strings.Builder
	closer, err := Setup(&out, logFile)
	assert.NoError(err)

	slog.Warn("to both sinks")
	closer()

	assert.Contains(out.String(), "to both sinks")
	content, err := os.ReadFile(logFile)
	assert.NoError(err)
	assert.Contains(string(content), "to both sinks")
}

func TestSetupRejectsUnwritableLogFile(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	_, err := Setup(&out, filepath.Join(t.TempDir(), "no", "such", "dir.log"))
	assert.Error(err)
}
