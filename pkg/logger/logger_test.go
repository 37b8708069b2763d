//go:build unit || !integration

package logger

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger

	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
	})

	var logging strings.Builder
	configureLogging(LogModeDefault, func(w *zerolog.ConsoleWriter) {
		w.Out = &logging
		w.NoColor = true
	})

	log.Error().Stack().Err(errors.New("testing error logging")).Msg("testing message")

	actual := logging.String()
	t.Log(actual)

	assert.Contains(t, actual, "testing message", "Log statement doesn't contain the log message")
	assert.Contains(t, actual, `error=`, "Log statement doesn't contain the logged error")
	assert.Contains(t, actual, "testing error logging")
	assert.Contains(t, actual, "logger/logger_test.go", "Log statement doesn't contain the caller")
}

func TestParseLogMode(t *testing.T) {
	for _, mode := range []string{"default", "json", "combined", "event"} {
		parsed, err := ParseLogMode(mode)
		require.NoError(t, err)
		assert.Equal(t, LogMode(mode), parsed)
	}

	parsed, err := ParseLogMode("station")
	assert.Error(t, err)
	assert.Equal(t, LogModeDefault, parsed)
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	assert.Equal(t, zerolog.DebugLevel, levelFromEnv())

	t.Setenv("LOG_LEVEL", "")
	assert.Equal(t, zerolog.InfoLevel, levelFromEnv())
}

func TestShortCaller(t *testing.T) {
	assert.Equal(t, "ramdisk/provisioner.go:42", shortCaller(0, "/src/pkg/ramdisk/provisioner.go", 42))
	assert.Equal(t, "main.go:7", shortCaller(0, "main.go", 7))
}
