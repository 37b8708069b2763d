package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

type LogMode string

// Available logging modes
const (
	LogModeDefault  LogMode = "default"
	LogModeJSON     LogMode = "json"
	LogModeCombined LogMode = "combined"
	LogModeEvent    LogMode = "event"
)

var logModes = []LogMode{LogModeDefault, LogModeJSON, LogModeCombined, LogModeEvent}

func ParseLogMode(s string) (LogMode, error) {
	for _, mode := range logModes {
		if s == string(mode) {
			return mode, nil
		}
	}
	return LogModeDefault, fmt.Errorf("%q is an invalid log-mode (valid modes: %q)", s, logModes)
}

var stderr = struct{ io.Writer }{os.Stderr}

func init() { //nolint:gochecknoinits // init with zerolog is idiomatic
	mode := LogModeDefault
	if m, err := ParseLogMode(strings.ToLower(os.Getenv("LOG_TYPE"))); err == nil {
		mode = m
	}
	ConfigureLogging(mode)
}

type tTesting interface {
	Log(args ...interface{})
	Logf(format string, args ...interface{})
	Helper()
	Cleanup(f func())
}

// ConfigureTestLogging allows logs to be associated with individual tests
func ConfigureTestLogging(t tTesting) {
	oldLogger := log.Logger
	oldContextLogger := zerolog.DefaultContextLogger
	configureLogging(LogModeDefault, zerolog.ConsoleTestWriter(t))
	t.Cleanup(func() {
		log.Logger = oldLogger
		zerolog.DefaultContextLogger = oldContextLogger
	})
}

// ConfigureLogging sets up the global logger for the given mode. The level
// is taken from LOG_LEVEL and defaults to info.
func ConfigureLogging(mode LogMode) {
	configureLogging(mode)
}

func configureLogging(mode LogMode, loggingOptions ...func(w *zerolog.ConsoleWriter)) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(levelFromEnv())

	isTerminal := isatty.IsTerminal(os.Stderr.Fd())

	defaultLogging := func(w *zerolog.ConsoleWriter) {
		w.Out = stderr
		w.NoColor = !isTerminal
		w.TimeFormat = "15:04:05.999 |"
		w.PartsOrder = []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.CallerFieldName,
			zerolog.MessageFieldName,
		}
		w.FormatFieldName = func(i interface{}) string {
			return fmt.Sprintf("[%s:", i)
		}
		w.FormatFieldValue = func(i interface{}) string {
			if i == nil {
				i = ""
			}
			return fmt.Sprintf("%s]", i)
		}
	}

	loggingOptions = append([]func(w *zerolog.ConsoleWriter){defaultLogging}, loggingOptions...)
	textWriter := zerolog.NewConsoleWriter(loggingOptions...)

	zerolog.CallerMarshalFunc = shortCaller

	var writer io.Writer
	switch mode {
	case LogModeJSON:
		writer = os.Stderr
	case LogModeCombined:
		writer = zerolog.MultiLevelWriter(textWriter, os.Stderr)
	case LogModeEvent:
		writer = io.Discard
	default:
		writer = textWriter
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Caller().Logger()
	zerolog.DefaultContextLogger = &log.Logger
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// shortCaller keeps the last two path segments of the caller's file.
func shortCaller(_ uintptr, file string, line int) string {
	short := file
	separatorCount := 2
	countedSeparators := 0

	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			countedSeparators++
			if countedSeparators >= separatorCount {
				short = file[i+1:]
				break
			}
		}
	}
	return short + ":" + strconv.Itoa(line)
}
