// Package logging sets up the zerolog logger shared by htmlify's packages.
// Log lines go to stderr and to a log file under the XDG state directory.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogFileEnv overrides the log file path; "off" disables the file
const LogFileEnv = "HTMLIFY_LOG_FILE"

// configured is set once SetupLogger or SetupWriter has run. Until then
// GetLogger hands out warn level loggers, so a program embedding the
// converter does not get a line per parse on stderr.
var configured atomic.Bool

// SetupLogger configures the global logger based on verbosity level
// (0 warn, 1 info, 2 debug, 3+ trace)
func SetupLogger(verbosity int) {
	configured.Store(true)
	zerolog.SetGlobalLevel(levelFor(verbosity))

	writers := []io.Writer{consoleWriter(os.Stderr)}

	logFile := getLogFilePath()
	var fileErr error
	if logFile != "" {
		var f *os.File
		if f, fileErr = setupLogFile(logFile); fileErr == nil {
			writers = append(writers, f)
		}
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logFile).Msg("Failed to create log file, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", logFile).Msg("Logger initialized")
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// consoleWriter writes human readable lines, colored only on a terminal
func consoleWriter(f *os.File) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(f.Fd()),
	}
}

// SetupWriter points the global logger at a single writer without any
// log file. Used by tests and by callers embedding the converter.
func SetupWriter(w io.Writer, level zerolog.Level) {
	configured.Store(true)
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// GetLogger returns a contextualized logger with the given name.
// Loggers obtained before SetupLogger or SetupWriter stay at warn level.
func GetLogger(name string) zerolog.Logger {
	l := log.With().Str("component", name).Logger()
	if !configured.Load() {
		l = l.Level(zerolog.WarnLevel)
	}
	return l
}

// getLogFilePath returns the log file path, or "" when logging to a
// file is turned off
func getLogFilePath() string {
	if p, ok := os.LookupEnv(LogFileEnv); ok {
		if strings.EqualFold(strings.TrimSpace(p), "off") {
			return ""
		}
		if p != "" {
			return p
		}
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return "htmlify.log"
	}
	return filepath.Join(stateHome, "htmlify", "htmlify.log")
}

func setupLogFile(logPath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().Str("operation", operation).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
