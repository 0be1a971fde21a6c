package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel defines the severity level for log events.
type LogLevel string

const (
	// DebugLevel is used for the --verbose trace of what a command is about to do.
	DebugLevel LogLevel = "debug"
	// InfoLevel indicates general operational information.
	InfoLevel LogLevel = "info"
	// WarnLevel indicates potentially harmful situations or unexpected events.
	WarnLevel LogLevel = "warn"
	// ErrorLevel indicates error events that might still allow the command to continue running.
	ErrorLevel LogLevel = "error"
)

// Options configures the global logger.
type Options struct {
	// Verbose lowers the level to debug.
	Verbose bool
	// RunID is attached to every event as "run_id" when non-empty.
	RunID string
	// Out defaults to os.Stderr.
	Out io.Writer
}

// Init initializes the global zerolog logger.
// Output is human-readable when Out is a terminal and JSON otherwise.
// This should be called once at startup, before any command runs.
func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.InfoLevel
	if opts.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if IsTerminal(out) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if opts.RunID != "" {
		ctx = ctx.Str("run_id", opts.RunID)
	}
	log.Logger = ctx.Logger()
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Log is the core logging function.
// Use the specific level functions (Debug, Info, Warn, Error) instead of calling Log directly.
func Log(level LogLevel, message, component string, data map[string]interface{}) {
	logger := log.With().
		Str("component", component).
		Fields(data).
		Logger()

	switch level {
	case DebugLevel:
		logger.Debug().Msg(message)
	case InfoLevel:
		logger.Info().Msg(message)
	case WarnLevel:
		logger.Warn().Msg(message)
	case ErrorLevel:
		logger.Error().Msg(message)
	}
}

// Debug logs a message at the Debug level with the specified component and optional data.
func Debug(message, component string, data map[string]interface{}) {
	Log(DebugLevel, message, component, data)
}

// Info logs a message at the Info level with the specified component and optional data.
func Info(message, component string, data map[string]interface{}) {
	Log(InfoLevel, message, component, data)
}

// Warn logs a message at the Warn level with the specified component and optional data.
func Warn(message, component string, data map[string]interface{}) {
	Log(WarnLevel, message, component, data)
}

// Error logs a message at the Error level with the specified component and optional data.
func Error(message, component string, data map[string]interface{}) {
	Log(ErrorLevel, message, component, data)
}
