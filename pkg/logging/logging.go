// Package logging provides the zerolog-based structured logger shared by
// all components. Initialize once at startup; the zero value logs JSON to
// stderr at info level so packages can log before Init is called.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level: debug, info, warn, error. Default: info
	Level string
	// Format is the output format: json or console. Default: json
	Format string
	// Output is the writer for log output. Default: os.Stderr
	Output io.Writer
}

var (
	log zerolog.Logger
	mu  sync.RWMutex
)

func init() {
	initLogger(Config{})
}

// Init configures the global logger. Safe to call more than once; the last
// call wins.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	initLogger(cfg)
}

func initLogger(cfg Config) {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	log = zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With returns a logger tagged with a component field.
func With(component string) zerolog.Logger {
	return Logger().With().Str("component", component).Logger()
}

// Debug starts a debug-level log event.
func Debug() *zerolog.Event { l := Logger(); return l.Debug() }

// Info starts an info-level log event.
func Info() *zerolog.Event { l := Logger(); return l.Info() }

// Warn starts a warn-level log event.
func Warn() *zerolog.Event { l := Logger(); return l.Warn() }

// Error starts an error-level log event.
func Error() *zerolog.Event { l := Logger(); return l.Error() }
