package logger

import (
	"fmt"
	"os"
	"time"

	"kurz/config"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog behind the small surface the rest of the
// codebase uses. The zero value is valid and discards everything,
// which keeps test setup cheap.
type Logger struct {
	z *zerolog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LoggerMode.Level)
	if err != nil || cfg.LoggerMode.Level == "" {
		level = zerolog.InfoLevel
	}

	var z zerolog.Logger
	if cfg.LoggerMode.Development {
		z = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Logger()
	} else {
		z = zerolog.New(os.Stdout).
			Level(level).
			With().
			Timestamp().
			Logger()
	}
	return &Logger{z: &z}, nil
}

func (l *Logger) root() *zerolog.Logger {
	if l == nil || l.z == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return l.z
}

func withFields(e *zerolog.Event, kv []any) *zerolog.Event {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	return e
}

func (l *Logger) Debug(msg string, kv ...any) { withFields(l.root().Debug(), kv).Msg(msg) }
func (l *Logger) Info(msg string, kv ...any)  { withFields(l.root().Info(), kv).Msg(msg) }
func (l *Logger) Warn(msg string, kv ...any)  { withFields(l.root().Warn(), kv).Msg(msg) }
func (l *Logger) Error(msg string, kv ...any) { withFields(l.root().Error(), kv).Msg(msg) }

func (l *Logger) Infof(format string, args ...any) {
	l.root().Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.root().Error().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Fatalf(format string, args ...any) {
	l.root().Fatal().Msg(fmt.Sprintf(format, args...))
}
