// Package logx wraps go.uber.org/zap with a small leveled API: three
// output encodings, five severity levels, and persistent context fields
// that can be attached and removed.
package logx

import (
	"fmt"
	"os"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format selects the output encoding.
type Format string

const (
	// FormatJSON emits one JSON object per entry.
	FormatJSON Format = "json"
	// FormatConsole emits human-readable colorized output.
	FormatConsole Format = "console"
	// FormatKeyValue emits flat, uncolored key-value output.
	FormatKeyValue Format = "keyvalue"
)

// criticalLevel is the level used by Critical. zap has no critical
// level; DPanic is the unused slot above error and is re-labelled by the
// level encoders below.
const criticalLevel = zapcore.DPanicLevel

// Logger is a leveled, structured logger. Context fields attached with
// With are included in every entry until removed with Without.
//
// Logger values are cheap to copy via With/Without; the underlying zap
// core is shared.
type Logger struct {
	name    string
	level   zap.AtomicLevel
	base    *zap.Logger
	context []zap.Field
}

// New creates a logger writing to stdout. level is one of debug, info,
// warning (or warn), error, critical; format is one of the Format
// constants.
func New(name, level string, format Format) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoder, err := newEncoder(format)
	if err != nil {
		return nil, err
	}

	atomic := zap.NewAtomicLevelAt(lvl)
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), atomic)

	return &Logger{
		name:  name,
		level: atomic,
		base:  zap.New(core).Named(name),
	}, nil
}

// ParseLevel converts a level name to a zap level. "warning" and
// "critical" are accepted in addition to zap's own names.
func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "warning", "WARNING":
		return zapcore.WarnLevel, nil
	case "critical", "CRITICAL":
		return criticalLevel, nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid log level %q", level)
	}
	return lvl, nil
}

// SetLevel adjusts the minimum severity at runtime. The change applies
// to every logger derived from the same New call.
func (l *Logger) SetLevel(level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

// Name returns the logger name given to New.
func (l *Logger) Name() string {
	return l.name
}

// With returns a logger whose entries carry the given fields in
// addition to the existing context.
func (l *Logger) With(fields ...zap.Field) *Logger {
	clone := *l
	clone.context = append(slices.Clip(slices.Clone(l.context)), fields...)
	return &clone
}

// Without returns a logger with the named context fields removed.
// Unknown names are ignored.
func (l *Logger) Without(keys ...string) *Logger {
	clone := *l
	clone.context = slices.DeleteFunc(slices.Clone(l.context), func(f zap.Field) bool {
		return slices.Contains(keys, f.Key)
	})
	return &clone
}

// Debug logs at debug severity.
func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.log(zapcore.DebugLevel, msg, fields)
}

// Info logs at info severity.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.log(zapcore.InfoLevel, msg, fields)
}

// Warn logs at warning severity.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.log(zapcore.WarnLevel, msg, fields)
}

// Error logs at error severity.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.log(zapcore.ErrorLevel, msg, fields)
}

// Critical logs at critical severity. It does not panic or exit.
func (l *Logger) Critical(msg string, fields ...zap.Field) {
	l.log(criticalLevel, msg, fields)
}

// Log logs at the named severity; an unknown name falls back to info.
func (l *Logger) Log(level, msg string, fields ...zap.Field) {
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	l.log(lvl, msg, fields)
}

// Sync flushes any buffered entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}

func (l *Logger) log(lvl zapcore.Level, msg string, fields []zap.Field) {
	ce := l.base.Check(lvl, msg)
	if ce == nil {
		return
	}
	all := make([]zap.Field, 0, len(l.context)+len(fields))
	all = append(all, l.context...)
	all = append(all, fields...)
	ce.Write(all...)
}

func newEncoder(format Format) (zapcore.Encoder, error) {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    relabelCritical(zapcore.LowercaseLevelEncoder),
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	switch format {
	case FormatJSON:
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatConsole:
		cfg.EncodeLevel = relabelCritical(zapcore.CapitalColorLevelEncoder)
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatKeyValue:
		cfg.EncodeLevel = relabelCritical(zapcore.CapitalLevelEncoder)
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// relabelCritical renders the DPanic slot as "critical" and delegates
// everything else to base.
func relabelCritical(base zapcore.LevelEncoder) zapcore.LevelEncoder {
	return func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		if lvl == criticalLevel {
			enc.AppendString("critical")
			return
		}
		base(lvl, enc)
	}
}
