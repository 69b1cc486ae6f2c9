package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level định nghĩa các mức độ log
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// ParseLevel chuyển chuỗi cấu hình thành Level, mặc định là InfoLevel
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// Logger interface định nghĩa các phương thức logging
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implement Logger interface sử dụng zerolog
type DefaultLogger struct {
	level Level
	zl    zerolog.Logger
}

// Options cấu hình đầu ra cho logger
type Options struct {
	Level  Level
	Format string // "json" hoặc "console"
	Output io.Writer
	App    string
}

// New tạo logger từ Options
func New(opts Options) *DefaultLogger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if strings.EqualFold(opts.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	ctx := zerolog.New(out).Level(toZerolog(opts.Level)).With().Timestamp()
	if opts.App != "" {
		ctx = ctx.Str("app", opts.App)
	}

	return &DefaultLogger{
		level: opts.Level,
		zl:    ctx.Logger(),
	}
}

// NewNop trả về logger không ghi gì, dùng trong test
func NewNop() *DefaultLogger {
	return &DefaultLogger{level: ErrorLevel + 1, zl: zerolog.Nop()}
}

// Zerolog trả về logger gốc cho các middleware cần ghi field có cấu trúc
func (l *DefaultLogger) Zerolog() *zerolog.Logger {
	return &l.zl
}

// Info log thông tin
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		l.zl.Info().Msgf(format, v...)
	}
}

// Error log lỗi
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		l.zl.Error().Msgf(format, v...)
	}
}

// Debug log debug
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		l.zl.Debug().Msgf(format, v...)
	}
}

func toZerolog(level Level) zerolog.Level {
	switch level {
	case DebugLevel:
		return zerolog.DebugLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
