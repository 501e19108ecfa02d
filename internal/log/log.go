package log

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File enables a rotating file sink next to stderr.
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
}

type loggers struct {
	// base is handed out by Logger; wrapped skips the package-level helpers' frame.
	base    *zap.Logger
	wrapped *zap.Logger
}

var global atomic.Pointer[loggers]

func init() {
	SetLogger(nil)
}

func New(c Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if c.Level != "" {
		if err := level.UnmarshalText([]byte(c.Level)); err != nil {
			return nil, err
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	if c.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	ws := []zapcore.WriteSyncer{zapcore.Lock(os.Stderr)}
	if c.File != "" {
		ws = append(ws, zapcore.AddSync(&lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSizeMB,
			MaxBackups: c.MaxBackups,
		}))
	}

	core := zapcore.NewCore(enc, zapcore.NewMultiWriteSyncer(ws...), level)
	return zap.New(core, zap.AddCaller()), nil
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(&loggers{
		base:    l,
		wrapped: l.WithOptions(zap.AddCallerSkip(1)),
	})
}

// Logger returns the process logger for callers that log through it directly.
func Logger() *zap.Logger {
	return global.Load().base
}

func Debug(msg string, fields ...zap.Field) {
	global.Load().wrapped.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	global.Load().wrapped.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	global.Load().wrapped.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	global.Load().wrapped.Error(msg, fields...)
}

func Sync() error {
	return global.Load().base.Sync()
}
