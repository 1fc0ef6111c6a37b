package log

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/auton-labs/goapi/base/env"
)

// Fields is a bag of key/value pairs to attach to a log line.
type Fields map[string]interface{}

// Logger wraps zap with an accumulated field list. Deriving with
// WithField copies the list, siblings never share backing storage.
type Logger struct {
	logger *zap.SugaredLogger
	fields []interface{}
}

var root *zap.SugaredLogger

func init() {
	cfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(env.LogLevel()); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	logger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	root = logger.Sugar()
}

// Log returns a logger with no fields attached
func Log() Logger {
	return Logger{
		logger: root,
	}
}

// WithField returns a logger that also carries the key/value pair
func (l Logger) WithField(key string, value interface{}) Logger {
	fields := make([]interface{}, len(l.fields), len(l.fields)+2)
	copy(fields, l.fields)
	l.fields = append(fields, key, value)
	return l
}

// WithFields attaches every pair in sorted key order
func (l Logger) WithFields(kvs Fields) Logger {
	sorted := make([]string, 0, len(kvs))
	for k := range kvs {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	for _, k := range sorted {
		l = l.WithField(k, kvs[k])
	}
	return l
}

func (l Logger) Debug(args ...interface{}) {
	l.logger.With(l.fields...).Debug(args...)
}

func (l Logger) Info(args ...interface{}) {
	l.logger.With(l.fields...).Info(args...)
}

func (l Logger) Warn(args ...interface{}) {
	l.logger.With(l.fields...).Warn(args...)
}

func (l Logger) Error(args ...interface{}) {
	l.logger.With(l.fields...).Error(args...)
}

func (l Logger) Panic(args ...interface{}) {
	l.logger.With(l.fields...).Panic(args...)
}
