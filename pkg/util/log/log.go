// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.txt.
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0, included in the file
// licenses/APL.txt.

// Package log is the logging facade used by binaries in this module. It
// keeps the CockroachDB calling convention (a context first, printf-style
// formatting, log tags from github.com/cockroachdb/logtags rendered as a
// "[tag=value,...]" prefix, V-levels for verbose output) on top of a
// go.uber.org/zap logger.
//
// Library packages return errors and do not log.
package log

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the log sink.
type Config struct {
	// Format is "text" or "json". Empty means "text".
	Format string `yaml:"format"`
	// Level is the minimum severity: "info", "warning" or "error". Empty
	// means "info".
	Level string `yaml:"level"`
}

var logging struct {
	mu     sync.Mutex
	logger *zap.Logger
	// verbosity is the V-level threshold.
	verbosity atomic.Int32
}

func init() {
	l, err := newLogger(Config{}, os.Stderr)
	if err != nil {
		panic(err)
	}
	logging.logger = l
}

// Init replaces the process logger with one writing to w as described by
// cfg.
func Init(cfg Config, w io.Writer) error {
	l, err := newLogger(cfg, w)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

func newLogger(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown log format %q", cfg.Format),
			"supported formats are text and json")
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)), nil
}

func parseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warning", "warn":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return 0, errors.WithHint(
			errors.Newf("unknown log level %q", s),
			"supported levels are info, warning and error")
	}
}

// SetLogger installs l as the process logger and returns a function that
// restores the previous one. Callers are expected to pass a logger whose
// caller skip accounts for this package's two frames.
func SetLogger(l *zap.Logger) (restore func()) {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	prev := logging.logger
	logging.logger = l
	return func() {
		logging.mu.Lock()
		defer logging.mu.Unlock()
		logging.logger = prev
	}
}

func getLogger() *zap.Logger {
	logging.mu.Lock()
	defer logging.mu.Unlock()
	return logging.logger
}

// Sync flushes buffered log entries.
func Sync() {
	_ = getLogger().Sync()
}

// SetVerbosity sets the V-level threshold.
func SetVerbosity(level int32) {
	logging.verbosity.Store(level)
}

// V returns whether messages at the given verbosity level are logged.
func V(level int32) bool {
	return logging.verbosity.Load() >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.InfoLevel, format, args)
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.WarnLevel, format, args)
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.ErrorLevel, format, args)
}

// Fatalf logs to the ERROR severity and then exits the process with status
// 1, or calls the function installed by SetExitFunc.
func Fatalf(ctx context.Context, format string, args ...interface{}) {
	addStructured(ctx, zapcore.ErrorLevel, format, args)
	Sync()
	exit(1)
}

// VEventf logs to the INFO severity if the verbosity is at least level.
func VEventf(ctx context.Context, level int32, format string, args ...interface{}) {
	if V(level) {
		addStructured(ctx, zapcore.InfoLevel, format, args)
	}
}
