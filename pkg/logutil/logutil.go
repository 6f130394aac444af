// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logutil wraps a process-global zap logger, rotated through
// lumberjack. Every typed vector façade asks Named() for its own child
// logger by minor-type name, rather than sharing one undifferentiated
// logger across unrelated façades.
package logutil

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.RWMutex
	global *zap.Logger
)

func init() {
	global = newConsoleLogger()
}

func newConsoleLogger() *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(zapcore.Lock(zapcore.AddSync(&noopWriter{}))), zap.DebugLevel)
	return zap.New(core)
}

// noopWriter is the default destination until Configure is given a Path
// -- the core never logs anywhere by default, matching the
// teacher's convention that logging is explicitly configured by a binary's
// main(), not by a library.
type noopWriter struct{}

func (*noopWriter) Write(p []byte) (int, error) { return len(p), nil }

// Options configures the rotating file sink. Zero-value Options keeps the
// default no-op logger.
type Options struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Level      zapcore.Level
}

// Configure installs a new global logger writing to a lumberjack-rotated
// file, per matrixorigin/matrixone's pkg/logutil conventions. An empty Path
// reverts to the default no-op logger. Either way, loggers cached by Named
// are dropped so later Named calls derive from the new global logger.
func Configure(opt Options) {
	mu.Lock()
	defer mu.Unlock()
	namedCache.Range(func(k, _ any) bool {
		namedCache.Delete(k)
		return true
	})
	if opt.Path == "" {
		global = newConsoleLogger()
		return
	}
	sink := &lumberjack.Logger{
		Filename:   opt.Path,
		MaxSize:    nonZero(opt.MaxSizeMB, 100),
		MaxBackups: nonZero(opt.MaxBackups, 7),
		MaxAge:     nonZero(opt.MaxAgeDays, 30),
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(sink), opt.Level)
	global = zap.New(core)
}

func nonZero(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// GetGlobalLogger returns the process-global logger.
func GetGlobalLogger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

var namedCache sync.Map // string -> *zap.Logger

// Named returns a child logger scoped to name, caching by name so callers
// (typically one per typed façade instance) don't pay zap.Named's string
// work on every call.
func Named(name string) *zap.Logger {
	if v, ok := namedCache.Load(name); ok {
		return v.(*zap.Logger)
	}
	l := GetGlobalLogger().Named(name)
	namedCache.Store(name, l)
	return l
}

func Debug(msg string, fields ...zap.Field) { GetGlobalLogger().Debug(msg, fields...) }
func Info(msg string, fields ...zap.Field)  { GetGlobalLogger().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { GetGlobalLogger().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { GetGlobalLogger().Error(msg, fields...) }
