// Package logging wraps zap with the engine's SPDLOG_LEVEL-style level
// convention and a duplicate-filtering core that coalesces repeated log
// lines within a short window, the way a long navigation's retry loops
// would otherwise flood the console.
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// spdlogLevels mirrors spdlog's SPDLOG_LEVEL environment variable naming,
// the convention the engine's CLI follows instead of zap's own names.
var spdlogLevels = map[string]zapcore.Level{
	"trace":    zapcore.DebugLevel,
	"debug":    zapcore.DebugLevel,
	"info":     zapcore.InfoLevel,
	"warn":     zapcore.WarnLevel,
	"warning":  zapcore.WarnLevel,
	"err":      zapcore.ErrorLevel,
	"error":    zapcore.ErrorLevel,
	"critical": zapcore.DPanicLevel,
	"off":      zapcore.InvalidLevel,
}

// LevelFromEnv parses the SPDLOG_LEVEL environment variable, defaulting to
// info when unset or unrecognised.
func LevelFromEnv() zapcore.Level {
	return ParseLevel(os.Getenv("SPDLOG_LEVEL"))
}

// ParseLevel maps an spdlog-style level name to a zap level.
func ParseLevel(name string) zapcore.Level {
	if lvl, ok := spdlogLevels[strings.ToLower(strings.TrimSpace(name))]; ok {
		return lvl
	}
	return zapcore.InfoLevel
}

// New builds a console logger at the given level, wrapped in a
// duplicate-filtering core.
func New(level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)

	base := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), level)
	return zap.New(newDedupeCore(base, 10*time.Second))
}

// dedupeCore suppresses an entry whose (level, message) pair was already
// emitted within window, so a tight retry loop logs once instead of
// thousands of times.
type dedupeCore struct {
	zapcore.Core
	window time.Duration

	mu   sync.Mutex
	seen map[string]time.Time
}

func newDedupeCore(inner zapcore.Core, window time.Duration) *dedupeCore {
	return &dedupeCore{Core: inner, window: window, seen: make(map[string]time.Time)}
}

func (c *dedupeCore) With(fields []zapcore.Field) zapcore.Core {
	return &dedupeCore{Core: c.Core.With(fields), window: c.window, seen: c.seen}
}

func (c *dedupeCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Core.Enabled(ent.Level) {
		return ce
	}
	return ce.AddCore(ent, c)
}

func (c *dedupeCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	key := ent.Level.String() + "|" + ent.Message

	c.mu.Lock()
	last, dup := c.seen[key]
	now := ent.Time
	if dup && now.Sub(last) < c.window {
		c.mu.Unlock()
		return nil
	}
	c.seen[key] = now
	c.mu.Unlock()

	return c.Core.Write(ent, fields)
}
