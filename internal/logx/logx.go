// Package logx is a small leveled logger writing diagnostics to stderr.
package logx

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a log severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var current atomic.Int32

var base = log.New(os.Stderr, "", log.Ltime)

func init() { current.Store(int32(LevelInfo)) }

// ParseLevel maps a level name to a Level.
func ParseLevel(s string) (Level, bool) {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	return l, ok
}

// SetLevel sets the minimum level from its name. Unknown names are ignored
// and reported as false.
func SetLevel(s string) bool {
	l, ok := ParseLevel(s)
	if ok {
		current.Store(int32(l))
	}
	return ok
}

// SetOutput redirects log output.
func SetOutput(w io.Writer) { base.SetOutput(w) }

func logf(l Level, format string, args ...any) {
	if Level(current.Load()) > l {
		return
	}
	prefix := "INFO"
	switch l {
	case LevelDebug:
		prefix = "DEBUG"
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	if len(args) == 0 {
		base.Printf("[%s] %s", prefix, format)
		return
	}
	base.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
}

func Debugf(format string, a ...any) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...any)  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...any)  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...any) { logf(LevelError, format, a...) }
