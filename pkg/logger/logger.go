package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

const (
	LevelOff logLevel = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

func LevelText(level logLevel) string {
	switch level {
	case LevelOff:
		return "Level=Off"
	case LevelError:
		return "Level=Error"
	case LevelWarn:
		return "Level=Warn"
	case LevelInfo:
		return "Level=Info"
	case LevelDebug:
		return "Level=Debug"
	default:
		return "Level=Unknown"
	}
}

type logLevel int

// DefaultLogger only reports warnings and errors
var DefaultLogger = NewLogger(LevelWarn)

type Logger struct {
	*log.Logger
	level logLevel
}

// NewLogger returns a Logger writing to stderr that drops anything
// less severe than level
func NewLogger(level logLevel) *Logger {
	return NewLoggerWithWriter(os.Stderr, level)
}

func NewLoggerWithWriter(w io.Writer, level logLevel) *Logger {
	return &Logger{
		Logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

func (l *Logger) Level() logLevel {
	return l.level
}

func (l *Logger) SetLevel(level logLevel) {
	l.level = level
}

func (l *Logger) logAt(level logLevel, tag string, s string, a ...interface{}) {
	if l == nil || l.level < level {
		return
	}
	ls := fmt.Sprintf("| %5s | %s", tag, s)
	if len(a) == 0 {
		l.Println(ls)
		return
	}
	l.Printf(ls, a...)
}

func (l *Logger) Debug(s string, a ...interface{}) {
	l.logAt(LevelDebug, "DEBUG", s, a...)
}

func (l *Logger) Info(s string, a ...interface{}) {
	l.logAt(LevelInfo, "INFO", s, a...)
}

func (l *Logger) Warn(s string, a ...interface{}) {
	l.logAt(LevelWarn, "WARN", s, a...)
}

func (l *Logger) Error(s string, a ...interface{}) {
	l.logAt(LevelError, "ERROR", s, a...)
}
