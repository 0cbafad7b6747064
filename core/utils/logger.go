package utils

import (
	"log"
	"os"
)

// Logger separates informational output from error output. A nil *Logger is
// safe to call, so components may run without one in tests.
type Logger struct {
	info *log.Logger
	errs *log.Logger
}

func NewLogger() *Logger {
	return &Logger{
		info: log.New(os.Stdout, "", log.LstdFlags|log.LUTC),
		errs: log.New(os.Stderr, "ERROR ", log.LstdFlags|log.LUTC),
	}
}

func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	l.info.Printf(format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	if l == nil {
		return
	}
	l.errs.Printf(format, args...)
}
