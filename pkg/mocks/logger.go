// Package mocks provides mock implementations of the ports interfaces for
// testing.
package mocks

import (
	"fmt"
	"sync"

	"github.com/user/vidseek/pkg/ports"
)

// Logger records log messages for test verification.
type Logger struct {
	mu        sync.Mutex
	component string

	DebugMsgs []string
	InfoMsgs  []string
	WarnMsgs  []string
	ErrorMsgs []string
}

// NewLogger creates a new recording logger.
func NewLogger() *Logger {
	return &Logger{}
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.DebugMsgs = append(l.DebugMsgs, fmt.Sprintf(msg, args...))
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.InfoMsgs = append(l.InfoMsgs, fmt.Sprintf(msg, args...))
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.WarnMsgs = append(l.WarnMsgs, fmt.Sprintf(msg, args...))
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ErrorMsgs = append(l.ErrorMsgs, fmt.Sprintf(msg, args...))
}

// WithComponent returns the same logger; the component prefix is not
// relevant for assertions.
func (l *Logger) WithComponent(component string) ports.Logger {
	l.component = component
	return l
}

var _ ports.Logger = (*Logger)(nil)
