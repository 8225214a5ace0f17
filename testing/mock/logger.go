package mock

import "cosmossdk.io/log"

var _ log.Logger = (*MockLogger)(nil)

// MockLogger implements the Logger interface and records every entry
type MockLogger struct {
	DebugLogs  []LogEntry
	InfoLogs   []LogEntry
	WarnLogs   []LogEntry
	ErrorLogs  []LogEntry
	WithRecord []interface{}
}

// LogEntry is a struct that contains the message and key values passed to the logger
type LogEntry struct {
	Message string
	Params  []interface{}
}

// Value returns the value logged under key, if any.
func (e LogEntry) Value(key string) (interface{}, bool) {
	for i := 0; i+1 < len(e.Params); i += 2 {
		if e.Params[i] == key {
			return e.Params[i+1], true
		}
	}
	return nil, false
}

// NewMockLogger returns a new MockLogger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug records a debug entry
func (l *MockLogger) Debug(msg string, keyVals ...interface{}) {
	l.DebugLogs = append(l.DebugLogs, LogEntry{Message: msg, Params: keyVals})
}

// Info records an info entry
func (l *MockLogger) Info(msg string, keyVals ...interface{}) {
	l.InfoLogs = append(l.InfoLogs, LogEntry{Message: msg, Params: keyVals})
}

// Warn records a warning entry
func (l *MockLogger) Warn(msg string, keyVals ...interface{}) {
	l.WarnLogs = append(l.WarnLogs, LogEntry{Message: msg, Params: keyVals})
}

// Error records an error entry
func (l *MockLogger) Error(msg string, keyVals ...interface{}) {
	l.ErrorLogs = append(l.ErrorLogs, LogEntry{Message: msg, Params: keyVals})
}

// With records the key values and returns the same logger
func (l *MockLogger) With(keyVals ...interface{}) log.Logger {
	l.WithRecord = append(l.WithRecord, keyVals...)
	return l
}

// Impl returns the logger itself
func (l *MockLogger) Impl() interface{} {
	return l
}
