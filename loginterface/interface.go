// Package loginterface defines the logger odbcfield writes to. The library logs
// description choices at debug and trace, buffer allocations at trace and
// driver-side truncation of character and binary elements at warn. Implement
// FieldLogger and install it with odbcfield.SetLogger to route these entries.
package loginterface

import (
	"context"
	"io"
)

// ClientLogContextHook returns the value logged under its registered key for a
// context, or "" to log nothing.
type ClientLogContextHook func(context.Context) string

// LogEntry logs with a fixed set of fields, such as the column being decoded.
type LogEntry interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})

	Trace(msg string)
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)
}

// FieldLogger is the global logger. Levels are the logrus names ("trace" to
// "fatal") plus "off".
type FieldLogger interface {
	LogEntry
	WithField(key string, value interface{}) LogEntry
	WithFields(fields map[string]any) LogEntry
	WithContext(ctx context.Context) LogEntry

	SetLogLevel(level string) error
	GetLogLevel() string
	SetOutput(output io.Writer)
}
