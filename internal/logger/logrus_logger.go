package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// defaultLogger implements FieldLogger on top of logrus.
type defaultLogger struct {
	mu    sync.RWMutex
	inner *logrus.Logger
	off   bool
}

// Compile-time verification that defaultLogger implements FieldLogger
var _ FieldLogger = (*defaultLogger)(nil)

func newDefaultLogger() *defaultLogger {
	inner := logrus.New()
	inner.SetOutput(os.Stderr)
	inner.SetLevel(logrus.InfoLevel)
	inner.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000000000Z07:00",
	})
	return &defaultLogger{inner: inner}
}

func (log *defaultLogger) entry() *logEntry {
	log.mu.RLock()
	defer log.mu.RUnlock()
	return &logEntry{inner: logrus.NewEntry(log.inner), off: log.off}
}

// SetLogLevel sets the log level. "off" disables output entirely.
func (log *defaultLogger) SetLogLevel(level string) error {
	lvl, off, err := parseLevel(level)
	if err != nil {
		return fmt.Errorf("error while setting log level. %v", err)
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	log.off = off
	log.inner.SetLevel(lvl)
	return nil
}

func (log *defaultLogger) GetLogLevel() string {
	log.mu.RLock()
	defer log.mu.RUnlock()
	return levelToString(log.inner.GetLevel(), log.off)
}

func (log *defaultLogger) SetOutput(output io.Writer) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.inner.SetOutput(output)
}

func (log *defaultLogger) WithField(key string, value interface{}) LogEntry {
	e := log.entry()
	e.inner = e.inner.WithField(key, value)
	return e
}

func (log *defaultLogger) WithFields(fields map[string]any) LogEntry {
	e := log.entry()
	e.inner = e.inner.WithFields(logrus.Fields(fields))
	return e
}

func (log *defaultLogger) WithContext(ctx context.Context) LogEntry {
	e := log.entry()
	e.inner = e.inner.WithContext(ctx).WithFields(extractContextFields(ctx))
	return e
}

func (log *defaultLogger) Tracef(format string, args ...interface{}) { log.entry().Tracef(format, args...) }
func (log *defaultLogger) Debugf(format string, args ...interface{}) { log.entry().Debugf(format, args...) }
func (log *defaultLogger) Infof(format string, args ...interface{})  { log.entry().Infof(format, args...) }
func (log *defaultLogger) Warnf(format string, args ...interface{})  { log.entry().Warnf(format, args...) }
func (log *defaultLogger) Errorf(format string, args ...interface{}) { log.entry().Errorf(format, args...) }
func (log *defaultLogger) Fatalf(format string, args ...interface{}) { log.entry().Fatalf(format, args...) }

func (log *defaultLogger) Trace(msg string) { log.entry().Trace(msg) }
func (log *defaultLogger) Debug(msg string) { log.entry().Debug(msg) }
func (log *defaultLogger) Info(msg string)  { log.entry().Info(msg) }
func (log *defaultLogger) Warn(msg string)  { log.entry().Warn(msg) }
func (log *defaultLogger) Error(msg string) { log.entry().Error(msg) }
func (log *defaultLogger) Fatal(msg string) { log.entry().Fatal(msg) }

// logEntry adapts a logrus entry to LogEntry. Fatal messages are logged at
// fatal level but never terminate the process: this is a library.
type logEntry struct {
	inner *logrus.Entry
	off   bool
}

func (e *logEntry) logf(level logrus.Level, format string, args ...interface{}) {
	if e.off {
		return
	}
	e.inner.Logf(level, format, args...)
}

func (e *logEntry) log(level logrus.Level, msg string) {
	if e.off {
		return
	}
	e.inner.Log(level, msg)
}

func (e *logEntry) Tracef(format string, args ...interface{}) { e.logf(logrus.TraceLevel, format, args...) }
func (e *logEntry) Debugf(format string, args ...interface{}) { e.logf(logrus.DebugLevel, format, args...) }
func (e *logEntry) Infof(format string, args ...interface{})  { e.logf(logrus.InfoLevel, format, args...) }
func (e *logEntry) Warnf(format string, args ...interface{})  { e.logf(logrus.WarnLevel, format, args...) }
func (e *logEntry) Errorf(format string, args ...interface{}) { e.logf(logrus.ErrorLevel, format, args...) }
func (e *logEntry) Fatalf(format string, args ...interface{}) { e.logf(logrus.FatalLevel, format, args...) }

func (e *logEntry) Trace(msg string) { e.log(logrus.TraceLevel, msg) }
func (e *logEntry) Debug(msg string) { e.log(logrus.DebugLevel, msg) }
func (e *logEntry) Info(msg string)  { e.log(logrus.InfoLevel, msg) }
func (e *logEntry) Warn(msg string)  { e.log(logrus.WarnLevel, msg) }
func (e *logEntry) Error(msg string) { e.log(logrus.ErrorLevel, msg) }
func (e *logEntry) Fatal(msg string) { e.log(logrus.FatalLevel, msg) }
