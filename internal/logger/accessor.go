package logger

import (
	"context"
	"errors"
	"io"
	"sync"
)

var (
	loggerAccessorMu sync.Mutex
	globalLogger     FieldLogger = newDefaultLogger()
)

// GetLogger returns the global logger for use by internal packages
func GetLogger() FieldLogger {
	loggerAccessorMu.Lock()
	defer loggerAccessorMu.Unlock()

	return globalLogger
}

// SetLogger replaces the global logger. A Proxy is rejected because it would
// delegate to itself.
func SetLogger(providedLogger FieldLogger) error {
	if providedLogger == nil {
		return errors.New("logger must not be nil")
	}
	if _, isProxy := providedLogger.(*Proxy); isProxy {
		return errors.New("cannot set Proxy as the global logger - it would create infinite recursion")
	}
	loggerAccessorMu.Lock()
	defer loggerAccessorMu.Unlock()

	globalLogger = providedLogger
	return nil
}

// CreateDefaultLogger creates a new, independent logrus-backed logger.
func CreateDefaultLogger() FieldLogger {
	return newDefaultLogger()
}

// Proxy delegates every call to whatever logger is global at call time, so
// package-level logger variables follow SetLogger.
type Proxy struct{}

// Compile-time verification that Proxy implements FieldLogger
var _ FieldLogger = (*Proxy)(nil)

// NewLoggerProxy returns a logger that always forwards to the global logger.
func NewLoggerProxy() *Proxy {
	return &Proxy{}
}

func (p *Proxy) Tracef(format string, args ...interface{}) { GetLogger().Tracef(format, args...) }
func (p *Proxy) Debugf(format string, args ...interface{}) { GetLogger().Debugf(format, args...) }
func (p *Proxy) Infof(format string, args ...interface{})  { GetLogger().Infof(format, args...) }
func (p *Proxy) Warnf(format string, args ...interface{})  { GetLogger().Warnf(format, args...) }
func (p *Proxy) Errorf(format string, args ...interface{}) { GetLogger().Errorf(format, args...) }
func (p *Proxy) Fatalf(format string, args ...interface{}) { GetLogger().Fatalf(format, args...) }

func (p *Proxy) Trace(msg string) { GetLogger().Trace(msg) }
func (p *Proxy) Debug(msg string) { GetLogger().Debug(msg) }
func (p *Proxy) Info(msg string)  { GetLogger().Info(msg) }
func (p *Proxy) Warn(msg string)  { GetLogger().Warn(msg) }
func (p *Proxy) Error(msg string) { GetLogger().Error(msg) }
func (p *Proxy) Fatal(msg string) { GetLogger().Fatal(msg) }

func (p *Proxy) WithField(key string, value interface{}) LogEntry {
	return GetLogger().WithField(key, value)
}

func (p *Proxy) WithFields(fields map[string]any) LogEntry {
	return GetLogger().WithFields(fields)
}

func (p *Proxy) WithContext(ctx context.Context) LogEntry {
	return GetLogger().WithContext(ctx)
}

func (p *Proxy) SetLogLevel(level string) error { return GetLogger().SetLogLevel(level) }
func (p *Proxy) GetLogLevel() string            { return GetLogger().GetLogLevel() }
func (p *Proxy) SetOutput(output io.Writer)     { GetLogger().SetOutput(output) }
