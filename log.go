package odbcfield

import (
	loggerinternal "github.com/odbcfield/odbcfield/internal/logger"
	"github.com/odbcfield/odbcfield/loginterface"
)

type contextKey string

// StatementIDKey is the context key whose value is written to logs by WithContext.
const StatementIDKey contextKey = "LOG_STATEMENT_ID"

func init() {
	SetLogKeys(StatementIDKey)
	_ = logger.SetLogLevel("error")
}

// Re-export types from loginterface package
type (
	// ClientLogContextHook is a client-defined hook that can be used to insert log
	// fields based on the Context.
	ClientLogContextHook = loginterface.ClientLogContextHook

	// LogEntry allows for logging using a snapshot of field values.
	LogEntry = loginterface.LogEntry

	// FieldLogger is the logger interface used by odbcfield.
	FieldLogger = loginterface.FieldLogger
)

// SetLogKeys sets the context keys to be written to logs when logger.WithContext is used.
func SetLogKeys(keys ...contextKey) {
	ikeys := make([]interface{}, len(keys))
	for i, k := range keys {
		ikeys[i] = k
	}
	loggerinternal.SetLogKeys(ikeys)
}

// RegisterLogContextHook registers a hook that can be used to extract fields
// from the Context and associated with log messages using the provided key.
func RegisterLogContextHook(contextKey string, ctxExtractor ClientLogContextHook) {
	loggerinternal.RegisterLogContextHook(contextKey, ctxExtractor)
}

// logger is a proxy that delegates all calls to the internal global logger
var logger FieldLogger = loggerinternal.NewLoggerProxy()

// SetLogger sets a new logger for odbcfield.
func SetLogger(inLogger FieldLogger) error {
	return loggerinternal.SetLogger(inLogger)
}

// GetLogger returns the logger odbcfield currently writes to.
func GetLogger() FieldLogger {
	return logger
}

// CreateDefaultLogger creates and returns a new logrus-backed FieldLogger. It does
// not modify global state; pass it to SetLogger to install it.
func CreateDefaultLogger() FieldLogger {
	return loggerinternal.CreateDefaultLogger()
}
