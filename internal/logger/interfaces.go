package logger

import (
	"github.com/odbcfield/odbcfield/loginterface"
)

// Re-export types from loginterface package to avoid circular dependencies
// while maintaining a clean internal API
type (
	LogEntry             = loginterface.LogEntry
	FieldLogger          = loginterface.FieldLogger
	ClientLogContextHook = loginterface.ClientLogContextHook
)
