package logger

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// logKeys and clientLogContextHooks decide which context values WithContext
// attaches to an entry, e.g. the statement a column is bound for.
var (
	contextConfigMu       sync.RWMutex
	logKeys               []interface{}
	clientLogContextHooks map[string]ClientLogContextHook
)

// SetLogKeys replaces the context keys whose values are logged.
func SetLogKeys(keys []interface{}) {
	contextConfigMu.Lock()
	defer contextConfigMu.Unlock()

	logKeys = make([]interface{}, len(keys))
	copy(logKeys, keys)
}

// RegisterLogContextHook registers a hook for extracting context fields.
func RegisterLogContextHook(key string, hook ClientLogContextHook) {
	contextConfigMu.Lock()
	defer contextConfigMu.Unlock()

	if clientLogContextHooks == nil {
		clientLogContextHooks = make(map[string]ClientLogContextHook)
	}
	clientLogContextHooks[key] = hook
}

// extractContextFields collects log fields from ctx using the log keys and the client hooks.
func extractContextFields(ctx context.Context) logrus.Fields {
	fields := logrus.Fields{}
	if ctx == nil {
		return fields
	}

	contextConfigMu.RLock()
	defer contextConfigMu.RUnlock()

	for _, key := range logKeys {
		if val := ctx.Value(key); val != nil {
			fields[fmt.Sprint(key)] = fmt.Sprint(val)
		}
	}
	for key, hook := range clientLogContextHooks {
		if val := hook(ctx); val != "" {
			fields[key] = val
		}
	}
	return fields
}
