package arrow

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"
)

// contextKey is a private type for context keys used by this package.
type contextKey string

// Context keys for arrow column conversion.
const (
	ctxTimestampOpt contextKey = "ARROW_COLUMNS_TIMESTAMP_OPTION"
	ctxUtf8Validate contextKey = "ENABLE_ARROW_COLUMNS_UTF8_VALIDATION"
)

// TimestampOption controls the unit of arrow timestamps built from SQL_TIMESTAMP_STRUCT values.
type TimestampOption int

const (
	// UseNanosecondTimestamp converts timestamps to arrow timestamps with nanosecond precision.
	UseNanosecondTimestamp TimestampOption = iota
	// UseMicrosecondTimestamp converts timestamps to arrow timestamps with microsecond precision.
	UseMicrosecondTimestamp
	// UseMillisecondTimestamp converts timestamps to arrow timestamps with millisecond precision.
	UseMillisecondTimestamp
	// UseSecondTimestamp converts timestamps to arrow timestamps with second precision.
	UseSecondTimestamp
)

// Unit returns the arrow time unit for the option.
func (o TimestampOption) Unit() arrow.TimeUnit {
	switch o {
	case UseMicrosecondTimestamp:
		return arrow.Microsecond
	case UseMillisecondTimestamp:
		return arrow.Millisecond
	case UseSecondTimestamp:
		return arrow.Second
	}
	return arrow.Nanosecond
}

// WithTimestampOption sets the timestamp option in the context.
func WithTimestampOption(ctx context.Context, option TimestampOption) context.Context {
	return context.WithValue(ctx, ctxTimestampOpt, option)
}

// GetTimestampOption returns the timestamp option from the context.
func GetTimestampOption(ctx context.Context) TimestampOption {
	v := ctx.Value(ctxTimestampOpt)
	if v == nil {
		return UseNanosecondTimestamp
	}
	o, ok := v.(TimestampOption)
	if !ok {
		return UseNanosecondTimestamp
	}
	return o
}

// EnableUtf8Validation enables UTF-8 validation for string columns.
func EnableUtf8Validation(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxUtf8Validate, true)
}

// Utf8ValidationEnabled checks if UTF-8 validation is enabled.
func Utf8ValidationEnabled(ctx context.Context) bool {
	v := ctx.Value(ctxUtf8Validate)
	if v == nil {
		return false
	}
	d, ok := v.(bool)
	return ok && d
}
