package arrowcolumns

import (
	"context"

	ia "github.com/odbcfield/odbcfield/internal/arrow"
)

// Timestamp option constants.
const (
	UseNanosecondTimestamp  = ia.UseNanosecondTimestamp
	UseMicrosecondTimestamp = ia.UseMicrosecondTimestamp
	UseMillisecondTimestamp = ia.UseMillisecondTimestamp
	UseSecondTimestamp      = ia.UseSecondTimestamp
)

// WithTimestampOption returns a context that sets the unit of arrow timestamps
// built from TIMESTAMP columns.
func WithTimestampOption(ctx context.Context, option ia.TimestampOption) context.Context {
	return ia.WithTimestampOption(ctx, option)
}

// WithUtf8Validation returns a context that replaces invalid UTF-8 in
// character columns with U+FFFD when building string arrays.
func WithUtf8Validation(ctx context.Context) context.Context {
	return ia.EnableUtf8Validation(ctx)
}
