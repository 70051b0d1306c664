package arrowcolumns

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	sf "github.com/odbcfield/odbcfield"
	ia "github.com/odbcfield/odbcfield/internal/arrow"
)

// ToArrow decodes the first rows elements of buf and builds an arrow array of
// ArrowType(ctx, d). Elements with a NullData indicator become arrow nulls. The
// caller owns the returned array and must Release it.
func ToArrow(ctx context.Context, d sf.Description, buf *sf.MultiValueBuffer, rows int, pool memory.Allocator) (arrow.Array, error) {
	dt, err := ArrowType(ctx, d)
	if err != nil {
		return nil, err
	}
	fields, err := sf.ReadColumn(d, buf, rows)
	if err != nil {
		return nil, err
	}
	b := array.NewBuilder(pool, dt)
	defer b.Release()
	b.Reserve(rows)
	validate := ia.Utf8ValidationEnabled(ctx)
	for i, f := range fields {
		if err = appendField(b, dt, f, validate); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return b.NewArray(), nil
}

func appendField(b array.Builder, dt arrow.DataType, f sf.Field, validateUtf8 bool) error {
	if f.IsNull() {
		b.AppendNull()
		return nil
	}
	ok := false
	switch b := b.(type) {
	case *array.Int64Builder:
		var v int64
		if v, ok = f.AsInteger(); ok {
			b.Append(v)
		}
	case *array.Float64Builder:
		var v float64
		if v, ok = f.AsFloat(); ok {
			b.Append(v)
		}
	case *array.BooleanBuilder:
		var v bool
		if v, ok = f.AsBoolean(); ok {
			b.Append(v)
		}
	case *array.Decimal128Builder:
		var v sf.Decimal
		if v, ok = f.AsDecimal(); ok {
			decimalType := dt.(*arrow.Decimal128Type)
			scaled, err := v.Rescale(decimalType.Scale)
			if err != nil || !scaled.Unscaled.FitsInPrecision(decimalType.Precision) {
				return &sf.FieldError{
					Number:      sf.ErrCodeBounds,
					Message:     "decimal %v does not fit %v",
					MessageArgs: []interface{}{v, decimalType},
				}
			}
			b.Append(scaled.Unscaled)
		}
	case *array.StringBuilder:
		var v string
		if v, ok = f.AsText(); ok {
			if validateUtf8 && !utf8.ValidString(v) {
				v = strings.ToValidUTF8(v, "\uFFFD")
			}
			b.Append(v)
		}
	case *array.BinaryBuilder:
		var v []byte
		if v, ok = f.AsBinary(); ok {
			b.Append(v)
		}
	case *array.Date32Builder:
		var v sf.Date
		if v, ok = f.AsDate(); ok {
			if sf.DateFromTime(v.Time()) != v {
				return errNotCalendar("date", v)
			}
			b.Append(arrow.Date32FromTime(v.Time()))
		}
	case *array.Time64Builder:
		var v sf.TimeOfDay
		if v, ok = f.AsTime(); ok {
			d := v.Duration()
			if d < 0 || d >= 24*time.Hour || sf.TimeOfDayFromTime(time.Time{}.Add(d)) != v {
				return errNotCalendar("time", v)
			}
			b.Append(arrow.Time64(d.Nanoseconds()))
		}
	case *array.TimestampBuilder:
		var v sf.Timestamp
		if v, ok = f.AsTimestamp(); ok {
			if sf.TimestampFromTime(v.Time()) != v {
				return errNotCalendar("timestamp", v)
			}
			ts, err := toArrowTimestamp(v, dt.(*arrow.TimestampType).Unit)
			if err != nil {
				return err
			}
			b.Append(ts)
		}
	}
	if !ok {
		return &sf.FieldError{
			Number:      sf.ErrCodeTypeMismatch,
			Message:     "cannot append a %v field to an arrow %v array",
			MessageArgs: []interface{}{f.Kind(), dt},
		}
	}
	return nil
}

// errNotCalendar reports components that time.Date would normalize into a
// different value, such as February 30.
func errNotCalendar(kind string, v interface{}) error {
	return &sf.FieldError{
		Number:      sf.ErrCodeBounds,
		Message:     "%v %v is not a valid calendar value",
		MessageArgs: []interface{}{kind, v},
	}
}

func toArrowTimestamp(v sf.Timestamp, unit arrow.TimeUnit) (arrow.Timestamp, error) {
	t := v.Time()
	ts, err := arrow.TimestampFromTime(t, unit)
	if err != nil {
		return 0, err
	}
	if unit == arrow.Nanosecond && t.Year() != ts.ToTime(arrow.Nanosecond).Year() {
		return 0, &sf.FieldError{
			Number:      sf.ErrCodeBounds,
			Message:     "cannot convert timestamp %v to a nanosecond arrow timestamp, use a coarser timestamp option",
			MessageArgs: []interface{}{v},
		}
	}
	return ts, nil
}

// FromArrow converts arr to fields and encodes them into the first arr.Len()
// elements of buf with d, for binding an arrow column as a parameter array.
func FromArrow(arr arrow.Array, d sf.Description, buf *sf.MultiValueBuffer) error {
	if arr.Len() > buf.Len() {
		return &sf.FieldError{
			Number:      sf.ErrCodeBounds,
			Message:     "arrow array of %v values does not fit a buffer of %v elements",
			MessageArgs: []interface{}{arr.Len(), buf.Len()},
		}
	}
	fields := make([]sf.Field, arr.Len())
	for i := range fields {
		f, err := fieldFromArrow(arr, i)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		fields[i] = f
	}
	return sf.WriteColumn(d, buf, fields)
}

func fieldFromArrow(arr arrow.Array, i int) (sf.Field, error) {
	if arr.IsNull(i) {
		return sf.Null(), nil
	}
	switch a := arr.(type) {
	case *array.Int8:
		return sf.NewInteger(int64(a.Value(i))), nil
	case *array.Int16:
		return sf.NewInteger(int64(a.Value(i))), nil
	case *array.Int32:
		return sf.NewInteger(int64(a.Value(i))), nil
	case *array.Int64:
		return sf.NewInteger(a.Value(i)), nil
	case *array.Uint8:
		return sf.NewInteger(int64(a.Value(i))), nil
	case *array.Uint16:
		return sf.NewInteger(int64(a.Value(i))), nil
	case *array.Uint32:
		return sf.NewInteger(int64(a.Value(i))), nil
	case *array.Uint64:
		return sf.FieldFromValue(a.Value(i))
	case *array.Float32:
		return sf.NewFloat(float64(a.Value(i))), nil
	case *array.Float64:
		return sf.NewFloat(a.Value(i)), nil
	case *array.Boolean:
		return sf.NewBoolean(a.Value(i)), nil
	case *array.Decimal128:
		scale := a.DataType().(*arrow.Decimal128Type).Scale
		return sf.NewDecimal(sf.Decimal{Unscaled: a.Value(i), Scale: scale}), nil
	case *array.String:
		return sf.NewText(a.Value(i)), nil
	case *array.LargeString:
		return sf.NewText(a.Value(i)), nil
	case *array.Binary:
		return sf.NewBinary(a.Value(i)), nil
	case *array.Date32:
		return sf.DateFromTime(a.Value(i).ToTime()).Field(), nil
	case *array.Time64:
		unit := a.DataType().(*arrow.Time64Type).Unit
		t := a.Value(i).ToTime(unit)
		if d := t.Sub(time.Unix(0, 0).UTC()); d < 0 || d >= 24*time.Hour || t.Nanosecond() != 0 {
			return sf.Null(), &sf.FieldError{
				Number:      sf.ErrCodeBounds,
				Message:     "arrow time %v%v does not fit a whole-second time of day",
				MessageArgs: []interface{}{int64(a.Value(i)), unit},
			}
		}
		return sf.TimeOfDayFromTime(t).Field(), nil
	case *array.Timestamp:
		unit := a.DataType().(*arrow.TimestampType).Unit
		return sf.TimestampFromTime(a.Value(i).ToTime(unit)).Field(), nil
	}
	return sf.Null(), &sf.FieldError{
		Number:      sf.ErrCodeUnsupportedType,
		Message:     "unsupported arrow type %v",
		MessageArgs: []interface{}{arr.DataType()},
	}
}
