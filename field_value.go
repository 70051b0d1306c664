package odbcfield

import (
	"database/sql/driver"
	"math"
	"math/big"
	"reflect"
	"time"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
)

// FieldFromValue builds a Field from a native Go value. It accepts the
// database/sql/driver.Value set, the other sized integers and floats, and the
// package's Date, TimeOfDay, Timestamp and Decimal types. A time.Time becomes a
// TIMESTAMP in its own location.
func FieldFromValue(v any) (Field, error) {
	switch v := v.(type) {
	case nil:
		return Null(), nil
	case Field:
		return v, nil
	case int64:
		return NewInteger(v), nil
	case int:
		return NewInteger(int64(v)), nil
	case int32:
		return NewInteger(int64(v)), nil
	case int16:
		return NewInteger(int64(v)), nil
	case int8:
		return NewInteger(int64(v)), nil
	case uint8:
		return NewInteger(int64(v)), nil
	case uint16:
		return NewInteger(int64(v)), nil
	case uint32:
		return NewInteger(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Null(), &FieldError{
				Number:      ErrCodeBounds,
				Message:     errMsgIntegerOutOfRange,
				MessageArgs: []interface{}{v, "int64"},
			}
		}
		return NewInteger(int64(v)), nil
	case float64:
		return NewFloat(v), nil
	case float32:
		return NewFloat(float64(v)), nil
	case bool:
		return NewBoolean(v), nil
	case string:
		return NewText(v), nil
	case []byte:
		if v == nil {
			return Null(), nil
		}
		return NewBinary(v), nil
	case time.Time:
		return NewTimestamp(TimestampFromTime(v)), nil
	case Date:
		return v.Field(), nil
	case TimeOfDay:
		return v.Field(), nil
	case Timestamp:
		return v.Field(), nil
	case Decimal:
		return NewDecimal(v), nil
	case *big.Int:
		if v == nil {
			return Null(), nil
		}
		if v.BitLen() > 127 {
			return Null(), &FieldError{
				Number:      ErrCodeBounds,
				Message:     errMsgDecimalOutOfRange,
				MessageArgs: []interface{}{v, "a 128-bit decimal"},
			}
		}
		return NewDecimal(Decimal{Unscaled: decimal128.FromBigInt(v)}), nil
	}
	return Null(), &FieldError{
		Number:      ErrCodeTypeMismatch,
		Message:     "cannot make a field from a value of type %v",
		MessageArgs: []interface{}{reflect.TypeOf(v)},
	}
}

// Value returns f as a database/sql/driver.Value. Decimals are rendered as
// strings to keep their precision; DATE, TIME and TIMESTAMP become UTC
// time.Time values, TIME on the zero date.
func (f Field) Value() (driver.Value, error) {
	switch f.kind {
	case KindNull:
		return nil, nil
	case KindInteger:
		return f.num, nil
	case KindFloat:
		return math.Float64frombits(f.flt), nil
	case KindDecimal:
		return f.dec.String(), nil
	case KindText:
		return f.str, nil
	case KindBinary:
		return []byte(f.str), nil
	case KindBoolean:
		return f.num != 0, nil
	case KindDate, KindTimestamp:
		return f.ts.Time(), nil
	case KindTime:
		return time.Time{}.Add(TimeOfDay{Hour: f.ts.Hour, Minute: f.ts.Minute, Second: f.ts.Second}.Duration()), nil
	}
	return nil, &FieldError{
		Number:      ErrCodeTypeMismatch,
		Message:     "unknown field kind %v",
		MessageArgs: []interface{}{f.kind},
	}
}
