package odbcfield

import (
	"encoding/binary"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/decimal128"

	"github.com/odbcfield/odbcfield/internal/types"
)

// MaxDecimalPrecision is the largest precision SQL_NUMERIC_STRUCT can carry in
// its 128-bit magnitude while staying within a signed 128-bit value.
const MaxDecimalPrecision = decimal128.MaxPrecision

// numericStructSize is sizeof(SQL_NUMERIC_STRUCT): precision, scale, sign and a
// 16-byte magnitude.
const numericStructSize = 19

// DecimalDescription binds SQL_DECIMAL / SQL_NUMERIC columns through
// SQL_NUMERIC_STRUCT. The magnitude is little-endian on every platform, as the
// ODBC reference mandates. SetField rescales to Scale, so a value round-trips
// unchanged only when it already has the description's scale.
type DecimalDescription struct {
	Precision int32
	Scale     int32
}

// NewDecimalDescription returns the description for DECIMAL(precision, scale).
func NewDecimalDescription(precision, scale int32) (DecimalDescription, error) {
	if precision < 1 || precision > MaxDecimalPrecision || scale < 0 || scale > precision {
		return DecimalDescription{}, &FieldError{
			Number:      ErrCodeUnsupportedType,
			Message:     "unsupported decimal precision %v and scale %v",
			MessageArgs: []interface{}{precision, scale},
		}
	}
	return DecimalDescription{Precision: precision, Scale: scale}, nil
}

func (d DecimalDescription) Name() string {
	return fmt.Sprintf("decimal(%d, %d)", d.Precision, d.Scale)
}

func (DecimalDescription) ElementSize() int       { return numericStructSize }
func (DecimalDescription) CType() types.CType     { return types.CNumeric }
func (DecimalDescription) SQLType() types.SQLType { return types.Decimal }

// MakeField decodes the struct using the scale stored in it.
func (d DecimalDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	scale := int32(int8(raw[1]))
	sign := raw[2]
	lo := binary.LittleEndian.Uint64(raw[3:11])
	hi := binary.LittleEndian.Uint64(raw[11:19])
	if hi>>63 != 0 {
		return Null(), &FieldError{
			Number:      ErrCodeMalformedInput,
			Message:     "%v magnitude exceeds 127 bits",
			MessageArgs: []interface{}{d.Name()},
		}
	}
	n := decimal128.New(int64(hi), lo)
	if sign == 0 {
		n = n.Negate()
	}
	return NewDecimal(Decimal{Unscaled: n, Scale: scale}), nil
}

// SetField rescales the value to the description's scale. Values that would
// lose digits or exceed the precision are rejected.
func (d DecimalDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindDecimal, func(dst []byte, f Field) error {
		v, _ := f.AsDecimal()
		scaled, err := v.Rescale(d.Scale)
		if err != nil || !scaled.Unscaled.FitsInPrecision(d.Precision) {
			return &FieldError{
				Number:      ErrCodeBounds,
				Message:     errMsgDecimalOutOfRange,
				MessageArgs: []interface{}{v, d.Name()},
			}
		}
		dst[0] = byte(d.Precision)
		dst[1] = byte(int8(d.Scale))
		dst[2] = 1
		magnitude := scaled.Unscaled
		if magnitude.Sign() < 0 {
			dst[2] = 0
			magnitude = magnitude.Negate()
		}
		binary.LittleEndian.PutUint64(dst[3:11], magnitude.LowBits())
		binary.LittleEndian.PutUint64(dst[11:19], uint64(magnitude.HighBits()))
		return nil
	})
}
