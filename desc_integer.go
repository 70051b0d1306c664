package odbcfield

import (
	"math"

	"github.com/odbcfield/odbcfield/internal/types"
)

// BigIntDescription binds SQL_BIGINT as an 8-byte SQL_C_SBIGINT.
type BigIntDescription struct{}

// IntegerDescription binds SQL_INTEGER as a 4-byte SQL_C_SLONG.
type IntegerDescription struct{}

// SmallIntDescription binds SQL_SMALLINT as a 2-byte SQL_C_SSHORT.
type SmallIntDescription struct{}

// TinyIntDescription binds SQL_TINYINT as a 1-byte SQL_C_STINYINT.
type TinyIntDescription struct{}

func (BigIntDescription) Name() string           { return "bigint" }
func (BigIntDescription) ElementSize() int       { return 8 }
func (BigIntDescription) CType() types.CType     { return types.CSBigInt }
func (BigIntDescription) SQLType() types.SQLType { return types.BigInt }

func (d BigIntDescription) MakeField(data []byte) (Field, error) {
	return makeInteger(d, data)
}

func (d BigIntDescription) SetField(e Element, f Field) error {
	return setInteger(d, e, f)
}

func (IntegerDescription) Name() string           { return "integer" }
func (IntegerDescription) ElementSize() int       { return 4 }
func (IntegerDescription) CType() types.CType     { return types.CSLong }
func (IntegerDescription) SQLType() types.SQLType { return types.Integer }

func (d IntegerDescription) MakeField(data []byte) (Field, error) {
	return makeInteger(d, data)
}

func (d IntegerDescription) SetField(e Element, f Field) error {
	return setInteger(d, e, f)
}

func (SmallIntDescription) Name() string           { return "smallint" }
func (SmallIntDescription) ElementSize() int       { return 2 }
func (SmallIntDescription) CType() types.CType     { return types.CSShort }
func (SmallIntDescription) SQLType() types.SQLType { return types.SmallInt }

func (d SmallIntDescription) MakeField(data []byte) (Field, error) {
	return makeInteger(d, data)
}

func (d SmallIntDescription) SetField(e Element, f Field) error {
	return setInteger(d, e, f)
}

func (TinyIntDescription) Name() string           { return "tinyint" }
func (TinyIntDescription) ElementSize() int       { return 1 }
func (TinyIntDescription) CType() types.CType     { return types.CSTinyInt }
func (TinyIntDescription) SQLType() types.SQLType { return types.TinyInt }

func (d TinyIntDescription) MakeField(data []byte) (Field, error) {
	return makeInteger(d, data)
}

func (d TinyIntDescription) SetField(e Element, f Field) error {
	return setInteger(d, e, f)
}

// makeInteger reads a signed native-endian integer of d.ElementSize() bytes.
func makeInteger(d Description, data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	var v int64
	switch len(raw) {
	case 1:
		v = int64(int8(raw[0]))
	case 2:
		v = int64(int16(nativeEndian.Uint16(raw)))
	case 4:
		v = int64(int32(nativeEndian.Uint32(raw)))
	case 8:
		v = int64(nativeEndian.Uint64(raw))
	}
	return NewInteger(v), nil
}

func setInteger(d Description, e Element, f Field) error {
	return setFixed(d, e, f, KindInteger, func(dst []byte, f Field) error {
		v, _ := f.AsInteger()
		if !fitsSigned(v, len(dst)) {
			return &FieldError{
				Number:      ErrCodeBounds,
				Message:     errMsgIntegerOutOfRange,
				MessageArgs: []interface{}{v, d.Name()},
			}
		}
		switch len(dst) {
		case 1:
			dst[0] = byte(int8(v))
		case 2:
			nativeEndian.PutUint16(dst, uint16(int16(v)))
		case 4:
			nativeEndian.PutUint32(dst, uint32(int32(v)))
		case 8:
			nativeEndian.PutUint64(dst, uint64(v))
		}
		return nil
	})
}

func fitsSigned(v int64, size int) bool {
	switch size {
	case 1:
		return v >= math.MinInt8 && v <= math.MaxInt8
	case 2:
		return v >= math.MinInt16 && v <= math.MaxInt16
	case 4:
		return v >= math.MinInt32 && v <= math.MaxInt32
	}
	return true
}
