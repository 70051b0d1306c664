package odbcfield

import (
	"math"

	"github.com/odbcfield/odbcfield/internal/types"
)

// DoubleDescription binds SQL_DOUBLE (and SQL_FLOAT) as an 8-byte SQL_C_DOUBLE.
type DoubleDescription struct{}

// RealDescription binds SQL_REAL as a 4-byte SQL_C_FLOAT.
type RealDescription struct{}

// BooleanDescription binds SQL_BIT as a 1-byte SQL_C_BIT.
type BooleanDescription struct{}

func (DoubleDescription) Name() string           { return "double" }
func (DoubleDescription) ElementSize() int       { return 8 }
func (DoubleDescription) CType() types.CType     { return types.CDouble }
func (DoubleDescription) SQLType() types.SQLType { return types.Double }

func (d DoubleDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	return NewFloat(math.Float64frombits(nativeEndian.Uint64(raw))), nil
}

func (d DoubleDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindFloat, func(dst []byte, f Field) error {
		v, _ := f.AsFloat()
		nativeEndian.PutUint64(dst, math.Float64bits(v))
		return nil
	})
}

func (RealDescription) Name() string           { return "real" }
func (RealDescription) ElementSize() int       { return 4 }
func (RealDescription) CType() types.CType     { return types.CFloat }
func (RealDescription) SQLType() types.SQLType { return types.Real }

func (d RealDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	return NewFloat(float64(math.Float32frombits(nativeEndian.Uint32(raw)))), nil
}

// SetField stores f with float32 precision. Finite values beyond the float32
// range are a bounds error rather than silently becoming infinities.
func (d RealDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindFloat, func(dst []byte, f Field) error {
		v, _ := f.AsFloat()
		if !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) > math.MaxFloat32 {
			return &FieldError{
				Number:      ErrCodeBounds,
				Message:     "float %v out of range for %v",
				MessageArgs: []interface{}{v, d.Name()},
			}
		}
		nativeEndian.PutUint32(dst, math.Float32bits(float32(v)))
		return nil
	})
}

func (BooleanDescription) Name() string           { return "boolean" }
func (BooleanDescription) ElementSize() int       { return 1 }
func (BooleanDescription) CType() types.CType     { return types.CBit }
func (BooleanDescription) SQLType() types.SQLType { return types.Bit }

// MakeField treats any non-zero byte as true.
func (d BooleanDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	return NewBoolean(raw[0] != 0), nil
}

func (d BooleanDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindBoolean, func(dst []byte, f Field) error {
		if v, _ := f.AsBoolean(); v {
			dst[0] = 1
		} else {
			dst[0] = 0
		}
		return nil
	})
}
