package odbcfield

import (
	"math"
	"testing"

	"github.com/odbcfield/odbcfield/internal/types"
)

func TestIntegerDescriptionTags(t *testing.T) {
	testcases := []struct {
		d     Description
		size  int
		ctype types.CType
		sql   types.SQLType
	}{
		{BigIntDescription{}, 8, types.CSBigInt, types.BigInt},
		{IntegerDescription{}, 4, types.CSLong, types.Integer},
		{SmallIntDescription{}, 2, types.CSShort, types.SmallInt},
		{TinyIntDescription{}, 1, types.CSTinyInt, types.TinyInt},
	}
	for _, tc := range testcases {
		t.Run(tc.d.Name(), func(t *testing.T) {
			assertEqualE(t, tc.d.ElementSize(), tc.size)
			assertEqualE(t, tc.d.CType(), tc.ctype)
			assertEqualE(t, tc.d.SQLType(), tc.sql)
		})
	}
	assertEqualE(t, int(BigIntDescription{}.CType()), -25)
	assertEqualE(t, int(IntegerDescription{}.CType()), -16)
}

func TestIntegerDescriptionRoundTrip(t *testing.T) {
	testcases := []struct {
		d      Description
		values []int64
	}{
		{BigIntDescription{}, []int64{0, 1, -1, math.MaxInt64, math.MinInt64}},
		{IntegerDescription{}, []int64{0, 42, math.MaxInt32, math.MinInt32}},
		{SmallIntDescription{}, []int64{-300, math.MaxInt16, math.MinInt16}},
		{TinyIntDescription{}, []int64{-1, math.MaxInt8, math.MinInt8}},
	}
	for _, tc := range testcases {
		t.Run(tc.d.Name(), func(t *testing.T) {
			for _, v := range tc.values {
				e := newElement(t, tc.d)
				assertNilF(t, tc.d.SetField(e, NewInteger(v)))
				assertEqualE(t, *e.Indicator, int64(tc.d.ElementSize()))
				f, err := DecodeElement(tc.d, e)
				assertNilF(t, err)
				assertEqualE(t, f, NewInteger(v))
			}
		})
	}
}

func TestIntegerDescriptionLayout(t *testing.T) {
	d := IntegerDescription{}
	e := newElement(t, d)
	assertNilF(t, d.SetField(e, NewInteger(-2)))
	assertEqualE(t, int32(nativeEndian.Uint32(e.Data)), int32(-2))
}

func TestIntegerDescriptionOutOfRange(t *testing.T) {
	testcases := []struct {
		d Description
		v int64
	}{
		{IntegerDescription{}, math.MaxInt32 + 1},
		{IntegerDescription{}, math.MinInt32 - 1},
		{SmallIntDescription{}, 1 << 15},
		{TinyIntDescription{}, 128},
		{TinyIntDescription{}, -129},
	}
	for _, tc := range testcases {
		e := newElement(t, tc.d)
		err := tc.d.SetField(e, NewInteger(tc.v))
		assertErrIsE(t, err, ErrBounds, tc.d.Name())
		assertEqualE(t, *e.Indicator, int64(Unset), "element left untouched")
	}
}

func TestIntegerDescriptionMismatch(t *testing.T) {
	d := BigIntDescription{}
	e := newElement(t, d)
	for _, f := range []Field{NewFloat(1), NewText("1"), NewBoolean(true), NewDecimal(NewDecimalFromInt64(1, 0))} {
		assertErrIsE(t, d.SetField(e, f), ErrTypeMismatch, f.Kind().String())
	}
	_, err := d.MakeField([]byte{1, 2, 3})
	assertErrIsE(t, err, ErrMalformedInput)
}

func TestDoubleDescription(t *testing.T) {
	d := DoubleDescription{}
	assertEqualE(t, d.ElementSize(), 8)
	assertEqualE(t, int(d.CType()), 8)
	assertEqualE(t, int(d.SQLType()), 8)
	for _, v := range []float64{0, -1.5, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(-1)} {
		assertEqualE(t, roundTrip(t, d, NewFloat(v)), NewFloat(v))
	}
	assertEqualE(t, roundTrip(t, d, NewFloat(math.NaN())), NewFloat(math.NaN()))
	assertErrIsE(t, d.SetField(newElement(t, d), NewInteger(1)), ErrTypeMismatch)
}

func TestRealDescription(t *testing.T) {
	d := RealDescription{}
	assertEqualE(t, d.ElementSize(), 4)
	assertEqualE(t, d.CType(), types.CFloat)
	assertEqualE(t, d.SQLType(), types.Real)
	assertEqualE(t, roundTrip(t, d, NewFloat(0.5)), NewFloat(0.5))
	assertEqualE(t, roundTrip(t, d, NewFloat(0.1)), NewFloat(float64(float32(0.1))), "float32 precision")
	assertEqualE(t, roundTrip(t, d, NewFloat(math.Inf(1))), NewFloat(math.Inf(1)))
	assertEqualE(t, roundTrip(t, d, NewFloat(math.NaN())), NewFloat(math.NaN()))

	e := newElement(t, d)
	assertErrIsE(t, d.SetField(e, NewFloat(1e300)), ErrBounds)
	assertEqualE(t, *e.Indicator, int64(Unset))
}

func TestFloatDecodeIsRepeatable(t *testing.T) {
	for _, d := range []Description{DoubleDescription{}, RealDescription{}} {
		e := newElement(t, d)
		assertNilF(t, d.SetField(e, NewFloat(math.NaN())), d.Name())
		first, err := DecodeElement(d, e)
		assertNilF(t, err, d.Name())
		second, err := DecodeElement(d, e)
		assertNilF(t, err, d.Name())
		assertTrueE(t, first.Equal(second), d.Name())
		assertEqualE(t, first.Kind(), KindFloat, d.Name())
	}
}

func TestBooleanDescription(t *testing.T) {
	d := BooleanDescription{}
	assertEqualE(t, d.ElementSize(), 1)
	assertEqualE(t, d.CType(), types.CBit)
	assertEqualE(t, d.SQLType(), types.Bit)

	e := newElement(t, d)
	assertNilF(t, d.SetField(e, NewBoolean(true)))
	assertEqualE(t, e.Data[0], byte(1))
	assertNilF(t, d.SetField(e, NewBoolean(false)))
	assertEqualE(t, e.Data[0], byte(0))
	assertEqualE(t, *e.Indicator, int64(1))

	f, err := d.MakeField([]byte{7})
	assertNilF(t, err)
	assertEqualE(t, f, NewBoolean(true), "any non-zero byte is true")

	assertErrIsE(t, d.SetField(e, NewInteger(1)), ErrTypeMismatch)
}
