package odbcfield

import (
	"math"

	"github.com/odbcfield/odbcfield/internal/types"
)

// DateDescription binds SQL_TYPE_DATE through the 6-byte SQL_DATE_STRUCT
// {SQLSMALLINT year; SQLUSMALLINT month; SQLUSMALLINT day}.
type DateDescription struct{}

// TimeDescription binds SQL_TYPE_TIME through the 6-byte SQL_TIME_STRUCT
// {SQLUSMALLINT hour; SQLUSMALLINT minute; SQLUSMALLINT second}.
type TimeDescription struct{}

// TimestampDescription binds SQL_TYPE_TIMESTAMP through the 16-byte
// SQL_TIMESTAMP_STRUCT: year, month, day, hour, minute, second as in the date
// and time structs, then SQLUINTEGER fraction in nanoseconds at offset 12.
type TimestampDescription struct{}

func (DateDescription) Name() string           { return "date" }
func (DateDescription) ElementSize() int       { return 6 }
func (DateDescription) CType() types.CType     { return types.CTypeDate }
func (DateDescription) SQLType() types.SQLType { return types.TypeDate }

// MakeField passes the components through unchanged; invalid calendar dates are
// not rejected here.
func (d DateDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	year, month, day := getDate(raw)
	return NewDate(year, month, day), nil
}

func (d DateDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindDate, func(dst []byte, f Field) error {
		date, _ := f.AsDate()
		if err := checkDate(d, date.Year, date.Month, date.Day); err != nil {
			return err
		}
		putDate(dst, date.Year, date.Month, date.Day)
		return nil
	})
}

func (TimeDescription) Name() string           { return "time" }
func (TimeDescription) ElementSize() int       { return 6 }
func (TimeDescription) CType() types.CType     { return types.CTypeTime }
func (TimeDescription) SQLType() types.SQLType { return types.TypeTime }

func (d TimeDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	hour, minute, second := getClock(raw)
	return NewTime(hour, minute, second), nil
}

func (d TimeDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindTime, func(dst []byte, f Field) error {
		t, _ := f.AsTime()
		if err := checkUnsigned(d, "time", t.Hour, t.Minute, t.Second); err != nil {
			return err
		}
		putClock(dst, t.Hour, t.Minute, t.Second)
		return nil
	})
}

func (TimestampDescription) Name() string           { return "timestamp" }
func (TimestampDescription) ElementSize() int       { return 16 }
func (TimestampDescription) CType() types.CType     { return types.CTypeTimestamp }
func (TimestampDescription) SQLType() types.SQLType { return types.TypeTimestamp }

func (d TimestampDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	var ts Timestamp
	ts.Year, ts.Month, ts.Day = getDate(raw[0:6])
	ts.Hour, ts.Minute, ts.Second = getClock(raw[6:12])
	ts.Fraction = int(nativeEndian.Uint32(raw[12:16]))
	return NewTimestamp(ts), nil
}

func (d TimestampDescription) SetField(e Element, f Field) error {
	return setFixed(d, e, f, KindTimestamp, func(dst []byte, f Field) error {
		ts, _ := f.AsTimestamp()
		if err := checkDate(d, ts.Year, ts.Month, ts.Day); err != nil {
			return err
		}
		if err := checkUnsigned(d, "time", ts.Hour, ts.Minute, ts.Second); err != nil {
			return err
		}
		if ts.Fraction < 0 || int64(ts.Fraction) > math.MaxUint32 {
			return errComponentRange(d, "fraction", ts.Fraction)
		}
		putDate(dst[0:6], ts.Year, ts.Month, ts.Day)
		putClock(dst[6:12], ts.Hour, ts.Minute, ts.Second)
		nativeEndian.PutUint32(dst[12:16], uint32(ts.Fraction))
		return nil
	})
}

func getDate(raw []byte) (year, month, day int) {
	return int(int16(nativeEndian.Uint16(raw[0:2]))), int(nativeEndian.Uint16(raw[2:4])), int(nativeEndian.Uint16(raw[4:6]))
}

func putDate(dst []byte, year, month, day int) {
	nativeEndian.PutUint16(dst[0:2], uint16(int16(year)))
	nativeEndian.PutUint16(dst[2:4], uint16(month))
	nativeEndian.PutUint16(dst[4:6], uint16(day))
}

func getClock(raw []byte) (hour, minute, second int) {
	return int(nativeEndian.Uint16(raw[0:2])), int(nativeEndian.Uint16(raw[2:4])), int(nativeEndian.Uint16(raw[4:6]))
}

func putClock(dst []byte, hour, minute, second int) {
	nativeEndian.PutUint16(dst[0:2], uint16(hour))
	nativeEndian.PutUint16(dst[2:4], uint16(minute))
	nativeEndian.PutUint16(dst[4:6], uint16(second))
}

// checkDate verifies the components fit the struct's integer widths. Calendar
// validity is not checked.
func checkDate(d Description, year, month, day int) error {
	if year < math.MinInt16 || year > math.MaxInt16 {
		return errComponentRange(d, "year", year)
	}
	return checkUnsigned(d, "date", month, day)
}

func checkUnsigned(d Description, what string, components ...int) error {
	for _, c := range components {
		if c < 0 || c > math.MaxUint16 {
			return errComponentRange(d, what+" component", c)
		}
	}
	return nil
}

func errComponentRange(d Description, what string, v int) error {
	return &FieldError{
		Number:      ErrCodeBounds,
		Message:     "%v %v out of range for %v",
		MessageArgs: []interface{}{what, v, d.Name()},
	}
}
