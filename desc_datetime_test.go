package odbcfield

import (
	"testing"

	"github.com/odbcfield/odbcfield/internal/types"
)

// newElement allocates a single-element buffer for d.
func newElement(t *testing.T, d Description) Element {
	t.Helper()
	buf, err := NewMultiValueBuffer(d.ElementSize(), 1)
	assertNilF(t, err)
	return buf.Element(0)
}

// roundTrip encodes f with d and decodes it again.
func roundTrip(t *testing.T, d Description, f Field) Field {
	t.Helper()
	e := newElement(t, d)
	assertNilF(t, d.SetField(e, f), "set "+f.String())
	got, err := DecodeElement(d, e)
	assertNilF(t, err, "decode "+f.String())
	return got
}

func TestDateDescriptionTags(t *testing.T) {
	d := DateDescription{}
	assertEqualE(t, d.ElementSize(), 6)
	assertEqualE(t, d.CType(), types.CTypeDate)
	assertEqualE(t, d.SQLType(), types.TypeDate)
	assertEqualE(t, int(d.CType()), 91)
	assertEqualE(t, int(d.SQLType()), 91)
}

func TestDateDescriptionRoundTrip(t *testing.T) {
	d := DateDescription{}
	e := newElement(t, d)
	assertNilF(t, d.SetField(e, NewDate(2015, 12, 31)))
	assertEqualE(t, *e.Indicator, int64(6))

	want := make([]byte, 6)
	nativeEndian.PutUint16(want[0:2], 2015)
	nativeEndian.PutUint16(want[2:4], 12)
	nativeEndian.PutUint16(want[4:6], 31)
	assertBytesEqualE(t, e.Data, want, "SQL_DATE_STRUCT layout")

	f, err := d.MakeField(e.Data)
	assertNilF(t, err)
	assertEqualE(t, f, NewDate(2015, 12, 31))

	again, err := d.MakeField(e.Data)
	assertNilF(t, err)
	assertEqualE(t, again, f, "decoding does not change the element")
}

func TestDateDescriptionRejectsOtherKinds(t *testing.T) {
	d := DateDescription{}
	e := newElement(t, d)
	copy(e.Data, []byte{1, 2, 3, 4, 5, 6})
	*e.Indicator = 6

	for _, f := range []Field{
		NewText("2015-12-31"),
		NewInteger(20151231),
		NewTimestamp(Timestamp{Year: 2015, Month: 12, Day: 31}),
	} {
		assertErrIsE(t, d.SetField(e, f), ErrTypeMismatch, f.Kind().String())
		assertBytesEqualE(t, e.Data, []byte{1, 2, 3, 4, 5, 6}, "element is unchanged")
		assertEqualE(t, *e.Indicator, int64(6), "indicator is unchanged")
	}
}

func TestDateDescriptionComponents(t *testing.T) {
	d := DateDescription{}
	assertEqualE(t, roundTrip(t, d, NewDate(-4712, 1, 1)), NewDate(-4712, 1, 1), "negative years fit SQLSMALLINT")
	assertEqualE(t, roundTrip(t, d, NewDate(2015, 2, 30)), NewDate(2015, 2, 30), "calendar validity is not checked")

	e := newElement(t, d)
	assertErrIsE(t, d.SetField(e, NewDate(40000, 1, 1)), ErrBounds)
	assertErrIsE(t, d.SetField(e, NewDate(2015, -1, 1)), ErrBounds)
	assertErrIsE(t, d.SetField(e, NewDate(2015, 1, 70000)), ErrBounds)
	assertEqualE(t, *e.Indicator, int64(Unset), "failed encodes leave the indicator")
}

func TestDateDescriptionShortInput(t *testing.T) {
	_, err := DateDescription{}.MakeField([]byte{1, 2, 3})
	assertErrIsE(t, err, ErrMalformedInput)
}

func TestTimeDescription(t *testing.T) {
	d := TimeDescription{}
	assertEqualE(t, d.ElementSize(), 6)
	assertEqualE(t, int(d.CType()), 92)
	assertEqualE(t, int(d.SQLType()), 92)

	e := newElement(t, d)
	assertNilF(t, d.SetField(e, NewTime(23, 59, 58)))
	assertEqualE(t, *e.Indicator, int64(6))
	assertEqualE(t, nativeEndian.Uint16(e.Data[0:2]), uint16(23))
	assertEqualE(t, nativeEndian.Uint16(e.Data[2:4]), uint16(59))
	assertEqualE(t, nativeEndian.Uint16(e.Data[4:6]), uint16(58))

	f, err := DecodeElement(d, e)
	assertNilF(t, err)
	assertEqualE(t, f, NewTime(23, 59, 58))

	assertErrIsE(t, d.SetField(e, NewTime(-1, 0, 0)), ErrBounds)
	assertErrIsE(t, d.SetField(e, NewDate(2015, 1, 1)), ErrTypeMismatch)
}

func TestTimestampDescription(t *testing.T) {
	d := TimestampDescription{}
	assertEqualE(t, d.ElementSize(), 16)
	assertEqualE(t, int(d.CType()), 93)
	assertEqualE(t, int(d.SQLType()), 93)

	ts := Timestamp{Year: 2015, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Fraction: 999999999}
	e := newElement(t, d)
	assertNilF(t, d.SetField(e, NewTimestamp(ts)))
	assertEqualE(t, *e.Indicator, int64(16))
	assertEqualE(t, nativeEndian.Uint16(e.Data[0:2]), uint16(2015))
	assertEqualE(t, nativeEndian.Uint16(e.Data[10:12]), uint16(59))
	assertEqualE(t, nativeEndian.Uint32(e.Data[12:16]), uint32(999999999))

	f, err := DecodeElement(d, e)
	assertNilF(t, err)
	assertEqualE(t, f, NewTimestamp(ts))

	bad := ts
	bad.Fraction = -1
	assertErrIsE(t, d.SetField(e, NewTimestamp(bad)), ErrBounds)
	bad = ts
	bad.Second = 1 << 17
	assertErrIsE(t, d.SetField(e, NewTimestamp(bad)), ErrBounds)
	assertErrIsE(t, d.SetField(e, NewDate(2015, 12, 31)), ErrTypeMismatch)

	got, err := DecodeElement(d, e)
	assertNilF(t, err)
	assertEqualE(t, got, NewTimestamp(ts), "failed encodes leave the element")
}

func TestDateTimeNull(t *testing.T) {
	for _, d := range []Description{DateDescription{}, TimeDescription{}, TimestampDescription{}} {
		e := newElement(t, d)
		assertNilF(t, d.SetField(e, Null()))
		assertEqualE(t, *e.Indicator, int64(NullData), d.Name())
		f, err := DecodeElement(d, e)
		assertNilF(t, err)
		assertTrueE(t, f.IsNull(), d.Name())
	}
}
