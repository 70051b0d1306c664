package odbcfield

import (
	"bytes"
	"cmp"
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/decimal128"
)

// Kind identifies the active variant of a Field.
type Kind uint8

const (
	// KindNull is SQL NULL. It is the zero Kind, so the zero Field is null.
	KindNull Kind = iota
	// KindInteger holds an int64.
	KindInteger
	// KindFloat holds a float64.
	KindFloat
	// KindDecimal holds a fixed-point Decimal.
	KindDecimal
	// KindText holds character data.
	KindText
	// KindBinary holds raw bytes.
	KindBinary
	// KindBoolean holds a bool.
	KindBoolean
	// KindDate holds a calendar Date.
	KindDate
	// KindTime holds a TimeOfDay.
	KindTime
	// KindTimestamp holds a Timestamp.
	KindTimestamp
)

var kindNames = [...]string{
	KindNull:      "NULL",
	KindInteger:   "INTEGER",
	KindFloat:     "FLOAT",
	KindDecimal:   "DECIMAL",
	KindText:      "TEXT",
	KindBinary:    "BINARY",
	KindBoolean:   "BOOLEAN",
	KindDate:      "DATE",
	KindTime:      "TIME",
	KindTimestamp: "TIMESTAMP",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("KIND(%d)", uint8(k))
}

// Decimal is a fixed-point number: Unscaled * 10^-Scale.
type Decimal struct {
	Unscaled decimal128.Num
	Scale    int32
}

// NewDecimalFromInt64 returns unscaled * 10^-scale.
func NewDecimalFromInt64(unscaled int64, scale int32) Decimal {
	return Decimal{Unscaled: decimal128.FromI64(unscaled), Scale: scale}
}

// ParseDecimal parses a plain decimal literal such as "-12.340". The scale is the
// number of digits after the decimal point.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	digits := s
	scale := int32(0)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		scale = int32(len(s) - dot - 1)
		digits = s[:dot] + s[dot+1:]
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok || scale > decimal128.MaxPrecision {
		return Decimal{}, errDecimalLiteral(s, "not a decimal number")
	}
	if v.BitLen() > 127 {
		return Decimal{}, errDecimalLiteral(s, "more than 38 digits")
	}
	n := decimal128.FromBigInt(v)
	if !n.FitsInPrecision(decimal128.MaxPrecision) {
		return Decimal{}, errDecimalLiteral(s, "more than 38 digits")
	}
	return Decimal{Unscaled: n, Scale: scale}, nil
}

func errDecimalLiteral(s, reason string) error {
	return &FieldError{
		Number:      ErrCodeMalformedInput,
		Message:     "invalid decimal literal %q: %v",
		MessageArgs: []interface{}{s, reason},
	}
}

// String formats d exactly, with Scale digits after the decimal point.
func (d Decimal) String() string {
	digits := d.Unscaled.BigInt().String()
	if d.Scale <= 0 {
		if digits == "0" {
			return digits
		}
		return digits + strings.Repeat("0", int(-d.Scale))
	}
	sign := ""
	if digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}
	if pad := int(d.Scale) + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	point := len(digits) - int(d.Scale)
	return sign + digits[:point] + "." + digits[point:]
}

// Rescale returns the same value expressed with newScale digits after the
// decimal point. It fails when that would drop non-zero digits or overflow.
func (d Decimal) Rescale(newScale int32) (Decimal, error) {
	if newScale == d.Scale {
		return d, nil
	}
	v := d.Unscaled.BigInt()
	if newScale > d.Scale {
		v.Mul(v, pow10(newScale-d.Scale))
	} else {
		var rem big.Int
		v.QuoRem(v, pow10(d.Scale-newScale), &rem)
		if rem.Sign() != 0 {
			return Decimal{}, &FieldError{
				Number:      ErrCodeBounds,
				Message:     "rescaling %v to scale %v drops digits",
				MessageArgs: []interface{}{d, newScale},
			}
		}
	}
	if v.BitLen() > 127 {
		return Decimal{}, &FieldError{
			Number:      ErrCodeBounds,
			Message:     errMsgDecimalOutOfRange,
			MessageArgs: []interface{}{d, "a 128-bit decimal"},
		}
	}
	return Decimal{Unscaled: decimal128.FromBigInt(v), Scale: newScale}, nil
}

func (d Decimal) compare(other Decimal) int {
	if d.Scale == other.Scale {
		return d.Unscaled.Cmp(other.Unscaled)
	}
	a, b := d.Unscaled.BigInt(), other.Unscaled.BigInt()
	if d.Scale < other.Scale {
		a.Mul(a, pow10(other.Scale-d.Scale))
	} else {
		b.Mul(b, pow10(d.Scale-other.Scale))
	}
	return a.Cmp(b)
}

func pow10(n int32) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// Field is a tagged union holding one column or parameter value. The zero Field
// is NULL. Fields are comparable: == and Equal agree, so a Field can be a map key.
type Field struct {
	kind Kind
	num  int64
	// flt holds math.Float64bits of a FLOAT payload so that == compares the
	// stored bits: every NaN is stored as math.NaN() and equals itself, 0 and
	// -0 differ.
	flt  uint64
	dec  Decimal
	str  string
	ts   Timestamp
}

// Null returns the NULL field.
func Null() Field {
	return Field{}
}

// NewInteger returns an INTEGER field.
func NewInteger(v int64) Field {
	return Field{kind: KindInteger, num: v}
}

// NewFloat returns a FLOAT field. NaN payloads are not preserved.
func NewFloat(v float64) Field {
	if math.IsNaN(v) {
		v = math.NaN()
	}
	return Field{kind: KindFloat, flt: math.Float64bits(v)}
}

// NewDecimal returns a DECIMAL field.
func NewDecimal(d Decimal) Field {
	return Field{kind: KindDecimal, dec: d}
}

// NewText returns a TEXT field.
func NewText(s string) Field {
	return Field{kind: KindText, str: s}
}

// NewTextBytes returns a TEXT field holding a copy of b.
func NewTextBytes(b []byte) Field {
	return Field{kind: KindText, str: string(b)}
}

// NewBinary returns a BINARY field holding a copy of b.
func NewBinary(b []byte) Field {
	return Field{kind: KindBinary, str: string(b)}
}

// NewBoolean returns a BOOLEAN field.
func NewBoolean(b bool) Field {
	f := Field{kind: KindBoolean}
	if b {
		f.num = 1
	}
	return f
}

// NewDate returns a DATE field. Components are not validated.
func NewDate(year, month, day int) Field {
	return Field{kind: KindDate, ts: Timestamp{Year: year, Month: month, Day: day}}
}

// NewTime returns a TIME field. Components are not validated.
func NewTime(hour, minute, second int) Field {
	return Field{kind: KindTime, ts: Timestamp{Hour: hour, Minute: minute, Second: second}}
}

// NewTimestamp returns a TIMESTAMP field. Components are not validated.
func NewTimestamp(ts Timestamp) Field {
	return Field{kind: KindTimestamp, ts: ts}
}

// Kind returns the active variant.
func (f Field) Kind() Kind {
	return f.kind
}

// IsNull reports whether f is NULL.
func (f Field) IsNull() bool {
	return f.kind == KindNull
}

// AsInteger returns the INTEGER payload.
func (f Field) AsInteger() (int64, bool) {
	return f.num, f.kind == KindInteger
}

// AsFloat returns the FLOAT payload.
func (f Field) AsFloat() (float64, bool) {
	return math.Float64frombits(f.flt), f.kind == KindFloat
}

// AsDecimal returns the DECIMAL payload.
func (f Field) AsDecimal() (Decimal, bool) {
	return f.dec, f.kind == KindDecimal
}

// AsText returns the TEXT payload.
func (f Field) AsText() (string, bool) {
	if f.kind != KindText {
		return "", false
	}
	return f.str, true
}

// AsBinary returns a copy of the BINARY payload.
func (f Field) AsBinary() ([]byte, bool) {
	if f.kind != KindBinary {
		return nil, false
	}
	return []byte(f.str), true
}

// AsBoolean returns the BOOLEAN payload.
func (f Field) AsBoolean() (bool, bool) {
	return f.num != 0, f.kind == KindBoolean
}

// AsDate returns the DATE payload.
func (f Field) AsDate() (Date, bool) {
	if f.kind != KindDate {
		return Date{}, false
	}
	return Date{Year: f.ts.Year, Month: f.ts.Month, Day: f.ts.Day}, true
}

// AsTime returns the TIME payload.
func (f Field) AsTime() (TimeOfDay, bool) {
	if f.kind != KindTime {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: f.ts.Hour, Minute: f.ts.Minute, Second: f.ts.Second}, true
}

// AsTimestamp returns the TIMESTAMP payload.
func (f Field) AsTimestamp() (Timestamp, bool) {
	if f.kind != KindTimestamp {
		return Timestamp{}, false
	}
	return f.ts, true
}

// payloadLen is the byte length of a TEXT or BINARY payload.
func (f Field) payloadLen() int {
	return len(f.str)
}

// Equal reports whether f and other hold the same variant with the same payload.
// NULL equals only NULL. There is no coercion between variants.
func (f Field) Equal(other Field) bool {
	return f == other
}

// Compare orders fields: NULL first, then by Kind, then by payload. It returns
// -1, 0 or +1. Decimals with different scales compare by numeric value.
func (f Field) Compare(other Field) int {
	if c := cmp.Compare(f.kind, other.kind); c != 0 {
		return c
	}
	switch f.kind {
	case KindInteger, KindBoolean:
		return cmp.Compare(f.num, other.num)
	case KindFloat:
		if c := cmp.Compare(math.Float64frombits(f.flt), math.Float64frombits(other.flt)); c != 0 {
			return c
		}
		// equal values (0 and -0, NaNs) are ordered by their bits to agree with Equal
		return cmp.Compare(f.flt, other.flt)
	case KindDecimal:
		if c := f.dec.compare(other.dec); c != 0 {
			return c
		}
		return cmp.Compare(f.dec.Scale, other.dec.Scale)
	case KindText:
		return strings.Compare(f.str, other.str)
	case KindBinary:
		return bytes.Compare([]byte(f.str), []byte(other.str))
	case KindDate, KindTime, KindTimestamp:
		return f.ts.compare(other.ts)
	}
	return 0
}

func (f Field) String() string {
	switch f.kind {
	case KindNull:
		return "NULL"
	case KindInteger:
		return fmt.Sprintf("%d", f.num)
	case KindFloat:
		return fmt.Sprintf("%g", math.Float64frombits(f.flt))
	case KindDecimal:
		return f.dec.String()
	case KindText:
		return fmt.Sprintf("%q", f.str)
	case KindBinary:
		return "0x" + hex.EncodeToString([]byte(f.str))
	case KindBoolean:
		return fmt.Sprintf("%t", f.num != 0)
	case KindDate:
		return fmt.Sprintf("%04d-%02d-%02d", f.ts.Year, f.ts.Month, f.ts.Day)
	case KindTime:
		return fmt.Sprintf("%02d:%02d:%02d", f.ts.Hour, f.ts.Minute, f.ts.Second)
	case KindTimestamp:
		return f.ts.String()
	}
	return f.kind.String()
}
