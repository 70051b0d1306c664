package odbcfield

import (
	"strconv"

	"github.com/odbcfield/odbcfield/internal/types"
)

// Description defines the binary contract for one column or parameter type: the
// byte size of its driver struct, the C and SQL type tags to bind it with, and
// the conversion between one buffer element and a Field. Implementations are
// immutable and safe for concurrent use.
type Description interface {
	// Name is a short human-readable name, used in errors and logs.
	Name() string
	// ElementSize is the exact byte size of the driver struct for one element.
	ElementSize() int
	// CType is the C type tag passed to SQLBindCol / SQLBindParameter.
	CType() types.CType
	// SQLType is the SQL type tag passed to SQLBindParameter.
	SQLType() types.SQLType
	// MakeField decodes one element. Only the first ElementSize bytes of data are
	// read. Decoding is defined only for elements whose indicator is not NULL;
	// use DecodeElement to get the NULL check.
	MakeField(data []byte) (Field, error)
	// SetField encodes f into e and updates its indicator. A NULL field only sets
	// the indicator to NullData. On error e is left untouched.
	SetField(e Element, f Field) error
}

// variableLength is implemented by descriptions whose indicator carries the
// payload length (character and binary data).
type variableLength interface {
	// payloadCapacity is the largest payload in bytes, excluding any terminator.
	payloadCapacity() int
}

// DecodeElement decodes e with d, honoring the indicator: NullData yields the
// NULL field, an unwritten or negative indicator is malformed input. For
// variable-length types at most min(indicator, capacity) bytes are read; a
// larger indicator means the driver truncated the value and is logged.
func DecodeElement(d Description, e Element) (Field, error) {
	ind := *e.Indicator
	switch {
	case ind == NullData:
		return Null(), nil
	case ind < 0:
		return Null(), &FieldError{
			Number:      ErrCodeMalformedInput,
			Message:     errMsgBadIndicator,
			MessageArgs: []interface{}{indicatorName(ind), d.Name()},
		}
	}
	v, ok := d.(variableLength)
	if !ok {
		return d.MakeField(e.Data)
	}
	capacity := v.payloadCapacity()
	n := ind
	if n > int64(capacity) {
		logger.Warnf("%v element truncated by the driver: indicator %v, capacity %v", d.Name(), ind, capacity)
		n = int64(capacity)
	}
	if int(n) > len(e.Data) {
		return Null(), errShortElement(d, len(e.Data))
	}
	return d.MakeField(e.Data[:n])
}

func indicatorName(ind int64) string {
	switch ind {
	case Unset:
		return "UNSET"
	case NoTotal:
		return "SQL_NO_TOTAL"
	case types.DataAtExec:
		return "SQL_DATA_AT_EXEC"
	}
	return strconv.FormatInt(ind, 10)
}

// maxFixedSize bounds the scratch space used to encode fixed-size structs.
const maxFixedSize = 32

// setFixed implements SetField for fixed-size descriptions. encode writes
// exactly ElementSize bytes into a scratch buffer, so a failed encode leaves the
// element untouched.
func setFixed(d Description, e Element, f Field, kind Kind, encode func(dst []byte, f Field) error) error {
	if f.IsNull() {
		*e.Indicator = NullData
		return nil
	}
	if f.Kind() != kind {
		return errTypeMismatch(d, f)
	}
	size := d.ElementSize()
	if len(e.Data) < size {
		return errValueTooLarge(size, len(e.Data))
	}
	var scratch [maxFixedSize]byte
	if err := encode(scratch[:size], f); err != nil {
		return err
	}
	copy(e.Data[:size], scratch[:size])
	*e.Indicator = int64(size)
	return nil
}

// checkFixedInput returns the first ElementSize bytes of data.
func checkFixedInput(d Description, data []byte) ([]byte, error) {
	size := d.ElementSize()
	if len(data) < size {
		return nil, errShortElement(d, len(data))
	}
	return data[:size], nil
}
