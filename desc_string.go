package odbcfield

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/odbcfield/odbcfield/internal/types"
)

// StringDescription binds character data as NUL-terminated SQL_C_CHAR. MaxLength
// is the largest payload in bytes; each element reserves one more byte for the
// terminator.
type StringDescription struct {
	MaxLength int
}

func (d StringDescription) Name() string {
	return fmt.Sprintf("string(%d)", d.MaxLength)
}

func (d StringDescription) ElementSize() int     { return d.MaxLength + 1 }
func (StringDescription) CType() types.CType     { return types.CChar }
func (StringDescription) SQLType() types.SQLType { return types.VarChar }
func (d StringDescription) payloadCapacity() int { return d.MaxLength }

// MakeField reads up to the first NUL byte, never past ElementSize bytes or the
// end of data.
func (d StringDescription) MakeField(data []byte) (Field, error) {
	data = clip(data, d.ElementSize())
	if i := bytes.IndexByte(data, 0); i >= 0 {
		data = data[:i]
	}
	return NewTextBytes(data), nil
}

// SetField writes the text followed by zero bytes and sets the indicator to the
// text length. Text longer than MaxLength is a bounds error.
func (d StringDescription) SetField(e Element, f Field) error {
	if f.IsNull() {
		*e.Indicator = NullData
		return nil
	}
	s, ok := f.AsText()
	if !ok {
		return errTypeMismatch(d, f)
	}
	return putVariable(e, []byte(s), d.MaxLength, d.ElementSize())
}

// UnicodeDescription binds character data as NUL-terminated UTF-16 SQL_C_WCHAR
// in native byte order. MaxLength counts UTF-16 code units.
type UnicodeDescription struct {
	MaxLength int
}

func (d UnicodeDescription) Name() string {
	return fmt.Sprintf("unicode(%d)", d.MaxLength)
}

func (d UnicodeDescription) ElementSize() int     { return 2 * (d.MaxLength + 1) }
func (UnicodeDescription) CType() types.CType     { return types.CWChar }
func (UnicodeDescription) SQLType() types.SQLType { return types.WVarChar }
func (d UnicodeDescription) payloadCapacity() int { return 2 * d.MaxLength }

// MakeField reads whole code units up to the first NUL unit and converts them to UTF-8.
func (d UnicodeDescription) MakeField(data []byte) (Field, error) {
	data = clip(data, d.ElementSize())
	data = data[:len(data)&^1]
	for i := 0; i < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			data = data[:i]
			break
		}
	}
	if err := checkSurrogates(data); err != nil {
		return Null(), &FieldError{
			Number:      ErrCodeMalformedInput,
			Message:     errMsgInvalidText,
			MessageArgs: []interface{}{d.Name(), "UTF-16", err},
		}
	}
	text, err := utf16Encoding().NewDecoder().Bytes(data)
	if err != nil {
		return Null(), &FieldError{
			Number:      ErrCodeMalformedInput,
			Message:     errMsgInvalidText,
			MessageArgs: []interface{}{d.Name(), "UTF-16", err},
		}
	}
	return NewTextBytes(text), nil
}

func (d UnicodeDescription) SetField(e Element, f Field) error {
	if f.IsNull() {
		*e.Indicator = NullData
		return nil
	}
	s, ok := f.AsText()
	if !ok {
		return errTypeMismatch(d, f)
	}
	if !utf8.ValidString(s) {
		return &FieldError{
			Number:      ErrCodeTypeMismatch,
			Message:     errMsgInvalidText,
			MessageArgs: []interface{}{d.Name(), "UTF-8", "invalid byte sequence"},
		}
	}
	encoded, err := utf16Encoding().NewEncoder().Bytes([]byte(s))
	if err != nil {
		return &FieldError{
			Number:      ErrCodeTypeMismatch,
			Message:     errMsgInvalidText,
			MessageArgs: []interface{}{d.Name(), "UTF-8", err},
		}
	}
	return putVariable(e, encoded, 2*d.MaxLength, d.ElementSize())
}

// checkSurrogates rejects unpaired surrogates in native-order code units. The
// decoder would replace them with U+FFFD.
func checkSurrogates(data []byte) error {
	for i := 0; i+1 < len(data); i += 2 {
		u := nativeEndian.Uint16(data[i:])
		switch {
		case u >= 0xd800 && u < 0xdc00:
			if i+3 >= len(data) {
				return fmt.Errorf("unpaired surrogate %#04x at unit %d", u, i/2)
			}
			if next := nativeEndian.Uint16(data[i+2:]); next < 0xdc00 || next > 0xdfff {
				return fmt.Errorf("unpaired surrogate %#04x at unit %d", u, i/2)
			}
			i += 2
		case u >= 0xdc00 && u <= 0xdfff:
			return fmt.Errorf("unpaired surrogate %#04x at unit %d", u, i/2)
		}
	}
	return nil
}

// BinaryDescription binds raw bytes as SQL_C_BINARY. There is no terminator, so
// the payload length always comes from the indicator.
type BinaryDescription struct {
	MaxLength int
}

func (d BinaryDescription) Name() string {
	return fmt.Sprintf("binary(%d)", d.MaxLength)
}

func (d BinaryDescription) ElementSize() int     { return d.MaxLength }
func (BinaryDescription) CType() types.CType     { return types.CBinary }
func (BinaryDescription) SQLType() types.SQLType { return types.VarBinary }
func (d BinaryDescription) payloadCapacity() int { return d.MaxLength }

// MakeField returns a copy of data, clipped to ElementSize bytes.
func (d BinaryDescription) MakeField(data []byte) (Field, error) {
	return NewBinary(clip(data, d.ElementSize())), nil
}

func (d BinaryDescription) SetField(e Element, f Field) error {
	if f.IsNull() {
		*e.Indicator = NullData
		return nil
	}
	b, ok := f.AsBinary()
	if !ok {
		return errTypeMismatch(d, f)
	}
	return putVariable(e, b, d.MaxLength, d.ElementSize())
}

// putVariable copies payload into the element, zero-fills the remaining bytes of
// the element and sets the indicator to the payload length.
func putVariable(e Element, payload []byte, capacity, elementSize int) error {
	if len(payload) > capacity {
		return errValueTooLarge(len(payload), capacity)
	}
	if len(e.Data) < elementSize {
		return errValueTooLarge(elementSize, len(e.Data))
	}
	n := copy(e.Data, payload)
	clear(e.Data[n:elementSize])
	*e.Indicator = int64(len(payload))
	return nil
}

func clip(data []byte, n int) []byte {
	if len(data) > n {
		return data[:n]
	}
	return data
}

func utf16Encoding() encoding.Encoding {
	if nativeEndian.Uint16([]byte{1, 0}) == 1 {
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	}
	return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
}
