package odbcfield

import (
	"fmt"
)

// NewColumnBuffer allocates a buffer of rows elements sized for d.
func NewColumnBuffer(d Description, rows int) (*MultiValueBuffer, error) {
	return NewMultiValueBuffer(d.ElementSize(), rows)
}

func checkColumn(d Description, buf *MultiValueBuffer, rows int) error {
	if buf.ElementSize() != d.ElementSize() {
		return &FieldError{
			Number:      ErrCodeBounds,
			Message:     "buffer elements of %v bytes do not match %v elements of %v bytes",
			MessageArgs: []interface{}{buf.ElementSize(), d.Name(), d.ElementSize()},
		}
	}
	if rows < 0 || rows > buf.Len() {
		return &FieldError{
			Number:      ErrCodeBounds,
			Message:     "row count %v does not fit a buffer of %v elements",
			MessageArgs: []interface{}{rows, buf.Len()},
		}
	}
	return nil
}

// ReadColumn decodes the first rows elements of buf, as filled by one fetch.
func ReadColumn(d Description, buf *MultiValueBuffer, rows int) ([]Field, error) {
	if err := checkColumn(d, buf, rows); err != nil {
		return nil, err
	}
	fields := make([]Field, rows)
	for i := range fields {
		f, err := DecodeElement(d, buf.Element(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		fields[i] = f
	}
	return fields, nil
}

// WriteColumn encodes fields into the first len(fields) elements of buf for a
// parameter array bind. Elements before a failing row have been written; the
// failing element is left untouched.
func WriteColumn(d Description, buf *MultiValueBuffer, fields []Field) error {
	if err := checkColumn(d, buf, len(fields)); err != nil {
		return err
	}
	for i, f := range fields {
		if err := d.SetField(buf.Element(i), f); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
