package odbcfield

import (
	"unsafe"

	"github.com/dustin/go-humanize"

	"github.com/odbcfield/odbcfield/internal/types"
)

// Indicator sentinels. An indicator holds either the byte length of the data in
// its element or one of these values.
const (
	// NullData (SQL_NULL_DATA) marks an element holding SQL NULL.
	NullData = types.NullData
	// NoTotal (SQL_NO_TOTAL) is reported by drivers that cannot tell the full length.
	NoTotal = types.NoTotal
	// Unset marks an element nobody has written yet. Fresh buffers start with it.
	Unset = types.Unset
)

// MultiValueBuffer owns the memory bound to one column or parameter: ElementSize
// bytes per element, Len elements, and one indicator per element. The data region
// is zero-filled and 8-byte aligned. A buffer has a fixed size for its lifetime
// and must not be mutated from more than one goroutine at a time.
type MultiValueBuffer struct {
	elementSize int
	backing     []uint64
	data        []byte
	indicators  []int64
}

// NewMultiValueBuffer allocates elementCount elements of elementSize bytes.
// Both values must be positive; a buffer with no elements is rejected.
func NewMultiValueBuffer(elementSize, elementCount int) (*MultiValueBuffer, error) {
	if elementSize <= 0 || elementCount <= 0 || int64(elementSize) > maxBufferBytes/int64(elementCount) {
		return nil, &FieldError{
			Number:      ErrCodeInvalidBufferSize,
			Message:     errMsgInvalidBufferSize,
			MessageArgs: []interface{}{elementSize, elementCount},
		}
	}
	total := elementSize * elementCount
	backing := make([]uint64, (total+7)/8)
	b := &MultiValueBuffer{
		elementSize: elementSize,
		backing:     backing,
		data:        unsafe.Slice((*byte)(unsafe.Pointer(&backing[0])), total),
		indicators:  make([]int64, elementCount),
	}
	b.Reset()
	logger.Tracef("allocated %v for %v elements of %v bytes", humanize.Bytes(uint64(total)), elementCount, elementSize)
	return b, nil
}

// maxBufferBytes caps a single allocation so elementSize*elementCount cannot overflow.
const maxBufferBytes int64 = 1 << 40

// ElementSize returns the number of bytes per element.
func (b *MultiValueBuffer) ElementSize() int {
	return b.elementSize
}

// Len returns the number of elements.
func (b *MultiValueBuffer) Len() int {
	return len(b.indicators)
}

// Element is a non-owning view of one buffer element. It is valid only while the
// owning buffer is alive. Data is exactly ElementSize bytes long.
type Element struct {
	Data      []byte
	Indicator *int64
}

// CheckIndex returns a bounds error unless 0 <= index < Len().
func (b *MultiValueBuffer) CheckIndex(index int) error {
	if index < 0 || index >= len(b.indicators) {
		return &FieldError{
			Number:      ErrCodeBounds,
			Message:     errMsgIndexOutOfRange,
			MessageArgs: []interface{}{index, len(b.indicators)},
		}
	}
	return nil
}

// Element returns the view of element index. An index outside [0, Len()) is a
// programming error and panics with a *FieldError matching ErrBounds.
func (b *MultiValueBuffer) Element(index int) Element {
	if err := b.CheckIndex(index); err != nil {
		panic(err)
	}
	offset := index * b.elementSize
	return Element{
		Data:      b.data[offset : offset+b.elementSize : offset+b.elementSize],
		Indicator: &b.indicators[index],
	}
}

// Indicator returns the indicator of element index. It panics like Element.
func (b *MultiValueBuffer) Indicator(index int) int64 {
	if err := b.CheckIndex(index); err != nil {
		panic(err)
	}
	return b.indicators[index]
}

// Bytes returns the whole data region. Element i starts at i*ElementSize().
func (b *MultiValueBuffer) Bytes() []byte {
	return b.data
}

// DataPointer returns the start of the data region, for SQLBindCol and
// SQLBindParameter calls. The pointer is valid while b is reachable.
func (b *MultiValueBuffer) DataPointer() unsafe.Pointer {
	return unsafe.Pointer(&b.data[0])
}

// IndicatorPointer returns the start of the indicator array.
func (b *MultiValueBuffer) IndicatorPointer() unsafe.Pointer {
	return unsafe.Pointer(&b.indicators[0])
}

// Reset marks every element Unset. Data bytes are left as they are.
func (b *MultiValueBuffer) Reset() {
	for i := range b.indicators {
		b.indicators[i] = Unset
	}
}
