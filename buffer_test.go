package odbcfield

import (
	"testing"
	"unsafe"
)

func TestNewMultiValueBuffer(t *testing.T) {
	buf, err := NewMultiValueBuffer(6, 3)
	assertNilF(t, err)
	assertEqualE(t, buf.ElementSize(), 6)
	assertEqualE(t, buf.Len(), 3)
	assertEqualE(t, len(buf.Bytes()), 18)
	for i := 0; i < buf.Len(); i++ {
		assertEqualE(t, buf.Indicator(i), int64(Unset), "fresh elements are unset")
	}
	for _, b := range buf.Bytes() {
		assertEqualE(t, b, byte(0), "fresh data is zeroed")
	}
}

func TestNewMultiValueBufferRejectsInvalidSizes(t *testing.T) {
	testcases := []struct {
		name        string
		size, count int
	}{
		{"zero count", 8, 0},
		{"negative count", 8, -1},
		{"zero size", 0, 4},
		{"negative size", -2, 4},
		{"overflowing product", 1 << 30, 1 << 30},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			buf, err := NewMultiValueBuffer(tc.size, tc.count)
			assertErrIsE(t, err, ErrInvalidBufferSize)
			assertNilE(t, buf)
		})
	}
}

func TestBufferElementViews(t *testing.T) {
	buf, err := NewMultiValueBuffer(4, 3)
	assertNilF(t, err)

	e := buf.Element(1)
	assertEqualE(t, len(e.Data), 4)
	assertEqualE(t, cap(e.Data), 4, "an element cannot grow into its neighbour")

	copy(e.Data, []byte{1, 2, 3, 4})
	*e.Indicator = 4
	assertBytesEqualE(t, buf.Bytes()[4:8], []byte{1, 2, 3, 4})
	assertEqualE(t, buf.Indicator(1), int64(4))
	assertEqualE(t, buf.Indicator(0), int64(Unset))
	assertEqualE(t, buf.Indicator(2), int64(Unset))

	again := buf.Element(1)
	assertBytesEqualE(t, again.Data, []byte{1, 2, 3, 4}, "views share the buffer memory")
}

func TestBufferOutOfRangeIndexPanics(t *testing.T) {
	buf, err := NewMultiValueBuffer(8, 2)
	assertNilF(t, err)

	for _, index := range []int{-1, 2, 100} {
		assertErrIsE(t, buf.CheckIndex(index), ErrBounds)
		assertPanicsWithE(t, func() { buf.Element(index) }, ErrBounds)
		assertPanicsWithE(t, func() { buf.Indicator(index) }, ErrBounds)
	}
	assertNilE(t, buf.CheckIndex(0))
	assertNilE(t, buf.CheckIndex(1))
}

func TestBufferAlignment(t *testing.T) {
	for _, size := range []int{1, 3, 6, 19, 16} {
		buf, err := NewMultiValueBuffer(size, 5)
		assertNilF(t, err)
		assertEqualE(t, uintptr(buf.DataPointer())%8, uintptr(0), "data is 8-byte aligned")
		assertEqualE(t, uintptr(buf.IndicatorPointer())%unsafe.Alignof(int64(0)), uintptr(0))
		assertEqualE(t, buf.DataPointer(), unsafe.Pointer(&buf.Bytes()[0]))
	}
}

func TestBufferReset(t *testing.T) {
	buf, err := NewMultiValueBuffer(1, 2)
	assertNilF(t, err)
	e := buf.Element(0)
	e.Data[0] = 7
	*e.Indicator = 1
	buf.Reset()
	assertEqualE(t, buf.Indicator(0), int64(Unset))
	assertEqualE(t, buf.Bytes()[0], byte(7), "reset keeps the data bytes")
}
