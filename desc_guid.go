package odbcfield

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/odbcfield/odbcfield/internal/types"
)

// GUIDDescription binds SQL_GUID through the 16-byte SQLGUID struct
// {uint32 Data1; uint16 Data2; uint16 Data3; uint8 Data4[8]}. Values travel as
// TEXT fields in canonical UUID form; BINARY fields of 16 bytes in RFC 4122
// byte order are accepted on encode.
type GUIDDescription struct{}

func (GUIDDescription) Name() string           { return "guid" }
func (GUIDDescription) ElementSize() int       { return 16 }
func (GUIDDescription) CType() types.CType     { return types.CGUID }
func (GUIDDescription) SQLType() types.SQLType { return types.GUID }

func (d GUIDDescription) MakeField(data []byte) (Field, error) {
	raw, err := checkFixedInput(d, data)
	if err != nil {
		return Null(), err
	}
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], nativeEndian.Uint32(raw[0:4]))
	binary.BigEndian.PutUint16(u[4:6], nativeEndian.Uint16(raw[4:6]))
	binary.BigEndian.PutUint16(u[6:8], nativeEndian.Uint16(raw[6:8]))
	copy(u[8:16], raw[8:16])
	return NewText(u.String()), nil
}

func (d GUIDDescription) SetField(e Element, f Field) error {
	kind := KindText
	if f.Kind() == KindBinary {
		kind = KindBinary
	}
	return setFixed(d, e, f, kind, func(dst []byte, f Field) error {
		u, err := guidFromField(f)
		if err != nil {
			return &FieldError{
				Number:      ErrCodeTypeMismatch,
				Message:     "%v cannot store %v: %v",
				MessageArgs: []interface{}{d.Name(), f, err},
			}
		}
		nativeEndian.PutUint32(dst[0:4], binary.BigEndian.Uint32(u[0:4]))
		nativeEndian.PutUint16(dst[4:6], binary.BigEndian.Uint16(u[4:6]))
		nativeEndian.PutUint16(dst[6:8], binary.BigEndian.Uint16(u[6:8]))
		copy(dst[8:16], u[8:16])
		return nil
	})
}

func guidFromField(f Field) (uuid.UUID, error) {
	if b, ok := f.AsBinary(); ok {
		return uuid.FromBytes(b)
	}
	s, _ := f.AsText()
	return uuid.Parse(s)
}
