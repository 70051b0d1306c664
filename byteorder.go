package odbcfield

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// nativeEndian is the byte order of the C structs the driver reads and writes.
var nativeEndian binary.ByteOrder = binary.LittleEndian

func init() {
	if cpu.IsBigEndian {
		nativeEndian = binary.BigEndian
	}
}
