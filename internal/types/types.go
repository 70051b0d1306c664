// Package types holds the ODBC type tags and indicator sentinels shared by the
// marshalling code. Values follow the ODBC 3.x headers (sql.h / sqlext.h).
package types

import (
	"fmt"
	"math"
	"strings"
)

// SQLSmallInt mirrors the driver's SQLSMALLINT.
type SQLSmallInt int16

// SQLLen mirrors the driver's SQLLEN on 64-bit platforms. Indicators are SQLLen values.
type SQLLen = int64

// SQLType is the declared database type of a column or parameter.
type SQLType SQLSmallInt

// CType identifies the in-memory representation used when binding a buffer.
type CType SQLSmallInt

const (
	// UnknownType is SQL_UNKNOWN_TYPE.
	UnknownType SQLType = 0
	// Char is SQL_CHAR.
	Char SQLType = 1
	// Numeric is SQL_NUMERIC.
	Numeric SQLType = 2
	// Decimal is SQL_DECIMAL.
	Decimal SQLType = 3
	// Integer is SQL_INTEGER.
	Integer SQLType = 4
	// SmallInt is SQL_SMALLINT.
	SmallInt SQLType = 5
	// Float is SQL_FLOAT.
	Float SQLType = 6
	// Real is SQL_REAL.
	Real SQLType = 7
	// Double is SQL_DOUBLE.
	Double SQLType = 8
	// Date is the ODBC 2 SQL_DATE code.
	Date SQLType = 9
	// Time is the ODBC 2 SQL_TIME code.
	Time SQLType = 10
	// Timestamp is the ODBC 2 SQL_TIMESTAMP code.
	Timestamp SQLType = 11
	// VarChar is SQL_VARCHAR.
	VarChar SQLType = 12
	// Boolean is the vendor SQL_BOOLEAN code used by some drivers.
	Boolean SQLType = 16
	// TypeDate is SQL_TYPE_DATE.
	TypeDate SQLType = 91
	// TypeTime is SQL_TYPE_TIME.
	TypeTime SQLType = 92
	// TypeTimestamp is SQL_TYPE_TIMESTAMP.
	TypeTimestamp SQLType = 93
	// LongVarChar is SQL_LONGVARCHAR.
	LongVarChar SQLType = -1
	// Binary is SQL_BINARY.
	Binary SQLType = -2
	// VarBinary is SQL_VARBINARY.
	VarBinary SQLType = -3
	// LongVarBinary is SQL_LONGVARBINARY.
	LongVarBinary SQLType = -4
	// BigInt is SQL_BIGINT.
	BigInt SQLType = -5
	// TinyInt is SQL_TINYINT.
	TinyInt SQLType = -6
	// Bit is SQL_BIT.
	Bit SQLType = -7
	// WChar is SQL_WCHAR.
	WChar SQLType = -8
	// WVarChar is SQL_WVARCHAR.
	WVarChar SQLType = -9
	// WLongVarChar is SQL_WLONGVARCHAR.
	WLongVarChar SQLType = -10
	// GUID is SQL_GUID.
	GUID SQLType = -11
)

const (
	signedOffset   = -20
	unsignedOffset = -22
)

const (
	// CChar is SQL_C_CHAR.
	CChar = CType(Char)
	// CWChar is SQL_C_WCHAR.
	CWChar = CType(WChar)
	// CSBigInt is SQL_C_SBIGINT.
	CSBigInt = CType(BigInt + signedOffset)
	// CUBigInt is SQL_C_UBIGINT.
	CUBigInt = CType(BigInt + unsignedOffset)
	// CSLong is SQL_C_SLONG.
	CSLong = CType(Integer + signedOffset)
	// CSShort is SQL_C_SSHORT.
	CSShort = CType(SmallInt + signedOffset)
	// CSTinyInt is SQL_C_STINYINT.
	CSTinyInt = CType(TinyInt + signedOffset)
	// CDouble is SQL_C_DOUBLE.
	CDouble = CType(Double)
	// CFloat is SQL_C_FLOAT.
	CFloat = CType(Real)
	// CBit is SQL_C_BIT.
	CBit = CType(Bit)
	// CNumeric is SQL_C_NUMERIC.
	CNumeric = CType(Numeric)
	// CBinary is SQL_C_BINARY.
	CBinary = CType(Binary)
	// CTypeDate is SQL_C_TYPE_DATE.
	CTypeDate = CType(TypeDate)
	// CTypeTime is SQL_C_TYPE_TIME.
	CTypeTime = CType(TypeTime)
	// CTypeTimestamp is SQL_C_TYPE_TIMESTAMP.
	CTypeTimestamp = CType(TypeTimestamp)
	// CGUID is SQL_C_GUID.
	CGUID = CType(GUID)
)

const (
	// NullData is SQL_NULL_DATA: the element holds SQL NULL.
	NullData SQLLen = -1
	// DataAtExec is SQL_DATA_AT_EXEC.
	DataAtExec SQLLen = -2
	// NoTotal is SQL_NO_TOTAL: the driver could not determine the length.
	NoTotal SQLLen = -4
	// Unset marks an element that neither the driver nor an encoder has written yet.
	Unset SQLLen = math.MinInt64
)

var nameToSQLType = map[string]SQLType{
	"UNKNOWN":        UnknownType,
	"CHAR":           Char,
	"NUMERIC":        Numeric,
	"DECIMAL":        Decimal,
	"INTEGER":        Integer,
	"SMALLINT":       SmallInt,
	"FLOAT":          Float,
	"REAL":           Real,
	"DOUBLE":         Double,
	"DATE":           Date,
	"TIME":           Time,
	"TIMESTAMP":      Timestamp,
	"VARCHAR":        VarChar,
	"BOOLEAN":        Boolean,
	"TYPE_DATE":      TypeDate,
	"TYPE_TIME":      TypeTime,
	"TYPE_TIMESTAMP": TypeTimestamp,
	"LONGVARCHAR":    LongVarChar,
	"BINARY":         Binary,
	"VARBINARY":      VarBinary,
	"LONGVARBINARY":  LongVarBinary,
	"BIGINT":         BigInt,
	"TINYINT":        TinyInt,
	"BIT":            Bit,
	"WCHAR":          WChar,
	"WVARCHAR":       WVarChar,
	"WLONGVARCHAR":   WLongVarChar,
	"GUID":           GUID,
}

var sqlTypeToName = invertMap(nameToSQLType)

var cTypeToName = map[CType]string{
	CChar:          "SQL_C_CHAR",
	CWChar:         "SQL_C_WCHAR",
	CSBigInt:       "SQL_C_SBIGINT",
	CUBigInt:       "SQL_C_UBIGINT",
	CSLong:         "SQL_C_SLONG",
	CSShort:        "SQL_C_SSHORT",
	CSTinyInt:      "SQL_C_STINYINT",
	CDouble:        "SQL_C_DOUBLE",
	CFloat:         "SQL_C_FLOAT",
	CBit:           "SQL_C_BIT",
	CNumeric:       "SQL_C_NUMERIC",
	CBinary:        "SQL_C_BINARY",
	CTypeDate:      "SQL_C_TYPE_DATE",
	CTypeTime:      "SQL_C_TYPE_TIME",
	CTypeTimestamp: "SQL_C_TYPE_TIMESTAMP",
	CGUID:          "SQL_C_GUID",
}

func invertMap(m map[string]SQLType) map[SQLType]string {
	inv := make(map[SQLType]string)
	for k, v := range m {
		if _, ok := inv[v]; ok {
			panic("failed to create sqlTypeToName map due to duplicated values")
		}
		inv[v] = k
	}
	return inv
}

func (t SQLType) String() string {
	if name, ok := sqlTypeToName[t]; ok {
		return "SQL_" + name
	}
	return fmt.Sprintf("SQL_TYPE(%d)", int16(t))
}

func (t CType) String() string {
	if name, ok := cTypeToName[t]; ok {
		return name
	}
	return fmt.Sprintf("SQL_C_TYPE(%d)", int16(t))
}

// SQLTypeFromName returns the SQL type for a name such as "varchar" or "SQL_TYPE_DATE".
func SQLTypeFromName(name string) (SQLType, bool) {
	t, ok := nameToSQLType[strings.TrimPrefix(strings.ToUpper(name), "SQL_")]
	return t, ok
}

// IsCharacter reports whether t is one of the narrow or wide character types.
func (t SQLType) IsCharacter() bool {
	switch t {
	case Char, VarChar, LongVarChar, WChar, WVarChar, WLongVarChar:
		return true
	}
	return false
}

// IsWide reports whether t declares a wide (UTF-16) character column.
func (t SQLType) IsWide() bool {
	return t == WChar || t == WVarChar || t == WLongVarChar
}
