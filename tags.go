package odbcfield

import (
	"github.com/odbcfield/odbcfield/internal/types"
)

type (
	// SQLType is the declared database type of a column or parameter (SQL_xxx).
	SQLType = types.SQLType
	// CType is the in-memory representation a buffer is bound with (SQL_C_xxx).
	CType = types.CType
)

// SQL type codes accepted by the Registry.
const (
	SQLChar          = types.Char
	SQLVarChar       = types.VarChar
	SQLLongVarChar   = types.LongVarChar
	SQLWChar         = types.WChar
	SQLWVarChar      = types.WVarChar
	SQLWLongVarChar  = types.WLongVarChar
	SQLNumeric       = types.Numeric
	SQLDecimal       = types.Decimal
	SQLBigInt        = types.BigInt
	SQLInteger       = types.Integer
	SQLSmallInt      = types.SmallInt
	SQLTinyInt       = types.TinyInt
	SQLBit           = types.Bit
	SQLBoolean       = types.Boolean
	SQLFloat         = types.Float
	SQLReal          = types.Real
	SQLDouble        = types.Double
	SQLBinary        = types.Binary
	SQLVarBinary     = types.VarBinary
	SQLLongVarBinary = types.LongVarBinary
	SQLDate          = types.Date
	SQLTime          = types.Time
	SQLTimestamp     = types.Timestamp
	SQLTypeDate      = types.TypeDate
	SQLTypeTime      = types.TypeTime
	SQLTypeTimestamp = types.TypeTimestamp
	SQLGUID          = types.GUID
)

// SQLTypeFromName returns the SQL type for a name such as "varchar" or "SQL_TYPE_DATE".
func SQLTypeFromName(name string) (SQLType, bool) {
	return types.SQLTypeFromName(name)
}
