/*
Package odbcfield converts between Field values and the fixed-layout buffers an
ODBC driver reads and writes when columns and parameters are bound.

# Fields

Field is a tagged union over NULL, INTEGER, FLOAT, DECIMAL, TEXT, BINARY,
BOOLEAN, DATE, TIME and TIMESTAMP. Fields are plain comparable values:

	f := odbcfield.NewDate(2015, 12, 31)
	f.Equal(odbcfield.NewDate(2015, 12, 31)) // true
	f.Equal(odbcfield.NewText("2015-12-31")) // false, no coercion
	odbcfield.Null().Equal(odbcfield.Null()) // true

# Buffers and indicators

A MultiValueBuffer owns ElementSize*Len bytes plus one indicator per element.
An indicator holds the byte length of the element's data, NullData for SQL
NULL, or Unset until something writes the element. DataPointer and
IndicatorPointer are what SQLBindCol and SQLBindParameter receive.

# Descriptions

A Description knows the struct size and type tags of one SQL type and converts
one element to and from a Field:

	d := odbcfield.DateDescription{}
	buf, _ := odbcfield.NewMultiValueBuffer(d.ElementSize(), 1)
	e := buf.Element(0)
	_ = d.SetField(e, odbcfield.NewDate(2015, 12, 31)) // *e.Indicator == 6
	f, _ := odbcfield.DecodeElement(d, e)             // DATE 2015-12-31

MakeField is only defined for elements that are not NULL; DecodeElement does
the indicator check first.

# Choosing descriptions

A Registry maps the SQL type reported by SQLDescribeCol to a description,
sizing character, binary and decimal columns from the column metadata and a
Config. Unsupported types fail in Describe, before any row is fetched.

	reg := odbcfield.NewRegistry(nil)
	d, err := reg.Describe(odbcfield.ColumnInfo{Name: "c1", SQLType: odbcfield.SQLVarChar, Size: 20})

Character columns reporting length 0 (unknown or MAX) get
Config.VarcharMaxCharacterLimit characters. Values longer than an element on
encode are rejected, never truncated.

# Logging

The package logs through a FieldLogger, by default a logrus logger at error
level writing to stderr. Use SetLogger or Config.Apply to change it.
*/
package odbcfield
