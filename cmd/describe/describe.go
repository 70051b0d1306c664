// Example: describe a column type, encode one value into a bound buffer and decode it back.
//
//	go run ./cmd/describe -type varchar -size 10 -value hello
//	go run ./cmd/describe -type decimal -size 10 -digits 2 -value -123.45
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	sf "github.com/odbcfield/odbcfield"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	typeName := flag.String("type", "varchar", "SQL type name, e.g. integer, varchar, SQL_TYPE_DATE")
	size := flag.Int("size", 0, "column size")
	digits := flag.Int("digits", 0, "decimal digits")
	value := flag.String("value", "", "value to encode; empty encodes NULL")
	if !flag.Parsed() {
		flag.Parse()
	}

	cfg, err := sf.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config. err: %v", err)
	}
	if err = cfg.Apply(); err != nil {
		log.Fatalf("failed to apply config. err: %v", err)
	}

	sqlType, ok := sf.SQLTypeFromName(*typeName)
	if !ok {
		log.Fatalf("unknown SQL type %q", *typeName)
	}
	reg := sf.NewRegistry(cfg)
	d, err := reg.Describe(sf.ColumnInfo{Name: "C1", SQLType: sqlType, Size: *size, DecimalDigits: *digits})
	if err != nil {
		log.Fatalf("failed to describe column. err: %v", err)
	}
	fmt.Printf("%v: element size %v, C type %v, SQL type %v\n", d.Name(), d.ElementSize(), d.CType(), d.SQLType())

	f := sf.Null()
	if *value != "" {
		if f, err = parseValue(d, *value); err != nil {
			log.Fatalf("failed to parse %q. err: %v", *value, err)
		}
	}

	buf, err := sf.NewColumnBuffer(d, 1)
	if err != nil {
		log.Fatalf("failed to allocate buffer. err: %v", err)
	}
	if err = d.SetField(buf.Element(0), f); err != nil {
		log.Fatalf("failed to encode %v. err: %v", f, err)
	}
	fmt.Printf("indicator: %v\n%v", buf.Indicator(0), hex.Dump(buf.Element(0).Data))

	got, err := sf.DecodeElement(d, buf.Element(0))
	if err != nil {
		log.Fatalf("failed to decode. err: %v", err)
	}
	fmt.Printf("decoded: %v (%v)\n", got, got.Kind())
}

// parseValue reads s as the field variant d stores.
func parseValue(d sf.Description, s string) (sf.Field, error) {
	switch d.(type) {
	case sf.BigIntDescription, sf.IntegerDescription, sf.SmallIntDescription, sf.TinyIntDescription:
		v, err := strconv.ParseInt(s, 10, 64)
		return sf.NewInteger(v), err
	case sf.DoubleDescription, sf.RealDescription:
		v, err := strconv.ParseFloat(s, 64)
		return sf.NewFloat(v), err
	case sf.BooleanDescription:
		v, err := strconv.ParseBool(s)
		return sf.NewBoolean(v), err
	case sf.DecimalDescription:
		v, err := sf.ParseDecimal(s)
		return sf.NewDecimal(v), err
	case sf.BinaryDescription:
		v, err := hex.DecodeString(s)
		return sf.NewBinary(v), err
	case sf.DateDescription:
		t, err := time.Parse(time.DateOnly, s)
		return sf.DateFromTime(t).Field(), err
	case sf.TimeDescription:
		t, err := time.Parse(time.TimeOnly, s)
		return sf.TimeOfDayFromTime(t).Field(), err
	case sf.TimestampDescription:
		t, err := time.Parse("2006-01-02 15:04:05.999999999", s)
		return sf.TimestampFromTime(t).Field(), err
	}
	return sf.NewText(s), nil
}
