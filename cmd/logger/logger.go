package main

import (
	"bytes"
	"log"
	"strings"

	sf "github.com/odbcfield/odbcfield"
)

func main() {
	buf := &bytes.Buffer{}
	buf2 := &bytes.Buffer{}

	var mylog = sf.GetLogger()
	mylog.SetOutput(buf)
	_ = mylog.SetLogLevel("warn")

	// a driver that reports 12 bytes for a 4 character column truncated the value
	d := sf.StringDescription{MaxLength: 4}
	column, err := sf.NewColumnBuffer(d, 1)
	if err != nil {
		log.Fatal(err)
	}
	e := column.Element(0)
	copy(e.Data, "abcd")
	*e.Indicator = 12
	if _, err = sf.DecodeElement(d, e); err != nil {
		log.Fatal(err)
	}

	var testlog = sf.CreateDefaultLogger()
	_ = testlog.SetLogLevel("debug")
	testlog.SetOutput(buf2)
	if err = sf.SetLogger(testlog); err != nil {
		log.Fatal(err)
	}

	_, err = sf.Describe(sf.ColumnInfo{Name: "GEO", SQLType: -154})
	log.Printf("describe failed as expected: %v", err)
	log.Print("Expect all true values:")

	// verify logger switch
	log.Printf("%t:%t:%t", strings.Contains(buf.String(), "truncated"),
		!strings.Contains(buf.String(), "GEO"),
		strings.Contains(buf2.String(), "GEO"))
}
