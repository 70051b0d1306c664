package arrowcolumns

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	sf "github.com/odbcfield/odbcfield"
)

var testColumns = []sf.ColumnInfo{
	{Name: "ID", SQLType: sf.SQLBigInt, Nullable: false},
	{Name: "NAME", SQLType: sf.SQLWVarChar, Size: 16, Nullable: true},
	{Name: "PRICE", SQLType: sf.SQLDecimal, Size: 12, DecimalDigits: 2, Nullable: true},
	{Name: "CREATED", SQLType: sf.SQLTypeTimestamp, Nullable: true},
}

func TestNewColumns(t *testing.T) {
	cols, err := NewColumns(sf.NewRegistry(nil), testColumns, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cols) != len(testColumns) {
		t.Fatalf("expected %v columns, got %v", len(testColumns), len(cols))
	}
	for i, col := range cols {
		if col.Name != testColumns[i].Name || col.Nullable != testColumns[i].Nullable {
			t.Errorf("column %v: unexpected metadata %v/%v", i, col.Name, col.Nullable)
		}
		if col.Buffer.Len() != 3 || col.Buffer.ElementSize() != col.Description.ElementSize() {
			t.Errorf("column %v: buffer of %v x %v bytes does not fit %v", i, col.Buffer.Len(), col.Buffer.ElementSize(), col.Description.Name())
		}
	}
	if _, ok := cols[1].Description.(sf.UnicodeDescription); !ok {
		t.Errorf("expected a unicode description for NAME, got %v", cols[1].Description.Name())
	}

	_, err = NewColumns(sf.NewRegistry(nil), []sf.ColumnInfo{{Name: "GEO", SQLType: -154}}, 3)
	if !errors.Is(err, sf.ErrUnsupportedType) {
		t.Fatalf("expected an unsupported type error, got %v", err)
	}
}

func TestNewRecordAndFill(t *testing.T) {
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)
	ctx := WithTimestampOption(context.Background(), UseMicrosecondTimestamp)

	cols, err := NewColumns(sf.NewRegistry(nil), testColumns, 3)
	if err != nil {
		t.Fatal(err)
	}
	price, err := sf.ParseDecimal("19.99")
	if err != nil {
		t.Fatal(err)
	}
	rows := [][]sf.Field{
		{sf.NewInteger(1), sf.NewInteger(2)},
		{sf.NewText("widget"), sf.Null()},
		{sf.NewDecimal(price), sf.Null()},
		{sf.NewTimestamp(sf.Timestamp{Year: 2024, Month: 2, Day: 29, Hour: 12}), sf.Null()},
	}
	for i, col := range cols {
		if err = sf.WriteColumn(col.Description, col.Buffer, rows[i]); err != nil {
			t.Fatalf("column %v: %v", col.Name, err)
		}
	}

	rec, err := NewRecord(ctx, cols, 2, pool)
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Release()
	if rec.NumRows() != 2 || rec.NumCols() != 4 {
		t.Fatalf("unexpected record shape %vx%v", rec.NumRows(), rec.NumCols())
	}
	s := rec.Schema()
	if s.Field(0).Nullable || !s.Field(1).Nullable {
		t.Errorf("unexpected nullability in %v", s)
	}
	if ts := s.Field(3).Type.(*arrow.TimestampType); ts.Unit != arrow.Microsecond {
		t.Errorf("expected microsecond timestamps, got %v", ts)
	}
	if v := rec.Column(1).(*array.String).Value(0); v != "widget" {
		t.Errorf("expected widget, got %q", v)
	}
	if !rec.Column(2).IsNull(1) {
		t.Error("expected PRICE to be null in row 1")
	}

	target, err := NewColumns(sf.NewRegistry(nil), testColumns, 2)
	if err != nil {
		t.Fatal(err)
	}
	n, err := FillFromRecord(rec, target)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows, got %v", n)
	}
	for i, col := range target {
		got, err := sf.ReadColumn(col.Description, col.Buffer, n)
		if err != nil {
			t.Fatal(err)
		}
		for r, f := range rows[i] {
			if !got[r].Equal(f) {
				t.Errorf("%v row %v: expected %v, got %v", col.Name, r, f, got[r])
			}
		}
	}
}

func TestNewRecordFailureReleases(t *testing.T) {
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)

	cols, err := NewColumns(sf.NewRegistry(nil), testColumns, 1)
	if err != nil {
		t.Fatal(err)
	}
	ts := sf.Timestamp{Year: 9999, Month: 12, Day: 31}
	if err = sf.WriteColumn(cols[3].Description, cols[3].Buffer, []sf.Field{sf.NewTimestamp(ts)}); err != nil {
		t.Fatal(err)
	}
	_, err = NewRecord(context.Background(), cols[3:], 1, pool)
	if !errors.Is(err, sf.ErrBounds) || !strings.Contains(err.Error(), `"CREATED"`) {
		t.Fatalf("expected a bounds error on CREATED, got %v", err)
	}
}

func TestFillFromRecordColumnCount(t *testing.T) {
	pool := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer pool.AssertSize(t, 0)

	b := array.NewInt64Builder(pool)
	b.Append(1)
	arr := b.NewArray()
	b.Release()
	defer arr.Release()
	s := arrow.NewSchema([]arrow.Field{{Name: "ID", Type: arrow.PrimitiveTypes.Int64}}, nil)
	rec := array.NewRecord(s, []arrow.Array{arr}, 1)
	defer rec.Release()

	cols, err := NewColumns(sf.NewRegistry(nil), testColumns, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = FillFromRecord(rec, cols); !errors.Is(err, sf.ErrBounds) {
		t.Fatalf("expected a bounds error, got %v", err)
	}
	if _, err = FillFromRecord(rec, cols[:1]); err != nil {
		t.Fatal(err)
	}
}

func TestSchemaUnsupportedDescription(t *testing.T) {
	_, err := Schema(context.Background(), []Column{{Name: "X", Description: unknownDescription{}}})
	if !errors.Is(err, sf.ErrUnsupportedType) {
		t.Fatalf("expected an unsupported type error, got %v", err)
	}
}

type unknownDescription struct {
	sf.BigIntDescription
}

func (unknownDescription) Name() string { return "unknown" }
