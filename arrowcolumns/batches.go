package arrowcolumns

import (
	"context"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	sf "github.com/odbcfield/odbcfield"
	"github.com/odbcfield/odbcfield/internal/logger"
)

// Column is one bound result column or parameter array: its buffer and the
// description the buffer was bound with.
type Column struct {
	Name        string
	Description sf.Description
	Buffer      *sf.MultiValueBuffer
	Nullable    bool
}

// NewColumns describes cols with reg and allocates a buffer of rows elements
// for each, ready to be bound for a block fetch.
func NewColumns(reg *sf.Registry, cols []sf.ColumnInfo, rows int) ([]Column, error) {
	descriptions, err := reg.DescribeAll(cols)
	if err != nil {
		return nil, err
	}
	columns := make([]Column, len(cols))
	for i, d := range descriptions {
		buf, err := sf.NewColumnBuffer(d, rows)
		if err != nil {
			return nil, err
		}
		columns[i] = Column{
			Name:        cols[i].Name,
			Description: d,
			Buffer:      buf,
			Nullable:    cols[i].Nullable,
		}
	}
	return columns, nil
}

// NewRecord converts the first rows elements of every column into one arrow
// record. The caller owns the record and must Release it.
func NewRecord(ctx context.Context, cols []Column, rows int, pool memory.Allocator) (arrow.Record, error) {
	s, err := Schema(ctx, cols)
	if err != nil {
		return nil, err
	}
	arrays := make([]arrow.Array, 0, len(cols))
	defer func() {
		for _, a := range arrays {
			a.Release()
		}
	}()
	for _, col := range cols {
		a, err := ToArrow(ctx, col.Description, col.Buffer, rows, pool)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		arrays = append(arrays, a)
	}
	logger.GetLogger().Tracef("built arrow record of %v columns and %v rows", len(cols), rows)
	return array.NewRecord(s, arrays, int64(rows)), nil
}

// FillFromRecord encodes every column of rec into the matching column buffer,
// by position, for a parameter array bind. It returns the number of rows written.
func FillFromRecord(rec arrow.Record, cols []Column) (int, error) {
	if int(rec.NumCols()) != len(cols) {
		return 0, &sf.FieldError{
			Number:      sf.ErrCodeBounds,
			Message:     "record has %v columns, %v buffers given",
			MessageArgs: []interface{}{rec.NumCols(), len(cols)},
		}
	}
	for i, col := range cols {
		if err := FromArrow(rec.Column(i), col.Description, col.Buffer); err != nil {
			return 0, fmt.Errorf("column %q: %w", col.Name, err)
		}
	}
	return int(rec.NumRows()), nil
}
