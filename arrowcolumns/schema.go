package arrowcolumns

import (
	"context"

	"github.com/apache/arrow-go/v18/arrow"

	sf "github.com/odbcfield/odbcfield"
	ia "github.com/odbcfield/odbcfield/internal/arrow"
)

// ArrowType returns the arrow data type a column bound with d converts to.
func ArrowType(ctx context.Context, d sf.Description) (arrow.DataType, error) {
	switch d := d.(type) {
	case sf.BigIntDescription, sf.IntegerDescription, sf.SmallIntDescription, sf.TinyIntDescription:
		return arrow.PrimitiveTypes.Int64, nil
	case sf.DoubleDescription, sf.RealDescription:
		return arrow.PrimitiveTypes.Float64, nil
	case sf.BooleanDescription:
		return arrow.FixedWidthTypes.Boolean, nil
	case sf.DecimalDescription:
		return &arrow.Decimal128Type{Precision: d.Precision, Scale: d.Scale}, nil
	case sf.StringDescription, sf.UnicodeDescription, sf.GUIDDescription:
		return arrow.BinaryTypes.String, nil
	case sf.BinaryDescription:
		return arrow.BinaryTypes.Binary, nil
	case sf.DateDescription:
		return arrow.FixedWidthTypes.Date32, nil
	case sf.TimeDescription:
		return arrow.FixedWidthTypes.Time64ns, nil
	case sf.TimestampDescription:
		return &arrow.TimestampType{Unit: ia.GetTimestampOption(ctx).Unit()}, nil
	}
	return nil, &sf.FieldError{
		Number:      sf.ErrCodeUnsupportedType,
		Message:     "no arrow type for %v",
		MessageArgs: []interface{}{d.Name()},
	}
}

// Schema returns the arrow schema of a record built from cols.
func Schema(ctx context.Context, cols []Column) (*arrow.Schema, error) {
	fields := make([]arrow.Field, len(cols))
	for i, col := range cols {
		t, err := ArrowType(ctx, col.Description)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{
			Name:     col.Name,
			Type:     t,
			Nullable: col.Nullable,
		}
	}
	return arrow.NewSchema(fields, nil), nil
}
