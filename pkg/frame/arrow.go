package frame

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ToArrow converts the frame into an Arrow record batch so it can move
// through columnar transports. Supported column types are int/int64,
// float64, string, and bool; nil values become nulls. Hierarchical column
// labels must be collapsed first. The caller owns the returned record and
// must Release it.
func (df *DataFrame) ToArrow(mem memory.Allocator) (arrow.Record, error) {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	if df.multi != nil {
		return nil, fmt.Errorf("collapse hierarchical column labels before converting to arrow")
	}

	fields := make([]arrow.Field, len(df.cols))
	for i, c := range df.cols {
		dt, err := columnType(c)
		if err != nil {
			return nil, err
		}
		fields[i] = arrow.Field{Name: c.Name, Type: dt, Nullable: true}
	}

	schema := arrow.NewSchema(fields, nil)
	rb := array.NewRecordBuilder(mem, schema)
	defer rb.Release()

	for i, c := range df.cols {
		if err := appendColumn(rb.Field(i), c); err != nil {
			return nil, err
		}
	}
	return rb.NewRecord(), nil
}

// FromArrow converts an Arrow record batch into a frame with a regular
// index. Nulls become nil values.
func FromArrow(rec arrow.Record) (*DataFrame, error) {
	cols := make([]Column, int(rec.NumCols()))
	for i := range cols {
		values, err := arrayValues(rec.Column(i))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", rec.ColumnName(i), err)
		}
		cols[i] = Column{Name: rec.ColumnName(i), Values: values}
	}
	return New(cols...)
}

// columnType infers the Arrow type from the first non-nil value.
// An all-nil column maps to a nullable string column.
func columnType(c Column) (arrow.DataType, error) {
	for _, v := range c.Values {
		switch v.(type) {
		case nil:
			continue
		case int, int64:
			return arrow.PrimitiveTypes.Int64, nil
		case float64:
			return arrow.PrimitiveTypes.Float64, nil
		case bool:
			return arrow.FixedWidthTypes.Boolean, nil
		case string:
			return arrow.BinaryTypes.String, nil
		default:
			return nil, fmt.Errorf("column %q: unsupported value type %T", c.Name, v)
		}
	}
	return arrow.BinaryTypes.String, nil
}

func appendColumn(b array.Builder, c Column) error {
	for _, v := range c.Values {
		if v == nil {
			b.AppendNull()
			continue
		}
		switch fb := b.(type) {
		case *array.Int64Builder:
			switch n := v.(type) {
			case int:
				fb.Append(int64(n))
			case int64:
				fb.Append(n)
			default:
				return fmt.Errorf("column %q: value %v (%T) in int64 column", c.Name, v, v)
			}
		case *array.Float64Builder:
			f, ok := v.(float64)
			if !ok {
				return fmt.Errorf("column %q: value %v (%T) in float64 column", c.Name, v, v)
			}
			fb.Append(f)
		case *array.BooleanBuilder:
			t, ok := v.(bool)
			if !ok {
				return fmt.Errorf("column %q: value %v (%T) in bool column", c.Name, v, v)
			}
			fb.Append(t)
		case *array.StringBuilder:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("column %q: value %v (%T) in string column", c.Name, v, v)
			}
			fb.Append(s)
		default:
			return fmt.Errorf("column %q: unsupported builder %T", c.Name, b)
		}
	}
	return nil
}

func arrayValues(arr arrow.Array) ([]any, error) {
	values := make([]any, arr.Len())
	for r := 0; r < arr.Len(); r++ {
		if arr.IsNull(r) {
			continue
		}
		switch a := arr.(type) {
		case *array.Int64:
			values[r] = a.Value(r)
		case *array.Float64:
			values[r] = a.Value(r)
		case *array.Boolean:
			values[r] = a.Value(r)
		case *array.String:
			values[r] = a.Value(r)
		default:
			return nil, fmt.Errorf("unsupported arrow array %T", arr)
		}
	}
	return values, nil
}
