// Package frame provides the tabular structure and index bookkeeping used
// by the pipeline DSL: a column-major DataFrame with a row index that is
// either regular (dense 0..n-1) or an arbitrary label sequence, plus
// helpers for scoped index normalization and for collapsing hierarchical
// column labels into flat names.
package frame

import "fmt"

// Column is a named column of values.
type Column struct {
	// Name is the flat column name.
	Name string
	// Values holds the column data in row order.
	Values []any
}

// Col is a convenience constructor for a Column.
func Col(name string, values ...any) Column {
	return Column{Name: name, Values: values}
}

// DataFrame is an ordered 2D container: column-major data, a row index,
// and optionally hierarchical column labels.
type DataFrame struct {
	cols  []Column
	multi MultiColumns // nil when column labels are flat
	index Index
}

// New creates a DataFrame with a regular index.
// All columns must have the same length.
func New(cols ...Column) (*DataFrame, error) {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0].Values)
	}
	for _, c := range cols {
		if len(c.Values) != rows {
			return nil, fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), rows)
		}
	}
	return &DataFrame{
		cols:  cols,
		index: NewRangeIndex(rows),
	}, nil
}

// NewMulti creates a DataFrame whose columns carry hierarchical labels.
// One label tuple is required per column; columns without a flat name get
// the fully joined label as their name until the labels are collapsed.
func NewMulti(labels MultiColumns, cols ...Column) (*DataFrame, error) {
	if len(labels) != len(cols) {
		return nil, fmt.Errorf("%d column labels for %d columns", len(labels), len(cols))
	}
	if err := labels.Validate(); err != nil {
		return nil, err
	}
	df, err := New(cols...)
	if err != nil {
		return nil, err
	}
	for i := range df.cols {
		if df.cols[i].Name == "" {
			df.cols[i].Name = labels.join(i, DefaultSep)
		}
	}
	df.multi = labels
	return df, nil
}

// NumRows returns the number of rows.
func (df *DataFrame) NumRows() int {
	if len(df.cols) == 0 {
		return df.index.Len()
	}
	return len(df.cols[0].Values)
}

// NumCols returns the number of columns.
func (df *DataFrame) NumCols() int { return len(df.cols) }

// Names returns the flat column names in order.
func (df *DataFrame) Names() []string {
	names := make([]string, len(df.cols))
	for i, c := range df.cols {
		names[i] = c.Name
	}
	return names
}

// MultiNames returns the hierarchical column labels, or nil when the
// column labels are flat.
func (df *DataFrame) MultiNames() MultiColumns { return df.multi }

// Column returns the column with the given name. The returned pointer
// aliases the frame's storage, so callers may mutate values in place.
func (df *DataFrame) Column(name string) (*Column, bool) {
	for i := range df.cols {
		if df.cols[i].Name == name {
			return &df.cols[i], true
		}
	}
	return nil, false
}

// Index returns the current row index.
func (df *DataFrame) Index() Index { return df.index }

// SetIndex replaces the row index. The new index must cover exactly the
// current number of rows.
func (df *DataFrame) SetIndex(idx Index) error {
	if idx.Len() != df.NumRows() {
		return fmt.Errorf("index length %d does not match %d rows", idx.Len(), df.NumRows())
	}
	df.index = idx
	return nil
}

// AppendColumn adds a column. Its length must match the current rows.
func (df *DataFrame) AppendColumn(c Column) error {
	if len(c.Values) != df.NumRows() {
		return fmt.Errorf("column %q has %d values, want %d", c.Name, len(c.Values), df.NumRows())
	}
	if df.multi != nil {
		return fmt.Errorf("cannot append column %q while column labels are hierarchical", c.Name)
	}
	df.cols = append(df.cols, c)
	return nil
}

// DropColumn removes the named column.
func (df *DataFrame) DropColumn(name string) error {
	for i := range df.cols {
		if df.cols[i].Name == name {
			df.cols = append(df.cols[:i], df.cols[i+1:]...)
			if df.multi != nil {
				df.multi = append(df.multi[:i], df.multi[i+1:]...)
			}
			return nil
		}
	}
	return fmt.Errorf("no column named %q", name)
}

// AppendRow appends one row of values, one per column. The index must be
// regular; an irregular index has no label to give the new row.
func (df *DataFrame) AppendRow(values ...any) error {
	if len(values) != len(df.cols) {
		return fmt.Errorf("%d values for %d columns", len(values), len(df.cols))
	}
	if !df.index.Regular() {
		return fmt.Errorf("cannot append a row under an irregular index; reset the index first")
	}
	for i := range df.cols {
		df.cols[i].Values = append(df.cols[i].Values, values[i])
	}
	df.index = NewRangeIndex(df.NumRows())
	return nil
}

// Truncate keeps the first n rows and discards the rest.
func (df *DataFrame) Truncate(n int) error {
	if n < 0 || n > df.NumRows() {
		return fmt.Errorf("truncate to %d rows, have %d", n, df.NumRows())
	}
	for i := range df.cols {
		df.cols[i].Values = df.cols[i].Values[:n]
	}
	if df.index.Regular() {
		df.index = NewRangeIndex(n)
	} else {
		df.index = NewLabelIndex(df.index.Labels()[:n]...)
	}
	return nil
}

// Copy returns an independent copy of the frame. Column values are copied
// one level deep.
func (df *DataFrame) Copy() *DataFrame {
	cols := make([]Column, len(df.cols))
	for i, c := range df.cols {
		values := make([]any, len(c.Values))
		copy(values, c.Values)
		cols[i] = Column{Name: c.Name, Values: values}
	}
	var multi MultiColumns
	if df.multi != nil {
		multi = make(MultiColumns, len(df.multi))
		for i, label := range df.multi {
			multi[i] = append([]string(nil), label...)
		}
	}
	return &DataFrame{cols: cols, multi: multi, index: df.index}
}
