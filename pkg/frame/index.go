package frame

// Index is the row-labeling sequence of a DataFrame.
type Index interface {
	// Len returns the number of row labels.
	Len() int
	// Regular reports whether the index is a dense 0..n-1 sequence.
	// Regularity is a structural property of the index type, not
	// something decided by scanning label values.
	Regular() bool
	// Labels returns the label values in row order.
	Labels() []any
}

// RangeIndex is a dense 0..n-1 row labeling.
type RangeIndex struct {
	n int
}

// NewRangeIndex creates a regular index over n rows.
func NewRangeIndex(n int) RangeIndex {
	if n < 0 {
		n = 0
	}
	return RangeIndex{n: n}
}

// Len returns the number of rows covered by the index.
func (r RangeIndex) Len() int { return r.n }

// Regular always reports true for a RangeIndex.
func (r RangeIndex) Regular() bool { return true }

// Labels materializes the 0..n-1 sequence.
func (r RangeIndex) Labels() []any {
	labels := make([]any, r.n)
	for i := range labels {
		labels[i] = i
	}
	return labels
}

// LabelIndex is an arbitrary row labeling. Labels may repeat and need not
// be ordered. A LabelIndex is never regular, even when its values happen
// to spell out a 0..n-1 sequence.
type LabelIndex struct {
	labels []any
}

// NewLabelIndex creates an index from explicit row labels.
func NewLabelIndex(labels ...any) LabelIndex {
	copied := make([]any, len(labels))
	copy(copied, labels)
	return LabelIndex{labels: copied}
}

// Len returns the number of row labels.
func (l LabelIndex) Len() int { return len(l.labels) }

// Regular always reports false for a LabelIndex.
func (l LabelIndex) Regular() bool { return false }

// Labels returns a copy of the label values.
func (l LabelIndex) Labels() []any {
	copied := make([]any, len(l.labels))
	copy(copied, l.labels)
	return copied
}
