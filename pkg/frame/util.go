package frame

// Unique returns the distinct values in first-seen order. Unlike a
// sort-based dedup it never reorders and never changes element types.
func Unique[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Identity returns its argument unchanged. Useful as a default transform
// in pipeline stages.
func Identity[T any](v T) T { return v }

// HasColumns reports whether the frame has every one of the named columns.
func HasColumns(df *DataFrame, names ...string) bool {
	for _, name := range names {
		if _, ok := df.Column(name); !ok {
			return false
		}
	}
	return true
}

// WithTemporaryKey inserts key into m for the duration of fn and deletes
// it afterwards, also when fn panics.
func WithTemporaryKey[K comparable, V any](m map[K]V, key K, value V, fn func() error) error {
	m[key] = value
	defer delete(m, key)
	return fn()
}

// WithTemporaryColumn appends col to the frame for the duration of fn and
// removes it afterwards, also when fn panics.
func WithTemporaryColumn(df *DataFrame, col Column, fn func() error) error {
	if err := df.AppendColumn(col); err != nil {
		return err
	}
	defer func() { _ = df.DropColumn(col.Name) }()
	return fn()
}
