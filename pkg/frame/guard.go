package frame

// WithRegularIndex runs fn with every frame's index normalized to a
// regular 0..n-1 sequence, then restores the original indices.
//
// Frames with duplicate or unordered row labels are hard to split and
// recombine, so pipeline operations run against regular indices and the
// caller gets the original labels back afterwards.
//
// A frame whose index is already regular is left alone and not tracked.
// On exit the original index is reinstated only when the frame still has
// the same number of rows; if fn changed the row count the original
// labels no longer line up with the data and the regular index is kept.
// Restoration runs on every exit path, including a panic inside fn, and
// fn's error is returned unchanged.
func WithRegularIndex(fn func() error, dfs ...*DataFrame) error {
	type original struct {
		df  *DataFrame
		idx Index
	}

	var saved []original
	for _, df := range dfs {
		if df == nil || df.index.Regular() {
			continue
		}
		saved = append(saved, original{df: df, idx: df.index})
		df.index = NewRangeIndex(df.NumRows())
	}

	defer func() {
		for _, s := range saved {
			if s.df.NumRows() == s.idx.Len() {
				s.df.index = s.idx
			}
		}
	}()

	return fn()
}
