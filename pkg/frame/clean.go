package frame

// ResetIndex installs a regular 0..n-1 index. Unless drop is true, an
// irregular index first has its labels moved into a leading "index"
// column so no information is lost.
func (df *DataFrame) ResetIndex(drop bool) {
	if !df.index.Regular() && !drop {
		labels := df.index.Labels()
		df.cols = append([]Column{{Name: "index", Values: labels}}, df.cols...)
		if levels := df.multi.Levels(); levels > 0 {
			indexLabel := make([]string, levels)
			indexLabel[levels-1] = "index"
			df.multi = append(MultiColumns{indexLabel}, df.multi...)
		}
	}
	df.index = NewRangeIndex(df.NumRows())
}

// CleanIndexes clears up fancy labeling after a reshaping operation:
// hierarchical column labels are collapsed into flat names and the row
// index is reset to regular form, moving irregular row labels into a
// column. The frame is modified in place; use Copy first to keep the
// original.
func (df *DataFrame) CleanIndexes(sep string) error {
	if df.multi != nil {
		names, err := df.multi.Collapse(sep)
		if err != nil {
			return err
		}
		for i := range df.cols {
			df.cols[i].Name = names[i]
		}
		df.multi = nil
	}
	df.ResetIndex(false)
	return nil
}
