package frame

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultSep is the separator used when collapsing hierarchical column
// labels into flat names.
const DefaultSep = "_"

// ErrDuplicateColumns is returned when no suffix of the hierarchical
// labels can produce unique flat column names.
var ErrDuplicateColumns = errors.New("cannot create unique column names")

// MultiColumns is a hierarchical column labeling: one label tuple per
// column, every tuple with the same number of levels.
type MultiColumns [][]string

// Levels returns the number of levels per label, 0 for an empty labeling.
func (m MultiColumns) Levels() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Validate checks that every label has at least one token and that all
// labels share the same number of levels.
func (m MultiColumns) Validate() error {
	levels := m.Levels()
	if len(m) > 0 && levels == 0 {
		return fmt.Errorf("column labels must have at least one level")
	}
	for i, label := range m {
		if len(label) != levels {
			return fmt.Errorf("column label %d has %d levels, want %d", i, len(label), levels)
		}
	}
	return nil
}

// Collapse flattens the labeling into one unique name per column,
// preserving column order. The shortest suffix of the label tuples that
// distinguishes every column is joined with sep:
//
//	[(a 1) (a 2)]             -> [1 2]
//	[(a 1) (a 2) (b 1) (b 2)] -> [a_1 a_2 b_1 b_2]
//
// When even the full labels collide, Collapse returns
// ErrDuplicateColumns rather than inventing a fallback name.
func (m MultiColumns) Collapse(sep string) ([]string, error) {
	if len(m) == 0 {
		return nil, nil
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	levels := m.Levels()
	for i := 1; i <= levels; i++ {
		suffixes := make([][]string, len(m))
		for j, label := range m {
			suffixes[j] = label[len(label)-i:]
		}
		if !uniqueTuples(suffixes) {
			continue
		}
		names := make([]string, len(suffixes))
		for j, toks := range suffixes {
			names[j] = strings.Join(toks, sep)
		}
		return names, nil
	}
	return nil, ErrDuplicateColumns
}

// join returns column i's full label joined with sep.
func (m MultiColumns) join(i int, sep string) string {
	return strings.Join(m[i], sep)
}

// uniqueTuples reports whether the token tuples are pairwise distinct.
// Tokens are joined with NUL so token boundaries cannot collide.
func uniqueTuples(tuples [][]string) bool {
	seen := make(map[string]struct{}, len(tuples))
	for _, toks := range tuples {
		key := strings.Join(toks, "\x00")
		if _, ok := seen[key]; ok {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
