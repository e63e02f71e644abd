package frame

import (
	"errors"
	"reflect"
	"testing"
)

func TestCollapse_InnerLevelSuffices(t *testing.T) {
	m := MultiColumns{{"a", "1"}, {"a", "2"}}

	got, err := m.Collapse(DefaultSep)
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	want := []string{"1", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapse = %v, want %v", got, want)
	}
}

func TestCollapse_FullLabelNeeded(t *testing.T) {
	m := MultiColumns{{"a", "1"}, {"a", "2"}, {"b", "1"}, {"b", "2"}}

	got, err := m.Collapse(DefaultSep)
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	want := []string{"a_1", "a_2", "b_1", "b_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapse = %v, want %v", got, want)
	}
}

func TestCollapse_MiddleSuffix(t *testing.T) {
	// The shared outer level drops off, two of three levels remain.
	m := MultiColumns{
		{"z", "a", "1"}, {"z", "a", "2"},
		{"z", "b", "1"}, {"z", "b", "2"},
	}

	got, err := m.Collapse(DefaultSep)
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	want := []string{"a_1", "a_2", "b_1", "b_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapse = %v, want %v", got, want)
	}
}

func TestCollapse_DuplicateLabels(t *testing.T) {
	m := MultiColumns{{"a", "1"}, {"a", "1"}}

	_, err := m.Collapse(DefaultSep)
	if !errors.Is(err, ErrDuplicateColumns) {
		t.Fatalf("err = %v, want ErrDuplicateColumns", err)
	}
}

func TestCollapse_CustomSeparator(t *testing.T) {
	m := MultiColumns{{"a", "1"}, {"b", "1"}}

	got, err := m.Collapse(".")
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	want := []string{"a.1", "b.1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapse = %v, want %v", got, want)
	}
}

func TestCollapse_TokenBoundaries(t *testing.T) {
	// The inner tokens collide, so the distinctness check has to see the
	// full tuples rather than their joined strings.
	m := MultiColumns{{"a_b", "c"}, {"a", "c"}}

	got, err := m.Collapse(DefaultSep)
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	want := []string{"a_b_c", "a_c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Collapse = %v, want %v", got, want)
	}
}

func TestCollapse_Empty(t *testing.T) {
	got, err := MultiColumns(nil).Collapse(DefaultSep)
	if err != nil {
		t.Fatalf("Collapse: %v", err)
	}
	if got != nil {
		t.Errorf("Collapse = %v, want nil", got)
	}
}

func TestCollapse_RaggedLabels(t *testing.T) {
	m := MultiColumns{{"a", "1"}, {"b"}}

	if _, err := m.Collapse(DefaultSep); err == nil {
		t.Fatal("expected an error for ragged labels")
	}
}

func TestMultiColumns_Levels(t *testing.T) {
	if got := (MultiColumns{}).Levels(); got != 0 {
		t.Errorf("Levels = %d, want 0", got)
	}
	if got := (MultiColumns{{"a", "b", "c"}}).Levels(); got != 3 {
		t.Errorf("Levels = %d, want 3", got)
	}
}
