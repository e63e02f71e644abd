package frame

import (
	"errors"
	"reflect"
	"testing"
)

func TestWithRegularIndex_RegularFramesUntouched(t *testing.T) {
	df, err := New(Col("a", 4, 3, 2, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = WithRegularIndex(func() error {
		if !df.Index().Regular() {
			t.Error("expected a regular index inside the scope")
		}
		return nil
	}, df)
	if err != nil {
		t.Fatalf("WithRegularIndex: %v", err)
	}

	if !df.Index().Regular() {
		t.Error("expected the regular index to survive the scope")
	}
}

func TestWithRegularIndex_RoundTrip(t *testing.T) {
	df, err := New(Col("a", 3, 2, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := df.SetIndex(NewLabelIndex(3, 0, 0)); err != nil {
		t.Fatalf("SetIndex: %v", err)
	}

	err = WithRegularIndex(func() error {
		if !df.Index().Regular() {
			t.Error("expected a regular index inside the scope")
		}
		return nil
	}, df)
	if err != nil {
		t.Fatalf("WithRegularIndex: %v", err)
	}

	if df.Index().Regular() {
		t.Error("expected the original irregular index to be restored")
	}
	want := []any{3, 0, 0}
	if got := df.Index().Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("restored labels = %v, want %v", got, want)
	}
}

func TestWithRegularIndex_RowCountChanged(t *testing.T) {
	df, err := New(Col("a", 3, 2, 1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := df.SetIndex(NewLabelIndex(11, 12, 13)); err != nil {
		t.Fatalf("SetIndex: %v", err)
	}

	err = WithRegularIndex(func() error {
		return df.Truncate(2)
	}, df)
	if err != nil {
		t.Fatalf("WithRegularIndex: %v", err)
	}

	// The original labels no longer line up with the data.
	if !df.Index().Regular() {
		t.Error("expected the regular index to be kept after a row count change")
	}
	if df.Index().Len() != 2 {
		t.Errorf("index length = %d, want 2", df.Index().Len())
	}
}

func TestWithRegularIndex_MixedFrames(t *testing.T) {
	df1, _ := New(Col("a", 4, 3, 2, 1))
	df2, _ := New(Col("b", 3, 2, 1))
	_ = df2.SetIndex(NewLabelIndex(3, 0, 0))
	df3, _ := New(Col("c", 11, 12, 13))
	_ = df3.SetIndex(NewLabelIndex(11, 12, 13))

	err := WithRegularIndex(func() error {
		for i, df := range []*DataFrame{df1, df2, df3} {
			if !df.Index().Regular() {
				t.Errorf("frame %d: expected a regular index inside the scope", i)
			}
		}
		return nil
	}, df1, df2, df3)
	if err != nil {
		t.Fatalf("WithRegularIndex: %v", err)
	}

	if !df1.Index().Regular() {
		t.Error("df1 should still be regular")
	}
	if got, want := df2.Index().Labels(), []any{3, 0, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("df2 labels = %v, want %v", got, want)
	}
	if got, want := df3.Index().Labels(), []any{11, 12, 13}; !reflect.DeepEqual(got, want) {
		t.Errorf("df3 labels = %v, want %v", got, want)
	}
}

func TestWithRegularIndex_ErrorPassesThrough(t *testing.T) {
	df, _ := New(Col("a", 1, 2))
	_ = df.SetIndex(NewLabelIndex("x", "y"))

	wantErr := errors.New("operation failed")
	err := WithRegularIndex(func() error {
		return wantErr
	}, df)
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	if got, want := df.Index().Labels(), []any{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("labels after error = %v, want %v", got, want)
	}
}

func TestWithRegularIndex_RestoresOnPanic(t *testing.T) {
	df, _ := New(Col("a", 1, 2))
	_ = df.SetIndex(NewLabelIndex("x", "y"))

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected the panic to propagate")
			}
		}()
		_ = WithRegularIndex(func() error {
			panic("boom")
		}, df)
	}()

	if got, want := df.Index().Labels(), []any{"x", "y"}; !reflect.DeepEqual(got, want) {
		t.Errorf("labels after panic = %v, want %v", got, want)
	}
}

func TestWithRegularIndex_NoFrames(t *testing.T) {
	if err := WithRegularIndex(func() error { return nil }); err != nil {
		t.Fatalf("WithRegularIndex: %v", err)
	}
}
