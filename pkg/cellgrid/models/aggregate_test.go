package models

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func numericColumn(t *testing.T, values ...Cell) *Sheet {
	t.Helper()
	kind := KindFloat
	s, err := NewSheet([]Column{{Name: "v", Kind: kind}})
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	for _, v := range values {
		if err := s.InsertRow([]Cell{v}); err != nil {
			t.Fatalf("InsertRow failed: %v", err)
		}
	}
	return s
}

func TestMean(t *testing.T) {
	s := movieSheet(t)
	got, err := s.Mean("review")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if !almostEqual(got, 3.68) {
		t.Errorf("mean of review = %v, expected 3.68", got)
	}
}

func TestMeanSkipsMissing(t *testing.T) {
	s := numericColumn(t, Float(2.0), Missing(), Float(4.0))
	got, err := s.Mean("v")
	if err != nil {
		t.Fatalf("Mean failed: %v", err)
	}
	if !almostEqual(got, 3.0) {
		t.Errorf("mean = %v, expected 3 (missing excluded from the sample)", got)
	}
}

func TestMaxMin(t *testing.T) {
	s := movieSheet(t)

	if got, err := s.Max("review"); err != nil || !almostEqual(got, 5.0) {
		t.Errorf("max review = %v, %v", got, err)
	}
	if got, err := s.Min("review"); err != nil || !almostEqual(got, 1.0) {
		t.Errorf("min review = %v, %v", got, err)
	}
	// Int columns are compared on the same numeric scale.
	if got, err := s.Max("release date"); err != nil || !almostEqual(got, 2017) {
		t.Errorf("max release date = %v, %v", got, err)
	}
	if got, err := s.Min("release date"); err != nil || !almostEqual(got, 1997) {
		t.Errorf("min release date = %v, %v", got, err)
	}
}

func TestMinWithAllPositiveValues(t *testing.T) {
	// Regression guard: min must come from the data, not from a zero
	// accumulator.
	s := numericColumn(t, Float(7.5), Float(9.25), Float(8.0))
	got, err := s.Min("v")
	if err != nil {
		t.Fatalf("Min failed: %v", err)
	}
	if !almostEqual(got, 7.5) {
		t.Errorf("min = %v, expected 7.5", got)
	}
}

func TestMaxWithAllNegativeValues(t *testing.T) {
	s := numericColumn(t, Float(-3.0), Float(-1.5), Float(-8.0))
	got, err := s.Max("v")
	if err != nil {
		t.Fatalf("Max failed: %v", err)
	}
	if !almostEqual(got, -1.5) {
		t.Errorf("max = %v, expected -1.5", got)
	}
}

func TestMedianEvenCount(t *testing.T) {
	s := numericColumn(t, Float(4.0), Float(1.0), Float(3.0), Float(2.0))
	got, err := s.Median("v")
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if !almostEqual(got, 2.5) {
		t.Errorf("median of [1 2 3 4] = %v, expected 2.5", got)
	}
}

func TestMedianOddCount(t *testing.T) {
	s := movieSheet(t)
	got, err := s.Median("review")
	if err != nil {
		t.Fatalf("Median failed: %v", err)
	}
	if !almostEqual(got, 4.2) {
		t.Errorf("median of reviews = %v, expected 4.2", got)
	}
}

func TestVariancePopulation(t *testing.T) {
	// Population variance divides by N, not N-1.
	s := movieSheet(t)
	got, err := s.Variance("review")
	if err != nil {
		t.Fatalf("Variance failed: %v", err)
	}
	if !almostEqual(got, 2.0536) {
		t.Errorf("variance of reviews = %v, expected 2.0536", got)
	}
}

func TestMode(t *testing.T) {
	s := movieSheet(t)
	cell, count, err := s.Mode("director")
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if name, _ := cell.Text(); name != "quintin" || count != 2 {
		t.Errorf("mode = %v x%d, expected quintin x2", cell, count)
	}
}

func TestModeTieBreak(t *testing.T) {
	// a b b a: b reaches count 2 first, at row 3.
	s, err := NewSheet([]Column{{Name: "v", Kind: KindText}})
	if err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	for _, v := range []string{"a", "b", "b", "a"} {
		if err := s.InsertRow([]Cell{Text(v)}); err != nil {
			t.Fatalf("InsertRow failed: %v", err)
		}
	}
	cell, count, err := s.Mode("v")
	if err != nil {
		t.Fatalf("Mode failed: %v", err)
	}
	if v, _ := cell.Text(); v != "b" || count != 2 {
		t.Errorf("mode = %v x%d, expected b x2 (first to reach the max)", cell, count)
	}
}

func TestModeOnNonNumericColumn(t *testing.T) {
	// Mode works on any kind, unlike the numeric aggregations.
	s := movieSheet(t)
	if _, _, err := s.Mode("title"); err != nil {
		t.Errorf("mode on text column failed: %v", err)
	}
}

func TestNumericAggregationTypeMismatch(t *testing.T) {
	s := movieSheet(t)
	for _, fn := range []func(string) (float64, error){s.Mean, s.Max, s.Min, s.Median, s.Variance} {
		_, err := fn("director")
		var mismatch *TypeMismatchError
		if !errors.As(err, &mismatch) {
			t.Errorf("expected TypeMismatchError on text column, got %v", err)
			continue
		}
		if mismatch.Column != "director" || mismatch.Kind != KindText {
			t.Errorf("mismatch detail = %+v", mismatch)
		}
	}
}

func TestAggregationUnknownColumn(t *testing.T) {
	s := movieSheet(t)
	_, err := s.Mean("ratings")
	var unknown *UnknownColumnError
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownColumnError, got %v", err)
	}
	_, _, err = s.Mode("ratings")
	if !errors.As(err, &unknown) {
		t.Errorf("expected UnknownColumnError from mode, got %v", err)
	}
}

func TestAggregationUndefinedNeverZero(t *testing.T) {
	allMissing := numericColumn(t, Missing(), Missing(), Missing())
	empty := numericColumn(t)

	for name, s := range map[string]*Sheet{"all-missing": allMissing, "empty": empty} {
		for _, fn := range []func(string) (float64, error){s.Mean, s.Max, s.Min, s.Median, s.Variance} {
			_, err := fn("v")
			var undef *UndefinedError
			if !errors.As(err, &undef) {
				t.Errorf("%s column: expected UndefinedError, got %v", name, err)
			}
		}
		if _, _, err := s.Mode("v"); err == nil {
			t.Errorf("%s column: mode must be undefined", name)
		}
	}
}
