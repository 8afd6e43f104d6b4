package models

import "testing"

func TestCellKindInspection(t *testing.T) {
	tests := []struct {
		cell    Cell
		kind    Kind
		missing bool
		numeric bool
	}{
		{Missing(), KindMissing, true, false},
		{Int(42), KindInt, false, true},
		{Float(3.14), KindFloat, false, true},
		{Bool(true), KindBool, false, false},
		{Text("hello"), KindText, false, false},
	}

	for _, tt := range tests {
		if got := tt.cell.Kind(); got != tt.kind {
			t.Errorf("Kind() of %v = %v, expected %v", tt.cell, got, tt.kind)
		}
		if got := tt.cell.IsMissing(); got != tt.missing {
			t.Errorf("IsMissing() of %v = %v, expected %v", tt.cell, got, tt.missing)
		}
		if got := tt.cell.IsNumeric(); got != tt.numeric {
			t.Errorf("IsNumeric() of %v = %v, expected %v", tt.cell, got, tt.numeric)
		}
	}
}

func TestCellTypedExtraction(t *testing.T) {
	if v, ok := Int(7).Int(); !ok || v != 7 {
		t.Errorf("Int extraction = %v, %v", v, ok)
	}
	if _, ok := Int(7).Float(); ok {
		t.Error("Int cell must not extract as float")
	}
	if _, ok := Text("7").Int(); ok {
		t.Error("Text cell must not coerce to int")
	}
	if v, ok := Bool(true).Bool(); !ok || !v {
		t.Errorf("Bool extraction = %v, %v", v, ok)
	}
	if v, ok := Text("x").Text(); !ok || v != "x" {
		t.Errorf("Text extraction = %v, %v", v, ok)
	}
	if _, ok := Missing().Int(); ok {
		t.Error("Missing cell must not extract as int")
	}
}

func TestCellNumberCommonScale(t *testing.T) {
	if v, ok := Int(4).Number(); !ok || v != 4.0 {
		t.Errorf("Number() of Int(4) = %v, %v", v, ok)
	}
	if v, ok := Float(4.5).Number(); !ok || v != 4.5 {
		t.Errorf("Number() of Float(4.5) = %v, %v", v, ok)
	}
	if _, ok := Text("4").Number(); ok {
		t.Error("Number() of text must not succeed")
	}
	if _, ok := Missing().Number(); ok {
		t.Error("Number() of missing must not succeed")
	}
}

func TestCellCanonicalString(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Int(42), "42"},
		{Int(-7), "-7"},
		{Float(3.5), "3.5"},
		{Float(1.0), "1"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Text("hello"), "hello"},
		{Missing(), ""},
	}

	for _, tt := range tests {
		if got := tt.cell.String(); got != tt.want {
			t.Errorf("String() of %#v = %q, expected %q", tt.cell, got, tt.want)
		}
	}
}

func TestCellEquality(t *testing.T) {
	if !Int(1).Equal(Int(1)) {
		t.Error("equal ints must compare equal")
	}
	if Int(1).Equal(Int(2)) {
		t.Error("different ints must not compare equal")
	}
	// Cross-variant comparison is always unequal, never an error.
	if Int(1).Equal(Float(1.0)) {
		t.Error("int and float cells must not compare equal")
	}
	if Text("true").Equal(Bool(true)) {
		t.Error("text and bool cells must not compare equal")
	}
	if !Missing().Equal(Missing()) {
		t.Error("missing must equal missing")
	}
	if Missing().Equal(Text("")) {
		t.Error("missing must not equal empty text")
	}
}

func TestCellOrdering(t *testing.T) {
	if less, ok := Int(1).Less(Int(2)); !ok || !less {
		t.Errorf("Int(1) < Int(2) = %v, %v", less, ok)
	}
	if less, ok := Text("a").Less(Text("b")); !ok || !less {
		t.Errorf("Text ordering = %v, %v", less, ok)
	}
	if less, ok := Bool(false).Less(Bool(true)); !ok || !less {
		t.Errorf("Bool ordering = %v, %v", less, ok)
	}
	if _, ok := Int(1).Less(Float(2.0)); ok {
		t.Error("cross-variant cells must be unordered")
	}
	if _, ok := Missing().Less(Missing()); ok {
		t.Error("missing cells must be unordered")
	}
}
