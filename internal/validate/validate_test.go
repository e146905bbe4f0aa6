package validate_test

import (
	"testing"

	"padelmania/internal/validate"
)

func TestID(t *testing.T) {
	if _, ok := validate.ID("grip-wave-control"); !ok {
		t.Fatal("plain id should pass")
	}
	for _, bad := range []string{"", "a b", "<script>", "../../etc"} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("%q should fail", bad)
		}
	}
}

func TestPriceBound(t *testing.T) {
	if p := validate.PriceBound("15000"); p == nil || *p != 15000 {
		t.Fatalf("want 15000, got %v", p)
	}
	// non-numeric and negative bounds are ignored, not errors
	for _, bad := range []string{"", "abc", "-5", "12.5"} {
		if p := validate.PriceBound(bad); p != nil {
			t.Fatalf("%q should read as no bound, got %d", bad, *p)
		}
	}
}

func TestQty(t *testing.T) {
	if validate.Qty(3) != 3 {
		t.Fatal("plain qty")
	}
	if validate.Qty(0) != 1 || validate.Qty(-7) != 1 {
		t.Fatal("non-positive qty should default to 1")
	}
	if validate.Qty(9999) != 50 {
		t.Fatal("qty should clamp at 50")
	}
}

func TestTags(t *testing.T) {
	got := validate.Tags("premium, Eco-Friendly ,,<x>,")
	if len(got) != 2 || got[0] != "premium" || got[1] != "eco-friendly" {
		t.Fatalf("got %v", got)
	}
	if validate.Tags("") != nil {
		t.Fatal("empty input should yield no tags")
	}
}
