package matching

import "testing"

func TestCombine_BatchFormula(t *testing.T) {
	// 0.65*0.8 + 0.25*0.5 + 0.10*1.0 = 0.76
	if got := Combine(0.8, 0.5, 1.0, ModeBatch); got != 76 {
		t.Fatalf("expected 76, got %d", got)
	}
}

func TestCombine_AdHocFormula(t *testing.T) {
	// 0.70*0.8 + 0.30*0.5 = 0.71
	if got := Combine(0.8, 0.5, 0.0, ModeAdHoc); got != 71 {
		t.Fatalf("expected 71, got %d", got)
	}
}

func TestCombine_AdHocIgnoresRecency(t *testing.T) {
	a := Combine(0.5, 0.5, 0.0, ModeAdHoc)
	b := Combine(0.5, 0.5, 1.0, ModeAdHoc)
	if a != b {
		t.Fatalf("recency leaked into ad-hoc score: %d vs %d", a, b)
	}
}

func TestCombine_ClampsLow(t *testing.T) {
	// Cosine similarity can be negative for dissimilar texts.
	if got := Combine(-1.0, 0.0, 0.0, ModeBatch); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
}

func TestCombine_ClampsHigh(t *testing.T) {
	if got := Combine(1.5, 1.0, 1.0, ModeBatch); got != 100 {
		t.Fatalf("expected clamp to 100, got %d", got)
	}
}

func TestCombine_Rounds(t *testing.T) {
	// 0.65*1.0 + 0.25*0.0 + 0.10*0.0 = 0.65 -> 65
	if got := Combine(1.0, 0.0, 0.0, ModeBatch); got != 65 {
		t.Fatalf("expected 65, got %d", got)
	}
	// 0.70*0.005 = 0.0035 -> 0.35 rounds to 0
	if got := Combine(0.005, 0.0, 0.0, ModeAdHoc); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
