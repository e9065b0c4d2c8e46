package matching

import (
	"testing"
	"time"
)

func TestRecencyBonus_NilPostedAt(t *testing.T) {
	if got := RecencyBonus(nil, time.Now().UTC()); got != 0.0 {
		t.Fatalf("expected 0.0, got %v", got)
	}
}

func TestRecencyBonus_FreshPosting(t *testing.T) {
	now := time.Now().UTC()
	if got := RecencyBonus(&now, now); got != 1.0 {
		t.Fatalf("expected 1.0 at age 0, got %v", got)
	}
}

func TestRecencyBonus_FuturePostingClamped(t *testing.T) {
	now := time.Now().UTC()
	future := now.Add(48 * time.Hour)
	if got := RecencyBonus(&future, now); got != 1.0 {
		t.Fatalf("expected 1.0 for future date, got %v", got)
	}
}

func TestRecencyBonus_MonotoneDecay(t *testing.T) {
	now := time.Now().UTC()
	prev := 1.1
	for days := 0; days <= 7; days++ {
		posted := now.Add(-time.Duration(days) * 24 * time.Hour)
		got := RecencyBonus(&posted, now)
		if got > prev {
			t.Fatalf("bonus increased at day %d: %v > %v", days, got, prev)
		}
		prev = got
	}
}

func TestRecencyBonus_ZeroBeyondWindow(t *testing.T) {
	now := time.Now().UTC()
	for _, days := range []int{5, 6, 30} {
		posted := now.Add(-time.Duration(days) * 24 * time.Hour)
		if got := RecencyBonus(&posted, now); got != 0.0 {
			t.Fatalf("expected 0.0 at day %d, got %v", days, got)
		}
	}
}

func TestRecencyBonus_LinearInsideWindow(t *testing.T) {
	now := time.Now().UTC()
	posted := now.Add(-2 * 24 * time.Hour)
	got := RecencyBonus(&posted, now)
	want := 1.0 - 2.0/5.0
	if got != want {
		t.Fatalf("expected %v at day 2, got %v", want, got)
	}
}
