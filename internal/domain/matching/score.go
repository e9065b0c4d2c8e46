package matching

import "math"

// Mode selects the score combination. Both formulas are deliberate: batch
// runs have posting dates, ad-hoc runs against caller-supplied jobs do not,
// so the recency weight is redistributed onto the other terms. Callers pick
// the mode from whether recency data exists, never from a global flag.
type Mode int

const (
	// ModeBatch weights persisted runs: 0.65 semantic, 0.25 overlap,
	// 0.10 recency.
	ModeBatch Mode = iota
	// ModeAdHoc weights non-persisted runs: 0.70 semantic, 0.30 overlap.
	ModeAdHoc
)

// Combine produces the final integer percentage score, clamped to [0,100].
func Combine(semantic, overlap, recency float64, mode Mode) int {
	var final float64
	switch mode {
	case ModeAdHoc:
		final = 0.70*semantic + 0.30*overlap
	default:
		final = 0.65*semantic + 0.25*overlap + 0.10*recency
	}

	score := int(math.Round(final * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
