package embedding

import (
	"errors"
	"math"
)

// ErrInvalidVector reports a similarity over a zero-magnitude or mismatched
// vector pair.
var ErrInvalidVector = errors.New("invalid embedding vector")

// CosineSimilarity is the dot product of a and b over the product of their
// magnitudes.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0, ErrInvalidVector
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, ErrInvalidVector
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
