package match

import (
	"time"

	"github.com/google/uuid"
)

// Match is an append-only fact: re-running a batch for the same pair adds a
// new row, it never replaces the previous one.
type Match struct {
	ID                 uuid.UUID
	ResumeID           uuid.UUID
	JobID              uuid.UUID
	Score              int
	SemanticSimilarity float64
	SkillOverlap       float64
	MissingSkills      []string
	CreatedAt          time.Time
}
