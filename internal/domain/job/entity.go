package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID
	ExternalID  *string
	Title       string
	Company     *string
	Description string
	PostedAt    *time.Time
	ApplyURL    *string
	Embedding   []float32
	CreatedAt   time.Time
}

// IngestRecord is a normalized posting handed over by the listings
// collaborator. Records carrying the same ExternalID resolve to one stored
// Job; records without one are never deduplicated.
type IngestRecord struct {
	ExternalID  *string
	Title       string
	Company     *string
	Description string
	PostedAt    *time.Time
	ApplyURL    *string
}
