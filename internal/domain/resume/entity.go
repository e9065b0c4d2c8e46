package resume

import (
	"time"

	"github.com/google/uuid"
)

// Resume is the stored, pre-parsed candidate document. Embedding is nil
// until first needed; once computed it is reused for the life of the row.
type Resume struct {
	ID        uuid.UUID
	Text      string
	Skills    []string
	Embedding []float32
	CreatedAt time.Time
}
