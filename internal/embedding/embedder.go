package embedding

import "context"

// Embedder produces a vector for a text. Implementations must be safe for
// concurrent use; the production implementation is OpenAICompatible.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}
