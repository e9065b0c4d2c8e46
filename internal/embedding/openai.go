package embedding

import (
	"context"
	"errors"
	"strings"

	"resume-matcher/internal/config"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// OpenAICompatible runs embeddings against any OpenAI-compatible endpoint.
type OpenAICompatible struct {
	embedder embeddings.Embedder
	logger   *zap.Logger
}

func NewOpenAICompatible(cfg config.EmbeddingConfig, logger *zap.Logger) (*OpenAICompatible, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("empty embedding base URL")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("empty embedding model")
	}

	token := cfg.APIKey
	if token == "" {
		// Local OpenAI-compatible servers reject empty tokens but accept
		// any placeholder.
		token = "none"
	}

	client, err := openai.New(
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithToken(token),
		openai.WithEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &OpenAICompatible{embedder: embedder, logger: logger}, nil
}

func (e *OpenAICompatible) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		if e.logger != nil {
			e.logger.Error("embedding call failed", zap.Int("text_len", len(text)), zap.Error(err))
		}
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, errors.New("embedder returned no vectors")
	}
	return vectors[0], nil
}
