package embedding

import (
	"context"
	"fmt"

	"resume-matcher/internal/domain/job"
	"resume-matcher/internal/domain/resume"

	"github.com/google/uuid"
)

type resumeVectorStore interface {
	UpdateEmbedding(ctx context.Context, resumeID uuid.UUID, vector []float32) error
}

type jobVectorStore interface {
	UpdateEmbedding(ctx context.Context, jobID uuid.UUID, vector []float32) error
}

// Provider hands out embedding vectors for resumes and jobs, computing each
// at most once. A vector is persisted on the owning row with a single
// UPDATE, so readers never observe a partial write. A concurrent miss on the
// same entity may compute the vector twice; the model is deterministic, so
// both writers converge.
//
// Model failure propagates to the caller. It is never downgraded to a zero
// similarity.
type Provider struct {
	embedder Embedder
	resumes  resumeVectorStore
	jobs     jobVectorStore
}

func NewProvider(embedder Embedder, resumes resumeVectorStore, jobs jobVectorStore) *Provider {
	return &Provider{embedder: embedder, resumes: resumes, jobs: jobs}
}

// ResumeVector returns the resume's cached vector, computing and persisting
// it on first use.
func (p *Provider) ResumeVector(ctx context.Context, r *resume.Resume) ([]float32, error) {
	if r == nil {
		return nil, fmt.Errorf("nil resume")
	}
	if len(r.Embedding) > 0 {
		return r.Embedding, nil
	}

	vec, err := p.embedder.EmbedText(ctx, r.Text)
	if err != nil {
		return nil, fmt.Errorf("embed resume %s: %w", r.ID, err)
	}
	if p.resumes != nil {
		if err := p.resumes.UpdateEmbedding(ctx, r.ID, vec); err != nil {
			return nil, fmt.Errorf("persist resume embedding %s: %w", r.ID, err)
		}
	}
	r.Embedding = vec
	return vec, nil
}

// JobVector returns the job's cached vector, computing and persisting it on
// first use.
func (p *Provider) JobVector(ctx context.Context, j *job.Job) ([]float32, error) {
	if j == nil {
		return nil, fmt.Errorf("nil job")
	}
	if len(j.Embedding) > 0 {
		return j.Embedding, nil
	}

	vec, err := p.embedder.EmbedText(ctx, j.Description)
	if err != nil {
		return nil, fmt.Errorf("embed job %s: %w", j.ID, err)
	}
	if p.jobs != nil {
		if err := p.jobs.UpdateEmbedding(ctx, j.ID, vec); err != nil {
			return nil, fmt.Errorf("persist job embedding %s: %w", j.ID, err)
		}
	}
	j.Embedding = vec
	return vec, nil
}

// EmbedText embeds a transient text, such as an ad-hoc resume that never
// reaches storage.
func (p *Provider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return p.embedder.EmbedText(ctx, text)
}
