package usecase

import (
	"context"
	"fmt"
	"time"

	"resume-matcher/internal/repository"

	"github.com/google/uuid"
)

// MatchCache is the read-through cache surface for stored-match listings.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const matchListTTL = 5 * time.Minute

func matchListCacheKey(resumeID uuid.UUID) string {
	return "matches:resume:" + resumeID.String()
}

type MatchListUsecase struct {
	resumes repository.ResumeRepository
	matches repository.MatchRepository
	cache   MatchCache
}

func NewMatchListUsecase(resumes repository.ResumeRepository, matches repository.MatchRepository, cache MatchCache) *MatchListUsecase {
	return &MatchListUsecase{resumes: resumes, matches: matches, cache: cache}
}

// GetStoredMatches returns the resume's persisted matches, best first. An
// unknown resume fails with ErrResumeNotFound; a known resume with no
// matches yet returns an empty slice and leaves the distinction to the
// delivery layer.
func (u *MatchListUsecase) GetStoredMatches(ctx context.Context, resumeID uuid.UUID) ([]repository.StoredMatch, error) {
	if resumeID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	exists, err := u.resumes.ExistsByID(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("check resume: %w", err)
	}
	if !exists {
		return nil, ErrResumeNotFound
	}

	key := matchListCacheKey(resumeID)
	if u.cache != nil {
		var cached []repository.StoredMatch
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out, err := u.matches.ListByResume(ctx, resumeID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, out, matchListTTL)
	}
	return out, nil
}
