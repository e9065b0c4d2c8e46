package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"resume-matcher/internal/repository"

	"github.com/google/uuid"
)

type listMatchRepo struct {
	mockMatchRepo
	listed []repository.StoredMatch
	calls  int
}

func (m *listMatchRepo) ListByResume(context.Context, uuid.UUID) ([]repository.StoredMatch, error) {
	m.calls++
	return m.listed, nil
}

type jsonCache struct {
	store map[string][]byte
}

func (c *jsonCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *jsonCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	c.store[key] = b
	return nil
}

func (c *jsonCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func TestGetStoredMatches_UnknownResume(t *testing.T) {
	uc := NewMatchListUsecase(&mockResumeRepo{exists: false}, &listMatchRepo{}, nil)
	if _, err := uc.GetStoredMatches(context.Background(), uuid.New()); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestGetStoredMatches_NilID(t *testing.T) {
	uc := NewMatchListUsecase(&mockResumeRepo{exists: true}, &listMatchRepo{}, nil)
	if _, err := uc.GetStoredMatches(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetStoredMatches_ZeroMatchesIsEmptySlice(t *testing.T) {
	uc := NewMatchListUsecase(&mockResumeRepo{exists: true}, &listMatchRepo{listed: []repository.StoredMatch{}}, nil)
	out, err := uc.GetStoredMatches(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("zero matches must not error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty slice, got %v", out)
	}
}

func TestGetStoredMatches_CachesListing(t *testing.T) {
	repo := &listMatchRepo{listed: []repository.StoredMatch{
		{JobID: uuid.New(), Title: "Backend Developer", Score: 80},
	}}
	cache := &jsonCache{}
	uc := NewMatchListUsecase(&mockResumeRepo{exists: true}, repo, cache)

	resumeID := uuid.New()
	for i := 0; i < 2; i++ {
		out, err := uc.GetStoredMatches(context.Background(), resumeID)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(out) != 1 || out[0].Score != 80 {
			t.Fatalf("unexpected listing: %+v", out)
		}
	}
	if repo.calls != 1 {
		t.Fatalf("expected 1 repository read, got %d", repo.calls)
	}
}
