package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"resume-matcher/internal/domain/job"
	"resume-matcher/internal/domain/match"
	"resume-matcher/internal/domain/resume"
	"resume-matcher/internal/repository"

	"github.com/google/uuid"
)

type stubProvider struct {
	vecs map[string][]float32
	errs map[string]error
}

func (s *stubProvider) lookup(text string) ([]float32, error) {
	if err, ok := s.errs[text]; ok {
		return nil, err
	}
	if vec, ok := s.vecs[text]; ok {
		return vec, nil
	}
	return []float32{1, 0}, nil
}

func (s *stubProvider) ResumeVector(_ context.Context, r *resume.Resume) ([]float32, error) {
	return s.lookup(r.Text)
}

func (s *stubProvider) JobVector(_ context.Context, j *job.Job) ([]float32, error) {
	return s.lookup(j.Description)
}

func (s *stubProvider) EmbedText(_ context.Context, text string) ([]float32, error) {
	return s.lookup(text)
}

type mockMatchRepo struct {
	inserted []match.Match
	err      error
}

func (m *mockMatchRepo) Insert(_ context.Context, mt *match.Match) (uuid.UUID, error) {
	if m.err != nil {
		return uuid.Nil, m.err
	}
	if mt.ID == uuid.Nil {
		mt.ID = uuid.New()
	}
	m.inserted = append(m.inserted, *mt)
	return mt.ID, nil
}

func (m *mockMatchRepo) ListByResume(context.Context, uuid.UUID) ([]repository.StoredMatch, error) {
	return nil, nil
}

func uuidWithPrefix(b byte) uuid.UUID {
	var id uuid.UUID
	id[0] = b
	id[6] = 0x40 // version 4
	id[8] = 0x80
	return id
}

func TestRunBatch_ScoresAndPersists(t *testing.T) {
	provider := &stubProvider{vecs: map[string][]float32{
		"resume text":       {1, 0},
		"python sql docker": {0.8, 0.6},
	}}
	repo := &mockMatchRepo{}
	engine := NewMatchingEngine(provider, repo, nil)
	posted := time.Now().UTC()

	resumes := []resume.Resume{{ID: uuid.New(), Text: "resume text", Skills: []string{"python", "sql"}}}
	jobs := []job.Job{{ID: uuid.New(), Title: "Backend Developer", Description: "python sql docker", PostedAt: &posted}}

	report := engine.RunBatch(context.Background(), jobs, resumes)
	if report.Pairs != 1 || report.Succeeded != 1 || len(report.Failures) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 persisted match, got %d", len(repo.inserted))
	}

	m := repo.inserted[0]
	// cosine([1,0],[0.8,0.6]) = 0.8; overlap = 1.0 (both derived skills
	// claimed); recency = 1.0 -> 0.65*0.8 + 0.25*1.0 + 0.10*1.0 = 0.87.
	if m.Score != 87 {
		t.Fatalf("expected score 87, got %d", m.Score)
	}
	if m.SkillOverlap != 1.0 {
		t.Fatalf("expected overlap 1.0, got %v", m.SkillOverlap)
	}
	if len(m.MissingSkills) != 0 {
		t.Fatalf("expected empty missing skills, got %v", m.MissingSkills)
	}
}

func TestRunBatch_WeightedScoreTriple(t *testing.T) {
	// semantic=0.8, overlap=0.5, recency=1.0 -> 76.
	provider := &stubProvider{vecs: map[string][]float32{
		"resume text": {1, 0},
		"python only": {0.8, 0.6},
	}}
	repo := &mockMatchRepo{}
	engine := NewMatchingEngine(provider, repo, nil)
	posted := time.Now().UTC()

	resumes := []resume.Resume{{ID: uuid.New(), Text: "resume text", Skills: []string{"python", "sql"}}}
	jobs := []job.Job{{ID: uuid.New(), Description: "python only", PostedAt: &posted}}

	engine.RunBatch(context.Background(), jobs, resumes)
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 match, got %d", len(repo.inserted))
	}
	if got := repo.inserted[0].Score; got != 76 {
		t.Fatalf("expected 76, got %d", got)
	}
}

func TestRunBatch_PairFailureIsolated(t *testing.T) {
	modelErr := errors.New("model down")
	provider := &stubProvider{
		vecs: map[string][]float32{"good job": {1, 0}},
		errs: map[string]error{"bad job": modelErr},
	}
	repo := &mockMatchRepo{}
	engine := NewMatchingEngine(provider, repo, nil)

	resumes := []resume.Resume{{ID: uuid.New(), Text: "resume text", Skills: []string{"go"}}}
	jobs := []job.Job{
		{ID: uuidWithPrefix(1), Description: "bad job"},
		{ID: uuidWithPrefix(2), Description: "good job"},
	}

	report := engine.RunBatch(context.Background(), jobs, resumes)
	if report.Succeeded != 1 {
		t.Fatalf("expected 1 success, got %d", report.Succeeded)
	}
	if len(report.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(report.Failures))
	}
	if !errors.Is(report.Failures[0].Err, modelErr) {
		t.Fatalf("unexpected failure cause: %v", report.Failures[0].Err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("failed pair must not persist; got %d rows", len(repo.inserted))
	}
}

func TestRunBatch_ResumeEmbeddingFailureFailsAllItsPairs(t *testing.T) {
	modelErr := errors.New("model down")
	provider := &stubProvider{errs: map[string]error{"broken resume": modelErr}}
	repo := &mockMatchRepo{}
	engine := NewMatchingEngine(provider, repo, nil)

	resumes := []resume.Resume{
		{ID: uuid.New(), Text: "broken resume"},
		{ID: uuid.New(), Text: "fine resume"},
	}
	jobs := []job.Job{
		{ID: uuidWithPrefix(1), Description: "a"},
		{ID: uuidWithPrefix(2), Description: "b"},
	}

	report := engine.RunBatch(context.Background(), jobs, resumes)
	if len(report.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(report.Failures))
	}
	if report.Succeeded != 2 {
		t.Fatalf("other resume must still score; got %d successes", report.Succeeded)
	}
}

func TestRunBatch_JobOrderIsAscendingByID(t *testing.T) {
	provider := &stubProvider{}
	repo := &mockMatchRepo{}
	engine := NewMatchingEngine(provider, repo, nil)

	jobs := []job.Job{
		{ID: uuidWithPrefix(9), Description: "z"},
		{ID: uuidWithPrefix(1), Description: "a"},
		{ID: uuidWithPrefix(5), Description: "m"},
	}
	resumes := []resume.Resume{{ID: uuid.New(), Text: "r"}}

	engine.RunBatch(context.Background(), jobs, resumes)
	if len(repo.inserted) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(repo.inserted))
	}
	if repo.inserted[0].JobID != uuidWithPrefix(1) ||
		repo.inserted[1].JobID != uuidWithPrefix(5) ||
		repo.inserted[2].JobID != uuidWithPrefix(9) {
		t.Fatalf("matches not appended in ascending job id order")
	}
}

func TestMatchAdHoc_NeverPersists(t *testing.T) {
	provider := &stubProvider{}
	repo := &mockMatchRepo{}
	engine := NewMatchingEngine(provider, repo, nil)

	_, err := engine.MatchAdHoc(context.Background(), "resume", []string{"go"}, []AdHocJob{
		{Title: "A", Description: "go services"},
		{Title: "B", Description: "more go"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.inserted) != 0 {
		t.Fatalf("ad-hoc match must not write to the match store; got %d rows", len(repo.inserted))
	}
}

func TestMatchAdHoc_StableTieOrder(t *testing.T) {
	// Identical vectors and skill sets give every candidate the same
	// score, so the input order must survive.
	provider := &stubProvider{}
	engine := NewMatchingEngine(provider, &mockMatchRepo{}, nil)

	results, err := engine.MatchAdHoc(context.Background(), "resume", nil, []AdHocJob{
		{Title: "first", Description: "same"},
		{Title: "second", Description: "same"},
		{Title: "third", Description: "same"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if results[0].Title != "first" || results[1].Title != "second" || results[2].Title != "third" {
		t.Fatalf("tie order not stable: %+v", results)
	}
}

func TestMatchAdHoc_EmbeddingFailurePropagates(t *testing.T) {
	modelErr := errors.New("model down")
	provider := &stubProvider{errs: map[string]error{"resume": modelErr}}
	engine := NewMatchingEngine(provider, &mockMatchRepo{}, nil)

	if _, err := engine.MatchAdHoc(context.Background(), "resume", nil, nil); !errors.Is(err, modelErr) {
		t.Fatalf("expected model error, got %v", err)
	}
}
