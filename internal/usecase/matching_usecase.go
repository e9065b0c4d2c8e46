package usecase

import (
	"bytes"
	"context"
	"sort"
	"time"

	"resume-matcher/internal/domain/job"
	"resume-matcher/internal/domain/match"
	"resume-matcher/internal/domain/matching"
	"resume-matcher/internal/domain/resume"
	"resume-matcher/internal/embedding"
	"resume-matcher/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// vectorProvider is the slice of embedding.Provider the engine needs.
type vectorProvider interface {
	ResumeVector(ctx context.Context, r *resume.Resume) ([]float32, error)
	JobVector(ctx context.Context, j *job.Job) ([]float32, error)
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// PairFailure identifies one (resume, job) evaluation that failed inside a
// batch without aborting its siblings.
type PairFailure struct {
	ResumeID uuid.UUID
	JobID    uuid.UUID
	Err      error
}

// BatchReport summarizes a RunBatch invocation.
type BatchReport struct {
	Pairs     int
	Succeeded int
	Failures  []PairFailure
}

// RankedResult is one scored candidate from an ad-hoc, non-persisted match.
type RankedResult struct {
	Title              string
	Company            string
	Score              int
	SemanticSimilarity float64
	SkillOverlap       float64
	MissingSkills      []string
	ApplyURL           string
}

// AdHocJob is a caller-supplied candidate; it never reaches storage and
// carries no posting-date context.
type AdHocJob struct {
	Title       string
	Company     string
	Description string
	ApplyURL    string
}

type MatchingEngine struct {
	provider vectorProvider
	matches  repository.MatchRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewMatchingEngine builds the orchestrator. The engine holds no state
// between calls; everything durable lives in the stores and the per-entity
// embedding caches.
func NewMatchingEngine(provider vectorProvider, matches repository.MatchRepository, logger *zap.Logger) *MatchingEngine {
	return &MatchingEngine{
		provider: provider,
		matches:  matches,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// RunBatch evaluates every resume against every job and persists one Match
// per pair using the batch score weights. Pair-level failures are isolated:
// an embedding or storage error on one pair lands in the report and the
// remaining pairs still run. Jobs are walked in ascending id order so a
// rerun appends rows in a reproducible sequence.
func (e *MatchingEngine) RunBatch(ctx context.Context, jobs []job.Job, resumes []resume.Resume) BatchReport {
	ordered := make([]job.Job, len(jobs))
	copy(ordered, jobs)
	sort.Slice(ordered, func(i, k int) bool {
		return bytes.Compare(ordered[i].ID[:], ordered[k].ID[:]) < 0
	})

	report := BatchReport{Pairs: len(resumes) * len(ordered)}
	now := e.now()

	for ri := range resumes {
		res := &resumes[ri]

		resumeVec, err := e.provider.ResumeVector(ctx, res)
		if err != nil {
			// Every pair for this resume is unscorable; siblings for
			// other resumes continue.
			for ji := range ordered {
				report.Failures = append(report.Failures, PairFailure{ResumeID: res.ID, JobID: ordered[ji].ID, Err: err})
			}
			continue
		}

		for ji := range ordered {
			j := &ordered[ji]
			if err := e.scorePair(ctx, res, resumeVec, j, now); err != nil {
				report.Failures = append(report.Failures, PairFailure{ResumeID: res.ID, JobID: j.ID, Err: err})
				continue
			}
			report.Succeeded++
		}
	}

	if e.logger != nil && len(report.Failures) > 0 {
		e.logger.Warn("batch match completed with failures",
			zap.Int("pairs", report.Pairs),
			zap.Int("succeeded", report.Succeeded),
			zap.Int("failed", len(report.Failures)),
		)
	}
	return report
}

func (e *MatchingEngine) scorePair(ctx context.Context, res *resume.Resume, resumeVec []float32, j *job.Job, now time.Time) error {
	jobVec, err := e.provider.JobVector(ctx, j)
	if err != nil {
		return err
	}

	semantic, err := embedding.CosineSimilarity(resumeVec, jobVec)
	if err != nil {
		return err
	}

	jobSkills := matching.DeriveJobSkills(j.Description, res.Skills)
	overlap := matching.SkillOverlap(res.Skills, jobSkills)
	recency := matching.RecencyBonus(j.PostedAt, now)
	score := matching.Combine(semantic, overlap, recency, matching.ModeBatch)

	m := match.Match{
		ResumeID:           res.ID,
		JobID:              j.ID,
		Score:              score,
		SemanticSimilarity: semantic,
		SkillOverlap:       overlap,
		MissingSkills:      matching.MissingSkills(jobSkills, res.Skills),
		CreatedAt:          now,
	}
	_, err = e.matches.Insert(ctx, &m)
	return err
}

// MatchAdHoc scores a transient resume against caller-supplied candidates
// with the ad-hoc weights. Nothing is persisted. Results come back sorted
// by score descending; ties keep the candidates' original order.
func (e *MatchingEngine) MatchAdHoc(ctx context.Context, resumeText string, resumeSkills []string, candidates []AdHocJob) ([]RankedResult, error) {
	resumeVec, err := e.provider.EmbedText(ctx, resumeText)
	if err != nil {
		return nil, err
	}

	results := make([]RankedResult, 0, len(candidates))
	for _, cand := range candidates {
		candVec, err := e.provider.EmbedText(ctx, cand.Description)
		if err != nil {
			return nil, err
		}
		semantic, err := embedding.CosineSimilarity(resumeVec, candVec)
		if err != nil {
			return nil, err
		}

		jobSkills := matching.DeriveJobSkills(cand.Description, resumeSkills)
		overlap := matching.SkillOverlap(resumeSkills, jobSkills)

		results = append(results, RankedResult{
			Title:              cand.Title,
			Company:            cand.Company,
			Score:              matching.Combine(semantic, overlap, 0, matching.ModeAdHoc),
			SemanticSimilarity: semantic,
			SkillOverlap:       overlap,
			MissingSkills:      matching.MissingSkills(jobSkills, resumeSkills),
			ApplyURL:           cand.ApplyURL,
		})
	}

	sort.SliceStable(results, func(i, k int) bool {
		return results[i].Score > results[k].Score
	})
	return results, nil
}
