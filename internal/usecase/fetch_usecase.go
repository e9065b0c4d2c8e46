package usecase

import (
	"context"
	"fmt"
	"strings"

	"resume-matcher/internal/domain/job"
	"resume-matcher/internal/infrastructure/listings"
	"resume-matcher/internal/repository"

	"go.uber.org/zap"
)

// BatchNotifier is told when a fetch-and-match run has finished writing
// matches. Implemented by the websocket hub.
type BatchNotifier interface {
	MatchRunCompleted(jobsFetched, matchesWritten int)
}

type FetchUsecase struct {
	listings listings.Client
	jobs     repository.JobRepository
	resumes  repository.ResumeRepository
	engine   *MatchingEngine
	cache    MatchCache
	notifier BatchNotifier
	logger   *zap.Logger
}

func NewFetchUsecase(
	listingsClient listings.Client,
	jobs repository.JobRepository,
	resumes repository.ResumeRepository,
	engine *MatchingEngine,
	cache MatchCache,
	notifier BatchNotifier,
	logger *zap.Logger,
) *FetchUsecase {
	return &FetchUsecase{
		listings: listingsClient,
		jobs:     jobs,
		resumes:  resumes,
		engine:   engine,
		cache:    cache,
		notifier: notifier,
		logger:   logger,
	}
}

// FetchAndMatch pulls filtered postings, ingests them with dedup-on-write,
// and runs a persisted batch match against every stored resume. A listings
// outage degrades to an empty batch: the call succeeds and reports zero
// jobs. Storage failures propagate.
func (u *FetchUsecase) FetchAndMatch(ctx context.Context, roles, companies []string) (int, error) {
	roles = cleanFilter(roles)
	companies = cleanFilter(companies)
	if len(roles) == 0 {
		return 0, fmt.Errorf("%w: at least one role keyword is required", ErrInvalidInput)
	}

	records, err := u.listings.FetchJobs(ctx, roles, companies)
	if err != nil {
		if u.logger != nil {
			u.logger.Warn("listings unavailable, continuing with empty batch", zap.Error(err))
		}
		records = nil
	}

	stored := make([]job.Job, 0, len(records))
	for _, rec := range records {
		j, err := u.jobs.Ingest(ctx, rec)
		if err != nil {
			return 0, fmt.Errorf("ingest job: %w", err)
		}
		stored = append(stored, j)
	}

	resumes, err := u.resumes.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list resumes: %w", err)
	}

	if len(stored) > 0 && len(resumes) > 0 {
		report := u.engine.RunBatch(ctx, stored, resumes)

		for _, res := range resumes {
			if u.cache != nil {
				_ = u.cache.Delete(ctx, matchListCacheKey(res.ID))
			}
		}
		if u.notifier != nil {
			u.notifier.MatchRunCompleted(len(records), report.Succeeded)
		}
	}

	return len(records), nil
}

func cleanFilter(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
