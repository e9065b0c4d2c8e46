package usecase

import (
	"context"
	"fmt"

	"resume-matcher/internal/domain/resume"
	"resume-matcher/internal/parser"
	"resume-matcher/internal/repository"

	"go.uber.org/zap"
)

type ResumeUsecase struct {
	resumes repository.ResumeRepository
	logger  *zap.Logger
}

func NewResumeUsecase(resumes repository.ResumeRepository, logger *zap.Logger) *ResumeUsecase {
	return &ResumeUsecase{resumes: resumes, logger: logger}
}

// Upload parses an uploaded resume file and stores the parsed record. The
// embedding stays empty here; it is computed lazily the first time the
// resume is scored and cached on the row from then on.
func (u *ResumeUsecase) Upload(ctx context.Context, filename string, data []byte) (resume.Resume, error) {
	if len(data) == 0 {
		return resume.Resume{}, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}

	fileType, err := parser.FileTypeFromName(filename)
	if err != nil {
		return resume.Resume{}, err
	}

	parsed, err := parser.Parse(data, fileType)
	if err != nil {
		return resume.Resume{}, err
	}

	res := resume.Resume{
		Text:   parsed.Text,
		Skills: parsed.Skills,
	}
	if err := u.resumes.Insert(ctx, &res); err != nil {
		return resume.Resume{}, fmt.Errorf("store resume: %w", err)
	}

	if u.logger != nil {
		u.logger.Info("resume stored",
			zap.String("resume_id", res.ID.String()),
			zap.String("file_type", fileType),
			zap.Int("skills", len(res.Skills)),
			zap.String("seniority", string(parsed.Seniority)),
		)
	}
	return res, nil
}
