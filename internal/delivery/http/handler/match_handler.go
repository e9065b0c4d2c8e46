package handler

import (
	"errors"
	"strings"

	"resume-matcher/internal/delivery/http/dto"
	"resume-matcher/internal/delivery/http/middleware"
	"resume-matcher/internal/pkg/response"
	"resume-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	engine *usecase.MatchingEngine
	list   *usecase.MatchListUsecase
}

func NewMatchHandler(engine *usecase.MatchingEngine, list *usecase.MatchListUsecase) *MatchHandler {
	return &MatchHandler{engine: engine, list: list}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match/run", h.HandleAdHocMatch)
	r.Get("/resumes/:resume_id/matches", h.HandleListMatches)
}

// HandleAdHocMatch scores a pasted resume against caller-supplied jobs.
// Nothing from this endpoint is persisted.
func (h *MatchHandler) HandleAdHocMatch(c fiber.Ctx) error {
	var req dto.AdHocMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "resume_text is required", nil, nil)
	}
	if len(req.Jobs) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "at least one job is required", nil, nil)
	}

	candidates := make([]usecase.AdHocJob, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		candidates = append(candidates, usecase.AdHocJob{
			Title:       j.Title,
			Company:     j.Company,
			Description: j.Description,
			ApplyURL:    j.ApplyURL,
		})
	}

	ranked, err := h.engine.MatchAdHoc(c.Context(), req.ResumeText, req.Skills, candidates)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.AdHocMatchListResponse{Matches: make([]dto.AdHocMatchResponse, 0, len(ranked))}
	for _, m := range ranked {
		out.Matches = append(out.Matches, dto.AdHocMatchResponse{
			Title:         m.Title,
			Company:       m.Company,
			Score:         m.Score,
			MissingSkills: m.MissingSkills,
			ApplyURL:      m.ApplyURL,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

// HandleListMatches returns stored matches for a resume, best score first.
// An unknown resume and a resume with no matches both answer 404 so the
// caller cannot distinguish the two from outside.
func (h *MatchHandler) HandleListMatches(c fiber.Ctx) error {
	resumeID, err := uuid.Parse(c.Params("resume_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.list.GetStoredMatches(c.Context(), resumeID)
	if err != nil {
		return mapMatchListUsecaseError(err)
	}
	if len(items) == 0 {
		return middleware.NewAppError(fiber.StatusNotFound, "No matches found", nil, nil)
	}

	out := dto.StoredMatchListResponse{Matches: make([]dto.StoredMatchResponse, 0, len(items))}
	for _, m := range items {
		out.Matches = append(out.Matches, dto.StoredMatchResponse{
			Title:         m.Title,
			Company:       m.Company,
			Score:         m.Score,
			MissingSkills: m.MissingSkills,
			ApplyURL:      m.ApplyURL,
			CreatedAt:     m.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchListUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No matches found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
