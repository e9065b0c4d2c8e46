package handler

import (
	"errors"

	"resume-matcher/internal/delivery/http/dto"
	"resume-matcher/internal/delivery/http/middleware"
	"resume-matcher/internal/pkg/response"
	"resume-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc *usecase.FetchUsecase
}

func NewJobsHandler(uc *usecase.FetchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/fetch", h.HandleFetch)
}

// HandleFetch pulls fresh listings for the requested roles, ingests them,
// and reruns matching for every stored resume before responding.
func (h *JobsHandler) HandleFetch(c fiber.Ctx) error {
	var req dto.FetchJobsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	fetched, err := h.uc.FetchAndMatch(c.Context(), req.Roles, req.Companies)
	if err != nil {
		return mapFetchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FetchJobsResponse{JobsFetched: fetched})
}

func mapFetchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "At least one role is required", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
