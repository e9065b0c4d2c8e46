package handler

import (
	"errors"
	"io"

	"resume-matcher/internal/delivery/http/dto"
	"resume-matcher/internal/delivery/http/middleware"
	"resume-matcher/internal/parser"
	"resume-matcher/internal/pkg/response"
	"resume-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const maxResumeUploadBytes = 10 << 20

type ResumeHandler struct {
	uc *usecase.ResumeUsecase
}

func NewResumeHandler(uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/upload", h.HandleUpload)
}

func (h *ResumeHandler) HandleUpload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing file field", nil, err)
	}
	if fileHeader.Size > maxResumeUploadBytes {
		return middleware.NewAppError(fiber.StatusBadRequest, "File too large", nil, nil)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unreadable file", nil, err)
	}

	res, err := h.uc.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return mapResumeUsecaseError(err)
	}

	out := dto.UploadResumeResponse{ResumeID: res.ID, Skills: res.Skills}
	return response.Success(c, fiber.StatusCreated, "resume stored", out)
}

func mapResumeUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, parser.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unsupported file type", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
