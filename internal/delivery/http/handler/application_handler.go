package handler

import (
	"errors"

	"smartapplyhub/internal/delivery/http/dto"
	"smartapplyhub/internal/delivery/http/middleware"
	"smartapplyhub/internal/pkg/response"
	"smartapplyhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Get("/", h.List)
	grp.Post("/", h.Apply)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListApplications(c.Context(), userID, limit, offset)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	out := make([]dto.ApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ApplicationResponse{
			ID:        it.ID,
			JobID:     it.JobID,
			Status:    it.Status,
			AppliedAt: it.AppliedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.ApplyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	a, err := h.uc.Apply(c.Context(), userID, req.JobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "created", dto.ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	})
}

func mapApplicationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
