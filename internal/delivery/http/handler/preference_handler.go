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

type PreferenceHandler struct {
	uc usecase.PreferenceUsecase
}

func NewPreferenceHandler(uc usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

func (h *PreferenceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/preferences", h.GetPreferences)
	r.Put("/preferences", h.SavePreferences)
	r.Get("/search-preferences", h.GetSearchPreferences)
	r.Put("/search-preferences", h.SaveSearchPreferences)
}

func (h *PreferenceHandler) GetPreferences(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetPreferences(c.Context(), userID)
	if err != nil {
		return mapPreferenceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.PreferenceResponse{
		JobTitles:         p.JobTitles,
		PreferredLocation: p.PreferredLocation,
		JobTypes:          p.JobTypes,
		ExperienceLevel:   p.ExperienceLevel,
		Skills:            p.Skills,
		Industries:        p.Industries,
	})
}

func (h *PreferenceHandler) SavePreferences(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.PreferenceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.SavePreferences(c.Context(), userID, usecase.PreferenceInput{
		JobTitles:         req.JobTitles,
		PreferredLocation: req.PreferredLocation,
		JobTypes:          req.JobTypes,
		ExperienceLevel:   req.ExperienceLevel,
		Skills:            req.Skills,
		Industries:        req.Industries,
	})
	if err != nil {
		return mapPreferenceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *PreferenceHandler) GetSearchPreferences(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	p, err := h.uc.GetSearchPreferences(c.Context(), userID)
	if err != nil {
		return mapPreferenceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.SearchPreferenceResponse{
		LocationFilter:     p.LocationFilter,
		LocationFlexible:   p.LocationFlexible,
		RemoteOnly:         p.RemoteOnly,
		RecencyWindow:      p.RecencyWindow,
		JobLevels:          p.JobLevels,
		ExcludedIndustries: p.ExcludedIndustries,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
	})
}

func (h *PreferenceHandler) SaveSearchPreferences(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.SearchPreferenceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.SaveSearchPreferences(c.Context(), userID, usecase.SearchPreferenceInput{
		LocationFilter:     req.LocationFilter,
		LocationFlexible:   req.LocationFlexible,
		RemoteOnly:         req.RemoteOnly,
		RecencyWindow:      req.RecencyWindow,
		JobLevels:          req.JobLevels,
		ExcludedIndustries: req.ExcludedIndustries,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
	})
	if err != nil {
		return mapPreferenceUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapPreferenceUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
