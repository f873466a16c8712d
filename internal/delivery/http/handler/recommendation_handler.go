package handler

import (
	"errors"
	"strconv"

	"smartapplyhub/internal/delivery/http/dto"
	"smartapplyhub/internal/delivery/http/middleware"
	"smartapplyhub/internal/pkg/response"
	"smartapplyhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc usecase.RecommendationUsecase
}

func NewRecommendationHandler(uc usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{uc: uc}
}

func (h *RecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/recommendations", h.GetRecommendations)
}

func (h *RecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	limit := parseQueryInt(c, "limit", 20)
	minScore := parseQueryFloat(c, "min_score", 0)

	items, err := h.uc.GetRecommendations(c.Context(), userID, usecase.RecommendationParams{
		Limit:    limit,
		MinScore: minScore,
	})
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	out := make([]dto.RecommendationResponse, 0, len(items))
	for _, it := range items {
		reasons := make([]string, 0, len(it.Reasons))
		for _, r := range it.Reasons {
			reasons = append(reasons, string(r))
		}
		out = append(out, dto.RecommendationResponse{
			JobID:        it.JobID,
			Title:        it.Title,
			Company:      it.Company,
			Location:     it.Location,
			Industry:     it.Industry,
			MatchScore:   it.Score,
			MatchReasons: reasons,
			PostedAt:     it.PostedAt,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func parseQueryInt(c fiber.Ctx, key string, defaultVal int) int {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}

func parseQueryFloat(c fiber.Ctx, key string, defaultVal float64) float64 {
	s := c.Query(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return defaultVal
	}
	return v
}

func mapRecommendationUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrPreferenceProfileEmpty):
		return middleware.NewAppError(fiber.StatusBadRequest, "Preference profile empty", nil, err)
	case errors.Is(err, usecase.ErrNoPostingsFound):
		return middleware.NewAppError(fiber.StatusNotFound, "No postings found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
