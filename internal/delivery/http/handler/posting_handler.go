package handler

import (
	"errors"

	"smartapplyhub/internal/delivery/http/dto"
	"smartapplyhub/internal/delivery/http/middleware"
	"smartapplyhub/internal/pkg/response"
	"smartapplyhub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PostingHandler struct {
	uc usecase.PostingListUsecase
}

func NewPostingHandler(uc usecase.PostingListUsecase) *PostingHandler {
	return &PostingHandler{uc: uc}
}

func (h *PostingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.List)
}

func (h *PostingHandler) List(c fiber.Ctx) error {
	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	items, err := h.uc.ListPostings(c.Context(), usecase.PostingListParams{Limit: limit, Offset: offset})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid pagination", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	out := make([]dto.PostingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PostingResponse{
			ID:          it.ID,
			Title:       it.Title,
			Company:     it.Company,
			Location:    it.Location,
			Description: it.Description,
			SalaryRange: it.SalaryRange,
			Industry:    it.Industry,
			RemoteType:  it.RemoteType,
			JobLevel:    it.Level,
			JobType:     it.JobType,
			PostedAt:    it.CreatedAt,
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
