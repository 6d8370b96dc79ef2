package handler

import (
	"context"

	"pong-service/domain"
	httpUsecase "pong-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type RecentMatchesRequest struct {
	UserID int64 `query:"user_id"`
	Limit  int   `query:"limit" validate:"omitempty,min=1,max=100"`
}

type RecentMatchesResponse struct {
	Matches []domain.MatchRecord `json:"matches"`
}

type RecentMatchesHandler struct {
	usecase httpUsecase.RecentMatchesUseCase
}

func NewRecentMatchesHandler(usecase httpUsecase.RecentMatchesUseCase) *RecentMatchesHandler {
	return &RecentMatchesHandler{
		usecase: usecase,
	}
}

func (h *RecentMatchesHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *RecentMatchesRequest) (*RecentMatchesResponse, int, error) {
	status, records, err := h.usecase.Execute(ctx, req.UserID, req.Limit)
	if err != nil {
		return nil, status, err
	}
	return &RecentMatchesResponse{Matches: records}, status, nil
}
