package handler

import (
	"context"

	httpUsecase "pong-service/internal/api/http/usecase"
	"pong-service/internal/game"

	"github.com/gofiber/fiber/v2"
)

type StatsRequest struct {
}

type StatsResponse struct {
	Stats game.Stats `json:"stats"`
}

type StatsHandler struct {
	usecase httpUsecase.StatsUseCase
}

func NewStatsHandler(usecase httpUsecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		usecase: usecase,
	}
}

func (h *StatsHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *StatsRequest) (*StatsResponse, int, error) {
	status, stats, err := h.usecase.Execute(ctx)
	if err != nil {
		return nil, status, err
	}
	return &StatsResponse{Stats: stats}, status, nil
}
