package handler

import (
	"context"

	httpUsecase "pong-service/internal/api/http/usecase"

	"github.com/gofiber/fiber/v2"
)

type PlayerOnlineRequest struct {
	UserID int64 `params:"user_id" validate:"required"`
}

type PlayerOnlineResponse struct {
	UserID int64 `json:"user_id"`
	Online bool  `json:"online"`
}

type PlayerOnlineHandler struct {
	usecase httpUsecase.PlayerOnlineUseCase
}

func NewPlayerOnlineHandler(usecase httpUsecase.PlayerOnlineUseCase) *PlayerOnlineHandler {
	return &PlayerOnlineHandler{
		usecase: usecase,
	}
}

func (h *PlayerOnlineHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *PlayerOnlineRequest) (*PlayerOnlineResponse, int, error) {
	status, online, err := h.usecase.Execute(ctx, req.UserID)
	if err != nil {
		return nil, status, err
	}
	return &PlayerOnlineResponse{UserID: req.UserID, Online: online}, status, nil
}
