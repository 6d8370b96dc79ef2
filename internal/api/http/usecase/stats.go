package httpUsecase

import (
	"context"
	"net/http"

	"pong-service/internal/game"
)

type StatsUseCase interface {
	Execute(ctx context.Context) (int, game.Stats, error)
}

type statsUseCase struct {
	engine GameEngine
}

func NewStatsUseCase(engine GameEngine) StatsUseCase {
	return &statsUseCase{
		engine: engine,
	}
}

func (u *statsUseCase) Execute(ctx context.Context) (int, game.Stats, error) {
	return http.StatusOK, u.engine.Stats(), nil
}
