package initializer

import (
	"context"

	gameHub "pong-service/internal/api/ws/hub"
)

func InitWebsocket(ctx context.Context) *gameHub.Hub {
	hub := gameHub.NewHub()
	hub.Run(ctx)
	return hub
}
