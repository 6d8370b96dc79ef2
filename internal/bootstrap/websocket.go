package bootstrap

import (
	"context"

	gameHub "pong-service/internal/api/ws/hub"
	"pong-service/internal/initializer"
)

func InitWebsocket(ctx context.Context) *gameHub.Hub {
	return initializer.InitWebsocket(ctx)
}
