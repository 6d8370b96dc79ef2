package wsUsecase

import (
	"context"

	"pong-service/domain"

	"github.com/gofiber/contrib/websocket"
)

type GameConnectUseCase interface {
	Execute(c *websocket.Conn, ctx context.Context, userID int64)
}

type Hub interface {
	Run(ctx context.Context)
	RegisterClient(client *domain.Client)
}

type PresenceManager interface {
	SetOnline(ctx context.Context, userID int64) error
	SetOffline(ctx context.Context, userID int64) error
}
