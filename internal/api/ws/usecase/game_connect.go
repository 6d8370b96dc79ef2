package wsUsecase

import (
	"context"

	"pong-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type gameConnectUseCase struct {
	hub      Hub
	presence PresenceManager
}

func NewGameConnectUseCase(hub Hub, presence PresenceManager) GameConnectUseCase {
	return &gameConnectUseCase{
		hub:      hub,
		presence: presence,
	}
}

// Execute hands the upgraded connection over to the hub and blocks until the
// hub signals teardown through Done. Returning unwinds the fiber websocket
// handler, which closes the underlying connection.
func (u *gameConnectUseCase) Execute(c *websocket.Conn, ctx context.Context, userID int64) {
	client := &domain.Client{
		ID:     uuid.New(),
		UserID: userID,
		Conn:   c,
		Send:   make(chan []byte, 64),
		Done:   make(chan struct{}),
	}

	if err := u.presence.SetOnline(ctx, userID); err != nil {
		zap.L().Warn("failed to mark player online", zap.Int64("user_id", userID), zap.Error(err))
	}

	u.hub.RegisterClient(client)
	<-client.Done

	if err := u.presence.SetOffline(ctx, userID); err != nil {
		zap.L().Warn("failed to mark player offline", zap.Int64("user_id", userID), zap.Error(err))
	}
}
