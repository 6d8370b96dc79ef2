package wsHandler

import (
	"context"
	"strconv"

	"pong-service/domain"
	wsUsecase "pong-service/internal/api/ws/usecase"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// GameConnectHandler upgrades and authenticates the game socket. The gateway
// in front of this service verifies the token and injects X-User-Id.
type GameConnectHandler struct {
	usecase wsUsecase.GameConnectUseCase
}

type GameConnectRequest struct {
}

func NewGameConnectHandler(usecase wsUsecase.GameConnectUseCase) *GameConnectHandler {
	return &GameConnectHandler{
		usecase: usecase,
	}
}

func (h *GameConnectHandler) HandleWS(c *websocket.Conn, ctx context.Context, req *GameConnectRequest) {
	sendErrorToClient := func(msg string, code int) {
		c.WriteJSON(domain.WebSocketErrorMessage{
			Type:    "error",
			Message: msg,
			Code:    code,
		})
	}

	header := c.Headers("X-User-Id")
	if header == "" {
		sendErrorToClient("missing user identity", fiber.StatusUnauthorized)
		return
	}

	userID, err := strconv.ParseInt(header, 10, 64)
	if err != nil {
		sendErrorToClient("malformed user identity", fiber.StatusUnauthorized)
		return
	}

	h.usecase.Execute(c, ctx, userID)
}
