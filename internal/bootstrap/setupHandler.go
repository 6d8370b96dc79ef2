package bootstrap

import (
	httpHandler "pong-service/internal/api/http/handler"
	httpUsecase "pong-service/internal/api/http/usecase"
	wsHandler "pong-service/internal/api/ws/handler"
	gameHub "pong-service/internal/api/ws/hub"
	wsUsecase "pong-service/internal/api/ws/usecase"
	"pong-service/internal/game"
)

func SetupHTTPHandlers(postgresRepository PostgresRepository, presence PresenceManager, engine *game.Engine) map[string]interface{} {
	recentMatchesUseCase := httpUsecase.NewRecentMatchesUseCase(postgresRepository)
	recentMatchesHandler := httpHandler.NewRecentMatchesHandler(recentMatchesUseCase)

	playerOnlineUseCase := httpUsecase.NewPlayerOnlineUseCase(presence)
	playerOnlineHandler := httpHandler.NewPlayerOnlineHandler(playerOnlineUseCase)

	statsUseCase := httpUsecase.NewStatsUseCase(engine)
	statsHandler := httpHandler.NewStatsHandler(statsUseCase)

	return map[string]interface{}{
		"recent-matches": recentMatchesHandler,
		"player-online":  playerOnlineHandler,
		"stats":          statsHandler,
	}
}

func SetupWSHandlers(hub *gameHub.Hub, presence PresenceManager) map[string]interface{} {
	gameConnectUseCase := wsUsecase.NewGameConnectUseCase(hub, presence)
	gameConnectHandler := wsHandler.NewGameConnectHandler(gameConnectUseCase)

	return map[string]interface{}{
		"game-connect": gameConnectHandler,
	}
}
