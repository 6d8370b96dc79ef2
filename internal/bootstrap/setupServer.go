package bootstrap

import (
	"time"

	"pong-service/config"
	httpGameHandler "pong-service/internal/api/http/handler"
	wsHandler "pong-service/internal/api/ws/handler"
	"pong-service/internal/handler"
	"pong-service/internal/server"

	"github.com/gofiber/fiber/v2"
)

func SetupServer(config config.Config, httpHandlers map[string]interface{}, wsHandlers map[string]interface{}) *fiber.App {
	serverConfig := server.Config{
		Port:         config.Server.Port,
		IdleTimeout:  5 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	app := server.NewFiberApp(serverConfig)

	recentMatchesHandler := httpHandlers["recent-matches"].(*httpGameHandler.RecentMatchesHandler)
	playerOnlineHandler := httpHandlers["player-online"].(*httpGameHandler.PlayerOnlineHandler)
	statsHandler := httpHandlers["stats"].(*httpGameHandler.StatsHandler)

	app.Get("/matches/recent", handler.HandleWithFiber[httpGameHandler.RecentMatchesRequest, httpGameHandler.RecentMatchesResponse](recentMatchesHandler))
	app.Get("/players/:user_id/online", handler.HandleWithFiber[httpGameHandler.PlayerOnlineRequest, httpGameHandler.PlayerOnlineResponse](playerOnlineHandler))
	app.Get("/stats", handler.HandleWithFiber[httpGameHandler.StatsRequest, httpGameHandler.StatsResponse](statsHandler))

	wsRoute := app.Group("/ws")
	gameConnectHandler := wsHandlers["game-connect"].(*wsHandler.GameConnectHandler)
	wsRoute.Get("/game", handler.HandleWithFiberWS[wsHandler.GameConnectRequest](gameConnectHandler))

	return app
}
