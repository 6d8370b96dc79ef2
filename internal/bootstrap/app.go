package bootstrap

import (
	"context"
	"time"

	"pong-service/config"
	"pong-service/internal/game"
	"pong-service/pkg/graceful"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config       config.Config
	postgresRepo PostgresRepository
	presence     PresenceManager
	kafka        Messaging
	engine       *game.Engine
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	a.postgresRepo = InitDatabase(a.config)
	a.presence = InitPresence(a.config)
	a.kafka = InitMessaging(a.config)

	hub := InitWebsocket(context.Background())
	a.engine = game.NewEngine(hub, a.postgresRepo, a.kafka)
	hub.BindEngine(a.engine)

	a.httpHandlers = SetupHTTPHandlers(a.postgresRepo, a.presence, a.engine)
	a.wsHandlers = SetupWSHandlers(hub, a.presence)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

func (a *App) Start() {
	go func() {
		port := a.config.Server.Port
		if err := a.fiberApp.Listen(":" + port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	defer func() {
		if err := a.postgresRepo.Close(); err != nil {
			zap.L().Error("Failed to close database", zap.Error(err))
		}
		if err := a.presence.Close(); err != nil {
			zap.L().Error("Failed to close presence redis", zap.Error(err))
		}
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka publisher", zap.Error(err))
		}
	}()

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background())
}
