package initializer

import (
	"fmt"

	"pong-service/config"
	"pong-service/infra/postgres"

	"go.uber.org/zap"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	pg := appConfig.Postgres
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		pg.User, pg.Password, pg.Host, pg.Port, pg.DB)

	repo, err := postgres.NewRepository(connString)
	if err != nil {
		zap.L().Fatal("Failed to initialize database", zap.Error(err))
	}
	return repo
}
