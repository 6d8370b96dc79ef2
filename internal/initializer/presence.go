package initializer

import (
	"fmt"

	"pong-service/config"
	"pong-service/infra/redis"

	"go.uber.org/zap"
)

func InitPresence(appConfig config.Config) *redis.PresenceManager {
	address := fmt.Sprintf("%s:%s", appConfig.SessionRedis.Host, appConfig.SessionRedis.Port)

	presence, err := redis.NewPresenceManager(address, appConfig.SessionRedis.Password, appConfig.SessionRedis.DB)
	if err != nil {
		zap.L().Fatal("Failed to initialize presence redis", zap.Error(err))
	}
	return presence
}
