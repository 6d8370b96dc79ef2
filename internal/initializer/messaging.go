package initializer

import (
	"pong-service/config"
	"pong-service/infra/messaging"
)

func InitMessaging(appConfig config.Config) *messaging.Publisher {
	return messaging.NewPublisher(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)
}
