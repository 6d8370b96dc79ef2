package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pong-service/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// matchFinishedEvent is the envelope other services consume from the game
// topic. Keyed by winner id so a player's results land in one partition.
type matchFinishedEvent struct {
	Type      string              `json:"type"`
	Timestamp time.Time           `json:"timestamp"`
	Match     *domain.MatchRecord `json:"match"`
}

type Publisher struct {
	writer *kafka.Writer
}

func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	zap.L().Info("Kafka publisher ready",
		zap.Strings("brokers", brokers),
		zap.String("topic", topic))
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishMatchFinished(ctx context.Context, rec *domain.MatchRecord) error {
	event := matchFinishedEvent{
		Type:      "game.match_finished",
		Timestamp: time.Now(),
		Match:     rec,
	}
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal match finished event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(rec.WinnerID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write match finished event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
