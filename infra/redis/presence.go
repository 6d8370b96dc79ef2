package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const presenceTTL = 2 * time.Minute

// PresenceManager tracks which players currently hold a live game socket.
// Keys carry a TTL so a crashed instance cannot leave players online forever;
// the socket lifecycle refreshes or deletes them in the normal path.
type PresenceManager struct {
	client *redis.Client
}

func NewPresenceManager(addr, password string, db int) (*PresenceManager, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	zap.L().Info("Connected to Redis", zap.String("addr", addr))
	return &PresenceManager{client: client}, nil
}

func (p *PresenceManager) Close() error {
	return p.client.Close()
}

func presenceKey(userID int64) string {
	return fmt.Sprintf("presence:game:%d", userID)
}

func (p *PresenceManager) SetOnline(ctx context.Context, userID int64) error {
	return p.client.Set(ctx, presenceKey(userID), "1", presenceTTL).Err()
}

func (p *PresenceManager) SetOffline(ctx context.Context, userID int64) error {
	return p.client.Del(ctx, presenceKey(userID)).Err()
}

func (p *PresenceManager) IsOnline(ctx context.Context, userID int64) (bool, error) {
	n, err := p.client.Exists(ctx, presenceKey(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check presence: %w", err)
	}
	return n > 0, nil
}
