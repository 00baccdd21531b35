// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// snapshotTTL bounds how long a published table view outlives its game.
const snapshotTTL = 24 * time.Hour

// Connect opens a client and pings it.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// Publisher mirrors table state into Redis: the spectator snapshot of each
// game is stored under prefix+id and published on the channel of the same
// name. A Publisher with a nil client does nothing, so the server runs the
// same with or without Redis.
type Publisher struct {
	rdb    *redis.Client
	prefix string
	log    *logrus.Logger
}

func NewPublisher(rdb *redis.Client, prefix string, log *logrus.Logger) *Publisher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Publisher{rdb: rdb, prefix: prefix, log: log}
}

// Enabled reports whether a Redis client is attached.
func (p *Publisher) Enabled() bool {
	return p != nil && p.rdb != nil
}

// Key returns the snapshot key, which doubles as the pub/sub channel.
func (p *Publisher) Key(gameID uuid.UUID) string {
	return p.prefix + gameID.String()
}

// PublishSnapshot stores snapshot as the latest view of the game and
// notifies subscribers.
func (p *Publisher) PublishSnapshot(ctx context.Context, gameID uuid.UUID, snapshot interface{}) error {
	if !p.Enabled() {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	key := p.Key(gameID)
	pipe := p.rdb.TxPipeline()
	pipe.Set(ctx, key, data, snapshotTTL)
	pipe.Publish(ctx, key, data)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish snapshot for %s: %w", key, err)
	}
	p.log.WithFields(logrus.Fields{"key": key, "bytes": len(data)}).Debug("snapshot published")
	return nil
}

// Latest returns the last published snapshot, or nil if there is none.
func (p *Publisher) Latest(ctx context.Context, gameID uuid.UUID) (json.RawMessage, error) {
	if !p.Enabled() {
		return nil, nil
	}
	data, err := p.rdb.Get(ctx, p.Key(gameID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return json.RawMessage(data), nil
}
