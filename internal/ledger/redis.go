package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps each date as one hash: {prefix}:assignments:{date},
// field "{period}|{studentKey}", value the letter.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

// NewRedisStore returns a RedisStore using client. An empty prefix defaults
// to "rollbook".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rollbook"
	}
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) dayKey(date string) string {
	return s.Prefix + ":assignments:" + date
}

func (s *RedisStore) Put(ctx context.Context, date string, period int, studentKey, letter string) error {
	field := CellKey(period, studentKey)
	if err := s.Client.HSet(ctx, s.dayKey(date), field, letter).Err(); err != nil {
		return fmt.Errorf("failed to store assignment in Redis: %w", err)
	}
	slog.Debug("assignment stored", "date", date, "period", period, "student", studentKey, "letter", letter)
	return nil
}

func (s *RedisStore) Load(ctx context.Context, date string) (Day, error) {
	data, err := s.Client.HGetAll(ctx, s.dayKey(date)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Day{}, nil
		}
		return nil, fmt.Errorf("failed to load assignments from Redis: %w", err)
	}
	return Day(data), nil
}

// NewRedisClient creates a client and checks the connection.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}
