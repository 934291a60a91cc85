package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medibook/models"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "chat_session:"

// RedisSessionStore keeps JSON-marshaled sessions in Redis with a TTL, so a
// conversation expires after a period of inactivity instead of leaking.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", sessionID, err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session %s: %w", session.SessionID, err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session %s: %w", session.SessionID, err)
	}
	return nil
}
