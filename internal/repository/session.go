package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/SiPinjam/internal/domain"
)

const sessionKeyPrefix = "session:"

// SessionRepository хранит сессии в Redis как JSON под ключом session:<token>.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepo(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

func (r *SessionRepository) Save(ctx context.Context, token string, user domain.CurrentUser, ttl time.Duration) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err = r.client.Set(ctx, sessionKey(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Get(ctx context.Context, token string) (domain.CurrentUser, error) {
	payload, err := r.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.CurrentUser{}, domain.ErrSessionNotFound
		}
		return domain.CurrentUser{}, fmt.Errorf("get session: %w", err)
	}

	var user domain.CurrentUser
	if err = json.Unmarshal(payload, &user); err != nil {
		return domain.CurrentUser{}, fmt.Errorf("unmarshal session: %w", err)
	}

	return user, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
