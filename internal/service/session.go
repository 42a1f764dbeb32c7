package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type SessionService struct {
	users  ports.UserRepo
	store  ports.SessionStore
	ttl    time.Duration
	logger logger.Logger
}

func NewSessionService(
	users ports.UserRepo,
	store ports.SessionStore,
	ttl time.Duration,
	logger logger.Logger,
) *SessionService {
	return &SessionService{
		users:  users,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Login открывает сессию по имени пользователя и возвращает её токен.
func (s *SessionService) Login(ctx context.Context, username string) (string, domain.CurrentUser, error) {
	username = NormalizeUsername(username)
	if username == "" {
		return "", domain.CurrentUser{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.CurrentUser{}, fmt.Errorf("%w: unknown user %q", domain.ErrUnauthenticated, username)
		}
		return "", domain.CurrentUser{}, fmt.Errorf("get user: %w", err)
	}

	current := domain.CurrentUser{ID: user.ID, Name: user.Name}
	token := uuid.New().String()
	if err = s.store.Save(ctx, token, current, s.ttl); err != nil {
		return "", domain.CurrentUser{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("session opened", logger.String("user_id", user.ID))

	return token, current, nil
}

// Resolve возвращает сессию по токену. Пустой, неизвестный или истёкший
// токен даёт анонимную сессию без ошибки.
func (s *SessionService) Resolve(ctx context.Context, token string) (domain.Session, error) {
	if token == "" {
		return domain.NoSession(), nil
	}

	user, err := s.store.Get(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.NoSession(), nil
		}
		return domain.NoSession(), fmt.Errorf("resolve session: %w", err)
	}

	return domain.NewSession(user), nil
}

func (s *SessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Delete(ctx, token)
}
