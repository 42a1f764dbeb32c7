package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports"
)

// логин студента или сотрудника: NIM, NIP или короткое имя
var usernamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._]{2,31}$`)

type UserService struct {
	repo ports.UserRepo
	now  func() time.Time
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

// NormalizeUsername приводит логин к виду, в котором он хранится и ищется.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	username := NormalizeUsername(input.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be 3-32 chars of a-z, 0-9, '.' or '_'", domain.ErrValidation)
	}
	if input.TelegramChatID != nil && *input.TelegramChatID == 0 {
		return nil, fmt.Errorf("%w: telegram chat id must be non-zero", domain.ErrValidation)
	}

	name := strings.Join(strings.Fields(input.Name), " ")
	if name == "" {
		name = username
	}

	user := &domain.User{
		ID:             uuid.NewString(),
		Name:           name,
		Username:       username,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      s.now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
