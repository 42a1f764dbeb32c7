package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

type SessionStore interface {
	Save(ctx context.Context, token string, user domain.CurrentUser, ttl time.Duration) error
	Get(ctx context.Context, token string) (domain.CurrentUser, error)
	Delete(ctx context.Context, token string) error
}
