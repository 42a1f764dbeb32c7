package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	// UpdateStatus меняет статус, только если текущий равен from.
	UpdateStatus(ctx context.Context, id string, from domain.BookingStatus, upd domain.StatusUpdate) error
	ActivateStarted(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	CompleteFinished(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
