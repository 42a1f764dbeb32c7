package ports

import (
	"context"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingSubmitted(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingStatusChanged(ctx context.Context, user *domain.User, b *domain.Booking)
}
