package ports

import (
	"context"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

type CalendarRepo interface {
	List(ctx context.Context) ([]domain.CalendarEvent, error)
	Upsert(ctx context.Context, events []domain.CalendarEvent) (int, error)
}
