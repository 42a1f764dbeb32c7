package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type lifecycleAdvancer interface {
	AdvanceLifecycle(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler переводит брони approved -> active -> completed по времени начала и конца.
type Scheduler struct {
	bookings lifecycleAdvancer
	interval time.Duration
	logger   logger.Logger
}

func New(bookings lifecycleAdvancer, interval time.Duration, log logger.Logger) *Scheduler {
	return &Scheduler{
		bookings: bookings,
		interval: interval,
		logger:   log,
	}
}

// Start блокируется до отмены ctx. Первый проход выполняется сразу,
// чтобы догнать брони, начавшиеся или закончившиеся пока сервис был выключен.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("lifecycle scheduler started", logger.Duration("interval", s.interval))

	s.advance(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("lifecycle scheduler stopped")
			return
		case <-ticker.C:
			s.advance(ctx)
		}
	}
}

func (s *Scheduler) advance(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	changed, err := s.bookings.AdvanceLifecycle(ctx)
	if err != nil {
		s.logger.LogAttrs(ctx, logger.ErrorLevel, "advance booking lifecycle",
			logger.String("error", err.Error()),
		)
		return
	}
	if len(changed) == 0 {
		return
	}

	counts := countByStatus(changed)
	s.logger.LogAttrs(ctx, logger.InfoLevel, "booking lifecycle advanced",
		logger.Int("activated", counts[domain.BookingStatusActive]),
		logger.Int("completed", counts[domain.BookingStatusCompleted]),
	)

	for _, b := range changed {
		s.logger.LogAttrs(ctx, logger.DebugLevel, "booking status advanced",
			logger.String("booking_id", b.ID),
			logger.String("item_id", b.ItemID),
			logger.String("status", string(b.Status)),
		)
	}
}

func countByStatus(bookings []*domain.Booking) map[domain.BookingStatus]int {
	counts := make(map[domain.BookingStatus]int, 2)
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}
