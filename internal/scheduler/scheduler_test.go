package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestScheduler_CatchUpOnStart(t *testing.T) {
	advancer := mocks.NewMockLifecycleAdvancer(t)

	// интервал больше теста: вызов возможен только при старте
	s := New(advancer, time.Hour, newTestLogger(t))

	advancer.EXPECT().AdvanceLifecycle(mock.Anything).Return([]*domain.Booking{
		{ID: "b1", ItemID: "i1", Status: domain.BookingStatusActive},
	}, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s.Start(ctx)
}

func TestScheduler_TicksUntilCancelled(t *testing.T) {
	advancer := mocks.NewMockLifecycleAdvancer(t)
	s := New(advancer, 20*time.Millisecond, newTestLogger(t))

	advancer.EXPECT().AdvanceLifecycle(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(advancer.Calls), 2)
}

func TestScheduler_KeepsTickingAfterError(t *testing.T) {
	advancer := mocks.NewMockLifecycleAdvancer(t)
	s := New(advancer, 20*time.Millisecond, newTestLogger(t))

	advancer.EXPECT().AdvanceLifecycle(mock.Anything).Return(nil, errors.New("db error")).Once()
	advancer.EXPECT().AdvanceLifecycle(mock.Anything).Return([]*domain.Booking{
		{ID: "b2", Status: domain.BookingStatusCompleted},
	}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(advancer.Calls), 2)
}

func TestScheduler_SkipsWhenAlreadyCancelled(t *testing.T) {
	advancer := mocks.NewMockLifecycleAdvancer(t)
	s := New(advancer, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
	advancer.AssertNotCalled(t, "AdvanceLifecycle", mock.Anything)
}

func TestCountByStatus(t *testing.T) {
	counts := countByStatus([]*domain.Booking{
		{Status: domain.BookingStatusActive},
		{Status: domain.BookingStatusActive},
		{Status: domain.BookingStatusCompleted},
	})

	assert.Equal(t, 2, counts[domain.BookingStatusActive])
	assert.Equal(t, 1, counts[domain.BookingStatusCompleted])
	assert.Zero(t, counts[domain.BookingStatusPending])
}
