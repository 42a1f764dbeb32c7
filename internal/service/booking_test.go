package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	items    *mocks.MockItemRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockBookingNotifier
}

var fixedNow = time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		items:    mocks.NewMockItemRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.bookings, d.items, d.users, d.notifier, newTestLogger(t))
	svc.now = func() time.Time { return fixedNow }
	return svc, d
}

func waitNotified(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func validInput() domain.CreateBookingInput {
	start := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	return domain.CreateBookingInput{
		BookingFormInput: domain.BookingFormInput{
			Type:      domain.ItemTypeRoom,
			ItemID:    "i1",
			StartDate: start,
			EndDate:   start.Add(4 * time.Hour),
			Purpose:   "Rapat himpunan",
		},
		UserID:   "u1",
		UserName: "Budi",
	}
}

func TestBookingService_Create_Success(t *testing.T) {
	svc, d := newBookingService(t)

	item := &domain.Item{ID: "i1", Type: domain.ItemTypeRoom, Name: "Aula Utama"}
	user := &domain.User{ID: "u1", Name: "Budi Santoso"}

	d.items.EXPECT().GetByID(mock.Anything, "i1").Return(item, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusPending && b.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	done := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, user, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
		Return()

	booking, err := svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Aula Utama", booking.ItemName)
	assert.Equal(t, "Budi", booking.UserName)
	assert.Equal(t, fixedNow, booking.CreatedAt)

	waitNotified(t, done)
}

func TestBookingService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.CreateBookingInput)
	}{
		{"end before start", func(in *domain.CreateBookingInput) { in.EndDate = in.StartDate.Add(-time.Hour) }},
		{"end equals start", func(in *domain.CreateBookingInput) { in.EndDate = in.StartDate }},
		{"missing purpose", func(in *domain.CreateBookingInput) { in.Purpose = "  " }},
		{"unknown type", func(in *domain.CreateBookingInput) { in.Type = "vehicle" }},
		{"missing item", func(in *domain.CreateBookingInput) { in.ItemID = "" }},
		{"zero start", func(in *domain.CreateBookingInput) { in.StartDate = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Create_NoUser(t *testing.T) {
	svc, _ := newBookingService(t)
	in := validInput()
	in.UserID = ""

	_, err := svc.Create(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestBookingService_Create_ItemNotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.items.EXPECT().GetByID(mock.Anything, "i1").Return(nil, domain.ErrItemNotFound)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestBookingService_Create_ItemTypeMismatch(t *testing.T) {
	svc, d := newBookingService(t)

	d.items.EXPECT().GetByID(mock.Anything, "i1").
		Return(&domain.Item{ID: "i1", Type: domain.ItemTypeEquipment}, nil)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Create_RepoError(t *testing.T) {
	svc, d := newBookingService(t)

	repoErr := errors.New("db error")
	d.items.EXPECT().GetByID(mock.Anything, "i1").Return(&domain.Item{ID: "i1", Type: domain.ItemTypeRoom}, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), validInput())

	assert.ErrorIs(t, err, repoErr)
}

func TestBookingService_UpdateStatus_Approve(t *testing.T) {
	svc, d := newBookingService(t)

	booking := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}
	user := &domain.User{ID: "u1"}

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending,
		mock.MatchedBy(func(u domain.StatusUpdate) bool {
			return u.Status == domain.BookingStatusApproved && u.ApprovedAt != nil && u.ApprovedAt.Equal(fixedNow)
		}),
	).Return(nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	done := make(chan struct{})
	d.notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, user, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
		Return()

	got, err := svc.UpdateStatus(context.Background(), "b1", domain.StatusChangeInput{Status: domain.BookingStatusApproved})

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, got.Status)
	require.NotNil(t, got.ApprovedAt)

	waitNotified(t, done)
}

func TestBookingService_UpdateStatus_ReasonOnlyForRejected(t *testing.T) {
	for _, target := range []domain.BookingStatus{domain.BookingStatusApproved, domain.BookingStatusCancelled} {
		t.Run(string(target), func(t *testing.T) {
			svc, d := newBookingService(t)

			user := &domain.User{ID: "u1"}
			d.bookings.EXPECT().GetByID(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusPending}, nil)
			d.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending,
				mock.MatchedBy(func(u domain.StatusUpdate) bool {
					return u.Status == target && u.RejectionReason == ""
				}),
			).Return(nil)
			d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

			done := make(chan struct{})
			d.notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, user, mock.Anything).
				Run(func(context.Context, *domain.User, *domain.Booking) { close(done) }).
				Return()

			got, err := svc.UpdateStatus(context.Background(), "b1", domain.StatusChangeInput{
				Status:          target,
				RejectionReason: "ruangan penuh",
			})

			require.NoError(t, err)
			assert.Equal(t, target, got.Status)
			assert.Empty(t, got.RejectionReason)

			waitNotified(t, done)
		})
	}
}

func TestBookingService_UpdateStatus_RejectRequiresReason(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)

	_, err := svc.UpdateStatus(context.Background(), "b1", domain.StatusChangeInput{Status: domain.BookingStatusRejected})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_UpdateStatus_InvalidTransition(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCompleted}, nil)

	_, err := svc.UpdateStatus(context.Background(), "b1", domain.StatusChangeInput{Status: domain.BookingStatusApproved})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_UpdateStatus_ConcurrentChange(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusPending}, nil)
	d.bookings.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending, mock.Anything).
		Return(domain.ErrInvalidTransition)

	_, err := svc.UpdateStatus(context.Background(), "b1", domain.StatusChangeInput{Status: domain.BookingStatusCancelled})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.UpdateStatus(context.Background(), "b1", domain.StatusChangeInput{Status: "archived"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_AdvanceLifecycle(t *testing.T) {
	svc, d := newBookingService(t)

	activated := []*domain.Booking{{ID: "b1", UserID: "u1", Status: domain.BookingStatusActive}}
	completed := []*domain.Booking{{ID: "b2", UserID: "u1", Status: domain.BookingStatusCompleted}}
	user := &domain.User{ID: "u1"}

	d.bookings.EXPECT().ActivateStarted(mock.Anything, fixedNow).Return(activated, nil)
	d.bookings.EXPECT().CompleteFinished(mock.Anything, fixedNow).Return(completed, nil)
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil).Times(2)

	notified := make(chan struct{}, 2)
	d.notifier.EXPECT().NotifyBookingStatusChanged(mock.Anything, user, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Booking) { notified <- struct{}{} }).
		Return().Times(2)

	changed, err := svc.AdvanceLifecycle(context.Background())

	require.NoError(t, err)
	assert.Len(t, changed, 2)

	waitNotified(t, notified)
	waitNotified(t, notified)
}

func TestBookingService_AdvanceLifecycle_Nothing(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().ActivateStarted(mock.Anything, fixedNow).Return([]*domain.Booking{}, nil)
	d.bookings.EXPECT().CompleteFinished(mock.Anything, fixedNow).Return([]*domain.Booking{}, nil)

	changed, err := svc.AdvanceLifecycle(context.Background())

	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestBookingService_AdvanceLifecycle_RepoError(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().ActivateStarted(mock.Anything, fixedNow).Return(nil, errors.New("db error"))

	_, err := svc.AdvanceLifecycle(context.Background())

	require.Error(t, err)
}

func TestBookingService_List_InvalidFilter(t *testing.T) {
	svc, _ := newBookingService(t)

	status := domain.BookingStatus("archived")
	_, err := svc.List(context.Background(), domain.BookingFilter{Status: &status})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{UserID: "u1"}).
		Return([]*domain.Booking{{ID: "b1"}}, nil)

	got, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
