package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	itemRepo    ports.ItemRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	itemRepo ports.ItemRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func validateForm(in domain.BookingFormInput) error {
	switch {
	case !in.Type.Valid():
		return fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, in.Type)
	case strings.TrimSpace(in.ItemID) == "":
		return fmt.Errorf("%w: item is required", domain.ErrValidation)
	case in.StartDate.IsZero() || in.EndDate.IsZero():
		return fmt.Errorf("%w: start and end dates are required", domain.ErrValidation)
	case !in.EndDate.After(in.StartDate):
		return fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	case strings.TrimSpace(in.Purpose) == "":
		return fmt.Errorf("%w: purpose is required", domain.ErrValidation)
	}
	return nil
}

// Create сохраняет новую заявку в статусе pending.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	if err := validateForm(input.BookingFormInput); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("check item: %w", err)
	}
	if item.Type != input.Type {
		return nil, fmt.Errorf("%w: item %s is not a %s", domain.ErrValidation, item.ID, input.Type)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	userName := input.UserName
	if userName == "" {
		userName = user.Name
	}

	now := s.now()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		Type:      input.Type,
		ItemID:    item.ID,
		ItemName:  item.Name,
		UserID:    user.ID,
		UserName:  userName,
		StartDate: input.StartDate.UTC(),
		EndDate:   input.EndDate.UTC(),
		Purpose:   strings.TrimSpace(input.Purpose),
		Notes:     strings.TrimSpace(input.Notes),
		Status:    domain.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking submitted",
		logger.String("booking_id", booking.ID),
		logger.String("item_id", booking.ItemID),
		logger.String("user_id", booking.UserID),
	)

	go s.notifier.NotifyBookingSubmitted(context.WithoutCancel(ctx), user, booking)

	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *filter.Status)
	}
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, *filter.Type)
	}
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx, domain.BookingFilter{UserID: userID})
}

func (s *BookingService) UpdateStatus(ctx context.Context, id string, input domain.StatusChangeInput) (*domain.Booking, error) {
	if !input.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, input.Status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if !booking.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, booking.Status, input.Status)
	}

	// причина хранится только у отклонённых броней
	var reason string
	if input.Status == domain.BookingStatusRejected {
		reason = strings.TrimSpace(input.RejectionReason)
		if reason == "" {
			return nil, fmt.Errorf("%w: rejection reason is required", domain.ErrValidation)
		}
	}

	now := s.now()
	upd := domain.StatusUpdate{
		Status:          input.Status,
		RejectionReason: reason,
		UpdatedAt:       now,
	}
	if input.Status == domain.BookingStatusApproved {
		upd.ApprovedAt = &now
	}

	if err = s.bookingRepo.UpdateStatus(ctx, id, booking.Status, upd); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", id),
		logger.String("from", string(booking.Status)),
		logger.String("to", string(input.Status)),
	)

	booking.Status = upd.Status
	booking.RejectionReason = upd.RejectionReason
	booking.UpdatedAt = upd.UpdatedAt
	if upd.ApprovedAt != nil {
		booking.ApprovedAt = upd.ApprovedAt
	}

	go s.notifyStatusChanged(context.WithoutCancel(ctx), []*domain.Booking{booking})

	return booking, nil
}

// AdvanceLifecycle переводит approved -> active и active -> completed по времени.
func (s *BookingService) AdvanceLifecycle(ctx context.Context) ([]*domain.Booking, error) {
	now := s.now()

	activated, err := s.bookingRepo.ActivateStarted(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("activate started: %w", err)
	}

	completed, err := s.bookingRepo.CompleteFinished(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	changed := make([]*domain.Booking, 0, len(activated)+len(completed))
	changed = append(changed, activated...)
	changed = append(changed, completed...)
	if len(changed) > 0 {
		go s.notifyStatusChanged(context.WithoutCancel(ctx), changed)
	}

	return changed, nil
}

func (s *BookingService) notifyStatusChanged(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for status notification",
				logger.String("user_id", b.UserID),
				logger.String("error", err.Error()),
			)
			continue
		}

		s.notifier.NotifyBookingStatusChanged(ctx, user, b)
	}
}
