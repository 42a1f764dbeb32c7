package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SiPinjam/internal/calendar"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/handler/dto"
	"github.com/stpnv0/SiPinjam/internal/presenter"
	"github.com/stpnv0/SiPinjam/internal/submission"
	"github.com/wb-go/wbf/ginext"
)

type ItemSvc interface {
	List(ctx context.Context, typ *domain.ItemType) ([]*domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}

type BookingSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, input domain.StatusChangeInput) (*domain.Booking, error)
}

type BookingSubmitter interface {
	Submit(ctx context.Context, form *submission.Form, session domain.Session, input domain.BookingFormInput) submission.Outcome
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type SessionSvc interface {
	Login(ctx context.Context, username string) (string, domain.CurrentUser, error)
	Logout(ctx context.Context, token string) error
}

type CalendarSvc interface {
	CurrentMonth() calendar.Month
	MonthView(ctx context.Context, month calendar.Month, typ *domain.EventType, selected *time.Time) (*calendar.MonthView, error)
	Export(ctx context.Context, month *calendar.Month, typ *domain.EventType, format calendar.Format) (calendar.Export, error)
}

type Deps struct {
	Items      ItemSvc
	Bookings   BookingSvc
	Submitter  BookingSubmitter
	Users      UserSvc
	Sessions   SessionSvc
	Calendar   CalendarSvc
	Presenter  *presenter.Formatter
	SessionTTL time.Duration
}

type Handler struct {
	itemService     ItemSvc
	bookingService  BookingSvc
	submitter       BookingSubmitter
	userService     UserSvc
	sessionService  SessionSvc
	calendarService CalendarSvc
	presenter       *presenter.Formatter
	sessionTTL      time.Duration
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		itemService:     d.Items,
		bookingService:  d.Bookings,
		submitter:       d.Submitter,
		userService:     d.Users,
		sessionService:  d.Sessions,
		calendarService: d.Calendar,
		presenter:       d.Presenter,
		sessionTTL:      d.SessionTTL,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())
	c.JSON(errorStatus(err), dto.ErrorResponse{Error: publicMessage(err)})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUnknownEventType):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}

func publicMessage(err error) string {
	if errorStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
