package submission

import (
	"context"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	NoticeLoginRequired = "Silakan login terlebih dahulu"
	NoticeSubmitted     = "Peminjaman berhasil diajukan!"
	NoticeFailed        = "Gagal mengajukan peminjaman"

	RedirectLogin    = "/login"
	RedirectBookings = "/user/bookings"
)

type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

type BookingCreator interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
}

// Form хранит состояние формы бронирования на стороне клиента.
type Form struct {
	open          bool
	state         State
	PreselectType domain.ItemType
	PreselectItem string
}

func NewForm() *Form {
	return &Form{state: StateIdle}
}

// Open открывает форму; тип и объект можно выбрать заранее.
func (f *Form) Open(typ domain.ItemType, itemID string) {
	f.open = true
	f.state = StateIdle
	f.PreselectType = typ
	f.PreselectItem = itemID
}

func (f *Form) Close() {
	f.open = false
	f.state = StateIdle
	f.PreselectType = ""
	f.PreselectItem = ""
}

func (f *Form) IsOpen() bool {
	return f.open
}

func (f *Form) State() State {
	return f.state
}

type Outcome struct {
	Booking  *domain.Booking
	Notice   Notice
	Redirect string
	State    State
	Err      error
}

type Submitter struct {
	bookings BookingCreator
	logger   logger.Logger
}

func NewSubmitter(bookings BookingCreator, logger logger.Logger) *Submitter {
	return &Submitter{bookings: bookings, logger: logger}
}

// Submit проводит одну попытку отправки формы. Без пользователя в сессии
// ничего не сохраняется и возвращается переход на страницу входа.
func (s *Submitter) Submit(
	ctx context.Context,
	form *Form,
	session domain.Session,
	input domain.BookingFormInput,
) Outcome {
	user, ok := session.User()
	if !ok {
		form.state = StateFailed
		return Outcome{
			Notice:   Notice{Level: NoticeError, Message: NoticeLoginRequired},
			Redirect: RedirectLogin,
			State:    StateFailed,
			Err:      domain.ErrUnauthenticated,
		}
	}

	form.state = StateSubmitting

	booking, err := s.bookings.Create(ctx, domain.CreateBookingInput{
		BookingFormInput: input,
		UserID:           user.ID,
		UserName:         user.Name,
	})
	if err != nil {
		s.logger.LogAttrs(ctx, logger.WarnLevel, "booking submission failed",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)

		form.state = StateFailed
		return Outcome{
			Notice: Notice{Level: NoticeError, Message: NoticeFailed},
			State:  StateFailed,
			Err:    err,
		}
	}

	form.Close()
	form.state = StateSucceeded

	return Outcome{
		Booking:  booking,
		Notice:   Notice{Level: NoticeSuccess, Message: NoticeSubmitted},
		Redirect: RedirectBookings,
		State:    StateSucceeded,
	}
}
