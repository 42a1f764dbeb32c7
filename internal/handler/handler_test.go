package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/SiPinjam/internal/calendar"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/handler/dto"
	hmocks "github.com/stpnv0/SiPinjam/internal/handler/mocks"
	"github.com/stpnv0/SiPinjam/internal/middleware"
	"github.com/stpnv0/SiPinjam/internal/presenter"
	"github.com/stpnv0/SiPinjam/internal/submission"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testDeps struct {
	items     *hmocks.MockItemSvc
	bookings  *hmocks.MockBookingSvc
	submitter *hmocks.MockBookingSubmitter
	users     *hmocks.MockUserSvc
	sessions  *hmocks.MockSessionSvc
	calendar  *hmocks.MockCalendarSvc
}

// setupRouter собирает роутер; session подставляется вместо Redis-middleware.
func setupRouter(t *testing.T, session domain.Session) (testDeps, http.Handler) {
	t.Helper()
	d := testDeps{
		items:     hmocks.NewMockItemSvc(t),
		bookings:  hmocks.NewMockBookingSvc(t),
		submitter: hmocks.NewMockBookingSubmitter(t),
		users:     hmocks.NewMockUserSvc(t),
		sessions:  hmocks.NewMockSessionSvc(t),
		calendar:  hmocks.NewMockCalendarSvc(t),
	}

	h := NewHandler(Deps{
		Items:      d.items,
		Bookings:   d.bookings,
		Submitter:  d.submitter,
		Users:      d.users,
		Sessions:   d.sessions,
		Calendar:   d.calendar,
		Presenter:  presenter.NewFormatter(time.FixedZone("WIB", 7*60*60)),
		SessionTTL: time.Hour,
	})

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		middleware.SetSession(c, session)
		c.Next()
	})
	api := r.Group("/api")
	{
		api.POST("/sessions", h.Login)
		api.DELETE("/sessions", h.Logout)
		api.GET("/items", h.ListItems)
		api.GET("/items/:id", h.GetItem)
		api.POST("/bookings", h.SubmitBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/me", h.MyBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		api.GET("/calendar", h.GetCalendar)
		api.GET("/calendar/export", h.ExportCalendar)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.GET("/users/:id/bookings", h.GetUserBookings)
	}

	return d, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

var (
	budi      = domain.CurrentUser{ID: uuid.NewString(), Name: "Budi"}
	loggedIn  = domain.NewSession(budi)
	anonymous = domain.NoSession()
)

func submitBody() dto.SubmitBookingRequest {
	return dto.SubmitBookingRequest{
		Type:      "room",
		ItemID:    uuid.NewString(),
		StartDate: "2025-01-10T08:00:00+07:00",
		EndDate:   "2025-01-10T12:00:00+07:00",
		Purpose:   "Rapat himpunan",
	}
}

// --- Sessions ---

func TestHandler_Login_Success(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	d.sessions.EXPECT().Login(mock.Anything, "budi").Return("tok-1", budi, nil)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", dto.LoginRequest{Username: "budi"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "tok-1", resp.Token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.SessionCookie+"=tok-1")
}

func TestHandler_Login_UnknownUser(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	d.sessions.EXPECT().Login(mock.Anything, "ghost").Return("", domain.CurrentUser{}, domain.ErrUnauthenticated)

	w := doJSON(t, r, http.MethodPost, "/api/sessions", dto.LoginRequest{Username: "ghost"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	d.sessions.EXPECT().Logout(mock.Anything, "tok-1").Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/sessions", nil)
	req.Header.Set(middleware.HeaderSessionToken, "tok-1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Items ---

func TestHandler_ListItems_ByType(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	room := domain.ItemTypeRoom
	d.items.EXPECT().List(mock.Anything, &room).Return([]*domain.Item{{ID: "i1", Type: room, Name: "Aula"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/items?type=room", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Aula", resp[0].Name)
}

func TestHandler_GetItem_InvalidID(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	w := doJSON(t, r, http.MethodGet, "/api/items/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetItem_NotFound(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	id := uuid.NewString()
	d.items.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrItemNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/items/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_SubmitBooking_Success(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	body := submitBody()
	created := &domain.Booking{
		ID:        uuid.NewString(),
		Type:      domain.ItemTypeRoom,
		ItemID:    body.ItemID,
		UserID:    budi.ID,
		Status:    domain.BookingStatusPending,
		CreatedAt: time.Now(),
	}

	d.submitter.EXPECT().Submit(mock.Anything, mock.Anything, loggedIn,
		mock.MatchedBy(func(in domain.BookingFormInput) bool {
			return in.ItemID == body.ItemID && in.EndDate.Sub(in.StartDate) == 4*time.Hour
		}),
	).RunAndReturn(func(_ context.Context, form *submission.Form, _ domain.Session, _ domain.BookingFormInput) submission.Outcome {
		form.Close()
		return submission.Outcome{
			Booking:  created,
			Notice:   submission.Notice{Level: submission.NoticeSuccess, Message: submission.NoticeSubmitted},
			Redirect: submission.RedirectBookings,
			State:    submission.StateSucceeded,
		}
	})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.Equal(t, submission.NoticeSubmitted, resp.Notice.Message)
	assert.Equal(t, submission.RedirectBookings, resp.Redirect)
	assert.False(t, resp.FormOpen)
}

func TestHandler_SubmitBooking_LocalFormTimeIsCampusTime(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	body := submitBody()
	body.StartDate = "2025-01-10T08:00"
	body.EndDate = "2025-01-10T12:00"

	d.submitter.EXPECT().Submit(mock.Anything, mock.Anything, loggedIn,
		mock.MatchedBy(func(in domain.BookingFormInput) bool {
			return in.StartDate.Equal(time.Date(2025, 1, 10, 1, 0, 0, 0, time.UTC)) &&
				in.EndDate.Sub(in.StartDate) == 4*time.Hour
		}),
	).Return(submission.Outcome{
		Booking: &domain.Booking{ID: uuid.NewString(), Status: domain.BookingStatusPending},
		Notice:  submission.Notice{Level: submission.NoticeSuccess, Message: submission.NoticeSubmitted},
		State:   submission.StateSucceeded,
	})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SubmitBooking_NoSession(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", submitBody())

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Booking)
	assert.Equal(t, submission.RedirectLogin, resp.Redirect)
	assert.Equal(t, submission.NoticeLoginRequired, resp.Notice.Message)
}

func TestHandler_SubmitBooking_NoSessionBeatsBadPayload(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	body := submitBody()
	body.StartDate = "10/01/2025"
	body.Purpose = ""

	w := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), submission.RedirectLogin)
	assert.Contains(t, w.Body.String(), submission.NoticeLoginRequired)
}

func TestHandler_SubmitBooking_PersistenceFailure(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	d.submitter.EXPECT().Submit(mock.Anything, mock.Anything, loggedIn, mock.Anything).
		Return(submission.Outcome{
			Notice: submission.Notice{Level: submission.NoticeError, Message: submission.NoticeFailed},
			State:  submission.StateFailed,
			Err:    errors.New("pq: connection refused"),
		})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", submitBody())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "pq:")
	var resp dto.SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.FormOpen)
	assert.Equal(t, submission.NoticeFailed, resp.Notice.Message)
}

func TestHandler_SubmitBooking_BadDates(t *testing.T) {
	_, r := setupRouter(t, loggedIn)

	body := submitBody()
	body.StartDate = "10/01/2025"

	w := doJSON(t, r, http.MethodPost, "/api/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_Filter(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	pending := domain.BookingStatusPending
	d.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{Status: &pending}).
		Return([]*domain.Booking{{ID: "b1", Status: pending}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?status=pending", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_MyBookings(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	d.bookings.EXPECT().ListByUser(mock.Anything, budi.ID).Return([]*domain.Booking{}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/me", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_MyBookings_NoSession(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/me", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), submission.RedirectLogin)
}

func TestHandler_GetBooking_Detail(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	id := uuid.NewString()
	start := time.Date(2025, 1, 1, 1, 0, 0, 0, time.UTC)
	d.bookings.EXPECT().GetByID(mock.Anything, id).Return(&domain.Booking{
		ID:              id,
		Type:            domain.ItemTypeRoom,
		ItemName:        "Aula Utama",
		StartDate:       start,
		EndDate:         start.Add(50 * time.Hour),
		Status:          domain.BookingStatusRejected,
		RejectionReason: "Bentrok jadwal",
	}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp presenter.BookingDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ditolak", resp.Badge.Label)
	assert.Equal(t, "2 hari 2 jam", resp.Schedule.Duration)
	assert.Equal(t, "01 Januari 2025", resp.Schedule.StartDate)
	require.NotNil(t, resp.Rejection)
	assert.Equal(t, "Bentrok jadwal", resp.Rejection.Reason)
	assert.Nil(t, resp.Approval)
}

func TestHandler_UpdateBookingStatus_Conflict(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	id := uuid.NewString()
	d.bookings.EXPECT().UpdateStatus(mock.Anything, id, domain.StatusChangeInput{Status: domain.BookingStatusActive}).
		Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+id+"/status", dto.UpdateStatusRequest{Status: "active"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdateBookingStatus_Reject(t *testing.T) {
	d, r := setupRouter(t, loggedIn)

	id := uuid.NewString()
	in := domain.StatusChangeInput{Status: domain.BookingStatusRejected, RejectionReason: "Penuh"}
	d.bookings.EXPECT().UpdateStatus(mock.Anything, id, in).
		Return(&domain.Booking{ID: id, Status: domain.BookingStatusRejected, RejectionReason: "Penuh"}, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+id+"/status",
		dto.UpdateStatusRequest{Status: "rejected", RejectionReason: "Penuh"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Penuh", resp.RejectionReason)
}

func TestHandler_UpdateBookingStatus_NoSession(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	w := doJSON(t, r, http.MethodPatch, "/api/bookings/"+uuid.NewString()+"/status",
		dto.UpdateStatusRequest{Status: "approved"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), submission.RedirectLogin)
}

// --- Calendar ---

func TestHandler_GetCalendar_DefaultsToCurrentMonth(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	feb := calendar.Month{Year: 2025, Month: time.February}
	view := calendar.BuildView(feb, nil, nil, nil)

	d.calendar.EXPECT().CurrentMonth().Return(feb)
	d.calendar.EXPECT().MonthView(mock.Anything, feb, (*domain.EventType)(nil), (*time.Time)(nil)).Return(&view, nil)

	w := doJSON(t, r, http.MethodGet, "/api/calendar", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.CalendarResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Februari 2025", resp.Title)
	assert.Equal(t, dto.MonthRef{Year: 2025, Month: 1}, resp.Prev)
	assert.Len(t, resp.Legend, 3)
}

func TestHandler_GetCalendar_WithFilterAndDate(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	jan := calendar.Month{Year: 2025, Month: time.January}
	exam := domain.EventTypeExam
	selected := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	view := calendar.BuildView(jan, nil, &exam, &selected)

	d.calendar.EXPECT().MonthView(mock.Anything, jan, &exam, &selected).Return(&view, nil)

	w := doJSON(t, r, http.MethodGet, "/api/calendar?year=2025&month=1&type=exam&date=2025-01-13", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetCalendar_InvalidMonth(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	w := doJSON(t, r, http.MethodGet, "/api/calendar?year=2025&month=13", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExportCalendar(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	jan := calendar.Month{Year: 2025, Month: time.January}
	exp := calendar.Export{
		Filename:    "kalender-akademik-Januari-2025.txt",
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte("01/01/2025 - Tahun Baru Masehi (holiday)"),
	}
	d.calendar.EXPECT().Export(mock.Anything, &jan, (*domain.EventType)(nil), calendar.FormatText).Return(exp, nil)

	w := doJSON(t, r, http.MethodGet, "/api/calendar/export?year=2025&month=1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "kalender-akademik-Januari-2025.txt")
	assert.Equal(t, "01/01/2025 - Tahun Baru Masehi (holiday)", w.Body.String())
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	user := &domain.User{ID: uuid.NewString(), Name: "Siti", Username: "siti", CreatedAt: time.Now()}
	d.users.EXPECT().Create(mock.Anything, domain.CreateUserInput{Name: "Siti", Username: "siti"}).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "Siti", Username: "siti"})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "siti", resp.Username)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	d.users.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", dto.CreateUserRequest{Name: "Siti", Username: "siti"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CreateUser_MissingFields(t *testing.T) {
	_, r := setupRouter(t, anonymous)

	w := doJSON(t, r, http.MethodPost, "/api/users", map[string]string{"username": "siti"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers_Error(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	d.users.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	w := doJSON(t, r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db error")
}

func TestHandler_GetUser(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	id := uuid.NewString()
	d.users.EXPECT().GetByID(mock.Anything, id).Return(&domain.User{ID: id, Name: "Siti", Username: "siti"}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"siti"`)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	id := uuid.NewString()
	d.users.EXPECT().GetByID(mock.Anything, id).Return(nil, domain.ErrUserNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetUserBookings(t *testing.T) {
	d, r := setupRouter(t, anonymous)

	id := uuid.NewString()
	d.bookings.EXPECT().ListByUser(mock.Anything, id).Return([]*domain.Booking{{ID: "b1"}, {ID: "b2"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/users/"+id+"/bookings", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
