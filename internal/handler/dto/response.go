package dto

import (
	"time"

	"github.com/stpnv0/SiPinjam/internal/calendar"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/submission"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SessionResponse struct {
	Token string             `json:"token"`
	User  domain.CurrentUser `json:"user"`
}

type ItemResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Capacity    int    `json:"capacity"`
	Description string `json:"description"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	ItemID          string  `json:"item_id"`
	ItemName        string  `json:"item_name"`
	UserID          string  `json:"user_id"`
	UserName        string  `json:"user_name"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Purpose         string  `json:"purpose"`
	Notes           string  `json:"notes,omitempty"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ApprovedAt      *string `json:"approved_at,omitempty"`
	RejectionReason string  `json:"rejection_reason,omitempty"`
}

type SubmitResponse struct {
	Booking  *BookingResponse  `json:"booking,omitempty"`
	Notice   submission.Notice `json:"notice"`
	Redirect string            `json:"redirect,omitempty"`
	State    submission.State  `json:"state"`
	FormOpen bool              `json:"form_open"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Username       string `json:"username"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type CalendarResponse struct {
	calendar.MonthView
	Prev   MonthRef                                 `json:"prev"`
	Next   MonthRef                                 `json:"next"`
	Legend map[domain.EventType]calendar.EventStyle `json:"legend"`
}

func ToItemResponse(it *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Type:        string(it.Type),
		Name:        it.Name,
		Location:    it.Location,
		Capacity:    it.Capacity,
		Description: it.Description,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		Type:            string(b.Type),
		ItemID:          b.ItemID,
		ItemName:        b.ItemName,
		UserID:          b.UserID,
		UserName:        b.UserName,
		StartDate:       b.StartDate.Format(time.RFC3339),
		EndDate:         b.EndDate.Format(time.RFC3339),
		Purpose:         b.Purpose,
		Notes:           b.Notes,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		RejectionReason: b.RejectionReason,
	}
	if b.ApprovedAt != nil {
		approved := b.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approved
	}
	return resp
}

func ToBookingsResponse(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToSubmitResponse(o submission.Outcome, form *submission.Form) SubmitResponse {
	resp := SubmitResponse{
		Notice:   o.Notice,
		Redirect: o.Redirect,
		State:    o.State,
		FormOpen: form.IsOpen(),
	}
	if o.Booking != nil {
		b := ToBookingResponse(o.Booking)
		resp.Booking = &b
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Username:       u.Username,
		TelegramChatID: u.TelegramChatID,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCalendarResponse(v *calendar.MonthView) CalendarResponse {
	legend := make(map[domain.EventType]calendar.EventStyle, len(domain.EventTypes))
	for _, t := range domain.EventTypes {
		if s, ok := calendar.StyleFor(t); ok {
			legend[t] = s
		}
	}

	return CalendarResponse{
		MonthView: *v,
		Prev:      MonthRef{Year: v.Prev.Year, Month: int(v.Prev.Month)},
		Next:      MonthRef{Year: v.Next.Year, Month: int(v.Next.Month)},
		Legend:    legend,
	}
}
