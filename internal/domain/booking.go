package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusApproved,
	BookingStatusRejected,
	BookingStatusActive,
	BookingStatusCompleted,
	BookingStatusCancelled,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// transitions перечисляет допустимые переходы статусов брони.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:  {BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled},
	BookingStatusApproved: {BookingStatusActive, BookingStatusCancelled},
	BookingStatusActive:   {BookingStatusCompleted},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID              string        `json:"id"`
	Type            ItemType      `json:"type"`
	ItemID          string        `json:"item_id"`
	ItemName        string        `json:"item_name"`
	UserID          string        `json:"user_id"`
	UserName        string        `json:"user_name"`
	StartDate       time.Time     `json:"start_date"`
	EndDate         time.Time     `json:"end_date"`
	Purpose         string        `json:"purpose"`
	Notes           string        `json:"notes,omitempty"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty"`
	RejectionReason string        `json:"rejection_reason,omitempty"`
}

// BookingFormInput содержит данные формы до подстановки пользователя из сессии.
type BookingFormInput struct {
	Type      ItemType
	ItemID    string
	StartDate time.Time
	EndDate   time.Time
	Purpose   string
	Notes     string
}

type CreateBookingInput struct {
	BookingFormInput
	UserID   string
	UserName string
}

type BookingFilter struct {
	Status *BookingStatus
	Type   *ItemType
	UserID string
}

type StatusUpdate struct {
	Status          BookingStatus
	ApprovedAt      *time.Time
	RejectionReason string
	UpdatedAt       time.Time
}

// StatusChangeInput содержит запрос администратора на смену статуса.
type StatusChangeInput struct {
	Status          BookingStatus
	RejectionReason string
}
