package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range BookingStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, BookingStatus("confirmed").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusApproved))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusRejected))
	assert.True(t, BookingStatusPending.CanTransitionTo(BookingStatusCancelled))
	assert.True(t, BookingStatusApproved.CanTransitionTo(BookingStatusActive))
	assert.True(t, BookingStatusActive.CanTransitionTo(BookingStatusCompleted))

	assert.False(t, BookingStatusPending.CanTransitionTo(BookingStatusCompleted))
	assert.False(t, BookingStatusRejected.CanTransitionTo(BookingStatusApproved))
	assert.False(t, BookingStatusCompleted.CanTransitionTo(BookingStatusCancelled))
	assert.False(t, BookingStatusCancelled.CanTransitionTo(BookingStatusPending))
}

func TestSession_User(t *testing.T) {
	_, ok := NoSession().User()
	assert.False(t, ok)

	_, ok = NewSession(CurrentUser{}).User()
	assert.False(t, ok, "empty id is not a session")

	u, ok := NewSession(CurrentUser{ID: "u1", Name: "Budi"}).User()
	assert.True(t, ok)
	assert.Equal(t, "Budi", u.Name)
}

func TestEventType_Valid(t *testing.T) {
	assert.True(t, EventTypeHoliday.Valid())
	assert.True(t, EventTypeExam.Valid())
	assert.True(t, EventTypeEvent.Valid())
	assert.False(t, EventType("meeting").Valid())
}
