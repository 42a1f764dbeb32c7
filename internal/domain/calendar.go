package domain

import "time"

type EventType string

const (
	EventTypeHoliday EventType = "holiday"
	EventTypeExam    EventType = "exam"
	EventTypeEvent   EventType = "event"
)

var EventTypes = []EventType{EventTypeHoliday, EventTypeExam, EventTypeEvent}

func (t EventType) Valid() bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// CalendarEvent описывает запись академического календаря. Date хранит только день.
type CalendarEvent struct {
	ID    string    `json:"id"`
	Date  time.Time `json:"date"`
	Title string    `json:"title"`
	Type  EventType `json:"type"`
}
