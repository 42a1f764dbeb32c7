package calendar

import (
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

// EventStyle описывает отображение типа события: подпись, иконку, цвет и бейдж.
type EventStyle struct {
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	Badge     string `json:"badge"`
	ClassName string `json:"class_name"`
}

var eventStyles = map[domain.EventType]EventStyle{
	domain.EventTypeHoliday: {
		Label:     "Libur",
		Icon:      "party-popper",
		Color:     "red",
		Badge:     "destructive",
		ClassName: "bg-red-100 text-red-900 font-semibold hover:bg-red-200",
	},
	domain.EventTypeExam: {
		Label:     "Ujian",
		Icon:      "graduation-cap",
		Color:     "orange",
		Badge:     "default",
		ClassName: "bg-orange-100 text-orange-900 font-semibold hover:bg-orange-200",
	},
	domain.EventTypeEvent: {
		Label:     "Acara",
		Icon:      "calendar-days",
		Color:     "blue",
		Badge:     "secondary",
		ClassName: "bg-blue-100 text-blue-900 font-semibold hover:bg-blue-200",
	},
}

func StyleFor(t domain.EventType) (EventStyle, bool) {
	s, ok := eventStyles[t]
	return s, ok
}

// Filter keeps events of the given type; nil keeps everything.
func Filter(events []domain.CalendarEvent, typ *domain.EventType) []domain.CalendarEvent {
	if typ == nil {
		return events
	}

	res := make([]domain.CalendarEvent, 0, len(events))
	for _, e := range events {
		if e.Type == *typ {
			res = append(res, e)
		}
	}
	return res
}

func EventsOn(day time.Time, events []domain.CalendarEvent) []domain.CalendarEvent {
	res := make([]domain.CalendarEvent, 0)
	for _, e := range events {
		if SameDay(e.Date, day) {
			res = append(res, e)
		}
	}
	return res
}

func EventsIn(m Month, events []domain.CalendarEvent) []domain.CalendarEvent {
	res := make([]domain.CalendarEvent, 0)
	for _, e := range events {
		if m.Contains(e.Date) {
			res = append(res, e)
		}
	}
	return res
}

type Summary struct {
	Holiday int `json:"holiday"`
	Exam    int `json:"exam"`
	Event   int `json:"event"`
}

// Summarize считает события месяца по типам. Вызывающий передаёт
// полный список без фильтра.
func Summarize(m Month, events []domain.CalendarEvent) Summary {
	var s Summary
	for _, e := range events {
		if !m.Contains(e.Date) {
			continue
		}
		switch e.Type {
		case domain.EventTypeHoliday:
			s.Holiday++
		case domain.EventTypeExam:
			s.Exam++
		case domain.EventTypeEvent:
			s.Event++
		}
	}
	return s
}
