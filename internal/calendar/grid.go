package calendar

import (
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/locale"
)

const daysInWeek = 7

// Month задаёт отображаемый месяц календаря.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) Valid() bool {
	return m.Year > 0 && m.Month >= time.January && m.Month <= time.December
}

func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

func (m Month) Next() Month {
	return MonthOf(m.First().AddDate(0, 1, 0))
}

func (m Month) Prev() Month {
	return MonthOf(m.First().AddDate(0, -1, 0))
}

func (m Month) String() string {
	return locale.Format(m.First(), locale.LayoutMonthYear)
}

type CellStyle string

const (
	CellStyleDefault CellStyle = "default"
	CellStyleMuted   CellStyle = "muted"
	CellStyleHoliday CellStyle = "holiday"
	CellStyleExam    CellStyle = "exam"
	CellStyleEvent   CellStyle = "event"
)

type DayCell struct {
	Date           time.Time             `json:"date"`
	Day            int                   `json:"day"`
	InCurrentMonth bool                  `json:"in_current_month"`
	Event          *domain.CalendarEvent `json:"event,omitempty"`
	Style          CellStyle             `json:"style"`
}

// Grid строит сетку месяца целыми неделями с воскресенья: дни соседних
// месяцев добивают первую и последнюю неделю.
func Grid(m Month, events []domain.CalendarEvent) []DayCell {
	first := m.First()
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, daysInWeek-1-int(last.Weekday()))

	cells := make([]DayCell, 0, 6*daysInWeek)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		cell := DayCell{
			Date:           d,
			Day:            d.Day(),
			InCurrentMonth: m.Contains(d),
		}

		if ev := firstOn(d, events); ev != nil {
			cell.Event = ev
			cell.Style = styleForEvent(ev.Type)
		} else if cell.InCurrentMonth {
			cell.Style = CellStyleDefault
		} else {
			cell.Style = CellStyleMuted
		}

		cells = append(cells, cell)
	}

	return cells
}

func styleForEvent(t domain.EventType) CellStyle {
	switch t {
	case domain.EventTypeHoliday:
		return CellStyleHoliday
	case domain.EventTypeExam:
		return CellStyleExam
	default:
		return CellStyleEvent
	}
}

// firstOn возвращает первое событие дня, остальные игнорируются.
func firstOn(day time.Time, events []domain.CalendarEvent) *domain.CalendarEvent {
	for i := range events {
		if SameDay(events[i].Date, day) {
			ev := events[i]
			return &ev
		}
	}
	return nil
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
