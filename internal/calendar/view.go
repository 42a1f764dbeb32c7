package calendar

import (
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/locale"
)

type MonthView struct {
	Title         string                 `json:"title"`
	Year          int                    `json:"year"`
	Month         int                    `json:"month"`
	Prev          Month                  `json:"-"`
	Next          Month                  `json:"-"`
	Weekdays      []string               `json:"weekdays"`
	Cells         []DayCell              `json:"cells"`
	Events        []domain.CalendarEvent `json:"events"`
	Selected      []domain.CalendarEvent `json:"selected,omitempty"`
	SelectedTitle string                 `json:"selected_title,omitempty"`
	Summary       Summary                `json:"summary"`
}

// BuildView собирает экран месяца. Фильтр по типу влияет на сетку и списки,
// сводка всегда считается по всем событиям месяца.
func BuildView(m Month, events []domain.CalendarEvent, typ *domain.EventType, selected *time.Time) MonthView {
	filtered := Filter(events, typ)

	v := MonthView{
		Title:    m.String(),
		Year:     m.Year,
		Month:    int(m.Month),
		Prev:     m.Prev(),
		Next:     m.Next(),
		Weekdays: weekdayHeaders(),
		Cells:    Grid(m, filtered),
		Events:   EventsIn(m, filtered),
		Summary:  Summarize(m, events),
	}
	if selected != nil {
		v.Selected = EventsOn(*selected, filtered)
		v.SelectedTitle = locale.Format(*selected, locale.LayoutWeekdayDate)
	}

	return v
}

// weekdayHeaders возвращает заголовки колонок сетки, неделя с воскресенья.
func weekdayHeaders() []string {
	headers := make([]string, daysInWeek)
	for d := range headers {
		headers[d] = locale.WeekdayName(time.Weekday(d))
	}
	return headers
}
