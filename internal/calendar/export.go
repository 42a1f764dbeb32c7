package calendar

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/locale"
)

const (
	filePrefix = "kalender-akademik"
	scopeAll   = "semua"
	productID  = "-//SiPinjam//Kalender Akademik//ID"
)

type Format string

const (
	FormatText Format = "txt"
	FormatICS  Format = "ics"
)

func (f Format) Valid() bool {
	return f == FormatText || f == FormatICS
}

type Export struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Scope даёт часть имени файла, месяц в виде "Januari-2025" или "semua".
func Scope(m *Month) string {
	if m == nil {
		return scopeAll
	}
	return locale.Format(m.First(), locale.LayoutMonthYearSlug)
}

// Line formats one event as "DD/MM/YYYY - title (type)".
func Line(e domain.CalendarEvent) string {
	return fmt.Sprintf("%s - %s (%s)", locale.Format(e.Date, locale.LayoutNumericDate), e.Title, e.Type)
}

func ExportText(events []domain.CalendarEvent, scope *Month) Export {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, Line(e))
	}

	return Export{
		Filename:    fmt.Sprintf("%s-%s.%s", filePrefix, Scope(scope), FormatText),
		ContentType: "text/plain; charset=utf-8",
		Content:     []byte(strings.Join(lines, "\n")),
	}
}

// ExportICS выгружает события как all-day VEVENT с CATEGORIES=<type>.
func ExportICS(events []domain.CalendarEvent, scope *Month, stamp time.Time) Export {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetXWRCalName("Kalender Akademik")

	for _, e := range events {
		day := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)

		ev := cal.AddEvent(eventUID(e))
		ev.SetDtStampTime(stamp.UTC())
		ev.SetSummary(e.Title)
		ev.SetAllDayStartAt(day)
		ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ev.SetProperty(ical.ComponentPropertyCategories, string(e.Type))
	}

	return Export{
		Filename:    fmt.Sprintf("%s-%s.%s", filePrefix, Scope(scope), FormatICS),
		ContentType: "text/calendar; charset=utf-8",
		Content:     []byte(cal.Serialize()),
	}
}

func eventUID(e domain.CalendarEvent) string {
	if e.ID != "" {
		return e.ID + "@sipinjam"
	}
	return fmt.Sprintf("%s-%s@sipinjam", e.Date.Format("20060102"), e.Type)
}
