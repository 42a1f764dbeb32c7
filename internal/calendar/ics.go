package calendar

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

// ParseICS reads academic events from an iCalendar feed. Only VEVENTs whose
// CATEGORIES contain holiday, exam or event are taken; the rest are skipped.
// Timed starts are moved to loc before taking the date.
func ParseICS(r io.Reader, loc *time.Location) ([]domain.CalendarEvent, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	events := make([]domain.CalendarEvent, 0)
	for _, ve := range cal.Events() {
		ev, err := parseVEvent(ve, loc)
		if err != nil {
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (domain.CalendarEvent, error) {
	typ, ok := categoryType(ve)
	if !ok {
		return domain.CalendarEvent{}, domain.ErrUnknownEventType
	}

	start, err := eventDay(ve, loc)
	if err != nil {
		return domain.CalendarEvent{}, err
	}

	summary := ve.GetProperty(ical.ComponentPropertySummary)
	if summary == nil || strings.TrimSpace(summary.Value) == "" {
		return domain.CalendarEvent{}, errors.New("event without summary")
	}

	return domain.CalendarEvent{
		Date:  start,
		Title: strings.TrimSpace(summary.Value),
		Type:  typ,
	}, nil
}

// eventDay возвращает день начала события как полночь UTC.
func eventDay(ve *ical.VEvent, loc *time.Location) (time.Time, error) {
	prop := ve.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return time.Time{}, errors.New("event without start")
	}

	// VALUE=DATE: день как есть, без зоны
	if raw := strings.TrimSpace(prop.Value); len(raw) == len("20060102") {
		d, err := time.Parse("20060102", raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("event start: %w", err)
		}
		return d, nil
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return time.Time{}, fmt.Errorf("event start: %w", err)
	}
	start = start.In(loc)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC), nil
}

func categoryType(ve *ical.VEvent) (domain.EventType, bool) {
	prop := ve.GetProperty(ical.ComponentPropertyCategories)
	if prop == nil {
		return "", false
	}

	for _, c := range strings.Split(prop.Value, ",") {
		t := domain.EventType(strings.ToLower(strings.TrimSpace(c)))
		if t.Valid() {
			return t, true
		}
	}
	return "", false
}
