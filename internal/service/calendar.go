package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/stpnv0/SiPinjam/internal/calendar"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CalendarService struct {
	repo   ports.CalendarRepo
	loc    *time.Location
	logger logger.Logger
	now    func() time.Time
}

func NewCalendarService(repo ports.CalendarRepo, loc *time.Location, logger logger.Logger) *CalendarService {
	return &CalendarService{
		repo:   repo,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// CurrentMonth возвращает текущий месяц по часам кампуса.
func (s *CalendarService) CurrentMonth() calendar.Month {
	return calendar.MonthOf(s.now().In(s.loc))
}

func (s *CalendarService) Events(ctx context.Context, typ *domain.EventType) ([]domain.CalendarEvent, error) {
	if typ != nil && !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, *typ)
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	return calendar.Filter(events, typ), nil
}

func (s *CalendarService) MonthView(
	ctx context.Context,
	month calendar.Month,
	typ *domain.EventType,
	selected *time.Time,
) (*calendar.MonthView, error) {
	if !month.Valid() {
		return nil, fmt.Errorf("%w: invalid month", domain.ErrValidation)
	}
	if typ != nil && !typ.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEventType, *typ)
	}

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	view := calendar.BuildView(month, events, typ, selected)
	return &view, nil
}

// Export выгружает события месяца (или все, если month == nil) после фильтра.
func (s *CalendarService) Export(
	ctx context.Context,
	month *calendar.Month,
	typ *domain.EventType,
	format calendar.Format,
) (calendar.Export, error) {
	if !format.Valid() {
		return calendar.Export{}, fmt.Errorf("%w: unknown export format %q", domain.ErrValidation, format)
	}

	events, err := s.Events(ctx, typ)
	if err != nil {
		return calendar.Export{}, err
	}
	if month != nil {
		if !month.Valid() {
			return calendar.Export{}, fmt.Errorf("%w: invalid month", domain.ErrValidation)
		}
		events = calendar.EventsIn(*month, events)
	}

	if format == calendar.FormatICS {
		return calendar.ExportICS(events, month, s.now()), nil
	}
	return calendar.ExportText(events, month), nil
}

// Import загружает события из iCalendar-файла.
func (s *CalendarService) Import(ctx context.Context, r io.Reader) (int, error) {
	events, err := calendar.ParseICS(r, s.loc)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	n, err := s.repo.Upsert(ctx, events)
	if err != nil {
		return 0, fmt.Errorf("upsert calendar events: %w", err)
	}

	s.logger.Info("calendar events imported",
		logger.Int("parsed", len(events)),
		logger.Int("stored", n),
	)

	return n, nil
}
