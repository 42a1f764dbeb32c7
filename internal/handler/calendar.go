package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/SiPinjam/internal/calendar"
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// monthQuery читает year/month; ok == false, если оба параметра пусты.
func monthQuery(c *ginext.Context) (calendar.Month, bool, error) {
	rawYear, rawMonth := c.Query("year"), c.Query("month")
	if rawYear == "" && rawMonth == "" {
		return calendar.Month{}, false, nil
	}

	year, err := strconv.Atoi(rawYear)
	if err != nil {
		return calendar.Month{}, false, fmt.Errorf("%w: invalid year", domain.ErrValidation)
	}
	month, err := strconv.Atoi(rawMonth)
	if err != nil {
		return calendar.Month{}, false, fmt.Errorf("%w: invalid month", domain.ErrValidation)
	}

	m := calendar.Month{Year: year, Month: time.Month(month)}
	if !m.Valid() {
		return calendar.Month{}, false, fmt.Errorf("%w: month out of range", domain.ErrValidation)
	}
	return m, true, nil
}

func typeQuery(c *ginext.Context) *domain.EventType {
	raw := c.Query("type")
	if raw == "" || raw == "all" {
		return nil
	}
	t := domain.EventType(raw)
	return &t
}

func (h *Handler) GetCalendar(c *ginext.Context) {
	month, ok, err := monthQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if !ok {
		month = h.calendarService.CurrentMonth()
	}

	var selected *time.Time
	if raw := c.Query("date"); raw != "" {
		d, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			h.handleError(c, fmt.Errorf("%w: invalid date, expected YYYY-MM-DD", domain.ErrValidation))
			return
		}
		selected = &d
	}

	view, err := h.calendarService.MonthView(c.Request.Context(), month, typeQuery(c), selected)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCalendarResponse(view))
}

func (h *Handler) ExportCalendar(c *ginext.Context) {
	month, ok, err := monthQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var scope *calendar.Month
	if ok {
		scope = &month
	}

	format := calendar.Format(c.DefaultQuery("format", string(calendar.FormatText)))

	exp, err := h.calendarService.Export(c.Request.Context(), scope, typeQuery(c), format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exp.Filename))
	c.Data(http.StatusOK, exp.ContentType, exp.Content)
}
