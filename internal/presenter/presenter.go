package presenter

import (
	"fmt"
	"time"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/locale"
)

const (
	InvalidDate     = "Invalid Date"
	InvalidDuration = "Invalid dates"
)

type Badge struct {
	Label   string `json:"label"`
	Color   string `json:"color"`
	Icon    string `json:"icon"`
	Variant string `json:"variant"`
}

var statusBadges = map[domain.BookingStatus]Badge{
	domain.BookingStatusPending:   {Label: "Menunggu Persetujuan", Color: "yellow", Icon: "alert-circle", Variant: "secondary"},
	domain.BookingStatusApproved:  {Label: "Disetujui", Color: "green", Icon: "check-circle", Variant: "default"},
	domain.BookingStatusRejected:  {Label: "Ditolak", Color: "red", Icon: "x-circle", Variant: "destructive"},
	domain.BookingStatusActive:    {Label: "Sedang Berlangsung", Color: "blue", Icon: "timer", Variant: "default"},
	domain.BookingStatusCompleted: {Label: "Selesai", Color: "gray", Icon: "check-circle", Variant: "outline"},
	domain.BookingStatusCancelled: {Label: "Dibatalkan", Color: "gray", Icon: "file-text", Variant: "outline"},
}

func StatusBadge(s domain.BookingStatus) (Badge, bool) {
	b, ok := statusBadges[s]
	return b, ok
}

// Duration renders the booking length as "D hari H jam", "D hari" or "H jam".
// A zero bound or an end before the start yields InvalidDuration.
func Duration(start, end time.Time) string {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return InvalidDuration
	}

	totalHours := int(end.Sub(start).Hours())
	days := totalHours / 24
	hours := totalHours % 24

	if days > 0 {
		if hours > 0 {
			return fmt.Sprintf("%d hari %d jam", days, hours)
		}
		return fmt.Sprintf("%d hari", days)
	}
	return fmt.Sprintf("%d jam", hours)
}

// Formatter форматирует даты в заданной зоне (WIB по умолчанию).
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) *Formatter {
	if loc == nil {
		loc = locale.LoadZone(locale.DefaultZone)
	}
	return &Formatter{loc: loc}
}

func (f *Formatter) Format(t time.Time, layout locale.Layout) string {
	if t.IsZero() {
		return InvalidDate
	}
	return locale.Format(t.In(f.loc), layout)
}

func (f *Formatter) FormatPtr(t *time.Time, layout locale.Layout) string {
	if t == nil {
		return InvalidDate
	}
	return f.Format(*t, layout)
}

// ParseDate разбирает RFC3339 и значения datetime-local/date формы.
// Значения без смещения считаются временем кампуса.
func (f *Formatter) ParseDate(raw string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", time.DateOnly} {
		if t, err := time.ParseInLocation(layout, raw, f.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
