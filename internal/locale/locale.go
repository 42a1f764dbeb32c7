package locale

import (
	"fmt"
	"time"
)

// DefaultZone задаёт WIB, в нём показываются все даты.
const DefaultZone = "Asia/Jakarta"

var idMonths = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

var idWeekdays = map[time.Weekday]string{
	time.Sunday:    "Minggu",
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
}

type Layout int

const (
	// 05 Januari 2025
	LayoutDate Layout = iota
	// 08:30
	LayoutTime
	// 05 Januari 2025, 08:30
	LayoutDateTime
	// Januari 2025
	LayoutMonthYear
	// Januari-2025
	LayoutMonthYearSlug
	// 05/01/2025
	LayoutNumericDate
	// Minggu, 05 Januari 2025
	LayoutWeekdayDate
)

func MonthName(m time.Month) string {
	return idMonths[m]
}

func WeekdayName(d time.Weekday) string {
	return idWeekdays[d]
}

// Format renders t in Indonesian. Converting to a zone is the caller's job.
func Format(t time.Time, layout Layout) string {
	switch layout {
	case LayoutTime:
		return t.Format("15:04")
	case LayoutDateTime:
		return fmt.Sprintf("%s, %s", Format(t, LayoutDate), t.Format("15:04"))
	case LayoutMonthYear:
		return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
	case LayoutMonthYearSlug:
		return fmt.Sprintf("%s-%d", MonthName(t.Month()), t.Year())
	case LayoutNumericDate:
		return t.Format("02/01/2006")
	case LayoutWeekdayDate:
		return fmt.Sprintf("%s, %s", WeekdayName(t.Weekday()), Format(t, LayoutDate))
	default:
		return fmt.Sprintf("%02d %s %d", t.Day(), MonthName(t.Month()), t.Year())
	}
}

// LoadZone возвращает зону по имени, при ошибке UTC+7.
func LoadZone(name string) *time.Location {
	if name == "" {
		name = DefaultZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}
