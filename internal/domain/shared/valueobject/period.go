package valueobject

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date layout used on the wire
const DateLayout = "2006-01-02"

// Location is the business time zone. All calendar arithmetic is done in it.
var Location = mustLoadLocation("Asia/Taipei")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}

// MonthPeriod is a calendar month identified by year and month
type MonthPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewMonthPeriod validates and creates a MonthPeriod
func NewMonthPeriod(year, month int) (MonthPeriod, error) {
	if year < 1900 || year > 9999 {
		return MonthPeriod{}, fmt.Errorf("year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return MonthPeriod{}, fmt.Errorf("month %d out of range", month)
	}
	return MonthPeriod{Year: year, Month: month}, nil
}

// MonthPeriodOf returns the period containing t
func MonthPeriodOf(t time.Time) MonthPeriod {
	t = t.In(Location)
	return MonthPeriod{Year: t.Year(), Month: int(t.Month())}
}

// FirstDay returns midnight of the first day of the month
func (p MonthPeriod) FirstDay() time.Time {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, Location)
}

// LastDay returns midnight of the last day of the month
func (p MonthPeriod) LastDay() time.Time {
	return p.FirstDay().AddDate(0, 1, -1)
}

// Next returns the following month
func (p MonthPeriod) Next() MonthPeriod {
	return MonthPeriodOf(p.FirstDay().AddDate(0, 1, 0))
}

// Before reports whether p is strictly earlier than o
func (p MonthPeriod) Before(o MonthPeriod) bool {
	if p.Year != o.Year {
		return p.Year < o.Year
	}
	return p.Month < o.Month
}

// String returns the period as YYYY-MM
func (p MonthPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// StartOfDay truncates t to midnight in the business time zone
func StartOfDay(t time.Time) time.Time {
	t = t.In(Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, Location)
}

// EndOfDay returns the last representable instant of t's calendar day
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// ParseDate parses a YYYY-MM-DD date in the business time zone
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("date is empty")
	}
	return time.ParseInLocation(DateLayout, s, Location)
}

// FormatDate renders t as YYYY-MM-DD in the business time zone
func FormatDate(t time.Time) string {
	return t.In(Location).Format(DateLayout)
}

// DateWindow is an inclusive range of calendar days. A nil End means the
// window is open-ended.
type DateWindow struct {
	Start time.Time
	End   *time.Time
}

// Contains reports whether the calendar day of t falls inside the window
func (w DateWindow) Contains(t time.Time) bool {
	day := StartOfDay(t)
	if day.Before(StartOfDay(w.Start)) {
		return false
	}
	return w.End == nil || !day.After(StartOfDay(*w.End))
}

// Overlaps reports whether two windows share at least one calendar day
func (w DateWindow) Overlaps(o DateWindow) bool {
	if w.End != nil && StartOfDay(o.Start).After(StartOfDay(*w.End)) {
		return false
	}
	if o.End != nil && StartOfDay(w.Start).After(StartOfDay(*o.End)) {
		return false
	}
	return true
}
