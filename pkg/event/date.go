package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO   = "2006-01-02"
	layoutClock = "15:04"
)

// Date is a calendar day on the local wall clock. It carries no time of day
// and no zone; the zero value means "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, strings.TrimSpace(v))
	if err != nil {
		return Date{}, fmt.Errorf("date %q: use YYYY-MM-DD", v)
	}
	return DateOf(t), nil
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(v string) Date {
	d, err := ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the local calendar day of t.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the current local calendar day.
func Today() Date {
	return DateOf(time.Now())
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Valid reports whether d names a real calendar day.
func (d Date) Valid() bool {
	if d.IsZero() || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	return d.AddDays(0) == d
}

// Time returns midnight of d in the local zone.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

// AddDays moves d by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 12, 0, 0, 0, time.UTC))
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(int(d.Month) - int(o.Month))
	default:
		return sign(d.Day - o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

// DaysUntil counts whole calendar days from d to o.
func (d Date) DaysUntil(o Date) int {
	from := time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
	to := time.Date(o.Year, o.Month, o.Day, 12, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// SameMonth reports whether d falls in the month of then.
func (d Date) SameMonth(then time.Time) bool {
	return d.Year == then.Year() && d.Month == then.Month()
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseClock validates an optional HH:MM time of day. Empty input is
// accepted and returns "".
func ParseClock(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	t, err := time.Parse(layoutClock, v)
	if err != nil {
		return "", fmt.Errorf("time %q: use HH:MM", v)
	}
	return t.Format(layoutClock), nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
