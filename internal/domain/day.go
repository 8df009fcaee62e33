package domain

import (
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

// Day is a calendar day with no time-of-day and no zone.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDay parses "YYYY-MM-DD". Surrounding whitespace is ignored.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(dayLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, err
	}
	return DayOf(t, time.UTC), nil
}

// DayOf truncates t to the calendar day it falls on in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Day: d}
}

func (d Day) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format(dayLayout)
}
