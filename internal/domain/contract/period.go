package contract

import (
	"time"
)

const (
	DateLayout    = "2006-01-02"
	secondsPerDay = 24 * 60 * 60
)

// Period is an inclusive range of calendar days.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	s, e := truncateDay(start), truncateDay(end)
	if !e.After(s) {
		return Period{}, ErrInvalidDateRange
	}
	return Period{start: s, end: e}, nil
}

func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseDate(start)
	if err != nil {
		return Period{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return Period{}, err
	}
	return NewPeriod(s, e)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// Days counts both endpoints. Both ends sit on UTC midnight, so the Unix
// difference is always a whole number of days.
func (p Period) Days() int {
	return int((p.end.Unix()-p.start.Unix())/secondsPerDay) + 1
}

// Overlaps reports whether the two ranges share at least one day.
func (p Period) Overlaps(other Period) bool {
	return !p.start.After(other.end) && !other.start.After(p.end)
}

func (p Period) Equal(other Period) bool {
	return p.start.Equal(other.start) && p.end.Equal(other.end)
}

func (p Period) IsZero() bool {
	return p.start.IsZero() && p.end.IsZero()
}

func (p Period) String() string {
	return p.start.Format(DateLayout) + ".." + p.end.Format(DateLayout)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
