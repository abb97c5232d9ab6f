package booking

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
)

// DateRange is an inclusive [start, end] range of whole days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if start.After(end) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(startStr, endStr string) (DateRange, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return DateRange{}, ErrInvalidDate
	}
	return NewDateRange(start, end)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days counts both endpoints, so a one-day rental spans one day.
func (r DateRange) Days() int {
	return int(r.end.Sub(r.start).Hours()/24) + 1
}

// Overlaps uses the inclusive interval test: a.start <= b.end && a.end >= b.start.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) StartString() string {
	return r.start.Format(dateLayout)
}

func (r DateRange) EndString() string {
	return r.end.Format(dateLayout)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
