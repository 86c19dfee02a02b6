package domain

import (
	"errors"
	"strings"
	"time"
)

// Period tokens accepted by the category report. Only month and year narrow the data.
const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodCustom  = "custom"
	PeriodAll     = "all"
)

// ErrUnsupportedPeriod is returned by ResolvePeriod in strict mode.
var ErrUnsupportedPeriod = errors.New("unsupported period")

// DateRange is a half-open [From, To) interval in UTC. The zero value means no filter.
type DateRange struct {
	From time.Time
	To   time.Time
}

// IsUnbounded reports whether the range applies no date filter.
func (r DateRange) IsUnbounded() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	if r.IsUnbounded() {
		return true
	}
	return !t.Before(r.From) && t.Before(r.To)
}

// YearRange covers the whole calendar year in UTC.
func YearRange(year int) DateRange {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(1, 0, 0)}
}

// MonthRange covers one calendar month in UTC.
func MonthRange(year int, month time.Month) DateRange {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return DateRange{From: from, To: from.AddDate(0, 1, 0)}
}

// ResolvePeriod turns a period token into a date range relative to now.
// "month" and "year" select the current calendar month and year. Any other token
// means all-time, unless strict is set, in which case only "", "all", "month" and
// "year" are accepted.
func ResolvePeriod(token string, now time.Time, strict bool) (DateRange, error) {
	now = now.UTC()
	switch strings.TrimSpace(token) {
	case PeriodMonth:
		return MonthRange(now.Year(), now.Month()), nil
	case PeriodYear:
		return YearRange(now.Year()), nil
	case "", PeriodAll:
		return DateRange{}, nil
	}
	if strict {
		return DateRange{}, ErrUnsupportedPeriod
	}
	return DateRange{}, nil
}
