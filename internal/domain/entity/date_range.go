package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/expense-tracker/internal/domain/error"
)

// dateLayouts are tried in order; layouts without a zone parse as UTC
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a client supplied date, reporting failures against field
func ParseDate(field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errs.NewValidationError(field, errs.ErrInvalidDate)
}

// DateRange is an inclusive [Start, End] window
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange parses both bounds, which are required
func NewDateRange(startDate, endDate string) (DateRange, error) {
	if startDate == "" || endDate == "" {
		return DateRange{}, errs.NewValidationError("", errs.ErrMissingDateRange)
	}

	start, err := ParseDate("startDate", startDate)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseDate("endDate", endDate)
	if err != nil {
		return DateRange{}, err
	}

	return DateRange{Start: start, End: end}, nil
}

// IsEmpty reports whether no instant can fall inside the range
func (r DateRange) IsEmpty() bool {
	return r.Start.After(r.End)
}

// Contains reports whether t lies inside the range, bounds included
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}
