package report

import (
	"time"

	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

const (
	RangeTypeMonthly = "monthly"
	RangeTypeCustom  = "custom"
)

// RangeSpec is the caller-supplied description of a reporting period:
// either {type: monthly, year, month} or {type: custom, start, end}.
type RangeSpec struct {
	Type  string `json:"type"`
	Year  int    `json:"year,omitempty"`
	Month int    `json:"month,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// DateRange is a closed interval [Start, End] at calendar-day granularity.
// Both endpoints are concrete instants; the day walk compares UTC dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Resolve validates the spec and produces the concrete range. Monthly ranges
// run from the first to the last calendar day of the month in UTC. Custom
// ranges take explicit ISO8601 instants and reject end before start.
func (s RangeSpec) Resolve() (DateRange, error) {
	var errs validator.ValidationErrors

	switch s.Type {
	case RangeTypeMonthly:
		if s.Year == 0 || s.Month == 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year and month are required for monthly reports",
			})
			return DateRange{}, errs
		}
		if s.Month < 1 || s.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
			return DateRange{}, errs
		}
		start := time.Date(s.Year, time.Month(s.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return DateRange{Start: start, End: end}, nil

	case RangeTypeCustom:
		if s.Start == "" || s.End == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start and end dates are required for custom reports",
			})
			return DateRange{}, errs
		}
		start, okStart := validator.IsValidDateTime(s.Start)
		if !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start",
				Message: "start must be an ISO8601 timestamp",
			})
		}
		end, okEnd := validator.IsValidDateTime(s.End)
		if !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "end must be an ISO8601 timestamp",
			})
		}
		if len(errs) > 0 {
			return DateRange{}, errs
		}
		if end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end",
				Message: "start date must be earlier than end date",
			})
			return DateRange{}, errs
		}
		return DateRange{Start: start.UTC(), End: end.UTC()}, nil

	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "invalid date range type",
		})
		return DateRange{}, errs
	}
}

// QueryBounds returns the half-open instant interval [from, to) covering
// every punch-in on a calendar day of the range, endpoints included.
func (r DateRange) QueryBounds() (from, to time.Time) {
	from = atMidnightUTC(r.Start)
	to = atMidnightUTC(r.End).AddDate(0, 0, 1)
	return from, to
}

func atMidnightUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
