package punch

import "time"

// ReportingType classifies what a punch event stands for on its day.
type ReportingType string

const (
	ReportingTypeWork      ReportingType = "work"
	ReportingTypePaidOff   ReportingType = "paidoff"
	ReportingTypeUnpaidOff ReportingType = "unpaidoff"
)

func (t ReportingType) Valid() bool {
	return t == ReportingTypeWork || t == ReportingTypePaidOff || t == ReportingTypeUnpaidOff
}

// PaidOffSeconds is the fixed contribution of a paid day off: 8 hours.
const PaidOffSeconds int64 = 8 * 3600

type Event struct {
	ID            string
	UserEmail     string
	EnteredBy     string
	PunchIn       time.Time
	PunchOut      *time.Time // nil while the shift is open
	ReportingType ReportingType
	Detail        *string
	WorkSeconds   *int64 // punch-out minus punch-in, nil while open
	LastUpdate    time.Time
}

// Open reports whether the event has no punch-out yet.
func (e *Event) Open() bool {
	return e.PunchOut == nil
}

// WorkDuration returns the worked seconds, treating an open event as zero.
func (e *Event) WorkDuration() int64 {
	if e.WorkSeconds == nil {
		return 0
	}
	return *e.WorkSeconds
}
