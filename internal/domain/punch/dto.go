package punch

import (
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type CreateEventRequest struct {
	UserEmail     string  `json:"user_email"`
	PunchIn       string  `json:"punch_in"`  // ISO8601, optional: empty means "now"
	PunchOut      string  `json:"punch_out"` // ISO8601, optional: empty means still open
	ReportingType string  `json:"reporting_type"`
	Detail        *string `json:"detail"`
}

func (r *CreateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "a valid user_email is required",
		})
	}

	if !ReportingType(r.ReportingType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_type",
			Message: "reporting_type must be one of work, paidoff, unpaidoff",
		})
	}

	if r.PunchIn != "" {
		if _, ok := validator.IsValidDateTime(r.PunchIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_in",
				Message: "punch_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.PunchOut != "" {
		if _, ok := validator.IsValidDateTime(r.PunchOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_out",
				Message: "punch_out must be an ISO8601 timestamp",
			})
		}
		if r.PunchIn == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_in",
				Message: "punch_in is required when punch_out is given",
			})
		}
	}

	if r.PunchIn != "" && r.PunchOut != "" {
		in, okIn := validator.IsValidDateTime(r.PunchIn)
		out, okOut := validator.IsValidDateTime(r.PunchOut)
		if okIn && okOut && out.Before(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_out",
				Message: "punch_out must not be earlier than punch_in",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchOutRequest struct {
	UserEmail     string  `json:"user_email"`
	ReportingType string  `json:"reporting_type"`
	Detail        *string `json:"detail"`
}

func (r *PunchOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "a valid user_email is required",
		})
	}

	if !ReportingType(r.ReportingType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_type",
			Message: "reporting_type must be one of work, paidoff, unpaidoff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEventRequest struct {
	PunchIn       *string `json:"punch_in"`
	PunchOut      *string `json:"punch_out"`
	ReportingType *string `json:"reporting_type"`
	Detail        *string `json:"detail"`
}

func (r *UpdateEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PunchIn != nil {
		if _, ok := validator.IsValidDateTime(*r.PunchIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_in",
				Message: "punch_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.PunchOut != nil && *r.PunchOut != "" {
		if _, ok := validator.IsValidDateTime(*r.PunchOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "punch_out",
				Message: "punch_out must be an ISO8601 timestamp",
			})
		}
	}

	if r.ReportingType != nil && !ReportingType(*r.ReportingType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "reporting_type",
			Message: "reporting_type must be one of work, paidoff, unpaidoff",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEventsRequest struct {
	UserEmail string `json:"user_email"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

func (r *ListEventsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.UserEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_email",
			Message: "a valid user_email is required",
		})
	}

	start, okStart := validator.IsValidDateTime(r.Start)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start",
			Message: "start must be an ISO8601 timestamp",
		})
	}
	end, okEnd := validator.IsValidDateTime(r.End)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must be an ISO8601 timestamp",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end",
			Message: "end must not be before start",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
