package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/validator"
)

type PunchServiceImpl struct {
	punchRepo punch.PunchRepository
	userRepo  user.UserRepository
	now       func() time.Time
}

func NewPunchService(punchRepo punch.PunchRepository, userRepo user.UserRepository) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo: punchRepo,
		userRepo:  userRepo,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// guardSubject enforces that the requester may act on the subject's records:
// employees only on their own, employers only within their company.
func (s *PunchServiceImpl) guardSubject(ctx context.Context, subjectEmail string, requester user.Requester) (user.User, error) {
	if requester.Role.IsEmployee() && subjectEmail != requester.Email {
		return user.User{}, punch.ErrUnauthorized
	}

	subject, err := s.userRepo.GetByEmail(ctx, subjectEmail)
	if err != nil {
		return user.User{}, err
	}

	if requester.Role.IsEmployer() && subject.CompanyID != requester.CompanyID {
		return user.User{}, punch.ErrUnauthorized
	}

	return subject, nil
}

func dayBounds(t time.Time) (from, to time.Time) {
	t = t.UTC()
	from = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 0, 1)
}

// Create implements punch.PunchService.
func (s *PunchServiceImpl) Create(ctx context.Context, req punch.CreateEventRequest, requester user.Requester) (punch.Event, error) {
	if err := req.Validate(); err != nil {
		return punch.Event{}, err
	}

	if _, err := s.guardSubject(ctx, req.UserEmail, requester); err != nil {
		return punch.Event{}, err
	}

	punchIn := s.now()
	if req.PunchIn != "" {
		punchIn, _ = validator.IsValidDateTime(req.PunchIn)
		punchIn = punchIn.UTC()
	}

	var punchOut *time.Time
	if req.PunchOut != "" {
		out, _ := validator.IsValidDateTime(req.PunchOut)
		out = out.UTC()
		if out.Before(punchIn) {
			return punch.Event{}, punch.ErrPunchOutBeforePunchIn
		}
		punchOut = &out
	}

	// Only one open event per subject per day
	if punchOut == nil {
		from, to := dayBounds(punchIn)
		open, err := s.punchRepo.GetOpenInRange(ctx, req.UserEmail, from, to)
		if err != nil {
			return punch.Event{}, fmt.Errorf("failed to check for open punch event: %w", err)
		}
		if open != nil {
			return punch.Event{}, punch.ErrAlreadyPunchedIn
		}
	}

	newEvent := punch.Event{
		ID:            uuid.NewString(),
		UserEmail:     req.UserEmail,
		EnteredBy:     requester.Email,
		PunchIn:       punchIn,
		PunchOut:      punchOut,
		ReportingType: punch.ReportingType(req.ReportingType),
		Detail:        req.Detail,
	}

	created, err := s.punchRepo.Create(ctx, newEvent)
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to create punch event: %w", err)
	}
	return created, nil
}

// PunchOut implements punch.PunchService.
func (s *PunchServiceImpl) PunchOut(ctx context.Context, req punch.PunchOutRequest, requester user.Requester) (punch.Event, error) {
	if err := req.Validate(); err != nil {
		return punch.Event{}, err
	}

	if _, err := s.guardSubject(ctx, req.UserEmail, requester); err != nil {
		return punch.Event{}, err
	}

	now := s.now()
	from, to := dayBounds(now)
	open, err := s.punchRepo.GetOpenInRange(ctx, req.UserEmail, from, to)
	if err != nil {
		return punch.Event{}, fmt.Errorf("failed to look up open punch event: %w", err)
	}
	if open == nil {
		return punch.Event{}, punch.ErrNoOpenEvent
	}

	open.PunchOut = &now
	open.ReportingType = punch.ReportingType(req.ReportingType)
	open.Detail = req.Detail

	if err := s.punchRepo.Update(ctx, *open); err != nil {
		return punch.Event{}, fmt.Errorf("failed to close punch event: %w", err)
	}

	seconds := int64(now.Sub(open.PunchIn).Seconds())
	open.WorkSeconds = &seconds
	return *open, nil
}

// Update implements punch.PunchService.
func (s *PunchServiceImpl) Update(ctx context.Context, id string, req punch.UpdateEventRequest, requester user.Requester) (punch.Event, error) {
	if err := req.Validate(); err != nil {
		return punch.Event{}, err
	}

	event, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return punch.Event{}, err
	}

	if _, err := s.guardSubject(ctx, event.UserEmail, requester); err != nil {
		return punch.Event{}, err
	}

	if req.PunchIn != nil {
		in, _ := validator.IsValidDateTime(*req.PunchIn)
		event.PunchIn = in.UTC()
	}
	if req.PunchOut != nil {
		if *req.PunchOut == "" {
			event.PunchOut = nil
		} else {
			out, _ := validator.IsValidDateTime(*req.PunchOut)
			outUTC := out.UTC()
			event.PunchOut = &outUTC
		}
	}
	if req.ReportingType != nil {
		event.ReportingType = punch.ReportingType(*req.ReportingType)
	}
	if req.Detail != nil {
		event.Detail = req.Detail
	}

	if event.PunchOut != nil && event.PunchOut.Before(event.PunchIn) {
		return punch.Event{}, punch.ErrPunchOutBeforePunchIn
	}

	if err := s.punchRepo.Update(ctx, event); err != nil {
		return punch.Event{}, fmt.Errorf("failed to update punch event: %w", err)
	}

	if event.PunchOut != nil {
		seconds := int64(event.PunchOut.Sub(event.PunchIn).Seconds())
		event.WorkSeconds = &seconds
	} else {
		event.WorkSeconds = nil
	}
	return event, nil
}

// Delete implements punch.PunchService.
func (s *PunchServiceImpl) Delete(ctx context.Context, id string, requester user.Requester) error {
	event, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.guardSubject(ctx, event.UserEmail, requester); err != nil {
		return err
	}

	if err := s.punchRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete punch event: %w", err)
	}
	return nil
}

// List implements punch.PunchService.
func (s *PunchServiceImpl) List(ctx context.Context, req punch.ListEventsRequest, requester user.Requester) ([]punch.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.guardSubject(ctx, req.UserEmail, requester); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDateTime(req.Start)
	end, _ := validator.IsValidDateTime(req.End)

	events, err := s.punchRepo.GetRange(ctx, req.UserEmail, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	return events, nil
}

// CloseStale implements punch.PunchService.
func (s *PunchServiceImpl) CloseStale(ctx context.Context) (int64, error) {
	startOfToday, _ := dayBounds(s.now())
	return s.punchRepo.CloseOpenBefore(ctx, startOfToday)
}
