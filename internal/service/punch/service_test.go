package punch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type stubUserRepo struct {
	users map[string]user.User
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := s.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]user.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, newUser user.User) (user.User, error) {
	return newUser, nil
}

func (s *stubUserRepo) Update(ctx context.Context, email string, req user.UpdateUserRequest) error {
	return nil
}

func (s *stubUserRepo) SetActive(ctx context.Context, email string, active bool) error {
	return nil
}

type stubPunchRepo struct {
	byID    map[string]punch.Event
	open    *punch.Event
	created []punch.Event
	updated []punch.Event
	deleted []string
	closed  int64
}

func (s *stubPunchRepo) GetRange(ctx context.Context, email string, from, to time.Time) ([]punch.Event, error) {
	return nil, nil
}

func (s *stubPunchRepo) GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]punch.Event, error) {
	return nil, nil
}

func (s *stubPunchRepo) GetByID(ctx context.Context, id string) (punch.Event, error) {
	e, ok := s.byID[id]
	if !ok {
		return punch.Event{}, punch.ErrEventNotFound
	}
	return e, nil
}

func (s *stubPunchRepo) GetOpenInRange(ctx context.Context, email string, from, to time.Time) (*punch.Event, error) {
	return s.open, nil
}

func (s *stubPunchRepo) Create(ctx context.Context, newEvent punch.Event) (punch.Event, error) {
	s.created = append(s.created, newEvent)
	return newEvent, nil
}

func (s *stubPunchRepo) Update(ctx context.Context, event punch.Event) error {
	s.updated = append(s.updated, event)
	return nil
}

func (s *stubPunchRepo) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubPunchRepo) CloseOpenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.closed, nil
}

func newTestService(users *stubUserRepo, punches *stubPunchRepo) *PunchServiceImpl {
	if users == nil {
		users = &stubUserRepo{users: map[string]user.User{}}
	}
	if punches == nil {
		punches = &stubPunchRepo{byID: map[string]punch.Event{}}
	}
	svc := NewPunchService(punches, users).(*PunchServiceImpl)
	svc.now = func() time.Time {
		return time.Date(2024, 3, 12, 14, 30, 0, 0, time.UTC)
	}
	return svc
}

func activeUser(email, companyID string) user.User {
	return user.User{Email: email, CompanyID: companyID, Role: user.RoleEmployee, IsActive: true}
}

func TestCreateEmployeeCannotPunchForOthers(t *testing.T) {
	svc := newTestService(nil, nil)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.Create(context.Background(), punch.CreateEventRequest{
		UserEmail:     "other@example.com",
		ReportingType: "work",
	}, requester)
	assert.ErrorIs(t, err, punch.ErrUnauthorized)
}

func TestCreateEmployerOutsideCompanyRejected(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"worker@example.com": activeUser("worker@example.com", "c2"),
	}}
	svc := newTestService(users, nil)

	requester := user.Requester{Email: "boss@example.com", Role: user.RoleEmployer, CompanyID: "c1"}
	_, err := svc.Create(context.Background(), punch.CreateEventRequest{
		UserEmail:     "worker@example.com",
		ReportingType: "work",
	}, requester)
	assert.ErrorIs(t, err, punch.ErrUnauthorized)
}

func TestCreateDefaultsPunchInToNow(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	punches := &stubPunchRepo{byID: map[string]punch.Event{}}
	svc := newTestService(users, punches)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	created, err := svc.Create(context.Background(), punch.CreateEventRequest{
		UserEmail:     "me@example.com",
		ReportingType: "work",
	}, requester)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 12, 14, 30, 0, 0, time.UTC), created.PunchIn)
	assert.Nil(t, created.PunchOut)
	assert.Equal(t, "me@example.com", created.EnteredBy)
	assert.NotEmpty(t, created.ID)
	require.Len(t, punches.created, 1)
}

func TestCreateRejectsSecondOpenEventSameDay(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	open := punch.Event{ID: "e1", UserEmail: "me@example.com"}
	punches := &stubPunchRepo{byID: map[string]punch.Event{}, open: &open}
	svc := newTestService(users, punches)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.Create(context.Background(), punch.CreateEventRequest{
		UserEmail:     "me@example.com",
		ReportingType: "work",
	}, requester)
	assert.ErrorIs(t, err, punch.ErrAlreadyPunchedIn)
}

func TestCreateClosedEventSkipsOpenCheck(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	open := punch.Event{ID: "e1", UserEmail: "me@example.com"}
	punches := &stubPunchRepo{byID: map[string]punch.Event{}, open: &open}
	svc := newTestService(users, punches)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	created, err := svc.Create(context.Background(), punch.CreateEventRequest{
		UserEmail:     "me@example.com",
		PunchIn:       "2024-03-11T09:00:00Z",
		PunchOut:      "2024-03-11T17:00:00Z",
		ReportingType: "work",
	}, requester)
	require.NoError(t, err)
	require.NotNil(t, created.PunchOut)
}

func TestCreateValidatesRequest(t *testing.T) {
	svc := newTestService(nil, nil)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.Create(context.Background(), punch.CreateEventRequest{
		UserEmail:     "me@example.com",
		ReportingType: "vacation",
	}, requester)
	assert.Error(t, err)
}

func TestPunchOutClosesTodaysOpenEvent(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	open := punch.Event{
		ID:            "e1",
		UserEmail:     "me@example.com",
		PunchIn:       time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		ReportingType: punch.ReportingTypeWork,
	}
	punches := &stubPunchRepo{byID: map[string]punch.Event{}, open: &open}
	svc := newTestService(users, punches)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	closed, err := svc.PunchOut(context.Background(), punch.PunchOutRequest{
		UserEmail:     "me@example.com",
		ReportingType: "work",
	}, requester)
	require.NoError(t, err)

	require.NotNil(t, closed.PunchOut)
	assert.Equal(t, time.Date(2024, 3, 12, 14, 30, 0, 0, time.UTC), *closed.PunchOut)
	require.NotNil(t, closed.WorkSeconds)
	assert.Equal(t, int64(5*3600+1800), *closed.WorkSeconds)
	require.Len(t, punches.updated, 1)
}

func TestPunchOutWithoutOpenEvent(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	svc := newTestService(users, nil)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.PunchOut(context.Background(), punch.PunchOutRequest{
		UserEmail:     "me@example.com",
		ReportingType: "work",
	}, requester)
	assert.ErrorIs(t, err, punch.ErrNoOpenEvent)
}

func TestUpdateRejectsPunchOutBeforePunchIn(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	punches := &stubPunchRepo{byID: map[string]punch.Event{
		"e1": {
			ID:            "e1",
			UserEmail:     "me@example.com",
			PunchIn:       time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
			ReportingType: punch.ReportingTypeWork,
		},
	}}
	svc := newTestService(users, punches)

	earlier := "2024-03-11T08:00:00Z"
	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.Update(context.Background(), "e1", punch.UpdateEventRequest{
		PunchOut: &earlier,
	}, requester)
	assert.ErrorIs(t, err, punch.ErrPunchOutBeforePunchIn)
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"me@example.com": activeUser("me@example.com", "c1"),
	}}
	punches := &stubPunchRepo{byID: map[string]punch.Event{
		"e1": {
			ID:            "e1",
			UserEmail:     "me@example.com",
			PunchIn:       time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
			ReportingType: punch.ReportingTypeWork,
		},
	}}
	svc := newTestService(users, punches)

	out := "2024-03-11T17:00:00Z"
	newType := "work"
	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	updated, err := svc.Update(context.Background(), "e1", punch.UpdateEventRequest{
		PunchOut:      &out,
		ReportingType: &newType,
	}, requester)
	require.NoError(t, err)

	require.NotNil(t, updated.WorkSeconds)
	assert.Equal(t, int64(8*3600), *updated.WorkSeconds)
	assert.Equal(t, time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC), updated.PunchIn)
}

func TestDeleteGuardsSubject(t *testing.T) {
	users := &stubUserRepo{users: map[string]user.User{
		"other@example.com": activeUser("other@example.com", "c1"),
	}}
	punches := &stubPunchRepo{byID: map[string]punch.Event{
		"e1": {ID: "e1", UserEmail: "other@example.com"},
	}}
	svc := newTestService(users, punches)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	err := svc.Delete(context.Background(), "e1", requester)
	assert.ErrorIs(t, err, punch.ErrUnauthorized)
	assert.Empty(t, punches.deleted)
}

func TestDeleteUnknownEvent(t *testing.T) {
	svc := newTestService(nil, nil)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleOrgAdmin}
	err := svc.Delete(context.Background(), "missing", requester)
	assert.ErrorIs(t, err, punch.ErrEventNotFound)
}

func TestCloseStaleUsesStartOfToday(t *testing.T) {
	punches := &stubPunchRepo{byID: map[string]punch.Event{}, closed: 3}
	svc := newTestService(nil, punches)

	closed, err := svc.CloseStale(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), closed)
}
