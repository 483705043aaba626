package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type stubUserRepo struct {
	users map[string]user.User
	err   error
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if s.err != nil {
		return user.User{}, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]user.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []user.User
	for _, u := range s.users {
		if u.CompanyID == companyID && u.IsActive {
			out = append(out, u)
		}
	}
	return out, nil
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

type stubCompanyRepo struct {
	companies []company.Company
	admins    map[string][]user.User
}

func (s *stubCompanyRepo) GetByID(ctx context.Context, id string) (company.Company, error) {
	for _, c := range s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

func (s *stubCompanyRepo) GetAllActive(ctx context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range s.companies {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	return s.companies, nil
}

func (s *stubCompanyRepo) GetAdmins(ctx context.Context, companyID string) ([]user.User, error) {
	return s.admins[companyID], nil
}

func (s *stubCompanyRepo) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	return newCompany, nil
}

func (s *stubCompanyRepo) Update(ctx context.Context, id string, req company.UpdateCompanyRequest) error {
	return nil
}

type stubPunchRepo struct {
	events map[string][]punch.Event
	err    error
}

func (s *stubPunchRepo) GetRange(ctx context.Context, email string, from, to time.Time) ([]punch.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.events[email], nil
}

func (s *stubPunchRepo) GetRangeByCompany(ctx context.Context, companyID string, from, to time.Time) ([]punch.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []punch.Event
	for _, evs := range s.events {
		out = append(out, evs...)
	}
	return out, nil
}

func (s *stubPunchRepo) GetByID(ctx context.Context, id string) (punch.Event, error) {
	return punch.Event{}, punch.ErrEventNotFound
}

func (s *stubPunchRepo) GetOpenInRange(ctx context.Context, email string, from, to time.Time) (*punch.Event, error) {
	return nil, nil
}

func (s *stubPunchRepo) Create(ctx context.Context, newEvent punch.Event) (punch.Event, error) {
	return newEvent, nil
}

func (s *stubPunchRepo) Update(ctx context.Context, event punch.Event) error { return nil }

func (s *stubPunchRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubPunchRepo) CloseOpenBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func testEmployee(email, companyID string) user.User {
	return user.User{
		Email:         email,
		FirstName:     "Test",
		LastName:      "Worker",
		CompanyID:     companyID,
		Role:          user.RoleEmployee,
		IsActive:      true,
		Salary:        decPtr(20),
		WorkCapacity:  decPtr(8),
		WeekendChoice: strPtr("saturday,sunday"),
	}
}

func janSpec() report.RangeSpec {
	return report.RangeSpec{Type: report.RangeTypeMonthly, Year: 2024, Month: 1}
}

func newTestService(users *stubUserRepo, companies *stubCompanyRepo, punches *stubPunchRepo) report.ReportService {
	if users == nil {
		users = &stubUserRepo{users: map[string]user.User{}}
	}
	if companies == nil {
		companies = &stubCompanyRepo{}
	}
	if punches == nil {
		punches = &stubPunchRepo{events: map[string][]punch.Event{}}
	}
	return NewReportService(users, companies, punches)
}

func TestUserReportEmployeeCannotReadOthers(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.UserReport(context.Background(), "other@example.com", janSpec(), requester)
	assert.ErrorIs(t, err, report.ErrUnauthorized)
}

func TestUserReportEmptyEmailDefaultsToRequester(t *testing.T) {
	emp := testEmployee("me@example.com", "c1")
	users := &stubUserRepo{users: map[string]user.User{emp.Email: emp}}
	punches := &stubPunchRepo{events: map[string][]punch.Event{
		emp.Email: {workEvent(day(2024, 1, 2).Add(9*time.Hour), 8)},
	}}
	svc := newTestService(users, nil, punches)

	requester := user.Requester{Email: emp.Email, Role: user.RoleEmployee, CompanyID: "c1"}
	entry, err := svc.UserReport(context.Background(), "", janSpec(), requester)
	require.NoError(t, err)

	assert.Equal(t, "Test Worker", entry.EmployeeName)
	assert.Equal(t, 1, entry.DaysWorked)
	assert.Equal(t, "08:00", entry.TotalHoursWorked)
	assert.Equal(t, emp.Email, entry.UserDetails.Email)
	assert.NotEmpty(t, entry.DailyBreakdown)
}

func TestUserReportEmployerOtherCompanyRejected(t *testing.T) {
	emp := testEmployee("worker@example.com", "c2")
	users := &stubUserRepo{users: map[string]user.User{emp.Email: emp}}
	svc := newTestService(users, nil, nil)

	requester := user.Requester{Email: "boss@example.com", Role: user.RoleEmployer, CompanyID: "c1"}
	_, err := svc.UserReport(context.Background(), emp.Email, janSpec(), requester)
	assert.ErrorIs(t, err, report.ErrUnauthorized)
}

func TestUserReportUnknownUser(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	requester := user.Requester{Email: "boss@example.com", Role: user.RoleOrgAdmin}
	_, err := svc.UserReport(context.Background(), "ghost@example.com", janSpec(), requester)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserReportPayrollAndCapacity(t *testing.T) {
	emp := testEmployee("worker@example.com", "c1")
	users := &stubUserRepo{users: map[string]user.User{emp.Email: emp}}
	punches := &stubPunchRepo{events: map[string][]punch.Event{
		emp.Email: {
			workEvent(day(2024, 1, 2).Add(9*time.Hour), 8),
			workEvent(day(2024, 1, 3).Add(9*time.Hour), 6),
			dayOffEvent(day(2024, 1, 4), punch.ReportingTypePaidOff),
		},
	}}
	svc := newTestService(users, nil, punches)

	requester := user.Requester{Email: "admin@example.com", Role: user.RoleOrgAdmin}
	entry, err := svc.UserReport(context.Background(), emp.Email, janSpec(), requester)
	require.NoError(t, err)

	// January 2024 has 23 weekdays.
	assert.Equal(t, 23, entry.PotentialWorkDays)
	assert.Equal(t, 20, entry.DaysNotReported)
	assert.Equal(t, "22:00", entry.TotalHoursWorked)
	assert.Equal(t, "184:00", entry.WorkCapacityForRange)
	// 22 hours at 20/h
	assert.InDelta(t, 440.0, entry.TotalPaymentRequired, 0.001)
	assert.Equal(t, "08:00", entry.UserDetails.WorkCapacity)
}

func TestUserReportInvalidRange(t *testing.T) {
	emp := testEmployee("worker@example.com", "c1")
	users := &stubUserRepo{users: map[string]user.User{emp.Email: emp}}
	svc := newTestService(users, nil, nil)

	requester := user.Requester{Email: "admin@example.com", Role: user.RoleOrgAdmin}
	_, err := svc.UserReport(context.Background(), emp.Email, report.RangeSpec{Type: "weekly"}, requester)
	assert.Error(t, err)
}

func TestCompanySummaryEmployeeRejected(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	requester := user.Requester{Email: "me@example.com", Role: user.RoleEmployee, CompanyID: "c1"}
	_, err := svc.CompanySummary(context.Background(), "c1", janSpec(), requester)
	assert.ErrorIs(t, err, report.ErrUnauthorized)
}

func TestCompanySummaryEmployerWrongCompanyRejected(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	requester := user.Requester{Email: "boss@example.com", Role: user.RoleEmployer, CompanyID: "c1"}
	_, err := svc.CompanySummary(context.Background(), "c2", janSpec(), requester)
	assert.ErrorIs(t, err, report.ErrUnauthorized)
}

func TestCompanySummaryOmitsBreakdown(t *testing.T) {
	alice := testEmployee("alice@example.com", "c1")
	bob := testEmployee("bob@example.com", "c1")
	users := &stubUserRepo{users: map[string]user.User{alice.Email: alice, bob.Email: bob}}
	punches := &stubPunchRepo{events: map[string][]punch.Event{
		alice.Email: {workEvent(day(2024, 1, 2).Add(9*time.Hour), 8)},
	}}
	svc := newTestService(users, nil, punches)

	requester := user.Requester{Email: "boss@example.com", Role: user.RoleEmployer, CompanyID: "c1"}
	entries, err := svc.CompanySummary(context.Background(), "c1", janSpec(), requester)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Nil(t, e.DailyBreakdown)
	}
}

func TestCompanySummaryAbortsOnRepositoryFailure(t *testing.T) {
	alice := testEmployee("alice@example.com", "c1")
	users := &stubUserRepo{users: map[string]user.User{alice.Email: alice}}
	punches := &stubPunchRepo{err: errors.New("connection reset")}
	svc := newTestService(users, nil, punches)

	requester := user.Requester{Email: "admin@example.com", Role: user.RoleOrgAdmin}
	_, err := svc.CompanySummary(context.Background(), "c1", janSpec(), requester)
	assert.Error(t, err)
}

func TestCompanyOverviewAdminOnly(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	for _, role := range []user.Role{user.RoleEmployee, user.RoleEmployer} {
		requester := user.Requester{Email: "x@example.com", Role: role, CompanyID: "c1"}
		_, err := svc.CompanyOverview(context.Background(), janSpec(), requester)
		assert.ErrorIs(t, err, report.ErrUnauthorized)
	}
}

func TestCompanyOverviewAggregates(t *testing.T) {
	alice := testEmployee("alice@example.com", "c1")
	boss := testEmployee("boss@example.com", "c1")
	boss.Role = user.RoleEmployer
	boss.FirstName = "Big"
	boss.LastName = "Boss"

	users := &stubUserRepo{users: map[string]user.User{alice.Email: alice, boss.Email: boss}}
	companies := &stubCompanyRepo{
		companies: []company.Company{
			{ID: "c1", Name: "Acme", IsActive: true},
			{ID: "c2", Name: "Closed Co", IsActive: false},
		},
		admins: map[string][]user.User{"c1": {boss}},
	}
	punches := &stubPunchRepo{events: map[string][]punch.Event{
		alice.Email: {
			workEvent(day(2024, 1, 2).Add(9*time.Hour), 8),
			workEvent(day(2024, 1, 3).Add(9*time.Hour), 2),
		},
	}}
	svc := newTestService(users, companies, punches)

	requester := user.Requester{Email: "admin@example.com", Role: user.RoleOrgAdmin}
	overview, err := svc.CompanyOverview(context.Background(), janSpec(), requester)
	require.NoError(t, err)

	// Inactive companies are not reported.
	require.Len(t, overview, 1)
	entry := overview[0]
	assert.Equal(t, "Acme", entry.CompanyName)
	assert.Equal(t, 2, entry.NumEmployees)
	assert.Equal(t, "10:00", entry.TotalHoursWorked)
	assert.InDelta(t, 200.0, entry.TotalMonthlySalary, 0.001)
	assert.Len(t, entry.MonthlyPayments, 2)
	assert.Equal(t, []string{"Big Boss"}, entry.AdminNames)
}
