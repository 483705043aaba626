package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/timewatch/timewatch-backend-go/internal/domain/company"
	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/timefmt"
)

type ReportServiceImpl struct {
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	punchRepo   punch.PunchRepository
}

func NewReportService(
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	punchRepo punch.PunchRepository,
) report.ReportService {
	return &ReportServiceImpl{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		punchRepo:   punchRepo,
	}
}

// UserReport implements report.ReportService.
func (s *ReportServiceImpl) UserReport(ctx context.Context, email string, spec report.RangeSpec, requester user.Requester) (report.ReportEntry, error) {
	if email == "" {
		email = requester.Email
	}
	if requester.Role.IsEmployee() && email != requester.Email {
		return report.ReportEntry{}, report.ErrUnauthorized
	}

	rng, err := spec.Resolve()
	if err != nil {
		return report.ReportEntry{}, err
	}

	subject, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return report.ReportEntry{}, err
	}

	if requester.Role.IsEmployer() && subject.CompanyID != requester.CompanyID {
		return report.ReportEntry{}, report.ErrUnauthorized
	}

	from, to := rng.QueryBounds()
	events, err := s.punchRepo.GetRange(ctx, email, from, to)
	if err != nil {
		return report.ReportEntry{}, fmt.Errorf("failed to get punch events: %w", err)
	}

	totals, breakdown := calculateWorkDays(subject.WeekendChoice, events, rng)
	return buildReportEntry(subject, totals, breakdown), nil
}

// CompanySummary implements report.ReportService.
//
// Employees are computed one at a time; the first repository failure aborts
// the whole batch so the caller never sees a silently partial report.
func (s *ReportServiceImpl) CompanySummary(ctx context.Context, companyID string, spec report.RangeSpec, requester user.Requester) ([]report.ReportEntry, error) {
	if requester.Role.IsEmployee() {
		return nil, report.ErrUnauthorized
	}
	if requester.Role.IsEmployer() && requester.CompanyID != companyID {
		return nil, report.ErrUnauthorized
	}

	rng, err := spec.Resolve()
	if err != nil {
		return nil, err
	}

	employees, err := s.userRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get company employees: %w", err)
	}

	from, to := rng.QueryBounds()
	entries := make([]report.ReportEntry, 0, len(employees))
	for _, emp := range employees {
		events, err := s.punchRepo.GetRange(ctx, emp.Email, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to get punch events for %s: %w", emp.Email, err)
		}

		totals, _ := calculateWorkDays(emp.WeekendChoice, events, rng)
		entries = append(entries, buildReportEntry(emp, totals, nil))
	}

	return entries, nil
}

// CompanyOverview implements report.ReportService.
func (s *ReportServiceImpl) CompanyOverview(ctx context.Context, spec report.RangeSpec, requester user.Requester) ([]report.CompanyOverviewEntry, error) {
	if !requester.Role.IsOrgAdmin() {
		return nil, report.ErrUnauthorized
	}

	rng, err := spec.Resolve()
	if err != nil {
		return nil, err
	}

	companies, err := s.companyRepo.GetAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active companies: %w", err)
	}

	from, to := rng.QueryBounds()
	overview := make([]report.CompanyOverviewEntry, 0, len(companies))
	for _, comp := range companies {
		employees, err := s.userRepo.GetActiveByCompanyID(ctx, comp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get employees of company %s: %w", comp.ID, err)
		}

		events, err := s.punchRepo.GetRangeByCompany(ctx, comp.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("failed to get punch events of company %s: %w", comp.ID, err)
		}

		secondsByEmail := make(map[string]int64, len(employees))
		for i := range events {
			secondsByEmail[events[i].UserEmail] += events[i].WorkDuration()
		}

		var totalSeconds int64
		totalPayroll := decimal.Zero
		payments := make([]float64, 0, len(employees))
		for _, emp := range employees {
			empSeconds := secondsByEmail[emp.Email]
			totalSeconds += empSeconds

			payment := paymentRequired(empSeconds, emp.HourlySalary())
			totalPayroll = totalPayroll.Add(payment)

			rounded, _ := payment.Round(2).Float64()
			payments = append(payments, rounded)
		}

		admins, err := s.companyRepo.GetAdmins(ctx, comp.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get admins of company %s: %w", comp.ID, err)
		}
		adminNames := make([]string, 0, len(admins))
		for i := range admins {
			adminNames = append(adminNames, admins[i].FullName())
		}

		totalPayrollRounded, _ := totalPayroll.Round(2).Float64()
		overview = append(overview, report.CompanyOverviewEntry{
			CompanyName:        comp.Name,
			NumEmployees:       len(employees),
			TotalHoursWorked:   timefmt.HHMM(totalSeconds),
			TotalMonthlySalary: totalPayrollRounded,
			MonthlyPayments:    payments,
			AdminNames:         adminNames,
		})
	}

	return overview, nil
}
