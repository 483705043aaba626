package report

import (
	"context"

	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
)

type ReportService interface {
	// UserReport builds a single subject's report with the daily breakdown.
	// Employees may only request their own report; an empty email defaults
	// to the requester.
	UserReport(ctx context.Context, email string, spec RangeSpec, requester user.Requester) (ReportEntry, error)
	// CompanySummary builds one entry per active employee of a company,
	// without daily breakdowns.
	CompanySummary(ctx context.Context, companyID string, spec RangeSpec, requester user.Requester) ([]ReportEntry, error)
	// CompanyOverview builds the org-admin-only overview across all active
	// companies.
	CompanyOverview(ctx context.Context, spec RangeSpec, requester user.Requester) ([]CompanyOverviewEntry, error)
}
