package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	UserReport(w http.ResponseWriter, r *http.Request)
	CompanySummary(w http.ResponseWriter, r *http.Request)
	CompanyOverview(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func rangeSpecFromQuery(r *http.Request) report.RangeSpec {
	q := r.URL.Query()
	year, _ := strconv.Atoi(q.Get("year"))
	month, _ := strconv.Atoi(q.Get("month"))
	return report.RangeSpec{
		Type:  q.Get("date_range_type"),
		Year:  year,
		Month: month,
		Start: q.Get("start_date"),
		End:   q.Get("end_date"),
	}
}

// UserReport implements ReportHandler.
func (h *ReportHandlerImpl) UserReport(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	email := r.URL.Query().Get("user_email")
	entry, err := h.reportService.UserReport(r.Context(), email, rangeSpecFromQuery(r), requester)
	if err != nil {
		slog.Error("UserReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// CompanySummary implements ReportHandler.
func (h *ReportHandlerImpl) CompanySummary(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		companyID = requester.CompanyID
	}

	entries, err := h.reportService.CompanySummary(r.Context(), companyID, rangeSpecFromQuery(r), requester)
	if err != nil {
		slog.Error("CompanySummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// CompanyOverview implements ReportHandler.
func (h *ReportHandlerImpl) CompanyOverview(w http.ResponseWriter, r *http.Request) {
	requester, err := RequesterFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	overview, err := h.reportService.CompanyOverview(r.Context(), rangeSpecFromQuery(r), requester)
	if err != nil {
		slog.Error("CompanyOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
