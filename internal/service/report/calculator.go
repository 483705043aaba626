package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/timewatch/timewatch-backend-go/internal/domain/punch"
	"github.com/timewatch/timewatch-backend-go/internal/domain/report"
	"github.com/timewatch/timewatch-backend-go/internal/domain/user"
	"github.com/timewatch/timewatch-backend-go/internal/pkg/timefmt"
)

// isWeekendDay reports whether day matches the subject's weekend choice,
// compared case-insensitively by weekday name. An unset or empty choice
// excludes nothing.
func isWeekendDay(day time.Time, weekendChoice *string) bool {
	if weekendChoice == nil || strings.TrimSpace(*weekendChoice) == "" {
		return false
	}
	name := strings.ToLower(day.UTC().Weekday().String())
	for _, choice := range strings.Split(*weekendChoice, ",") {
		if strings.ToLower(strings.TrimSpace(choice)) == name {
			return true
		}
	}
	return false
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// calculateWorkDays walks the range day by day, inclusive of both endpoints,
// classifying each day from the subject's punch events. Weekend-excluded
// days are skipped before any classification: they touch no counter and emit
// no breakdown record. For every other day the first event in list order
// whose punch-in date matches decides the day; scanning stops at that event.
func calculateWorkDays(weekendChoice *string, events []punch.Event, rng report.DateRange) (report.WorkDayTotals, []report.DayRecord) {
	var totals report.WorkDayTotals
	var breakdown []report.DayRecord

	for day := rng.Start; !day.After(rng.End); day = day.AddDate(0, 0, 1) {
		if isWeekendDay(day, weekendChoice) {
			continue
		}

		totals.PotentialWorkDays++

		var workType *string
		var dailySeconds int64
		found := false

		for i := range events {
			if !sameCalendarDay(events[i].PunchIn, day) {
				continue
			}
			found = true
			switch events[i].ReportingType {
			case punch.ReportingTypeWork:
				totals.DaysWorked++
				dailySeconds += events[i].WorkDuration()
			case punch.ReportingTypePaidOff:
				totals.PaidDaysOff++
				dailySeconds = punch.PaidOffSeconds
			case punch.ReportingTypeUnpaidOff:
				totals.UnpaidDaysOff++
				dailySeconds = 0
			}
			t := string(events[i].ReportingType)
			workType = &t
			break
		}

		if !found {
			totals.DaysNotReported++
		}
		totals.TotalSecondsWorked += dailySeconds

		breakdown = append(breakdown, report.DayRecord{
			Date:          day.UTC().Format("2006-01-02"),
			HoursWorked:   timefmt.HHMM(dailySeconds),
			ReportingType: workType,
		})
	}

	return totals, breakdown
}

// workCapacityForRange returns the expected hours for the range, rounded to
// two decimals: daily capacity times the number of potential work days.
func workCapacityForRange(dailyCapacity decimal.Decimal, potentialWorkDays int) decimal.Decimal {
	return dailyCapacity.Mul(decimal.NewFromInt(int64(potentialWorkDays))).Round(2)
}

// paymentRequired converts worked seconds into money at the hourly salary.
// The result is not yet rounded so totals can accumulate exactly.
func paymentRequired(totalSeconds int64, hourlySalary decimal.Decimal) decimal.Decimal {
	hours := decimal.NewFromInt(totalSeconds).Div(decimal.NewFromInt(3600))
	return hours.Mul(hourlySalary)
}

func hoursToHHMM(hours decimal.Decimal) string {
	return timefmt.HHMM(hours.Mul(decimal.NewFromInt(3600)).IntPart())
}

func buildReportEntry(subject user.User, totals report.WorkDayTotals, breakdown []report.DayRecord) report.ReportEntry {
	salary, _ := subject.HourlySalary().Float64()
	capacity := workCapacityForRange(subject.DailyCapacity(), totals.PotentialWorkDays)
	payment, _ := paymentRequired(totals.TotalSecondsWorked, subject.HourlySalary()).Round(2).Float64()

	return report.ReportEntry{
		EmployeeName:         subject.FullName(),
		DaysWorked:           totals.DaysWorked,
		PaidDaysOff:          totals.PaidDaysOff,
		UnpaidDaysOff:        totals.UnpaidDaysOff,
		DaysNotReported:      totals.DaysNotReported,
		PotentialWorkDays:    totals.PotentialWorkDays,
		TotalHoursWorked:     timefmt.HHMM(totals.TotalSecondsWorked),
		WorkCapacityForRange: hoursToHHMM(capacity),
		TotalPaymentRequired: payment,
		DailyBreakdown:       breakdown,
		UserDetails: report.UserDetails{
			Email:         subject.Email,
			Position:      subject.Position,
			Phone:         subject.MobilePhone,
			Salary:        salary,
			WorkCapacity:  hoursToHHMM(subject.DailyCapacity()),
			WeekendChoice: subject.WeekendChoice,
		},
	}
}
