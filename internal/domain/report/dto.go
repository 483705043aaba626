package report

// DayRecord is one calendar day of a subject's breakdown. Weekend-excluded
// days are never emitted.
type DayRecord struct {
	Date          string  `json:"date"`        // YYYY-MM-DD
	HoursWorked   string  `json:"hoursWorked"` // HH:MM of the day's contributed seconds
	ReportingType *string `json:"reportingType"`
}

// WorkDayTotals are the running sums accumulated over a date range.
type WorkDayTotals struct {
	DaysWorked         int
	PaidDaysOff        int
	UnpaidDaysOff      int
	DaysNotReported    int
	PotentialWorkDays  int
	TotalSecondsWorked int64
}

type UserDetails struct {
	Email         string  `json:"email"`
	Position      *string `json:"position"`
	Phone         *string `json:"phone"`
	Salary        float64 `json:"salary"`
	WorkCapacity  string  `json:"workCapacity"` // HH:MM of the daily capacity
	WeekendChoice *string `json:"weekendChoice"`
}

// ReportEntry is the aggregate for one subject over one range.
type ReportEntry struct {
	EmployeeName         string      `json:"employeeName"`
	DaysWorked           int         `json:"daysWorked"`
	PaidDaysOff          int         `json:"paidDaysOff"`
	UnpaidDaysOff        int         `json:"unpaidDaysOff"`
	DaysNotReported      int         `json:"daysNotReported"`
	PotentialWorkDays    int         `json:"potentialWorkDays"`
	TotalHoursWorked     string      `json:"totalHoursWorked"`
	WorkCapacityForRange string      `json:"workCapacityForRange"`
	TotalPaymentRequired float64     `json:"totalPaymentRequired"`
	DailyBreakdown       []DayRecord `json:"dailyBreakdown,omitempty"`
	UserDetails          UserDetails `json:"userDetails"`
}

// CompanyOverviewEntry is one active company's row in the org-wide overview.
type CompanyOverviewEntry struct {
	CompanyName        string    `json:"companyName"`
	NumEmployees       int       `json:"numEmployees"`
	TotalHoursWorked   string    `json:"totalHoursWorked"`
	TotalMonthlySalary float64   `json:"totalMonthlySalary"`
	MonthlyPayments    []float64 `json:"monthlyPayments"`
	AdminNames         []string  `json:"adminNames"`
}
