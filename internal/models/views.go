package models

// Derived views are pure functions of a transaction collection. They are
// recomputed on demand and never persisted.

// CashflowMetrics summarizes income and spending over the period covered by
// the transaction collection.
type CashflowMetrics struct {
	IncomeTotal      float64 `json:"incomeTotal"`
	ExpenseTotal     float64 `json:"expenseTotal"`
	NetTotal         float64 `json:"netTotal"`
	AvgDailySpend    float64 `json:"avgDailySpend"`
	PeriodStart      string  `json:"periodStart"`
	PeriodEnd        string  `json:"periodEnd"`
	TransactionCount int     `json:"transactionCount"`
}

// CategoryBreakdown is the expense total for one category.
// Percentage is relative to total expenses, not all transactions.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// MerchantBreakdown is the expense total for one merchant.
type MerchantBreakdown struct {
	Merchant string  `json:"merchant"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// DailySpend is the income/expense bucket for one calendar day.
type DailySpend struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MonthlyTrend is the income/expense bucket for one YYYY-MM month.
type MonthlyTrend struct {
	Month   string  `json:"month"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// AnomalyEntry describes one unusually large expense.
type AnomalyEntry struct {
	Date     string  `json:"date"`
	Merchant string  `json:"merchant"`
	Amount   float64 `json:"amount"`
	Reason   string  `json:"reason"`
}

// Cadence is the inferred recurrence interval class of a merchant's charges.
type Cadence string

const (
	CadenceWeekly      Cadence = "weekly"
	CadenceFortnightly Cadence = "fortnightly"
	CadenceMonthly     Cadence = "monthly"
	CadenceQuarterly   Cadence = "quarterly"
	CadenceAnnual      Cadence = "annual"
	CadenceUnknown     Cadence = "unknown"
)

// Rank orders cadences for presentation: tighter cycles first, unknown last.
func (c Cadence) Rank() int {
	switch c {
	case CadenceWeekly:
		return 0
	case CadenceFortnightly:
		return 1
	case CadenceMonthly:
		return 2
	case CadenceQuarterly:
		return 3
	case CadenceAnnual:
		return 4
	default:
		return 5
	}
}

// RecurringPayment is one detected recurring charge group.
type RecurringPayment struct {
	Merchant  string  `json:"merchant"`
	Cadence   Cadence `json:"cadence"`
	AvgAmount float64 `json:"avgAmount"`
	Count     int     `json:"count"`
	LastDate  string  `json:"lastDate"`
}
