package models

import (
	"time"

	"sala-admin/app/ledger"
)

// StudentLedgerRow extends a Student with the computed ledger figures for
// table and export display.
type StudentLedgerRow struct {
	Student
	TotalOwed float64       `json:"total_owed"`
	TotalPaid float64       `json:"total_paid"`
	Balance   float64       `json:"balance"`
	Ledger    ledger.Status `json:"ledger_status"`
}

type DashboardStats struct {
	TotalStudents      int        `json:"total_students"`
	ActiveStudents     int        `json:"active_students"`
	PaidCount          int        `json:"paid_count"`
	OverdueCount       int        `json:"overdue_count"`
	WarningCount       int        `json:"warning_count"`
	OutstandingBalance float64    `json:"outstanding_balance"`
	MonthIncome        float64    `json:"month_income"`
	MonthExpense       float64    `json:"month_expense"`
	MonthNet           float64    `json:"month_net"`
	TodaySales         float64    `json:"today_sales"`
	LowStockItems      int        `json:"low_stock_items"`
	RecentActivities   []Activity `json:"recent_activities"`
}

type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	RawTime     time.Time `json:"-"`
	TimeAgo     string    `json:"time_ago"`
}
