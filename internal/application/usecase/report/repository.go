// Package report contains the report-aggregator use case.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodTotals holds the period's income/expense sums split by settlement
// status. Expense figures cover expense and distribution rows and are
// positive magnitudes.
type PeriodTotals struct {
	IncomeCompleted  decimal.Decimal
	IncomePending    decimal.Decimal
	ExpenseCompleted decimal.Decimal
	ExpensePending   decimal.Decimal
}

// RawCategoryTotal is one category's signed sum over a window as returned by
// the storage layer. Transfer rows are never included.
type RawCategoryTotal struct {
	Category         string
	Total            decimal.Decimal
	TransactionCount int
}

// ReportRepository defines the aggregation queries backing report
// computation. Grouping and summation run inside the storage engine; the
// full transaction set is never loaded into memory.
type ReportRepository interface {
	// GetOpeningBalance returns the signed sum of all completed transactions
	// dated strictly before the given instant, across all accounts.
	GetOpeningBalance(ctx context.Context, before time.Time) (decimal.Decimal, error)

	// GetPeriodTotals returns income/expense sums within [start, end],
	// split by status.
	GetPeriodTotals(ctx context.Context, start, end time.Time) (*PeriodTotals, error)

	// GetBalanceTotal returns the sum of all materialized account balances.
	GetBalanceTotal(ctx context.Context) (decimal.Decimal, error)

	// GetCategoryBreakdown returns per-category signed sums within
	// [start, end], excluding transfer rows, ordered by category.
	GetCategoryBreakdown(ctx context.Context, start, end time.Time) ([]RawCategoryTotal, error)
}
