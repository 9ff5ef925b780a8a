package persistence

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coursehub/backoffice/internal/application/usecase/report"
	domainerror "github.com/coursehub/backoffice/internal/domain/error"
)

// reportRepository implements report.ReportRepository with raw aggregate
// queries. Nothing here mutates state, so no transactions are needed.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

// GetOpeningBalance sums every completed transaction dated strictly before
// the given instant. Amounts are stored signed, so a plain SUM is the
// system-wide balance as of that point.
func (r *reportRepository) GetOpeningBalance(ctx context.Context, before time.Time) (decimal.Decimal, error) {
	var opening decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE status = 'completed'
		  AND date < ?
		  AND deleted_at IS NULL
	`, before).Scan(&opening).Error
	if err != nil {
		return decimal.Zero, domainerror.ClassifyStorageError(err)
	}
	return opening, nil
}

// GetPeriodTotals computes the four income/expense splits for a date range
// in a single query. Expense rows are stored negative, so their sums are
// negated back to magnitudes. Transfer legs cancel pairwise and are excluded
// so they do not inflate either side.
func (r *reportRepository) GetPeriodTotals(ctx context.Context, start, end time.Time) (*report.PeriodTotals, error) {
	var totals report.PeriodTotals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' AND status = 'completed' THEN amount ELSE 0 END), 0) AS income_completed,
			COALESCE(SUM(CASE WHEN type = 'income' AND status = 'pending' THEN amount ELSE 0 END), 0) AS income_pending,
			COALESCE(SUM(CASE WHEN type IN ('expense', 'distribution') AND status = 'completed' THEN -amount ELSE 0 END), 0) AS expense_completed,
			COALESCE(SUM(CASE WHEN type IN ('expense', 'distribution') AND status = 'pending' THEN -amount ELSE 0 END), 0) AS expense_pending
		FROM transactions
		WHERE date >= ?
		  AND date <= ?
		  AND type <> 'transfer'
		  AND deleted_at IS NULL
	`, start, end).Scan(&totals).Error
	if err != nil {
		return nil, domainerror.ClassifyStorageError(err)
	}
	return &totals, nil
}

// GetBalanceTotal sums the materialized balances of every account.
func (r *reportRepository) GetBalanceTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(balance), 0)
		FROM accounts
	`).Scan(&total).Error
	if err != nil {
		return decimal.Zero, domainerror.ClassifyStorageError(err)
	}
	return total, nil
}

// GetCategoryBreakdown groups the period's non-transfer transactions by
// category, both statuses included.
func (r *reportRepository) GetCategoryBreakdown(ctx context.Context, start, end time.Time) ([]report.RawCategoryTotal, error) {
	var rows []report.RawCategoryTotal
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			category,
			COALESCE(SUM(amount), 0) AS total,
			COUNT(*) AS transaction_count
		FROM transactions
		WHERE date >= ?
		  AND date <= ?
		  AND type <> 'transfer'
		  AND deleted_at IS NULL
		GROUP BY category
		ORDER BY category ASC
	`, start, end).Scan(&rows).Error
	if err != nil {
		return nil, domainerror.ClassifyStorageError(err)
	}
	return rows, nil
}
