// Package report contains the report-aggregator use case.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/internal/domain/valueobject"
)

// StatusSplit is an amount broken down by settlement status.
type StatusSplit struct {
	Completed decimal.Decimal
	Pending   decimal.Decimal
	Total     decimal.Decimal
}

// CategoryTotal is one category's signed sum over the report window.
type CategoryTotal struct {
	Category         string
	Total            decimal.Decimal
	TransactionCount int
}

// ComputeReportInput represents the input for report computation.
type ComputeReportInput struct {
	Period valueobject.Period
}

// ComputeReportOutput is the derived period report. It is never persisted
// and is recomputed from account and transaction state on every request.
type ComputeReportOutput struct {
	Period            valueobject.Period
	PeriodLabel       string
	DateRange         valueobject.DateRange
	OpeningBalance    decimal.Decimal
	PeriodIncome      StatusSplit
	PeriodExpense     StatusSplit
	NetChange         decimal.Decimal
	CurrentBalance    decimal.Decimal
	ProjectedClosing  decimal.Decimal
	CategoryBreakdown []CategoryTotal
}

// ComputeReportUseCase derives a period report from the account store and
// the transaction ledger. Pure read: no locking beyond the storage engine's
// consistent-read guarantee, safe to run concurrently with writes.
type ComputeReportUseCase struct {
	reportRepo ReportRepository
}

// NewComputeReportUseCase creates a new ComputeReportUseCase instance.
func NewComputeReportUseCase(reportRepo ReportRepository) *ComputeReportUseCase {
	return &ComputeReportUseCase{
		reportRepo: reportRepo,
	}
}

// Execute computes the report. The only error a well-formed request can see
// beyond storage failures is a malformed period; an empty window yields
// zeros, not an error.
func (uc *ComputeReportUseCase) Execute(ctx context.Context, input ComputeReportInput) (*ComputeReportOutput, error) {
	dateRange, err := input.Period.Range()
	if err != nil {
		return nil, err
	}

	openingBalance, err := uc.reportRepo.GetOpeningBalance(ctx, dateRange.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to get opening balance: %w", err)
	}

	totals, err := uc.reportRepo.GetPeriodTotals(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get period totals: %w", err)
	}

	currentBalance, err := uc.reportRepo.GetBalanceTotal(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance total: %w", err)
	}

	rawBreakdown, err := uc.reportRepo.GetCategoryBreakdown(ctx, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	breakdown := make([]CategoryTotal, len(rawBreakdown))
	for i, raw := range rawBreakdown {
		breakdown[i] = CategoryTotal{
			Category:         raw.Category,
			Total:            raw.Total,
			TransactionCount: raw.TransactionCount,
		}
	}

	income := StatusSplit{
		Completed: totals.IncomeCompleted,
		Pending:   totals.IncomePending,
		Total:     totals.IncomeCompleted.Add(totals.IncomePending),
	}
	expense := StatusSplit{
		Completed: totals.ExpenseCompleted,
		Pending:   totals.ExpensePending,
		Total:     totals.ExpenseCompleted.Add(totals.ExpensePending),
	}

	// Pending amounts are deliberately excluded from net change; they only
	// enter the projection.
	netChange := income.Completed.Sub(expense.Completed)
	projectedClosing := openingBalance.Add(netChange).Add(income.Pending).Sub(expense.Pending)

	return &ComputeReportOutput{
		Period:            input.Period,
		PeriodLabel:       input.Period.Label(),
		DateRange:         dateRange,
		OpeningBalance:    openingBalance,
		PeriodIncome:      income,
		PeriodExpense:     expense,
		NetChange:         netChange,
		CurrentBalance:    currentBalance,
		ProjectedClosing:  projectedClosing,
		CategoryBreakdown: breakdown,
	}, nil
}
