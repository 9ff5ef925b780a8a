// Package report contains the report-aggregator use case.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/coursehub/backoffice/internal/domain/error"
	"github.com/coursehub/backoffice/internal/domain/valueobject"
)

type fakeReportRepository struct {
	opening      decimal.Decimal
	totals       PeriodTotals
	balanceTotal decimal.Decimal
	breakdown    []RawCategoryTotal

	openingBefore time.Time
	queriedStart  time.Time
	queriedEnd    time.Time

	err error
}

func (r *fakeReportRepository) GetOpeningBalance(_ context.Context, before time.Time) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	r.openingBefore = before
	return r.opening, nil
}

func (r *fakeReportRepository) GetPeriodTotals(_ context.Context, start, end time.Time) (*PeriodTotals, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.queriedStart = start
	r.queriedEnd = end
	totals := r.totals
	return &totals, nil
}

func (r *fakeReportRepository) GetBalanceTotal(_ context.Context) (decimal.Decimal, error) {
	if r.err != nil {
		return decimal.Zero, r.err
	}
	return r.balanceTotal, nil
}

func (r *fakeReportRepository) GetCategoryBreakdown(_ context.Context, _, _ time.Time) ([]RawCategoryTotal, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.breakdown, nil
}

func TestComputeReport(t *testing.T) {
	t.Run("derives all report fields", func(t *testing.T) {
		repo := &fakeReportRepository{
			opening: decimal.NewFromInt(1000),
			totals: PeriodTotals{
				IncomeCompleted:  decimal.NewFromInt(500),
				IncomePending:    decimal.NewFromInt(200),
				ExpenseCompleted: decimal.NewFromInt(300),
				ExpensePending:   decimal.NewFromInt(50),
			},
			balanceTotal: decimal.NewFromInt(1200),
			breakdown: []RawCategoryTotal{
				{Category: "Rent", Total: decimal.NewFromInt(-300), TransactionCount: 1},
				{Category: "Tuition", Total: decimal.NewFromInt(700), TransactionCount: 3},
			},
		}
		uc := NewComputeReportUseCase(repo)

		output, err := uc.Execute(context.Background(), ComputeReportInput{
			Period: valueobject.Monthly(2025, time.November),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.PeriodLabel != "November 2025" {
			t.Errorf("expected label 'November 2025', got %q", output.PeriodLabel)
		}
		if !output.OpeningBalance.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected opening 1000, got %s", output.OpeningBalance)
		}

		// Net change counts completed amounts only: 500 - 300.
		if !output.NetChange.Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected net change 200, got %s", output.NetChange)
		}
		// Projection folds pending in: 1000 + 200 + 200 - 50.
		if !output.ProjectedClosing.Equal(decimal.NewFromInt(1350)) {
			t.Errorf("expected projected closing 1350, got %s", output.ProjectedClosing)
		}

		if !output.PeriodIncome.Total.Equal(decimal.NewFromInt(700)) {
			t.Errorf("expected income total 700, got %s", output.PeriodIncome.Total)
		}
		if !output.PeriodExpense.Total.Equal(decimal.NewFromInt(350)) {
			t.Errorf("expected expense total 350, got %s", output.PeriodExpense.Total)
		}
		if !output.CurrentBalance.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected current balance 1200, got %s", output.CurrentBalance)
		}

		if len(output.CategoryBreakdown) != 2 {
			t.Fatalf("expected two category rows, got %d", len(output.CategoryBreakdown))
		}
		if output.CategoryBreakdown[1].Category != "Tuition" || output.CategoryBreakdown[1].TransactionCount != 3 {
			t.Errorf("unexpected breakdown row: %+v", output.CategoryBreakdown[1])
		}
	})

	t.Run("queries the derived window and opening boundary", func(t *testing.T) {
		repo := &fakeReportRepository{}
		uc := NewComputeReportUseCase(repo)

		if _, err := uc.Execute(context.Background(), ComputeReportInput{
			Period: valueobject.Monthly(2025, time.February),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		expectedStart := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		expectedEnd := time.Date(2025, time.February, 28, 23, 59, 59, 999000000, time.UTC)

		if !repo.openingBefore.Equal(expectedStart) {
			t.Errorf("expected opening boundary %v, got %v", expectedStart, repo.openingBefore)
		}
		if !repo.queriedStart.Equal(expectedStart) || !repo.queriedEnd.Equal(expectedEnd) {
			t.Errorf("expected window [%v, %v], got [%v, %v]", expectedStart, expectedEnd, repo.queriedStart, repo.queriedEnd)
		}
	})

	t.Run("empty window yields zeros", func(t *testing.T) {
		uc := NewComputeReportUseCase(&fakeReportRepository{})

		output, err := uc.Execute(context.Background(), ComputeReportInput{
			Period: valueobject.Quarterly(2030, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.NetChange.IsZero() || !output.ProjectedClosing.IsZero() {
			t.Errorf("expected zero report, got net %s projected %s", output.NetChange, output.ProjectedClosing)
		}
		if len(output.CategoryBreakdown) != 0 {
			t.Errorf("expected empty breakdown, got %v", output.CategoryBreakdown)
		}
	})

	t.Run("malformed period is rejected", func(t *testing.T) {
		uc := NewComputeReportUseCase(&fakeReportRepository{})

		_, err := uc.Execute(context.Background(), ComputeReportInput{
			Period: valueobject.Monthly(2025, 13),
		})
		if !errors.Is(err, domainerror.ErrInvalidPeriodMonth) {
			t.Fatalf("expected invalid-month error, got %v", err)
		}
	})

	t.Run("storage failure is surfaced", func(t *testing.T) {
		repo := &fakeReportRepository{err: errors.New("connection refused")}
		uc := NewComputeReportUseCase(repo)

		if _, err := uc.Execute(context.Background(), ComputeReportInput{
			Period: valueobject.Monthly(2025, time.January),
		}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
