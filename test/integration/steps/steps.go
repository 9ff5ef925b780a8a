// Package steps wires the scenario suite to the application's use cases.
package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	accountusecase "github.com/coursehub/backoffice/internal/application/usecase/account"
	"github.com/coursehub/backoffice/internal/application/usecase/report"
	"github.com/coursehub/backoffice/internal/application/usecase/transaction"
	"github.com/coursehub/backoffice/internal/application/usecase/transfer"
	"github.com/coursehub/backoffice/internal/domain/entity"
	"github.com/coursehub/backoffice/internal/domain/valueobject"
	"github.com/coursehub/backoffice/internal/integration/adapters"
	"github.com/coursehub/backoffice/internal/integration/persistence"
	"github.com/coursehub/backoffice/internal/integration/persistence/model"
	"github.com/coursehub/backoffice/test/integration/mock"
)

const testTokenSecret = "test-token-secret-for-scenarios"

// testContext carries the state of one scenario.
type testContext struct {
	db *mock.Db

	createAccount     *accountusecase.CreateAccountUseCase
	listAccounts      *accountusecase.ListAccountsUseCase
	recordTransaction *transaction.RecordTransactionUseCase
	amendTransaction  *transaction.AmendTransactionUseCase
	removeTransaction *transaction.RemoveTransactionUseCase
	setStatus         *transaction.SetStatusUseCase
	transferFunds     *transfer.TransferFundsUseCase
	computeReport     *report.ComputeReportUseCase

	accessToken string
	accounts    map[string]uuid.UUID
	lastTxnID   uuid.UUID
	lastErr     error
	lastReport  *report.ComputeReportOutput
}

// InitializeScenario registers every step against a fresh context.
func InitializeScenario(ctx *godog.ScenarioContext) {
	db := mock.NewDb([]any{
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.MemberModel{},
	})

	accountRepo := persistence.NewAccountRepository(db.DbConn)
	ledgerRepo := persistence.NewLedgerRepository(db.DbConn)
	reportRepo := persistence.NewReportRepository(db.DbConn)
	memberDirectory := persistence.NewMemberDirectory(db.DbConn)
	tokenService := adapters.NewTokenService(testTokenSecret, time.Hour)

	test := &testContext{
		db:                db,
		createAccount:     accountusecase.NewCreateAccountUseCase(accountRepo, tokenService),
		listAccounts:      accountusecase.NewListAccountsUseCase(accountRepo),
		recordTransaction: transaction.NewRecordTransactionUseCase(ledgerRepo, accountRepo, memberDirectory, tokenService),
		amendTransaction:  transaction.NewAmendTransactionUseCase(ledgerRepo, accountRepo, tokenService),
		removeTransaction: transaction.NewRemoveTransactionUseCase(ledgerRepo, tokenService),
		setStatus:         transaction.NewSetStatusUseCase(ledgerRepo, tokenService),
		transferFunds:     transfer.NewTransferFundsUseCase(ledgerRepo, accountRepo, tokenService),
		computeReport:     report.NewComputeReportUseCase(reportRepo),
		accounts:          make(map[string]uuid.UUID),
	}

	ctx.Before(func(c context.Context, _ *godog.Scenario) (context.Context, error) {
		if err := db.Reset(); err != nil {
			return c, err
		}
		token, err := tokenService.GenerateAdminToken(c, "admin@coursehub.local")
		if err != nil {
			return c, err
		}
		test.accessToken = token
		test.accounts = make(map[string]uuid.UUID)
		test.lastErr = nil
		test.lastReport = nil
		return c, nil
	})

	ctx.Step(`^the caller is not authenticated$`, test.theCallerIsNotAuthenticated)
	ctx.Step(`^an account "([^"]*)" of type "([^"]*)"$`, test.anAccount)
	ctx.Step(`^the admin creates an account named "([^"]*)" of type "([^"]*)"$`, test.adminCreatesAccount)
	ctx.Step(`^the admin records a (completed|pending) (income|expense|distribution) of "([^"]*)" in "([^"]*)" under "([^"]*)"$`, test.adminRecordsTransaction)
	ctx.Step(`^the admin records a (completed|pending) (income|expense|distribution) of "([^"]*)" in "([^"]*)" under "([^"]*)" dated "([^"]*)"$`, test.adminRecordsTransactionDated)
	ctx.Step(`^the admin amends the last transaction amount to "([^"]*)"$`, test.adminAmendsAmount)
	ctx.Step(`^the admin removes the last transaction$`, test.adminRemovesTransaction)
	ctx.Step(`^the admin marks the last transaction as (completed|pending)$`, test.adminSetsStatus)
	ctx.Step(`^the admin transfers "([^"]*)" from "([^"]*)" to "([^"]*)"$`, test.adminTransfers)
	ctx.Step(`^the admin requests the report for (\d+)-(\d+)$`, test.adminRequestsMonthlyReport)

	ctx.Step(`^the operation succeeds$`, test.operationSucceeds)
	ctx.Step(`^the operation is rejected$`, test.operationIsRejected)
	ctx.Step(`^the account "([^"]*)" has balance "([^"]*)"$`, test.accountHasBalance)
	ctx.Step(`^the report opening balance is "([^"]*)"$`, test.reportOpeningBalanceIs)
	ctx.Step(`^the report net change is "([^"]*)"$`, test.reportNetChangeIs)
	ctx.Step(`^the report projected closing is "([^"]*)"$`, test.reportProjectedClosingIs)
	ctx.Step(`^the report completed income is "([^"]*)"$`, test.reportCompletedIncomeIs)
	ctx.Step(`^the report category "([^"]*)" totals "([^"]*)"$`, test.reportCategoryTotals)
	ctx.Step(`^the ledger contains (\d+) transactions for "([^"]*)"$`, test.ledgerContainsTransactions)
}

func (t *testContext) theCallerIsNotAuthenticated() error {
	t.accessToken = "not-a-valid-token"
	return nil
}

func (t *testContext) anAccount(name, accountType string) error {
	account := entity.NewAccount(name, accountType)
	if err := persistence.NewAccountRepository(t.db.DbConn).Create(context.Background(), account); err != nil {
		return err
	}
	t.accounts[name] = account.ID
	return nil
}

func (t *testContext) adminCreatesAccount(name, accountType string) error {
	output, err := t.createAccount.Execute(context.Background(), accountusecase.CreateAccountInput{
		AccessToken: t.accessToken,
		Name:        name,
		Type:        accountType,
	})
	t.lastErr = err
	if err == nil {
		t.accounts[name] = output.Account.ID
	}
	return nil
}

func (t *testContext) adminRecordsTransaction(status, transactionType, amount, accountName, category string) error {
	return t.adminRecordsTransactionDated(status, transactionType, amount, accountName, category, "2025-11-10")
}

func (t *testContext) adminRecordsTransactionDated(status, transactionType, amount, accountName, category, date string) error {
	accountID, ok := t.accounts[accountName]
	if !ok {
		accountID = uuid.New()
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	output, err := t.recordTransaction.Execute(context.Background(), transaction.RecordTransactionInput{
		AccessToken: t.accessToken,
		AccountID:   accountID,
		Date:        day.UTC(),
		Category:    category,
		Amount:      value,
		Type:        entity.TransactionType(transactionType),
		Status:      entity.TransactionStatus(status),
	})
	t.lastErr = err
	if err == nil {
		t.lastTxnID = output.Transaction.ID
	}
	return nil
}

func (t *testContext) adminAmendsAmount(amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	_, err = t.amendTransaction.Execute(context.Background(), transaction.AmendTransactionInput{
		AccessToken:   t.accessToken,
		TransactionID: t.lastTxnID,
		Amount:        &value,
	})
	t.lastErr = err
	return nil
}

func (t *testContext) adminRemovesTransaction() error {
	_, err := t.removeTransaction.Execute(context.Background(), transaction.RemoveTransactionInput{
		AccessToken:   t.accessToken,
		TransactionID: t.lastTxnID,
	})
	t.lastErr = err
	return nil
}

func (t *testContext) adminSetsStatus(status string) error {
	_, err := t.setStatus.Execute(context.Background(), transaction.SetStatusInput{
		AccessToken:   t.accessToken,
		TransactionID: t.lastTxnID,
		Status:        entity.TransactionStatus(status),
	})
	t.lastErr = err
	return nil
}

func (t *testContext) adminTransfers(amount, fromName, toName string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	output, err := t.transferFunds.Execute(context.Background(), transfer.TransferFundsInput{
		AccessToken:   t.accessToken,
		FromAccountID: t.accounts[fromName],
		ToAccountID:   t.accounts[toName],
		Amount:        value,
	})
	t.lastErr = err
	if err == nil {
		t.lastTxnID = output.OutLeg.ID
	}
	return nil
}

func (t *testContext) adminRequestsMonthlyReport(year, month int) error {
	output, err := t.computeReport.Execute(context.Background(), report.ComputeReportInput{
		Period: valueobject.Monthly(year, time.Month(month)),
	})
	t.lastErr = err
	t.lastReport = output
	return nil
}

func (t *testContext) operationSucceeds() error {
	if t.lastErr != nil {
		return fmt.Errorf("expected success, got: %w", t.lastErr)
	}
	return nil
}

func (t *testContext) operationIsRejected() error {
	if t.lastErr == nil {
		return fmt.Errorf("expected the operation to be rejected")
	}
	return nil
}

func (t *testContext) accountHasBalance(name, expected string) error {
	accountID, ok := t.accounts[name]
	if !ok {
		return fmt.Errorf("unknown account %q", name)
	}
	account, err := persistence.NewAccountRepository(t.db.DbConn).FindByID(context.Background(), accountID)
	if err != nil {
		return err
	}
	value, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}
	if !account.Balance.Equal(value) {
		return fmt.Errorf("expected balance %s, got %s", value, account.Balance)
	}
	return nil
}

func (t *testContext) reportOpeningBalanceIs(expected string) error {
	return t.reportFieldEquals(expected, func(r *report.ComputeReportOutput) decimal.Decimal {
		return r.OpeningBalance
	})
}

func (t *testContext) reportNetChangeIs(expected string) error {
	return t.reportFieldEquals(expected, func(r *report.ComputeReportOutput) decimal.Decimal {
		return r.NetChange
	})
}

func (t *testContext) reportProjectedClosingIs(expected string) error {
	return t.reportFieldEquals(expected, func(r *report.ComputeReportOutput) decimal.Decimal {
		return r.ProjectedClosing
	})
}

func (t *testContext) reportCompletedIncomeIs(expected string) error {
	return t.reportFieldEquals(expected, func(r *report.ComputeReportOutput) decimal.Decimal {
		return r.PeriodIncome.Completed
	})
}

func (t *testContext) reportCategoryTotals(category, expected string) error {
	if t.lastReport == nil {
		return fmt.Errorf("no report was computed")
	}
	value, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}
	for _, ct := range t.lastReport.CategoryBreakdown {
		if ct.Category == category {
			if !ct.Total.Equal(value) {
				return fmt.Errorf("expected category %q total %s, got %s", category, value, ct.Total)
			}
			return nil
		}
	}
	return fmt.Errorf("category %q not present in the breakdown", category)
}

func (t *testContext) reportFieldEquals(expected string, field func(*report.ComputeReportOutput) decimal.Decimal) error {
	if t.lastReport == nil {
		return fmt.Errorf("no report was computed")
	}
	value, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}
	if got := field(t.lastReport); !got.Equal(value) {
		return fmt.Errorf("expected %s, got %s", value, got)
	}
	return nil
}

func (t *testContext) ledgerContainsTransactions(count int, accountName string) error {
	accountID, ok := t.accounts[accountName]
	if !ok {
		return fmt.Errorf("unknown account %q", accountName)
	}
	transactions, err := persistence.NewLedgerRepository(t.db.DbConn).List(context.Background(), &accountID)
	if err != nil {
		return err
	}
	if len(transactions) != count {
		return fmt.Errorf("expected %d transactions, got %d", count, len(transactions))
	}
	return nil
}
