// Package dependency provides dependency injection for the application.
package dependency

import (
	"gorm.io/gorm"

	"github.com/coursehub/backoffice/config"
	"github.com/coursehub/backoffice/internal/application/usecase/account"
	"github.com/coursehub/backoffice/internal/application/usecase/auth"
	"github.com/coursehub/backoffice/internal/application/usecase/report"
	"github.com/coursehub/backoffice/internal/application/usecase/transaction"
	"github.com/coursehub/backoffice/internal/application/usecase/transfer"
	"github.com/coursehub/backoffice/internal/integration/adapters"
	"github.com/coursehub/backoffice/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB

	AdminLogin *auth.AdminLoginUseCase

	CreateAccount *account.CreateAccountUseCase
	ListAccounts  *account.ListAccountsUseCase

	RecordTransaction *transaction.RecordTransactionUseCase
	AmendTransaction  *transaction.AmendTransactionUseCase
	RemoveTransaction *transaction.RemoveTransactionUseCase
	SetStatus         *transaction.SetStatusUseCase
	ListTransactions  *transaction.ListTransactionsUseCase

	TransferFunds *transfer.TransferFundsUseCase

	ComputeReport *report.ComputeReportUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	accountRepo := persistence.NewAccountRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	reportRepo := persistence.NewReportRepository(db)
	memberDirectory := persistence.NewMemberDirectory(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL)

	return &Injector{
		Config: cfg,
		DB:     db,

		AdminLogin: auth.NewAdminLoginUseCase(
			cfg.Auth.AdminEmail,
			cfg.Auth.AdminPasswordHash,
			passwordService,
			tokenService,
		),

		CreateAccount: account.NewCreateAccountUseCase(accountRepo, tokenService),
		ListAccounts:  account.NewListAccountsUseCase(accountRepo),

		RecordTransaction: transaction.NewRecordTransactionUseCase(ledgerRepo, accountRepo, memberDirectory, tokenService),
		AmendTransaction:  transaction.NewAmendTransactionUseCase(ledgerRepo, accountRepo, tokenService),
		RemoveTransaction: transaction.NewRemoveTransactionUseCase(ledgerRepo, tokenService),
		SetStatus:         transaction.NewSetStatusUseCase(ledgerRepo, tokenService),
		ListTransactions:  transaction.NewListTransactionsUseCase(ledgerRepo),

		TransferFunds: transfer.NewTransferFundsUseCase(ledgerRepo, accountRepo, tokenService),

		ComputeReport: report.NewComputeReportUseCase(reportRepo),
	}
}
