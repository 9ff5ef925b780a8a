// Package main is the entry point for the back-office admin CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/coursehub/backoffice/config"
	accountusecase "github.com/coursehub/backoffice/internal/application/usecase/account"
	"github.com/coursehub/backoffice/internal/application/usecase/auth"
	"github.com/coursehub/backoffice/internal/application/usecase/report"
	"github.com/coursehub/backoffice/internal/application/usecase/transaction"
	"github.com/coursehub/backoffice/internal/application/usecase/transfer"
	"github.com/coursehub/backoffice/internal/domain/entity"
	"github.com/coursehub/backoffice/internal/domain/valueobject"
	"github.com/coursehub/backoffice/internal/infra/db"
	"github.com/coursehub/backoffice/internal/infra/dependency"
	"github.com/coursehub/backoffice/internal/integration/persistence/model"
)

const dateLayout = "2006-01-02"

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	injector := dependency.NewInjector(cfg, database.DB())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch os.Args[1] {
	case "migrate":
		runMigrate(database)
	case "login":
		runLogin(ctx, injector.AdminLogin)
	case "accounts":
		runAccounts(ctx, injector)
	case "txn":
		runTransactions(ctx, injector)
	case "transfer":
		runTransfer(ctx, injector.TransferFunds)
	case "report":
		runReport(ctx, injector.ComputeReport)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Course Hub Back Office CLI")
	fmt.Println("\nUsage:")
	fmt.Println("  backoffice <command> [options]")
	fmt.Println("\nCommands:")
	fmt.Println("  migrate    Run database migrations")
	fmt.Println("  login      Obtain an admin access token")
	fmt.Println("  accounts   Manage accounts (create, list)")
	fmt.Println("  txn        Manage ledger transactions (record, amend, remove, status, list)")
	fmt.Println("  transfer   Move funds between two accounts")
	fmt.Println("  report     Compute a period report")
	fmt.Println("  help       Show this help message")
	fmt.Println("\nMutating commands read the admin token from BACKOFFICE_TOKEN or -token.")
}

// accessToken resolves the admin token from a flag value or the environment.
func accessToken(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv("BACKOFFICE_TOKEN")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func runMigrate(database *db.Database) {
	if err := database.AutoMigrate(
		&model.AccountModel{},
		&model.TransactionModel{},
		&model.MemberModel{},
	); err != nil {
		fatal("Failed to run database migrations", err)
	}
	fmt.Println("Database migrations completed successfully.")
}

func runLogin(ctx context.Context, uc *auth.AdminLoginUseCase) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "Admin email")
	password := fs.String("password", "", "Admin password")
	fs.Parse(os.Args[2:])

	if *email == "" || *password == "" {
		fatal("Usage: backoffice login -email EMAIL -password PASSWORD", nil)
	}

	output, err := uc.Execute(ctx, auth.AdminLoginInput{
		Email:    *email,
		Password: *password,
	})
	if err != nil {
		fatal("Login failed", err)
	}

	fmt.Println(output.AccessToken)
}

func runAccounts(ctx context.Context, injector *dependency.Injector) {
	if len(os.Args) < 3 {
		fatal("Usage: backoffice accounts <create|list> [options]", nil)
	}

	switch os.Args[2] {
	case "create":
		fs := flag.NewFlagSet("accounts create", flag.ExitOnError)
		token := fs.String("token", "", "Admin access token")
		name := fs.String("name", "", "Account name")
		accountType := fs.String("type", string(entity.AccountTypeBank), "Account type (CASH, BANK, PERSONAL)")
		fs.Parse(os.Args[3:])

		output, err := injector.CreateAccount.Execute(ctx, accountusecase.CreateAccountInput{
			AccessToken: accessToken(*token),
			Name:        *name,
			Type:        *accountType,
		})
		if err != nil {
			fatal("Failed to create account", err)
		}
		fmt.Printf("Created account %s (%s)\n", output.Account.Name, output.Account.ID)

	case "list":
		output, err := injector.ListAccounts.Execute(ctx)
		if err != nil {
			fatal("Failed to list accounts", err)
		}
		for _, acc := range output.Accounts {
			fmt.Printf("%s  %-20s %-8s %12s\n", acc.ID, acc.Name, acc.Type, acc.Balance.StringFixed(2))
		}

	default:
		fatal("Usage: backoffice accounts <create|list> [options]", nil)
	}
}

func runTransactions(ctx context.Context, injector *dependency.Injector) {
	if len(os.Args) < 3 {
		fatal("Usage: backoffice txn <record|amend|remove|status|list> [options]", nil)
	}

	switch os.Args[2] {
	case "record":
		runRecordTransaction(ctx, injector.RecordTransaction)
	case "amend":
		runAmendTransaction(ctx, injector.AmendTransaction)
	case "remove":
		runRemoveTransaction(ctx, injector.RemoveTransaction)
	case "status":
		runSetStatus(ctx, injector.SetStatus)
	case "list":
		runListTransactions(ctx, injector.ListTransactions)
	default:
		fatal("Usage: backoffice txn <record|amend|remove|status|list> [options]", nil)
	}
}

func runRecordTransaction(ctx context.Context, uc *transaction.RecordTransactionUseCase) {
	fs := flag.NewFlagSet("txn record", flag.ExitOnError)
	token := fs.String("token", "", "Admin access token")
	accountID := fs.String("account", "", "Account ID")
	date := fs.String("date", time.Now().UTC().Format(dateLayout), "Transaction date (YYYY-MM-DD)")
	category := fs.String("category", "", "Category")
	description := fs.String("description", "", "Description")
	amount := fs.String("amount", "", "Amount (positive)")
	txnType := fs.String("type", string(entity.TransactionTypeExpense), "Type (income, expense, distribution)")
	status := fs.String("status", string(entity.TransactionStatusCompleted), "Status (completed, pending)")
	memberID := fs.String("member", "", "Member ID to link (optional)")
	fs.Parse(os.Args[3:])

	id := parseUUID(*accountID, "account")
	amt := parseAmount(*amount)
	day := parseDate(*date)

	input := transaction.RecordTransactionInput{
		AccessToken: accessToken(*token),
		AccountID:   id,
		Date:        day,
		Category:    *category,
		Description: *description,
		Amount:      amt,
		Type:        entity.TransactionType(*txnType),
		Status:      entity.TransactionStatus(*status),
	}
	if *memberID != "" {
		mid := parseUUID(*memberID, "member")
		input.MemberID = &mid
	}

	output, err := uc.Execute(ctx, input)
	if err != nil {
		fatal("Failed to record transaction", err)
	}
	printTransaction(output.Transaction)
}

func runAmendTransaction(ctx context.Context, uc *transaction.AmendTransactionUseCase) {
	fs := flag.NewFlagSet("txn amend", flag.ExitOnError)
	token := fs.String("token", "", "Admin access token")
	transactionID := fs.String("id", "", "Transaction ID")
	date := fs.String("date", "", "New date (YYYY-MM-DD)")
	category := fs.String("category", "", "New category")
	description := fs.String("description", "", "New description")
	amount := fs.String("amount", "", "New amount (positive)")
	txnType := fs.String("type", "", "New type (income, expense, distribution)")
	accountID := fs.String("account", "", "New account ID")
	fs.Parse(os.Args[3:])

	input := transaction.AmendTransactionInput{
		AccessToken:   accessToken(*token),
		TransactionID: parseUUID(*transactionID, "transaction"),
	}
	if *date != "" {
		day := parseDate(*date)
		input.Date = &day
	}
	if *category != "" {
		input.Category = category
	}
	if *description != "" {
		input.Description = description
	}
	if *amount != "" {
		amt := parseAmount(*amount)
		input.Amount = &amt
	}
	if *txnType != "" {
		t := entity.TransactionType(*txnType)
		input.Type = &t
	}
	if *accountID != "" {
		id := parseUUID(*accountID, "account")
		input.AccountID = &id
	}

	output, err := uc.Execute(ctx, input)
	if err != nil {
		fatal("Failed to amend transaction", err)
	}
	printTransaction(output.Transaction)
}

func runRemoveTransaction(ctx context.Context, uc *transaction.RemoveTransactionUseCase) {
	fs := flag.NewFlagSet("txn remove", flag.ExitOnError)
	token := fs.String("token", "", "Admin access token")
	transactionID := fs.String("id", "", "Transaction ID")
	fs.Parse(os.Args[3:])

	_, err := uc.Execute(ctx, transaction.RemoveTransactionInput{
		AccessToken:   accessToken(*token),
		TransactionID: parseUUID(*transactionID, "transaction"),
	})
	if err != nil {
		fatal("Failed to remove transaction", err)
	}
	fmt.Println("Transaction removed.")
}

func runSetStatus(ctx context.Context, uc *transaction.SetStatusUseCase) {
	fs := flag.NewFlagSet("txn status", flag.ExitOnError)
	token := fs.String("token", "", "Admin access token")
	transactionID := fs.String("id", "", "Transaction ID")
	status := fs.String("status", "", "Target status (completed, pending)")
	fs.Parse(os.Args[3:])

	output, err := uc.Execute(ctx, transaction.SetStatusInput{
		AccessToken:   accessToken(*token),
		TransactionID: parseUUID(*transactionID, "transaction"),
		Status:        entity.TransactionStatus(*status),
	})
	if err != nil {
		fatal("Failed to set transaction status", err)
	}
	printTransaction(output.Transaction)
}

func runListTransactions(ctx context.Context, uc *transaction.ListTransactionsUseCase) {
	fs := flag.NewFlagSet("txn list", flag.ExitOnError)
	accountID := fs.String("account", "", "Filter by account ID (optional)")
	fs.Parse(os.Args[3:])

	input := transaction.ListTransactionsInput{}
	if *accountID != "" {
		id := parseUUID(*accountID, "account")
		input.AccountID = &id
	}

	output, err := uc.Execute(ctx, input)
	if err != nil {
		fatal("Failed to list transactions", err)
	}
	for _, txn := range output.Transactions {
		printTransaction(txn)
	}
}

func runTransfer(ctx context.Context, uc *transfer.TransferFundsUseCase) {
	fs := flag.NewFlagSet("transfer", flag.ExitOnError)
	token := fs.String("token", "", "Admin access token")
	from := fs.String("from", "", "Source account ID")
	to := fs.String("to", "", "Destination account ID")
	amount := fs.String("amount", "", "Amount to move (positive)")
	description := fs.String("description", "", "Description")
	fs.Parse(os.Args[2:])

	output, err := uc.Execute(ctx, transfer.TransferFundsInput{
		AccessToken:   accessToken(*token),
		FromAccountID: parseUUID(*from, "from account"),
		ToAccountID:   parseUUID(*to, "to account"),
		Amount:        parseAmount(*amount),
		Description:   *description,
	})
	if err != nil {
		fatal("Failed to transfer funds", err)
	}
	fmt.Printf("Transfer recorded: out leg %s, in leg %s\n", output.OutLeg.ID, output.InLeg.ID)
}

func runReport(ctx context.Context, uc *report.ComputeReportUseCase) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	kind := fs.String("period", "monthly", "Period kind (monthly, quarterly, custom)")
	year := fs.Int("year", time.Now().UTC().Year(), "Year")
	month := fs.Int("month", int(time.Now().UTC().Month()), "Month (1-12, monthly only)")
	quarter := fs.Int("quarter", 1, "Quarter (1-4, quarterly only)")
	from := fs.String("from", "", "Start date (YYYY-MM-DD, custom only)")
	to := fs.String("to", "", "End date (YYYY-MM-DD, custom only)")
	shift := fs.Int("shift", 0, "Periods to move forward (+N) or back (-N)")
	fs.Parse(os.Args[2:])

	var period valueobject.Period
	switch valueobject.PeriodKind(*kind) {
	case valueobject.PeriodKindMonthly:
		period = valueobject.Monthly(*year, time.Month(*month))
	case valueobject.PeriodKindQuarterly:
		period = valueobject.Quarterly(*year, *quarter)
	case valueobject.PeriodKindCustom:
		period = valueobject.Custom(parseDate(*from), parseDate(*to))
	default:
		fatal("Unknown period kind "+strconv.Quote(*kind), nil)
	}
	for i := 0; i < *shift; i++ {
		period = period.Next()
	}
	for i := 0; i > *shift; i-- {
		period = period.Previous()
	}

	output, err := uc.Execute(ctx, report.ComputeReportInput{Period: period})
	if err != nil {
		fatal("Failed to compute report", err)
	}

	fmt.Printf("Report for %s (%s - %s)\n",
		output.PeriodLabel,
		output.DateRange.Start.Format(dateLayout),
		output.DateRange.End.Format(dateLayout),
	)
	fmt.Printf("  Opening balance:    %s\n", output.OpeningBalance.StringFixed(2))
	fmt.Printf("  Income:             %s completed, %s pending\n",
		output.PeriodIncome.Completed.StringFixed(2), output.PeriodIncome.Pending.StringFixed(2))
	fmt.Printf("  Expense:            %s completed, %s pending\n",
		output.PeriodExpense.Completed.StringFixed(2), output.PeriodExpense.Pending.StringFixed(2))
	fmt.Printf("  Net change:         %s\n", output.NetChange.StringFixed(2))
	fmt.Printf("  Current balance:    %s\n", output.CurrentBalance.StringFixed(2))
	fmt.Printf("  Projected closing:  %s\n", output.ProjectedClosing.StringFixed(2))
	if len(output.CategoryBreakdown) > 0 {
		fmt.Println("  By category:")
		for _, ct := range output.CategoryBreakdown {
			fmt.Printf("    %-20s %12s  (%d transactions)\n", ct.Category, ct.Total.StringFixed(2), ct.TransactionCount)
		}
	}
}

func printTransaction(txn *transaction.TransactionOutput) {
	fmt.Printf("%s  %s  %-12s %-9s %-20s %12s\n",
		txn.ID,
		txn.Date.Format(dateLayout),
		txn.Type,
		txn.Status,
		txn.Category,
		txn.Amount.StringFixed(2),
	)
}

func parseUUID(value, name string) uuid.UUID {
	id, err := uuid.Parse(value)
	if err != nil {
		fatal("Invalid "+name+" ID", err)
	}
	return id
}

func parseAmount(value string) decimal.Decimal {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		fatal("Invalid amount", err)
	}
	return amount
}

func parseDate(value string) time.Time {
	day, err := time.Parse(dateLayout, value)
	if err != nil {
		fatal("Invalid date, expected YYYY-MM-DD", err)
	}
	return day.UTC()
}
