package uow

import (
	"context"

	"fortitude-backend/internal/domain/borrower"
	"fortitude-backend/internal/domain/ledger"
	"fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/payment"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Borrowers    borrower.Repository
	Loans        loan.Repository
	Payments     payment.Repository
	Balances     ledger.BalanceRepository
	Transactions ledger.TransactionRepository
}

type UnitOfWork interface {
	// WithinTx runs fn with repos bound to a single transaction.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. Used by
	// every mutation that races on a loan's outstanding amount.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
