package ledger

import "context"

type BalanceRepository interface {
	// Get returns the singleton balance row.
	Get(ctx context.Context) (*AccountBalance, error)
	// GetForUpdate locks the row so concurrent balance events serialize.
	GetForUpdate(ctx context.Context) (*AccountBalance, error)
	Create(ctx context.Context, b *AccountBalance) error
	Save(ctx context.Context, b *AccountBalance) error
}

type TransactionRepository interface {
	// Append adds one log row. There is deliberately no update or delete.
	Append(ctx context.Context, t *Transaction) error
	// List returns the log newest-first.
	List(ctx context.Context) ([]Transaction, error)
}
