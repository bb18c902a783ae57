package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Payment, error)
	List(ctx context.Context) ([]Payment, error)
	CountByLoanID(ctx context.Context, loanID string) (int64, error)
	SumByLoanID(ctx context.Context, loanID string) (float64, error)
	DeleteByLoanID(ctx context.Context, loanID string) error
	DeleteByBorrowerID(ctx context.Context, borrowerID string) error
}
