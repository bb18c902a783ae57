package repomock

import (
	"context"

	"gorm.io/gorm"

	"fortitude-backend/internal/domain/payment"
)

var _ payment.Repository = (*PaymentRepo)(nil)

type PaymentRepo struct {
	CreateFn             func(ctx context.Context, p *payment.Payment) error
	GetByPaymentIDFn     func(ctx context.Context, paymentID string) (*payment.Payment, error)
	ListByLoanIDFn       func(ctx context.Context, loanID string) ([]payment.Payment, error)
	ListFn               func(ctx context.Context) ([]payment.Payment, error)
	CountByLoanIDFn      func(ctx context.Context, loanID string) (int64, error)
	SumByLoanIDFn        func(ctx context.Context, loanID string) (float64, error)
	DeleteByLoanIDFn     func(ctx context.Context, loanID string) error
	DeleteByBorrowerIDFn func(ctx context.Context, borrowerID string) error
}

func (m *PaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *PaymentRepo) GetByPaymentID(ctx context.Context, paymentID string) (*payment.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *PaymentRepo) ListByLoanID(ctx context.Context, loanID string) ([]payment.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, nil
}

func (m *PaymentRepo) List(ctx context.Context) ([]payment.Payment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *PaymentRepo) CountByLoanID(ctx context.Context, loanID string) (int64, error) {
	if m.CountByLoanIDFn != nil {
		return m.CountByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *PaymentRepo) SumByLoanID(ctx context.Context, loanID string) (float64, error) {
	if m.SumByLoanIDFn != nil {
		return m.SumByLoanIDFn(ctx, loanID)
	}
	return 0, nil
}

func (m *PaymentRepo) DeleteByLoanID(ctx context.Context, loanID string) error {
	if m.DeleteByLoanIDFn != nil {
		return m.DeleteByLoanIDFn(ctx, loanID)
	}
	return nil
}

func (m *PaymentRepo) DeleteByBorrowerID(ctx context.Context, borrowerID string) error {
	if m.DeleteByBorrowerIDFn != nil {
		return m.DeleteByBorrowerIDFn(ctx, borrowerID)
	}
	return nil
}
