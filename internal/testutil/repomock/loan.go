package repomock

import (
	"context"

	"gorm.io/gorm"

	"fortitude-backend/internal/domain/loan"
)

var _ loan.Repository = (*LoanRepo)(nil)

type LoanRepo struct {
	CreateFn               func(ctx context.Context, l *loan.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*loan.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*loan.Loan, error)
	ListByBorrowerIDFn     func(ctx context.Context, borrowerID string) ([]loan.Loan, error)
	ListFn                 func(ctx context.Context) ([]loan.Loan, error)
	SaveFn                 func(ctx context.Context, l *loan.Loan) error
	DeleteFn               func(ctx context.Context, l *loan.Loan) error
	SumOutstandingFn       func(ctx context.Context) (float64, error)
}

func (m *LoanRepo) Create(ctx context.Context, l *loan.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *LoanRepo) GetByLoanID(ctx context.Context, loanID string) (*loan.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *LoanRepo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loan.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *LoanRepo) ListByBorrowerID(ctx context.Context, borrowerID string) ([]loan.Loan, error) {
	if m.ListByBorrowerIDFn != nil {
		return m.ListByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, nil
}

func (m *LoanRepo) List(ctx context.Context) ([]loan.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *LoanRepo) Save(ctx context.Context, l *loan.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *LoanRepo) Delete(ctx context.Context, l *loan.Loan) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, l)
	}
	return nil
}

func (m *LoanRepo) SumOutstanding(ctx context.Context) (float64, error) {
	if m.SumOutstandingFn != nil {
		return m.SumOutstandingFn(ctx)
	}
	return 0, nil
}
