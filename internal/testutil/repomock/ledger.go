package repomock

import (
	"context"

	"gorm.io/gorm"

	"fortitude-backend/internal/domain/ledger"
)

var (
	_ ledger.BalanceRepository     = (*BalanceRepo)(nil)
	_ ledger.TransactionRepository = (*TransactionRepo)(nil)
)

type BalanceRepo struct {
	GetFn          func(ctx context.Context) (*ledger.AccountBalance, error)
	GetForUpdateFn func(ctx context.Context) (*ledger.AccountBalance, error)
	CreateFn       func(ctx context.Context, b *ledger.AccountBalance) error
	SaveFn         func(ctx context.Context, b *ledger.AccountBalance) error
}

func (m *BalanceRepo) Get(ctx context.Context) (*ledger.AccountBalance, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *BalanceRepo) GetForUpdate(ctx context.Context) (*ledger.AccountBalance, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *BalanceRepo) Create(ctx context.Context, b *ledger.AccountBalance) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *BalanceRepo) Save(ctx context.Context, b *ledger.AccountBalance) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

type TransactionRepo struct {
	AppendFn func(ctx context.Context, t *ledger.Transaction) error
	ListFn   func(ctx context.Context) ([]ledger.Transaction, error)
}

func (m *TransactionRepo) Append(ctx context.Context, t *ledger.Transaction) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, t)
	}
	return nil
}

func (m *TransactionRepo) List(ctx context.Context) ([]ledger.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}
