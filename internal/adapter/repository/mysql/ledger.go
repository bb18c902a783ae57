package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	ledgerDomain "fortitude-backend/internal/domain/ledger"
)

// BalanceRepository persists the singleton balance row: always the oldest
// record, matching the one-shared-balance model.
type BalanceRepository struct{ db *gorm.DB }

func NewBalanceRepository(db *gorm.DB) *BalanceRepository { return &BalanceRepository{db: db} }

func (r *BalanceRepository) Get(ctx context.Context) (*ledgerDomain.AccountBalance, error) {
	var out ledgerDomain.AccountBalance
	res := r.db.WithContext(ctx).Order("id ASC").First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *BalanceRepository) GetForUpdate(ctx context.Context) (*ledgerDomain.AccountBalance, error) {
	var out ledgerDomain.AccountBalance
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("id ASC").
		First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *BalanceRepository) Create(ctx context.Context, b *ledgerDomain.AccountBalance) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BalanceRepository) Save(ctx context.Context, b *ledgerDomain.AccountBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// TransactionRepository is append-only; there is deliberately no update or
// delete method.
type TransactionRepository struct{ db *gorm.DB }

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Append(ctx context.Context, t *ledgerDomain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TransactionRepository) List(ctx context.Context) ([]ledgerDomain.Transaction, error) {
	var out []ledgerDomain.Transaction
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
