// Package repomock provides function-backed mocks for every repository
// interface. Fill in only the fields a test needs; unfilled methods return
// gorm.ErrRecordNotFound for reads and nil for writes.
package repomock

import (
	"context"

	"gorm.io/gorm"

	"fortitude-backend/internal/domain/borrower"
)

var _ borrower.Repository = (*BorrowerRepo)(nil)

type BorrowerRepo struct {
	CreateFn          func(ctx context.Context, b *borrower.Borrower) error
	GetByBorrowerIDFn func(ctx context.Context, borrowerID string) (*borrower.Borrower, error)
	ListFn            func(ctx context.Context) ([]borrower.Borrower, error)
	SaveFn            func(ctx context.Context, b *borrower.Borrower) error
	DeleteFn          func(ctx context.Context, b *borrower.Borrower) error
}

func (m *BorrowerRepo) Create(ctx context.Context, b *borrower.Borrower) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *BorrowerRepo) GetByBorrowerID(ctx context.Context, borrowerID string) (*borrower.Borrower, error) {
	if m.GetByBorrowerIDFn != nil {
		return m.GetByBorrowerIDFn(ctx, borrowerID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *BorrowerRepo) List(ctx context.Context) ([]borrower.Borrower, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *BorrowerRepo) Save(ctx context.Context, b *borrower.Borrower) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *BorrowerRepo) Delete(ctx context.Context, b *borrower.Borrower) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, b)
	}
	return nil
}
