package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "fortitude-backend/internal/domain/loan"
	"fortitude-backend/pkg/id"
)

func makeLoan(loanID, borrowerID string) *domain.Loan {
	return &domain.Loan{
		LoanID:            loanID,
		BorrowerID:        borrowerID,
		BorrowerName:      "Siti Rahma",
		Principal:         1000.00,
		InterestRate:      10,
		InterestType:      domain.InterestSimple,
		DurationValue:     10,
		DurationUnit:      domain.UnitMonths,
		StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:           time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		Status:            domain.StatusActive,
		TotalInterest:     100.00,
		TotalAmount:       1100.00,
		InstallmentAmount: 110.00,
		OutstandingAmount: 1100.00,
	}
}

func TestLoanCreateAndGetByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	borrowerID := id.NewID32()

	l := makeLoan(loanID, borrowerID)
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.LoanID != loanID || got.BorrowerID != borrowerID {
		t.Errorf("unexpected loan: %+v", got)
	}
	if got.InstallmentAmount != 110.00 {
		t.Errorf("emi column round-trip: %.2f", got.InstallmentAmount)
	}
}

func TestLoanGetByLoanID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)

	_, err := repo.GetByLoanID(context.Background(), id.NewID32())
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
}

func TestLoanGetByLoanIDForUpdate(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	if err := repo.Create(ctx, makeLoan(loanID, id.NewID32())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByLoanIDForUpdate(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanIDForUpdate: %v", err)
	}
	if got.LoanID != loanID {
		t.Errorf("unexpected loan: %+v", got)
	}
}

func TestLoanSaveUpdates(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := makeLoan(loanID, id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	l.PaidAmount = 330
	l.OutstandingAmount = 770
	if err := repo.Save(ctx, l); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.PaidAmount != 330 || got.OutstandingAmount != 770 {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestLoanListByBorrowerID(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	owner := id.NewID32()
	other := id.NewID32()
	for _, bid := range []string{owner, owner, other} {
		if err := repo.Create(ctx, makeLoan(id.NewID32(), bid)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByBorrowerID(ctx, owner)
	if err != nil {
		t.Fatalf("ListByBorrowerID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 loans, got %d", len(got))
	}
	for _, l := range got {
		if l.BorrowerID != owner {
			t.Errorf("foreign loan in result: %+v", l)
		}
	}
}

func TestLoanDelete_SoftDeletes(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	l := makeLoan(loanID, id.NewID32())
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, l); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := repo.GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted loan must not be readable, got %v", err)
	}

	// row still physically present
	var n int64
	if err := db.Unscoped().Model(&loanSQLite{}).Where("loan_id = ?", loanID).Count(&n).Error; err != nil {
		t.Fatalf("unscoped count: %v", err)
	}
	if n != 1 {
		t.Fatalf("soft delete must keep the row, found %d", n)
	}
}

func TestLoanSumOutstanding(t *testing.T) {
	db := openTestDB(t)
	repo := NewLoanRepository(db)
	ctx := context.Background()

	total, err := repo.SumOutstanding(ctx)
	if err != nil {
		t.Fatalf("SumOutstanding empty: %v", err)
	}
	if total != 0 {
		t.Fatalf("empty table must sum to 0, got %.2f", total)
	}

	a := makeLoan(id.NewID32(), id.NewID32())
	a.OutstandingAmount = 400.50
	b := makeLoan(id.NewID32(), id.NewID32())
	b.OutstandingAmount = 99.50
	for _, l := range []*domain.Loan{a, b} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	total, err = repo.SumOutstanding(ctx)
	if err != nil {
		t.Fatalf("SumOutstanding: %v", err)
	}
	if total != 500 {
		t.Fatalf("want 500, got %.2f", total)
	}

	// deleted loans drop out of the sum
	if err := repo.Delete(ctx, b); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	total, err = repo.SumOutstanding(ctx)
	if err != nil {
		t.Fatalf("SumOutstanding after delete: %v", err)
	}
	if total != 400.50 {
		t.Fatalf("want 400.50, got %.2f", total)
	}
}
