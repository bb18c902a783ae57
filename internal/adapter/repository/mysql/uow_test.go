package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domainLoan "fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/uow"
	"fortitude-backend/pkg/id"
)

func TestWithinTx_CommitsOnNil(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Loans.Create(ctx, makeLoan(loanID, id.NewID32()))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("committed loan must be readable: %v", err)
	}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	loanID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, makeLoan(loanID, id.NewID32())); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}

	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("rolled-back loan must not exist, got %v", err)
	}
}

func TestWithinLoanTx_PassesLockedLoan(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	if err := NewLoanRepository(db).Create(ctx, makeLoan(loanID, id.NewID32())); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.LoanID != loanID {
			t.Fatalf("wrong loan passed: %+v", l)
		}
		l.PaidAmount = 100
		l.OutstandingAmount = 1000
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}

	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if got.PaidAmount != 100 {
		t.Fatalf("write inside loan tx must persist: %+v", got)
	}
}

func TestWithinLoanTx_MissingLoan(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	called := false
	err := u.WithinLoanTx(context.Background(), id.NewID32(), func(r uow.Repos, l *domainLoan.Loan) error {
		called = true
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}
	if called {
		t.Fatalf("callback must not run for a missing loan")
	}
}
