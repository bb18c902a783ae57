// Package ledger maintains the shared cash balance and its append-only
// transaction log. Every balance-affecting event goes through here: read the
// current balance under lock, compute the new figures, persist, then append
// one log row whose BalanceAfter snapshots the just-persisted available
// balance. Balance write and log append always share one DB transaction.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	domain "fortitude-backend/internal/domain/ledger"
	"fortitude-backend/internal/domain/uow"
	"fortitude-backend/pkg/clock"
	"fortitude-backend/pkg/id"
	"fortitude-backend/pkg/money"
)

var ErrInvalidAmount = errors.New("ledger amount must be positive")

type Service struct {
	uow   uow.UnitOfWork
	clock clock.Clock
}

func NewService(u uow.UnitOfWork, c clock.Clock) *Service {
	return &Service{uow: u, clock: c}
}

// balanceForUpdate loads the singleton row under lock, creating the zero
// record on first touch.
func balanceForUpdate(ctx context.Context, r uow.Repos) (*domain.AccountBalance, error) {
	b, err := r.Balances.GetForUpdate(ctx)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	b = &domain.AccountBalance{}
	if err := r.Balances.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func appendTx(ctx context.Context, r uow.Repos, t *domain.Transaction) error {
	t.TransactionID = id.NewID32()
	if err := r.Transactions.Append(ctx, t); err != nil {
		// Balance row is already written in this tx; a failed append means
		// the log would no longer explain the balance.
		log.Printf("LEDGER FATAL: transaction append failed after balance write: %v", err)
		return fmt.Errorf("%w: %v", domain.ErrInconsistent, err)
	}
	return nil
}

// RecordDisbursement pays out a loan's principal: available down, disbursed
// and outstanding up. Runs against repos already bound to the caller's
// transaction so the loan write and the ledger write commit together.
func (s *Service) RecordDisbursement(ctx context.Context, r uow.Repos, amount float64, loanID string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	b, err := balanceForUpdate(ctx, r)
	if err != nil {
		return err
	}
	b.AvailableBalance = money.Sub(b.AvailableBalance, amount)
	b.TotalDisbursed = money.Add(b.TotalDisbursed, amount)
	b.TotalOutstanding = money.Add(b.TotalOutstanding, amount)
	b.LastUpdated = s.clock.Now()
	if err := r.Balances.Save(ctx, b); err != nil {
		return err
	}
	return appendTx(ctx, r, &domain.Transaction{
		Type:          domain.TypeDisbursement,
		Amount:        money.Round2(amount),
		Description:   "Loan disbursement",
		RelatedLoanID: loanID,
		BalanceAfter:  b.AvailableBalance,
		CreatedAt:     s.clock.Now(),
	})
}

// RecordCollection receives a payment: available and collected up,
// outstanding down (floored at zero).
func (s *Service) RecordCollection(ctx context.Context, r uow.Repos, amount float64, paymentID string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	b, err := balanceForUpdate(ctx, r)
	if err != nil {
		return err
	}
	b.AvailableBalance = money.Add(b.AvailableBalance, amount)
	b.TotalCollected = money.Add(b.TotalCollected, amount)
	b.TotalOutstanding = money.SubFloor0(b.TotalOutstanding, amount)
	b.LastUpdated = s.clock.Now()
	if err := r.Balances.Save(ctx, b); err != nil {
		return err
	}
	return appendTx(ctx, r, &domain.Transaction{
		Type:             domain.TypeCollection,
		Amount:           money.Round2(amount),
		Description:      "Loan repayment",
		RelatedPaymentID: paymentID,
		BalanceAfter:     b.AvailableBalance,
		CreatedAt:        s.clock.Now(),
	})
}

// RecordAdjustment compensates for deleted loans or borrowers. Deposit
// direction returns money: available up, disbursed and outstanding down,
// both clamped at zero. Disbursement direction is the inverse, used when a
// correction increases the obligation.
func (s *Service) RecordAdjustment(ctx context.Context, r uow.Repos, amount float64, direction domain.TransactionType, description, loanID string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if direction != domain.TypeDeposit && direction != domain.TypeDisbursement {
		return fmt.Errorf("%w: adjustment direction must be deposit or disbursement", ErrInvalidAmount)
	}
	b, err := balanceForUpdate(ctx, r)
	if err != nil {
		return err
	}
	if direction == domain.TypeDeposit {
		b.AvailableBalance = money.Add(b.AvailableBalance, amount)
		b.TotalDisbursed = money.SubFloor0(b.TotalDisbursed, amount)
		b.TotalOutstanding = money.SubFloor0(b.TotalOutstanding, amount)
	} else {
		b.AvailableBalance = money.Sub(b.AvailableBalance, amount)
		b.TotalDisbursed = money.Add(b.TotalDisbursed, amount)
		b.TotalOutstanding = money.Add(b.TotalOutstanding, amount)
	}
	b.LastUpdated = s.clock.Now()
	if err := r.Balances.Save(ctx, b); err != nil {
		return err
	}
	return appendTx(ctx, r, &domain.Transaction{
		Type:          direction,
		Amount:        money.Round2(amount),
		Description:   description,
		RelatedLoanID: loanID,
		BalanceAfter:  b.AvailableBalance,
		CreatedAt:     s.clock.Now(),
	})
}

// ReduceCollected corrects TotalCollected downward when recorded payments are
// cascade-deleted with their borrower. Distinct from RecordAdjustment: it
// touches only the collected figure and logs nothing (the refund adjustment
// alongside it carries the log entry).
func (s *Service) ReduceCollected(ctx context.Context, r uow.Repos, amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if money.IsZero(amount) {
		return nil
	}
	b, err := balanceForUpdate(ctx, r)
	if err != nil {
		return err
	}
	b.TotalCollected = money.SubFloor0(b.TotalCollected, amount)
	b.LastUpdated = s.clock.Now()
	return r.Balances.Save(ctx, b)
}

// SetAvailableBalance is the administrative override: sets the figure
// outright with no validation against loan state, and logs a deposit whose
// amount is the delta from the old figure.
func (s *Service) SetAvailableBalance(ctx context.Context, newAmount float64, description string) (*domain.AccountBalance, error) {
	var out *domain.AccountBalance
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := balanceForUpdate(ctx, r)
		if err != nil {
			return err
		}
		delta := money.Sub(newAmount, b.AvailableBalance)
		b.AvailableBalance = money.Round2(newAmount)
		b.LastUpdated = s.clock.Now()
		if err := r.Balances.Save(ctx, b); err != nil {
			return err
		}
		if err := appendTx(ctx, r, &domain.Transaction{
			Type:         domain.TypeDeposit,
			Amount:       delta,
			Description:  description,
			BalanceAfter: b.AvailableBalance,
			CreatedAt:    s.clock.Now(),
		}); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Balance reads the singleton, creating the zero record on first touch.
func (s *Service) Balance(ctx context.Context) (*domain.AccountBalance, error) {
	var out *domain.AccountBalance
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Balances.Get(ctx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			b = &domain.AccountBalance{}
			if err := r.Balances.Create(ctx, b); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions returns the log newest-first.
func (s *Service) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	var out []domain.Transaction
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Transactions.List(ctx)
		if err != nil {
			return err
		}
		out = list
		return nil
	})
	return out, err
}

// ReconcileReport compares the ledger's incrementally-tracked outstanding
// figure against a fresh recompute from the loan table.
type ReconcileReport struct {
	LedgerOutstanding float64 `json:"ledger_outstanding"`
	LoansOutstanding  float64 `json:"loans_outstanding"`
	Drift             float64 `json:"drift"`
	Consistent        bool    `json:"consistent"`
}

// Reconcile recomputes outstanding from source so an operator can detect
// drift after a crash mid-cascade. Read-only; repairing is an operator call.
func (s *Service) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	var rep *ReconcileReport
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Balances.Get(ctx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			b = &domain.AccountBalance{}
		} else if err != nil {
			return err
		}
		fromLoans, err := r.Loans.SumOutstanding(ctx)
		if err != nil {
			return err
		}
		drift := money.Sub(b.TotalOutstanding, fromLoans)
		rep = &ReconcileReport{
			LedgerOutstanding: b.TotalOutstanding,
			LoansOutstanding:  money.Round2(fromLoans),
			Drift:             drift,
			Consistent:        money.IsZero(drift),
		}
		if !rep.Consistent {
			log.Printf("LEDGER FATAL: outstanding drift detected: ledger=%.2f loans=%.2f", rep.LedgerOutstanding, rep.LoansOutstanding)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rep, nil
}
