// Package accounting orchestrates the loan lifecycle and keeps loan records,
// borrower aggregates and the shared cash ledger mutually consistent. Every
// mutation is one explicit cascade (compute derived fields, persist the
// entity, record the ledger event, recompute the borrower aggregate) run
// inside a single unit-of-work transaction in exactly that order.
package accounting

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainBorrower "fortitude-backend/internal/domain/borrower"
	domainLedger "fortitude-backend/internal/domain/ledger"
	domainLoan "fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/uow"
	ledgerUC "fortitude-backend/internal/usecase/ledger"
	"fortitude-backend/pkg/clock"
	"fortitude-backend/pkg/id"
	"fortitude-backend/pkg/money"
)

// ErrInvalidInput covers rejected caller input: non-positive amounts,
// missing references, bad enum values. Never retried automatically.
var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	uow    uow.UnitOfWork
	ledger *ledgerUC.Service
	agg    BorrowerAggregator
	clock  clock.Clock
}

func NewService(u uow.UnitOfWork, l *ledgerUC.Service, c clock.Clock) *Service {
	return &Service{uow: u, ledger: l, clock: c}
}

// ---- borrowers ----

func (s *Service) CreateBorrower(ctx context.Context, in CreateBorrowerInput) (*BorrowerDTO, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	status := domainBorrower.StatusActive
	if in.Status != "" {
		status = domainBorrower.Status(in.Status)
		if status != domainBorrower.StatusActive && status != domainBorrower.StatusInactive {
			return nil, fmt.Errorf("%w: status must be active or inactive", ErrInvalidInput)
		}
	}
	joined := in.JoiningDate
	if joined.IsZero() {
		joined = s.clock.Now()
	}

	b := &domainBorrower.Borrower{
		BorrowerID:  id.NewID32(),
		Name:        in.Name,
		Phone:       in.Phone,
		Address:     in.Address,
		Email:       in.Email,
		JoiningDate: joined,
		Status:      status,
	}
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Borrowers.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}
	return borrowerDTO(b), nil
}

func (s *Service) UpdateBorrower(ctx context.Context, borrowerID string, in UpdateBorrowerInput) (*BorrowerDTO, error) {
	var out *BorrowerDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Borrowers.GetByBorrowerID(ctx, borrowerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBorrower.ErrNotFound
		} else if err != nil {
			return err
		}
		if in.Name != nil {
			if *in.Name == "" {
				return fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
			}
			b.Name = *in.Name
		}
		if in.Phone != nil {
			b.Phone = *in.Phone
		}
		if in.Address != nil {
			b.Address = *in.Address
		}
		if in.Email != nil {
			b.Email = *in.Email
		}
		if in.Status != nil {
			st := domainBorrower.Status(*in.Status)
			if st != domainBorrower.StatusActive && st != domainBorrower.StatusInactive {
				return fmt.Errorf("%w: status must be active or inactive", ErrInvalidInput)
			}
			b.Status = st
		}
		if err := r.Borrowers.Save(ctx, b); err != nil {
			return err
		}
		out = borrowerDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteBorrower cascades: payments first, then loans, then the borrower.
// Refused while any owned loan is still active. The ledger is compensated
// with two distinct effects: one aggregate refund adjustment
// (sum of principal minus paid over the deleted loans) and a separate downward
// correction of TotalCollected by the deleted payments' sum.
func (s *Service) DeleteBorrower(ctx context.Context, borrowerID string) error {
	return s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Borrowers.GetByBorrowerID(ctx, borrowerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBorrower.ErrNotFound
		} else if err != nil {
			return err
		}

		loans, err := r.Loans.ListByBorrowerID(ctx, borrowerID)
		if err != nil {
			return err
		}
		var refund, collected float64
		for i := range loans {
			l := &loans[i]
			if l.Status == domainLoan.StatusActive {
				return domainBorrower.ErrActiveLoans
			}
			paid, err := r.Payments.SumByLoanID(ctx, l.LoanID)
			if err != nil {
				return err
			}
			refund = money.Add(refund, money.Sub(l.Principal, paid))
			collected = money.Add(collected, paid)
		}

		if err := r.Payments.DeleteByBorrowerID(ctx, borrowerID); err != nil {
			return err
		}
		for i := range loans {
			if err := r.Loans.Delete(ctx, &loans[i]); err != nil {
				return err
			}
		}
		if err := r.Borrowers.Delete(ctx, b); err != nil {
			return err
		}

		desc := fmt.Sprintf("Borrower %s deleted", b.Name)
		switch {
		case money.Cmp(refund, 0) > 0:
			if err := s.ledger.RecordAdjustment(ctx, r, refund, domainLedger.TypeDeposit, desc, ""); err != nil {
				return err
			}
		case money.Cmp(refund, 0) < 0:
			if err := s.ledger.RecordAdjustment(ctx, r, -refund, domainLedger.TypeDisbursement, desc, ""); err != nil {
				return err
			}
		}
		return s.ledger.ReduceCollected(ctx, r, collected)
	})
}

func (s *Service) GetBorrower(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	var out *BorrowerDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Borrowers.GetByBorrowerID(ctx, borrowerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBorrower.ErrNotFound
		} else if err != nil {
			return err
		}
		out = borrowerDTO(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListBorrowers(ctx context.Context) ([]BorrowerDTO, error) {
	var out []BorrowerDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Borrowers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]BorrowerDTO, 0, len(list))
		for i := range list {
			out = append(out, *borrowerDTO(&list[i]))
		}
		return nil
	})
	return out, err
}
