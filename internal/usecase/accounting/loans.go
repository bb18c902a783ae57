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
	"fortitude-backend/internal/usecase/loancalc"
	"fortitude-backend/pkg/id"
	"fortitude-backend/pkg/money"
)

// CreateLoan issues a loan to an active borrower. Cascade: calculate derived
// fields, persist the loan (paid 0, outstanding = total), record the
// disbursement against the ledger, recompute the borrower aggregate.
func (s *Service) CreateLoan(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.BorrowerID == "" {
		return nil, fmt.Errorf("%w: borrower_id is required", ErrInvalidInput)
	}
	it := domainLoan.InterestType(in.InterestType)
	if in.InterestType == "" {
		it = domainLoan.InterestSimple
	}
	calc, err := loancalc.Calculate(in.Principal, in.InterestRate, it, in.Duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	start := in.StartDate
	if start.IsZero() {
		start = s.clock.Now()
	}

	var out *LoanDTO
	err = s.uow.WithinTx(ctx, func(r uow.Repos) error {
		b, err := r.Borrowers.GetByBorrowerID(ctx, in.BorrowerID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainBorrower.ErrNotFound
		} else if err != nil {
			return err
		}
		if b.Status != domainBorrower.StatusActive {
			return domainBorrower.ErrInactive
		}

		l := &domainLoan.Loan{
			LoanID:            id.NewID32(),
			BorrowerID:        b.BorrowerID,
			BorrowerName:      b.Name,
			Principal:         money.Round2(in.Principal),
			InterestRate:      in.InterestRate,
			InterestType:      it,
			StartDate:         start,
			DueDate:           loancalc.DueDate(start, in.Duration),
			Status:            domainLoan.StatusActive,
			TotalInterest:     calc.TotalInterest,
			TotalAmount:       calc.TotalAmount,
			InstallmentAmount: calc.InstallmentAmount,
			OutstandingAmount: calc.TotalAmount,
			PaidAmount:        0,
			DisbursementDate:  s.clock.Now(),
		}
		l.SetDuration(in.Duration)

		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if err := s.ledger.RecordDisbursement(ctx, r, l.Principal, l.LoanID); err != nil {
			return err
		}
		if err := s.agg.Recompute(ctx, r, b.BorrowerID); err != nil {
			return err
		}
		out = loanDTO(l, s.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateLoan patches a loan under a row lock. Editing any financial term is
// refused once a payment exists; before that, the derived fields are
// recomputed from the new inputs (never incrementally) and a reconciling
// ledger adjustment covers the principal delta, so the original disbursement
// record stays explainable.
func (s *Service) UpdateLoan(ctx context.Context, loanID string, in UpdateLoanInput) (*LoanDTO, error) {
	var out *LoanDTO
	err := s.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		financial := in.Principal != nil || in.InterestRate != nil || in.InterestType != nil || in.Duration != nil

		if in.BorrowerName != nil {
			l.BorrowerName = *in.BorrowerName
		}
		if in.StartDate != nil {
			l.StartDate = *in.StartDate
		}

		if financial {
			if l.Status != domainLoan.StatusActive {
				return domainLoan.ErrInvalidTransition
			}
			n, err := r.Payments.CountByLoanID(ctx, l.LoanID)
			if err != nil {
				return err
			}
			if n > 0 {
				return domainLoan.ErrFinancialsLocked
			}

			oldPrincipal := l.Principal
			if in.Principal != nil {
				l.Principal = money.Round2(*in.Principal)
			}
			if in.InterestRate != nil {
				l.InterestRate = *in.InterestRate
			}
			if in.InterestType != nil {
				l.InterestType = domainLoan.InterestType(*in.InterestType)
			}
			if in.Duration != nil {
				l.SetDuration(*in.Duration)
			}

			calc, err := loancalc.Calculate(l.Principal, l.InterestRate, l.InterestType, l.Duration())
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			l.TotalInterest = calc.TotalInterest
			l.TotalAmount = calc.TotalAmount
			l.InstallmentAmount = calc.InstallmentAmount
			l.OutstandingAmount = money.SubFloor0(calc.TotalAmount, l.PaidAmount)

			// Reconcile the ledger with the principal delta; without this the
			// original disbursement would silently desync from the loan book.
			delta := money.Sub(l.Principal, oldPrincipal)
			desc := fmt.Sprintf("Loan %s principal correction", l.LoanID)
			switch {
			case money.Cmp(delta, 0) > 0:
				if err := s.ledger.RecordAdjustment(ctx, r, delta, domainLedger.TypeDisbursement, desc, l.LoanID); err != nil {
					return err
				}
			case money.Cmp(delta, 0) < 0:
				if err := s.ledger.RecordAdjustment(ctx, r, -delta, domainLedger.TypeDeposit, desc, l.LoanID); err != nil {
					return err
				}
			}
		}

		if in.StartDate != nil || in.Duration != nil {
			l.DueDate = loancalc.DueDate(l.StartDate, l.Duration())
		}

		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := s.agg.Recompute(ctx, r, l.BorrowerID); err != nil {
			return err
		}
		out = loanDTO(l, s.clock.Now())
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// DeleteLoan removes the loan and its payments, then compensates the ledger
// by principal − totalPaid: net-positive returns money to the available
// balance (deposit), net-negative corrects the figures downward.
func (s *Service) DeleteLoan(ctx context.Context, loanID string) error {
	err := s.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		totalPaid, err := r.Payments.SumByLoanID(ctx, l.LoanID)
		if err != nil {
			return err
		}
		if err := r.Payments.DeleteByLoanID(ctx, l.LoanID); err != nil {
			return err
		}
		if err := r.Loans.Delete(ctx, l); err != nil {
			return err
		}

		net := money.Sub(l.Principal, totalPaid)
		desc := fmt.Sprintf("Loan %s deleted", l.LoanID)
		switch {
		case money.Cmp(net, 0) > 0:
			if err := s.ledger.RecordAdjustment(ctx, r, net, domainLedger.TypeDeposit, desc, l.LoanID); err != nil {
				return err
			}
		case money.Cmp(net, 0) < 0:
			if err := s.ledger.RecordAdjustment(ctx, r, -net, domainLedger.TypeDisbursement, desc, l.LoanID); err != nil {
				return err
			}
		}
		return s.agg.Recompute(ctx, r, l.BorrowerID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainLoan.ErrNotFound
	}
	return err
}

// MarkDefaulted is the manual administrative transition. Terminal: nothing
// leaves defaulted, and completed loans cannot default.
func (s *Service) MarkDefaulted(ctx context.Context, loanID string) (*LoanDTO, error) {
	var out *LoanDTO
	err := s.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusActive {
			return domainLoan.ErrInvalidTransition
		}
		l.Status = domainLoan.StatusDefaulted
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = loanDTO(l, s.clock.Now())
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (s *Service) GetLoan(ctx context.Context, loanID string) (*LoanDTO, error) {
	var out *LoanDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainLoan.ErrNotFound
		} else if err != nil {
			return err
		}
		out = loanDTO(l, s.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListLoans(ctx context.Context) ([]LoanDTO, error) {
	var out []LoanDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Loans.List(ctx)
		if err != nil {
			return err
		}
		now := s.clock.Now()
		out = make([]LoanDTO, 0, len(list))
		for i := range list {
			out = append(out, *loanDTO(&list[i], now))
		}
		return nil
	})
	return out, err
}
