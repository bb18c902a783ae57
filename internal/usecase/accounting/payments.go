package accounting

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainLoan "fortitude-backend/internal/domain/loan"
	domainPayment "fortitude-backend/internal/domain/payment"
	"fortitude-backend/internal/domain/uow"
	"fortitude-backend/pkg/id"
	"fortitude-backend/pkg/money"
)

// ApplyPayment is the only path that reduces a loan's outstanding amount.
// The loan row is locked for the whole cascade and the outstanding check
// runs against the locked read, so two racing payments that together exceed
// the outstanding amount cannot both commit. Overpayment is rejected
// outright, never clamped, preserving paidAmount <= totalAmount.
func (s *Service) ApplyPayment(ctx context.Context, in ApplyPaymentInput) (*PaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	ptype := domainPayment.Type(in.PaymentType)
	switch ptype {
	case domainPayment.TypeEMI, domainPayment.TypePartial, domainPayment.TypeFull:
	case "":
		ptype = domainPayment.TypePartial
	default:
		return nil, fmt.Errorf("%w: payment type must be emi, partial or full", ErrInvalidInput)
	}
	when := in.PaymentDate
	if when.IsZero() {
		when = s.clock.Now()
	}

	var out *PaymentDTO
	err := s.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Status != domainLoan.StatusActive {
			return domainLoan.ErrInvalidTransition
		}
		// Write-time re-check under the row lock.
		if money.Cmp(in.Amount, l.OutstandingAmount) > 0 {
			return domainPayment.ErrOverpayment
		}

		p := &domainPayment.Payment{
			PaymentID:   id.NewID32(),
			LoanID:      l.LoanID,
			BorrowerID:  l.BorrowerID,
			Amount:      money.Round2(in.Amount),
			PaymentDate: when,
			PaymentType: ptype,
			Description: in.Description,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		l.PaidAmount = money.Add(l.PaidAmount, p.Amount)
		l.OutstandingAmount = money.SubFloor0(l.OutstandingAmount, p.Amount)
		if money.IsZero(l.OutstandingAmount) {
			// Monotonic: completed never reverts automatically.
			l.Status = domainLoan.StatusCompleted
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := s.ledger.RecordCollection(ctx, r, p.Amount, p.PaymentID); err != nil {
			return err
		}
		if err := s.agg.Recompute(ctx, r, l.BorrowerID); err != nil {
			return err
		}
		out = paymentDTO(p)
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

func (s *Service) GetPayment(ctx context.Context, paymentID string) (*PaymentDTO, error) {
	var out *PaymentDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Payments.GetByPaymentID(ctx, paymentID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainPayment.ErrNotFound
		} else if err != nil {
			return err
		}
		out = paymentDTO(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]PaymentDTO, error) {
	return s.listPayments(ctx, func(ctx context.Context, r uow.Repos) ([]domainPayment.Payment, error) {
		return r.Payments.List(ctx)
	})
}

func (s *Service) ListPaymentsByLoan(ctx context.Context, loanID string) ([]PaymentDTO, error) {
	return s.listPayments(ctx, func(ctx context.Context, r uow.Repos) ([]domainPayment.Payment, error) {
		return r.Payments.ListByLoanID(ctx, loanID)
	})
}

func (s *Service) listPayments(ctx context.Context, fetch func(context.Context, uow.Repos) ([]domainPayment.Payment, error)) ([]PaymentDTO, error) {
	var out []PaymentDTO
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := fetch(ctx, r)
		if err != nil {
			return err
		}
		out = make([]PaymentDTO, 0, len(list))
		for i := range list {
			out = append(out, *paymentDTO(&list[i]))
		}
		return nil
	})
	return out, err
}
