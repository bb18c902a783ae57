// Package report derives read-only portfolio views from a point-in-time
// snapshot of borrowers, loans and payments. No writes: it consumes whatever
// the accounting service has persisted.
package report

import (
	"context"

	domainBorrower "fortitude-backend/internal/domain/borrower"
	domainLoan "fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/uow"
	"fortitude-backend/pkg/clock"
	"fortitude-backend/pkg/money"
)

type Service struct {
	uow   uow.UnitOfWork
	clock clock.Clock
}

func NewService(u uow.UnitOfWork, c clock.Clock) *Service {
	return &Service{uow: u, clock: c}
}

type BorrowerReport struct {
	Borrower           domainBorrower.Borrower `json:"borrower"`
	Loans              []domainLoan.Loan       `json:"loans"`
	TotalBorrowed      float64                 `json:"total_borrowed"`
	TotalPaid          float64                 `json:"total_paid"`
	CurrentOutstanding float64                 `json:"current_outstanding"`
}

type PortfolioSummary struct {
	TotalBorrowers       int     `json:"total_borrowers"`
	TotalLoansIssued     int     `json:"total_loans_issued"`
	TotalAmountDisbursed float64 `json:"total_amount_disbursed"`
	TotalAmountCollected float64 `json:"total_amount_collected"`
	TotalOutstanding     float64 `json:"total_outstanding"`
	AverageLoanSize      float64 `json:"average_loan_size"`
	// DefaultRate is a percentage; 0 (not NaN) when no loans exist.
	DefaultRate float64 `json:"default_rate"`
}

type Report struct {
	OutstandingLoans []domainLoan.Loan `json:"outstanding_loans"`
	PastDueLoans     []domainLoan.Loan `json:"past_due_loans"`
	BorrowersReport  []BorrowerReport  `json:"borrowers_report"`
	PortfolioSummary PortfolioSummary  `json:"portfolio_summary"`
}

// Generate reads all three collections inside one transaction so the report
// is internally consistent, then derives every view in memory.
func (s *Service) Generate(ctx context.Context) (*Report, error) {
	var (
		borrowers []domainBorrower.Borrower
		loans     []domainLoan.Loan
		totalPaid float64
	)
	err := s.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if borrowers, err = r.Borrowers.List(ctx); err != nil {
			return err
		}
		if loans, err = r.Loans.List(ctx); err != nil {
			return err
		}
		payments, err := r.Payments.List(ctx)
		if err != nil {
			return err
		}
		for i := range payments {
			totalPaid = money.Add(totalPaid, payments[i].Amount)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	rep := &Report{
		OutstandingLoans: []domainLoan.Loan{},
		PastDueLoans:     []domainLoan.Loan{},
	}

	for _, l := range loans {
		if l.Status == domainLoan.StatusActive && l.OutstandingAmount > 0 {
			rep.OutstandingLoans = append(rep.OutstandingLoans, l)
			if l.DueDate.Before(now) {
				rep.PastDueLoans = append(rep.PastDueLoans, l)
			}
		}
	}

	byBorrower := make(map[string][]domainLoan.Loan, len(borrowers))
	for _, l := range loans {
		byBorrower[l.BorrowerID] = append(byBorrower[l.BorrowerID], l)
	}
	rep.BorrowersReport = make([]BorrowerReport, 0, len(borrowers))
	for _, b := range borrowers {
		owned := byBorrower[b.BorrowerID]
		br := BorrowerReport{Borrower: b, Loans: owned}
		for _, l := range owned {
			br.TotalBorrowed = money.Add(br.TotalBorrowed, l.Principal)
			br.TotalPaid = money.Add(br.TotalPaid, l.PaidAmount)
			br.CurrentOutstanding = money.Add(br.CurrentOutstanding, l.OutstandingAmount)
		}
		rep.BorrowersReport = append(rep.BorrowersReport, br)
	}

	sum := PortfolioSummary{
		TotalBorrowers:       len(borrowers),
		TotalLoansIssued:     len(loans),
		TotalAmountCollected: totalPaid,
	}
	defaulted := 0
	for _, l := range loans {
		sum.TotalAmountDisbursed = money.Add(sum.TotalAmountDisbursed, l.Principal)
		sum.TotalOutstanding = money.Add(sum.TotalOutstanding, l.OutstandingAmount)
		if l.Status == domainLoan.StatusDefaulted {
			defaulted++
		}
	}
	if len(loans) > 0 {
		sum.AverageLoanSize = money.Round2(sum.TotalAmountDisbursed / float64(len(loans)))
		sum.DefaultRate = money.Round2(float64(defaulted) / float64(len(loans)) * 100)
	}
	rep.PortfolioSummary = sum
	return rep, nil
}
