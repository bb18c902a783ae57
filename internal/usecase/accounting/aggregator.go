package accounting

import (
	"context"

	"fortitude-backend/internal/domain/uow"
	"fortitude-backend/pkg/money"
)

// BorrowerAggregator keeps a borrower's derived totals honest. Always a full
// recompute from the owned loan set, never incremental, so repeated calls
// with no intervening mutation are idempotent and drift cannot accumulate.
type BorrowerAggregator struct{}

// Recompute re-reads the borrower's loans and overwrites TotalLoans and
// TotalOutstanding. Runs against repos bound to the caller's transaction;
// invoked after every mutation that can touch the borrower's loan set or any
// owned loan's outstanding amount.
func (BorrowerAggregator) Recompute(ctx context.Context, r uow.Repos, borrowerID string) error {
	b, err := r.Borrowers.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		return err
	}
	loans, err := r.Loans.ListByBorrowerID(ctx, borrowerID)
	if err != nil {
		return err
	}
	total := 0.0
	for i := range loans {
		total = money.Add(total, loans[i].OutstandingAmount)
	}
	b.TotalLoans = len(loans)
	b.TotalOutstanding = total
	return r.Borrowers.Save(ctx, b)
}
