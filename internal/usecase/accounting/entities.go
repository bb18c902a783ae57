package accounting

import (
	"time"

	"fortitude-backend/internal/domain/borrower"
	"fortitude-backend/internal/domain/loan"
	"fortitude-backend/internal/domain/payment"
)

type CreateBorrowerInput struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Email       string    `json:"email"`
	JoiningDate time.Time `json:"joining_date"`
	Status      string    `json:"status"`
}

// UpdateBorrowerInput patches contact fields; nil means "leave unchanged".
// The derived aggregates are not patchable; only the recompute writes them.
type UpdateBorrowerInput struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
	Status  *string `json:"status"`
}

type CreateLoanInput struct {
	BorrowerID   string        `json:"borrower_id"`
	Principal    float64       `json:"principal"`
	InterestRate float64       `json:"interest_rate"`
	InterestType string        `json:"interest_type"`
	Duration     loan.Duration `json:"duration"`
	StartDate    time.Time     `json:"start_date"`
}

// UpdateLoanInput patches a loan. Touching any financial field
// (principal/rate/type/duration) recomputes all derived fields from scratch
// and is rejected once a payment exists.
type UpdateLoanInput struct {
	BorrowerName *string        `json:"borrower_name"`
	Principal    *float64       `json:"principal"`
	InterestRate *float64       `json:"interest_rate"`
	InterestType *string        `json:"interest_type"`
	Duration     *loan.Duration `json:"duration"`
	StartDate    *time.Time     `json:"start_date"`
}

type ApplyPaymentInput struct {
	LoanID      string    `json:"loan_id"`
	Amount      float64   `json:"amount"`
	PaymentType string    `json:"payment_type"`
	PaymentDate time.Time `json:"payment_date"`
	Description string    `json:"description"`
}

type BorrowerDTO struct {
	BorrowerID       string    `json:"borrower_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	Email            string    `json:"email,omitempty"`
	JoiningDate      time.Time `json:"joining_date"`
	Status           string    `json:"status"`
	TotalLoans       int       `json:"total_loans"`
	TotalOutstanding float64   `json:"total_outstanding"`
	CreatedAt        time.Time `json:"created_at"`
}

type LoanDTO struct {
	LoanID            string        `json:"loan_id"`
	BorrowerID        string        `json:"borrower_id"`
	BorrowerName      string        `json:"borrower_name"`
	Principal         float64       `json:"principal"`
	InterestRate      float64       `json:"interest_rate"`
	InterestType      string        `json:"interest_type"`
	Duration          loan.Duration `json:"duration"`
	TermInMonths      int           `json:"term_in_months"`
	StartDate         time.Time     `json:"start_date"`
	DueDate           time.Time     `json:"due_date"`
	Status            string        `json:"status"`
	TotalInterest     float64       `json:"total_interest"`
	TotalAmount       float64       `json:"total_amount"`
	InstallmentAmount float64       `json:"installment_amount"`
	OutstandingAmount float64       `json:"outstanding_amount"`
	PaidAmount        float64       `json:"paid_amount"`
	CreatedAt         time.Time     `json:"created_at"`
}

type PaymentDTO struct {
	PaymentID   string    `json:"payment_id"`
	LoanID      string    `json:"loan_id"`
	BorrowerID  string    `json:"borrower_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	PaymentType string    `json:"payment_type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func borrowerDTO(b *borrower.Borrower) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID:       b.BorrowerID,
		Name:             b.Name,
		Phone:            b.Phone,
		Address:          b.Address,
		Email:            b.Email,
		JoiningDate:      b.JoiningDate,
		Status:           string(b.Status),
		TotalLoans:       b.TotalLoans,
		TotalOutstanding: b.TotalOutstanding,
		CreatedAt:        b.CreatedAt,
	}
}

// loanDTO renders the loan with its effective status: overdue is derived
// against now, never read from storage.
func loanDTO(l *loan.Loan, now time.Time) *LoanDTO {
	d := l.Duration()
	return &LoanDTO{
		LoanID:            l.LoanID,
		BorrowerID:        l.BorrowerID,
		BorrowerName:      l.BorrowerName,
		Principal:         l.Principal,
		InterestRate:      l.InterestRate,
		InterestType:      string(l.InterestType),
		Duration:          d,
		TermInMonths:      d.TermInMonths(),
		StartDate:         l.StartDate,
		DueDate:           l.DueDate,
		Status:            string(l.EffectiveStatus(now)),
		TotalInterest:     l.TotalInterest,
		TotalAmount:       l.TotalAmount,
		InstallmentAmount: l.InstallmentAmount,
		OutstandingAmount: l.OutstandingAmount,
		PaidAmount:        l.PaidAmount,
		CreatedAt:         l.CreatedAt,
	}
}

func paymentDTO(p *payment.Payment) *PaymentDTO {
	return &PaymentDTO{
		PaymentID:   p.PaymentID,
		LoanID:      p.LoanID,
		BorrowerID:  p.BorrowerID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		PaymentType: string(p.PaymentType),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
