package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrInvalidTransition guards the status machine: completed and
	// defaulted are terminal.
	ErrInvalidTransition = errors.New("invalid loan status transition")
	// ErrFinancialsLocked: principal/rate/type/duration cannot change once a
	// payment has been applied, because recorded collections would no longer
	// reconcile against the ledger.
	ErrFinancialsLocked = errors.New("loan financial terms are locked after payments")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDefaulted Status = "defaulted"
	// StatusOverdue is derived at read time, never stored.
	StatusOverdue Status = "overdue"
)

type InterestType string

const (
	// InterestSimple applies the rate once to principal, regardless of term.
	InterestSimple InterestType = "simple"
	// InterestAnnual prorates the rate by the term's fraction of a year.
	InterestAnnual InterestType = "annual"
)

type DurationUnit string

const (
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
)

// Duration is the loan term: one installment per unit.
type Duration struct {
	Value int          `json:"value"`
	Unit  DurationUnit `json:"unit"`
}

// TermInMonths is a read-only convenience for display layers that still
// think in months. Weekly terms round up to the covering month count.
func (d Duration) TermInMonths() int {
	if d.Unit == UnitWeeks {
		return (d.Value + 3) / 4
	}
	return d.Value
}

type Loan struct {
	ID           uint64       `gorm:"primaryKey;column:id" json:"-"`
	LoanID       string       `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	BorrowerID   string       `gorm:"size:32;index:idx_loans_borrower" json:"borrower_id"`
	BorrowerName string       `gorm:"size:191" json:"borrower_name"`
	Principal    float64      `gorm:"type:decimal(18,2);not null" json:"principal"`
	InterestRate float64      `gorm:"type:decimal(8,2);not null" json:"interest_rate"`
	InterestType InterestType `gorm:"type:enum('simple','annual');default:'simple'" json:"interest_type"`

	DurationValue int          `gorm:"not null" json:"-"`
	DurationUnit  DurationUnit `gorm:"type:enum('weeks','months');default:'months'" json:"-"`

	StartDate time.Time `gorm:"type:date" json:"start_date"`
	DueDate   time.Time `gorm:"type:date" json:"due_date"`
	Status    Status    `gorm:"type:enum('active','completed','defaulted');default:'active'" json:"status"`

	// Derived financial fields, recomputed as a set whenever the inputs
	// above change. Invariants: TotalAmount = Principal + TotalInterest;
	// OutstandingAmount = TotalAmount − PaidAmount, floored at 0.
	TotalInterest     float64 `gorm:"type:decimal(18,2);not null;default:0" json:"total_interest"`
	TotalAmount       float64 `gorm:"type:decimal(18,2);not null;default:0" json:"total_amount"`
	InstallmentAmount float64 `gorm:"column:emi;type:decimal(18,2);not null;default:0" json:"installment_amount"`
	OutstandingAmount float64 `gorm:"type:decimal(18,2);not null;default:0" json:"outstanding_amount"`
	PaidAmount        float64 `gorm:"type:decimal(18,2);not null;default:0" json:"paid_amount"`

	DisbursementDate time.Time      `gorm:"autoCreateTime" json:"disbursement_date"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

func (l *Loan) Duration() Duration {
	return Duration{Value: l.DurationValue, Unit: l.DurationUnit}
}

func (l *Loan) SetDuration(d Duration) {
	l.DurationValue = d.Value
	l.DurationUnit = d.Unit
}

// EffectiveStatus derives overdue at read time: an active loan past its due
// date with money still owed. The stored status is untouched.
func (l *Loan) EffectiveStatus(now time.Time) Status {
	if l.Status == StatusActive && l.OutstandingAmount > 0 && l.DueDate.Before(now) {
		return StatusOverdue
	}
	return l.Status
}
