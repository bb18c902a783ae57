package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("payment not found")
	// ErrOverpayment: a payment may never exceed the loan's current
	// outstanding amount. Reject, never clamp.
	ErrOverpayment = errors.New("payment exceeds outstanding amount")
)

type Type string

const (
	TypeEMI     Type = "emi"
	TypePartial Type = "partial"
	TypeFull    Type = "full"
)

// Payment records are immutable once created; the only way money leaves a
// loan's outstanding balance.
type Payment struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	PaymentID   string         `gorm:"size:32;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID      string         `gorm:"size:32;index:idx_payments_loan" json:"loan_id"`
	BorrowerID  string         `gorm:"size:32;index:idx_payments_borrower" json:"borrower_id"`
	Amount      float64        `gorm:"type:decimal(18,2);not null" json:"amount"`
	PaymentDate time.Time      `gorm:"type:date" json:"payment_date"`
	PaymentType Type           `gorm:"type:enum('emi','partial','full');default:'partial'" json:"payment_type"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Payment) TableName() string { return "payments" }
