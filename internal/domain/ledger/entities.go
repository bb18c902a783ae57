package ledger

import (
	"errors"
	"time"
)

// ErrInconsistent marks a broken ledger invariant: the balance record and its
// transaction log no longer agree, or a log append failed after the balance
// write. Always logged before it propagates.
var ErrInconsistent = errors.New("ledger inconsistency")

type TransactionType string

const (
	TypeDeposit      TransactionType = "deposit"
	TypeDisbursement TransactionType = "disbursement"
	TypeCollection   TransactionType = "collection"
)

// AccountBalance is the single shared cash record: one row for the whole
// book, not per user. AvailableBalance may legitimately go negative when
// disbursements exceed deposits; there is no overdraft guard here, that call
// belongs to the operator.
type AccountBalance struct {
	ID               uint64    `gorm:"primaryKey;column:id" json:"-"`
	AvailableBalance float64   `gorm:"type:decimal(18,2);not null;default:0" json:"available_balance"`
	TotalDisbursed   float64   `gorm:"type:decimal(18,2);not null;default:0" json:"total_disbursed"`
	TotalCollected   float64   `gorm:"type:decimal(18,2);not null;default:0" json:"total_collected"`
	TotalOutstanding float64   `gorm:"type:decimal(18,2);not null;default:0" json:"total_outstanding"`
	LastUpdated      time.Time `gorm:"autoUpdateTime" json:"last_updated"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"-"`
}

func (AccountBalance) TableName() string { return "account_balance" }

// Transaction is one append-only log row per balance-affecting event, in
// causal order. Amount is always a positive magnitude; Type carries the
// direction. Never mutated, never deleted.
type Transaction struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	TransactionID    string          `gorm:"size:32;uniqueIndex:ux_balance_tx_id" json:"transaction_id"`
	Type             TransactionType `gorm:"type:enum('deposit','disbursement','collection');not null" json:"type"`
	Amount           float64         `gorm:"type:decimal(18,2);not null" json:"amount"`
	Description      string          `gorm:"type:text" json:"description"`
	RelatedLoanID    string          `gorm:"size:32" json:"related_loan_id,omitempty"`
	RelatedPaymentID string          `gorm:"size:32" json:"related_payment_id,omitempty"`
	BalanceAfter     float64         `gorm:"type:decimal(18,2);not null" json:"balance_after"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string { return "balance_transactions" }
