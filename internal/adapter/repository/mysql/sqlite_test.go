package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type borrowerSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	BorrowerID       string         `gorm:"size:32;column:borrower_id"`
	Name             string         `gorm:"column:name"`
	Phone            string         `gorm:"column:phone"`
	Address          string         `gorm:"column:address"`
	Email            string         `gorm:"column:email"`
	JoiningDate      time.Time      `gorm:"column:joining_date"`
	Status           string         `gorm:"type:text;column:status"` // ← no enum
	TotalLoans       int            `gorm:"column:total_loans"`
	TotalOutstanding float64        `gorm:"column:total_outstanding"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (borrowerSQLite) TableName() string { return "borrowers" }

type loanSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	LoanID            string         `gorm:"size:32;column:loan_id"`
	BorrowerID        string         `gorm:"size:32;column:borrower_id"`
	BorrowerName      string         `gorm:"column:borrower_name"`
	Principal         float64        `gorm:"column:principal"`
	InterestRate      float64        `gorm:"column:interest_rate"`
	InterestType      string         `gorm:"type:text;column:interest_type"` // ← no enum
	DurationValue     int            `gorm:"column:duration_value"`
	DurationUnit      string         `gorm:"type:text;column:duration_unit"` // ← no enum
	StartDate         time.Time      `gorm:"column:start_date"`
	DueDate           time.Time      `gorm:"column:due_date"`
	Status            string         `gorm:"type:text;column:status"` // ← no enum
	TotalInterest     float64        `gorm:"column:total_interest"`
	TotalAmount       float64        `gorm:"column:total_amount"`
	InstallmentAmount float64        `gorm:"column:emi"`
	OutstandingAmount float64        `gorm:"column:outstanding_amount"`
	PaidAmount        float64        `gorm:"column:paid_amount"`
	DisbursementDate  time.Time      `gorm:"column:disbursement_date"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	PaymentID   string         `gorm:"size:32;column:payment_id"`
	LoanID      string         `gorm:"size:32;column:loan_id"`
	BorrowerID  string         `gorm:"size:32;column:borrower_id"`
	Amount      float64        `gorm:"column:amount"`
	PaymentDate time.Time      `gorm:"column:payment_date"`
	PaymentType string         `gorm:"type:text;column:payment_type"` // ← no enum
	Description string         `gorm:"column:description"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (paymentSQLite) TableName() string { return "payments" }

type balanceSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	AvailableBalance float64   `gorm:"column:available_balance"`
	TotalDisbursed   float64   `gorm:"column:total_disbursed"`
	TotalCollected   float64   `gorm:"column:total_collected"`
	TotalOutstanding float64   `gorm:"column:total_outstanding"`
	LastUpdated      time.Time `gorm:"column:last_updated"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (balanceSQLite) TableName() string { return "account_balance" }

type transactionSQLite struct {
	ID               uint64    `gorm:"primaryKey;column:id"`
	TransactionID    string    `gorm:"size:32;column:transaction_id"`
	Type             string    `gorm:"type:text;column:type"` // ← no enum
	Amount           float64   `gorm:"column:amount"`
	Description      string    `gorm:"column:description"`
	RelatedLoanID    string    `gorm:"size:32;column:related_loan_id"`
	RelatedPaymentID string    `gorm:"size:32;column:related_payment_id"`
	BalanceAfter     float64   `gorm:"column:balance_after"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (transactionSQLite) TableName() string { return "balance_transactions" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&borrowerSQLite{},
		&loanSQLite{},
		&paymentSQLite{},
		&balanceSQLite{},
		&transactionSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
