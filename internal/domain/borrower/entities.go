package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("borrower not found")
	// ErrInactive: loans may only be issued to active borrowers.
	ErrInactive = errors.New("borrower is inactive")
	// ErrActiveLoans blocks deletion while any owned loan is still active.
	ErrActiveLoans = errors.New("borrower has active loans")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Borrower carries contact data plus two derived aggregates. TotalLoans and
// TotalOutstanding are owned by the aggregator recompute: never written
// incrementally, always recomputed from the loan set.
type Borrower struct {
	ID               uint64         `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID       string         `gorm:"size:32;uniqueIndex:ux_borrowers_borrower_id" json:"borrower_id"`
	Name             string         `gorm:"size:191;not null" json:"name"`
	Phone            string         `gorm:"size:32" json:"phone"`
	Address          string         `gorm:"type:text" json:"address"`
	Email            string         `gorm:"size:191" json:"email,omitempty"`
	JoiningDate      time.Time      `gorm:"type:date" json:"joining_date"`
	Status           Status         `gorm:"type:enum('active','inactive');default:'active'" json:"status"`
	TotalLoans       int            `gorm:"not null;default:0" json:"total_loans"`
	TotalOutstanding float64        `gorm:"type:decimal(18,2);not null;default:0" json:"total_outstanding"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }
