package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "fortitude-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*paymentDomain.Payment, error) {
	var out paymentDomain.Payment
	res := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) List(ctx context.Context) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) CountByLoanID(ctx context.Context, loanID string) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("loan_id = ?", loanID).
		Count(&n)
	return n, res.Error
}

func (r *PaymentRepository) SumByLoanID(ctx context.Context, loanID string) (float64, error) {
	var out struct{ Total float64 }
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("loan_id = ?", loanID).
		Scan(&out)
	return out.Total, res.Error
}

func (r *PaymentRepository) DeleteByLoanID(ctx context.Context, loanID string) error {
	return r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Delete(&paymentDomain.Payment{}).Error
}

func (r *PaymentRepository) DeleteByBorrowerID(ctx context.Context, borrowerID string) error {
	return r.db.WithContext(ctx).
		Where("borrower_id = ?", borrowerID).
		Delete(&paymentDomain.Payment{}).Error
}
