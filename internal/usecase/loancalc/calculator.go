// Package loancalc computes a loan's financial terms from principal, rate,
// interest type and duration. Pure functions: no I/O, deterministic, shared
// by the create and update paths so both always agree.
package loancalc

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fortitude-backend/internal/domain/loan"
)

var ErrInvalidTerms = errors.New("invalid loan terms")

var (
	hundred       = decimal.NewFromInt(100)
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

type Result struct {
	TotalInterest     float64
	TotalAmount       float64
	InstallmentAmount float64
}

// Calculate returns interest, total and flat per-period installment, each
// rounded half-up to 2 decimal places.
//
// Simple interest applies the rate once: principal * rate/100.
// Annual interest prorates by the term's fraction of a year
// (weeks/52 or months/12). The installment is totalAmount / duration.value:
// one flat installment per duration unit, not an amortizing annuity.
func Calculate(principal, rate float64, it loan.InterestType, d loan.Duration) (Result, error) {
	if principal <= 0 {
		return Result{}, fmt.Errorf("%w: principal must be positive", ErrInvalidTerms)
	}
	if rate < 0 {
		return Result{}, fmt.Errorf("%w: interest rate must not be negative", ErrInvalidTerms)
	}
	if d.Value <= 0 {
		return Result{}, fmt.Errorf("%w: duration value must be positive", ErrInvalidTerms)
	}
	if d.Unit != loan.UnitWeeks && d.Unit != loan.UnitMonths {
		return Result{}, fmt.Errorf("%w: unknown duration unit %q", ErrInvalidTerms, d.Unit)
	}

	p := decimal.NewFromFloat(principal)
	r := decimal.NewFromFloat(rate).Div(hundred)

	var interest decimal.Decimal
	switch it {
	case loan.InterestSimple:
		interest = p.Mul(r)
	case loan.InterestAnnual:
		perYear := monthsPerYear
		if d.Unit == loan.UnitWeeks {
			perYear = weeksPerYear
		}
		timeInYears := decimal.NewFromInt(int64(d.Value)).Div(perYear)
		interest = p.Mul(r).Mul(timeInYears)
	default:
		return Result{}, fmt.Errorf("%w: unknown interest type %q", ErrInvalidTerms, it)
	}

	total := p.Add(interest)
	installment := total.Div(decimal.NewFromInt(int64(d.Value)))

	ti, _ := interest.Round(2).Float64()
	ta, _ := total.Round(2).Float64()
	ia, _ := installment.Round(2).Float64()
	return Result{TotalInterest: ti, TotalAmount: ta, InstallmentAmount: ia}, nil
}

// DueDate is start + duration. Weeks add 7·value days; months add calendar
// months with the day-of-month clamped to the target month's length
// (Jan 31 + 1 month → Feb 28/29).
func DueDate(start time.Time, d loan.Duration) time.Time {
	if d.Unit == loan.UnitWeeks {
		return start.AddDate(0, 0, 7*d.Value)
	}
	return addMonthsClamped(start, d.Value)
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, day := t.Date()
	hh, mm, ss := t.Clock()
	// First of the target month; normalization of the month index is fine,
	// only the day can overflow.
	first := time.Date(y, m+time.Month(months), 1, hh, mm, ss, t.Nanosecond(), t.Location())
	lastDay := first.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(first.Year(), first.Month(), day, hh, mm, ss, t.Nanosecond(), t.Location())
}
