package loancalc

import (
	"errors"
	"testing"
	"time"

	"fortitude-backend/internal/domain/loan"
)

func months(v int) loan.Duration { return loan.Duration{Value: v, Unit: loan.UnitMonths} }
func weeks(v int) loan.Duration  { return loan.Duration{Value: v, Unit: loan.UnitWeeks} }

func TestCalculate_SimpleInterest(t *testing.T) {
	// 1000 @ 10% simple over 1 month: rate applied once, term-independent.
	got, err := Calculate(1000, 10, loan.InterestSimple, months(1))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got.TotalInterest != 100.00 || got.TotalAmount != 1100.00 || got.InstallmentAmount != 1100.00 {
		t.Fatalf("got %+v, want interest=100 total=1100 installment=1100", got)
	}

	// Same terms over 12 months: identical interest, smaller installment.
	got12, err := Calculate(1000, 10, loan.InterestSimple, months(12))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got12.TotalInterest != 100.00 {
		t.Fatalf("simple interest must not depend on duration, got %v", got12.TotalInterest)
	}
	if got12.InstallmentAmount != 91.67 {
		t.Fatalf("installment = %v, want 91.67", got12.InstallmentAmount)
	}
}

func TestCalculate_AnnualInterest_Months(t *testing.T) {
	// 1200 @ 12% annual over 6 months: timeInYears = 0.5.
	got, err := Calculate(1200, 12, loan.InterestAnnual, months(6))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got.TotalInterest != 72.00 || got.TotalAmount != 1272.00 || got.InstallmentAmount != 212.00 {
		t.Fatalf("got %+v, want interest=72 total=1272 installment=212", got)
	}
}

func TestCalculate_AnnualInterest_Weeks(t *testing.T) {
	// 5200 @ 10% annual over 26 weeks: timeInYears = 0.5 → interest 260.
	got, err := Calculate(5200, 10, loan.InterestAnnual, weeks(26))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got.TotalInterest != 260.00 || got.TotalAmount != 5460.00 || got.InstallmentAmount != 210.00 {
		t.Fatalf("got %+v, want interest=260 total=5460 installment=210", got)
	}
}

func TestCalculate_ZeroRate(t *testing.T) {
	got, err := Calculate(900, 0, loan.InterestSimple, months(3))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got.TotalInterest != 0 || got.TotalAmount != 900.00 || got.InstallmentAmount != 300.00 {
		t.Fatalf("got %+v, want interest=0 total=900 installment=300", got)
	}
}

func TestCalculate_RoundsHalfUp(t *testing.T) {
	// 100.50 @ 1% simple → interest 1.005, must round up to 1.01.
	got, err := Calculate(100.50, 1, loan.InterestSimple, months(1))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got.TotalInterest != 1.01 {
		t.Fatalf("interest = %v, want 1.01 (half-up)", got.TotalInterest)
	}
	if got.TotalAmount != 101.51 {
		t.Fatalf("total = %v, want 101.51", got.TotalAmount)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	a, _ := Calculate(1234.56, 7.25, loan.InterestAnnual, weeks(13))
	b, _ := Calculate(1234.56, 7.25, loan.InterestAnnual, weeks(13))
	if a != b {
		t.Fatalf("same inputs gave different outputs: %+v vs %+v", a, b)
	}
}

func TestCalculate_RejectsBadTerms(t *testing.T) {
	cases := []struct {
		name      string
		principal float64
		rate      float64
		it        loan.InterestType
		d         loan.Duration
	}{
		{"zero principal", 0, 10, loan.InterestSimple, months(1)},
		{"negative principal", -5, 10, loan.InterestSimple, months(1)},
		{"negative rate", 1000, -1, loan.InterestSimple, months(1)},
		{"zero duration", 1000, 10, loan.InterestSimple, months(0)},
		{"bad unit", 1000, 10, loan.InterestSimple, loan.Duration{Value: 3, Unit: "days"}},
		{"bad interest type", 1000, 10, "compound", months(3)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Calculate(c.principal, c.rate, c.it, c.d); !errors.Is(err, ErrInvalidTerms) {
				t.Fatalf("err = %v, want ErrInvalidTerms", err)
			}
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDate_Weeks(t *testing.T) {
	got := DueDate(date(2025, time.March, 3), weeks(4))
	if want := date(2025, time.March, 31); !got.Equal(want) {
		t.Fatalf("DueDate = %v, want %v", got, want)
	}
}

func TestDueDate_Months_Plain(t *testing.T) {
	got := DueDate(date(2025, time.April, 15), months(6))
	if want := date(2025, time.October, 15); !got.Equal(want) {
		t.Fatalf("DueDate = %v, want %v", got, want)
	}
}

func TestDueDate_Months_ClampsShortMonths(t *testing.T) {
	cases := []struct {
		start time.Time
		m     int
		want  time.Time
	}{
		{date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)}, // leap year
		{date(2025, time.October, 31), 1, date(2025, time.November, 30)},
		{date(2025, time.November, 30), 15, date(2027, time.February, 28)}, // year rollover
	}
	for _, c := range cases {
		if got := DueDate(c.start, months(c.m)); !got.Equal(c.want) {
			t.Errorf("DueDate(%v, %dm) = %v, want %v", c.start, c.m, got, c.want)
		}
	}
}
