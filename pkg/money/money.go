// Package money keeps monetary arithmetic exact. Entity fields stay float64
// (stored as decimal(18,2) columns), but every add/sub/compare goes through
// shopspring/decimal so cent amounts never pick up binary-float drift.
//
// Rounding mode is half-up (half away from zero): 0.005 → 0.01.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds v to 2 decimal places, half-up.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Add returns a+b rounded to cents.
func Add(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// Sub returns a−b rounded to cents. The result may be negative.
func Sub(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).Float64()
	return f
}

// SubFloor0 returns a−b rounded to cents, floored at zero.
func SubFloor0(a, b float64) float64 {
	d := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2)
	if d.IsNegative() {
		return 0
	}
	f, _ := d.Float64()
	return f
}

// Cmp compares a and b at cent precision: -1 if a<b, 0 if equal, +1 if a>b.
func Cmp(a, b float64) int {
	return decimal.NewFromFloat(a).Round(2).Cmp(decimal.NewFromFloat(b).Round(2))
}

// IsZero reports whether v rounds to exactly 0.00.
func IsZero(v float64) bool {
	return decimal.NewFromFloat(v).Round(2).IsZero()
}

// Cents returns v as an integer number of cents.
func Cents(v float64) int64 {
	return decimal.NewFromFloat(v).Mul(hundred).Round(0).IntPart()
}
