package http

import (
	"strings"
	"testing"
)

func containsFieldMsg(errs []FieldError, field, fragment string) bool {
	for _, fe := range errs {
		if fe.Field == field && strings.Contains(fe.Message, fragment) {
			return true
		}
	}
	return false
}

type hex32Probe struct {
	ID string `validate:"hex32"`
}

type dec2Probe struct {
	Amount float64 `validate:"dec2"`
}

func TestHex32Tag(t *testing.T) {
	cv := NewValidator()

	ok := []string{strings.Repeat("a", 32), "0123456789abcdef0123456789abcdef"}
	for _, s := range ok {
		if err := cv.Validate(&hex32Probe{ID: s}); err != nil {
			t.Errorf("hex32 should accept %q: %v", s, err)
		}
	}
	bad := []string{
		"",
		strings.Repeat("a", 31),
		strings.Repeat("a", 33),
		strings.Repeat("A", 32), // uppercase rejected
		strings.Repeat("z", 32),
	}
	for _, s := range bad {
		if err := cv.Validate(&hex32Probe{ID: s}); err == nil {
			t.Errorf("hex32 should reject %q", s)
		}
	}
}

func TestDec2Tag(t *testing.T) {
	cv := NewValidator()

	for _, f := range []float64{0, 10, 10.5, 10.55, 999999.99} {
		if err := cv.Validate(&dec2Probe{Amount: f}); err != nil {
			t.Errorf("dec2 should accept %v: %v", f, err)
		}
	}
	for _, f := range []float64{10.555, 0.001, 1.0001} {
		if err := cv.Validate(&dec2Probe{Amount: f}); err == nil {
			t.Errorf("dec2 should reject %v", f)
		}
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	type form struct {
		BorrowerID string  `validate:"required,hex32"`
		Principal  float64 `validate:"required,gt=0,dec2"`
		Unit       string  `validate:"required,oneof=weeks months"`
	}
	err := cv.Validate(&form{Principal: 10.125, Unit: "days"})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	errs := ToFieldErrors(err)

	if !containsFieldMsg(errs, "BorrowerID", "required") {
		t.Errorf("missing required message: %+v", errs)
	}
	if !containsFieldMsg(errs, "Principal", "decimal places") {
		t.Errorf("missing dec2 message: %+v", errs)
	}
	if !containsFieldMsg(errs, "Unit", "one of") {
		t.Errorf("missing oneof message: %+v", errs)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	errs := ToFieldErrors(errFake{})
	if len(errs) != 1 || errs[0].Field != "_" {
		t.Fatalf("fallback mapping: %+v", errs)
	}
}

type errFake struct{}

func (errFake) Error() string { return "boom" }
