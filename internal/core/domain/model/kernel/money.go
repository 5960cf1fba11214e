package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tastyfood/internal/pkg/errs"
)

// Money is a non-negative fixed-point currency amount stored as whole cents.
// Subtotals, tips, totals and menu prices are all Money, so arithmetic never
// touches floating point.
//
// Example:
//
//	price, _ := kernel.ParseMoney("17.99")
//	line, _ := price.Multiply(2)
//	fmt.Println(line) // 35.98
type Money struct {
	cents int64
}

// Zero is the zero amount.
var Zero = Money{}

var maxAmount = Money{cents: math.MaxInt64}

// NewMoney creates an amount from cents. Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// MustNewMoney is NewMoney for constants and tests; it panics on invalid input.
func MustNewMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

// ParseMoney parses a decimal string with at most two fractional digits ("6.99", "12", "0.5").
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac && (len(frac) == 0 || len(frac) > 2) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q has invalid precision", s))
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	var cents int64
	if hasFrac {
		if len(frac) == 1 {
			frac += "0"
		}
		c, fracErr := strconv.ParseInt(frac, 10, 64)
		if fracErr != nil || c < 0 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q has invalid cents", s))
		}
		cents = c
	}

	return NewMoney(units*100 + cents)
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Multiply returns m scaled by a positive quantity.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity <= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	q := int64(quantity)
	if m.cents > math.MaxInt64/q {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%s x %d", m, quantity), 0, maxAmount)
	}
	return Money{cents: m.cents * q}, nil
}

// AddChecked is Add that fails instead of wrapping when the sum exceeds the largest
// representable amount.
func (m Money) AddChecked(other Money) (Money, error) {
	if m.cents > math.MaxInt64-other.cents {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", fmt.Sprintf("%s + %s", m, other), 0, maxAmount)
	}
	return Money{cents: m.cents + other.cents}, nil
}

// String renders the amount with two fractional digits.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
