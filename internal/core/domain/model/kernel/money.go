package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"fastfood/internal/pkg/errs"
)

// Money is a value object that represents an exact monetary amount.
// The amount is held as an integer number of centavos, so sums of item
// prices never accumulate binary floating point drift.
//
// The zero value of Money is a valid amount of zero centavos, which lets
// an empty order slot contribute nothing to a total without special cases.
//
// Money is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	price, err := kernel.ParseMoney("9.99")
//	if err != nil {
//	    // handle error
//	}
//	total := price.Add(kernel.Money{}) // 9.99
//	fmt.Println(total.String())        // "9.99"
type Money struct {
	cents int64
}

// NewMoneyFromCents creates a Money from an integer number of centavos.
// Negative amounts are rejected: the domain has no notion of negative prices
// or refunds.
//
// Example:
//
//	m, err := kernel.NewMoneyFromCents(1449)
//	fmt.Println(m.String()) // "14.49"
func NewMoneyFromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%d centavos is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// ParseMoney parses a decimal string such as "9.99" into a Money.
// Accepted forms are a whole number ("9"), one decimal place ("9.5"),
// or two decimal places ("9.99"). The string is parsed digit-wise into
// centavos; no floating point is involved, so "0.1" style amounts are exact.
//
// Returns an error for empty input, negative amounts, more than two decimal
// places, or any non-numeric content.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	whole, frac, _ := strings.Cut(s, ".")

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || units < 0 || strings.HasPrefix(whole, "-") {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%q is not a valid monetary amount", s),
		)
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1, 2:
		parsed, fracErr := strconv.ParseInt(frac, 10, 64)
		if fracErr != nil || parsed < 0 {
			return Money{}, errs.NewValueIsInvalidErrorWithCause(
				"amount",
				fmt.Errorf("%q is not a valid monetary amount", s),
			)
		}
		cents = parsed
		if len(frac) == 1 {
			cents *= 10
		}
	default:
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%q has more than two decimal places", s),
		)
	}

	return Money{cents: units*100 + cents}, nil
}

// Add returns the sum of two amounts. The result shares no state with the
// receiver or the argument.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Cents returns the amount as an integer number of centavos.
// This is the representation handed to the payment gateway.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is exactly zero centavos.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the amount formatted with two decimal places, e.g. "14.49".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
