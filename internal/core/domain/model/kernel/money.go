package kernel

import (
	"github.com/shopspring/decimal"

	"ordering/internal/pkg/errs"
)

// Money is a value object representing a monetary amount with exact decimal
// semantics. It wraps github.com/shopspring/decimal so that arithmetic never
// suffers binary floating-point drift: 0.1 + 0.2 is exactly 0.3.
//
// Money is immutable. Every operation returns a new Money and leaves its
// receiver and arguments untouched, which makes values freely shareable
// across goroutines without synchronization.
//
// A single implicit currency is assumed throughout the system, so Money
// carries no currency code. The zero value of Money is a valid zero amount
// and equals ZeroMoney().
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	total := kernel.ZeroMoney().Add(price.MultiplyInt(2))
//	fmt.Println(total) // "20"
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money from a decimal amount.
// Negative amounts are allowed; callers that disallow them must reject
// the result themselves.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a Money from its decimal string representation,
// e.g. "10.00" or "-3.5". Returns a ValueIsInvalidError if the string is not
// a valid decimal number.
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns the canonical zero amount.
func ZeroMoney() Money {
	return Money{}
}

// Add returns a new Money holding the sum of m and other.
// Addition is commutative: m.Add(other) equals other.Add(m).
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money holding m minus other.
// The result may be negative; this type does not reject negative amounts.
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyInt returns a new Money holding m scaled by an integer factor.
func (m Money) MultiplyInt(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Multiply returns a new Money holding m scaled by a fractional decimal
// factor. The multiplication is exact: 22.50 is 25.00 times 0.90, with no
// rounding involved.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// Amount returns the underlying decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsEqual reports whether two Money values represent the same amount.
// Comparison is numeric, so "2.5" equals "2.50".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
