package money

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount. The zero value is zero money.
type Money struct {
	amount decimal.Decimal
}

// Zero is the zero amount.
var Zero = Money{amount: decimal.Zero}

// New creates a Money from a decimal. Negative amounts are rejected.
func New(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, fmt.Errorf("amount must not be negative: %s", d)
	}
	return Money{amount: d}, nil
}

// Parse creates a Money from its decimal string form.
// Empty and negative input is rejected.
func Parse(s string) (Money, error) {
	if s == "" {
		return Money{}, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return New(d)
}

// FromInt64 creates a Money from a whole amount.
func FromInt64(n int64) (Money, error) {
	return New(decimal.NewFromInt(n))
}

// MustParse is Parse for test fixtures and constants; it panics on error.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt64 returns the amount multiplied by an integer quantity.
// The quantity may be negative, so the result is a plain decimal
// rather than a Money.
func (m Money) MulInt64(qty int64) decimal.Decimal {
	return m.amount.Mul(decimal.NewFromInt(qty))
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equal reports whether two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the decimal string form.
func (m Money) String() string {
	return m.amount.String()
}

// MarshalJSON encodes the amount as a JSON string to avoid float rounding.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.amount.String() + `"`), nil
}

// UnmarshalJSON accepts either a JSON string or a bare number.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := New(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Value implements driver.Valuer so Money binds to NUMERIC columns.
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner.
func (m *Money) Scan(src any) error {
	var d decimal.Decimal
	if err := d.Scan(src); err != nil {
		return fmt.Errorf("failed to scan money: %w", err)
	}
	parsed, err := New(d)
	if err != nil {
		return fmt.Errorf("failed to scan money: %w", err)
	}
	*m = parsed
	return nil
}
