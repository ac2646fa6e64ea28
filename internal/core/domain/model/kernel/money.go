package kernel

import (
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every arithmetic result is
// rounded to. Rounding is half-to-even (banker's rounding), so repeated
// additions of rounded sub-amounts never drift from a directly computed
// total beyond the representable precision.
const moneyScale = 2

// ZeroMoney is the zero amount. Unlike the zero value of Money, it carries
// an amount and participates in arithmetic normally.
var ZeroMoney = NewMoney(decimal.Zero)

// Money is an exact-decimal monetary value. Arithmetic never fails: Add,
// Subtract and Multiply always produce a value rounded to two fractional
// digits, half-to-even. Comparisons and equality operate on the rounded
// value.
//
// The zero value of Money has no amount. An absent amount only exists
// transiently before validation; any comparison involving it yields false,
// never an error, and arithmetic treats it as zero.
type Money struct {
	amount    decimal.Decimal
	hasAmount bool
}

// NewMoney creates a Money carrying the given amount. The amount is kept
// as supplied; rounding applies to arithmetic results and comparisons.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount, hasAmount: true}
}

// NewMoneyFromString parses a decimal string such as "100.00" into a Money.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoney(amount), nil
}

// Amount returns the underlying decimal. For the zero value of Money this
// is decimal zero; check Validate before relying on it.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsGreaterThanZero reports whether the rounded amount is strictly positive.
// False when the amount is absent.
func (m Money) IsGreaterThanZero() bool {
	return m.hasAmount && m.rounded().IsPositive()
}

// IsGreaterThan reports whether this rounded amount is strictly greater than
// the other's. False when either amount is absent.
func (m Money) IsGreaterThan(other Money) bool {
	if !m.hasAmount || !other.hasAmount {
		return false
	}
	return m.rounded().GreaterThan(other.rounded())
}

// IsEqual reports whether both rounded amounts are equal. False when either
// amount is absent.
func (m Money) IsEqual(other Money) bool {
	if !m.hasAmount || !other.hasAmount {
		return false
	}
	return m.rounded().Equal(other.rounded())
}

// Add returns the rounded sum of the two amounts.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount.Add(other.amount).RoundBank(moneyScale))
}

// Subtract returns the rounded difference of the two amounts.
func (m Money) Subtract(other Money) Money {
	return NewMoney(m.amount.Sub(other.amount).RoundBank(moneyScale))
}

// Multiply returns the rounded product of the amount and an integer factor.
func (m Money) Multiply(factor int) Money {
	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(factor))).RoundBank(moneyScale))
}

// Validate returns an error for the zero value of Money.
func (m Money) Validate() error {
	if !m.hasAmount {
		return errs.NewValueIsRequiredError("money amount")
	}
	return nil
}

// String renders the rounded amount with two fractional digits, or "<unset>"
// for the zero value.
func (m Money) String() string {
	if !m.hasAmount {
		return "<unset>"
	}
	return m.rounded().StringFixed(moneyScale)
}

func (m Money) rounded() decimal.Decimal {
	return m.amount.RoundBank(moneyScale)
}
