package service

import "github.com/shopspring/decimal"

var twelveHundred = decimal.NewFromInt(1200)

// maxIntegerDigits is well above the digits of any configured limit.
const maxIntegerDigits = 20

// round2 rounds a monetary amount to cents.
func round2(value decimal.Decimal) decimal.Decimal {
	return value.Round(2)
}

func clampNonNegative(value decimal.Decimal) decimal.Decimal {
	if value.IsNegative() {
		return decimal.Zero
	}
	return value
}

func isSettled(balance decimal.Decimal) bool {
	return balance.LessThanOrEqual(settledTolerance)
}

// monthlyInterest is balance × APR/100/12, rounded to cents.
func monthlyInterest(balance, apr decimal.Decimal) decimal.Decimal {
	return round2(balance.Mul(apr).Div(twelveHundred))
}

// exceeds reports whether value > limit without rescaling values whose
// exponent is far from the limit's.
func exceeds(value, limit decimal.Decimal) bool {
	if value.Sign() <= 0 {
		return false
	}
	integerDigits := value.NumDigits() + int(value.Exponent())
	switch {
	case integerDigits > maxIntegerDigits:
		return true
	case integerDigits < 0:
		return false
	}
	return value.GreaterThan(limit)
}
