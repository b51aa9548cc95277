// Package pricing computes recipe line totals and order totals in exact decimal
// arithmetic with two-decimal currency semantics.
package pricing

import (
	"mealkit/internal/apperrors"

	"github.com/shopspring/decimal"
)

const (
	MinPeople = 1
	MaxPeople = 20

	// CurrencyPlaces is the number of decimal places money is kept at.
	CurrencyPlaces = 2
)

// Line is one recipe priced for a number of people.
type Line struct {
	UnitPrice decimal.Decimal
	People    int
}

// ValidatePeople rejects people counts outside [MinPeople, MaxPeople].
func ValidatePeople(people int) error {
	if people < MinPeople || people > MaxPeople {
		return apperrors.InvalidInput("number of people must be between %d and %d, got %d", MinPeople, MaxPeople, people)
	}
	return nil
}

// LineTotal returns unitPrice * people rounded to currency precision.
func LineTotal(unitPrice decimal.Decimal, people int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(people))).Round(CurrencyPlaces)
}

// Total returns the line total of l.
func (l Line) Total() decimal.Decimal {
	return LineTotal(l.UnitPrice, l.People)
}

// OrderTotal sums the line totals of lines.
func OrderTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	return total.Round(CurrencyPlaces)
}

// Sum adds already computed amounts.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total.Round(CurrencyPlaces)
}

// Format renders an amount with exactly two decimal places.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(CurrencyPlaces)
}
