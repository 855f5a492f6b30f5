package md2quote

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// TotalsBreakdown is the computed money summary for a line-item table.
// All values are exact decimals; the breakdown is recomputed on every
// render and never persisted.
type TotalsBreakdown struct {
	Subtotal   decimal.Decimal
	TaxRate    decimal.Decimal // percentage; zero for exempt regimes
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal

	// VATNote carries the regime so the layout knows whether to show the
	// small-business exemption phrase. The phrase text itself is a
	// template concern.
	VATNote VATType
}

// ComputeTotals computes the subtotal, tax, and grand total for a line-item
// sequence under the given VAT regime.
//
// The subtotal sums the already-rounded per-row totals (manual overrides
// trusted as-is, computed rows rounded half-to-even to cents); it is never
// re-derived from the raw quantity*rate products, so repeated renders can
// not drift.
//
// taxRate is a percentage and is only consulted for VATGerman, where it is
// required: a nil rate fails wrapping ErrInvalidRate rather than silently
// computing 0% tax. A negative rate fails for every regime. An empty items
// slice yields an all-zero breakdown, not an error.
func ComputeTotals(items []LineItem, vatType VATType, taxRate *decimal.Decimal) (TotalsBreakdown, error) {
	if !vatType.Valid() {
		return TotalsBreakdown{}, fmt.Errorf("%w: %q", ErrInvalidVATType, vatType)
	}
	if taxRate != nil && taxRate.IsNegative() {
		return TotalsBreakdown{}, fmt.Errorf("%w: rate must not be negative, got %s", ErrInvalidRate, taxRate)
	}

	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.RowTotal())
	}

	breakdown := TotalsBreakdown{
		Subtotal:   subtotal,
		TaxAmount:  decimal.Zero,
		GrandTotal: subtotal,
		VATNote:    vatType,
	}

	if vatType == VATGerman {
		if taxRate == nil {
			return TotalsBreakdown{}, fmt.Errorf("%w: german_vat requires a tax rate", ErrInvalidRate)
		}
		breakdown.TaxRate = *taxRate
		breakdown.TaxAmount = subtotal.Mul(*taxRate).Div(hundred).RoundBank(2)
		breakdown.GrandTotal = subtotal.Add(breakdown.TaxAmount)
	}

	return breakdown, nil
}

// profileTaxRate converts the profile's configured percentage to a decimal
// rate pointer, preserving absence.
func profileTaxRate(d DefaultsConfig) *decimal.Decimal {
	if d.TaxRate == nil {
		return nil
	}
	rate := decimal.NewFromFloat(*d.TaxRate)
	return &rate
}
