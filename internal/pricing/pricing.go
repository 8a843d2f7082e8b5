package pricing

import "github.com/shopspring/decimal"

// Rates used by the campground. The extra-occupancy fee applies per adult
// beyond the base occupancy, per night, before tax.
const BaseOccupancy = 2

var (
	taxRate        = decimal.RequireFromString("0.14975") // QC combined GST+QST
	depositRate    = decimal.RequireFromString("0.25")
	extraPersonFee = decimal.NewFromInt(6)
)

// roundCurrency rounds to the cent, half away from zero. Rounding happens at
// every intermediate step (base, subtotal, tax, total) so results match the
// amounts printed line by line on a receipt, not a single-shot rounding of
// the algebraic formula.
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ExtraOccupancyFee returns the surcharge for guests beyond the base
// occupancy of two: max(0, guests-2) x $6 x nights. Only adults count as
// guests here; children never enter the formula.
func ExtraOccupancyFee(guestCount, nights int) float64 {
	extra := guestCount - BaseOccupancy
	if extra < 0 {
		extra = 0
	}
	fee := decimal.NewFromInt(int64(extra)).
		Mul(extraPersonFee).
		Mul(decimal.NewFromInt(int64(nights)))
	return roundCurrency(fee).InexactFloat64()
}

// TotalWithTax computes the taxed total for a stay. A zero-night stay costs
// exactly zero regardless of the other inputs.
func TotalWithTax(pricePerNight float64, nights, guestCount int) float64 {
	price := decimal.NewFromFloat(pricePerNight)
	base := roundCurrency(price.Mul(decimal.NewFromInt(int64(nights))))
	fee := decimal.NewFromFloat(ExtraOccupancyFee(guestCount, nights))
	subtotal := roundCurrency(base.Add(fee))
	tax := roundCurrency(subtotal.Mul(taxRate))
	return roundCurrency(subtotal.Add(tax)).InexactFloat64()
}

// Deposit returns 25% of the total price, rounded to the cent.
func Deposit(totalPrice float64) float64 {
	return roundCurrency(decimal.NewFromFloat(totalPrice).Mul(depositRate)).InexactFloat64()
}
