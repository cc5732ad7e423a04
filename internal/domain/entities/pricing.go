package entities

import "github.com/shopspring/decimal"

var (
	// CashMarkup is applied to (purchase + freight) for the cash price.
	CashMarkup = decimal.RequireFromString("1.20")
	// InstallmentMarkup is applied to (purchase + freight) for the installment price.
	InstallmentMarkup = decimal.RequireFromString("1.45")
)

// Totals are the two payment-method prices of a set of part lines.
type Totals struct {
	Cash        float64 `json:"cash_total"`
	Installment float64 `json:"installment_total"`
}

// ComputeTotals sums every line and rounds each total once to 2 decimals.
func ComputeTotals(lines []PartLine) Totals {
	cash := decimal.Zero
	installment := decimal.Zero
	for _, l := range lines {
		cash = cash.Add(lineTotal(l, CashMarkup))
		installment = installment.Add(lineTotal(l, InstallmentMarkup))
	}
	return Totals{
		Cash:        cash.Round(2).InexactFloat64(),
		Installment: installment.Round(2).InexactFloat64(),
	}
}

// UnitCashPrice is the per-unit cash price shown on a printed line.
func UnitCashPrice(l PartLine) float64 {
	return unitCost(l).Mul(CashMarkup).Round(2).InexactFloat64()
}

// LineCashTotal is the cash price of a line, quantity included.
func LineCashTotal(l PartLine) float64 {
	return lineTotal(l, CashMarkup).Round(2).InexactFloat64()
}

func unitCost(l PartLine) decimal.Decimal {
	return decimal.NewFromFloat(l.PurchasePrice).Add(decimal.NewFromFloat(l.FreightPrice))
}

func lineTotal(l PartLine, markup decimal.Decimal) decimal.Decimal {
	return unitCost(l).Mul(markup).Mul(decimal.NewFromInt(int64(l.Quantity)))
}
