package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var formats = map[string]accounting.Accounting{
	"IDR": {Symbol: "Rp ", Precision: 0, Thousand: ".", Decimal: ","},
	"USD": {Symbol: "$", Precision: 2},
	"EUR": {Symbol: "€", Precision: 2, Thousand: ".", Decimal: ","},
}

// Money renders an amount for display in the given ISO currency. Unknown
// currencies fall back to a plain "CODE amount" form.
func Money(amount decimal.Decimal, currency string) string {
	if ac, ok := formats[currency]; ok {
		return ac.FormatMoneyDecimal(amount)
	}
	ac := accounting.Accounting{Symbol: currency + " ", Precision: 2}
	return ac.FormatMoneyDecimal(amount)
}
