package cart

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var arPrinter = message.NewPrinter(language.MustParse("ar-SA"))

// FormatPrice renders an amount with ar-SA digit grouping and the riyal
// suffix. Applied everywhere a price is shown: catalog card, product page,
// cart, checkout summary.
func FormatPrice(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return arPrinter.Sprintf("%v ر.س", number.Decimal(f, number.MaxFractionDigits(2)))
}
