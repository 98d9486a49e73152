package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a price with English thousands separators and a
// leading "$": 25000 -> "$25,000", 27999.5 -> "$27,999.5".
func FormatPrice(price float64) string {
	return "$" + pricePrinter.Sprint(number.Decimal(price, number.MaxFractionDigits(3)))
}
