// Package money formats amounts the way the dealer quotes them: Mexican
// pesos, es-MX grouping, whole-peso precision.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Format renders n as an MXN currency string with no fraction digits.
// Non-finite input formats as "$0".
func Format(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "$0"
	}
	return printer.Sprintf("$%v", number.Decimal(math.Round(n), number.MaxFractionDigits(0)))
}
