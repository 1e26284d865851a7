// Package money formatea importes enteros en so'm para textos visibles (PDF, Telegram).
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency sufijo de la moneda local.
const Currency = "so'm"

var printer = message.NewPrinter(language.Russian)

// separadores de miles que CLDR usa para ru/uz; se normalizan a espacio simple.
var groupSep = strings.NewReplacer("\u00a0", " ", "\u202f", " ")

// Group inserta separadores de miles: 1234567 → "1 234 567".
func Group(n int64) string {
	return groupSep.Replace(printer.Sprintf("%d", n))
}

// Sum formatea un importe con el sufijo de moneda: 1234567 → "1 234 567 so'm".
func Sum(n int64) string {
	return Group(n) + " " + Currency
}

// SumDecimal como Sum pero desde decimal; trunca los céntimos.
func SumDecimal(d decimal.Decimal) string {
	return Sum(d.Truncate(0).IntPart())
}
