// Package money formata valores monetários na convenção brasileira
// (R$ 1.234,56), usada nos PDFs e nas exportações.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devolve o valor com prefixo R$, separador de milhar e duas casas.
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("R$ %.2f", f)
}

// FormatNumber devolve o valor sem o prefixo de moeda.
func FormatNumber(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("%.2f", f)
}
