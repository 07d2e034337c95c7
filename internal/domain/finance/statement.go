package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

// variableCostCategories são as categorias de despesa ligadas diretamente à
// produção; tudo fora delas entra como despesa fixa no DRE.
var variableCostCategories = map[string]bool{
	entity.CategoryMateriais: true,
	entity.CategoryMaoDeObra: true,
	entity.CategoryObra:      true,
	entity.CategoryTaxas:     true,
}

// Statement é o DRE gerencial de um mês de competência. Os seis valores são
// expostos separadamente porque a tela apresenta o demonstrativo completo,
// não só o resultado líquido.
type Statement struct {
	Month         string          `json:"month"` // YYYY-MM
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	VariableCosts decimal.Decimal `json:"variable_costs"`
	GrossProfit   decimal.Decimal `json:"gross_profit"` // margem de contribuição
	FixedExpenses decimal.Decimal `json:"fixed_expenses"`
	NetResult     decimal.Decimal `json:"net_result"`
}

// BuildStatement monta o DRE do mês selecionado. Visão de competência
// (todos os status). Mês sem lançamentos devolve o demonstrativo zerado.
// Invariantes: GrossProfit = GrossRevenue - VariableCosts e
// NetResult = GrossProfit - FixedExpenses, sempre.
func BuildStatement(records []entity.FinancialRecord, month string) Statement {
	s := Statement{Month: month}
	for _, r := range records {
		if !inMonth(r.Date, month) {
			continue
		}
		switch {
		case r.Type == entity.RecordTypeReceita:
			s.GrossRevenue = s.GrossRevenue.Add(r.Amount)
		case variableCostCategories[r.Category]:
			s.VariableCosts = s.VariableCosts.Add(r.Amount)
		default:
			s.FixedExpenses = s.FixedExpenses.Add(r.Amount)
		}
	}
	s.GrossProfit = s.GrossRevenue.Sub(s.VariableCosts)
	s.NetResult = s.GrossProfit.Sub(s.FixedExpenses)
	return s
}
