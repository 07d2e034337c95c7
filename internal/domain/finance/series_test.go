package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
)

func rec(typ string, amount int64, date, status, category string) entity.FinancialRecord {
	return entity.FinancialRecord{
		Type:     typ,
		Amount:   decimal.NewFromInt(amount),
		Date:     date,
		Status:   status,
		Category: category,
	}
}

func TestMonthlySeries_Vazia(t *testing.T) {
	assert.Empty(t, finance.MonthlySeries(nil))
	assert.Empty(t, finance.MonthlySeries([]entity.FinancialRecord{}))
}

// A série é de competência: pendentes e atrasados contam junto com pagos.
func TestMonthlySeries_IncluiTodosOsStatus(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 1000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 500, "2023-10-20", entity.StatusPendente, entity.CategoryObra),
		rec(entity.RecordTypeDespesa, 300, "2023-10-10", entity.StatusAtrasado, entity.CategoryMateriais),
	}
	serie := finance.MonthlySeries(records)
	require.Len(t, serie, 1)
	assert.Equal(t, "2023-10", serie[0].Month)
	assert.Equal(t, "Out/2023", serie[0].Label)
	assert.True(t, serie[0].Revenue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, serie[0].Expense.Equal(decimal.NewFromInt(300)))
}

// A saída sai em ordem cronológica, não na ordem de chegada dos registros.
func TestMonthlySeries_OrdemCronologica(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 10, "2024-01-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 20, "2023-11-01", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeDespesa, 5, "2023-12-15", entity.StatusPendente, entity.CategoryTaxas),
	}
	serie := finance.MonthlySeries(records)
	require.Len(t, serie, 3)
	assert.Equal(t, []string{"2023-11", "2023-12", "2024-01"},
		[]string{serie[0].Month, serie[1].Month, serie[2].Month})
}

// Propriedade de conservação: a soma das receitas da série equivale à soma
// de todas as Receitas da entrada.
func TestMonthlySeries_ConservaTotais(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 150000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 12500, "2023-12-22", entity.StatusPendente, entity.CategoryObra),
		rec(entity.RecordTypeDespesa, 5000, "2023-10-10", entity.StatusPago, entity.CategoryMateriais),
		rec(entity.RecordTypeDespesa, 2500, "2024-01-05", entity.StatusPendente, entity.CategoryAdministrativo),
	}
	var wantRevenue, gotRevenue decimal.Decimal
	for _, r := range records {
		if r.Type == entity.RecordTypeReceita {
			wantRevenue = wantRevenue.Add(r.Amount)
		}
	}
	for _, p := range finance.MonthlySeries(records) {
		gotRevenue = gotRevenue.Add(p.Revenue)
	}
	assert.True(t, gotRevenue.Equal(wantRevenue),
		"soma da série (%s) difere do total de receitas (%s)", gotRevenue, wantRevenue)
}

func TestExpensesByCategory_OrdenaDecrescente(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeDespesa, 100, "2023-10-01", entity.StatusPago, entity.CategoryTaxas),
		rec(entity.RecordTypeDespesa, 900, "2023-10-02", entity.StatusPendente, entity.CategoryMateriais),
		rec(entity.RecordTypeDespesa, 400, "2023-11-10", entity.StatusPago, entity.CategoryMateriais),
		rec(entity.RecordTypeReceita, 5000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
	}
	totals := finance.ExpensesByCategory(records)
	require.Len(t, totals, 2, "receitas não entram no agrupamento de despesas")
	assert.Equal(t, entity.CategoryMateriais, totals[0].Category)
	assert.True(t, totals[0].Total.Equal(decimal.NewFromInt(1300)))
	assert.Equal(t, entity.CategoryTaxas, totals[1].Category)
}

func TestExpensesByCategory_Vazia(t *testing.T) {
	assert.Empty(t, finance.ExpensesByCategory(nil))
}

func TestSummarizeProposals_ContagemETaxa(t *testing.T) {
	proposals := []entity.Proposal{
		{Status: entity.StatusAprovado},
		{Status: entity.StatusAprovado},
		{Status: entity.StatusPendente},
		{Status: entity.StatusRejeitado},
	}
	s := finance.SummarizeProposals(proposals)
	assert.Equal(t, 2, s.Approved)
	assert.Equal(t, 1, s.Pending)
	assert.Equal(t, 1, s.Rejected)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, "50.0", s.ConversionRate)
}

// Carteira vazia: taxa "0", nunca NaN nem divisão por zero.
func TestSummarizeProposals_CarteiraVazia(t *testing.T) {
	s := finance.SummarizeProposals(nil)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, "0", s.ConversionRate)
}

func TestSummarizeProposals_UmaDeTres(t *testing.T) {
	proposals := []entity.Proposal{
		{Status: entity.StatusAprovado},
		{Status: entity.StatusPendente},
		{Status: entity.StatusPendente},
	}
	assert.Equal(t, "33.3", finance.SummarizeProposals(proposals).ConversionRate)
}
