package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
)

// Exemplo de referência: receita 150000 + despesa 1200 (Taxas) em 2023-10.
func TestBuildStatement_ExemploReferencia(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 150000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeDespesa, 1200, "2023-10-15", entity.StatusPago, entity.CategoryTaxas),
	}
	s := finance.BuildStatement(records, "2023-10")

	assert.True(t, s.GrossRevenue.Equal(decimal.NewFromInt(150000)))
	assert.True(t, s.VariableCosts.Equal(decimal.NewFromInt(1200)))
	assert.True(t, s.GrossProfit.Equal(decimal.NewFromInt(148800)))
	assert.True(t, s.FixedExpenses.IsZero())
	assert.True(t, s.NetResult.Equal(decimal.NewFromInt(148800)))
}

// Categorias fora de {Materiais, Mão de Obra, Obra, Taxas} são despesa fixa.
func TestBuildStatement_SeparaVariavelDeFixa(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 10000, "2024-01-10", entity.StatusPendente, entity.CategoryObra),
		rec(entity.RecordTypeDespesa, 3000, "2024-01-12", entity.StatusPago, entity.CategoryMaoDeObra),
		rec(entity.RecordTypeDespesa, 1500, "2024-01-20", entity.StatusPago, entity.CategoryAdministrativo),
		rec(entity.RecordTypeDespesa, 500, "2024-01-25", entity.StatusPendente, "Aluguel"),
	}
	s := finance.BuildStatement(records, "2024-01")

	assert.True(t, s.VariableCosts.Equal(decimal.NewFromInt(3000)))
	assert.True(t, s.FixedExpenses.Equal(decimal.NewFromInt(2000)))
	assert.True(t, s.GrossProfit.Equal(decimal.NewFromInt(7000)))
	assert.True(t, s.NetResult.Equal(decimal.NewFromInt(5000)))
}

// As identidades do demonstrativo valem para qualquer mês, inclusive vazio.
func TestBuildStatement_Identidades(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 150000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeDespesa, 5000, "2023-10-10", entity.StatusPago, entity.CategoryMateriais),
		rec(entity.RecordTypeDespesa, 2500, "2024-01-05", entity.StatusPendente, entity.CategoryAdministrativo),
	}
	for _, month := range []string{"2023-10", "2024-01", "2025-06"} {
		s := finance.BuildStatement(records, month)
		assert.True(t, s.GrossProfit.Equal(s.GrossRevenue.Sub(s.VariableCosts)), "mês %s", month)
		assert.True(t, s.NetResult.Equal(s.GrossProfit.Sub(s.FixedExpenses)), "mês %s", month)
	}
}

func TestBuildStatement_MesSemLancamentos(t *testing.T) {
	s := finance.BuildStatement(nil, "2025-06")
	assert.True(t, s.GrossRevenue.IsZero())
	assert.True(t, s.VariableCosts.IsZero())
	assert.True(t, s.GrossProfit.IsZero())
	assert.True(t, s.FixedExpenses.IsZero())
	assert.True(t, s.NetResult.IsZero())
}

// A seleção de mês é prefixo de string: 2023-10 não arrasta 2023-01 nem 2023-11.
func TestBuildStatement_FiltroPorPrefixo(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 100, "2023-01-15", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 200, "2023-10-01", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 400, "2023-11-01", entity.StatusPago, entity.CategoryProjeto),
	}
	s := finance.BuildStatement(records, "2023-10")
	assert.True(t, s.GrossRevenue.Equal(decimal.NewFromInt(200)))
}
