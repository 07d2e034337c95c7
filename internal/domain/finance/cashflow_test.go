package finance_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
)

// A série tem uma posição por dia-calendário do mês.
func TestCashFlow_DiasDoMes(t *testing.T) {
	assert.Len(t, finance.CashFlow(nil, "2023-10"), 31)
	assert.Len(t, finance.CashFlow(nil, "2023-11"), 30)
	assert.Len(t, finance.CashFlow(nil, "2023-02"), 28)
	assert.Len(t, finance.CashFlow(nil, "2024-02"), 29, "2024 é bissexto")
	assert.Empty(t, finance.CashFlow(nil, "não-é-mês"))
}

// Visão de caixa: apenas lançamentos Pagos movimentam entradas e saídas.
func TestCashFlow_ApenasPagos(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 1000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 9999, "2023-10-06", entity.StatusPendente, entity.CategoryProjeto),
		rec(entity.RecordTypeDespesa, 300, "2023-10-10", entity.StatusPago, entity.CategoryMateriais),
		rec(entity.RecordTypeDespesa, 8888, "2023-10-11", entity.StatusAtrasado, entity.CategoryTaxas),
	}
	serie := finance.CashFlow(records, "2023-10")
	require.Len(t, serie, 31)

	assert.True(t, serie[4].In.Equal(decimal.NewFromInt(1000)), "dia 5")
	assert.True(t, serie[5].In.IsZero(), "pendente não entra no fluxo realizado")
	assert.True(t, serie[9].Out.Equal(decimal.NewFromInt(300)), "dia 10")
	assert.True(t, serie[10].Out.IsZero(), "atrasado não entra no fluxo realizado")
}

// O saldo do último dia equivale a (Receitas pagas) - (Despesas pagas) do mês.
func TestCashFlow_SaldoFinal(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 1000, "2023-10-05", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeReceita, 250, "2023-10-28", entity.StatusPago, entity.CategoryObra),
		rec(entity.RecordTypeDespesa, 300, "2023-10-10", entity.StatusPago, entity.CategoryMateriais),
		rec(entity.RecordTypeDespesa, 9999, "2023-10-15", entity.StatusPendente, entity.CategoryTaxas),
		rec(entity.RecordTypeReceita, 777, "2023-11-01", entity.StatusPago, entity.CategoryProjeto), // outro mês
	}
	serie := finance.CashFlow(records, "2023-10")
	require.Len(t, serie, 31)
	assert.True(t, serie[30].Balance.Equal(decimal.NewFromInt(950)),
		"saldo final deve ser 1000+250-300, ignorando pendentes e outros meses")
}

// O acumulado transporta saldo dia a dia, partindo de zero.
func TestCashFlow_AcumuladoDiaADia(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeReceita, 100, "2024-02-01", entity.StatusPago, entity.CategoryProjeto),
		rec(entity.RecordTypeDespesa, 40, "2024-02-02", entity.StatusPago, entity.CategoryTaxas),
	}
	serie := finance.CashFlow(records, "2024-02")
	require.Len(t, serie, 29)
	assert.True(t, serie[0].Balance.Equal(decimal.NewFromInt(100)))
	assert.True(t, serie[1].Balance.Equal(decimal.NewFromInt(60)))
	assert.True(t, serie[28].Balance.Equal(decimal.NewFromInt(60)), "dias sem movimento carregam o saldo")
}
