package finance_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
)

// hoje fixo para os testes: 15 de março de 2024.
var today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local)

func TestPayablesAging_SomenteDespesasEmAberto(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeDespesa, 100, "2024-03-20", entity.StatusPendente, entity.CategoryTaxas),
		rec(entity.RecordTypeDespesa, 200, "2024-03-01", entity.StatusPago, entity.CategoryMateriais),   // paga, fora
		rec(entity.RecordTypeReceita, 300, "2024-03-10", entity.StatusPendente, entity.CategoryProjeto), // receita, fora
		rec(entity.RecordTypeDespesa, 400, "2024-02-10", entity.StatusAtrasado, entity.CategoryObra),
	}
	aged := finance.PayablesAging(records, today)
	require.Len(t, aged, 2)
}

// A visão olha o banco inteiro: vencimentos de outros meses também entram.
func TestPayablesAging_NaoRestringeAoMes(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeDespesa, 100, "2023-12-01", entity.StatusAtrasado, entity.CategoryTaxas),
		rec(entity.RecordTypeDespesa, 200, "2024-07-01", entity.StatusPendente, entity.CategoryTaxas),
	}
	assert.Len(t, finance.PayablesAging(records, today), 2)
}

func TestPayablesAging_OrdenaPorVencimento(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeDespesa, 1, "2024-04-01", entity.StatusPendente, entity.CategoryTaxas),
		rec(entity.RecordTypeDespesa, 2, "2024-02-01", entity.StatusAtrasado, entity.CategoryTaxas),
		rec(entity.RecordTypeDespesa, 3, "2024-03-15", entity.StatusPendente, entity.CategoryTaxas),
	}
	aged := finance.PayablesAging(records, today)
	require.Len(t, aged, 3)
	assert.Equal(t, "2024-02-01", aged[0].Record.Date)
	assert.Equal(t, "2024-03-15", aged[1].Record.Date)
	assert.Equal(t, "2024-04-01", aged[2].Record.Date)
}

// Conta datada de hoje: DiffDays 0 e "Vence Hoje", independente do fuso.
func TestPayablesAging_VenceHoje(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeDespesa, 100, "2024-03-15", entity.StatusPendente, entity.CategoryTaxas),
	}
	// O mesmo dia civil em qualquer horário deve dar diff zero.
	for _, h := range []int{0, 12, 23} {
		now := time.Date(2024, 3, 15, h, 59, 0, 0, time.Local)
		aged := finance.PayablesAging(records, now)
		require.Len(t, aged, 1)
		assert.Equal(t, 0, aged[0].DiffDays, "hora %d", h)
		assert.Equal(t, "Vence Hoje", aged[0].Label)
	}
}

func TestPayablesAging_Rotulos(t *testing.T) {
	cases := []struct {
		date string
		want string
		diff int
	}{
		{"2024-03-10", "Atrasado 5 dias", -5},
		{"2024-03-14", "Atrasado 1 dias", -1},
		{"2024-03-15", "Vence Hoje", 0},
		{"2024-03-16", "Vence em 1 dias", 1},
		{"2024-03-22", "Vence em 7 dias", 7},
		{"2024-04-15", "Vence em 31 dias", 31},
	}
	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			records := []entity.FinancialRecord{
				rec(entity.RecordTypeDespesa, 100, tc.date, entity.StatusPendente, entity.CategoryTaxas),
			}
			aged := finance.PayablesAging(records, today)
			require.Len(t, aged, 1)
			assert.Equal(t, tc.diff, aged[0].DiffDays)
			assert.Equal(t, tc.want, aged[0].Label)
		})
	}
}

// Virada de mês com fevereiro bissexto: 2024-02-29 visto de 2024-03-01.
func TestPayablesAging_ViradaBissexto(t *testing.T) {
	records := []entity.FinancialRecord{
		rec(entity.RecordTypeDespesa, 100, "2024-02-29", entity.StatusAtrasado, entity.CategoryTaxas),
	}
	aged := finance.PayablesAging(records, time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local))
	require.Len(t, aged, 1)
	assert.Equal(t, -1, aged[0].DiffDays)
	assert.Equal(t, fmt.Sprintf("Atrasado %d dias", 1), aged[0].Label)
}

func TestPayablesAging_Vazio(t *testing.T) {
	assert.Empty(t, finance.PayablesAging(nil, today))
}
