package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

func TestReportsCashFlowTotals(t *testing.T) {
	uc := NewReportsUseCase(stubRecords{rows: []entity.FinancialRecord{
		{Type: entity.RecordTypeReceita, Amount: decimal.NewFromInt(1000), Date: "2024-03-05", Status: entity.StatusPago},
		{Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(300), Date: "2024-03-10", Status: entity.StatusPago},
		{Type: entity.RecordTypeReceita, Amount: decimal.NewFromInt(9999), Date: "2024-03-12", Status: entity.StatusPendente},
	}})

	out, err := uc.CashFlow("2024-03")
	require.NoError(t, err)

	assert.Equal(t, "2024-03", out.Month)
	assert.Len(t, out.Days, 31)
	assert.True(t, out.TotalIn.Equal(decimal.NewFromInt(1000)), "pendente fica fora do caixa")
	assert.True(t, out.TotalOut.Equal(decimal.NewFromInt(300)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(700)))
}

func TestReportsPayablesCounters(t *testing.T) {
	uc := NewReportsUseCase(stubRecords{rows: []entity.FinancialRecord{
		{ID: "a", Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(100), Date: "2024-03-10", Status: entity.StatusAtrasado},
		{ID: "b", Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(200), Date: "2024-03-15", Status: entity.StatusPendente},
		{ID: "c", Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(300), Date: "2024-03-20", Status: entity.StatusPendente},
		{ID: "d", Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(400), Date: "2024-04-30", Status: entity.StatusPendente},
		{ID: "e", Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(999), Date: "2024-03-01", Status: entity.StatusPago},
	}})
	uc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local) }

	out, err := uc.Payables()
	require.NoError(t, err)

	assert.Equal(t, 1, out.Overdue)
	assert.Equal(t, 1, out.DueToday)
	assert.Equal(t, 1, out.Next7)
	require.Len(t, out.Items, 4, "paga não é conta a pagar")

	assert.Equal(t, "a", out.Items[0].ID, "ordenado por vencimento")
	assert.Equal(t, "Atrasado 5 dias", out.Items[0].Label)
	assert.Equal(t, "Vence Hoje", out.Items[1].Label)
	assert.Equal(t, "Vence em 5 dias", out.Items[2].Label)
	assert.Equal(t, 46, out.Items[3].DiffDays)
}

func TestReportsStatement(t *testing.T) {
	uc := NewReportsUseCase(stubRecords{rows: []entity.FinancialRecord{
		{Type: entity.RecordTypeReceita, Amount: decimal.NewFromInt(150000), Date: "2024-01-10", Status: entity.StatusPago},
		{Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(1200), Date: "2024-01-20", Status: entity.StatusPago, Category: entity.CategoryAdministrativo},
	}})

	out, err := uc.Statement("2024-01")
	require.NoError(t, err)
	assert.True(t, out.GrossRevenue.Equal(decimal.NewFromInt(150000)))
	assert.True(t, out.FixedExpenses.Equal(decimal.NewFromInt(1200)))
	assert.True(t, out.NetResult.Equal(decimal.NewFromInt(148800)))
}
