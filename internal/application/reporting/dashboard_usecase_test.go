package reporting

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

type stubRecords struct{ rows []entity.FinancialRecord }

func (s stubRecords) Create(*entity.FinancialRecord) error             { return nil }
func (s stubRecords) GetByID(string) (*entity.FinancialRecord, error)  { return nil, nil }
func (s stubRecords) Update(*entity.FinancialRecord) error             { return nil }
func (s stubRecords) Delete(string) error                              { return nil }
func (s stubRecords) ListAll() ([]entity.FinancialRecord, error)       { return s.rows, nil }

type stubProjects struct{ rows []entity.Project }

func (s stubProjects) Create(*entity.Project) error                  { return nil }
func (s stubProjects) GetByID(string) (*entity.Project, error)       { return nil, nil }
func (s stubProjects) Update(*entity.Project) error                  { return nil }
func (s stubProjects) List(int, int) ([]*entity.Project, error)      { return nil, nil }
func (s stubProjects) ListAll() ([]entity.Project, error)            { return s.rows, nil }

type stubProposals struct{ rows []entity.Proposal }

func (s stubProposals) Create(*entity.Proposal) error                { return nil }
func (s stubProposals) GetByID(string) (*entity.Proposal, error)     { return nil, nil }
func (s stubProposals) UpdateStatus(string, string) error            { return nil }
func (s stubProposals) List(int, int) ([]*entity.Proposal, error)    { return nil, nil }
func (s stubProposals) ListAll() ([]entity.Proposal, error)          { return s.rows, nil }

type stubPayments struct{ rows []entity.PaymentRecord }

func (s stubPayments) Create(*entity.PaymentRecord) error               { return nil }
func (s stubPayments) GetByID(string) (*entity.PaymentRecord, error)    { return nil, nil }
func (s stubPayments) Update(*entity.PaymentRecord) error               { return nil }
func (s stubPayments) Delete(string) error                              { return nil }
func (s stubPayments) List(int, int) ([]*entity.PaymentRecord, error)   { return nil, nil }
func (s stubPayments) ListAll() ([]entity.PaymentRecord, error)         { return s.rows, nil }

func item(name string, qty, price int64) entity.ProposalItem {
	return entity.ProposalItem{
		Name:      name,
		Quantity:  decimal.NewFromInt(qty),
		UnitPrice: decimal.NewFromInt(price),
	}
}

func TestDashboardSummary(t *testing.T) {
	records := stubRecords{rows: []entity.FinancialRecord{
		{Type: entity.RecordTypeReceita, Amount: decimal.NewFromInt(150000), Date: "2024-01-10", Status: entity.StatusPago},
		{Type: entity.RecordTypeReceita, Amount: decimal.NewFromInt(50000), Date: "2024-02-05", Status: entity.StatusPendente},
		{Type: entity.RecordTypeDespesa, Amount: decimal.NewFromInt(30000), Date: "2024-01-20", Status: entity.StatusPago, Category: entity.CategoryMateriais},
	}}
	projects := stubProjects{rows: []entity.Project{
		{ID: "p1", ClientID: "c1", Status: entity.StatusEmAndamento},
		{ID: "p2", ClientID: "c1", Status: entity.StatusEmAndamento},
		{ID: "p3", ClientID: "c2", Status: entity.StatusEmAndamento},
		{ID: "p4", ClientID: "c3", Status: entity.StatusConcluido},
	}}
	proposals := stubProposals{rows: []entity.Proposal{
		{Status: entity.StatusAprovado, Items: []entity.ProposalItem{item("Projeto Estrutural - Residência", 1, 12000)}},
		{Status: entity.StatusPendente, Items: []entity.ProposalItem{item("Projeto Estrutural - Galpão", 1, 30000)}},
		{Status: entity.StatusRejeitado, Items: []entity.ProposalItem{item("Laudo Técnico", 1, 99999)}},
	}}
	payments := stubPayments{rows: []entity.PaymentRecord{
		{Name: "José", Value: decimal.NewFromInt(1800), Status: entity.StatusPago},
		{Name: "José", Value: decimal.NewFromInt(1200), Status: entity.StatusPago},
		{Name: "Maria", Value: decimal.NewFromInt(2500), Status: entity.StatusPago},
		{Name: "Pedro", Value: decimal.NewFromInt(9999), Status: entity.StatusAgendado},
	}}

	uc := NewDashboardUseCase(records, projects, proposals, payments)
	out, err := uc.Summary()
	require.NoError(t, err)

	// Competência: a receita pendente de fevereiro também conta.
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(200000)), "got %s", out.TotalRevenue)

	assert.Equal(t, 3, out.ActiveProjects)
	assert.Equal(t, 2, out.ActiveClients, "duas obras do mesmo cliente contam um cliente")

	assert.Equal(t, 1, out.ProposalStats.Approved)
	assert.Equal(t, "33.3", out.ProposalStats.ConversionRate)

	require.Len(t, out.MonthlySeries, 2)
	assert.Equal(t, "2024-01", out.MonthlySeries[0].Month)

	// Rejeitadas ficam fora; os dois projetos estruturais agrupam pelo trecho
	// antes do " - ".
	require.Len(t, out.RevenueByService, 1)
	assert.Equal(t, "Projeto Estrutural", out.RevenueByService[0].Name)
	assert.True(t, out.RevenueByService[0].Total.Equal(decimal.NewFromInt(42000)))

	// Só o volume pago entra; maior volume primeiro.
	require.Len(t, out.TeamPerformance, 2)
	assert.Equal(t, "José", out.TeamPerformance[0].Name)
	assert.True(t, out.TeamPerformance[0].Total.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "Maria", out.TeamPerformance[1].Name)
}

func TestDashboardSummaryEmpty(t *testing.T) {
	uc := NewDashboardUseCase(stubRecords{}, stubProjects{}, stubProposals{}, stubPayments{})
	out, err := uc.Summary()
	require.NoError(t, err)

	assert.True(t, out.TotalRevenue.IsZero())
	assert.Zero(t, out.ActiveProjects)
	assert.Zero(t, out.ActiveClients)
	assert.Equal(t, "0", out.ProposalStats.ConversionRate)
	assert.Empty(t, out.RevenueByService)
	assert.Empty(t, out.TeamPerformance)
}

func TestRevenueByServiceTopFive(t *testing.T) {
	rows := make([]entity.Proposal, 0, 7)
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	for i, n := range names {
		rows = append(rows, entity.Proposal{
			Status: entity.StatusPendente,
			Items:  []entity.ProposalItem{item(n, 1, int64(1000*(i+1)))},
		})
	}
	uc := NewDashboardUseCase(stubRecords{}, stubProjects{}, stubProposals{rows: rows}, stubPayments{})
	out, err := uc.Summary()
	require.NoError(t, err)

	require.Len(t, out.RevenueByService, 5)
	assert.Equal(t, "G", out.RevenueByService[0].Name, "corta nos cinco maiores")
	assert.Equal(t, "C", out.RevenueByService[4].Name)
}
