package reporting

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

const topN = 5

// DashboardUseCase monta o resumo executivo exibido na tela inicial.
// Carrega os dados em memória e delega as derivações ao pacote finance.
type DashboardUseCase struct {
	records   repository.FinancialRecordRepository
	projects  repository.ProjectRepository
	proposals repository.ProposalRepository
	payments  repository.PaymentRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	records repository.FinancialRecordRepository,
	projects repository.ProjectRepository,
	proposals repository.ProposalRepository,
	payments repository.PaymentRepository,
) *DashboardUseCase {
	return &DashboardUseCase{records: records, projects: projects, proposals: proposals, payments: payments}
}

// Summary calcula o resumo completo do painel.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	records, err := uc.records.ListAll()
	if err != nil {
		return nil, err
	}
	projects, err := uc.projects.ListAll()
	if err != nil {
		return nil, err
	}
	proposals, err := uc.proposals.ListAll()
	if err != nil {
		return nil, err
	}
	payments, err := uc.payments.ListAll()
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardSummaryDTO{
		ProposalStats:    finance.SummarizeProposals(proposals),
		MonthlySeries:    finance.MonthlySeries(records),
		ExpensesByCat:    finance.ExpensesByCategory(records),
		RevenueByService: revenueByService(proposals),
		TeamPerformance:  teamPerformance(payments),
	}

	// Visão de competência: toda receita lançada conta, paga ou não.
	for _, r := range records {
		if r.Type == entity.RecordTypeReceita {
			out.TotalRevenue = out.TotalRevenue.Add(r.Amount)
		}
	}

	activeClients := make(map[string]bool)
	for _, p := range projects {
		if p.Status != entity.StatusEmAndamento {
			continue
		}
		out.ActiveProjects++
		if p.ClientID != "" {
			activeClients[p.ClientID] = true
		}
	}
	out.ActiveClients = len(activeClients)

	return out, nil
}

// revenueByService agrega a receita em pipeline por serviço a partir dos
// itens das propostas não rejeitadas. O nome do serviço é o trecho antes do
// primeiro " - " do item (itens livres usam o nome inteiro).
func revenueByService(proposals []entity.Proposal) []dto.ServiceRevenueDTO {
	totals := make(map[string]decimal.Decimal)
	for _, p := range proposals {
		if p.Status == entity.StatusRejeitado {
			continue
		}
		for _, item := range p.Items {
			name := serviceGroupName(item.Name)
			totals[name] = totals[name].Add(item.Subtotal())
		}
	}

	out := make([]dto.ServiceRevenueDTO, 0, len(totals))
	for name, total := range totals {
		out = append(out, dto.ServiceRevenueDTO{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}

func serviceGroupName(itemName string) string {
	if head, _, found := strings.Cut(itemName, " - "); found {
		return strings.TrimSpace(head)
	}
	return itemName
}

// teamPerformance soma o volume pago por recebedor e mantém os maiores.
func teamPerformance(payments []entity.PaymentRecord) []dto.TeamVolumeDTO {
	totals := make(map[string]decimal.Decimal)
	for _, p := range payments {
		if p.Status != entity.StatusPago {
			continue
		}
		totals[p.Name] = totals[p.Name].Add(p.Value)
	}

	out := make([]dto.TeamVolumeDTO, 0, len(totals))
	for name, total := range totals {
		out = append(out, dto.TeamVolumeDTO{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
