package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
)

// DashboardSummaryDTO resposta de GET /api/dashboard/summary.
// Visão de competência: os totais incluem lançamentos pendentes para dar
// retorno visual imediato ao que foi lançado.
type DashboardSummaryDTO struct {
	TotalRevenue     decimal.Decimal         `json:"total_revenue"`
	ActiveProjects   int                     `json:"active_projects"`
	ActiveClients    int                     `json:"active_clients"` // clientes distintos com obra Em Andamento
	ProposalStats    finance.ProposalStats   `json:"proposal_stats"`
	MonthlySeries    []finance.MonthPoint    `json:"monthly_series"`
	ExpensesByCat    []finance.CategoryTotal `json:"expenses_by_category"`
	RevenueByService []ServiceRevenueDTO     `json:"revenue_by_service"` // top 5
	TeamPerformance  []TeamVolumeDTO         `json:"team_performance"`   // top 5
}

// ServiceRevenueDTO receita em pipeline por serviço (propostas não rejeitadas).
type ServiceRevenueDTO struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// TeamVolumeDTO volume pago por recebedor.
type TeamVolumeDTO struct {
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

// CashFlowReportDTO resposta de GET /api/reports/cashflow.
type CashFlowReportDTO struct {
	Month    string            `json:"month"`
	Days     []finance.DayFlow `json:"days"`
	TotalIn  decimal.Decimal   `json:"total_in"`
	TotalOut decimal.Decimal   `json:"total_out"`
	Balance  decimal.Decimal   `json:"balance"` // saldo do último dia
}

// PayableDTO conta a pagar com posição de vencimento.
type PayableDTO struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	DiffDays    int             `json:"diff_days"`
	Label       string          `json:"label"`
}

// PayablesReportDTO resposta de GET /api/reports/payables.
type PayablesReportDTO struct {
	Overdue  int          `json:"overdue"`   // diff < 0
	DueToday int          `json:"due_today"` // diff == 0
	Next7    int          `json:"next_7"`    // 0 < diff <= 7
	Items    []PayableDTO `json:"items"`
}
