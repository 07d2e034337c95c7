package reporting

import (
	"time"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/finance"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// ReportsUseCase produz os relatórios financeiros da tela de relatórios:
// DRE mensal, fluxo de caixa diário e contas a pagar.
type ReportsUseCase struct {
	records repository.FinancialRecordRepository
	now     func() time.Time
}

// NewReportsUseCase constrói o caso de uso. now é injetável só para teste.
func NewReportsUseCase(records repository.FinancialRecordRepository) *ReportsUseCase {
	return &ReportsUseCase{records: records, now: time.Now}
}

// Statement monta o DRE do mês informado (YYYY-MM).
func (uc *ReportsUseCase) Statement(month string) (*finance.Statement, error) {
	records, err := uc.records.ListAll()
	if err != nil {
		return nil, err
	}
	s := finance.BuildStatement(records, month)
	return &s, nil
}

// CashFlow monta a série diária do fluxo de caixa realizado do mês.
func (uc *ReportsUseCase) CashFlow(month string) (*dto.CashFlowReportDTO, error) {
	records, err := uc.records.ListAll()
	if err != nil {
		return nil, err
	}
	days := finance.CashFlow(records, month)

	out := &dto.CashFlowReportDTO{Month: month, Days: days}
	for _, d := range days {
		out.TotalIn = out.TotalIn.Add(d.In)
		out.TotalOut = out.TotalOut.Add(d.Out)
	}
	if n := len(days); n > 0 {
		out.Balance = days[n-1].Balance
	}
	return out, nil
}

// Payables lista as despesas em aberto do banco inteiro com a posição de
// vencimento em relação a hoje, mais os contadores da régua de cobrança.
func (uc *ReportsUseCase) Payables() (*dto.PayablesReportDTO, error) {
	records, err := uc.records.ListAll()
	if err != nil {
		return nil, err
	}
	aged := finance.PayablesAging(records, uc.now())

	out := &dto.PayablesReportDTO{Items: make([]dto.PayableDTO, 0, len(aged))}
	for _, a := range aged {
		switch {
		case a.DiffDays < 0:
			out.Overdue++
		case a.DiffDays == 0:
			out.DueToday++
		case a.DiffDays <= 7:
			out.Next7++
		}
		out.Items = append(out.Items, dto.PayableDTO{
			ID:          a.Record.ID,
			Description: a.Record.Description,
			Category:    a.Record.Category,
			Date:        a.Record.Date,
			Amount:      a.Record.Amount,
			Status:      a.Record.Status,
			DiffDays:    a.DiffDays,
			Label:       a.Label,
		})
	}
	return out, nil
}
