package finance

import (
	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

// DayFlow é o movimento de caixa de um dia do mês selecionado.
type DayFlow struct {
	Day     int             `json:"day"`
	In      decimal.Decimal `json:"in"`      // entradas (Receita paga)
	Out     decimal.Decimal `json:"out"`     // saídas (Despesa paga)
	Balance decimal.Decimal `json:"balance"` // saldo acumulado desde o dia 1
}

// CashFlow produz a série diária do fluxo de caixa realizado do mês.
//
// Visão de caixa: só lançamentos com status Pago entram, ao contrário da
// série mensal de competência. O saldo acumula dia a dia partindo de zero.
// Há uma posição para cada dia-calendário do mês (bissextos inclusos);
// mês inválido devolve série vazia.
func CashFlow(records []entity.FinancialRecord, month string) []DayFlow {
	year, m, ok := splitMonth(month)
	if !ok {
		return nil
	}
	total := daysInMonth(year, m)

	flows := make([]DayFlow, total)
	for i := range flows {
		flows[i].Day = i + 1
	}

	for _, r := range records {
		if r.Status != entity.StatusPago || !inMonth(r.Date, month) {
			continue
		}
		// O dia sai direto da string YYYY-MM-DD, sem parse de data.
		_, _, day, ok := splitDate(r.Date)
		if !ok || day > total {
			continue
		}
		f := &flows[day-1]
		if r.Type == entity.RecordTypeReceita {
			f.In = f.In.Add(r.Amount)
		} else {
			f.Out = f.Out.Add(r.Amount)
		}
	}

	var balance decimal.Decimal
	for i := range flows {
		balance = balance.Add(flows[i].In).Sub(flows[i].Out)
		flows[i].Balance = balance
	}
	return flows
}
