package finance

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

// MonthPoint é um ponto da série mensal de faturamento.
type MonthPoint struct {
	Month   string          `json:"month"` // YYYY-MM
	Label   string          `json:"label"` // ex: "Out/2023"
	Revenue decimal.Decimal `json:"revenue"`
	Expense decimal.Decimal `json:"expense"`
}

// MonthlySeries agrupa todos os lançamentos por mês de competência, somando
// receitas e despesas. Visão de competência: inclui pendentes e atrasados,
// não só o pago. A saída sai em ordem cronológica, não na ordem de chegada.
func MonthlySeries(records []entity.FinancialRecord) []MonthPoint {
	byMonth := make(map[string]*MonthPoint)
	for _, r := range records {
		if len(r.Date) < 7 {
			continue
		}
		key := r.Date[:7]
		p, ok := byMonth[key]
		if !ok {
			p = &MonthPoint{Month: key, Label: labelFor(key)}
			byMonth[key] = p
		}
		if r.Type == entity.RecordTypeReceita {
			p.Revenue = p.Revenue.Add(r.Amount)
		} else {
			p.Expense = p.Expense.Add(r.Amount)
		}
	}

	out := make([]MonthPoint, 0, len(byMonth))
	for _, p := range byMonth {
		out = append(out, *p)
	}
	// A chave YYYY-MM ordena cronologicamente como string.
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func labelFor(month string) string {
	y, m, ok := splitMonth(month)
	if !ok {
		return month
	}
	return monthShortPT[m-1] + "/" + strconv.Itoa(y)
}

// CategoryTotal é o total de despesas de uma categoria.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// ExpensesByCategory soma as despesas por categoria, qualquer status,
// ordenando da maior para a menor (empate desempata por nome).
func ExpensesByCategory(records []entity.FinancialRecord) []CategoryTotal {
	byCategory := make(map[string]decimal.Decimal)
	for _, r := range records {
		if r.Type != entity.RecordTypeDespesa {
			continue
		}
		byCategory[r.Category] = byCategory[r.Category].Add(r.Amount)
	}

	out := make([]CategoryTotal, 0, len(byCategory))
	for cat, total := range byCategory {
		out = append(out, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ProposalStats resume a carteira de propostas por status.
type ProposalStats struct {
	Approved int    `json:"approved"`
	Pending  int    `json:"pending"`
	Rejected int    `json:"rejected"`
	Total    int    `json:"total"`
	// ConversionRate é Aprovadas/Total em percentual com uma casa decimal,
	// ex: "33.3". Carteira vazia devolve "0", nunca NaN.
	ConversionRate string `json:"conversion_rate"`
}

// SummarizeProposals conta propostas por status e calcula a taxa de conversão.
func SummarizeProposals(proposals []entity.Proposal) ProposalStats {
	var s ProposalStats
	for _, p := range proposals {
		switch p.Status {
		case entity.StatusAprovado:
			s.Approved++
		case entity.StatusPendente:
			s.Pending++
		case entity.StatusRejeitado:
			s.Rejected++
		}
	}
	s.Total = len(proposals)
	if s.Total > 0 {
		rate := float64(s.Approved) / float64(s.Total) * 100
		s.ConversionRate = strconv.FormatFloat(rate, 'f', 1, 64)
	} else {
		s.ConversionRate = "0"
	}
	return s
}
