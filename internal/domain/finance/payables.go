package finance

import (
	"fmt"
	"sort"
	"time"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
)

// AgedPayable é uma conta a pagar com a posição de vencimento calculada.
type AgedPayable struct {
	Record   entity.FinancialRecord `json:"record"`
	DiffDays int                    `json:"diff_days"` // negativo = vencida
	Label    string                 `json:"label"`
}

// PayablesAging lista as despesas em aberto (Pendente ou Atrasado) do banco
// inteiro — esta visão nunca é restrita ao mês selecionado — ordenadas por
// vencimento, com a diferença inteira de dias em relação a hoje.
//
// O vencimento é reconstruído a partir dos componentes ano/mês/dia da string
// ISO e comparado com a data civil de "hoje" (normalizada para meia-noite
// local antes da conversão): uma conta datada de hoje resulta sempre em
// DiffDays == 0, independente do offset do fuso.
func PayablesAging(records []entity.FinancialRecord, today time.Time) []AgedPayable {
	ty, tm, td := today.Date()
	todayCivil := civilDate(ty, int(tm), td)

	out := make([]AgedPayable, 0)
	for _, r := range records {
		if r.Type != entity.RecordTypeDespesa {
			continue
		}
		if r.Status != entity.StatusPendente && r.Status != entity.StatusAtrasado {
			continue
		}
		y, m, d, ok := splitDate(r.Date)
		if !ok {
			continue
		}
		diff := int(civilDate(y, m, d).Sub(todayCivil).Hours() / 24)
		out = append(out, AgedPayable{Record: r, DiffDays: diff, Label: agingLabel(diff)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Record.Date < out[j].Record.Date
	})
	return out
}

func agingLabel(diffDays int) string {
	switch {
	case diffDays < 0:
		return fmt.Sprintf("Atrasado %d dias", -diffDays)
	case diffDays == 0:
		return "Vence Hoje"
	default:
		return fmt.Sprintf("Vence em %d dias", diffDays)
	}
}
