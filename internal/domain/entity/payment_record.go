package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord representa um pagamento de mão de obra (folha/diária).
//
// Cada pagamento mantém um lançamento financeiro espelho (Despesa, categoria
// Mão de Obra) com o MESMO ID. Criação, atualização e exclusão do espelho
// acontecem na mesma transação do pagamento.
type PaymentRecord struct {
	ID        string
	Name      string // nome do recebedor
	Reference string // referência: semana, obra, medição
	Date      string // YYYY-MM-DD
	Value     decimal.Decimal
	Status    string // Agendado | Pago | Atrasado
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MirrorStatus traduz o status do pagamento para o status do lançamento
// financeiro espelho: Agendado vira Pendente, o resto é mantido.
func (p PaymentRecord) MirrorStatus() string {
	if p.Status == StatusAgendado {
		return StatusPendente
	}
	return p.Status
}

// MirrorDescription devolve a descrição do lançamento espelho.
func (p PaymentRecord) MirrorDescription() string {
	return "Pagamento: " + p.Name + " - " + p.Reference
}
