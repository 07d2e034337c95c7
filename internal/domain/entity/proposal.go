package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Proposal representa uma proposta comercial enviada a um cliente.
type Proposal struct {
	ID         string
	ClientID   string
	ClientName string // denormalizado via join
	Items      []ProposalItem
	Total      decimal.Decimal
	Status     string // Pendente | Aprovado | Rejeitado
	Date       string // YYYY-MM-DD
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProposalItem é uma linha da proposta; a ordem de inserção é preservada.
type ProposalItem struct {
	ServiceID string
	Name      string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Subtotal retorna quantidade × preço unitário da linha.
func (i ProposalItem) Subtotal() decimal.Decimal {
	return i.Quantity.Mul(i.UnitPrice)
}
