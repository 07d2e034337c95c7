package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service representa um serviço do catálogo (projeto arquitetônico, laudo, etc).
type Service struct {
	ID          string
	Name        string
	Description string
	BasePrice   decimal.Decimal
	Unit        string // m², un, mês...
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
