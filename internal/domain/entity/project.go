package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project representa uma obra ou projeto de engenharia vinculado a um cliente.
//
// Datas são mantidas como string ISO (YYYY-MM-DD): todo o cálculo derivado
// compara datas por prefixo ou por componentes, nunca via parse genérico,
// para não sofrer deslocamento de fuso horário.
type Project struct {
	ID         string
	Title      string
	ClientID   string
	ClientName string // denormalizado via join; "" se o cliente não existe mais
	Address    string
	Status     string // Pendente | Em Andamento | Concluído
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Budget     decimal.Decimal
	Progress   int // 0-100
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
