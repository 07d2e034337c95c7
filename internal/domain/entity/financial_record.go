package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de lançamento financeiro.
const (
	RecordTypeReceita = "Receita"
	RecordTypeDespesa = "Despesa"
)

// Categorias de lançamento. As quatro primeiras são custos variáveis no DRE;
// qualquer outra categoria conta como despesa fixa.
const (
	CategoryMateriais      = "Materiais"
	CategoryMaoDeObra      = "Mão de Obra"
	CategoryObra           = "Obra"
	CategoryTaxas          = "Taxas"
	CategoryAdministrativo = "Administrativo"
	CategoryProjeto        = "Projeto"
)

// FinancialRecord representa um lançamento financeiro (receita ou despesa).
type FinancialRecord struct {
	ID          string
	Type        string // Receita | Despesa
	Description string
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD (data de competência/vencimento)
	Status      string // Pendente | Pago | Atrasado
	Category    string
	ProjectID   string // opcional; "" quando não vinculado a obra
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
