package entity

import "time"

// Supplier representa um fornecedor de materiais ou serviços.
type Supplier struct {
	ID        string
	Name      string
	Document  string // CNPJ
	Email     string
	Phone     string
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
