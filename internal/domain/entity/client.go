package entity

import "time"

// Tipos de cliente (pessoa física ou jurídica).
const (
	ClientTypePessoaFisica   = "Pessoa Física"
	ClientTypePessoaJuridica = "Pessoa Jurídica"
)

// Client representa um cliente da empresa (contratante de obras e projetos).
type Client struct {
	ID        string
	Name      string
	Document  string // CPF ou CNPJ
	Email     string
	Phone     string
	Address   string
	Type      string // Pessoa Física | Pessoa Jurídica
	CreatedAt time.Time
	UpdatedAt time.Time
}
