package entity

import "time"

// CompanySettings guarda os dados cadastrais da empresa (linha única).
type CompanySettings struct {
	Name      string
	CNPJ      string
	Phone     string
	Address   string
	Email     string
	LogoURL   string // referência externa; o upload do arquivo fica fora da API
	UpdatedAt time.Time
}
