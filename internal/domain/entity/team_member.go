package entity

import "time"

// TeamMember representa um integrante da equipe (funcionário ou terceirizado).
type TeamMember struct {
	ID        string
	Name      string
	Role      string // cargo: engenheiro, mestre de obras...
	Type      string // CLT, PJ, diarista
	Email     string
	Phone     string
	Status    string // Ativo | Inativo
	CreatedAt time.Time
	UpdatedAt time.Time
}
