package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementação de SettingsRepository. A tabela guarda uma
// única linha (id fixo 1); Update faz upsert.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository constrói o adaptador.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get devolve os dados cadastrais; se a linha ainda não existe, devolve o
// valor zero para a tela preencher.
func (r *SettingsRepo) Get() (*entity.CompanySettings, error) {
	query := `
		SELECT name, cnpj, phone, address, email, logo_url, updated_at
		FROM company_settings WHERE id = 1`
	var s entity.CompanySettings
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.Name, &s.CNPJ, &s.Phone, &s.Address, &s.Email, &s.LogoURL, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.CompanySettings{}, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Update grava os dados cadastrais (upsert na linha única).
func (r *SettingsRepo) Update(settings *entity.CompanySettings) error {
	query := `
		INSERT INTO company_settings (id, name, cnpj, phone, address, email, logo_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, cnpj = EXCLUDED.cnpj, phone = EXCLUDED.phone,
			address = EXCLUDED.address, email = EXCLUDED.email, logo_url = EXCLUDED.logo_url,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.Name, settings.CNPJ, settings.Phone, settings.Address,
		settings.Email, settings.LogoURL, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
