package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// SettingsRepository define a porta de persistência para os dados cadastrais
// da empresa (linha única; Get devolve defaults se ainda não gravada).
type SettingsRepository interface {
	Get() (*entity.CompanySettings, error)
	Update(settings *entity.CompanySettings) error
}
