package usecase

import (
	"time"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// SettingsUseCase lê e grava os dados cadastrais da empresa.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase constrói o caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devolve os dados cadastrais vigentes.
func (uc *SettingsUseCase) Get() (*dto.CompanySettingsDTO, error) {
	s, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsDTO(s), nil
}

// Update sobrescreve os dados cadastrais (linha única).
func (uc *SettingsUseCase) Update(in dto.CompanySettingsDTO) (*dto.CompanySettingsDTO, error) {
	s := &entity.CompanySettings{
		Name:      in.Name,
		CNPJ:      in.CNPJ,
		Phone:     in.Phone,
		Address:   in.Address,
		Email:     in.Email,
		LogoURL:   in.LogoURL,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return toSettingsDTO(s), nil
}

func toSettingsDTO(s *entity.CompanySettings) *dto.CompanySettingsDTO {
	if s == nil {
		return nil
	}
	return &dto.CompanySettingsDTO{
		Name:    s.Name,
		CNPJ:    s.CNPJ,
		Phone:   s.Phone,
		Address: s.Address,
		Email:   s.Email,
		LogoURL: s.LogoURL,
	}
}
