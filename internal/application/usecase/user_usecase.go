package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/auth"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// UserUseCase administra os usuários do sistema (tela de configurações).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase constrói o caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista os usuários cadastrados.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, auth.ToUserResponse(u))
	}
	return out, nil
}

// Update edita os dados gerais. Senha vazia mantém a atual. Se o perfil
// mudar, o preset do novo perfil substitui o conjunto de permissões inteiro
// (flags customizados são descartados; comportamento herdado do fluxo de
// edição do sistema antigo).
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != "" && in.Role != user.Role {
		if !permissions.KnownRole(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.ApplyRolePreset(in.Role)
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// ApplyRolePreset troca o perfil e sobrescreve as permissões com o preset.
func (uc *UserUseCase) ApplyRolePreset(id, role string) (*dto.UserResponse, error) {
	if !permissions.KnownRole(role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.ApplyRolePreset(role)
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// SetPermission ajusta um único flag, preservando os demais. Operação
// distinta da troca de perfil, que sobrescreve o conjunto.
func (uc *UserUseCase) SetPermission(id string, in dto.UpdatePermissionsRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Permissions = user.Permissions.WithFlag(permissions.Capability(in.Capability), in.Value)
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete remove o usuário.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
