package entity

import (
	"time"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
)

// User representa um usuário do sistema.
//
// A senha existe apenas como hash bcrypt; credenciais em texto claro nunca
// são persistidas nem trafegam em respostas.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // um dos perfis de permissions.Roles()
	Permissions  permissions.Permissions
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ApplyRolePreset troca o perfil do usuário e SUBSTITUI o conjunto de
// permissões pelo preset do novo perfil. Flags customizados anteriores são
// descartados; não é um merge.
func (u *User) ApplyRolePreset(role string) {
	u.Role = role
	u.Permissions = permissions.ForRole(role)
}

// Can responde se o usuário possui a capacidade. Usuário nil não pode nada.
func (u *User) Can(c permissions.Capability) bool {
	if u == nil {
		return false
	}
	return u.Permissions.Has(c)
}
