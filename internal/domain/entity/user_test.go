package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
)

// Trocar o perfil SUBSTITUI o conjunto inteiro: flags customizados que não
// constam no preset de destino voltam a false. Sobrescrita, nunca merge.
func TestApplyRolePreset_SobrescreveSemMerge(t *testing.T) {
	u := &entity.User{Role: permissions.RoleEngenharia}
	u.Permissions = permissions.ForRole(permissions.RoleEngenharia).
		WithFlag(permissions.ViewFinancial, true) // customização manual

	u.ApplyRolePreset(permissions.RoleRH)

	assert.Equal(t, permissions.RoleRH, u.Role)
	assert.Equal(t, permissions.Permissions{}, u.Permissions,
		"o flag customizado viewFinancial deve ser descartado na troca de perfil")
}

func TestApplyRolePreset_PerfilDesconhecidoViraVisitante(t *testing.T) {
	u := &entity.User{}
	u.ApplyRolePreset(permissions.RoleAdministrador)
	u.ApplyRolePreset("Cargo Que Não Existe")

	assert.Equal(t, permissions.Permissions{}, u.Permissions)
}

func TestCan_UsuarioNilNaoPodeNada(t *testing.T) {
	var u *entity.User
	assert.False(t, u.Can(permissions.ViewFinancial))
}
