package permissions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
)

// A tabela fixa de perfis deve responder exatamente a quíntupla definida.
func TestForRole_TabelaFixa(t *testing.T) {
	cases := []struct {
		role string
		want permissions.Permissions
	}{
		{permissions.RoleAdministrador, permissions.Permissions{ViewFinancial: true, EditFinancial: true, ViewProjects: true, EditProjects: true, ManageSettings: true}},
		{permissions.RoleGerente, permissions.Permissions{ViewFinancial: true, ViewProjects: true, EditProjects: true}},
		{permissions.RoleFinanceiro, permissions.Permissions{ViewFinancial: true, EditFinancial: true, ViewProjects: true}},
		{permissions.RoleEngenharia, permissions.Permissions{ViewProjects: true, EditProjects: true}},
		{permissions.RoleRH, permissions.Permissions{}},
		{permissions.RoleVisitante, permissions.Permissions{}},
	}
	for _, tc := range cases {
		t.Run(tc.role, func(t *testing.T) {
			assert.Equal(t, tc.want, permissions.ForRole(tc.role))
		})
	}
}

// Perfil desconhecido cai no conjunto vazio de Visitante, nunca em erro.
func TestForRole_PerfilDesconhecido(t *testing.T) {
	assert.Equal(t, permissions.Permissions{}, permissions.ForRole("Estagiário"))
	assert.Equal(t, permissions.Permissions{}, permissions.ForRole(""))
	assert.False(t, permissions.KnownRole("Estagiário"))
	assert.True(t, permissions.KnownRole(permissions.RoleGerente))
}

func TestHas_ValorZeroNaoConcedeNada(t *testing.T) {
	var p permissions.Permissions
	for _, c := range []permissions.Capability{
		permissions.ViewFinancial, permissions.EditFinancial,
		permissions.ViewProjects, permissions.EditProjects,
		permissions.ManageSettings,
	} {
		assert.False(t, p.Has(c), "valor zero não deve conceder %s", c)
	}
	assert.False(t, p.Has("capacidadeInexistente"))
}

func TestHas_CapacidadeConcedida(t *testing.T) {
	p := permissions.ForRole(permissions.RoleFinanceiro)
	assert.True(t, p.Has(permissions.ViewFinancial))
	assert.True(t, p.Has(permissions.EditFinancial))
	assert.True(t, p.Has(permissions.ViewProjects))
	assert.False(t, p.Has(permissions.EditProjects))
	assert.False(t, p.Has(permissions.ManageSettings))
}

// WithFlag muda um único flag e preserva os demais (customização granular).
func TestWithFlag_AjustaUmFlagSo(t *testing.T) {
	base := permissions.ForRole(permissions.RoleEngenharia)

	granted := base.WithFlag(permissions.ViewFinancial, true)
	assert.True(t, granted.Has(permissions.ViewFinancial))
	assert.True(t, granted.Has(permissions.ViewProjects), "flags existentes não podem ser perdidos")
	assert.False(t, base.Has(permissions.ViewFinancial), "a base não pode ser mutada")

	revoked := granted.WithFlag(permissions.ViewProjects, false)
	assert.False(t, revoked.Has(permissions.ViewProjects))
	assert.True(t, revoked.Has(permissions.ViewFinancial))
}
