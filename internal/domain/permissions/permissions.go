// Package permissions define o modelo de autorização: seis perfis fixos,
// cada um mapeado para cinco capacidades booleanas independentes.
//
// O pacote é puro (sem I/O): a decisão de renderizar conteúdo restrito ou o
// aviso de acesso negado acontece nos guards HTTP, que consultam Has. A
// ausência de uma capacidade nunca é erro; degrada sempre para "negado".
package permissions

// Perfis de acesso reconhecidos pelo sistema.
const (
	RoleAdministrador = "Administrador"
	RoleGerente       = "Gerente"
	RoleFinanceiro    = "Financeiro"
	RoleEngenharia    = "Engenharia"
	RoleRH            = "RH"
	RoleVisitante     = "Visitante"
)

// Capability identifica uma das cinco capacidades do sistema.
type Capability string

const (
	ViewFinancial  Capability = "viewFinancial"
	EditFinancial  Capability = "editFinancial"
	ViewProjects   Capability = "viewProjects"
	EditProjects   Capability = "editProjects"
	ManageSettings Capability = "manageSettings"
)

// Permissions é o conjunto de capacidades de um usuário. O valor zero não
// concede nada (usuário ausente ou não inicializado não tem acesso).
type Permissions struct {
	ViewFinancial  bool `json:"view_financial"`
	EditFinancial  bool `json:"edit_financial"`
	ViewProjects   bool `json:"view_projects"`
	EditProjects   bool `json:"edit_projects"`
	ManageSettings bool `json:"manage_settings"`
}

// presets é a tabela fixa perfil → capacidades.
var presets = map[string]Permissions{
	RoleAdministrador: {ViewFinancial: true, EditFinancial: true, ViewProjects: true, EditProjects: true, ManageSettings: true},
	RoleGerente:       {ViewFinancial: true, ViewProjects: true, EditProjects: true},
	RoleFinanceiro:    {ViewFinancial: true, EditFinancial: true, ViewProjects: true},
	RoleEngenharia:    {ViewProjects: true, EditProjects: true},
	RoleRH:            {},
	RoleVisitante:     {},
}

// ForRole devolve o preset do perfil. Perfil desconhecido recebe o conjunto
// vazio de Visitante.
func ForRole(role string) Permissions {
	if p, ok := presets[role]; ok {
		return p
	}
	return presets[RoleVisitante]
}

// KnownRole informa se o perfil consta na tabela de presets.
func KnownRole(role string) bool {
	_, ok := presets[role]
	return ok
}

// Roles lista os perfis na ordem em que aparecem na tela de configurações.
func Roles() []string {
	return []string{RoleAdministrador, RoleGerente, RoleFinanceiro, RoleEngenharia, RoleRH, RoleVisitante}
}

// Has responde se a capacidade está concedida. Capacidade desconhecida é
// sempre negada.
func (p Permissions) Has(c Capability) bool {
	switch c {
	case ViewFinancial:
		return p.ViewFinancial
	case EditFinancial:
		return p.EditFinancial
	case ViewProjects:
		return p.ViewProjects
	case EditProjects:
		return p.EditProjects
	case ManageSettings:
		return p.ManageSettings
	default:
		return false
	}
}

// WithFlag devolve uma cópia com uma única capacidade ajustada. É a operação
// de customização granular, deliberadamente separada da troca de perfil
// (ForRole substitui o conjunto inteiro; WithFlag mexe em um flag só).
func (p Permissions) WithFlag(c Capability, value bool) Permissions {
	switch c {
	case ViewFinancial:
		p.ViewFinancial = value
	case EditFinancial:
		p.EditFinancial = value
	case ViewProjects:
		p.ViewProjects = value
	case EditProjects:
		p.EditProjects = value
	case ManageSettings:
		p.ManageSettings = value
	}
	return p
}
