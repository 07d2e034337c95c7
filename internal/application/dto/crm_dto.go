package dto

import "github.com/shopspring/decimal"

// CreateClientRequest cadastro/edição de cliente.
type CreateClientRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Type     string `json:"type"` // Pessoa Física | Pessoa Jurídica
}

// ClientResponse cliente nas respostas da API.
type ClientResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Type     string `json:"type"`
}

// CreateProjectRequest cadastro/edição de obra.
type CreateProjectRequest struct {
	Title     string          `json:"title"`
	ClientID  string          `json:"client_id"`
	Address   string          `json:"address"`
	Status    string          `json:"status"`
	StartDate string          `json:"start_date"` // YYYY-MM-DD
	EndDate   string          `json:"end_date"`   // YYYY-MM-DD
	Budget    decimal.Decimal `json:"budget"`
	Progress  int             `json:"progress"`
}

// ProjectResponse obra nas respostas da API.
type ProjectResponse struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	ClientID   string          `json:"client_id"`
	ClientName string          `json:"client_name"`
	Address    string          `json:"address"`
	Status     string          `json:"status"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	Budget     decimal.Decimal `json:"budget"`
	Progress   int             `json:"progress"`
}

// CreateFinancialRecordRequest lançamento financeiro.
type CreateFinancialRecordRequest struct {
	Type        string          `json:"type"` // Receita | Despesa
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	ProjectID   string          `json:"project_id"`
}

// FinancialRecordResponse lançamento nas respostas da API.
type FinancialRecordResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Status      string          `json:"status"`
	Category    string          `json:"category"`
	ProjectID   string          `json:"project_id,omitempty"`
}

// ProposalItemDTO linha de proposta (entrada e saída).
type ProposalItemDTO struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateProposalRequest criação de proposta com itens ordenados.
type CreateProposalRequest struct {
	ClientID string            `json:"client_id"`
	Date     string            `json:"date"` // YYYY-MM-DD
	Items    []ProposalItemDTO `json:"items"`
}

// ProposalResponse proposta nas respostas da API.
type ProposalResponse struct {
	ID         string            `json:"id"`
	ClientID   string            `json:"client_id"`
	ClientName string            `json:"client_name"`
	Items      []ProposalItemDTO `json:"items"`
	Total      decimal.Decimal   `json:"total"`
	Status     string            `json:"status"`
	Date       string            `json:"date"`
}

// UpdateProposalStatusRequest mudança explícita de status da proposta.
type UpdateProposalStatusRequest struct {
	Status string `json:"status"` // Pendente | Aprovado | Rejeitado
}

// CreateServiceRequest item do catálogo de serviços.
type CreateServiceRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Unit        string          `json:"unit"`
}

// ServiceResponse serviço nas respostas da API.
type ServiceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Unit        string          `json:"unit"`
}

// CreateSupplierRequest cadastro/edição de fornecedor.
type CreateSupplierRequest struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

// SupplierResponse fornecedor nas respostas da API.
type SupplierResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

// CreateTeamMemberRequest cadastro/edição de integrante da equipe.
type CreateTeamMemberRequest struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// TeamMemberResponse integrante nas respostas da API.
type TeamMemberResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// CreatePaymentRequest pagamento de mão de obra.
type CreatePaymentRequest struct {
	Name      string          `json:"name"`
	Reference string          `json:"reference"`
	Date      string          `json:"date"` // YYYY-MM-DD
	Value     decimal.Decimal `json:"value"`
	Status    string          `json:"status"` // Agendado | Pago | Atrasado
}

// PaymentResponse pagamento nas respostas da API.
type PaymentResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Reference string          `json:"reference"`
	Date      string          `json:"date"`
	Value     decimal.Decimal `json:"value"`
	Status    string          `json:"status"`
}

// CompanySettingsDTO dados cadastrais da empresa (entrada e saída).
type CompanySettingsDTO struct {
	Name    string `json:"name"`
	CNPJ    string `json:"cnpj"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Email   string `json:"email"`
	LogoURL string `json:"logo_url"`
}
