package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/auth"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/payroll"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/reporting"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/usecase"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
	"github.com/jsengenhariacivil/JSengCRM/internal/infrastructure/export"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ClientUC    *usecase.ClientUseCase
	ProjectUC   *usecase.ProjectUseCase
	FinancialUC *usecase.FinancialUseCase
	ProposalUC  *usecase.ProposalUseCase
	ServiceUC   *usecase.ServiceUseCase
	SupplierUC  *usecase.SupplierUseCase
	TeamUC      *usecase.TeamUseCase
	SettingsUC  *usecase.SettingsUseCase
	PaymentUC   *payroll.PaymentUseCase
	DashboardUC *reporting.DashboardUseCase
	ReportsUC   *reporting.ReportsUseCase
	CSVExporter *export.FinancialCSVExporter
	JWTSecret   string
}

// Router registra as rotas da API. As seções protegidas exigem Bearer
// Token e a capacidade correspondente; o papel Financeiro, por exemplo,
// enxerga /api/financial-records mas recebe 403 em /api/projects.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, /me protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes e obras (capacidades de projetos)
	clients := protected.Group("/clients", RequirePermission(permissions.ViewProjects))
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Post("/", RequirePermission(permissions.EditProjects), clientHandler.Create)
	clients.Put("/:id", RequirePermission(permissions.EditProjects), clientHandler.Update)
	clients.Delete("/:id", RequirePermission(permissions.EditProjects), clientHandler.Delete)

	projects := protected.Group("/projects", RequirePermission(permissions.ViewProjects))
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.GetByID)
	projects.Post("/", RequirePermission(permissions.EditProjects), projectHandler.Create)
	projects.Put("/:id", RequirePermission(permissions.EditProjects), projectHandler.Update)

	// Propostas (capacidades de projetos; PDF disponível para leitura)
	proposals := protected.Group("/proposals", RequirePermission(permissions.ViewProjects))
	proposalHandler := NewProposalHandler(deps.ProposalUC)
	proposals.Get("/", proposalHandler.List)
	proposals.Get("/:id", proposalHandler.GetByID)
	proposals.Get("/:id/pdf", proposalHandler.GeneratePDF)
	proposals.Post("/", RequirePermission(permissions.EditProjects), proposalHandler.Create)
	proposals.Put("/:id/status", RequirePermission(permissions.EditProjects), proposalHandler.UpdateStatus)

	// Cadastros auxiliares (serviços, fornecedores, equipe)
	catalogHandler := NewCatalogHandler(deps.ServiceUC, deps.SupplierUC, deps.TeamUC)

	services := protected.Group("/services", RequirePermission(permissions.ViewProjects))
	services.Get("/", catalogHandler.ListServices)
	services.Post("/", RequirePermission(permissions.EditProjects), catalogHandler.CreateService)
	services.Put("/:id", RequirePermission(permissions.EditProjects), catalogHandler.UpdateService)
	services.Delete("/:id", RequirePermission(permissions.EditProjects), catalogHandler.DeleteService)

	suppliers := protected.Group("/suppliers", RequirePermission(permissions.ViewProjects))
	suppliers.Get("/", catalogHandler.ListSuppliers)
	suppliers.Post("/", RequirePermission(permissions.EditProjects), catalogHandler.CreateSupplier)
	suppliers.Put("/:id", RequirePermission(permissions.EditProjects), catalogHandler.UpdateSupplier)
	suppliers.Delete("/:id", RequirePermission(permissions.EditProjects), catalogHandler.DeleteSupplier)

	team := protected.Group("/team", RequirePermission(permissions.ViewProjects))
	team.Get("/", catalogHandler.ListTeamMembers)
	team.Post("/", RequirePermission(permissions.EditProjects), catalogHandler.CreateTeamMember)
	team.Put("/:id", RequirePermission(permissions.EditProjects), catalogHandler.UpdateTeamMember)
	team.Delete("/:id", RequirePermission(permissions.EditProjects), catalogHandler.DeleteTeamMember)

	// Lançamentos financeiros (capacidades financeiras)
	financial := protected.Group("/financial-records", RequirePermission(permissions.ViewFinancial))
	financialHandler := NewFinancialHandler(deps.FinancialUC, deps.CSVExporter)
	financial.Get("/", financialHandler.List)
	financial.Get("/export", financialHandler.ExportCSV)
	financial.Post("/", RequirePermission(permissions.EditFinancial), financialHandler.Create)
	financial.Put("/:id", RequirePermission(permissions.EditFinancial), financialHandler.Update)
	financial.Delete("/:id", RequirePermission(permissions.EditFinancial), financialHandler.Delete)

	// Pagamentos de mão de obra (mantêm o espelho financeiro)
	payments := protected.Group("/payments", RequirePermission(permissions.ViewFinancial))
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Get("/", paymentHandler.List)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Post("/", RequirePermission(permissions.EditFinancial), paymentHandler.Create)
	payments.Put("/:id", RequirePermission(permissions.EditFinancial), paymentHandler.Update)
	payments.Delete("/:id", RequirePermission(permissions.EditFinancial), paymentHandler.Delete)

	// Painel e relatórios (leitura financeira)
	reportHandler := NewReportHandler(deps.DashboardUC, deps.ReportsUC)
	dashboard := protected.Group("/dashboard", RequirePermission(permissions.ViewFinancial))
	dashboard.Get("/summary", reportHandler.DashboardSummary)

	reports := protected.Group("/reports", RequirePermission(permissions.ViewFinancial))
	reports.Get("/dre", reportHandler.Statement)
	reports.Get("/cashflow", reportHandler.CashFlow)
	reports.Get("/payables", reportHandler.Payables)

	// Usuários e dados da empresa (administração)
	users := protected.Group("/users", RequirePermission(permissions.ManageSettings))
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/role", userHandler.ApplyRolePreset)
	users.Put("/:id/permissions", userHandler.SetPermission)
	users.Delete("/:id", userHandler.Delete)

	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", RequirePermission(permissions.ManageSettings), settingsHandler.Update)
}
