package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/auth"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/payroll"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/reporting"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/usecase"
	"github.com/jsengenhariacivil/JSengCRM/internal/infrastructure/export"
	infrapdf "github.com/jsengenhariacivil/JSengCRM/internal/infrastructure/pdf"
	"github.com/jsengenhariacivil/JSengCRM/internal/infrastructure/postgres"
	httpRouter "github.com/jsengenhariacivil/JSengCRM/internal/interfaces/http"
	"github.com/jsengenhariacivil/JSengCRM/pkg/config"
	"github.com/jsengenhariacivil/JSengCRM/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	clientRepo := postgres.NewClientRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	recordRepo := postgres.NewFinancialRecordRepository(pool)
	proposalRepo := postgres.NewProposalRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	teamRepo := postgres.NewTeamMemberRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, clientRepo)
	financialUC := usecase.NewFinancialUseCase(recordRepo)
	serviceUC := usecase.NewServiceUseCase(serviceRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	teamUC := usecase.NewTeamUseCase(teamRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	// PDF: representação da proposta comercial para envio ao cliente
	pdfGenerator := infrapdf.NewMarotoProposalGenerator()
	proposalUC := usecase.NewProposalUseCase(proposalRepo, clientRepo, settingsRepo, txRunner, pdfGenerator)

	// Pagamentos mantêm o lançamento financeiro espelho na mesma transação
	paymentUC := payroll.NewPaymentUseCase(paymentRepo, txRunner)

	dashboardUC := reporting.NewDashboardUseCase(recordRepo, projectRepo, proposalRepo, paymentRepo)
	reportsUC := reporting.NewReportsUseCase(recordRepo)
	csvExporter := export.NewFinancialCSVExporter(recordRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "JSeng CRM API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ClientUC:    clientUC,
		ProjectUC:   projectUC,
		FinancialUC: financialUC,
		ProposalUC:  proposalUC,
		ServiceUC:   serviceUC,
		SupplierUC:  supplierUC,
		TeamUC:      teamUC,
		SettingsUC:  settingsUC,
		PaymentUC:   paymentUC,
		DashboardUC: dashboardUC,
		ReportsUC:   reportsUC,
		CSVExporter: csvExporter,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
