// seed popula o banco com um conjunto de dados de demonstração: usuários de
// cada perfil, clientes, obras, lançamentos, propostas, cadastros auxiliares
// e pagamentos com seus espelhos financeiros.
//
// Uso: go run ./cmd/seed
// Idempotência: registros duplicados (e-mail de usuário já existente) são
// reportados e pulados, não abortam o seed.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/application/payroll"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/permissions"
	"github.com/jsengenhariacivil/JSengCRM/internal/infrastructure/postgres"
	"github.com/jsengenhariacivil/JSengCRM/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("carregar configuração: %v", err)
	}

	if err := postgres.RunMigrations(cfg.DB.ConnectionString()); err != nil {
		fail("migrações: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexão ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	now := time.Now()
	month := now.Format("2006-01")

	// Usuários: um por perfil, senha padrão de demonstração.
	users := postgres.NewUserRepository(pool)
	for _, u := range []struct {
		name, email, role string
	}{
		{"Júlio Silva", "julio@jseng.com.br", permissions.RoleAdministrador},
		{"Marina Costa", "marina@jseng.com.br", permissions.RoleGerente},
		{"Paulo Andrade", "paulo@jseng.com.br", permissions.RoleFinanceiro},
		{"Carla Mendes", "carla@jseng.com.br", permissions.RoleEngenharia},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte("jseng1234"), bcrypt.DefaultCost)
		if err != nil {
			fail("hash de senha: %v", err)
		}
		user := &entity.User{
			ID:           uuid.New().String(),
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hash),
			Role:         u.role,
			Permissions:  permissions.ForRole(u.role),
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := users.Create(user); err != nil {
			if errors.Is(err, domain.ErrEmailAlreadyExists) {
				fmt.Printf("usuário %s já existe, pulando\n", u.email)
				continue
			}
			fail("criar usuário %s: %v", u.email, err)
		}
		fmt.Printf("usuário %s (%s) criado\n", u.email, u.role)
	}

	// Dados da empresa.
	settings := postgres.NewSettingsRepository(pool)
	if err := settings.Update(&entity.CompanySettings{
		Name:      "JS Engenharia Civil",
		CNPJ:      "12.345.678/0001-90",
		Phone:     "(11) 4002-8922",
		Address:   "Av. Paulista, 1000 - São Paulo/SP",
		Email:     "contato@jseng.com.br",
		UpdatedAt: now,
	}); err != nil {
		fail("dados da empresa: %v", err)
	}

	// Clientes.
	clients := postgres.NewClientRepository(pool)
	clientIDs := make([]string, 0, 3)
	for _, c := range []entity.Client{
		{Name: "Construtora Horizonte Ltda", Document: "98.765.432/0001-10", Email: "obras@horizonte.com.br", Phone: "(11) 3333-1000", Address: "Rua das Acácias, 55", Type: "Pessoa Jurídica"},
		{Name: "Roberto Almeida", Document: "123.456.789-09", Email: "roberto@gmail.com", Phone: "(11) 98888-1234", Address: "Rua Ipê Roxo, 12", Type: "Pessoa Física"},
		{Name: "Condomínio Vila Verde", Document: "11.222.333/0001-44", Email: "sindico@vilaverde.com.br", Phone: "(11) 2222-5000", Address: "Al. dos Jacarandás, 200", Type: "Pessoa Jurídica"},
	} {
		c.ID = uuid.New().String()
		c.CreatedAt, c.UpdatedAt = now, now
		if err := clients.Create(&c); err != nil {
			fail("criar cliente %s: %v", c.Name, err)
		}
		clientIDs = append(clientIDs, c.ID)
	}

	// Obras.
	projects := postgres.NewProjectRepository(pool)
	for _, p := range []entity.Project{
		{Title: "Edifício Horizonte - Torre A", ClientID: clientIDs[0], Address: "Rua das Acácias, 55", Status: entity.StatusEmAndamento, StartDate: month + "-01", Budget: decimal.NewFromInt(850000), Progress: 45},
		{Title: "Reforma Residencial Almeida", ClientID: clientIDs[1], Address: "Rua Ipê Roxo, 12", Status: entity.StatusEmAndamento, StartDate: month + "-10", Budget: decimal.NewFromInt(120000), Progress: 20},
		{Title: "Laudo Estrutural Vila Verde", ClientID: clientIDs[2], Address: "Al. dos Jacarandás, 200", Status: entity.StatusConcluido, StartDate: "2026-01-05", EndDate: "2026-02-28", Budget: decimal.NewFromInt(18000), Progress: 100},
	} {
		p.ID = uuid.New().String()
		p.CreatedAt, p.UpdatedAt = now, now
		if err := projects.Create(&p); err != nil {
			fail("criar obra %s: %v", p.Title, err)
		}
	}

	// Serviços do catálogo.
	services := postgres.NewServiceRepository(pool)
	serviceIDs := make([]string, 0, 3)
	for _, s := range []entity.Service{
		{Name: "Projeto Estrutural - Residencial", Description: "Cálculo e detalhamento estrutural", BasePrice: decimal.NewFromInt(45), Unit: "m²"},
		{Name: "Laudo Técnico - Estrutura", Description: "Vistoria e laudo assinado por RT", BasePrice: decimal.NewFromInt(2500), Unit: "un"},
		{Name: "Gerenciamento de Obra", Description: "Acompanhamento mensal de execução", BasePrice: decimal.NewFromInt(6000), Unit: "mês"},
	} {
		s.ID = uuid.New().String()
		s.CreatedAt, s.UpdatedAt = now, now
		if err := services.Create(&s); err != nil {
			fail("criar serviço %s: %v", s.Name, err)
		}
		serviceIDs = append(serviceIDs, s.ID)
	}

	// Fornecedores.
	suppliers := postgres.NewSupplierRepository(pool)
	for _, s := range []entity.Supplier{
		{Name: "Concreserv Concreto", Document: "44.555.666/0001-77", Email: "vendas@concreserv.com.br", Phone: "(11) 3100-2000", Category: "Concreto usinado"},
		{Name: "Aços Paulista", Document: "77.888.999/0001-11", Email: "comercial@acospaulista.com.br", Phone: "(11) 3200-4000", Category: "Aço e vergalhões"},
	} {
		s.ID = uuid.New().String()
		s.CreatedAt, s.UpdatedAt = now, now
		if err := suppliers.Create(&s); err != nil {
			fail("criar fornecedor %s: %v", s.Name, err)
		}
	}

	// Equipe.
	team := postgres.NewTeamMemberRepository(pool)
	for _, m := range []entity.TeamMember{
		{Name: "José Pereira", Role: "Mestre de obras", Type: "CLT", Email: "jose@jseng.com.br", Phone: "(11) 97777-0001", Status: "Ativo"},
		{Name: "Antônio Ramos", Role: "Pedreiro", Type: "Diarista", Phone: "(11) 97777-0002", Status: "Ativo"},
		{Name: "Fernanda Lima", Role: "Engenheira civil", Type: "PJ", Email: "fernanda@jseng.com.br", Phone: "(11) 97777-0003", Status: "Ativo"},
	} {
		m.ID = uuid.New().String()
		m.CreatedAt, m.UpdatedAt = now, now
		if err := team.Create(&m); err != nil {
			fail("criar membro %s: %v", m.Name, err)
		}
	}

	// Lançamentos financeiros do mês corrente.
	records := postgres.NewFinancialRecordRepository(pool)
	for _, r := range []entity.FinancialRecord{
		{Type: entity.RecordTypeReceita, Description: "Medição 3 - Torre A", Amount: decimal.NewFromInt(95000), Date: month + "-05", Status: entity.StatusPago, Category: "Medição"},
		{Type: entity.RecordTypeReceita, Description: "Entrada reforma Almeida", Amount: decimal.NewFromInt(36000), Date: month + "-12", Status: entity.StatusPendente, Category: "Contrato"},
		{Type: entity.RecordTypeDespesa, Description: "Concreto usinado 15 m³", Amount: decimal.NewFromInt(9750), Date: month + "-08", Status: entity.StatusPago, Category: "Material"},
		{Type: entity.RecordTypeDespesa, Description: "Aluguel de andaimes", Amount: decimal.NewFromInt(2200), Date: month + "-20", Status: entity.StatusPendente, Category: "Equipamento"},
	} {
		r.ID = uuid.New().String()
		r.CreatedAt, r.UpdatedAt = now, now
		if err := records.Create(&r); err != nil {
			fail("criar lançamento %s: %v", r.Description, err)
		}
	}

	// Proposta com itens ordenados.
	proposals := postgres.NewProposalRepository(pool)
	items := []entity.ProposalItem{
		{ServiceID: serviceIDs[0], Name: "Projeto Estrutural - Residencial", Quantity: decimal.NewFromInt(180), UnitPrice: decimal.NewFromInt(45)},
		{ServiceID: serviceIDs[2], Name: "Gerenciamento de Obra", Quantity: decimal.NewFromInt(6), UnitPrice: decimal.NewFromInt(6000)},
	}
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	if err := proposals.Create(&entity.Proposal{
		ID:        uuid.New().String(),
		ClientID:  clientIDs[1],
		Items:     items,
		Total:     total,
		Status:    entity.StatusPendente,
		Date:      now.Format("2006-01-02"),
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		fail("criar proposta: %v", err)
	}

	// Pagamentos via caso de uso para manter o espelho financeiro.
	payments := payroll.NewPaymentUseCase(postgres.NewPaymentRepository(pool), postgres.NewTxRunner(pool))
	for _, p := range []dto.CreatePaymentRequest{
		{Name: "José Pereira", Reference: "Semana 1 - Torre A", Date: month + "-07", Value: decimal.NewFromInt(1800), Status: entity.StatusPago},
		{Name: "Antônio Ramos", Reference: "Diárias - reforma Almeida", Date: month + "-14", Value: decimal.NewFromInt(950), Status: entity.StatusAgendado},
	} {
		if _, err := payments.Create(ctx, p); err != nil {
			fail("criar pagamento %s: %v", p.Name, err)
		}
	}

	fmt.Println("seed concluído")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
