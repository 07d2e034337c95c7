package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// ProposalTxRunner executa o callback com um ProposalRepository atado a uma
// transação: cabeçalho e itens da proposta são gravados de forma atômica.
type ProposalTxRunner interface {
	RunProposal(ctx context.Context, fn func(repo repository.ProposalRepository) error) error
}

// ProposalPDFGenerator gera a representação em PDF de uma proposta, com os
// dados cadastrais da empresa no cabeçalho.
type ProposalPDFGenerator interface {
	GenerateProposalPDF(proposal *entity.Proposal, company *entity.CompanySettings) ([]byte, error)
}

// ProposalUseCase aplica as regras de negócio de propostas comerciais.
type ProposalUseCase struct {
	repo         repository.ProposalRepository
	clientRepo   repository.ClientRepository
	settingsRepo repository.SettingsRepository
	tx           ProposalTxRunner
	pdf          ProposalPDFGenerator
}

// NewProposalUseCase constrói o caso de uso.
func NewProposalUseCase(
	repo repository.ProposalRepository,
	clientRepo repository.ClientRepository,
	settingsRepo repository.SettingsRepository,
	tx ProposalTxRunner,
	pdf ProposalPDFGenerator,
) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, clientRepo: clientRepo, settingsRepo: settingsRepo, tx: tx, pdf: pdf}
}

// Create registra a proposta com seus itens em uma transação. O total é
// recalculado no servidor a partir das linhas; o valor enviado é ignorado.
func (uc *ProposalUseCase) Create(ctx context.Context, in dto.CreateProposalRequest) (*dto.ProposalResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	items := make([]entity.ProposalItem, 0, len(in.Items))
	var total decimal.Decimal
	for _, it := range in.Items {
		if it.Quantity.IsNegative() || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item := entity.ProposalItem{
			ServiceID: it.ServiceID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		}
		total = total.Add(item.Subtotal())
		items = append(items, item)
	}

	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	now := time.Now()
	proposal := &entity.Proposal{
		ID:         uuid.New().String(),
		ClientID:   in.ClientID,
		ClientName: client.Name,
		Items:      items,
		Total:      total,
		Status:     entity.StatusPendente,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.tx.RunProposal(ctx, func(repo repository.ProposalRepository) error {
		return repo.Create(proposal)
	})
	if err != nil {
		return nil, err
	}
	return toProposalResponse(proposal), nil
}

// UpdateStatus muda o status da proposta (ação explícita do usuário).
func (uc *ProposalUseCase) UpdateStatus(id string, in dto.UpdateProposalStatusRequest) error {
	switch in.Status {
	case entity.StatusPendente, entity.StatusAprovado, entity.StatusRejeitado:
	default:
		return domain.ErrInvalidInput
	}
	proposal, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proposal == nil {
		return domain.ErrNotFound
	}
	return uc.repo.UpdateStatus(id, in.Status)
}

// GetByID devolve a proposta com itens ou ErrNotFound.
func (uc *ProposalUseCase) GetByID(id string) (*dto.ProposalResponse, error) {
	proposal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrNotFound
	}
	return toProposalResponse(proposal), nil
}

// List lista propostas com paginação.
func (uc *ProposalUseCase) List(limit, offset int) ([]*dto.ProposalResponse, error) {
	proposals, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, toProposalResponse(p))
	}
	return out, nil
}

// GeneratePDF monta o PDF da proposta para envio ao cliente.
func (uc *ProposalUseCase) GeneratePDF(id string) ([]byte, error) {
	proposal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proposal == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateProposalPDF(proposal, company)
}

func toProposalResponse(p *entity.Proposal) *dto.ProposalResponse {
	name := p.ClientName
	if name == "" {
		name = unknownClientName
	}
	items := make([]dto.ProposalItemDTO, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.ProposalItemDTO{
			ServiceID: it.ServiceID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.ProposalResponse{
		ID:         p.ID,
		ClientID:   p.ClientID,
		ClientName: name,
		Items:      items,
		Total:      p.Total,
		Status:     p.Status,
		Date:       p.Date,
	}
}
