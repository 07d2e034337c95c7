package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// FinancialUseCase aplica as regras de negócio de lançamentos financeiros.
type FinancialUseCase struct {
	repo repository.FinancialRecordRepository
}

// NewFinancialUseCase constrói o caso de uso.
func NewFinancialUseCase(repo repository.FinancialRecordRepository) *FinancialUseCase {
	return &FinancialUseCase{repo: repo}
}

// Create registra um lançamento. Tipo, valor positivo e data são obrigatórios.
func (uc *FinancialUseCase) Create(in dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	if err := validateRecord(in); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPendente
	}
	now := time.Now()
	record := &entity.FinancialRecord{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        in.Date,
		Status:      status,
		Category:    in.Category,
		ProjectID:   in.ProjectID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// Update atualiza um lançamento existente.
func (uc *FinancialUseCase) Update(id string, in dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	record, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if err := validateRecord(in); err != nil {
		return nil, err
	}
	record.Type = in.Type
	record.Description = in.Description
	record.Amount = in.Amount
	record.Date = in.Date
	if in.Status != "" {
		record.Status = in.Status
	}
	record.Category = in.Category
	record.ProjectID = in.ProjectID
	record.UpdatedAt = time.Now()

	if err := uc.repo.Update(record); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// Delete remove um lançamento.
func (uc *FinancialUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ListAll devolve todos os lançamentos, mais recente primeiro.
func (uc *FinancialUseCase) ListAll() ([]dto.FinancialRecordResponse, error) {
	records, err := uc.repo.ListAll()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FinancialRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, *toRecordResponse(&records[i]))
	}
	return out, nil
}

func validateRecord(in dto.CreateFinancialRecordRequest) error {
	if in.Type != entity.RecordTypeReceita && in.Type != entity.RecordTypeDespesa {
		return domain.ErrInvalidInput
	}
	if in.Amount.IsNegative() || in.Date == "" {
		return domain.ErrInvalidInput
	}
	return nil
}

func toRecordResponse(r *entity.FinancialRecord) *dto.FinancialRecordResponse {
	return &dto.FinancialRecordResponse{
		ID:          r.ID,
		Type:        r.Type,
		Description: r.Description,
		Amount:      r.Amount,
		Date:        r.Date,
		Status:      r.Status,
		Category:    r.Category,
		ProjectID:   r.ProjectID,
	}
}
