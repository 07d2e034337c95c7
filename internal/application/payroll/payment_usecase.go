package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// TxRunner executa fn com repositórios ligados à mesma transação. Se fn
// devolver erro a transação inteira é desfeita.
type TxRunner interface {
	Run(ctx context.Context, fn func(payments repository.PaymentRepository, records repository.FinancialRecordRepository) error) error
}

// PaymentUseCase mantém pagamentos de mão de obra e o lançamento financeiro
// espelho. As duas escritas acontecem na mesma transação: ou o pagamento e o
// espelho existem juntos, ou nenhum dos dois.
type PaymentUseCase struct {
	payments repository.PaymentRepository
	tx       TxRunner
}

// NewPaymentUseCase constrói o caso de uso.
func NewPaymentUseCase(payments repository.PaymentRepository, tx TxRunner) *PaymentUseCase {
	return &PaymentUseCase{payments: payments, tx: tx}
}

// Create registra o pagamento e o lançamento espelho com o mesmo ID.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.Name == "" || in.Date == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.StatusAgendado
	}
	if !validPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	payment := &entity.PaymentRecord{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Reference: in.Reference,
		Date:      in.Date,
		Value:     in.Value,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := uc.tx.Run(ctx, func(payments repository.PaymentRepository, records repository.FinancialRecordRepository) error {
		if err := payments.Create(payment); err != nil {
			return err
		}
		return records.Create(mirrorRecord(payment))
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Update altera o pagamento e realinha o lançamento espelho.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != "" {
		payment.Name = in.Name
	}
	if in.Reference != "" {
		payment.Reference = in.Reference
	}
	if in.Date != "" {
		payment.Date = in.Date
	}
	if !in.Value.IsZero() {
		if in.Value.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		payment.Value = in.Value
	}
	if in.Status != "" {
		if !validPaymentStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		payment.Status = in.Status
	}
	payment.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(payments repository.PaymentRepository, records repository.FinancialRecordRepository) error {
		if err := payments.Update(payment); err != nil {
			return err
		}
		return records.Update(mirrorRecord(payment))
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete remove o pagamento e o lançamento espelho.
func (uc *PaymentUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(payments repository.PaymentRepository, records repository.FinancialRecordRepository) error {
		if err := payments.Delete(id); err != nil {
			return err
		}
		return records.Delete(id)
	})
}

// GetByID busca um pagamento.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	payment, err := uc.payments.GetByID(id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(payment), nil
}

// List lista pagamentos paginados.
func (uc *PaymentUseCase) List(limit, offset int) ([]*dto.PaymentResponse, error) {
	payments, err := uc.payments.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

// mirrorRecord monta o lançamento financeiro espelho de um pagamento:
// mesma chave, despesa de Mão de Obra, status traduzido.
func mirrorRecord(p *entity.PaymentRecord) *entity.FinancialRecord {
	return &entity.FinancialRecord{
		ID:          p.ID,
		Type:        entity.RecordTypeDespesa,
		Description: p.MirrorDescription(),
		Amount:      p.Value,
		Date:        p.Date,
		Status:      p.MirrorStatus(),
		Category:    entity.CategoryMaoDeObra,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func validPaymentStatus(s string) bool {
	switch s {
	case entity.StatusAgendado, entity.StatusPago, entity.StatusAtrasado:
		return true
	}
	return false
}

func toPaymentResponse(p *entity.PaymentRecord) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:        p.ID,
		Name:      p.Name,
		Reference: p.Reference,
		Date:      p.Date,
		Value:     p.Value,
		Status:    p.Status,
	}
}
