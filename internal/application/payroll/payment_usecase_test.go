package payroll

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

type fakePaymentRepo struct {
	byID    map[string]entity.PaymentRecord
	failOps map[string]error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{byID: map[string]entity.PaymentRecord{}, failOps: map[string]error{}}
}

func (r *fakePaymentRepo) Create(p *entity.PaymentRecord) error {
	if err := r.failOps["create"]; err != nil {
		return err
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) GetByID(id string) (*entity.PaymentRecord, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (r *fakePaymentRepo) Update(p *entity.PaymentRecord) error {
	if err := r.failOps["update"]; err != nil {
		return err
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) Delete(id string) error {
	if err := r.failOps["delete"]; err != nil {
		return err
	}
	delete(r.byID, id)
	return nil
}

func (r *fakePaymentRepo) List(limit, offset int) ([]*entity.PaymentRecord, error) {
	out := make([]*entity.PaymentRecord, 0, len(r.byID))
	for id := range r.byID {
		p := r.byID[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakePaymentRepo) ListAll() ([]entity.PaymentRecord, error) {
	out := make([]entity.PaymentRecord, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

type fakeRecordRepo struct {
	byID    map[string]entity.FinancialRecord
	failOps map[string]error
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{byID: map[string]entity.FinancialRecord{}, failOps: map[string]error{}}
}

func (r *fakeRecordRepo) Create(rec *entity.FinancialRecord) error {
	if err := r.failOps["create"]; err != nil {
		return err
	}
	r.byID[rec.ID] = *rec
	return nil
}

func (r *fakeRecordRepo) GetByID(id string) (*entity.FinancialRecord, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := rec
	return &cp, nil
}

func (r *fakeRecordRepo) Update(rec *entity.FinancialRecord) error {
	if err := r.failOps["update"]; err != nil {
		return err
	}
	r.byID[rec.ID] = *rec
	return nil
}

func (r *fakeRecordRepo) Delete(id string) error {
	if err := r.failOps["delete"]; err != nil {
		return err
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeRecordRepo) ListAll() ([]entity.FinancialRecord, error) {
	out := make([]entity.FinancialRecord, 0, len(r.byID))
	for _, rec := range r.byID {
		out = append(out, rec)
	}
	return out, nil
}

// fakeTxRunner copia o estado dos repositórios antes de executar fn e o
// restaura se fn falhar, imitando o rollback do banco.
type fakeTxRunner struct {
	payments *fakePaymentRepo
	records  *fakeRecordRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.PaymentRepository, repository.FinancialRecordRepository) error) error {
	paySnap := make(map[string]entity.PaymentRecord, len(t.payments.byID))
	for k, v := range t.payments.byID {
		paySnap[k] = v
	}
	recSnap := make(map[string]entity.FinancialRecord, len(t.records.byID))
	for k, v := range t.records.byID {
		recSnap[k] = v
	}
	if err := fn(t.payments, t.records); err != nil {
		t.payments.byID = paySnap
		t.records.byID = recSnap
		return err
	}
	return nil
}

func newPaymentFixture() (*PaymentUseCase, *fakePaymentRepo, *fakeRecordRepo) {
	payments := newFakePaymentRepo()
	records := newFakeRecordRepo()
	uc := NewPaymentUseCase(payments, &fakeTxRunner{payments: payments, records: records})
	return uc, payments, records
}

func TestPaymentCreateMirrorsRecord(t *testing.T) {
	uc, payments, records := newPaymentFixture()

	out, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:      "José da Silva",
		Reference: "Semana 12 - Obra Jardins",
		Date:      "2024-03-22",
		Value:     decimal.NewFromInt(1800),
		Status:    entity.StatusAgendado,
	})
	require.NoError(t, err)

	require.Len(t, payments.byID, 1)
	require.Len(t, records.byID, 1)

	mirror, ok := records.byID[out.ID]
	require.True(t, ok, "o espelho usa o mesmo ID do pagamento")
	assert.Equal(t, entity.RecordTypeDespesa, mirror.Type)
	assert.Equal(t, entity.CategoryMaoDeObra, mirror.Category)
	assert.Equal(t, "Pagamento: José da Silva - Semana 12 - Obra Jardins", mirror.Description)
	assert.Equal(t, entity.StatusPendente, mirror.Status, "Agendado vira Pendente no espelho")
	assert.True(t, mirror.Amount.Equal(decimal.NewFromInt(1800)))
	assert.Equal(t, "2024-03-22", mirror.Date)
}

func TestPaymentCreatePagoKeepsStatus(t *testing.T) {
	uc, _, records := newPaymentFixture()

	out, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:   "Maria",
		Date:   "2024-03-01",
		Value:  decimal.NewFromInt(500),
		Status: entity.StatusPago,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPago, records.byID[out.ID].Status)
}

func TestPaymentCreateRollsBackWhenMirrorFails(t *testing.T) {
	uc, payments, records := newPaymentFixture()
	records.failOps["create"] = errors.New("falha no banco")

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:  "José",
		Date:  "2024-03-22",
		Value: decimal.NewFromInt(100),
	})
	require.Error(t, err)
	assert.Empty(t, payments.byID, "pagamento não pode sobrar sem o espelho")
	assert.Empty(t, records.byID)
}

func TestPaymentUpdateRealignsMirror(t *testing.T) {
	uc, _, records := newPaymentFixture()

	out, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:      "José",
		Reference: "Semana 12",
		Date:      "2024-03-22",
		Value:     decimal.NewFromInt(1800),
		Status:    entity.StatusAgendado,
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), out.ID, dto.CreatePaymentRequest{
		Status: entity.StatusPago,
		Value:  decimal.NewFromInt(2000),
	})
	require.NoError(t, err)

	mirror := records.byID[out.ID]
	assert.Equal(t, entity.StatusPago, mirror.Status)
	assert.True(t, mirror.Amount.Equal(decimal.NewFromInt(2000)))
	assert.Equal(t, "Pagamento: José - Semana 12", mirror.Description)
}

func TestPaymentUpdateRollsBackWhenMirrorFails(t *testing.T) {
	uc, payments, records := newPaymentFixture()

	out, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:  "José",
		Date:  "2024-03-22",
		Value: decimal.NewFromInt(1800),
	})
	require.NoError(t, err)
	records.failOps["update"] = errors.New("falha no banco")

	_, err = uc.Update(context.Background(), out.ID, dto.CreatePaymentRequest{Status: entity.StatusPago})
	require.Error(t, err)

	assert.Equal(t, entity.StatusAgendado, payments.byID[out.ID].Status, "pagamento volta ao estado anterior")
	assert.Equal(t, entity.StatusPendente, records.byID[out.ID].Status)
}

func TestPaymentDeleteRemovesBoth(t *testing.T) {
	uc, payments, records := newPaymentFixture()

	out, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:  "José",
		Date:  "2024-03-22",
		Value: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), out.ID))
	assert.Empty(t, payments.byID)
	assert.Empty(t, records.byID)
}

func TestPaymentDeleteRollsBackWhenMirrorFails(t *testing.T) {
	uc, payments, records := newPaymentFixture()

	out, err := uc.Create(context.Background(), dto.CreatePaymentRequest{
		Name:  "José",
		Date:  "2024-03-22",
		Value: decimal.NewFromInt(100),
	})
	require.NoError(t, err)
	records.failOps["delete"] = errors.New("falha no banco")

	require.Error(t, uc.Delete(context.Background(), out.ID))
	assert.Len(t, payments.byID, 1, "exclusão parcial não pode persistir")
	assert.Len(t, records.byID, 1)
}

func TestPaymentCreateValidation(t *testing.T) {
	uc, _, _ := newPaymentFixture()

	_, err := uc.Create(context.Background(), dto.CreatePaymentRequest{Date: "2024-01-01", Value: decimal.NewFromInt(10)})
	assert.Error(t, err, "nome obrigatório")

	_, err = uc.Create(context.Background(), dto.CreatePaymentRequest{Name: "José", Value: decimal.NewFromInt(10)})
	assert.Error(t, err, "data obrigatória")

	_, err = uc.Create(context.Background(), dto.CreatePaymentRequest{Name: "José", Date: "2024-01-01", Value: decimal.NewFromInt(-5)})
	assert.Error(t, err, "valor negativo")

	_, err = uc.Create(context.Background(), dto.CreatePaymentRequest{Name: "José", Date: "2024-01-01", Value: decimal.NewFromInt(10), Status: "Cancelado"})
	assert.Error(t, err, "status desconhecido")
}
