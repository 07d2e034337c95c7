package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementação de PaymentRepository. As mutações rodam sempre
// dentro da transação aberta pelo TxRunner, junto com o lançamento espelho.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository constrói o adaptador.
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste um pagamento.
func (r *PaymentRepo) Create(payment *entity.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (id, name, reference, date, value, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.Name, payment.Reference, payment.Date, payment.Value,
		payment.Status, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID busca um pagamento por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.PaymentRecord, error) {
	query := `
		SELECT id, name, reference, to_char(date, 'YYYY-MM-DD'), value, status, created_at, updated_at
		FROM payment_records WHERE id = $1`
	var p entity.PaymentRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Reference, &p.Date, &p.Value, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}

// Update atualiza um pagamento.
func (r *PaymentRepo) Update(payment *entity.PaymentRecord) error {
	query := `
		UPDATE payment_records SET name = $2, reference = $3, date = $4::date, value = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		payment.ID, payment.Name, payment.Reference, payment.Date, payment.Value,
		payment.Status, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

// Delete remove um pagamento por ID.
func (r *PaymentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM payment_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}

// List lista pagamentos paginados, mais recentes primeiro.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.PaymentRecord, error) {
	query := `
		SELECT id, name, reference, to_char(date, 'YYYY-MM-DD'), value, status, created_at, updated_at
		FROM payment_records ORDER BY date DESC, created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentRecord
	for rows.Next() {
		var p entity.PaymentRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Reference, &p.Date, &p.Value, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListAll devolve todos os pagamentos; o painel agrega o volume por recebedor.
func (r *PaymentRepo) ListAll() ([]entity.PaymentRecord, error) {
	query := `
		SELECT id, name, reference, to_char(date, 'YYYY-MM-DD'), value, status, created_at, updated_at
		FROM payment_records ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all payments: %w", err)
	}
	defer rows.Close()
	var list []entity.PaymentRecord
	for rows.Next() {
		var p entity.PaymentRecord
		if err := rows.Scan(&p.ID, &p.Name, &p.Reference, &p.Date, &p.Value, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
