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

var _ repository.FinancialRecordRepository = (*FinancialRecordRepo)(nil)

// FinancialRecordRepo implementação de FinancialRecordRepository.
// A data de competência sai como string ISO via to_char.
type FinancialRecordRepo struct {
	q Querier
}

// NewFinancialRecordRepository constrói o adaptador.
func NewFinancialRecordRepository(q Querier) *FinancialRecordRepo {
	return &FinancialRecordRepo{q: q}
}

const recordColumns = `
	id, type, description, amount, to_char(date, 'YYYY-MM-DD'), status, category,
	COALESCE(project_id::text, ''), created_at, updated_at`

// Create persiste um lançamento. O espelho de pagamento usa o mesmo ID do
// pagamento; colisão de chave sinaliza ErrDuplicate.
func (r *FinancialRecordRepo) Create(record *entity.FinancialRecord) error {
	query := `
		INSERT INTO financial_records (id, type, description, amount, date, status, category, project_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, NULLIF($8, '')::uuid, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Type, record.Description, record.Amount, record.Date,
		record.Status, record.Category, record.ProjectID, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert financial record: %w", err)
	}
	return nil
}

// GetByID busca um lançamento por ID.
func (r *FinancialRecordRepo) GetByID(id string) (*entity.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records WHERE id = $1`
	var rec entity.FinancialRecord
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.Type, &rec.Description, &rec.Amount, &rec.Date,
		&rec.Status, &rec.Category, &rec.ProjectID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial record: %w", err)
	}
	return &rec, nil
}

// Update atualiza um lançamento.
func (r *FinancialRecordRepo) Update(record *entity.FinancialRecord) error {
	query := `
		UPDATE financial_records SET type = $2, description = $3, amount = $4, date = $5::date,
			status = $6, category = $7, project_id = NULLIF($8, '')::uuid, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.Type, record.Description, record.Amount, record.Date,
		record.Status, record.Category, record.ProjectID, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update financial record: %w", err)
	}
	return nil
}

// Delete remove um lançamento por ID.
func (r *FinancialRecordRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM financial_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete financial record: %w", err)
	}
	return nil
}

// ListAll devolve o banco inteiro, mais recente primeiro; as derivações do
// pacote finance operam sobre esse snapshot.
func (r *FinancialRecordRepo) ListAll() ([]entity.FinancialRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM financial_records ORDER BY date DESC, created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list financial records: %w", err)
	}
	defer rows.Close()
	var list []entity.FinancialRecord
	for rows.Next() {
		var rec entity.FinancialRecord
		if err := rows.Scan(&rec.ID, &rec.Type, &rec.Description, &rec.Amount, &rec.Date,
			&rec.Status, &rec.Category, &rec.ProjectID, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan financial record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}
