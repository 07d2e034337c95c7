package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementação de ProjectRepository. Leituras trazem o nome do
// cliente denormalizado via LEFT JOIN; as datas saem como string ISO pelo
// to_char para a camada de domínio nunca fazer parse de timestamp.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository constrói o adaptador.
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `
	p.id, p.title, p.client_id, COALESCE(c.name, ''), p.address, p.status,
	COALESCE(to_char(p.start_date, 'YYYY-MM-DD'), ''),
	COALESCE(to_char(p.end_date, 'YYYY-MM-DD'), ''),
	p.budget, p.progress, p.created_at, p.updated_at`

// Create persiste um novo projeto.
func (r *ProjectRepo) Create(project *entity.Project) error {
	query := `
		INSERT INTO projects (id, title, client_id, address, status, start_date, end_date, budget, progress, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::date, NULLIF($7, '')::date, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Title, project.ClientID, project.Address, project.Status,
		project.StartDate, project.EndDate, project.Budget, project.Progress,
		project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID busca um projeto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p LEFT JOIN clients c ON c.id = p.client_id
		WHERE p.id = $1`
	var p entity.Project
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Title, &p.ClientID, &p.ClientName, &p.Address, &p.Status,
		&p.StartDate, &p.EndDate, &p.Budget, &p.Progress, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

// Update atualiza um projeto.
func (r *ProjectRepo) Update(project *entity.Project) error {
	query := `
		UPDATE projects SET title = $2, client_id = $3, address = $4, status = $5,
			start_date = NULLIF($6, '')::date, end_date = NULLIF($7, '')::date,
			budget = $8, progress = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		project.ID, project.Title, project.ClientID, project.Address, project.Status,
		project.StartDate, project.EndDate, project.Budget, project.Progress, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// List lista projetos paginados, mais recentes primeiro.
func (r *ProjectRepo) List(limit, offset int) ([]*entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p LEFT JOIN clients c ON c.id = p.client_id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.ClientID, &p.ClientName, &p.Address, &p.Status,
			&p.StartDate, &p.EndDate, &p.Budget, &p.Progress, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListAll devolve todos os projetos; o painel agrega em memória.
func (r *ProjectRepo) ListAll() ([]entity.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p LEFT JOIN clients c ON c.id = p.client_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all projects: %w", err)
	}
	defer rows.Close()
	var list []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.ClientID, &p.ClientName, &p.Address, &p.Status,
			&p.StartDate, &p.EndDate, &p.Budget, &p.Progress, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
