package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

var _ repository.TeamMemberRepository = (*TeamMemberRepo)(nil)

// TeamMemberRepo implementação de TeamMemberRepository.
type TeamMemberRepo struct {
	q Querier
}

// NewTeamMemberRepository constrói o adaptador.
func NewTeamMemberRepository(q Querier) *TeamMemberRepo {
	return &TeamMemberRepo{q: q}
}

// Create persiste um integrante da equipe.
func (r *TeamMemberRepo) Create(member *entity.TeamMember) error {
	query := `
		INSERT INTO team_members (id, name, role, type, email, phone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.Name, member.Role, member.Type, member.Email, member.Phone,
		member.Status, member.CreatedAt, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}
	return nil
}

// GetByID busca um integrante por ID.
func (r *TeamMemberRepo) GetByID(id string) (*entity.TeamMember, error) {
	query := `
		SELECT id, name, role, type, email, phone, status, created_at, updated_at
		FROM team_members WHERE id = $1`
	var m entity.TeamMember
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Role, &m.Type, &m.Email, &m.Phone, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get team member: %w", err)
	}
	return &m, nil
}

// Update atualiza um integrante.
func (r *TeamMemberRepo) Update(member *entity.TeamMember) error {
	query := `
		UPDATE team_members SET name = $2, role = $3, type = $4, email = $5, phone = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		member.ID, member.Name, member.Role, member.Type, member.Email, member.Phone,
		member.Status, member.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete remove um integrante por ID.
func (r *TeamMemberRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}

// List lista a equipe com paginação, ordenada por nome.
func (r *TeamMemberRepo) List(limit, offset int) ([]*entity.TeamMember, error) {
	query := `
		SELECT id, name, role, type, email, phone, status, created_at, updated_at
		FROM team_members ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()
	var list []*entity.TeamMember
	for rows.Next() {
		var m entity.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Type, &m.Email, &m.Phone, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
