package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

var _ repository.ProposalRepository = (*ProposalRepo)(nil)

// ProposalRepo implementação de ProposalRepository. Cabeçalho e itens moram
// em tabelas separadas; Create grava os dois e por isso é sempre chamado
// dentro de transação (ver TxRunner.RunProposal).
type ProposalRepo struct {
	q Querier
}

// NewProposalRepository constrói o adaptador.
func NewProposalRepository(q Querier) *ProposalRepo {
	return &ProposalRepo{q: q}
}

// Create insere o cabeçalho e os itens preservando a ordem de inserção.
func (r *ProposalRepo) Create(proposal *entity.Proposal) error {
	ctx := context.Background()
	query := `
		INSERT INTO proposals (id, client_id, total, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		proposal.ID, proposal.ClientID, proposal.Total, proposal.Status, proposal.Date,
		proposal.CreatedAt, proposal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert proposal: %w", err)
	}

	itemQuery := `
		INSERT INTO proposal_items (proposal_id, position, service_id, name, quantity, unit_price)
		VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6)`
	for i, item := range proposal.Items {
		if _, err := r.q.Exec(ctx, itemQuery,
			proposal.ID, i, item.ServiceID, item.Name, item.Quantity, item.UnitPrice,
		); err != nil {
			return fmt.Errorf("insert proposal item: %w", err)
		}
	}
	return nil
}

// GetByID busca a proposta com os itens.
func (r *ProposalRepo) GetByID(id string) (*entity.Proposal, error) {
	query := `
		SELECT p.id, p.client_id, COALESCE(c.name, ''), p.total, p.status,
			to_char(p.date, 'YYYY-MM-DD'), p.created_at, p.updated_at
		FROM proposals p LEFT JOIN clients c ON c.id = p.client_id
		WHERE p.id = $1`
	var p entity.Proposal
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ClientID, &p.ClientName, &p.Total, &p.Status, &p.Date, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proposal: %w", err)
	}
	items, err := r.itemsFor(p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// UpdateStatus troca o status da proposta.
func (r *ProposalRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE proposals SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update proposal status: %w", err)
	}
	return nil
}

// List lista propostas paginadas com itens, mais recentes primeiro.
func (r *ProposalRepo) List(limit, offset int) ([]*entity.Proposal, error) {
	query := `
		SELECT p.id, p.client_id, COALESCE(c.name, ''), p.total, p.status,
			to_char(p.date, 'YYYY-MM-DD'), p.created_at, p.updated_at
		FROM proposals p LEFT JOIN clients c ON c.id = p.client_id
		ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proposal
	for rows.Next() {
		var p entity.Proposal
		if err := rows.Scan(&p.ID, &p.ClientID, &p.ClientName, &p.Total, &p.Status, &p.Date, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		items, err := r.itemsFor(p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return list, nil
}

// ListAll devolve todas as propostas com itens; o painel agrega em memória.
func (r *ProposalRepo) ListAll() ([]entity.Proposal, error) {
	query := `
		SELECT p.id, p.client_id, COALESCE(c.name, ''), p.total, p.status,
			to_char(p.date, 'YYYY-MM-DD'), p.created_at, p.updated_at
		FROM proposals p LEFT JOIN clients c ON c.id = p.client_id
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all proposals: %w", err)
	}
	defer rows.Close()
	var list []entity.Proposal
	for rows.Next() {
		var p entity.Proposal
		if err := rows.Scan(&p.ID, &p.ClientID, &p.ClientName, &p.Total, &p.Status, &p.Date, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range list {
		items, err := r.itemsFor(list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].Items = items
	}
	return list, nil
}

func (r *ProposalRepo) itemsFor(proposalID string) ([]entity.ProposalItem, error) {
	query := `
		SELECT COALESCE(service_id::text, ''), name, quantity, unit_price
		FROM proposal_items WHERE proposal_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, proposalID)
	if err != nil {
		return nil, fmt.Errorf("list proposal items: %w", err)
	}
	defer rows.Close()
	var items []entity.ProposalItem
	for rows.Next() {
		var it entity.ProposalItem
		if err := rows.Scan(&it.ServiceID, &it.Name, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan proposal item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
