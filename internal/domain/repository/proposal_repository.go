package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// ProposalRepository define a porta de persistência para propostas.
// Create insere cabeçalho e itens; dentro de transação quando construído
// sobre uma tx (ver postgres.TxRunner).
type ProposalRepository interface {
	Create(proposal *entity.Proposal) error
	GetByID(id string) (*entity.Proposal, error)
	UpdateStatus(id, status string) error
	List(limit, offset int) ([]*entity.Proposal, error)
	ListAll() ([]entity.Proposal, error)
}
