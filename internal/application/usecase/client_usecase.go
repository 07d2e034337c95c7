package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// ClientUseCase aplica as regras de negócio de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso com a porta de persistência.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cadastra um cliente. Nome e documento são obrigatórios.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Document == "" {
		return nil, domain.ErrInvalidInput
	}
	clientType := in.Type
	if clientType == "" {
		clientType = entity.ClientTypePessoaFisica
	}
	now := time.Now()
	client := &entity.Client{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		Type:      clientType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID devolve o cliente ou ErrNotFound.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update atualiza os dados do cliente.
func (uc *ClientUseCase) Update(id string, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.Document == "" {
		return nil, domain.ErrInvalidInput
	}
	client.Name = in.Name
	client.Document = in.Document
	client.Email = in.Email
	client.Phone = in.Phone
	client.Address = in.Address
	if in.Type != "" {
		client.Type = in.Type
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete remove o cliente.
func (uc *ClientUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista clientes com paginação.
func (uc *ClientUseCase) List(limit, offset int) ([]*dto.ClientResponse, error) {
	clients, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out, nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:       c.ID,
		Name:     c.Name,
		Document: c.Document,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		Type:     c.Type,
	}
}
