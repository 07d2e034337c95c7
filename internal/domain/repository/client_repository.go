package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// ClientRepository define a porta de persistência para Client (DIP).
// GetByID devolve (nil, nil) quando o cliente não existe.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Client, error)
}
