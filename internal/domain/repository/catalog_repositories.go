package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// ServiceRepository define a porta de persistência para o catálogo de serviços.
type ServiceRepository interface {
	Create(service *entity.Service) error
	GetByID(id string) (*entity.Service, error)
	Update(service *entity.Service) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Service, error)
}

// SupplierRepository define a porta de persistência para fornecedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Supplier, error)
}

// TeamMemberRepository define a porta de persistência para a equipe.
type TeamMemberRepository interface {
	Create(member *entity.TeamMember) error
	GetByID(id string) (*entity.TeamMember, error)
	Update(member *entity.TeamMember) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.TeamMember, error)
}
