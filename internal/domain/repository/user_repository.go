package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// UserRepository define a porta de persistência para usuários do sistema.
// GetByID e GetByEmail devolvem (nil, nil) quando o usuário não existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	Delete(id string) error
}
