package repository

import "github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"

// ProjectRepository define a porta de persistência para Project.
// Leituras trazem ClientName denormalizado via join.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	Update(project *entity.Project) error
	List(limit, offset int) ([]*entity.Project, error)
	ListAll() ([]entity.Project, error)
}
