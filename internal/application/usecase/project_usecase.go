package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// placeholder quando o cliente referenciado não existe mais.
const unknownClientName = "Cliente não encontrado"

// ProjectUseCase aplica as regras de negócio de obras e projetos.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase constrói o caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

// Create cadastra uma obra vinculada a um cliente existente.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Title == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateProject(in.Status, in.Progress); err != nil {
		return nil, err
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.StatusPendente
	}
	now := time.Now()
	project := &entity.Project{
		ID:         uuid.New().String(),
		Title:      in.Title,
		ClientID:   in.ClientID,
		ClientName: client.Name,
		Address:    in.Address,
		Status:     status,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Budget:     in.Budget,
		Progress:   clampProgress(in.Progress),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Update atualiza a obra aplicando a mesma validação de status/progresso.
func (uc *ProjectUseCase) Update(id string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validateProject(in.Status, in.Progress); err != nil {
		return nil, err
	}
	if in.ClientID != "" && in.ClientID != project.ClientID {
		client, err := uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
		if client == nil {
			return nil, domain.ErrNotFound
		}
		project.ClientID = in.ClientID
		project.ClientName = client.Name
	}
	project.Title = in.Title
	project.Address = in.Address
	if in.Status != "" {
		project.Status = in.Status
	}
	project.StartDate = in.StartDate
	project.EndDate = in.EndDate
	project.Budget = in.Budget
	project.Progress = clampProgress(in.Progress)
	project.UpdatedAt = time.Now()

	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID devolve a obra ou ErrNotFound.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List lista obras com paginação.
func (uc *ProjectUseCase) List(limit, offset int) ([]*dto.ProjectResponse, error) {
	projects, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// validateProject bloqueia Concluído com progresso parcial. No sistema
// antigo essa regra vivia só na interface; aqui ela vale no serviço.
func validateProject(status string, progress int) error {
	if status == entity.StatusConcluido && progress != 100 {
		return domain.ErrInvalidInput
	}
	return nil
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	name := p.ClientName
	if name == "" {
		name = unknownClientName
	}
	return &dto.ProjectResponse{
		ID:         p.ID,
		Title:      p.Title,
		ClientID:   p.ClientID,
		ClientName: name,
		Address:    p.Address,
		Status:     p.Status,
		StartDate:  p.StartDate,
		EndDate:    p.EndDate,
		Budget:     p.Budget,
		Progress:   p.Progress,
	}
}
