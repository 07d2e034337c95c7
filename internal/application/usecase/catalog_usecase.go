package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsengenhariacivil/JSengCRM/internal/application/dto"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/entity"
	"github.com/jsengenhariacivil/JSengCRM/internal/domain/repository"
)

// ServiceUseCase mantém o catálogo de serviços.
type ServiceUseCase struct {
	repo repository.ServiceRepository
}

// NewServiceUseCase constrói o caso de uso.
func NewServiceUseCase(repo repository.ServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

// Create cadastra um serviço do catálogo.
func (uc *ServiceUseCase) Create(in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	if in.Name == "" || in.BasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	svc := &entity.Service{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Unit:        in.Unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Update atualiza um serviço.
func (uc *ServiceUseCase) Update(id string, in dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	svc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" || in.BasePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	svc.Name = in.Name
	svc.Description = in.Description
	svc.BasePrice = in.BasePrice
	svc.Unit = in.Unit
	svc.UpdatedAt = time.Now()
	if err := uc.repo.Update(svc); err != nil {
		return nil, err
	}
	return toServiceResponse(svc), nil
}

// Delete remove um serviço do catálogo.
func (uc *ServiceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista o catálogo.
func (uc *ServiceUseCase) List(limit, offset int) ([]*dto.ServiceResponse, error) {
	services, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, toServiceResponse(s))
	}
	return out, nil
}

func toServiceResponse(s *entity.Service) *dto.ServiceResponse {
	return &dto.ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		BasePrice:   s.BasePrice,
		Unit:        s.Unit,
	}
}

// SupplierUseCase mantém o cadastro de fornecedores.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase constrói o caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// Create cadastra um fornecedor.
func (uc *SupplierUseCase) Create(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Document:  in.Document,
		Email:     in.Email,
		Phone:     in.Phone,
		Category:  in.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update atualiza um fornecedor.
func (uc *SupplierUseCase) Update(id string, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier.Name = in.Name
	supplier.Document = in.Document
	supplier.Email = in.Email
	supplier.Phone = in.Phone
	supplier.Category = in.Category
	supplier.UpdatedAt = time.Now()
	if err := uc.repo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete remove um fornecedor.
func (uc *SupplierUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista fornecedores.
func (uc *SupplierUseCase) List(limit, offset int) ([]*dto.SupplierResponse, error) {
	suppliers, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, toSupplierResponse(s))
	}
	return out, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Document: s.Document,
		Email:    s.Email,
		Phone:    s.Phone,
		Category: s.Category,
	}
}

// TeamUseCase mantém o cadastro da equipe.
type TeamUseCase struct {
	repo repository.TeamMemberRepository
}

// NewTeamUseCase constrói o caso de uso.
func NewTeamUseCase(repo repository.TeamMemberRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

// Create cadastra um integrante.
func (uc *TeamUseCase) Create(in dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = "Ativo"
	}
	now := time.Now()
	member := &entity.TeamMember{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Role:      in.Role,
		Type:      in.Type,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(member); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

// Update atualiza um integrante.
func (uc *TeamUseCase) Update(id string, in dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	member.Name = in.Name
	member.Role = in.Role
	member.Type = in.Type
	member.Email = in.Email
	member.Phone = in.Phone
	if in.Status != "" {
		member.Status = in.Status
	}
	member.UpdatedAt = time.Now()
	if err := uc.repo.Update(member); err != nil {
		return nil, err
	}
	return toTeamMemberResponse(member), nil
}

// Delete remove um integrante.
func (uc *TeamUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista a equipe.
func (uc *TeamUseCase) List(limit, offset int) ([]*dto.TeamMemberResponse, error) {
	members, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toTeamMemberResponse(m))
	}
	return out, nil
}

func toTeamMemberResponse(m *entity.TeamMember) *dto.TeamMemberResponse {
	return &dto.TeamMemberResponse{
		ID:     m.ID,
		Name:   m.Name,
		Role:   m.Role,
		Type:   m.Type,
		Email:  m.Email,
		Phone:  m.Phone,
		Status: m.Status,
	}
}
