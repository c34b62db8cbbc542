package usecase

import (
	"time"

	"github.com/google/uuid"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas exportadoras.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	resolver *appauthz.Resolver
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, resolver *appauthz.Resolver) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, resolver: resolver}
}

// Create registra una empresa; el actor autenticado queda como representante legal.
// Devuelve domain.ErrRUCAlreadyExists si el RUC pertenece a otra empresa.
func (uc *CompanyUseCase) Create(actorID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByRUCExcluding(in.RUC, "")
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRUCAlreadyExists
	}
	now := time.Now()
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		RUC:          in.RUC,
		BusinessLine: in.BusinessLine,
		Address:      in.Address,
		Phone:        in.Phone,
		LegalRepID:   actorID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa; solo el representante legal o un admin pueden verla.
func (uc *CompanyUseCase) GetByID(actorID string, actorRoles []string, id string) (*dto.CompanyResponse, error) {
	if err := uc.resolver.AuthorizeCompany(id, actorID, actorRoles); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return entityToCompanyResponse(company), nil
}

// Update edita los datos de la empresa. La unicidad del RUC se verifica contra
// las demás empresas, nunca contra la propia fila.
func (uc *CompanyUseCase) Update(actorID string, actorRoles []string, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := uc.resolver.AuthorizeCompany(id, actorID, actorRoles); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	other, err := uc.repo.GetByRUCExcluding(in.RUC, id)
	if err != nil {
		return nil, err
	}
	if other != nil {
		return nil, domain.ErrRUCAlreadyExists
	}
	company.Name = in.Name
	company.RUC = in.RUC
	company.BusinessLine = in.BusinessLine
	company.Address = in.Address
	company.Phone = in.Phone
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// List lista todas las empresas con paginación (ruta de admin).
func (uc *CompanyUseCase) List(limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMine lista las empresas donde el actor es representante legal.
func (uc *CompanyUseCase) ListMine(actorID string) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListByLegalRep(actorID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Offset: 0},
	}, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:           c.ID,
		Name:         c.Name,
		RUC:          c.RUC,
		BusinessLine: c.BusinessLine,
		Address:      c.Address,
		Phone:        c.Phone,
		LegalRepID:   c.LegalRepID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
