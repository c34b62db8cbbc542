package repository

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	// GetByRUCExcluding busca otra empresa con el mismo RUC (excluyendo excludeID,
	// vacío para no excluir). Soporta el chequeo de unicidad en creación y edición.
	GetByRUCExcluding(ruc, excludeID string) (*entity.Company, error)
	Update(company *entity.Company) error
	List(limit, offset int) ([]*entity.Company, error)
	ListByLegalRep(userID string) ([]*entity.Company, error)
}
