package repository

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// ApplicationRepository puerto de persistencia para FumigationApplication.
type ApplicationRepository interface {
	Create(app *entity.FumigationApplication) error
	GetByID(id string) (*entity.FumigationApplication, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.FumigationApplication, error)
	List(limit, offset int) ([]*entity.FumigationApplication, error)
}
