package repository

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// FumigationRepository puerto de persistencia para Fumigation.
// Update sobreescribe estado y motivo sin control de versión: última escritura
// gana, sin garantía de aislamiento entre actualizaciones concurrentes.
type FumigationRepository interface {
	Create(f *entity.Fumigation) error
	GetByID(id string) (*entity.Fumigation, error)
	Update(f *entity.Fumigation) error
	ListByApplication(applicationID string) ([]*entity.Fumigation, error)
}
