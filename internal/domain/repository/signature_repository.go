package repository

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// SignatureRepository puerto de persistencia para firmas de reportes.
type SignatureRepository interface {
	Create(s *entity.Signature) error
	GetByID(id string) (*entity.Signature, error)
	ListByFumigationReport(reportID string) ([]*entity.Signature, error)
	ListByCleanupReport(reportID string) ([]*entity.Signature, error)
}
