package repository

import "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"

// FumigationReportRepository puerto de persistencia para el reporte técnico.
// Relación uno a uno con Fumigation; GetByFumigation devuelve (nil, nil) si no hay reporte.
type FumigationReportRepository interface {
	Create(r *entity.FumigationReport) error
	GetByID(id string) (*entity.FumigationReport, error)
	GetByFumigation(fumigationID string) (*entity.FumigationReport, error)
}

// CleanupReportRepository puerto de persistencia para el reporte de limpieza.
type CleanupReportRepository interface {
	Create(r *entity.CleanupReport) error
	GetByID(id string) (*entity.CleanupReport, error)
	GetByFumigation(fumigationID string) (*entity.CleanupReport, error)
}
