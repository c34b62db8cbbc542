package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

var _ repository.FumigationReportRepository = (*FumigationReportRepo)(nil)
var _ repository.CleanupReportRepository = (*CleanupReportRepo)(nil)

// Técnicos e insumos se guardan como JSONB: son listas de valor que siempre se
// leen completas junto al reporte, nunca se consultan por separado.

const fumigationReportColumns = `id, fumigation_id, technicians, supplies, height, width, length,
	temperature, humidity, phosphine_ppm, electric_danger, falling_danger, hit_danger, other_danger,
	observations, started_at, finished_at, created_at`

// FumigationReportRepo implementación del puerto FumigationReportRepository sobre PostgreSQL.
type FumigationReportRepo struct {
	db querier
}

// NewFumigationReportRepository construye el adaptador de persistencia del reporte técnico.
func NewFumigationReportRepository(db querier) *FumigationReportRepo {
	return &FumigationReportRepo{db: db}
}

// Create persiste el reporte técnico. El UNIQUE sobre fumigation_id garantiza
// la relación uno a uno incluso ante dos envíos simultáneos.
func (r *FumigationReportRepo) Create(report *entity.FumigationReport) error {
	technicians, err := json.Marshal(report.Technicians)
	if err != nil {
		return fmt.Errorf("marshal technicians: %w", err)
	}
	supplies, err := json.Marshal(report.Supplies)
	if err != nil {
		return fmt.Errorf("marshal supplies: %w", err)
	}
	query := `
		INSERT INTO fumigation_reports (` + fumigationReportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err = r.db.Exec(context.Background(), query,
		report.ID, report.FumigationID, technicians, supplies,
		report.Dimensions.Height, report.Dimensions.Width, report.Dimensions.Length,
		report.Environmental.Temperature, report.Environmental.Humidity, report.Environmental.PhosphinePPM,
		report.Safety.ElectricDanger, report.Safety.FallingDanger, report.Safety.HitDanger, report.Safety.OtherDanger,
		report.Observations, report.StartedAt, report.FinishedAt, report.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReportAlreadyExists
		}
		return fmt.Errorf("insert fumigation report: %w", err)
	}
	return nil
}

// GetByID obtiene el reporte técnico por ID.
func (r *FumigationReportRepo) GetByID(id string) (*entity.FumigationReport, error) {
	return r.findOne(`SELECT `+fumigationReportColumns+` FROM fumigation_reports WHERE id = $1`, id)
}

// GetByFumigation obtiene el reporte técnico de una fumigación; (nil, nil) si no hay.
func (r *FumigationReportRepo) GetByFumigation(fumigationID string) (*entity.FumigationReport, error) {
	return r.findOne(`SELECT `+fumigationReportColumns+` FROM fumigation_reports WHERE fumigation_id = $1`, fumigationID)
}

func (r *FumigationReportRepo) findOne(query string, arg any) (*entity.FumigationReport, error) {
	var rep entity.FumigationReport
	var technicians, supplies []byte
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&rep.ID, &rep.FumigationID, &technicians, &supplies,
		&rep.Dimensions.Height, &rep.Dimensions.Width, &rep.Dimensions.Length,
		&rep.Environmental.Temperature, &rep.Environmental.Humidity, &rep.Environmental.PhosphinePPM,
		&rep.Safety.ElectricDanger, &rep.Safety.FallingDanger, &rep.Safety.HitDanger, &rep.Safety.OtherDanger,
		&rep.Observations, &rep.StartedAt, &rep.FinishedAt, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fumigation report: %w", err)
	}
	if err := json.Unmarshal(technicians, &rep.Technicians); err != nil {
		return nil, fmt.Errorf("unmarshal technicians: %w", err)
	}
	if err := json.Unmarshal(supplies, &rep.Supplies); err != nil {
		return nil, fmt.Errorf("unmarshal supplies: %w", err)
	}
	return &rep, nil
}

const cleanupReportColumns = `id, fumigation_id, technicians, strips_state, lot_condition,
	electric_danger, falling_danger, hit_danger, other_danger, observations, started_at, finished_at, created_at`

// CleanupReportRepo implementación del puerto CleanupReportRepository sobre PostgreSQL.
type CleanupReportRepo struct {
	db querier
}

// NewCleanupReportRepository construye el adaptador de persistencia del reporte de limpieza.
func NewCleanupReportRepository(db querier) *CleanupReportRepo {
	return &CleanupReportRepo{db: db}
}

// Create persiste el reporte de limpieza (uno por fumigación, UNIQUE en DB).
func (r *CleanupReportRepo) Create(report *entity.CleanupReport) error {
	technicians, err := json.Marshal(report.Technicians)
	if err != nil {
		return fmt.Errorf("marshal technicians: %w", err)
	}
	query := `
		INSERT INTO cleanup_reports (` + cleanupReportColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.db.Exec(context.Background(), query,
		report.ID, report.FumigationID, technicians, report.StripsState, report.LotCondition,
		report.Safety.ElectricDanger, report.Safety.FallingDanger, report.Safety.HitDanger, report.Safety.OtherDanger,
		report.Observations, report.StartedAt, report.FinishedAt, report.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReportAlreadyExists
		}
		return fmt.Errorf("insert cleanup report: %w", err)
	}
	return nil
}

// GetByID obtiene el reporte de limpieza por ID.
func (r *CleanupReportRepo) GetByID(id string) (*entity.CleanupReport, error) {
	return r.findOne(`SELECT `+cleanupReportColumns+` FROM cleanup_reports WHERE id = $1`, id)
}

// GetByFumigation obtiene el reporte de limpieza de una fumigación; (nil, nil) si no hay.
func (r *CleanupReportRepo) GetByFumigation(fumigationID string) (*entity.CleanupReport, error) {
	return r.findOne(`SELECT `+cleanupReportColumns+` FROM cleanup_reports WHERE fumigation_id = $1`, fumigationID)
}

func (r *CleanupReportRepo) findOne(query string, arg any) (*entity.CleanupReport, error) {
	var rep entity.CleanupReport
	var technicians []byte
	err := r.db.QueryRow(context.Background(), query, arg).Scan(
		&rep.ID, &rep.FumigationID, &technicians, &rep.StripsState, &rep.LotCondition,
		&rep.Safety.ElectricDanger, &rep.Safety.FallingDanger, &rep.Safety.HitDanger, &rep.Safety.OtherDanger,
		&rep.Observations, &rep.StartedAt, &rep.FinishedAt, &rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cleanup report: %w", err)
	}
	if err := json.Unmarshal(technicians, &rep.Technicians); err != nil {
		return nil, fmt.Errorf("unmarshal technicians: %w", err)
	}
	return &rep, nil
}
