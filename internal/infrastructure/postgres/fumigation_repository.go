package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

var _ repository.FumigationRepository = (*FumigationRepo)(nil)

const fumigationColumns = `id, application_id, lot_number, tonnage, sack_count, quality_grade,
	port_destiny, date_time, status, message, created_at, updated_at`

// FumigationRepo implementación del puerto FumigationRepository sobre PostgreSQL.
type FumigationRepo struct {
	db querier
}

// NewFumigationRepository construye el adaptador de persistencia para fumigaciones.
func NewFumigationRepository(db querier) *FumigationRepo {
	return &FumigationRepo{db: db}
}

// Create persiste una nueva fumigación.
func (r *FumigationRepo) Create(f *entity.Fumigation) error {
	query := `
		INSERT INTO fumigations (` + fumigationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		f.ID, f.ApplicationID, f.LotNumber, f.Tonnage, f.SackCount, f.QualityGrade,
		f.PortDestiny, f.DateTime, f.Status, f.Message, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fumigation: %w", err)
	}
	return nil
}

// GetByID obtiene una fumigación por ID.
func (r *FumigationRepo) GetByID(id string) (*entity.Fumigation, error) {
	var f entity.Fumigation
	err := r.db.QueryRow(context.Background(),
		`SELECT `+fumigationColumns+` FROM fumigations WHERE id = $1`, id,
	).Scan(
		&f.ID, &f.ApplicationID, &f.LotNumber, &f.Tonnage, &f.SackCount, &f.QualityGrade,
		&f.PortDestiny, &f.DateTime, &f.Status, &f.Message, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fumigation: %w", err)
	}
	return &f, nil
}

// Update sobreescribe estado, motivo y datos del lote. Sin columna de versión:
// entre dos actualizaciones concurrentes gana la última escritura.
func (r *FumigationRepo) Update(f *entity.Fumigation) error {
	query := `
		UPDATE fumigations SET lot_number = $2, tonnage = $3, sack_count = $4, quality_grade = $5,
			port_destiny = $6, date_time = $7, status = $8, message = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		f.ID, f.LotNumber, f.Tonnage, f.SackCount, f.QualityGrade,
		f.PortDestiny, f.DateTime, f.Status, f.Message, f.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update fumigation: %w", err)
	}
	return nil
}

// ListByApplication lista las fumigaciones de una solicitud.
func (r *FumigationRepo) ListByApplication(applicationID string) ([]*entity.Fumigation, error) {
	query := `SELECT ` + fumigationColumns + ` FROM fumigations WHERE application_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list fumigations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fumigation
	for rows.Next() {
		var f entity.Fumigation
		if err := rows.Scan(
			&f.ID, &f.ApplicationID, &f.LotNumber, &f.Tonnage, &f.SackCount, &f.QualityGrade,
			&f.PortDestiny, &f.DateTime, &f.Status, &f.Message, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fumigation: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
