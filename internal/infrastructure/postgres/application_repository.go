package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

var _ repository.ApplicationRepository = (*ApplicationRepo)(nil)

// ApplicationRepo implementación del puerto ApplicationRepository sobre PostgreSQL.
type ApplicationRepo struct {
	db querier
}

// NewApplicationRepository construye el adaptador de persistencia para solicitudes.
func NewApplicationRepository(db querier) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Create persiste una nueva solicitud.
func (r *ApplicationRepo) Create(app *entity.FumigationApplication) error {
	_, err := r.db.Exec(context.Background(),
		`INSERT INTO fumigation_applications (id, company_id, created_at) VALUES ($1, $2, $3)`,
		app.ID, app.CompanyID, app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID.
func (r *ApplicationRepo) GetByID(id string) (*entity.FumigationApplication, error) {
	var a entity.FumigationApplication
	err := r.db.QueryRow(context.Background(),
		`SELECT id, company_id, created_at FROM fumigation_applications WHERE id = $1`, id,
	).Scan(&a.ID, &a.CompanyID, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return &a, nil
}

// ListByCompany lista las solicitudes de una empresa con paginación.
func (r *ApplicationRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.FumigationApplication, error) {
	query := `
		SELECT id, company_id, created_at FROM fumigation_applications
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.findMany(query, companyID, limit, offset)
}

// List lista todas las solicitudes con paginación.
func (r *ApplicationRepo) List(limit, offset int) ([]*entity.FumigationApplication, error) {
	query := `
		SELECT id, company_id, created_at FROM fumigation_applications
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.findMany(query, limit, offset)
}

func (r *ApplicationRepo) findMany(query string, args ...any) ([]*entity.FumigationApplication, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()
	var list []*entity.FumigationApplication
	for rows.Next() {
		var a entity.FumigationApplication
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
