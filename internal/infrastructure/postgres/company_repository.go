package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, name, ruc, business_line, address, phone, legal_rep_id, created_at, updated_at`

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.RUC, company.BusinessLine, company.Address,
		company.Phone, company.LegalRepID, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRUCAlreadyExists
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.findOne(`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
}

// GetByRUCExcluding busca otra empresa con el mismo RUC, excluyendo excludeID
// (vacío para no excluir ninguna). Es el chequeo de unicidad de creación y edición.
func (r *CompanyRepo) GetByRUCExcluding(ruc, excludeID string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ruc = $1 AND id <> $2 LIMIT 1`
	return r.findOne(query, ruc, excludeID)
}

func (r *CompanyRepo) findOne(query string, args ...any) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Name, &c.RUC, &c.BusinessLine, &c.Address, &c.Phone,
		&c.LegalRepID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, ruc = $3, business_line = $4, address = $5, phone = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.Name, company.RUC, company.BusinessLine, company.Address,
		company.Phone, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRUCAlreadyExists
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// List lista empresas con paginación.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.findMany(query, limit, offset)
}

// ListByLegalRep lista las empresas cuyo representante legal es el usuario dado.
func (r *CompanyRepo) ListByLegalRep(userID string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE legal_rep_id = $1 ORDER BY created_at DESC`
	return r.findMany(query, userID)
}

func (r *CompanyRepo) findMany(query string, args ...any) ([]*entity.Company, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(
			&c.ID, &c.Name, &c.RUC, &c.BusinessLine, &c.Address, &c.Phone,
			&c.LegalRepID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
