package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

var _ repository.SignatureRepository = (*SignatureRepo)(nil)

const signatureColumns = `id, fumigation_report_id, cleanup_report_id, signer_role, image_path, image_hash, created_at`

// SignatureRepo implementación del puerto SignatureRepository sobre PostgreSQL.
// La exclusividad del padre (reporte técnico XOR limpieza) la respalda un CHECK
// en la tabla además de la validación de dominio.
type SignatureRepo struct {
	db querier
}

// NewSignatureRepository construye el adaptador de persistencia para firmas.
func NewSignatureRepository(db querier) *SignatureRepo {
	return &SignatureRepo{db: db}
}

// Create persiste una firma.
func (r *SignatureRepo) Create(s *entity.Signature) error {
	query := `
		INSERT INTO signatures (` + signatureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.FumigationReportID, s.CleanupReportID, s.SignerRole, s.ImagePath, s.ImageHash, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert signature: %w", err)
	}
	return nil
}

// GetByID obtiene una firma por ID.
func (r *SignatureRepo) GetByID(id string) (*entity.Signature, error) {
	var s entity.Signature
	err := r.db.QueryRow(context.Background(),
		`SELECT `+signatureColumns+` FROM signatures WHERE id = $1`, id,
	).Scan(&s.ID, &s.FumigationReportID, &s.CleanupReportID, &s.SignerRole, &s.ImagePath, &s.ImageHash, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signature: %w", err)
	}
	return &s, nil
}

// ListByFumigationReport lista las firmas de un reporte técnico.
func (r *SignatureRepo) ListByFumigationReport(reportID string) ([]*entity.Signature, error) {
	return r.findMany(`SELECT `+signatureColumns+` FROM signatures WHERE fumigation_report_id = $1 ORDER BY created_at`, reportID)
}

// ListByCleanupReport lista las firmas de un reporte de limpieza.
func (r *SignatureRepo) ListByCleanupReport(reportID string) ([]*entity.Signature, error) {
	return r.findMany(`SELECT `+signatureColumns+` FROM signatures WHERE cleanup_report_id = $1 ORDER BY created_at`, reportID)
}

func (r *SignatureRepo) findMany(query string, args ...any) ([]*entity.Signature, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list signatures: %w", err)
	}
	defer rows.Close()
	var list []*entity.Signature
	for rows.Next() {
		var s entity.Signature
		if err := rows.Scan(&s.ID, &s.FumigationReportID, &s.CleanupReportID, &s.SignerRole, &s.ImagePath, &s.ImageHash, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan signature: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
