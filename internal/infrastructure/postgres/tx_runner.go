package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunApplication inicia una transacción con repos de solicitud y fumigación
// (para presentar una solicitud: solicitud + N fumigaciones, todo o nada).
func (r *TxRunner) RunApplication(ctx context.Context, fn func(
	appRepo repository.ApplicationRepository,
	fumigationRepo repository.FumigationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewApplicationRepository(tx), NewFumigationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunReport inicia una transacción con repos de fumigación y reportes (para
// registrar un reporte y aplicar el cambio de estado en la misma transacción).
func (r *TxRunner) RunReport(ctx context.Context, fn func(
	fumigationRepo repository.FumigationRepository,
	reportRepo repository.FumigationReportRepository,
	cleanupRepo repository.CleanupReportRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewFumigationRepository(tx), NewFumigationReportRepository(tx), NewCleanupReportRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
