package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

func newFumigationUC(fx *fixture) *usecase.FumigationUseCase {
	return usecase.NewFumigationUseCase(fx.fumigations, fx.users, fx.resolver, fx.notifier)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus: guard del motivo de rechazo
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_RechazoSinMotivo_Falla(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	_, err := uc.UpdateStatus(context.Background(), fixtureAdminID, adminRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "REJECTED"})

	assert.ErrorIs(t, err, domain.ErrRejectionMsgRequired)

	f, _ := fx.fumigations.GetByID(fixtureFumigationID)
	assert.Equal(t, entity.StatusPending, f.Status, "la fumigación no debe mutar")
}

func TestUpdateStatus_RechazoConMotivo_Persiste(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	out, err := uc.UpdateStatus(context.Background(), fixtureAdminID, adminRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "REJECTED", Message: "falta documentación"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, out.Status)
	assert.Equal(t, "falta documentación", out.Message)

	f, _ := fx.fumigations.GetByID(fixtureFumigationID)
	assert.Equal(t, entity.StatusRejected, f.Status)
	assert.Equal(t, "falta documentación", f.Message)
}

func TestUpdateStatus_AprobarLimpiaMotivoAnterior(t *testing.T) {
	fx := newFixture()
	f, _ := fx.fumigations.GetByID(fixtureFumigationID)
	f.Status = entity.StatusRejected
	f.Message = "motivo previo"
	uc := newFumigationUC(fx)

	out, err := uc.UpdateStatus(context.Background(), fixtureAdminID, adminRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "APPROVED"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, out.Status)
	assert.Empty(t, out.Message, "al salir de REJECTED el motivo desaparece")
}

func TestUpdateStatus_EstadoEnMinusculas_SeNormaliza(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	out, err := uc.UpdateStatus(context.Background(), fixtureAdminID, adminRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "approved"})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusApproved, out.Status)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	_, err := uc.UpdateStatus(context.Background(), fixtureAdminID, adminRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "ARCHIVED"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad: dueño o admin
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_DuenoPermitido(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	_, err := uc.UpdateStatus(context.Background(), fixtureOwnerID, clienteRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "APPROVED"})

	assert.NoError(t, err, "el representante legal de la empresa dueña puede operar")
}

func TestUpdateStatus_IntrusoDenegado(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	_, err := uc.UpdateStatus(context.Background(), fixtureIntruderID, clienteRoles(),
		fixtureFumigationID, dto.UpdateStatusRequest{Status: "APPROVED"})

	assert.ErrorIs(t, err, domain.ErrForbidden)

	f, _ := fx.fumigations.GetByID(fixtureFumigationID)
	assert.Equal(t, entity.StatusPending, f.Status, "un intruso no muta nada")
}

func TestGetByID_FumigacionIntrusoDenegado(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	_, err := uc.GetByID(fixtureIntruderID, clienteRoles(), fixtureFumigationID)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la lectura también exige propiedad o rol admin")
}

func TestGetByID_FumigacionInexistente(t *testing.T) {
	fx := newFixture()
	uc := newFumigationUC(fx)

	_, err := uc.GetByID(fixtureAdminID, adminRoles(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
