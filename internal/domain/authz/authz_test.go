package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

const (
	ownerID = "user-owner"
	otherID = "user-other"
)

// ──────────────────────────────────────────────────────────────────────────────
// Matriz de acceso: dueño o admin pasan, el resto no
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_DuenoAccede(t *testing.T) {
	d := authz.Decide("fumigation", "f1", ownerID, ownerID, []string{entity.RoleCliente})
	assert.True(t, d.Allowed, "el dueño del recurso siempre accede")
}

func TestDecide_AdminAccedeSinSerDueno(t *testing.T) {
	d := authz.Decide("fumigation", "f1", ownerID, otherID, []string{entity.RoleAdmin})
	assert.True(t, d.Allowed, "un admin accede a recursos ajenos")
}

func TestDecide_ClienteAjenoNoAccede(t *testing.T) {
	d := authz.Decide("fumigation", "f1", ownerID, otherID, []string{entity.RoleCliente})
	assert.False(t, d.Allowed, "un cliente que no es dueño no accede")
}

func TestDecide_TecnicoAjenoNoAccede(t *testing.T) {
	d := authz.Decide("fumigation", "f1", ownerID, otherID, []string{entity.RoleTecnico})
	assert.False(t, d.Allowed,
		"el rol técnico no otorga acceso por sí mismo; la propiedad manda")
}

func TestDecide_MultiRolConAdminAccede(t *testing.T) {
	d := authz.Decide("company", "c1", ownerID, otherID, []string{entity.RoleCliente, entity.RoleAdmin})
	assert.True(t, d.Allowed, "basta con que uno de los roles sea admin")
}

func TestDecide_ActorVacioNoAccede(t *testing.T) {
	d := authz.Decide("company", "c1", "", "", nil)
	assert.False(t, d.Allowed,
		"un actor sin identidad nunca coincide con el dueño, ni con dueño vacío")
}

// ──────────────────────────────────────────────────────────────────────────────
// La decisión conserva el contexto para el log de auditoría
// ──────────────────────────────────────────────────────────────────────────────

func TestDecide_DecisionConservaContexto(t *testing.T) {
	d := authz.Decide("application", "app-9", ownerID, otherID, nil)

	assert.False(t, d.Allowed)
	assert.Equal(t, "application", d.ResourceType)
	assert.Equal(t, "app-9", d.ResourceID)
	assert.Equal(t, otherID, d.ActorID)
}
