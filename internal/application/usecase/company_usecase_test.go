package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
)

func newCompanyUC(fx *fixture) *usecase.CompanyUseCase {
	return usecase.NewCompanyUseCase(fx.companies, fx.resolver)
}

func companyRequest(ruc string) dto.CreateCompanyRequest {
	return dto.CreateCompanyRequest{
		Name:         "Cacao del Litoral SA",
		RUC:          ruc,
		BusinessLine: "exportación de cacao en grano",
		Address:      "Av. del Puerto, Guayaquil",
	}
}

func TestCreateCompany_ActorQuedaComoRepresentante(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)

	out, err := uc.Create(fixtureIntruderID, companyRequest("0999999999001"))

	require.NoError(t, err)
	assert.Equal(t, fixtureIntruderID, out.LegalRepID,
		"el representante legal es quien registra la empresa, no viaja en el body")
}

func TestCreateCompany_RUCDuplicado(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)

	// El fixture ya tiene una empresa con RUC 0991234567001.
	_, err := uc.Create(fixtureIntruderID, companyRequest("0991234567001"))
	assert.ErrorIs(t, err, domain.ErrRUCAlreadyExists)
}

func TestUpdateCompany_RUCPropioNoCuentaComoDuplicado(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)

	in := dto.UpdateCompanyRequest{
		Name: "CacaoExport SA (renombrada)",
		RUC:  "0991234567001", // su propio RUC, sin cambios
	}
	out, err := uc.Update(fixtureOwnerID, clienteRoles(), fixtureCompanyID, in)

	require.NoError(t, err, "editar manteniendo el propio RUC debe ser válido")
	assert.Equal(t, "CacaoExport SA (renombrada)", out.Name)
}

func TestUpdateCompany_RUCDeOtraEmpresa_Rechazado(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)
	_, err := uc.Create(fixtureIntruderID, companyRequest("0999999999001"))
	require.NoError(t, err)

	in := dto.UpdateCompanyRequest{Name: "CacaoExport SA", RUC: "0999999999001"}
	_, err = uc.Update(fixtureOwnerID, clienteRoles(), fixtureCompanyID, in)

	assert.ErrorIs(t, err, domain.ErrRUCAlreadyExists)
}

func TestGetCompany_IntrusoDenegado(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)

	_, err := uc.GetByID(fixtureIntruderID, clienteRoles(), fixtureCompanyID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetCompany_AdminPermitido(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)

	out, err := uc.GetByID(fixtureAdminID, adminRoles(), fixtureCompanyID)
	require.NoError(t, err)
	assert.Equal(t, fixtureCompanyID, out.ID)
}

func TestListMine_SoloEmpresasDelActor(t *testing.T) {
	fx := newFixture()
	uc := newCompanyUC(fx)
	_, err := uc.Create(fixtureIntruderID, companyRequest("0999999999001"))
	require.NoError(t, err)

	out, err := uc.ListMine(fixtureOwnerID)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, fixtureCompanyID, out.Items[0].ID)
}
