package usecase_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

// memImageStore almacén de imágenes en memoria con hash real del contenido.
type memImageStore struct {
	files map[string][]byte
}

func newMemImageStore() *memImageStore { return &memImageStore{files: map[string][]byte{}} }

func (s *memImageStore) Save(image []byte, ext string) (string, string, error) {
	sum := sha256.Sum256(image)
	hash := hex.EncodeToString(sum[:])
	path := hash + ext
	s.files[path] = image
	return path, hash, nil
}

func (s *memImageStore) Load(path string) ([]byte, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func newSignatureUC(fx *fixture, store usecase.ImageStore) *usecase.SignatureUseCase {
	return usecase.NewSignatureUseCase(fx.sigs, fx.reports, fx.cleanups, store, fx.resolver)
}

// seedReport agrega un reporte técnico a la fumigación del fixture.
func seedReport(fx *fixture) *entity.FumigationReport {
	report := &entity.FumigationReport{
		ID:           "report-1",
		FumigationID: fixtureFumigationID,
		CreatedAt:    time.Now(),
	}
	fx.reports.Create(report)
	return report
}

var signatureBytes = []byte("trazo-de-firma-png")

// ──────────────────────────────────────────────────────────────────────────────
// Firmas sobre el reporte técnico
// ──────────────────────────────────────────────────────────────────────────────

func TestSignFumigationReport_GuardaFirmaConHash(t *testing.T) {
	fx := newFixture()
	seedReport(fx)
	store := newMemImageStore()
	uc := newSignatureUC(fx, store)

	out, err := uc.SignFumigationReport(fixtureOwnerID, clienteRoles(),
		"report-1", entity.SignerCliente, signatureBytes, ".png")

	require.NoError(t, err)
	assert.Equal(t, "report-1", out.FumigationReportID)
	assert.Empty(t, out.CleanupReportID, "la firma pertenece a un solo tipo de reporte")
	assert.Equal(t, entity.SignerCliente, out.SignerRole)

	sum := sha256.Sum256(signatureBytes)
	assert.Equal(t, hex.EncodeToString(sum[:]), out.ImageHash,
		"el hash de la respuesta debe ser el sha256 del contenido")
}

func TestSignFumigationReport_RolDeFirmanteInvalido(t *testing.T) {
	fx := newFixture()
	seedReport(fx)
	uc := newSignatureUC(fx, newMemImageStore())

	_, err := uc.SignFumigationReport(fixtureOwnerID, clienteRoles(),
		"report-1", "gerente", signatureBytes, ".png")

	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"solo tecnico y cliente firman reportes")
}

func TestSignFumigationReport_ImagenVacia(t *testing.T) {
	fx := newFixture()
	seedReport(fx)
	uc := newSignatureUC(fx, newMemImageStore())

	_, err := uc.SignFumigationReport(fixtureOwnerID, clienteRoles(),
		"report-1", entity.SignerTecnico, nil, ".png")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSignFumigationReport_ReporteInexistente(t *testing.T) {
	fx := newFixture()
	uc := newSignatureUC(fx, newMemImageStore())

	_, err := uc.SignFumigationReport(fixtureOwnerID, clienteRoles(),
		"no-existe", entity.SignerTecnico, signatureBytes, ".png")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSignFumigationReport_IntrusoDenegado(t *testing.T) {
	fx := newFixture()
	seedReport(fx)
	uc := newSignatureUC(fx, newMemImageStore())

	_, err := uc.SignFumigationReport(fixtureIntruderID, clienteRoles(),
		"report-1", entity.SignerCliente, signatureBytes, ".png")

	assert.ErrorIs(t, err, domain.ErrForbidden,
		"la propiedad se resuelve a través de la fumigación del reporte")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura de la imagen
// ──────────────────────────────────────────────────────────────────────────────

func TestGetImage_DevuelveLosBytesOriginales(t *testing.T) {
	fx := newFixture()
	seedReport(fx)
	store := newMemImageStore()
	uc := newSignatureUC(fx, store)

	created, err := uc.SignFumigationReport(fixtureOwnerID, clienteRoles(),
		"report-1", entity.SignerCliente, signatureBytes, ".png")
	require.NoError(t, err)

	image, err := uc.GetImage(fixtureOwnerID, clienteRoles(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, signatureBytes, image)
}

func TestGetImage_IntrusoDenegado(t *testing.T) {
	fx := newFixture()
	seedReport(fx)
	uc := newSignatureUC(fx, newMemImageStore())

	created, err := uc.SignFumigationReport(fixtureOwnerID, clienteRoles(),
		"report-1", entity.SignerCliente, signatureBytes, ".png")
	require.NoError(t, err)

	_, err = uc.GetImage(fixtureIntruderID, clienteRoles(), created.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
