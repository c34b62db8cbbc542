package usecase

import (
	"context"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos atados a la tx.
// Cada operación mutadora corre en exactamente una transacción request-scoped;
// no hay más garantía de aislamiento que esa (sin optimistic locking).
type TxRunner interface {
	// RunApplication transacción para presentar una solicitud: solicitud + fumigaciones.
	RunApplication(ctx context.Context, fn func(
		appRepo repository.ApplicationRepository,
		fumigationRepo repository.FumigationRepository,
	) error) error

	// RunReport transacción para registrar un reporte y mutar el estado de la fumigación.
	RunReport(ctx context.Context, fn func(
		fumigationRepo repository.FumigationRepository,
		reportRepo repository.FumigationReportRepository,
		cleanupRepo repository.CleanupReportRepository,
	) error) error
}

// CertificateData contexto completo para renderizar el certificado de fumigación.
type CertificateData struct {
	Fumigation *entity.Fumigation
	Company    *entity.Company
	Report     *entity.FumigationReport
}

// CertificatePDFGenerator genera la representación PDF del certificado.
type CertificatePDFGenerator interface {
	GenerateCertificatePDF(ctx context.Context, data CertificateData) ([]byte, error)
}

// CertificateXMLBuilder genera la rendición XML del certificado para la agencia.
type CertificateXMLBuilder interface {
	BuildCertificateXML(data CertificateData) ([]byte, error)
}

// ImageStore almacena bytes de imagen y devuelve la referencia y el hash del contenido.
type ImageStore interface {
	Save(image []byte, ext string) (path, hash string, err error)
	Load(path string) ([]byte, error)
}
