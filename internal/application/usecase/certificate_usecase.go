package usecase

import (
	"context"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// CertificateUseCase produce el certificado de fumigación (PDF y rendición XML
// para la agencia). Solo existe para fumigaciones FINISHED con reporte técnico.
type CertificateUseCase struct {
	fumigationRepo repository.FumigationRepository
	appRepo        repository.ApplicationRepository
	companyRepo    repository.CompanyRepository
	reportRepo     repository.FumigationReportRepository
	pdfGen         CertificatePDFGenerator
	xmlBuilder     CertificateXMLBuilder
	resolver       *appauthz.Resolver
}

// NewCertificateUseCase construye el caso de uso.
func NewCertificateUseCase(
	fumigationRepo repository.FumigationRepository,
	appRepo repository.ApplicationRepository,
	companyRepo repository.CompanyRepository,
	reportRepo repository.FumigationReportRepository,
	pdfGen CertificatePDFGenerator,
	xmlBuilder CertificateXMLBuilder,
	resolver *appauthz.Resolver,
) *CertificateUseCase {
	return &CertificateUseCase{
		fumigationRepo: fumigationRepo,
		appRepo:        appRepo,
		companyRepo:    companyRepo,
		reportRepo:     reportRepo,
		pdfGen:         pdfGen,
		xmlBuilder:     xmlBuilder,
		resolver:       resolver,
	}
}

// GeneratePDF genera el certificado en PDF (dueño o admin; solo FINISHED).
func (uc *CertificateUseCase) GeneratePDF(ctx context.Context, actorID string, actorRoles []string, fumigationID string) ([]byte, error) {
	data, err := uc.load(actorID, actorRoles, fumigationID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateCertificatePDF(ctx, data)
}

// GenerateXML genera la rendición XML del certificado (dueño o admin; solo FINISHED).
func (uc *CertificateUseCase) GenerateXML(actorID string, actorRoles []string, fumigationID string) ([]byte, error) {
	data, err := uc.load(actorID, actorRoles, fumigationID)
	if err != nil {
		return nil, err
	}
	return uc.xmlBuilder.BuildCertificateXML(data)
}

func (uc *CertificateUseCase) load(actorID string, actorRoles []string, fumigationID string) (CertificateData, error) {
	if err := uc.resolver.AuthorizeFumigation(fumigationID, actorID, actorRoles); err != nil {
		return CertificateData{}, err
	}
	f, err := uc.fumigationRepo.GetByID(fumigationID)
	if err != nil {
		return CertificateData{}, err
	}
	if f == nil {
		return CertificateData{}, domain.ErrNotFound
	}
	if f.Status != entity.StatusFinished {
		return CertificateData{}, domain.ErrInvalidStatus
	}
	app, err := uc.appRepo.GetByID(f.ApplicationID)
	if err != nil {
		return CertificateData{}, err
	}
	if app == nil {
		return CertificateData{}, domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(app.CompanyID)
	if err != nil {
		return CertificateData{}, err
	}
	if company == nil {
		return CertificateData{}, domain.ErrNotFound
	}
	report, err := uc.reportRepo.GetByFumigation(fumigationID)
	if err != nil {
		return CertificateData{}, err
	}
	if report == nil {
		return CertificateData{}, domain.ErrNotFound
	}
	return CertificateData{Fumigation: f, Company: company, Report: report}, nil
}
