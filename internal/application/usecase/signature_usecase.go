package usecase

import (
	"time"

	"github.com/google/uuid"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// SignatureUseCase registra firmas manuscritas sobre reportes. La relación con
// el reporte padre es exclusiva: una firma pertenece al reporte técnico o al de
// limpieza, nunca a ambos (se garantiza por construcción: hay un método por tipo).
type SignatureUseCase struct {
	signatureRepo repository.SignatureRepository
	reportRepo    repository.FumigationReportRepository
	cleanupRepo   repository.CleanupReportRepository
	store         ImageStore
	resolver      *appauthz.Resolver
}

// NewSignatureUseCase construye el caso de uso.
func NewSignatureUseCase(
	signatureRepo repository.SignatureRepository,
	reportRepo repository.FumigationReportRepository,
	cleanupRepo repository.CleanupReportRepository,
	store ImageStore,
	resolver *appauthz.Resolver,
) *SignatureUseCase {
	return &SignatureUseCase{
		signatureRepo: signatureRepo,
		reportRepo:    reportRepo,
		cleanupRepo:   cleanupRepo,
		store:         store,
		resolver:      resolver,
	}
}

// SignFumigationReport adjunta una firma al reporte técnico indicado.
func (uc *SignatureUseCase) SignFumigationReport(actorID string, actorRoles []string, reportID, signerRole string, image []byte, ext string) (*dto.SignatureResponse, error) {
	report, err := uc.reportRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.resolver.AuthorizeFumigation(report.FumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}
	return uc.create(&reportID, nil, signerRole, image, ext)
}

// SignCleanupReport adjunta una firma al reporte de limpieza indicado.
func (uc *SignatureUseCase) SignCleanupReport(actorID string, actorRoles []string, reportID, signerRole string, image []byte, ext string) (*dto.SignatureResponse, error) {
	report, err := uc.cleanupRepo.GetByID(reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.resolver.AuthorizeFumigation(report.FumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}
	return uc.create(nil, &reportID, signerRole, image, ext)
}

// GetImage devuelve los bytes de la imagen de una firma (dueño o admin).
func (uc *SignatureUseCase) GetImage(actorID string, actorRoles []string, signatureID string) ([]byte, error) {
	sig, err := uc.signatureRepo.GetByID(signatureID)
	if err != nil {
		return nil, err
	}
	if sig == nil {
		return nil, domain.ErrNotFound
	}
	fumigationID, err := uc.parentFumigation(sig)
	if err != nil {
		return nil, err
	}
	if err := uc.resolver.AuthorizeFumigation(fumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}
	return uc.store.Load(sig.ImagePath)
}

func (uc *SignatureUseCase) create(fumReportID, cleanupReportID *string, signerRole string, image []byte, ext string) (*dto.SignatureResponse, error) {
	if signerRole != entity.SignerTecnico && signerRole != entity.SignerCliente {
		return nil, domain.ErrInvalidInput
	}
	if len(image) == 0 {
		return nil, domain.ErrInvalidInput
	}
	path, hash, err := uc.store.Save(image, ext)
	if err != nil {
		return nil, err
	}
	sig := &entity.Signature{
		ID:                 uuid.New().String(),
		FumigationReportID: fumReportID,
		CleanupReportID:    cleanupReportID,
		SignerRole:         signerRole,
		ImagePath:          path,
		ImageHash:          hash,
		CreatedAt:          time.Now(),
	}
	if !sig.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.signatureRepo.Create(sig); err != nil {
		return nil, err
	}
	return signatureToResponse(sig), nil
}

func (uc *SignatureUseCase) parentFumigation(sig *entity.Signature) (string, error) {
	if sig.FumigationReportID != nil {
		report, err := uc.reportRepo.GetByID(*sig.FumigationReportID)
		if err != nil {
			return "", err
		}
		if report == nil {
			return "", domain.ErrNotFound
		}
		return report.FumigationID, nil
	}
	report, err := uc.cleanupRepo.GetByID(*sig.CleanupReportID)
	if err != nil {
		return "", err
	}
	if report == nil {
		return "", domain.ErrNotFound
	}
	return report.FumigationID, nil
}

func signatureToResponse(s *entity.Signature) *dto.SignatureResponse {
	resp := &dto.SignatureResponse{
		ID:         s.ID,
		SignerRole: s.SignerRole,
		ImageHash:  s.ImageHash,
		CreatedAt:  s.CreatedAt,
	}
	if s.FumigationReportID != nil {
		resp.FumigationReportID = *s.FumigationReportID
	}
	if s.CleanupReportID != nil {
		resp.CleanupReportID = *s.CleanupReportID
	}
	return resp
}
