package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/notifier"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/fumigation"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// ReportUseCase registra y consulta reportes de campo (técnico y de limpieza).
type ReportUseCase struct {
	txRunner       TxRunner
	fumigationRepo repository.FumigationRepository
	reportRepo     repository.FumigationReportRepository
	cleanupRepo    repository.CleanupReportRepository
	userRepo       repository.UserRepository
	resolver       *appauthz.Resolver
	notifier       notifier.Notifier
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	txRunner TxRunner,
	fumigationRepo repository.FumigationRepository,
	reportRepo repository.FumigationReportRepository,
	cleanupRepo repository.CleanupReportRepository,
	userRepo repository.UserRepository,
	resolver *appauthz.Resolver,
	n notifier.Notifier,
) *ReportUseCase {
	return &ReportUseCase{
		txRunner:       txRunner,
		fumigationRepo: fumigationRepo,
		reportRepo:     reportRepo,
		cleanupRepo:    cleanupRepo,
		userRepo:       userRepo,
		resolver:       resolver,
		notifier:       n,
	}
}

// CreateFumigationReport registra el reporte técnico de una fumigación.
//
// Compuerta: la fumigación debe estar en APPROVED o FAILED; en cualquier otro
// estado devuelve domain.ErrInvalidStatus sin mutar nada. El contenido del
// reporte decide el estado resultante: cualquier bandera de peligro de
// seguridad industrial fuerza FAILED (sin mensaje de éxito); sin peligros la
// fumigación queda APPROVED y se devuelve la confirmación. Reporte y cambio de
// estado se persisten en la misma transacción.
func (uc *ReportUseCase) CreateFumigationReport(ctx context.Context, actorID string, actorRoles []string, fumigationID string, in dto.CreateFumigationReportRequest) (*dto.FumigationReportResult, error) {
	if err := uc.resolver.AuthorizeFumigation(fumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}

	safety := entity.SafetyConditions{
		ElectricDanger: in.Safety.ElectricDanger,
		FallingDanger:  in.Safety.FallingDanger,
		HitDanger:      in.Safety.HitDanger,
		OtherDanger:    in.Safety.OtherDanger,
	}
	report := &entity.FumigationReport{
		ID:           uuid.New().String(),
		FumigationID: fumigationID,
		Technicians:  techniciansFromDTO(in.Technicians),
		Supplies:     suppliesFromDTO(in.Supplies),
		Dimensions: entity.Dimensions{
			Height: in.Height,
			Width:  in.Width,
			Length: in.Length,
		},
		Environmental: entity.EnvironmentalConditions{
			Temperature:  in.Temperature,
			Humidity:     in.Humidity,
			PhosphinePPM: in.PhosphinePPM,
		},
		Safety:       safety,
		Observations: in.Observations,
		StartedAt:    in.StartedAt,
		FinishedAt:   in.FinishedAt,
		CreatedAt:    time.Now(),
	}

	var outcome fumigation.ReportOutcome
	err := uc.txRunner.RunReport(ctx, func(
		fumigationRepo repository.FumigationRepository,
		reportRepo repository.FumigationReportRepository,
		_ repository.CleanupReportRepository,
	) error {
		f, err := fumigationRepo.GetByID(fumigationID)
		if err != nil {
			return err
		}
		if f == nil {
			return domain.ErrNotFound
		}
		if err := fumigation.CanReceiveReport(f.Status); err != nil {
			return err
		}
		if existing, err := reportRepo.GetByFumigation(fumigationID); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrReportAlreadyExists
		}
		if err := reportRepo.Create(report); err != nil {
			return err
		}
		outcome = fumigation.EvaluateReport(safety)
		if err := fumigation.ChangeStatus(f, outcome.Status, ""); err != nil {
			return err
		}
		f.UpdatedAt = time.Now()
		return fumigationRepo.Update(f)
	})
	if err != nil {
		return nil, err
	}

	uc.notifyReport(ctx, fumigationID, report.ID, outcome.Status)

	return &dto.FumigationReportResult{
		ReportID:        report.ID,
		FinalStatus:     outcome.Status,
		SafetyViolation: outcome.SafetyViolation,
		Message:         outcome.Message,
	}, nil
}

// CreateCleanupReport registra el reporte de limpieza posterior. A diferencia
// del reporte técnico, no depende del estado de la fumigación ni lo muta; solo
// se exige que la fumigación exista y que no haya ya un reporte de limpieza.
func (uc *ReportUseCase) CreateCleanupReport(ctx context.Context, actorID string, actorRoles []string, fumigationID string, in dto.CreateCleanupReportRequest) (*dto.CleanupReportResponse, error) {
	if err := uc.resolver.AuthorizeFumigation(fumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}
	if existing, err := uc.cleanupRepo.GetByFumigation(fumigationID); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrReportAlreadyExists
	}
	report := &entity.CleanupReport{
		ID:           uuid.New().String(),
		FumigationID: fumigationID,
		Technicians:  techniciansFromDTO(in.Technicians),
		StripsState:  in.StripsState,
		LotCondition: in.LotCondition,
		Safety: entity.SafetyConditions{
			ElectricDanger: in.Safety.ElectricDanger,
			FallingDanger:  in.Safety.FallingDanger,
			HitDanger:      in.Safety.HitDanger,
			OtherDanger:    in.Safety.OtherDanger,
		},
		Observations: in.Observations,
		StartedAt:    in.StartedAt,
		FinishedAt:   in.FinishedAt,
		CreatedAt:    time.Now(),
	}
	if err := uc.cleanupRepo.Create(report); err != nil {
		return nil, err
	}

	uc.notifyReport(ctx, fumigationID, report.ID, "")
	return cleanupToResponse(report), nil
}

// GetFumigationReport lee el reporte técnico de una fumigación (dueño o admin).
func (uc *ReportUseCase) GetFumigationReport(actorID string, actorRoles []string, fumigationID string) (*dto.FumigationReportResponse, error) {
	if err := uc.resolver.AuthorizeFumigation(fumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}
	report, err := uc.reportRepo.GetByFumigation(fumigationID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return fumigationReportToResponse(report), nil
}

// GetCleanupReport lee el reporte de limpieza de una fumigación (dueño o admin).
func (uc *ReportUseCase) GetCleanupReport(actorID string, actorRoles []string, fumigationID string) (*dto.CleanupReportResponse, error) {
	if err := uc.resolver.AuthorizeFumigation(fumigationID, actorID, actorRoles); err != nil {
		return nil, err
	}
	report, err := uc.cleanupRepo.GetByFumigation(fumigationID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return cleanupToResponse(report), nil
}

// notifyReport avisa a dueño y administradores que hay un reporte nuevo.
// finalStatus va vacío cuando el reporte no mutó el estado (limpieza).
func (uc *ReportUseCase) notifyReport(ctx context.Context, fumigationID, reportID, finalStatus string) {
	data := map[string]string{
		"fumigation_id": fumigationID,
		"report_id":     reportID,
	}
	if finalStatus != "" {
		data["status"] = finalStatus
	}

	recipients := make([]string, 0, 4)
	if ownerID, err := uc.resolver.OwnerOfFumigation(fumigationID); err == nil {
		if owner, err := uc.userRepo.GetByID(ownerID); err == nil && owner != nil {
			recipients = append(recipients, owner.Email)
		}
	}
	if admins, err := uc.userRepo.ListByRole(entity.RoleAdmin); err == nil {
		for _, a := range admins {
			recipients = append(recipients, a.Email)
		}
	}
	if len(recipients) == 0 {
		return
	}
	uc.notifier.Notify(ctx, notifier.Event{
		Kind:       notifier.EventReportCreated,
		Recipients: recipients,
		Data:       data,
	})
}

func techniciansFromDTO(in []dto.TechnicianDTO) []entity.Technician {
	out := make([]entity.Technician, 0, len(in))
	for _, t := range in {
		out = append(out, entity.Technician{Name: t.Name, Cedula: t.Cedula, Role: t.Role})
	}
	return out
}

func techniciansToDTO(in []entity.Technician) []dto.TechnicianDTO {
	out := make([]dto.TechnicianDTO, 0, len(in))
	for _, t := range in {
		out = append(out, dto.TechnicianDTO{Name: t.Name, Cedula: t.Cedula, Role: t.Role})
	}
	return out
}

func suppliesFromDTO(in []dto.SupplyDTO) []entity.Supply {
	out := make([]entity.Supply, 0, len(in))
	for _, s := range in {
		out = append(out, entity.Supply{Name: s.Name, Quantity: s.Quantity, Dosage: s.Dosage, Kind: s.Kind})
	}
	return out
}

func suppliesToDTO(in []entity.Supply) []dto.SupplyDTO {
	out := make([]dto.SupplyDTO, 0, len(in))
	for _, s := range in {
		out = append(out, dto.SupplyDTO{Name: s.Name, Quantity: s.Quantity, Dosage: s.Dosage, Kind: s.Kind})
	}
	return out
}

func safetyToDTO(s entity.SafetyConditions) dto.SafetyConditionsDTO {
	return dto.SafetyConditionsDTO{
		ElectricDanger: s.ElectricDanger,
		FallingDanger:  s.FallingDanger,
		HitDanger:      s.HitDanger,
		OtherDanger:    s.OtherDanger,
	}
}

func fumigationReportToResponse(r *entity.FumigationReport) *dto.FumigationReportResponse {
	return &dto.FumigationReportResponse{
		ID:           r.ID,
		FumigationID: r.FumigationID,
		Technicians:  techniciansToDTO(r.Technicians),
		Supplies:     suppliesToDTO(r.Supplies),
		Height:       r.Dimensions.Height,
		Width:        r.Dimensions.Width,
		Length:       r.Dimensions.Length,
		Temperature:  r.Environmental.Temperature,
		Humidity:     r.Environmental.Humidity,
		PhosphinePPM: r.Environmental.PhosphinePPM,
		Safety:       safetyToDTO(r.Safety),
		Observations: r.Observations,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		CreatedAt:    r.CreatedAt,
	}
}

func cleanupToResponse(r *entity.CleanupReport) *dto.CleanupReportResponse {
	return &dto.CleanupReportResponse{
		ID:           r.ID,
		FumigationID: r.FumigationID,
		Technicians:  techniciansToDTO(r.Technicians),
		StripsState:  r.StripsState,
		LotCondition: r.LotCondition,
		Safety:       safetyToDTO(r.Safety),
		Observations: r.Observations,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
		CreatedAt:    r.CreatedAt,
	}
}
