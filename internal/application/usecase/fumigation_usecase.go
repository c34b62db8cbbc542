package usecase

import (
	"context"
	"time"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/notifier"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/fumigation"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// FumigationUseCase consulta fumigaciones y aplica cambios de estado.
type FumigationUseCase struct {
	fumigationRepo repository.FumigationRepository
	userRepo       repository.UserRepository
	resolver       *appauthz.Resolver
	notifier       notifier.Notifier
}

// NewFumigationUseCase construye el caso de uso.
func NewFumigationUseCase(
	fumigationRepo repository.FumigationRepository,
	userRepo repository.UserRepository,
	resolver *appauthz.Resolver,
	n notifier.Notifier,
) *FumigationUseCase {
	return &FumigationUseCase{
		fumigationRepo: fumigationRepo,
		userRepo:       userRepo,
		resolver:       resolver,
		notifier:       n,
	}
}

// GetByID obtiene una fumigación (dueño o admin).
func (uc *FumigationUseCase) GetByID(actorID string, actorRoles []string, id string) (*dto.FumigationResponse, error) {
	if err := uc.resolver.AuthorizeFumigation(id, actorID, actorRoles); err != nil {
		return nil, err
	}
	f, err := uc.fumigationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return entityToFumigationResponse(f), nil
}

// UpdateStatus cambia el estado de una fumigación.
//
// El guard y el invariante del motivo viven en fumigation.ChangeStatus; aquí
// solo se orquesta: autorizar, cargar, transicionar, persistir, notificar.
// La escritura es read-modify-write sin columna de versión: dos cambios
// concurrentes sobre la misma fila hacen que gane la última escritura.
func (uc *FumigationUseCase) UpdateStatus(ctx context.Context, actorID string, actorRoles []string, id string, in dto.UpdateStatusRequest) (*dto.FumigationResponse, error) {
	if err := uc.resolver.AuthorizeFumigation(id, actorID, actorRoles); err != nil {
		return nil, err
	}
	f, err := uc.fumigationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	if err := fumigation.ChangeStatus(f, in.Status, in.Message); err != nil {
		return nil, err
	}
	f.UpdatedAt = time.Now()
	if err := uc.fumigationRepo.Update(f); err != nil {
		return nil, err
	}

	uc.notifyStatusChange(ctx, f)
	return entityToFumigationResponse(f), nil
}

// notifyStatusChange emite el evento de cambio de estado: al cliente siempre;
// a los administradores solo para los estados que les conciernen.
func (uc *FumigationUseCase) notifyStatusChange(ctx context.Context, f *entity.Fumigation) {
	data := map[string]string{
		"fumigation_id": f.ID,
		"lot_number":    f.LotNumber,
		"status":        f.Status,
	}
	if f.Message != "" {
		data["message"] = f.Message
	}

	if ownerID, err := uc.resolver.OwnerOfFumigation(f.ID); err == nil {
		if owner, err := uc.userRepo.GetByID(ownerID); err == nil && owner != nil {
			uc.notifier.Notify(ctx, notifier.Event{
				Kind:       notifier.EventStatusChanged,
				Recipients: []string{owner.Email},
				Data:       data,
			})
		}
	}

	if !fumigation.NotifiesAdmins(f.Status) {
		return
	}
	admins, err := uc.userRepo.ListByRole(entity.RoleAdmin)
	if err != nil || len(admins) == 0 {
		return
	}
	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, a.Email)
	}
	uc.notifier.Notify(ctx, notifier.Event{
		Kind:       notifier.EventStatusChanged,
		Recipients: recipients,
		Data:       data,
	})
}

func entityToFumigationResponse(f *entity.Fumigation) *dto.FumigationResponse {
	if f == nil {
		return nil
	}
	return &dto.FumigationResponse{
		ID:            f.ID,
		ApplicationID: f.ApplicationID,
		LotNumber:     f.LotNumber,
		Tonnage:       f.Tonnage,
		SackCount:     f.SackCount,
		QualityGrade:  f.QualityGrade,
		PortDestiny:   f.PortDestiny,
		DateTime:      f.DateTime,
		Status:        f.Status,
		Message:       f.Message,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
}
