package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/dto"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/notifier"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// ApplicationUseCase presenta y consulta solicitudes de fumigación.
type ApplicationUseCase struct {
	txRunner       TxRunner
	appRepo        repository.ApplicationRepository
	fumigationRepo repository.FumigationRepository
	companyRepo    repository.CompanyRepository
	userRepo       repository.UserRepository
	resolver       *appauthz.Resolver
	notifier       notifier.Notifier
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(
	txRunner TxRunner,
	appRepo repository.ApplicationRepository,
	fumigationRepo repository.FumigationRepository,
	companyRepo repository.CompanyRepository,
	userRepo repository.UserRepository,
	resolver *appauthz.Resolver,
	n notifier.Notifier,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		txRunner:       txRunner,
		appRepo:        appRepo,
		fumigationRepo: fumigationRepo,
		companyRepo:    companyRepo,
		userRepo:       userRepo,
		resolver:       resolver,
		notifier:       n,
	}
}

// Submit presenta una solicitud: crea la solicitud y todas sus fumigaciones
// (en PENDING) dentro de una misma transacción. El conjunto de fumigaciones es
// inmutable después. Notifica a los administradores.
func (uc *ApplicationUseCase) Submit(ctx context.Context, actorID string, actorRoles []string, in dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	if err := uc.resolver.AuthorizeCompany(in.CompanyID, actorID, actorRoles); err != nil {
		return nil, err
	}

	now := time.Now()
	app := &entity.FumigationApplication{
		ID:        uuid.New().String(),
		CompanyID: in.CompanyID,
		CreatedAt: now,
	}
	fumigations := make([]*entity.Fumigation, 0, len(in.Fumigations))
	for _, f := range in.Fumigations {
		fumigations = append(fumigations, &entity.Fumigation{
			ID:            uuid.New().String(),
			ApplicationID: app.ID,
			LotNumber:     f.LotNumber,
			Tonnage:       f.Tonnage,
			SackCount:     f.SackCount,
			QualityGrade:  f.QualityGrade,
			PortDestiny:   f.PortDestiny,
			DateTime:      f.DateTime,
			Status:        entity.StatusPending,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}

	err := uc.txRunner.RunApplication(ctx, func(
		appRepo repository.ApplicationRepository,
		fumigationRepo repository.FumigationRepository,
	) error {
		if err := appRepo.Create(app); err != nil {
			return err
		}
		for _, f := range fumigations {
			if err := fumigationRepo.Create(f); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifyAdmins(ctx, notifier.EventApplicationSubmitted, map[string]string{
		"application_id": app.ID,
		"company_id":     app.CompanyID,
		"lots":           strconv.Itoa(len(fumigations)),
	})

	return uc.toResponse(app, fumigations), nil
}

// GetByID obtiene una solicitud con sus fumigaciones (dueño o admin).
func (uc *ApplicationUseCase) GetByID(actorID string, actorRoles []string, id string) (*dto.ApplicationResponse, error) {
	if err := uc.resolver.AuthorizeApplication(id, actorID, actorRoles); err != nil {
		return nil, err
	}
	app, err := uc.appRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	fumigations, err := uc.fumigationRepo.ListByApplication(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(app, fumigations), nil
}

// ListByCompany lista las solicitudes de una empresa (dueño o admin).
func (uc *ApplicationUseCase) ListByCompany(actorID string, actorRoles []string, companyID string, limit, offset int) (*dto.ApplicationListResponse, error) {
	if err := uc.resolver.AuthorizeCompany(companyID, actorID, actorRoles); err != nil {
		return nil, err
	}
	return uc.list(func() ([]*entity.FumigationApplication, error) {
		return uc.appRepo.ListByCompany(companyID, limit, offset)
	}, limit, offset)
}

// List lista todas las solicitudes (ruta de admin).
func (uc *ApplicationUseCase) List(limit, offset int) (*dto.ApplicationListResponse, error) {
	return uc.list(func() ([]*entity.FumigationApplication, error) {
		return uc.appRepo.List(limit, offset)
	}, limit, offset)
}

func (uc *ApplicationUseCase) list(fetch func() ([]*entity.FumigationApplication, error), limit, offset int) (*dto.ApplicationListResponse, error) {
	apps, err := fetch()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		fumigations, err := uc.fumigationRepo.ListByApplication(app.ID)
		if err != nil {
			return nil, err
		}
		items = append(items, *uc.toResponse(app, fumigations))
	}
	return &dto.ApplicationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *ApplicationUseCase) notifyAdmins(ctx context.Context, kind string, data map[string]string) {
	admins, err := uc.userRepo.ListByRole(entity.RoleAdmin)
	if err != nil || len(admins) == 0 {
		return
	}
	recipients := make([]string, 0, len(admins))
	for _, a := range admins {
		recipients = append(recipients, a.Email)
	}
	uc.notifier.Notify(ctx, notifier.Event{Kind: kind, Recipients: recipients, Data: data})
}

func (uc *ApplicationUseCase) toResponse(app *entity.FumigationApplication, fumigations []*entity.Fumigation) *dto.ApplicationResponse {
	items := make([]dto.FumigationResponse, 0, len(fumigations))
	for _, f := range fumigations {
		items = append(items, *entityToFumigationResponse(f))
	}
	return &dto.ApplicationResponse{
		ID:          app.ID,
		CompanyID:   app.CompanyID,
		Fumigations: items,
		CreatedAt:   app.CreatedAt,
	}
}
