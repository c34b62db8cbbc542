// Package authz (capa de aplicación) resuelve la propiedad de un recurso con
// cargas explícitas de repositorio: fumigación → solicitud → empresa →
// representante legal. Sin lazy loading ni estado global; la identidad del
// actor viaja siempre como parámetro.
package authz

import (
	"github.com/rs/zerolog"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain"
	domauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// Resolver resuelve al dueño de un recurso y decide el acceso.
type Resolver struct {
	companyRepo    repository.CompanyRepository
	appRepo        repository.ApplicationRepository
	fumigationRepo repository.FumigationRepository
	log            zerolog.Logger
}

// NewResolver construye el resolver con los puertos de persistencia.
func NewResolver(
	companyRepo repository.CompanyRepository,
	appRepo repository.ApplicationRepository,
	fumigationRepo repository.FumigationRepository,
	log zerolog.Logger,
) *Resolver {
	return &Resolver{
		companyRepo:    companyRepo,
		appRepo:        appRepo,
		fumigationRepo: fumigationRepo,
		log:            log,
	}
}

// AuthorizeCompany permite la operación si el actor es el representante legal
// de la empresa o un admin. ErrNotFound si la empresa no existe; ErrForbidden
// si la decisión es negativa.
func (r *Resolver) AuthorizeCompany(companyID, actorID string, actorRoles []string) error {
	company, err := r.companyRepo.GetByID(companyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return r.decide("company", companyID, company.LegalRepID, actorID, actorRoles)
}

// AuthorizeApplication resuelve solicitud → empresa → representante legal.
func (r *Resolver) AuthorizeApplication(applicationID, actorID string, actorRoles []string) error {
	app, err := r.appRepo.GetByID(applicationID)
	if err != nil {
		return err
	}
	if app == nil {
		return domain.ErrNotFound
	}
	company, err := r.companyRepo.GetByID(app.CompanyID)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	return r.decide("application", applicationID, company.LegalRepID, actorID, actorRoles)
}

// AuthorizeFumigation resuelve fumigación → solicitud → empresa → representante legal.
func (r *Resolver) AuthorizeFumigation(fumigationID, actorID string, actorRoles []string) error {
	f, err := r.fumigationRepo.GetByID(fumigationID)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return r.AuthorizeApplication(f.ApplicationID, actorID, actorRoles)
}

// OwnerOfFumigation devuelve al representante legal dueño de la fumigación
// (para notificaciones al cliente). ErrNotFound si algún eslabón falta.
func (r *Resolver) OwnerOfFumigation(fumigationID string) (ownerUserID string, err error) {
	f, err := r.fumigationRepo.GetByID(fumigationID)
	if err != nil {
		return "", err
	}
	if f == nil {
		return "", domain.ErrNotFound
	}
	app, err := r.appRepo.GetByID(f.ApplicationID)
	if err != nil {
		return "", err
	}
	if app == nil {
		return "", domain.ErrNotFound
	}
	company, err := r.companyRepo.GetByID(app.CompanyID)
	if err != nil {
		return "", err
	}
	if company == nil {
		return "", domain.ErrNotFound
	}
	return company.LegalRepID, nil
}

func (r *Resolver) decide(resourceType, resourceID, ownerID, actorID string, actorRoles []string) error {
	d := domauthz.Decide(resourceType, resourceID, ownerID, actorID, actorRoles)
	if !d.Allowed {
		// Auditoría: quién intentó qué sobre qué recurso.
		r.log.Warn().
			Str("resource_type", d.ResourceType).
			Str("resource_id", d.ResourceID).
			Str("actor_id", d.ActorID).
			Msg("acceso denegado")
		return domain.ErrForbidden
	}
	return nil
}
