package usecase_test

import (
	"context"

	"github.com/rs/zerolog"

	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/notifier"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Implementan los
// puertos de dominio sobre mapas; sin goroutines, sin locking.
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo { return &memUserRepo{users: map[string]*entity.User{}} }

func (r *memUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByCedula(cedula string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Cedula == cedula {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *memUserRepo) UpdateRoles(userID string, roles []string) error {
	if u, ok := r.users[userID]; ok {
		u.Roles = roles
	}
	return nil
}
func (r *memUserRepo) List(_, _ int) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *memUserRepo) ListByRole(role string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.HasRole(role) {
			out = append(out, u)
		}
	}
	return out, nil
}

type memCompanyRepo struct {
	companies map[string]*entity.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: map[string]*entity.Company{}}
}

func (r *memCompanyRepo) Create(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}
func (r *memCompanyRepo) GetByRUCExcluding(ruc, excludeID string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.RUC == ruc && c.ID != excludeID {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error { r.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) List(_, _ int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCompanyRepo) ListByLegalRep(userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range r.companies {
		if c.LegalRepID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memApplicationRepo struct {
	apps map[string]*entity.FumigationApplication
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{apps: map[string]*entity.FumigationApplication{}}
}

func (r *memApplicationRepo) Create(a *entity.FumigationApplication) error {
	r.apps[a.ID] = a
	return nil
}
func (r *memApplicationRepo) GetByID(id string) (*entity.FumigationApplication, error) {
	return r.apps[id], nil
}
func (r *memApplicationRepo) ListByCompany(companyID string, _, _ int) ([]*entity.FumigationApplication, error) {
	var out []*entity.FumigationApplication
	for _, a := range r.apps {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}
func (r *memApplicationRepo) List(_, _ int) ([]*entity.FumigationApplication, error) {
	out := make([]*entity.FumigationApplication, 0, len(r.apps))
	for _, a := range r.apps {
		out = append(out, a)
	}
	return out, nil
}

type memFumigationRepo struct {
	fumigations map[string]*entity.Fumigation
}

func newMemFumigationRepo() *memFumigationRepo {
	return &memFumigationRepo{fumigations: map[string]*entity.Fumigation{}}
}

func (r *memFumigationRepo) Create(f *entity.Fumigation) error { r.fumigations[f.ID] = f; return nil }
func (r *memFumigationRepo) GetByID(id string) (*entity.Fumigation, error) {
	return r.fumigations[id], nil
}
func (r *memFumigationRepo) Update(f *entity.Fumigation) error { r.fumigations[f.ID] = f; return nil }
func (r *memFumigationRepo) ListByApplication(applicationID string) ([]*entity.Fumigation, error) {
	var out []*entity.Fumigation
	for _, f := range r.fumigations {
		if f.ApplicationID == applicationID {
			out = append(out, f)
		}
	}
	return out, nil
}

type memReportRepo struct {
	reports map[string]*entity.FumigationReport
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: map[string]*entity.FumigationReport{}}
}

func (r *memReportRepo) Create(rep *entity.FumigationReport) error {
	r.reports[rep.ID] = rep
	return nil
}
func (r *memReportRepo) GetByID(id string) (*entity.FumigationReport, error) {
	return r.reports[id], nil
}
func (r *memReportRepo) GetByFumigation(fumigationID string) (*entity.FumigationReport, error) {
	for _, rep := range r.reports {
		if rep.FumigationID == fumigationID {
			return rep, nil
		}
	}
	return nil, nil
}

type memCleanupRepo struct {
	reports map[string]*entity.CleanupReport
}

func newMemCleanupRepo() *memCleanupRepo {
	return &memCleanupRepo{reports: map[string]*entity.CleanupReport{}}
}

func (r *memCleanupRepo) Create(rep *entity.CleanupReport) error { r.reports[rep.ID] = rep; return nil }
func (r *memCleanupRepo) GetByID(id string) (*entity.CleanupReport, error) {
	return r.reports[id], nil
}
func (r *memCleanupRepo) GetByFumigation(fumigationID string) (*entity.CleanupReport, error) {
	for _, rep := range r.reports {
		if rep.FumigationID == fumigationID {
			return rep, nil
		}
	}
	return nil, nil
}

type memSignatureRepo struct {
	signatures map[string]*entity.Signature
}

func newMemSignatureRepo() *memSignatureRepo {
	return &memSignatureRepo{signatures: map[string]*entity.Signature{}}
}

func (r *memSignatureRepo) Create(s *entity.Signature) error { r.signatures[s.ID] = s; return nil }
func (r *memSignatureRepo) GetByID(id string) (*entity.Signature, error) {
	return r.signatures[id], nil
}
func (r *memSignatureRepo) ListByFumigationReport(reportID string) ([]*entity.Signature, error) {
	var out []*entity.Signature
	for _, s := range r.signatures {
		if s.FumigationReportID != nil && *s.FumigationReportID == reportID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *memSignatureRepo) ListByCleanupReport(reportID string) ([]*entity.Signature, error) {
	var out []*entity.Signature
	for _, s := range r.signatures {
		if s.CleanupReportID != nil && *s.CleanupReportID == reportID {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner corre el callback directamente sobre los repos en memoria; la
// atomicidad real se prueba contra PostgreSQL, no aquí.
type fakeTxRunner struct {
	appRepo        repository.ApplicationRepository
	fumigationRepo repository.FumigationRepository
	reportRepo     repository.FumigationReportRepository
	cleanupRepo    repository.CleanupReportRepository
}

func (tx *fakeTxRunner) RunApplication(_ context.Context, fn func(
	repository.ApplicationRepository,
	repository.FumigationRepository,
) error) error {
	return fn(tx.appRepo, tx.fumigationRepo)
}

func (tx *fakeTxRunner) RunReport(_ context.Context, fn func(
	repository.FumigationRepository,
	repository.FumigationReportRepository,
	repository.CleanupReportRepository,
) error) error {
	return fn(tx.fumigationRepo, tx.reportRepo, tx.cleanupRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dueño + admin + intruso, empresa → solicitud → fumigación
// ──────────────────────────────────────────────────────────────────────────────

const (
	fixtureOwnerID      = "user-owner"
	fixtureAdminID      = "user-admin"
	fixtureIntruderID   = "user-intruder"
	fixtureCompanyID    = "company-1"
	fixtureAppID        = "application-1"
	fixtureFumigationID = "fumigation-1"
)

type fixture struct {
	users       *memUserRepo
	companies   *memCompanyRepo
	apps        *memApplicationRepo
	fumigations *memFumigationRepo
	reports     *memReportRepo
	cleanups    *memCleanupRepo
	sigs        *memSignatureRepo
	txRunner    *fakeTxRunner
	resolver    *appauthz.Resolver
	notifier    notifier.Noop
}

func newFixture() *fixture {
	fx := &fixture{
		users:       newMemUserRepo(),
		companies:   newMemCompanyRepo(),
		apps:        newMemApplicationRepo(),
		fumigations: newMemFumigationRepo(),
		reports:     newMemReportRepo(),
		cleanups:    newMemCleanupRepo(),
		sigs:        newMemSignatureRepo(),
	}
	fx.txRunner = &fakeTxRunner{
		appRepo:        fx.apps,
		fumigationRepo: fx.fumigations,
		reportRepo:     fx.reports,
		cleanupRepo:    fx.cleanups,
	}
	fx.resolver = appauthz.NewResolver(fx.companies, fx.apps, fx.fumigations, zerolog.Nop())

	fx.users.Create(&entity.User{
		ID: fixtureOwnerID, Cedula: "0912345678", Email: "owner@cacao.ec",
		Name: "Dueño", Roles: []string{entity.RoleCliente}, Status: "active",
	})
	fx.users.Create(&entity.User{
		ID: fixtureAdminID, Cedula: "0987654321", Email: "admin@plagismart.ec",
		Name: "Admin", Roles: []string{entity.RoleAdmin}, Status: "active",
	})
	fx.users.Create(&entity.User{
		ID: fixtureIntruderID, Cedula: "0911111111", Email: "otro@cacao.ec",
		Name: "Otro", Roles: []string{entity.RoleCliente}, Status: "active",
	})
	fx.companies.Create(&entity.Company{
		ID: fixtureCompanyID, Name: "CacaoExport SA", RUC: "0991234567001",
		LegalRepID: fixtureOwnerID,
	})
	fx.apps.Create(&entity.FumigationApplication{
		ID: fixtureAppID, CompanyID: fixtureCompanyID,
	})
	fx.fumigations.Create(&entity.Fumigation{
		ID: fixtureFumigationID, ApplicationID: fixtureAppID,
		LotNumber: "L-001", Status: entity.StatusPending,
	})
	return fx
}

func clienteRoles() []string { return []string{entity.RoleCliente} }
func adminRoles() []string   { return []string{entity.RoleAdmin} }
