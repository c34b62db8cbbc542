package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/auth"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	UserUC        *usecase.UserUseCase
	CompanyUC     *usecase.CompanyUseCase
	ApplicationUC *usecase.ApplicationUseCase
	FumigationUC  *usecase.FumigationUseCase
	ReportUC      *usecase.ReportUseCase
	SignatureUC   *usecase.SignatureUseCase
	CertificateUC *usecase.CertificateUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. La propiedad por recurso (dueño o admin)
// se decide en los casos de uso; RequireRole solo protege las rutas que son
// exclusivas de administradores.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", adminOnly, userHandler.List)
	users.Get("/:id", adminOnly, userHandler.GetByID)
	users.Put("/:id/roles", adminOnly, authHandler.UpdateRoles)

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/mine", companyHandler.ListMine)
	companies.Get("/", adminOnly, companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)

	// Applications
	applications := protected.Group("/applications")
	applicationHandler := NewApplicationHandler(deps.ApplicationUC)
	applications.Post("/", applicationHandler.Submit)
	applications.Get("/", applicationHandler.ListByCompany)
	applications.Get("/:id", applicationHandler.GetByID)
	protected.Get("/admin/applications", adminOnly, applicationHandler.List)

	// Fumigations: estado, reportes y certificado
	fumigations := protected.Group("/fumigations")
	fumigationHandler := NewFumigationHandler(deps.FumigationUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	certificateHandler := NewCertificateHandler(deps.CertificateUC)
	fumigations.Get("/:id", fumigationHandler.GetByID)
	fumigations.Put("/:id/status", fumigationHandler.UpdateStatus)
	fumigations.Post("/:id/report", reportHandler.CreateFumigationReport)
	fumigations.Get("/:id/report", reportHandler.GetFumigationReport)
	fumigations.Post("/:id/cleanup", reportHandler.CreateCleanupReport)
	fumigations.Get("/:id/cleanup", reportHandler.GetCleanupReport)
	fumigations.Get("/:id/certificate", certificateHandler.PDF)
	fumigations.Get("/:id/certificate.xml", certificateHandler.XML)

	// Signatures
	signatureHandler := NewSignatureHandler(deps.SignatureUC)
	protected.Post("/reports/fumigation/:id/signatures", signatureHandler.SignFumigationReport)
	protected.Post("/reports/cleanup/:id/signatures", signatureHandler.SignCleanupReport)
	protected.Get("/signatures/:id/image", signatureHandler.GetImage)
}
