package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/auth"
	appauthz "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/authz"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/application/usecase"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/infrastructure/export"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/infrastructure/notification"
	infrapdf "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/infrastructure/pdf"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/infrastructure/postgres"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/internal/infrastructure/storage"
	httpRouter "github.com/DiegoA00/T5-PlagiSmart-sub000/internal/interfaces/http"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/pkg/config"
	"github.com/DiegoA00/T5-PlagiSmart-sub000/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	appRepo := postgres.NewApplicationRepository(pool)
	fumigationRepo := postgres.NewFumigationRepository(pool)
	reportRepo := postgres.NewFumigationReportRepository(pool)
	cleanupRepo := postgres.NewCleanupReportRepository(pool)
	signatureRepo := postgres.NewSignatureRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := appauthz.NewResolver(companyRepo, appRepo, fumigationRepo, log.Zerolog())

	// Cola de notificaciones: el dispatcher encola, el worker pool entrega por SMTP.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()
	dispatcher := notification.NewDispatcher(rdb)
	mailer := notification.NewMailer(cfg.SMTP)
	notification.StartWorkerPool(ctx, rdb, mailer, cfg.Redis.Workers)

	signatureStore, err := storage.NewSignatureStore(cfg.Storage.SignaturesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de firmas")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, resolver)
	applicationUC := usecase.NewApplicationUseCase(txRunner, appRepo, fumigationRepo, companyRepo, userRepo, resolver, dispatcher)
	fumigationUC := usecase.NewFumigationUseCase(fumigationRepo, userRepo, resolver, dispatcher)
	reportUC := usecase.NewReportUseCase(txRunner, fumigationRepo, reportRepo, cleanupRepo, userRepo, resolver, dispatcher)
	signatureUC := usecase.NewSignatureUseCase(signatureRepo, reportRepo, cleanupRepo, signatureStore, resolver)
	certificateUC := usecase.NewCertificateUseCase(
		fumigationRepo, appRepo, companyRepo, reportRepo,
		infrapdf.NewMarotoCertificateGenerator(), export.NewXMLBuilderService(), resolver,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PlagiSmart API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		CompanyUC:     companyUC,
		ApplicationUC: applicationUC,
		FumigationUC:  fumigationUC,
		ReportUC:      reportUC,
		SignatureUC:   signatureUC,
		CertificateUC: certificateUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	// Detiene primero los workers de notificación, luego el servidor HTTP.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
