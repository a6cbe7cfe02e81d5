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
	"github.com/jhoicas/invoicegen/internal/application/auth"
	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/domain/invoice"
	"github.com/jhoicas/invoicegen/internal/infrastructure/idgen"
	infrapdf "github.com/jhoicas/invoicegen/internal/infrastructure/pdf"
	"github.com/jhoicas/invoicegen/internal/infrastructure/persistence"
	"github.com/jhoicas/invoicegen/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/invoicegen/internal/interfaces/http"
	"github.com/jhoicas/invoicegen/pkg/config"
	"github.com/jhoicas/invoicegen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Str("numbering", cfg.Numbering.Mode).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := persistence.Open(ctx, cfg.Store, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()

	accounts, err := auth.LoadAccounts(cfg.Auth.AccountsFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.Auth.AccountsFile).Msg("cargar cuentas")
	}
	log.Info().Int("accounts", accounts.Len()).Msg("cuentas cargadas")

	ids, err := idgen.NewSnowflake(cfg.Numbering.NodeID)
	if err != nil {
		log.Fatal().Err(err).Msg("generador de IDs")
	}
	var numbers invoice.Numberer = invoice.NewRandomNumberer()
	if cfg.Numbering.Mode == config.NumberingSequential {
		numbers = invoice.NewSequentialNumberer()
	}

	registry := billing.NewWorkspaceRegistry()
	assembler := billing.NewAssembler(ids, numbers, time.Now)
	renderer := billing.NewHTMLRenderer(cfg.Render.SupportContact)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.Render.SupportContact)
	exporter := xmlexport.NewExporter()

	workspaceUC := billing.NewWorkspaceUseCase(registry, log)
	documentUC := billing.NewDocumentUseCase(registry, assembler, renderer, pdfGenerator, exporter, stores.Documents, log)
	directoryUC := billing.NewDirectoryUseCase(stores.Directory, registry)
	authUC := auth.NewAuthUseCase(accounts, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "InvoiceGen API",
	}))

	app.Get("/health", httpRouter.Health(cfg.App.Name))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		WorkspaceUC: workspaceUC,
		DocumentUC:  documentUC,
		DirectoryUC: directoryUC,
		JWTSecret:   cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
