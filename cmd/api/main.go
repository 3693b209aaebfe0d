package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	infrapdf "github.com/jhoicas/sinvoice-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sinvoice-api/internal/infrastructure/platform"
	httpRouter "github.com/jhoicas/sinvoice-api/internal/interfaces/http"
	"github.com/jhoicas/sinvoice-api/pkg/config"
	"github.com/jhoicas/sinvoice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := invoicing.NewStore(invoicing.InitialState(cfg, log), nil)

	// Subscribers en orden fijo: recalculo de vencimiento, resync de
	// borradores, resolución de tema.
	store.Subscribe(invoicing.DueDateRecalc{})
	draft := invoicing.NewDraftBuffer(store)
	store.Subscribe(draft)
	themeSource := platform.NewThemeSource(cfg.App.SystemTheme)
	themeResolver := invoicing.NewThemeResolver(themeSource, cfg.App.Theme, log)
	store.Subscribe(themeResolver)

	customerUC := invoicing.NewCustomerUseCase(store)
	settingsUC := invoicing.NewSettingsUseCase(store)
	invoiceUC := invoicing.NewInvoiceUseCase(store)

	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	emitUC := invoicing.NewEmitInvoiceUseCase(store, pdfGenerator, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la emisión del PDF puede tardar
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:  customerUC,
		SettingsUC:  settingsUC,
		InvoiceUC:   invoiceUC,
		EmitInvoice: emitUC,
		Draft:       draft,
		Theme:       themeResolver,
		ThemeSource: themeSource,
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
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("aplicación detenida")
}
