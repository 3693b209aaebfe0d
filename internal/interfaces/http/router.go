package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/infrastructure/platform"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *invoicing.CustomerUseCase
	SettingsUC  *invoicing.SettingsUseCase
	InvoiceUC   *invoicing.InvoiceUseCase
	EmitInvoice *invoicing.EmitInvoiceUseCase
	Draft       *invoicing.DraftBuffer
	Theme       *invoicing.ThemeResolver
	ThemeSource *platform.ThemeSource
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)

	// Settings + tema
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.Theme, deps.ThemeSource)
	settings := api.Group("/settings")
	settings.Get("/", settingsHandler.Get)
	settings.Patch("/", settingsHandler.Update)
	settings.Post("/icon", settingsHandler.UploadIcon)
	api.Get("/theme", settingsHandler.Theme)
	api.Put("/theme/system-preference", settingsHandler.SystemPreference)

	// Factura en curso
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.Draft)
	invoice := api.Group("/invoice")
	invoice.Get("/", invoiceHandler.Get)
	invoice.Put("/fields/:field", invoiceHandler.SetField)
	invoice.Post("/items", invoiceHandler.AddItem)
	invoice.Put("/items/:index", invoiceHandler.UpdateItem)
	invoice.Delete("/items/:index", invoiceHandler.RemoveItem)

	// Borradores de fecha (staging de texto libre)
	invoice.Get("/dates", invoiceHandler.Drafts)
	invoice.Post("/dates/:field", invoiceHandler.TypeDraft)
	invoice.Post("/dates/:field/blur", invoiceHandler.BlurDraft)

	// Emisión
	emissionHandler := NewEmissionHandler(deps.EmitInvoice)
	invoice.Post("/emit", emissionHandler.Emit)
}
