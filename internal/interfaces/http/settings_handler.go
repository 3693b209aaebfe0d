package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sinvoice-api/internal/application/dto"
	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/infrastructure/platform"
)

// SettingsHandler maneja la configuración y el tema.
type SettingsHandler struct {
	uc       *invoicing.SettingsUseCase
	resolver *invoicing.ThemeResolver
	source   *platform.ThemeSource
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *invoicing.SettingsUseCase, resolver *invoicing.ThemeResolver, source *platform.ThemeSource) *SettingsHandler {
	return &SettingsHandler{uc: uc, resolver: resolver, source: source}
}

// Get GET /api/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	s := h.uc.Get()
	return c.JSON(dto.SettingsResponse{
		CompanyName:       s.CompanyName,
		CompanyAddress:    s.CompanyAddress,
		HasCompanyIcon:    s.CompanyIcon != "",
		DeadlineDays:      s.DeadlineDays,
		DefaultHourlyRate: s.DefaultHourlyRate,
		BankName:          s.BankName,
		BankAccountNumber: s.BankAccountNumber,
		FooterText:        s.FooterText,
		InvoicePrefix:     s.InvoicePrefix,
		InvoiceNumber:     s.InvoiceNumber,
		OutputPDFPath:     s.OutputPDFPath,
		Currency:          s.Currency,
		Theme:             s.Theme,
		DateFormat:        s.DateFormat,
	})
}

// Update PATCH /api/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	patch := invoicing.SettingsPatch{
		CompanyName:       in.CompanyName,
		CompanyAddress:    in.CompanyAddress,
		DeadlineDays:      in.DeadlineDays,
		DefaultHourlyRate: in.DefaultHourlyRate,
		BankName:          in.BankName,
		BankAccountNumber: in.BankAccountNumber,
		FooterText:        in.FooterText,
		InvoicePrefix:     in.InvoicePrefix,
		InvoiceNumber:     in.InvoiceNumber,
		OutputPDFPath:     in.OutputPDFPath,
		Currency:          in.Currency,
		Theme:             in.Theme,
		DateFormat:        in.DateFormat,
	}
	if err := h.uc.Update(patch); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.Get(c)
}

// UploadIcon POST /api/settings/icon
func (h *SettingsHandler) UploadIcon(c *fiber.Ctx) error {
	var in dto.UploadIconRequest
	if err := c.BodyParser(&in); err != nil || in.Icon == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera el ícono en base64"})
	}
	if err := h.uc.UploadIcon(in.Icon); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Theme GET /api/theme — tema configurado y tema efectivo resuelto.
func (h *SettingsHandler) Theme(c *fiber.Ctx) error {
	return c.JSON(dto.ThemeResponse{
		Setting:  h.uc.Get().Theme,
		Resolved: h.resolver.Resolved(),
	})
}

// SystemPreference PUT /api/theme/system-preference — simula el cambio de
// preferencia clara/oscura de la plataforma; con theme == "system" el tema
// efectivo se re-resuelve en vivo.
func (h *SettingsHandler) SystemPreference(c *fiber.Ctx) error {
	var in struct {
		Preference string `json:"preference"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	h.source.Set(in.Preference)
	return h.Theme(c)
}
