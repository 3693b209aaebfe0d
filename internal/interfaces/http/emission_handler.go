package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sinvoice-api/internal/application/dto"
	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
)

// EmissionHandler maneja la emisión del documento final.
type EmissionHandler struct {
	uc *invoicing.EmitInvoiceUseCase
}

// NewEmissionHandler construye el handler.
func NewEmissionHandler(uc *invoicing.EmitInvoiceUseCase) *EmissionHandler {
	return &EmissionHandler{uc: uc}
}

// Emit POST /api/invoice/emit — genera el PDF y lo devuelve como descarga.
// Si sale bien, el consecutivo ya quedó incrementado y la factura en curso
// reiniciada; si falla, el estado queda intacto.
func (h *EmissionHandler) Emit(c *fiber.Ctx) error {
	pdf, filename, err := h.uc.Emit(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoCustomerSelected) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_CUSTOMER", Message: "seleccione un cliente antes de emitir"})
		}
		if errors.Is(err, domain.ErrEmissionInProgress) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMISSION_IN_PROGRESS", Message: "ya hay una emisión en curso"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdf)
}
