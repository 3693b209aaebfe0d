package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/jhoicas/sinvoice-api/internal/application/dto"
	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
)

// InvoiceHandler maneja la factura en curso: campos, líneas y los buffers
// de borrador de los campos de fecha.
type InvoiceHandler struct {
	uc    *invoicing.InvoiceUseCase
	draft *invoicing.DraftBuffer
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *invoicing.InvoiceUseCase, draft *invoicing.DraftBuffer) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, draft: draft}
}

// Get GET /api/invoice — la factura en curso con totales derivados.
func (h *InvoiceHandler) Get(c *fiber.Ctx) error {
	st := h.uc.Current()
	lines, subtotal := h.uc.Totals()
	return c.JSON(dto.CurrentInvoiceResponse{
		Number:      fmt.Sprintf("%s-%d", st.Settings.InvoicePrefix, st.Settings.InvoiceNumber),
		Customer:    st.CurrentInvoice.Customer,
		InvoiceDate: st.CurrentInvoice.InvoiceDate,
		DueDate:     st.CurrentInvoice.DueDate,
		Items: lo.Map(lines, func(l invoicing.LineForPDF, _ int) dto.InvoiceItemResponse {
			return dto.InvoiceItemResponse{
				Description: l.Description,
				Date:        l.Date,
				Hours:       l.Hours,
				Rate:        l.Rate,
				Total:       l.Total,
			}
		}),
		Subtotal: subtotal,
		Total:    subtotal,
	})
}

// SetField PUT /api/invoice/fields/:field
func (h *InvoiceHandler) SetField(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.uc.SetField(invoicing.InvoiceField(c.Params("field")), in.Value)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.Get(c)
}

// AddItem POST /api/invoice/items
func (h *InvoiceHandler) AddItem(c *fiber.Ctx) error {
	h.uc.AddItem()
	return h.Get(c)
}

// UpdateItem PUT /api/invoice/items/:index
func (h *InvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	var in dto.UpdateInvoiceItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateItem(index, invoicing.ItemField(in.Field), in.Value); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea fuera de rango"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.Get(c)
}

// RemoveItem DELETE /api/invoice/items/:index
func (h *InvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "índice inválido"})
	}
	if err := h.uc.RemoveItem(index); err != nil {
		if errors.Is(err, domain.ErrIndexOutOfRange) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea fuera de rango"})
		}
		if errors.Is(err, domain.ErrLastItem) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LAST_ITEM", Message: "la factura debe conservar al menos una línea"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.Get(c)
}

// Drafts GET /api/invoice/dates — textos en staging de los campos de fecha.
func (h *InvoiceHandler) Drafts(c *fiber.Ctx) error {
	t := h.draft.Texts()
	return c.JSON(dto.DraftTextsResponse{
		InvoiceDate: t.InvoiceDate,
		DueDate:     t.DueDate,
		Items:       t.Items,
	})
}

// TypeDraft POST /api/invoice/dates/:field — una pulsación: el buffer toma
// el texto tal cual y, si parsea, el valor se comitea de inmediato.
// field es invoiceDate, dueDate o item (con index en el body).
func (h *InvoiceHandler) TypeDraft(c *fiber.Ctx) error {
	var in dto.DraftInputRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	switch field := c.Params("field"); field {
	case string(invoicing.FieldInvoiceDate), string(invoicing.FieldDueDate):
		h.draft.TypeField(invoicing.InvoiceField(field), in.Text)
	case "item":
		if in.Index == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index requerido para field item"})
		}
		if err := h.draft.TypeItemDate(*in.Index, in.Text); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea fuera de rango"})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo de fecha desconocido"})
	}
	return h.Drafts(c)
}

// BlurDraft POST /api/invoice/dates/:field/blur — pérdida de foco: si el
// texto sigue sin parsear, el buffer revierte al valor comiteado.
func (h *InvoiceHandler) BlurDraft(c *fiber.Ctx) error {
	var in dto.DraftInputRequest
	_ = c.BodyParser(&in) // el body es opcional salvo para item

	switch field := c.Params("field"); field {
	case string(invoicing.FieldInvoiceDate), string(invoicing.FieldDueDate):
		h.draft.BlurField(invoicing.InvoiceField(field))
	case "item":
		if in.Index == nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "index requerido para field item"})
		}
		if err := h.draft.BlurItemDate(*in.Index); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea fuera de rango"})
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo de fecha desconocido"})
	}
	return h.Drafts(c)
}
