package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/jhoicas/sinvoice-api/internal/application/dto"
	"github.com/jhoicas/sinvoice-api/internal/application/invoicing"
	"github.com/jhoicas/sinvoice-api/internal/domain"
	"github.com/jhoicas/sinvoice-api/internal/domain/entity"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *invoicing.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *invoicing.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.Create(in.Name, in.Address)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y address son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(customer))
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	return c.JSON(lo.Map(h.uc.List(), func(cu entity.Customer, _ int) dto.CustomerResponse {
		return toCustomerResponse(cu)
	}))
}

func toCustomerResponse(cu entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{ID: cu.ID, Name: cu.Name, Address: cu.Address}
}
