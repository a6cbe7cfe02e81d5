package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/application/dto"
)

// DirectoryHandler directorios de clientes y productos (protegido).
type DirectoryHandler struct {
	uc *billing.DirectoryUseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(uc *billing.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// CreateCustomer POST /api/customers
func (h *DirectoryHandler) CreateCustomer(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCustomer(c.UserContext(), session.AccountID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCustomers GET /api/customers
func (h *DirectoryHandler) ListCustomers(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.uc.ListCustomers(c.UserContext(), session.AccountID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// CreateProduct POST /api/products
func (h *DirectoryHandler) CreateProduct(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateProduct(c.UserContext(), session.AccountID, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts GET /api/products
func (h *DirectoryHandler) ListProducts(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	list, err := h.uc.ListProducts(c.UserContext(), session.AccountID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
