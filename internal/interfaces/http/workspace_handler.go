package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
)

// WorkspaceHandler edición de filas del documento en curso (protegido).
type WorkspaceHandler struct {
	uc        *billing.WorkspaceUseCase
	directory *billing.DirectoryUseCase
}

// NewWorkspaceHandler construye el handler.
func NewWorkspaceHandler(uc *billing.WorkspaceUseCase, directory *billing.DirectoryUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc, directory: directory}
}

func kindParam(c *fiber.Ctx) entity.DocumentKind {
	return entity.DocumentKind(c.Params("kind"))
}

// Kinds GET /api/kinds
func (h *WorkspaceHandler) Kinds(c *fiber.Ctx) error {
	return c.JSON(billing.KindCatalog())
}

// Get GET /api/workspace/:kind
func (h *WorkspaceHandler) Get(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	out, err := h.uc.Snapshot(session, kindParam(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddRow POST /api/workspace/:kind/rows
func (h *WorkspaceHandler) AddRow(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	row, err := h.uc.AddRow(session, kindParam(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// UpdateRow PATCH /api/workspace/:kind/rows/:id
func (h *WorkspaceHandler) UpdateRow(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.UpdateRowRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	row, err := h.uc.UpdateRow(session, kindParam(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(row)
}

// RemoveRow DELETE /api/workspace/:kind/rows/:id
func (h *WorkspaceHandler) RemoveRow(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.RemoveRow(session, kindParam(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset DELETE /api/workspace/:kind/rows (documento nuevo)
func (h *WorkspaceHandler) Reset(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	if err := h.uc.Reset(session, kindParam(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyProduct POST /api/workspace/:kind/rows/:id/product/:productId
func (h *WorkspaceHandler) ApplyProduct(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	row, err := h.directory.ApplyProduct(c.UserContext(), session, kindParam(c), c.Params("id"), c.Params("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(row)
}
