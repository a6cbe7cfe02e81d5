package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/application/dto"
)

// HeaderFingerprint header con la huella SHA-256 del XML exportado.
const HeaderFingerprint = "X-Document-Fingerprint"

// DocumentHandler previsualización, impresión, guardado y consulta (protegido).
type DocumentHandler struct {
	uc *billing.DocumentUseCase
}

// NewDocumentHandler construye el handler.
func NewDocumentHandler(uc *billing.DocumentUseCase) *DocumentHandler {
	return &DocumentHandler{uc: uc}
}

// Preview POST /api/workspace/:kind/preview → text/html
func (h *DocumentHandler) Preview(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.DocumentHeaderRequest
	if err := parseOptionalBody(c, &in); err != nil {
		return invalidBody(c)
	}
	html, err := h.uc.Preview(session, kindParam(c), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// Print POST /api/workspace/:kind/print → application/pdf
func (h *DocumentHandler) Print(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.DocumentHeaderRequest
	if err := parseOptionalBody(c, &in); err != nil {
		return invalidBody(c)
	}
	pdf, filename, err := h.uc.Print(c.UserContext(), session, kindParam(c), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

// Save POST /api/workspace/:kind/documents
// Si el almacenamiento falla responde igual 201 con saved=false y warning.
func (h *DocumentHandler) Save(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var in dto.DocumentHeaderRequest
	if err := parseOptionalBody(c, &in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Save(c.UserContext(), session, kindParam(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/documents?limit=20&offset=0
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit y offset deben ser enteros"})
	}
	out, err := h.uc.List(c.UserContext(), session, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/documents/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	doc, err := h.uc.Get(c.UserContext(), session, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(doc)
}

// XML GET /api/documents/:id/xml → application/xml
func (h *DocumentHandler) XML(c *fiber.Ctx) error {
	session, ok := GetSession(c)
	if !ok {
		return unauthorized(c)
	}
	xmlBytes, fingerprint, err := h.uc.ExportXML(c.UserContext(), session, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(HeaderFingerprint, fingerprint)
	return c.Send(xmlBytes)
}
