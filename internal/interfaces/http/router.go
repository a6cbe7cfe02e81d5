package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicegen/internal/application/auth"
	"github.com/jhoicas/invoicegen/internal/application/billing"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	WorkspaceUC *billing.WorkspaceUseCase
	DocumentUC  *billing.DocumentUseCase
	DirectoryUC *billing.DirectoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	workspaceHandler := NewWorkspaceHandler(deps.WorkspaceUC, deps.DirectoryUC)
	documentHandler := NewDocumentHandler(deps.DocumentUC)
	directoryHandler := NewDirectoryHandler(deps.DirectoryUC)

	// Públicas
	api.Post("/auth/login", authHandler.Login)
	api.Get("/kinds", workspaceHandler.Kinds)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Documento en edición por tipo
	ws := protected.Group("/workspace/:kind")
	ws.Get("/", workspaceHandler.Get)
	ws.Post("/rows", workspaceHandler.AddRow)
	ws.Delete("/rows", workspaceHandler.Reset)
	ws.Patch("/rows/:id", workspaceHandler.UpdateRow)
	ws.Delete("/rows/:id", workspaceHandler.RemoveRow)
	ws.Post("/rows/:id/product/:productId", workspaceHandler.ApplyProduct)
	ws.Post("/preview", documentHandler.Preview)
	ws.Post("/print", documentHandler.Print)
	ws.Post("/documents", documentHandler.Save)

	// Documentos guardados
	docs := protected.Group("/documents")
	docs.Get("/", documentHandler.List)
	docs.Get("/:id", documentHandler.GetByID)
	docs.Get("/:id/xml", documentHandler.XML)

	// Directorios
	protected.Get("/customers", directoryHandler.ListCustomers)
	protected.Post("/customers", directoryHandler.CreateCustomer)
	protected.Get("/products", directoryHandler.ListProducts)
	protected.Post("/products", directoryHandler.CreateProduct)
}

// Health GET /health
func Health(service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": service})
	}
}
