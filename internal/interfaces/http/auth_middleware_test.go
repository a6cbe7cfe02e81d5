package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpRouter "github.com/jhoicas/invoicegen/internal/interfaces/http"
	"github.com/jhoicas/invoicegen/pkg/jwt"
)

func TestAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/protegido", httpRouter.AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		s, ok := httpRouter.GetSession(c)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(s)
	})

	valid, err := jwt.Generate(testSecret, "test", 5, jwt.Identity{AccountID: "acc-9", DisplayName: "Nila", Premium: true})
	require.NoError(t, err)
	otherSecret, err := jwt.Generate("otro-secreto", "test", 5, jwt.Identity{AccountID: "acc-9"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sin header", "", fiber.StatusUnauthorized},
		{"sin Bearer", valid, fiber.StatusUnauthorized},
		{"token vacío", "Bearer ", fiber.StatusUnauthorized},
		{"firma de otro secreto", "Bearer " + otherSecret, fiber.StatusUnauthorized},
		{"válido", "Bearer " + valid, fiber.StatusOK},
		{"bearer en minúsculas", "bearer " + valid, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/protegido", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
