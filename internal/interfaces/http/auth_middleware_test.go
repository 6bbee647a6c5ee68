package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/jwt"
)

const testSecret = "secreto-de-prueba"

func protectedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"userId":   httpapi.GetUserID(c),
			"username": httpapi.GetUsername(c),
			"role":     httpapi.GetRole(c),
		})
	})
	app.Get("/protegida", chain...)
	return app
}

func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := protectedApp(httpapi.AuthMiddleware(testSecret))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegida", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := protectedApp(httpapi.AuthMiddleware(testSecret))

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "solo se acepta el esquema Bearer")
}

func TestAuthMiddleware_TokenValidoCargaClaims(t *testing.T) {
	app := protectedApp(httpapi.AuthMiddleware(testSecret))

	token, err := jwt.Generate(testSecret, "42", "alice", entity.RoleUser, "tienda-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, decodeJSON(resp, &body))
	assert.Equal(t, "42", body["userId"])
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "user", body["role"])
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := protectedApp(httpapi.AuthMiddleware(testSecret))

	token, err := jwt.Generate("otro-secreto", "1", "alice", entity.RoleUser, "tienda-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_AdminPermitido(t *testing.T) {
	app := protectedApp(httpapi.AuthMiddleware(testSecret), httpapi.RequireRole(entity.RoleAdmin))

	token, err := jwt.Generate(testSecret, "1", "root", entity.RoleAdmin, "tienda-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_UserRechazado(t *testing.T) {
	app := protectedApp(httpapi.AuthMiddleware(testSecret), httpapi.RequireRole(entity.RoleAdmin))

	token, err := jwt.Generate(testSecret, "2", "alice", entity.RoleUser, "tienda-api", 60)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protegida", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode, "token válido con rol insuficiente es 403, no 401")
}
