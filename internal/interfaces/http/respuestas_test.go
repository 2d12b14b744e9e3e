package http

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/domain"
)

// appQueFalla monta una ruta que responde el error dado vía responderError.
func appQueFalla(err error) *fiber.App {
	app := fiber.New()
	app.Get("/fallo", func(c *fiber.Ctx) error {
		return responderError(c, err)
	})
	return app
}

func cuerpoError(t *testing.T, app *fiber.App) (int, dto.ErrorResponse) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/fallo", nil), -1)
	require.NoError(t, err)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestResponderError_SentinelesConocidos(t *testing.T) {
	casos := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrEntradaInvalida, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrNoEncontrado, fiber.StatusNotFound, "NOT_FOUND"},
		{domain.ErrStockInsuficiente, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{domain.ErrSinVentasPendientes, fiber.StatusConflict, "NO_PENDING_SALES"},
	}
	for _, c := range casos {
		status, body := cuerpoError(t, appQueFalla(c.err))
		assert.Equal(t, c.status, status, c.code)
		assert.Equal(t, c.code, body.Code)
	}
}

// Un parámetro operativo ausente es un 500, pero distinguible de un fallo
// inesperado por su código de respuesta.
func TestResponderError_ConfiguracionAusente(t *testing.T) {
	status, body := cuerpoError(t, appQueFalla(domain.ErrParametroNoConfigurado))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "CONFIGURATION", body.Code)

	// También cuando el caso de uso lo envuelve con contexto.
	envuelto := fmt.Errorf("regenerar alertas: %w", domain.ErrParametroNoConfigurado)
	status, body = cuerpoError(t, appQueFalla(envuelto))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "CONFIGURATION", body.Code)
}

func TestResponderError_ErrorInesperado(t *testing.T) {
	status, body := cuerpoError(t, appQueFalla(fmt.Errorf("se cayó la base")))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
}
