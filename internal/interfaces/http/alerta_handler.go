package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/alertas"
	"github.com/scalimentos/inventario-api/internal/domain"
)

// AlertaHandler maneja las peticiones HTTP de alertas (protegido).
type AlertaHandler struct {
	uc *alertas.UseCase
}

// NewAlertaHandler construye el handler.
func NewAlertaHandler(uc *alertas.UseCase) *AlertaHandler {
	return &AlertaHandler{uc: uc}
}

// Regenerate godoc
// @Summary      Regenerar alertas
// @Description  Descarta el conjunto vigente y lo recalcula desde stock, lotes y
//
//	parámetros. Si falta un parámetro requerido aborta con 500 y el
//	conjunto previo queda intacto.
//
// @Tags         alertas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   entity.Alerta
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alertas/regenerar [post]
func (h *AlertaHandler) Regenerate(c *fiber.Ctx) error {
	generadas, err := h.uc.Regenerar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(generadas)
}

func (h *AlertaHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lista)
}

// UpdateEstado cambia el estado de atención de una alerta.
func (h *AlertaHandler) UpdateEstado(c *fiber.Ctx) error {
	var in struct {
		Estado string `json:"estado"`
	}
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.ErrEntradaInvalida)
	}
	a, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Estado)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(a)
}
