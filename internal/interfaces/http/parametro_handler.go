package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/parametros"
)

// ParametroHandler maneja las peticiones HTTP de parámetros operativos (admin).
type ParametroHandler struct {
	uc *parametros.UseCase
}

// NewParametroHandler construye el handler.
func NewParametroHandler(uc *parametros.UseCase) *ParametroHandler {
	return &ParametroHandler{uc: uc}
}

func (h *ParametroHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lista)
}

func (h *ParametroHandler) GetByID(c *fiber.Ctx) error {
	p, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(p)
}

// Update cambia el valor de un parámetro dejando rastro del actor.
func (h *ParametroHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarParametroRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	p, err := h.uc.Actualizar(c.Context(), c.Params("id"), in.Valor, GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(p)
}
