package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/scalimentos/inventario-api/internal/application/dto"
	"github.com/scalimentos/inventario-api/internal/application/inventario"
	"github.com/scalimentos/inventario-api/internal/domain"
)

// LoteHandler maneja las peticiones HTTP de lotes de producción (protegido).
type LoteHandler struct {
	uc *inventario.LoteUseCase
}

// NewLoteHandler construye el handler.
func NewLoteHandler(uc *inventario.LoteUseCase) *LoteHandler {
	return &LoteHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar lote de producción
// @Description  Genera el código del lote, suma al stock y deja el movimiento de entrada.
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearLoteRequest  true  "Datos del lote"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lotes [post]
func (h *LoteHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearLoteRequest
	if err := validarBody(c, &in); err != nil {
		return responderError(c, err)
	}
	lote, advertencia, err := h.uc.Crear(c.Context(), in, GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	resp := fiber.Map{"lote": lote}
	if advertencia != "" {
		resp["advertencia"] = advertencia
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *LoteHandler) GetByID(c *fiber.Ctx) error {
	lote, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lote)
}

func (h *LoteHandler) List(c *fiber.Ctx) error {
	lotes, err := h.uc.Listar(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lotes)
}

func (h *LoteHandler) ListByProducto(c *fiber.Ctx) error {
	lotes, err := h.uc.ListarPorProducto(c.Context(), c.Params("productoId"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lotes)
}

// Update godoc
// @Summary      Corregir lote
// @Description  Rechaza bajar la cantidad producida por debajo de lo vendido (409).
// @Tags         lotes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.ActualizarLoteRequest  true  "Campos a corregir"
// @Success      200   {object}  entity.LoteProduccion
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/lotes/{id} [put]
func (h *LoteHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarLoteRequest
	if err := c.BodyParser(&in); err != nil {
		return responderError(c, domain.ErrEntradaInvalida)
	}
	lote, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(lote)
}

func (h *LoteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "lote eliminado"})
}
